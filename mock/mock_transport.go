package mock

import (
	"context"

	adsbridge "github.com/outboundkit/amazon-ads-bridge"
)

// Result scripts one transport call: either Err, or a response built from
// the other fields.
type Result struct {
	StatusCode int
	Headers    map[string]string
	Data       []byte
	Err        error
}

// Transport is a scriptable adsbridge.Transport for tests. Results are
// consumed in order, the last one repeating once the script runs out; an
// empty script answers 200 with an empty JSON body. Every issued request is
// recorded in Requests.
type Transport struct {
	Results  []Result
	Requests []*adsbridge.NormalizedRequest

	calls int
}

func (m *Transport) Do(_ context.Context, req *adsbridge.NormalizedRequest) (*adsbridge.NormalizedResponse, error) {
	m.Requests = append(m.Requests, req)

	r := Result{StatusCode: 200, Data: []byte(`{}`)}
	if len(m.Results) > 0 {
		idx := m.calls
		if idx >= len(m.Results) {
			idx = len(m.Results) - 1
		}
		r = m.Results[idx]
	}
	m.calls++

	if r.Err != nil {
		return nil, r.Err
	}
	headers := r.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	return &adsbridge.NormalizedResponse{
		StatusCode: r.StatusCode,
		Headers:    headers,
		Data:       r.Data,
	}, nil
}

// Calls reports how many requests the transport has served.
func (m *Transport) Calls() int {
	return m.calls
}
