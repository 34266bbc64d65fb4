// submit.go
// ---------
// Builder for the batch-ingestion request. One SubmitEvents call is one
// outbound request: there is no buffering across invocations, and the input
// order is preserved in the outgoing eventData array since it drives
// platform-side ordering and dedupe.
package adsbridge

import (
	"context"
	"encoding/json"
	"time"
)

const (
	eventsPath = "/events/v1"

	// IngestionMethodServerToServer is the only ingestion method this
	// bridge speaks.
	IngestionMethodServerToServer = "SERVER_TO_SERVER"

	// HeaderAccountID identifies the advertiser account on ingestion calls.
	HeaderAccountID = "Amazon-Ads-AccountId"

	submitTimeout = 25 * time.Second
)

// Settings selects the regional endpoint and advertiser account, supplied
// per call and never mutated.
type Settings struct {
	// Region is the base URL of the regional ingestion host, without a
	// trailing path.
	Region string

	AdvertiserID string
}

type eventPayload struct {
	EventData       []EventRecord `json:"eventData"`
	IngestionMethod string        `json:"ingestionMethod"`
}

// SubmitEvents issues one POST to <region>/events/v1 carrying the given
// records. A single record and a batch share one wire shape: events are
// always wrapped into an array.
//
// No authorization header is set here; attach the bearer token beforehand,
// typically via WithBearerToken. The raw response is returned for any
// completed exchange, non-2xx included, so the caller can hand failures to
// ClassifyResponse; the submitter itself does no status branching.
func SubmitEvents(ctx context.Context, transport Transport, settings Settings, events ...EventRecord) (*NormalizedResponse, error) {
	if events == nil {
		events = []EventRecord{}
	}
	body, err := json.Marshal(eventPayload{
		EventData:       events,
		IngestionMethod: IngestionMethodServerToServer,
	})
	if err != nil {
		return nil, err
	}

	req := &NormalizedRequest{
		Method:   "POST",
		Endpoint: settings.Region + eventsPath,
		Headers: map[string]string{
			HeaderAccountID: settings.AdvertiserID,
			"Content-Type":  "application/json",
		},
		Body:    body,
		Timeout: submitTimeout,
	}
	return transport.Do(ctx, req)
}
