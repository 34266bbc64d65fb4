package adsbridge_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adsbridge "github.com/outboundkit/amazon-ads-bridge"
	"github.com/outboundkit/amazon-ads-bridge/mock"
)

var testSettings = adsbridge.Settings{
	Region:       "https://advertising-api-eu.amazon.com",
	AdvertiserID: "ADV-123",
}

func makeEvents(n int) []adsbridge.EventRecord {
	events := make([]adsbridge.EventRecord, n)
	for i := range events {
		events[i] = adsbridge.EventRecord{
			Name:              fmt.Sprintf("event-%d", i),
			EventType:         adsbridge.EventTypePageView,
			EventActionSource: adsbridge.ActionSourceWebsite,
			CountryCode:       "DE",
			Timestamp:         "2026-08-24T10:00:00Z",
		}
	}
	return events
}

func TestSubmitEvents_RequestShape(t *testing.T) {
	transport := &mock.Transport{Results: []mock.Result{
		{StatusCode: 207, Data: []byte(`{"success":[{"index":1}]}`)},
	}}

	resp, err := adsbridge.SubmitEvents(context.Background(), transport, testSettings, makeEvents(1)...)
	require.NoError(t, err)
	assert.Equal(t, 207, resp.StatusCode)

	require.Equal(t, 1, transport.Calls())
	req := transport.Requests[0]
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "https://advertising-api-eu.amazon.com/events/v1", req.Endpoint)
	assert.Equal(t, "ADV-123", req.Headers[adsbridge.HeaderAccountID])
	assert.Equal(t, "application/json", req.Headers["Content-Type"])
	assert.Equal(t, 25*time.Second, req.Timeout)

	// Bearer attachment is the caller's job; the submitter never sets it.
	_, hasAuth := req.Headers["Authorization"]
	assert.False(t, hasAuth)
}

func TestSubmitEvents_WirePayload(t *testing.T) {
	for _, n := range []int{1, 2, 5, 11} {
		t.Run(fmt.Sprintf("%d events", n), func(t *testing.T) {
			transport := &mock.Transport{}
			_, err := adsbridge.SubmitEvents(context.Background(), transport, testSettings, makeEvents(n)...)
			require.NoError(t, err)

			var payload struct {
				EventData       []adsbridge.EventRecord `json:"eventData"`
				IngestionMethod string                  `json:"ingestionMethod"`
			}
			require.NoError(t, json.Unmarshal(transport.Requests[0].Body, &payload))
			assert.Equal(t, "SERVER_TO_SERVER", payload.IngestionMethod)
			require.Len(t, payload.EventData, n)

			// Input order survives into the wire array.
			for i, ev := range payload.EventData {
				assert.Equal(t, fmt.Sprintf("event-%d", i), ev.Name)
			}
		})
	}
}

func TestSubmitEvents_SingleRecordWrappedInArray(t *testing.T) {
	transport := &mock.Transport{}
	_, err := adsbridge.SubmitEvents(context.Background(), transport, testSettings, makeEvents(1)[0])
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(transport.Requests[0].Body, &payload))
	assert.Equal(t, byte('['), payload["eventData"][0])
}

func TestSubmitEvents_NoEventsStillSendsArray(t *testing.T) {
	transport := &mock.Transport{}
	_, err := adsbridge.SubmitEvents(context.Background(), transport, testSettings)
	require.NoError(t, err)
	assert.Contains(t, string(transport.Requests[0].Body), `"eventData":[]`)
}

func TestSubmitEvents_ReturnsResponseUnmodified(t *testing.T) {
	// Non-2xx comes back as a plain response; classification is not the
	// submitter's job.
	transport := &mock.Transport{Results: []mock.Result{
		{StatusCode: 429, Headers: map[string]string{"retry-after": "12"}, Data: []byte(`{"message":"throttled"}`)},
	}}

	resp, err := adsbridge.SubmitEvents(context.Background(), transport, testSettings, makeEvents(1)...)
	require.NoError(t, err)
	assert.Equal(t, 429, resp.StatusCode)
	assert.Equal(t, "12", resp.Headers["retry-after"])
	assert.JSONEq(t, `{"message":"throttled"}`, string(resp.Data))
}

func TestSubmitEvents_OptionalFieldsOmitted(t *testing.T) {
	transport := &mock.Transport{}
	_, err := adsbridge.SubmitEvents(context.Background(), transport, testSettings, makeEvents(1)...)
	require.NoError(t, err)

	body := string(transport.Requests[0].Body)
	assert.NotContains(t, body, "matchKeys")
	assert.NotContains(t, body, "currencyCode")
	assert.NotContains(t, body, "consent")
	assert.NotContains(t, body, "clientDedupeId")
}
