package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/fastflight/fastflight-reservation-system/internal/adapter/http"
	"github.com/fastflight/fastflight-reservation-system/internal/domain"
	"github.com/fastflight/fastflight-reservation-system/internal/repository"
	"github.com/fastflight/fastflight-reservation-system/test/mock"
)

// TestSearchBookCancelFlow walks the main journey end to end: search for
// flights, book one, see it listed, cancel it, and confirm the record stays.
func TestSearchBookCancelFlow(t *testing.T) {
	ts := NewTestServer()
	ts.Searcher.WithFlights(mock.SampleFlights(3))

	// Search
	searchResp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   DefaultSearchRequest(),
	})
	require.Equal(t, http.StatusOK, searchResp.Code)

	var search httpAdapter.SearchResponseDTO
	require.NoError(t, searchResp.Parse(&search))
	require.Len(t, search.Flights, 3)
	assert.Equal(t, 1, ts.Searcher.CallCount())
	assert.Equal(t, "Mumbai", ts.Searcher.LastCriteria().Origin)

	// Book the first result
	flights := mock.SampleFlights(3)
	bookResp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/bookings",
		Body: map[string]interface{}{
			"flight":        flights[0],
			"passengerName": "Aisha Verma",
			"paymentMethod": "Credit Card",
		},
	})
	require.Equal(t, http.StatusCreated, bookResp.Code)

	var booking httpAdapter.BookingDTO
	require.NoError(t, bookResp.Parse(&booking))
	assert.Regexp(t, `^FF-[0-9A-Z]{6}$`, booking.ID)
	assert.Equal(t, "Confirmed", booking.Status)
	assert.Equal(t, "flight-1", booking.Flight.ID)

	// List shows it
	listResp := ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/bookings"})
	require.Equal(t, http.StatusOK, listResp.Code)

	var list httpAdapter.BookingListDTO
	require.NoError(t, listResp.Parse(&list))
	require.Len(t, list.Bookings, 1)
	assert.Equal(t, booking.ID, list.Bookings[0].ID)

	// Cancel keeps the record, flips the status
	cancelResp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/bookings/" + booking.ID + "/cancel",
	})
	require.Equal(t, http.StatusOK, cancelResp.Code)

	listResp = ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/bookings"})
	require.NoError(t, listResp.Parse(&list))
	require.Len(t, list.Bookings, 1)
	assert.Equal(t, "Cancelled", list.Bookings[0].Status)

	// Cancelling a made-up locator is a 404
	missingResp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/bookings/FF-000000/cancel",
	})
	assert.Equal(t, http.StatusNotFound, missingResp.Code)
}

// TestAlertTriggeredBySearch verifies that a stored alert fires when a later
// search observes a matching fare, and that the alert state persists.
func TestAlertTriggeredBySearch(t *testing.T) {
	ts := NewTestServer()
	ts.Searcher.WithFlights(mock.SampleFlights(3)) // prices 60000, 70000, 80000

	// Create an alert the cheapest flight satisfies
	createResp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/alerts",
		Body: map[string]interface{}{
			"origin":      "mumbai",
			"destination": "LONDON",
			"date":        FutureDate(),
			"targetPrice": 65000,
		},
	})
	require.Equal(t, http.StatusCreated, createResp.Code)

	// Search fires it
	searchResp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   DefaultSearchRequest(),
	})
	require.Equal(t, http.StatusOK, searchResp.Code)

	var search httpAdapter.SearchResponseDTO
	require.NoError(t, searchResp.Parse(&search))
	assert.True(t, search.AlertsTriggered)

	// Alert list shows the triggered state with the observed price
	listResp := ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/alerts"})
	require.Equal(t, http.StatusOK, listResp.Code)

	var alerts httpAdapter.AlertListDTO
	require.NoError(t, listResp.Parse(&alerts))
	require.Len(t, alerts.Alerts, 1)
	assert.True(t, alerts.Alerts[0].IsTriggered)
	require.NotNil(t, alerts.Alerts[0].CurrentPrice)
	assert.Equal(t, 60000, *alerts.Alerts[0].CurrentPrice)

	// A second search does not reevaluate the triggered alert
	searchResp = ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   DefaultSearchRequest(),
	})
	require.NoError(t, searchResp.Parse(&search))
	assert.False(t, search.AlertsTriggered)

	// Delete the alert
	deleteResp := ts.Do(Request{
		Method: http.MethodDelete,
		Path:   "/api/v1/alerts/" + alerts.Alerts[0].ID,
	})
	assert.Equal(t, http.StatusNoContent, deleteResp.Code)
}

// TestStatePersistsAcrossRestart verifies that a new stack over the same
// store sees the bookings and profile written by the previous one.
func TestStatePersistsAcrossRestart(t *testing.T) {
	ts := NewTestServer()

	bookResp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/bookings",
		Body: map[string]interface{}{
			"flight":        mock.SampleFlights(1)[0],
			"passengerName": "Rohan Mehta",
			"paymentMethod": "UPI",
		},
	})
	require.Equal(t, http.StatusCreated, bookResp.Code)

	profileResp := ts.Do(Request{
		Method: http.MethodPut,
		Path:   "/api/v1/profile",
		Body: map[string]string{
			"name":  "Rohan Mehta",
			"email": "rohan@example.com",
			"tier":  "Platinum",
		},
	})
	require.Equal(t, http.StatusOK, profileResp.Code)

	// Rebuild the repository over the same raw bytes, as a restart would.
	data, err := ts.Store.Load()
	require.NoError(t, err)
	restarted := repository.New(repository.NewMemoryStoreWith(data))

	bookings := restarted.Bookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, "Rohan Mehta", bookings[0].PassengerName)
	assert.Equal(t, "Platinum", string(restarted.Profile().Tier))
}

// TestChatEndToEnd verifies the chat endpoint validates history and returns
// the concierge's reply with suggestions.
func TestChatEndToEnd(t *testing.T) {
	ts := NewTestServer()
	ts.Concierge.WithReply(domainReplyWithSuggestion())

	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/chat",
		Body: map[string]interface{}{
			"history": []map[string]string{
				{"role": "user", "text": "Where should I go this winter?"},
			},
		},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var reply httpAdapter.ChatReplyDTO
	require.NoError(t, resp.Parse(&reply))
	assert.NotEmpty(t, reply.Text)
	require.Len(t, reply.SuggestedFlights, 1)
	assert.Equal(t, "₹60,000", reply.SuggestedFlights[0].PriceFormatted)

	// Model-last history is rejected before reaching the gateway
	calls := ts.Concierge.CallCount()
	badResp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/chat",
		Body: map[string]interface{}{
			"history": []map[string]string{
				{"role": "model", "text": "Welcome back."},
			},
		},
	})
	assert.Equal(t, http.StatusBadRequest, badResp.Code)
	assert.Equal(t, calls, ts.Concierge.CallCount())
}

func domainReplyWithSuggestion() domain.ChatReply {
	return domain.ChatReply{
		Text:             "Mumbai to London in Business is a timeless choice.",
		SuggestedFlights: mock.SampleFlights(1),
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := NewTestServer()

	resp := ts.Do(Request{Method: http.MethodGet, Path: "/health"})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(resp.Body))
}
