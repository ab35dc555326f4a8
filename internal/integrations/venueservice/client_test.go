package venueservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/internal/venues/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 1,
			"name": "Shibuya Sports Center",
			"manager_ids": [100, 200],
			"working_hours": {
				"monday": {"is_open": true, "open_time": "09:00", "close_time": "21:00"},
				"sunday": {"is_open": false}
			}
		}`))
	})
	mux.HandleFunc("/internal/courts/7", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "venue_id": 1, "name": "Court A", "price_per_hour": 2000, "price_per_half_hour": 1200}`))
	})
	mux.HandleFunc("/internal/courts/8", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code": 500, "message": "boom"}`))
	})
	mux.HandleFunc("/internal/courts/9", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_GetVenue(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL+"/", time.Second, nopLogger{})

	venue, err := client.GetVenue(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Shibuya Sports Center", venue.Name)
	assert.True(t, venue.IsManager(200))

	openAt, closeAt, ok := venue.WorkingHours.Monday.Hours()
	assert.True(t, ok)
	assert.Equal(t, "09:00", openAt)
	assert.Equal(t, "21:00", closeAt)

	_, _, ok = venue.WorkingHours.Sunday.Hours()
	assert.False(t, ok)
}

func TestClient_GetVenue_NotFound(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := client.GetVenue(context.Background(), 2)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestClient_GetCourt(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, time.Second, nopLogger{})

	court, err := client.GetCourt(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(1), court.VenueID)
	assert.Equal(t, int64(2000), court.RateCard.PricePerHour)
	require.NotNil(t, court.RateCard.PricePerHalfHour)
	assert.Equal(t, int64(1200), *court.RateCard.PricePerHalfHour)
}

func TestClient_GetCourt_Errors(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := client.GetCourt(context.Background(), 3)
	assert.ErrorIs(t, err, ErrCourtNotFound)

	_, err = client.GetCourt(context.Background(), 8)
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = client.GetCourt(context.Background(), 9)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_Unavailable(t *testing.T) {
	srv := newTestServer(t)
	url := srv.URL
	srv.Close()

	client := NewClient(url, 100*time.Millisecond, nopLogger{})

	_, err := client.GetCourt(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInternal)
}
