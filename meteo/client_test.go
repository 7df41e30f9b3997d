package meteo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentValueAgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "26.91", r.URL.Query().Get("latitude"))
		assert.Equal(t, "32.89", r.URL.Query().Get("longitude"))
		assert.Equal(t, "temperature_2m", r.URL.Query().Get("current"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current": {"time": "2024-06-01T12:00", "interval": 900, "temperature_2m": 21.5}}`))
	}))
	defer server.Close()

	client := NewClient()
	defer client.Close()

	value, err := client.CurrentValue(context.Background(), server.URL, "temperature_2m", Coordinates(26.91, 32.89))
	require.NoError(t, err)
	assert.Equal(t, 21.5, value)
}

func TestRequestErrorCarriesReason(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"reason": "bad coordinates", "error": true}`))
	}))
	defer server.Close()

	client := NewClient()
	defer client.Close()

	_, err := client.CurrentValue(context.Background(), server.URL, "temperature_2m", Coordinates(0, 0))

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.StatusCode)
	assert.Contains(t, reqErr.Reason, "bad coordinates")
	assert.Contains(t, reqErr.Error(), "400")
}

func TestTransportFailureIsNotRequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(WithTimeout(2 * time.Second))
	defer client.Close()

	_, err := client.CurrentValue(context.Background(), server.URL, "temperature_2m", Coordinates(0, 0))
	require.Error(t, err)

	var reqErr *RequestError
	assert.False(t, errors.As(err, &reqErr), "transport failures must not be classified as RequestError")
}

func TestMissingCoordinatesFailBeforeNetwork(t *testing.T) {
	client := NewClient()
	defer client.Close()

	// Endpoint is unreachable on purpose; the check must trip first.
	var missing *MissingFieldError

	_, err := client.CurrentValue(context.Background(), "http://127.0.0.1:1", "temperature_2m", Params{"longitude": "1"})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "latitude", missing.Field)

	_, err = FetchSeries[float32](context.Background(), client, "http://127.0.0.1:1", Hourly, "rain", Params{"latitude": "1"})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "longitude", missing.Field)
}

func TestFetchSeriesRequiresPeriodicalFrequency(t *testing.T) {
	client := NewClient()
	defer client.Close()

	_, err := FetchSeries[float32](context.Background(), client, "http://127.0.0.1:1", Current, "rain", Coordinates(1, 1))
	assert.ErrorIs(t, err, ErrMissingFrequency)

	_, err = client.FetchTable(context.Background(), "http://127.0.0.1:1", Current, []string{"rain"}, []string{"rain"}, Coordinates(1, 1))
	assert.ErrorIs(t, err, ErrMissingFrequency)
}

func TestFetchSeriesAgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "temperature_2m", r.URL.Query().Get("hourly"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"hourly": {
				"time": ["2020-01-01T00:00", "2020-01-01T01:00"],
				"temperature_2m": [10.0, 10.5]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient()
	defer client.Close()

	series, err := FetchSeries[float32](context.Background(), client, server.URL, Hourly, "temperature_2m", Coordinates(26.91, 32.89))
	require.NoError(t, err)
	assert.Equal(t, "Datetime", series.IndexName)
	assert.Equal(t, []float32{10.0, 10.5}, series.Values)
}

func TestFetchTableAgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "temperature_2m,relative_humidity_2m", r.URL.Query().Get("hourly"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"hourly": {
				"time": ["2020-01-01T00:00"],
				"temperature_2m": [10.0],
				"relative_humidity_2m": [40]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient()
	defer client.Close()

	table, err := client.FetchTable(context.Background(), server.URL, Hourly,
		[]string{"temperature_2m", "relative_humidity_2m"},
		[]string{"temperature", "humidity"},
		Coordinates(26.91, 32.89),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"temperature", "humidity"}, table.Columns)
}

func TestCurrentSummaryAgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "temperature_2m,wind_speed_10m", r.URL.Query().Get("current"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"current": {
				"time": "2024-06-01T12:00",
				"interval": 900,
				"temperature_2m": 21.5,
				"wind_speed_10m": 12.0
			}
		}`))
	}))
	defer server.Close()

	client := NewClient()
	defer client.Close()

	bundle, err := client.CurrentSummary(context.Background(), server.URL,
		[]string{"temperature_2m", "wind_speed_10m"},
		[]string{"temperature", "wind_speed"},
		Coordinates(26.91, 32.89),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"temperature", "wind_speed"}, bundle.Labels)
	assert.Equal(t, []float64{21.5, 12.0}, bundle.Values)
}
