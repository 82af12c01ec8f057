package geolocate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPosition(t *testing.T) {
	assert.Equal(t, "28.613900, 77.209000", FormatPosition(Position{Lat: 28.6139, Lng: 77.209}))
	assert.Equal(t, "0.000000, 0.000000", FormatPosition(Position{}))
	assert.Equal(t, "-33.868800, 151.209300", FormatPosition(Position{Lat: -33.8688, Lng: 151.2093}))
}

func TestHTTPLocator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"lat": 28.6139, "lng": 77.2090}`))
	}))
	defer srv.Close()

	pos, err := NewHTTPLocator(srv.URL).Locate(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 28.6139, pos.Lat, 1e-9)
	assert.InDelta(t, 77.2090, pos.Lng, 1e-9)
}

func TestHTTPLocatorLonKey(t *testing.T) {
	// The default lookup endpoint (ip-api) names longitude "lon".
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","country":"India","lat":25.3168,"lon":83.0105}`))
	}))
	defer srv.Close()

	pos, err := NewHTTPLocator(srv.URL).Locate(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 25.3168, pos.Lat, 1e-9)
	assert.InDelta(t, 83.0105, pos.Lng, 1e-9)
}

func TestHTTPLocatorErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTPLocator(srv.URL).Locate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestHTTPLocatorMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewHTTPLocator(srv.URL).Locate(context.Background())
	assert.Error(t, err)
}
