package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"snackbasket/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *NominatimClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return newNominatimClient(config.GeocoderConfig{
		BaseURL:   srv.URL,
		UserAgent: "snackbasket-test",
		Timeout:   time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestReverseGeocode_Success(t *testing.T) {
	var got *http.Request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"display_name":"Rizal Park, Ermita, Manila, Philippines"}`))
	})

	address, err := c.ReverseGeocode(context.Background(), 14.5826, 120.9787)
	require.NoError(t, err)
	assert.Equal(t, "Rizal Park, Ermita, Manila, Philippines", address)

	require.NotNil(t, got)
	assert.Equal(t, "/reverse", got.URL.Path)
	assert.Equal(t, "jsonv2", got.URL.Query().Get("format"))
	assert.Equal(t, "14.5826", got.URL.Query().Get("lat"))
	assert.Equal(t, "120.9787", got.URL.Query().Get("lon"))
	assert.Equal(t, "snackbasket-test", got.Header.Get("User-Agent"))
}

func TestReverseGeocode_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"nothing found", http.StatusOK, `{"error":"Unable to geocode"}`, "Unable to geocode"},
		{"empty address", http.StatusOK, `{}`, "no address"},
		{"server error", http.StatusServiceUnavailable, `{}`, "status 503"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.ReverseGeocode(context.Background(), 0, 0)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestReverseGeocode_ContextCanceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"display_name":"late"}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ReverseGeocode(ctx, 1, 1)
	assert.Error(t, err)
}
