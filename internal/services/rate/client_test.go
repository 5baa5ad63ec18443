package rate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torneokills/torneo/internal/testutil"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{URL: server.URL, Timeout: time.Second}, testutil.NopLogger())
}

func TestGetOfficialRate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"fuente":"oficial","nombre":"Oficial","promedio":36.5,"fechaActualizacion":"2024-05-02T00:00:00.000Z"}`))
	})

	value, err := client.GetOfficialRate(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 36.5, value, 1e-9)
}

func TestGetOfficialRateFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{name: "server error", status: http.StatusInternalServerError, payload: `{"promedio":36.5}`},
		{name: "not found", status: http.StatusNotFound, payload: ``},
		{name: "malformed json", status: http.StatusOK, payload: `{"promedio":`},
		{name: "missing field", status: http.StatusOK, payload: `{"nombre":"Oficial"}`},
		{name: "zero rate", status: http.StatusOK, payload: `{"promedio":0}`},
		{name: "negative rate", status: http.StatusOK, payload: `{"promedio":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			})

			_, err := client.GetOfficialRate(context.Background())
			assert.ErrorIs(t, err, ErrRateUnavailable)
		})
	}
}

func TestGetOfficialRateUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(Config{URL: url, Timeout: time.Second}, testutil.NopLogger())
	_, err := client.GetOfficialRate(context.Background())
	assert.ErrorIs(t, err, ErrRateUnavailable)
}

func TestGetOfficialRateTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(Config{URL: server.URL, Timeout: 50 * time.Millisecond}, testutil.NopLogger())
	_, err := client.GetOfficialRate(context.Background())
	assert.ErrorIs(t, err, ErrRateUnavailable)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{}, testutil.NopLogger())
	assert.Equal(t, DefaultURL, client.url)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}

func TestStatic(t *testing.T) {
	value, err := Static{Rate: 40}.GetOfficialRate(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 40.0, value, 1e-9)

	_, err = Static{Err: errors.New("offline")}.GetOfficialRate(context.Background())
	assert.ErrorIs(t, err, ErrRateUnavailable)
}
