package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aleister1102/gamewatch/internal/errorwrapper"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *HTTPClient {
	t.Helper()
	cfg := DefaultHTTPClientConfig()
	cfg.EnableHTTP2 = false
	client, err := NewHTTPClient(cfg, zerolog.Nop())
	require.NoError(t, err)
	return client
}

func TestFetchContent_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte("payload body"))
	}))
	defer server.Close()

	body, err := newTestClient(t).FetchContent(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "payload body", string(body))
}

func TestFetchContent_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(t).FetchContent(context.Background(), server.URL)

	require.Error(t, err)
	var httpErr *errorwrapper.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
}

func TestFetchContent_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed on purpose

	_, err := newTestClient(t).FetchContent(context.Background(), server.URL)

	require.Error(t, err)
	var netErr *errorwrapper.NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestFetchContent_ContentTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 2048))
	}))
	defer server.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.EnableHTTP2 = false
	cfg.MaxContentSize = 1024
	client, err := NewHTTPClient(cfg, zerolog.Nop())
	require.NoError(t, err)

	_, err = client.FetchContent(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestPostJSON(t *testing.T) {
	var received []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		received = make([]byte, r.ContentLength)
		_, _ = r.Body.Read(received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	status, err := newTestClient(t).PostJSON(context.Background(), server.URL, []byte(`{"ok":true}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, status)
	assert.Equal(t, `{"ok":true}`, string(received))
}
