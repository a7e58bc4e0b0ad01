package relay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/housestock/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const targetURL = "https://shop.example.com/wein/barolo-2016?ref=a&b=c"

func newTestClient(relayURL string, retryMax int) *Client {
	client := NewClient(Config{
		RelayURL:  relayURL,
		Timeout:   5 * time.Second,
		RetryMax:  retryMax,
		UserAgent: "housestock-test",
	}, zap.NewNop().Sugar())
	client.httpClient.RetryWaitMin = time.Millisecond
	client.httpClient.RetryWaitMax = time.Millisecond
	return client
}

func TestNewClient(t *testing.T) {
	client := NewClient(Config{RelayURL: "https://relay.example/raw?url=", RequestsPerSecond: 2, Burst: 0}, zap.NewNop().Sugar())

	assert.NotNil(t, client.httpClient)
	assert.Equal(t, "https://relay.example/raw?url=", client.relayURL)
	assert.Equal(t, 1, client.rateLimiter.Burst())
	assert.Equal(t, 0, client.httpClient.RetryMax)
}

func TestRequestURL(t *testing.T) {
	t.Run("escapes target behind relay prefix", func(t *testing.T) {
		client := newTestClient("https://api.allorigins.win/raw?url=", 0)
		assert.Equal(t,
			"https://api.allorigins.win/raw?url=https%3A%2F%2Fshop.example.com%2Fwein%2Fbarolo-2016%3Fref%3Da%26b%3Dc",
			client.requestURL(targetURL))
	})

	t.Run("fetches directly without relay", func(t *testing.T) {
		client := newTestClient("", 0)
		assert.Equal(t, targetURL, client.requestURL(targetURL))
	})
}

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/raw", r.URL.Path)
		assert.Equal(t, targetURL, r.URL.Query().Get("url"))
		assert.Equal(t, "housestock-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body><h1>Barolo</h1></body></html>"))
	}))
	defer server.Close()

	client := newTestClient(server.URL+"/raw?url=", 0)

	page, err := client.Fetch(context.Background(), targetURL)

	require.NoError(t, err)
	assert.Contains(t, page, "<h1>Barolo</h1>")
}

func TestFetch_DecodesDeclaredCharset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		_, _ = w.Write([]byte("<html><body><h1>Sp\xe4tburgunder</h1></body></html>"))
	}))
	defer server.Close()

	client := newTestClient(server.URL+"/raw?url=", 0)

	page, err := client.Fetch(context.Background(), targetURL)

	require.NoError(t, err)
	assert.Contains(t, page, "Spätburgunder")
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL+"/raw?url=", 0)

	page, err := client.Fetch(context.Background(), targetURL)

	assert.Empty(t, page)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)

	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, targetURL, fetchErr.URL)
	assert.Equal(t, http.StatusBadGateway, fetchErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "must not retry by default")
}

func TestFetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL+"/raw?url=", 0)

	_, err := client.Fetch(context.Background(), targetURL)

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetch_RetriesWhenConfigured(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	client := newTestClient(server.URL+"/raw?url=", 2)

	_, err := client.Fetch(context.Background(), targetURL)

	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestFetch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	relay := server.URL + "/raw?url="
	server.Close()

	client := newTestClient(relay, 0)

	_, err := client.Fetch(context.Background(), targetURL)

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetch_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	client := newTestClient(server.URL+"/raw?url=", 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Fetch(ctx, targetURL)

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.ErrorIs(t, err, context.Canceled)
}
