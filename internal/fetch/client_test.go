package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidyprep/internal/config"
)

func testClient() *Client {
	return NewClient(config.HTTPConfig{
		Timeout:   5 * time.Second,
		UserAgent: "tidyprep-test/1.0",
	})
}

func TestClient_Fetch(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte("country\tcode\n"))
	}))
	defer server.Close()

	body, err := testClient().Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "country\tcode\n", string(body))
	assert.Equal(t, "tidyprep-test/1.0", gotUserAgent)
}

func TestClient_FetchNonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
		{name: "forbidden", status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, err := testClient().Fetch(context.Background(), server.URL)
			assert.ErrorIs(t, err, ErrBadStatus)
		})
	}
}

func TestClient_FetchCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testClient().Fetch(ctx, server.URL)
	assert.Error(t, err)
}

func TestClient_FetchInvalidURL(t *testing.T) {
	_, err := testClient().Fetch(context.Background(), "http://127.0.0.1:1/nope")
	assert.Error(t, err)
}
