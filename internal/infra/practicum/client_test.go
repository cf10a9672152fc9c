package practicum

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l.WithField("component", "practicum_test")
}

func TestFetchSendsAuthHeaderAndCursor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "OAuth secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "1700000000", r.URL.Query().Get("from_date"))
		w.Write([]byte(`{"homeworks": [], "current_date": 1700000600}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-token", 5*time.Second, newTestLogger())
	raw, err := client.Fetch(context.Background(), 1700000000)
	require.NoError(t, err)
	assert.JSONEq(t, `{"homeworks": [], "current_date": 1700000600}`, string(raw))
}

func TestFetchNon200Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "token", 5*time.Second, newTestLogger())
	_, err := client.Fetch(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAPIResponse))
	assert.Contains(t, err.Error(), "503")
}

func TestFetchInvalidJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"homeworks": [`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "token", 5*time.Second, newTestLogger())
	_, err := client.Fetch(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestFetchConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Refuse all connections.

	client := NewClient(srv.URL, "token", time.Second, newTestLogger())
	_, err := client.Fetch(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConnection))
}
