package mfapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return Client{
		HttpClient: server.Client(),
		BaseUrl:    server.URL,
	}, server
}

func TestResolveISIN(t *testing.T) {
	t.Run("prefers growth plan isin", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/mf/120503/identifiers", r.URL.Path)
			w.Write([]byte(`{"meta": {"scheme_code": "120503", "isin_growth": "INF200K01180", "isin_div_reinvestment": "INF200K01198"}}`))
		})
		defer server.Close()

		isin, err := client.ResolveISIN(context.Background(), "120503")
		require.NoError(t, err)
		require.Equal(t, "INF200K01180", isin)
	})

	t.Run("falls back to dividend reinvestment isin", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"meta": {"scheme_code": "120503", "isin_div_reinvestment": "INF200K01198"}}`))
		})
		defer server.Close()

		isin, err := client.ResolveISIN(context.Background(), "120503")
		require.NoError(t, err)
		require.Equal(t, "INF200K01198", isin)
	})

	t.Run("no identifier listed", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"meta": {"scheme_code": "120503", "scheme_name": "Some Fund"}}`))
		})
		defer server.Close()

		_, err := client.ResolveISIN(context.Background(), "120503")
		require.ErrorIs(t, err, ErrNoIdentifier)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`scheme not found`))
		})
		defer server.Close()

		_, err := client.ResolveISIN(context.Background(), "999999")
		require.ErrorContains(t, err, "status code 404")
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>gateway error</html>`))
		})
		defer server.Close()

		_, err := client.ResolveISIN(context.Background(), "120503")
		require.ErrorContains(t, err, "failed to parse")
	})
}
