package Gateway

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

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{BaseURL: server.URL})
	require.NoError(t, err)
	return client
}

func TestClient_FetchGoalsDecodesResponse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/goals/user", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id":"g1","title":"Get healthy","milestones":[]}]`))
	}))

	goals, err := client.FetchGoals(context.Background())
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "g1", goals[0].RemoteID)
	assert.Equal(t, "Get healthy", goals[0].Title)
}

func TestClient_NonSuccessBecomesAPIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not signed in", http.StatusUnauthorized)
	}))

	_, err := client.FetchGoals(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "not signed in", apiErr.Body)
}

func TestClient_LoginStoresSessionCookie(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			http.SetCookie(w, &http.Cookie{Name: "jwt", Value: "token-123", Path: "/"})
			w.Write([]byte(`{"_id":"u1","email":"a@b.c"}`))
			return
		}
		// Later calls must carry the session cookie back.
		cookie, err := r.Cookie("jwt")
		if err != nil || cookie.Value != "token-123" {
			http.Error(w, "not signed in", http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`[]`))
	}))

	user, err := client.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.RemoteID)

	cookie := client.SessionCookie()
	require.NotNil(t, cookie)
	assert.Equal(t, "token-123", cookie.Value)

	_, err = client.FetchGoals(context.Background())
	assert.NoError(t, err)
}

func TestClient_RequestTimesOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{BaseURL: server.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = client.FetchGoals(context.Background())
	assert.Error(t, err, "a hung backend must not block forever")
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	client, err := NewClient(ClientConfig{BaseURL: "http://localhost:5000/api/"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api", client.BaseURL)
}
