package Store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Momentum/Gateway"
	"Momentum/Models"
)

// fakeBackend serves the goal endpoints over an in-memory collection, so
// the dispatch-then-refetch cycle can be exercised end to end.
type fakeBackend struct {
	mu    sync.Mutex
	goals []Models.Goal
	fail  bool
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/goals/user", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.fail {
			http.Error(w, "backend down", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(f.goals)
	})
	mux.HandleFunc("/goals", func(w http.ResponseWriter, r *http.Request) {
		var goal Models.Goal
		json.NewDecoder(r.Body).Decode(&goal)
		f.mu.Lock()
		goal.RemoteID = "g-new"
		f.goals = append(f.goals, goal)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(goal)
	})
	return mux
}

func newGoalsStore(t *testing.T, backend *fakeBackend) *Store {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	client, err := Gateway.NewClient(Gateway.ClientConfig{BaseURL: server.URL})
	require.NoError(t, err)
	return New(client, nil)
}

func TestGoalsSlice_FetchSucceeds(t *testing.T) {
	backend := &fakeBackend{goals: []Models.Goal{{RemoteID: "g1", Title: "Get healthy"}}}
	store := newGoalsStore(t, backend)

	require.NoError(t, store.Goals.Fetch(context.Background()))

	status, err := store.Goals.State()
	assert.Equal(t, StatusSucceeded, status)
	assert.NoError(t, err)

	goals := store.Goals.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, "g1", goals[0].RemoteID)
}

func TestGoalsSlice_FetchFailureKeepsPreviousData(t *testing.T) {
	backend := &fakeBackend{goals: []Models.Goal{{RemoteID: "g1", Title: "Get healthy"}}}
	store := newGoalsStore(t, backend)

	require.NoError(t, store.Goals.Fetch(context.Background()))

	backend.mu.Lock()
	backend.fail = true
	backend.mu.Unlock()

	err := store.Goals.Fetch(context.Background())
	require.Error(t, err)

	status, stateErr := store.Goals.State()
	assert.Equal(t, StatusFailed, status)
	assert.Error(t, stateErr)
	assert.Len(t, store.Goals.Goals(), 1, "stale data beats no data")
}

func TestGoalsSlice_CreateRefetches(t *testing.T) {
	backend := &fakeBackend{}
	store := newGoalsStore(t, backend)

	err := store.Goals.Create(context.Background(), Models.Goal{Title: "Read more"})
	require.NoError(t, err)

	goals := store.Goals.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, "g-new", goals[0].RemoteID, "mutations refetch the collection")

	status, _ := store.Goals.State()
	assert.Equal(t, StatusSucceeded, status)
}

func TestGoalsSlice_GoalsReturnsCopy(t *testing.T) {
	backend := &fakeBackend{goals: []Models.Goal{{RemoteID: "g1", Title: "Get healthy"}}}
	store := newGoalsStore(t, backend)
	require.NoError(t, store.Goals.Fetch(context.Background()))

	first := store.Goals.Goals()
	first[0].Title = "mutated"

	assert.Equal(t, "Get healthy", store.Goals.Goals()[0].Title)
}
