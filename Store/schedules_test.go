package Store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Momentum/Gateway"
	"Momentum/Models"
)

func openSnapshotDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Models.ScheduleSnapshot{}))
	return db
}

func scheduleBackend(schedules []Models.DailySchedule) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/schedules/user", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(schedules)
	})
	return mux
}

func TestScheduleSlice_FetchWritesSnapshots(t *testing.T) {
	schedules := []Models.DailySchedule{{
		RemoteID: "s1",
		Date:     "2024-03-01",
		Tasks:    []Models.Task{{RemoteID: "t1", Title: "Standup", Priority: Models.PriorityHigh}},
	}}
	server := httptest.NewServer(scheduleBackend(schedules))
	t.Cleanup(server.Close)

	client, err := Gateway.NewClient(Gateway.ClientConfig{BaseURL: server.URL})
	require.NoError(t, err)
	db := openSnapshotDB(t)
	store := New(client, db)

	require.NoError(t, store.Schedules.Fetch(context.Background()))

	var snapshots []Models.ScheduleSnapshot
	require.NoError(t, db.Find(&snapshots).Error)
	require.Len(t, snapshots, 1)
	assert.Equal(t, "2024-03-01", snapshots[0].Date)
}

func TestScheduleSlice_SnapshotsHydrateAFreshSlice(t *testing.T) {
	schedules := []Models.DailySchedule{{
		RemoteID: "s1",
		Date:     "2024-03-01",
		Tasks:    []Models.Task{{RemoteID: "t1", Title: "Standup"}},
	}}
	server := httptest.NewServer(scheduleBackend(schedules))
	t.Cleanup(server.Close)

	client, err := Gateway.NewClient(Gateway.ClientConfig{BaseURL: server.URL})
	require.NoError(t, err)
	db := openSnapshotDB(t)

	require.NoError(t, New(client, db).Schedules.Fetch(context.Background()))

	// A second store over the same database simulates the next start-up,
	// before any backend call.
	offline := New(client, db)
	require.NoError(t, offline.Schedules.LoadSnapshots())

	got := offline.Schedules.Schedules()
	require.Len(t, got, 1)
	assert.Equal(t, "2024-03-01", got[0].Date)
	require.Len(t, got[0].Tasks, 1)
	assert.Equal(t, "Standup", got[0].Tasks[0].Title)

	status, _ := offline.Schedules.State()
	assert.Equal(t, StatusSucceeded, status)
}

func TestScheduleSlice_LoadSnapshotsSkipsCorruptRows(t *testing.T) {
	db := openSnapshotDB(t)
	require.NoError(t, db.Create(&Models.ScheduleSnapshot{
		Date:  "2024-03-01",
		Tasks: []byte("{broken"),
	}).Error)
	require.NoError(t, db.Create(&Models.ScheduleSnapshot{
		Date:  "2024-03-02",
		Tasks: []byte(`[{"title":"Standup"}]`),
	}).Error)

	store := New(nil, db)
	require.NoError(t, store.Schedules.LoadSnapshots())

	got := store.Schedules.Schedules()
	require.Len(t, got, 1)
	assert.Equal(t, "2024-03-02", got[0].Date)
}

func TestScheduleSlice_RefetchOverwritesSnapshot(t *testing.T) {
	schedules := []Models.DailySchedule{{RemoteID: "s1", Date: "2024-03-01"}}
	server := httptest.NewServer(scheduleBackend(schedules))
	t.Cleanup(server.Close)

	client, err := Gateway.NewClient(Gateway.ClientConfig{BaseURL: server.URL})
	require.NoError(t, err)
	db := openSnapshotDB(t)
	store := New(client, db)

	require.NoError(t, store.Schedules.Fetch(context.Background()))
	require.NoError(t, store.Schedules.Fetch(context.Background()))

	var count int64
	require.NoError(t, db.Model(&Models.ScheduleSnapshot{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "snapshots upsert by date, never duplicate")
}
