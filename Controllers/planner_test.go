package Controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Momentum/Gateway"
	"Momentum/Models"
	"Momentum/Recurring"
	"Momentum/Store"
	"Momentum/middleware"
)

func openControllerDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Models.RecurringTask{}, &Models.UserPreference{}))
	return db
}

// plannerFixture wires a planner app over a fake backend that serves one
// goal with a daily milestone and one schedule.
func plannerFixture(t *testing.T) (*fiber.App, *Recurring.Planner) {
	t.Helper()

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	goals := []Models.Goal{{
		RemoteID: "g1",
		Title:    "Get healthy",
		Milestones: []Models.Milestone{
			{RemoteID: "m1", Title: "Stretch", TargetDate: day, EveryDayAction: true},
		},
	}}
	schedules := []Models.DailySchedule{{
		RemoteID: "s1",
		Date:     "2024-03-01",
		Tasks:    []Models.Task{{RemoteID: "t1", Title: "Standup", Priority: Models.PriorityHigh}},
	}}

	mux := http.NewServeMux()
	mux.HandleFunc("/goals/user", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(goals)
	})
	mux.HandleFunc("/schedules/user", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(schedules)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := Gateway.NewClient(Gateway.ClientConfig{BaseURL: server.URL})
	require.NoError(t, err)

	store := Store.New(client, nil)
	require.NoError(t, store.Goals.Fetch(context.Background()))
	require.NoError(t, store.Schedules.Fetch(context.Background()))

	planner := Recurring.NewPlanner(Recurring.NewTaskDB(openControllerDB(t)))
	require.NoError(t, planner.Load(store.Goals.Goals()))

	controller := NewPlannerController(planner, store)
	app := fiber.New()
	plan := app.Group("/api/planner", middleware.Verify())
	plan.Get("/recurring", controller.GetRecurring)
	plan.Post("/recurring/reload", controller.ReloadRecurring)
	plan.Post("/recurring/:id/toggle", controller.ToggleRecurring)
	plan.Get("/today", controller.GetToday)
	plan.Get("/date/:date", controller.GetByDate)

	return app, planner
}

func authedRequest(t *testing.T, method, target string) *http.Request {
	t.Helper()
	token, err := middleware.IssueSession("u1")
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
	return req
}

func TestPlanner_RequiresSession(t *testing.T) {
	app, _ := plannerFixture(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/planner/recurring", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPlanner_GetRecurring(t *testing.T) {
	app, _ := plannerFixture(t)

	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/planner/recurring"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var tasks []Models.RecurringTask
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Stretch", tasks[0].Title)
}

func TestPlanner_ToggleRecurring(t *testing.T) {
	app, planner := plannerFixture(t)

	resp, err := app.Test(authedRequest(t, http.MethodPost, "/api/planner/recurring/m1/toggle"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var task Models.RecurringTask
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&task))
	assert.True(t, task.Completed)
	assert.True(t, planner.Tasks()[0].Completed)
}

func TestPlanner_ToggleUnknownTaskIs404(t *testing.T) {
	app, _ := plannerFixture(t)

	resp, err := app.Test(authedRequest(t, http.MethodPost, "/api/planner/recurring/nope/toggle"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPlanner_GetByDate(t *testing.T) {
	app, _ := plannerFixture(t)

	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/planner/date/2024-03-01"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Date     string                `json:"date"`
		Schedule *Models.DailySchedule `json:"schedule"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2024-03-01", body.Date)
	require.NotNil(t, body.Schedule)
	require.Len(t, body.Schedule.Tasks, 1)
	assert.Equal(t, "Standup", body.Schedule.Tasks[0].Title)
}

func TestPlanner_MissingDateIsEmptyPayloadNotError(t *testing.T) {
	app, _ := plannerFixture(t)

	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/planner/date/2024-03-09"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Date     string                `json:"date"`
		Schedule *Models.DailySchedule `json:"schedule"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2024-03-09", body.Date)
	assert.Nil(t, body.Schedule)
}

func TestPlanner_GetTodayUsesClock(t *testing.T) {
	app, _ := plannerFixture(t)

	restore := timeNow
	timeNow = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local) }
	defer func() { timeNow = restore }()

	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/planner/today"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Date     string                `json:"date"`
		Schedule *Models.DailySchedule `json:"schedule"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2024-03-01", body.Date)
	require.NotNil(t, body.Schedule)
}
