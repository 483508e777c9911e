package Gateway

import (
	"context"
	"fmt"
	"net/http"

	"Momentum/Models"
)

// SchedulePayload is the create-or-update body for a daily schedule.
type SchedulePayload struct {
	Date  string        `json:"date"`
	Tasks []Models.Task `json:"tasks"`
}

// FetchSchedules retrieves all daily schedules of the signed-in user.
func (c *Client) FetchSchedules(ctx context.Context) ([]Models.DailySchedule, error) {
	var schedules []Models.DailySchedule
	if err := c.do(ctx, http.MethodGet, "/schedules/user", nil, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// FetchScheduleByDate retrieves the schedule planned for one date.
func (c *Client) FetchScheduleByDate(ctx context.Context, date string) (Models.DailySchedule, error) {
	var schedule Models.DailySchedule
	if err := c.do(ctx, http.MethodGet, "/schedules/user/date/"+date, nil, &schedule); err != nil {
		return Models.DailySchedule{}, err
	}
	return schedule, nil
}

// CreateOrUpdateSchedule upserts the schedule for a date. One schedule
// exists per user per date; the backend enforces it.
func (c *Client) CreateOrUpdateSchedule(ctx context.Context, payload SchedulePayload) (Models.DailySchedule, error) {
	var schedule Models.DailySchedule
	if err := c.do(ctx, http.MethodPost, "/schedules", payload, &schedule); err != nil {
		return Models.DailySchedule{}, err
	}
	return schedule, nil
}

// UpdateSchedule updates fields of an existing schedule.
func (c *Client) UpdateSchedule(ctx context.Context, scheduleID string, schedule Models.DailySchedule) (Models.DailySchedule, error) {
	var updated Models.DailySchedule
	if err := c.do(ctx, http.MethodPut, "/schedules/"+scheduleID, schedule, &updated); err != nil {
		return Models.DailySchedule{}, err
	}
	return updated, nil
}

// DeleteSchedule removes a schedule.
func (c *Client) DeleteSchedule(ctx context.Context, scheduleID string) error {
	return c.do(ctx, http.MethodDelete, "/schedules/"+scheduleID, nil, nil)
}

// AddTask appends a task to a schedule.
func (c *Client) AddTask(ctx context.Context, scheduleID string, task Models.Task) (Models.DailySchedule, error) {
	var updated Models.DailySchedule
	body := map[string]Models.Task{"task": task}
	if err := c.do(ctx, http.MethodPost, "/schedules/"+scheduleID, body, &updated); err != nil {
		return Models.DailySchedule{}, err
	}
	return updated, nil
}

// UpdateTask updates one task inside a schedule.
func (c *Client) UpdateTask(ctx context.Context, scheduleID, taskID string, task Models.Task) (Models.DailySchedule, error) {
	var updated Models.DailySchedule
	path := fmt.Sprintf("/schedules/%s/tasks/%s", scheduleID, taskID)
	if err := c.do(ctx, http.MethodPut, path, task, &updated); err != nil {
		return Models.DailySchedule{}, err
	}
	return updated, nil
}

// DeleteTask removes one task from a schedule.
func (c *Client) DeleteTask(ctx context.Context, scheduleID, taskID string) error {
	path := fmt.Sprintf("/schedules/%s/tasks/%s", scheduleID, taskID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
