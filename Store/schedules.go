package Store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Momentum/Gateway"
	"Momentum/Models"
)

// ScheduleSlice caches the user's daily schedules. After every successful
// fetch it writes offline snapshots to the local database, so the planner
// can still render the day when the backend is unreachable.
type ScheduleSlice struct {
	mu      sync.RWMutex
	gateway *Gateway.Client
	db      *gorm.DB

	schedules []Models.DailySchedule
	status    Status
	err       error
}

// Fetch loads the full schedule collection from the backend and refreshes
// the offline snapshots.
func (s *ScheduleSlice) Fetch(ctx context.Context) error {
	s.setLoading()
	schedules, err := s.gateway.FetchSchedules(ctx)
	if err != nil {
		s.setFailed(err)
		return err
	}

	s.mu.Lock()
	s.schedules = schedules
	s.status = StatusSucceeded
	s.err = nil
	s.mu.Unlock()

	s.writeSnapshots(schedules)
	return nil
}

// Schedules returns a copy of the cached collection.
func (s *ScheduleSlice) Schedules() []Models.DailySchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Models.DailySchedule, len(s.schedules))
	copy(out, s.schedules)
	return out
}

// State reports the slice status and last error.
func (s *ScheduleSlice) State() (Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.err
}

// CreateOrUpdate dispatches a schedule upsert for one date, then
// refetches.
func (s *ScheduleSlice) CreateOrUpdate(ctx context.Context, payload Gateway.SchedulePayload) error {
	if _, err := s.gateway.CreateOrUpdateSchedule(ctx, payload); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

// Update dispatches a schedule edit, then refetches.
func (s *ScheduleSlice) Update(ctx context.Context, schedule Models.DailySchedule) error {
	if _, err := s.gateway.UpdateSchedule(ctx, schedule.RemoteID, schedule); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

// Delete dispatches a schedule removal, then refetches.
func (s *ScheduleSlice) Delete(ctx context.Context, scheduleID string) error {
	if err := s.gateway.DeleteSchedule(ctx, scheduleID); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

// AddTask dispatches a task addition, then refetches.
func (s *ScheduleSlice) AddTask(ctx context.Context, scheduleID string, task Models.Task) error {
	if _, err := s.gateway.AddTask(ctx, scheduleID, task); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

// UpdateTask dispatches a task edit, then refetches.
func (s *ScheduleSlice) UpdateTask(ctx context.Context, scheduleID, taskID string, task Models.Task) error {
	if _, err := s.gateway.UpdateTask(ctx, scheduleID, taskID, task); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

// DeleteTask dispatches a task removal, then refetches.
func (s *ScheduleSlice) DeleteTask(ctx context.Context, scheduleID, taskID string) error {
	if err := s.gateway.DeleteTask(ctx, scheduleID, taskID); err != nil {
		s.setFailed(err)
		return err
	}
	return s.Fetch(ctx)
}

// LoadSnapshots hydrates the slice from the offline snapshots. Used at
// startup before the first fetch, and as the fallback when the backend is
// unreachable.
func (s *ScheduleSlice) LoadSnapshots() error {
	if s.db == nil {
		return nil
	}
	var snapshots []Models.ScheduleSnapshot
	if err := s.db.Order("date ASC").Find(&snapshots).Error; err != nil {
		return err
	}

	schedules := make([]Models.DailySchedule, 0, len(snapshots))
	for _, snap := range snapshots {
		var tasks []Models.Task
		if len(snap.Tasks) > 0 {
			if err := json.Unmarshal(snap.Tasks, &tasks); err != nil {
				log.Printf("Skipping corrupt schedule snapshot for %s: %v", snap.Date, err)
				continue
			}
		}
		schedules = append(schedules, Models.DailySchedule{
			RemoteID: snap.RemoteID,
			Date:     snap.Date,
			Tasks:    tasks,
		})
	}

	s.mu.Lock()
	s.schedules = schedules
	if s.status == StatusIdle {
		s.status = StatusSucceeded
	}
	s.mu.Unlock()
	return nil
}

func (s *ScheduleSlice) writeSnapshots(schedules []Models.DailySchedule) {
	if s.db == nil {
		return
	}
	for _, schedule := range schedules {
		tasks, err := json.Marshal(schedule.Tasks)
		if err != nil {
			log.Printf("Failed to encode snapshot tasks for %s: %v", schedule.Date, err)
			continue
		}
		snap := Models.ScheduleSnapshot{
			RemoteID: schedule.RemoteID,
			Date:     schedule.Date,
			Tasks:    tasks,
		}
		err = s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"remote_id", "tasks"}),
		}).Create(&snap).Error
		if err != nil {
			log.Printf("Failed to write schedule snapshot for %s: %v", schedule.Date, err)
		}
	}
}

func (s *ScheduleSlice) setLoading() {
	s.mu.Lock()
	s.status = StatusLoading
	s.mu.Unlock()
}

func (s *ScheduleSlice) setFailed(err error) {
	s.mu.Lock()
	s.status = StatusFailed
	s.err = err
	s.mu.Unlock()
}
