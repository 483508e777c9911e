package CronJobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"Momentum/Recurring"
	"Momentum/Store"
)

// SyncScheduler periodically refetches every collection from the backend
// and reloads the recurring planner, so the working set follows milestone
// edits made from other devices.
type SyncScheduler struct {
	cronScheduler  *cron.Cron
	store          *Store.Store
	planner        *Recurring.Planner
	syncSpec       string
	runImmediately bool
	jobID          cron.EntryID
}

// NewSyncScheduler creates a new sync scheduler with the given configuration
func NewSyncScheduler(store *Store.Store, planner *Recurring.Planner, syncSpec string, runImmediately bool) *SyncScheduler {
	return &SyncScheduler{
		cronScheduler:  cron.New(cron.WithSeconds()),
		store:          store,
		planner:        planner,
		syncSpec:       syncSpec,
		runImmediately: runImmediately,
	}
}

// Start initiates the background sync cron job
func (s *SyncScheduler) Start() error {
	var err error
	s.jobID, err = s.cronScheduler.AddFunc(s.syncSpec, func() {
		log.Println("Running scheduled collection sync")
		s.RunSync()
	})

	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	s.cronScheduler.Start()
	log.Printf("Background sync scheduler started (%s)", s.syncSpec)

	if s.runImmediately {
		log.Println("Running initial sync")
		s.RunSync()
	}

	return nil
}

// Stop terminates the sync scheduler
func (s *SyncScheduler) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
		log.Println("Background sync scheduler stopped")
	}
}

// UpdateSchedule changes the sync cadence.
// Format: "0 */15 * * * *" = every 15 minutes
func (s *SyncScheduler) UpdateSchedule(spec string) error {
	s.cronScheduler.Remove(s.jobID)

	var err error
	s.jobID, err = s.cronScheduler.AddFunc(spec, func() {
		log.Println("Running scheduled collection sync")
		s.RunSync()
	})

	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	s.syncSpec = spec
	log.Printf("Sync schedule updated to: %s\n", spec)
	return nil
}

// RunSync refetches goals, schedules and todos, then reloads the
// planner. Failures are logged and absorbed; a slice that failed keeps
// its last good data.
func (s *SyncScheduler) RunSync() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.store.Goals.Fetch(ctx); err != nil {
		log.Printf("Error syncing goals: %v", err)
	} else {
		if err := s.planner.Load(s.store.Goals.Goals()); err != nil {
			log.Printf("Error reloading recurring tasks: %v", err)
		}
	}

	if err := s.store.Schedules.Fetch(ctx); err != nil {
		log.Printf("Error syncing schedules: %v", err)
	}
	if err := s.store.Todos.Fetch(ctx); err != nil {
		log.Printf("Error syncing todos: %v", err)
	}
}
