package Store

import (
	"gorm.io/gorm"

	"Momentum/Gateway"
)

// Status is the lifecycle of one collection slice.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Store holds the per-collection state of the client. It is an explicit
// dependency handed to whoever needs it, not a process-wide global. Each
// slice tracks its own status and error; mutations dispatch to the
// gateway, then refetch the full collection (last fetch wins, no conflict
// detection).
type Store struct {
	Goals     *GoalsSlice
	Schedules *ScheduleSlice
	Todos     *TodoSlice
	Auth      *AuthSlice
}

// New builds a store over the remote gateway. db backs the schedule
// snapshots kept for offline rendering; it may be nil in tests that do
// not exercise snapshots.
func New(gateway *Gateway.Client, db *gorm.DB) *Store {
	return &Store{
		Goals:     &GoalsSlice{gateway: gateway, status: StatusIdle},
		Schedules: &ScheduleSlice{gateway: gateway, db: db, status: StatusIdle},
		Todos:     &TodoSlice{gateway: gateway, status: StatusIdle},
		Auth:      &AuthSlice{gateway: gateway, status: StatusIdle},
	}
}
