package Models

import (
	"time"

	"gorm.io/gorm"
)

// RecurringTask is the materialized per-day working copy of an
// everyDayAction milestone. Completed is tracked independently of the
// backing milestone and never synced to the backend.
type RecurringTask struct {
	gorm.Model
	TaskID         string    `json:"_id" gorm:"uniqueIndex;not null"`
	Title          string    `json:"title" gorm:"not null"`
	Description    string    `json:"description"`
	Step           int       `json:"step"`
	Completed      bool      `json:"completed"`
	Status         string    `json:"status"`
	TargetDate     time.Time `json:"targetDate"`
	EveryDayAction bool      `json:"everyDayAction"`
}

// FromMilestone builds the working copy for a daily milestone.
// The caller is responsible for assigning TaskID when the milestone
// has not been persisted remotely yet.
func FromMilestone(m Milestone) RecurringTask {
	return RecurringTask{
		TaskID:         m.RemoteID,
		Title:          m.Title,
		Description:    m.Description,
		Step:           m.Step,
		Completed:      m.Completed,
		Status:         m.Status,
		TargetDate:     m.TargetDate,
		EveryDayAction: m.EveryDayAction,
	}
}
