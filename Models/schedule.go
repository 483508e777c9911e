package Models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Task is an individual entry inside a daily schedule.
type Task struct {
	RemoteID      string `json:"_id,omitempty"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Priority      string `json:"priority"`
	Status        string `json:"status"`
	EstimatedTime int    `json:"estimatedTime"`
	StartTime     string `json:"startTime,omitempty"`
	EndTime       string `json:"endTime,omitempty"`
}

// DailySchedule mirrors the remote API shape. One schedule per user per
// date, enforced by the backend.
type DailySchedule struct {
	RemoteID  string    `json:"_id,omitempty"`
	UserID    string    `json:"userId"`
	Date      string    `json:"date"`
	Tasks     []Task    `json:"tasks"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// ScheduleSnapshot is the local offline copy of a fetched schedule, written
// after each successful sync so the planner can still render without the
// backend. Tasks are stored as a JSON column.
type ScheduleSnapshot struct {
	gorm.Model
	RemoteID string         `json:"_id" gorm:"index"`
	Date     string         `json:"date" gorm:"uniqueIndex;not null"`
	Tasks    datatypes.JSON `json:"tasks"`
}

// Task status values as the backend stores them.
const (
	TaskStatusToDo       = "à faire"
	TaskStatusInProgress = "en cours"
	TaskStatusDone       = "complet"
)

// Task priority values as the backend stores them.
const (
	PriorityHigh   = "haute"
	PriorityMedium = "moyenne"
	PriorityLow    = "basse"
)
