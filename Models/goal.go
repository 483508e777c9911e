package Models

import (
	"time"
)

// Goal mirrors the remote API shape. Goals live on the backend; only the
// recurring tasks derived from their milestones are cached locally.
type Goal struct {
	RemoteID    string      `json:"_id,omitempty"`
	UserID      string      `json:"userId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Step        int         `json:"step"`
	Priority    string      `json:"priority"`
	Status      string      `json:"status"`
	Progress    int         `json:"progress"`
	TargetDate  time.Time   `json:"targetDate"`
	Milestones  []Milestone `json:"milestones"`
	CreatedAt   time.Time   `json:"createdAt,omitempty"`
	UpdatedAt   time.Time   `json:"updatedAt,omitempty"`
}

type Milestone struct {
	RemoteID       string    `json:"_id,omitempty"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Step           int       `json:"step"`
	Completed      bool      `json:"completed"`
	Status         string    `json:"status"`
	TargetDate     time.Time `json:"targetDate"`
	EveryDayAction bool      `json:"everyDayAction"`
}

// Goal status values as the backend stores them (the API is French).
const (
	GoalStatusNotStarted = "non démarré"
	GoalStatusInProgress = "en cours"
	GoalStatusComplete   = "complet"
)
