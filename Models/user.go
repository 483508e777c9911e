package Models

import "gorm.io/gorm"

// User mirrors the remote account shape. The password never persists on
// this side; login round-trips to the backend and only the session cookie
// is kept.
type User struct {
	RemoteID string `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// UserPreference is a local key-value store for view settings (theme,
// pomodoro durations and the like). Preferences never leave the machine.
type UserPreference struct {
	gorm.Model
	Key   string `json:"key" gorm:"uniqueIndex;not null"`
	Value string `json:"value"`
}
