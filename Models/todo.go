package Models

import "time"

// TodoList mirrors the remote API shape.
type TodoList struct {
	RemoteID  string     `json:"_id,omitempty"`
	UserID    string     `json:"userId,omitempty"`
	Title     string     `json:"title"`
	Items     []TodoItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt,omitempty"`
}

type TodoItem struct {
	RemoteID string `json:"_id,omitempty"`
	Title    string `json:"title"`
	Done     bool   `json:"done"`
}
