package model

import "time"

const (
	ResourceCustomer = "cliente"
	ResourceProduct  = "produto"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ResourceEvent is published after a write has been committed.
// Data holds the row as returned by the statement (for deletes, the row as it
// was before removal).
type ResourceEvent struct {
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	ID         int64     `json:"id"`
	Data       any       `json:"data,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
