package models

// Event types published for user mutations.
const (
	UserCreated = "user.created"
	UserUpdated = "user.updated"
	UserDeleted = "user.deleted"
)

// UserEvent is published to Kafka after a successful mutation of a user.
type UserEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier of the event.
	Type      string `json:"type"`      // Type is one of user.created, user.updated or user.deleted.
	UserID    int64  `json:"user_id"`   // UserID is the id of the affected user.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (seconds) of the mutation.
}
