package models

import "time"

// Notification kinds.
const (
	NotificationLike = "like"
)

// Notification is a user-facing entry in the notification log.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}
