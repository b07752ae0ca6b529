package model

import "time"

// Notification is a message delivered to a user's in-app inbox.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	EventID   *string   `json:"event_id,omitempty"`
	Read      bool      `json:"read"`
	CreatedOn time.Time `json:"created_on"`
}

// Notification type constants
const (
	NotificationWelcome        = "welcome"
	NotificationEventReminder  = "event_reminder"
	NotificationEventUpdated   = "event_updated"
	NotificationEventCancelled = "event_cancelled"
	NotificationMatchFound     = "match_found"
)

// MaxNotificationMessage caps message length.
const MaxNotificationMessage = 500
