package model

import "time"

// Event represents a volunteer event that needs staffing.
type Event struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    *string    `json:"description,omitempty"`
	Location       string     `json:"location,omitempty"`
	RequiredSkills []string   `json:"required_skills,omitempty"`
	// EventDate may be absent for events still being planned. Matching only
	// uses the calendar weekday; a missing date skips the availability check.
	EventDate *time.Time `json:"event_date,omitempty"`
	Urgency   string     `json:"urgency"`
	Status    string     `json:"status"`
	CreatedBy string     `json:"created_by"`
	CreatedOn time.Time  `json:"created_on"`
	UpdatedOn time.Time  `json:"updated_on"`
}

// Urgency constants. Urgency is informational only and does not affect
// match scoring.
const (
	UrgencyHigh   = "High"
	UrgencyMedium = "Medium"
	UrgencyLow    = "Low"
)

// EventStatus constants
const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"
)

// Event constraints
const (
	MaxEventNameLength  = 120
	MaxDescriptionChars = 2000
	MaxRequiredSkills   = 20
)

// IsValidUrgency reports whether u is one of the recognized urgency levels.
func IsValidUrgency(u string) bool {
	return u == UrgencyHigh || u == UrgencyMedium || u == UrgencyLow
}

// CreateEventRequest represents a request to create an event
type CreateEventRequest struct {
	Name           string   `json:"name"`
	Description    *string  `json:"description,omitempty"`
	Location       string   `json:"location,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	EventDate      *string  `json:"event_date,omitempty"` // RFC 3339
	Urgency        string   `json:"urgency"`
}

// UpdateEventRequest represents a request to partially update an event
type UpdateEventRequest struct {
	Name           *string  `json:"name,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Location       *string  `json:"location,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	EventDate      *string  `json:"event_date,omitempty"`
	Urgency        *string  `json:"urgency,omitempty"`
	Status         *string  `json:"status,omitempty"`
}
