package model

import "time"

// VolunteerProfile holds the information used to match a volunteer to events.
// Profiles are managed through the profile service; the matching engine only
// ever reads them.
type VolunteerProfile struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	Name         string        `json:"name"`
	Skills       []string      `json:"skills,omitempty"`
	Location     *Location     `json:"location,omitempty"`
	Availability *Availability `json:"availability,omitempty"`
	CreatedOn    time.Time     `json:"created_on"`
	UpdatedOn    time.Time     `json:"updated_on"`
}

// Location stores the volunteer's home area. Both fields are optional free
// text; matching compares them case-insensitively against event locations.
type Location struct {
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
}

// Availability records which weekdays a volunteer can work. Entries may be
// full weekday names ("Monday") or three-letter abbreviations ("Mon"); the
// two forms are equivalent.
type Availability struct {
	Days []string `json:"days,omitempty"`
}

// Profile constraints
const (
	MaxNameLength = 100
	MaxSkills     = 20
	MaxSkillLabel = 60
)

// CreateProfileRequest represents a request to create or replace a profile
type CreateProfileRequest struct {
	Name         string        `json:"name"`
	Skills       []string      `json:"skills,omitempty"`
	Location     *Location     `json:"location,omitempty"`
	Availability *Availability `json:"availability,omitempty"`
}

// UpdateProfileRequest represents a request to partially update a profile
type UpdateProfileRequest struct {
	Name         *string       `json:"name,omitempty"`
	Skills       []string      `json:"skills,omitempty"`
	Location     *Location     `json:"location,omitempty"`
	Availability *Availability `json:"availability,omitempty"`
}
