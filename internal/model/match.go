package model

import "math"

// Match component weights. Skills and availability dominate; location is a
// smaller tiebreaker-style contribution.
const (
	SkillWeight        = 40.0
	AvailabilityWeight = 40.0
	LocationCityWeight = 20.0
	// Partial credit when only the state lines up.
	LocationStateWeight = 10.0
)

// MatchLevel buckets derived from the match percentage.
const (
	MatchLevelHigh   = "High"
	MatchLevelMedium = "Medium"
	MatchLevelLow    = "Low"
)

// Match level thresholds (inclusive lower bounds on percentage).
const (
	HighMatchThreshold   = 80
	MediumMatchThreshold = 50
)

// MatchResult is the outcome of scoring one volunteer against one event.
// It is derived on demand and never persisted. Exactly one of the
// volunteer/event identity pairs is populated depending on the direction
// the caller asked for.
type MatchResult struct {
	VolunteerID   string `json:"volunteer_id,omitempty"`
	VolunteerName string `json:"volunteer_name,omitempty"`
	EventID       string `json:"event_id,omitempty"`
	EventName     string `json:"event_name,omitempty"`

	// Score is the points earned, MaxScore the points possible given which
	// components applied. 0 <= Score <= MaxScore always holds.
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`

	Percentage int    `json:"percentage"`
	MatchLevel string `json:"match_level"`

	// Reasons explain positive contributions, Missing explains lost points.
	Reasons []string `json:"reasons"`
	Missing []string `json:"missing"`
}

// MatchLevelFor maps a percentage to its categorical match level.
func MatchLevelFor(percentage int) string {
	switch {
	case percentage >= HighMatchThreshold:
		return MatchLevelHigh
	case percentage >= MediumMatchThreshold:
		return MatchLevelMedium
	default:
		return MatchLevelLow
	}
}

// IsValidMatchLevel reports whether l names a known match level.
func IsValidMatchLevel(l string) bool {
	return l == MatchLevelHigh || l == MatchLevelMedium || l == MatchLevelLow
}

// Finalize computes the percentage and match level from the accumulated
// score and max score. A result with no applicable components (MaxScore 0)
// is a 0% Low match.
func (m *MatchResult) Finalize() {
	if m.MaxScore > 0 {
		m.Percentage = int(math.Round(m.Score / m.MaxScore * 100))
	} else {
		m.Percentage = 0
	}
	m.MatchLevel = MatchLevelFor(m.Percentage)
}

// MatchStats counts candidates per match level across an unfiltered
// candidate set.
type MatchStats struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Add counts one result into the stats.
func (s *MatchStats) Add(level string) {
	switch level {
	case MatchLevelHigh:
		s.High++
	case MatchLevelMedium:
		s.Medium++
	default:
		s.Low++
	}
}
