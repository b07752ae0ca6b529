package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/volunteerhub/api/internal/model"
)

// maxCandidates bounds how many profiles or events a single finder call scores.
const maxCandidates = 500

// Pagination bounds for finder results
const (
	defaultMatchLimit = 50
	maxMatchLimit     = 200
)

// MatchingService scores volunteers against events and ranks candidates in
// both directions. It only ever reads from its repositories; match results
// are computed fresh on every call and never persisted.
type MatchingService struct {
	profileRepo ProfileRepository
	eventRepo   EventRepository
}

// MatchingServiceConfig holds configuration for the matching service
type MatchingServiceConfig struct {
	ProfileRepo ProfileRepository
	EventRepo   EventRepository
}

// NewMatchingService creates a new matching service
func NewMatchingService(cfg MatchingServiceConfig) *MatchingService {
	return &MatchingService{
		profileRepo: cfg.ProfileRepo,
		eventRepo:   cfg.EventRepo,
	}
}

// MatchOptions filters and paginates finder results
type MatchOptions struct {
	MinPercentage int
	MatchLevel    string // High, Medium, or Low; empty for no filter
	Limit         int    // default 50, max 200
	Offset        int
}

// VolunteersForEventResult is the outcome of ranking volunteers for an event
type VolunteersForEventResult struct {
	EventID        string               `json:"event_id"`
	EventName      string               `json:"event_name"`
	RequiredSkills []string             `json:"required_skills,omitempty"`
	EventDate      *time.Time           `json:"event_date,omitempty"`
	Location       string               `json:"location,omitempty"`
	TotalMatches   int                  `json:"total_matches"`
	Matches        []*model.MatchResult `json:"matches"`
	// Stats counts match levels across all candidates, before the
	// MinPercentage/MatchLevel filters are applied.
	Stats model.MatchStats `json:"stats"`
}

// EventMatch is one ranked event for a volunteer, carrying the event's
// descriptive fields alongside the match scoring fields.
type EventMatch struct {
	model.MatchResult
	Description *string    `json:"description,omitempty"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	Location    string     `json:"location,omitempty"`
	Urgency     string     `json:"urgency,omitempty"`
}

// EventsForVolunteerResult is the outcome of ranking events for a volunteer
type EventsForVolunteerResult struct {
	VolunteerID   string        `json:"volunteer_id"`
	VolunteerName string        `json:"volunteer_name"`
	TotalMatches  int           `json:"total_matches"`
	Matches       []*EventMatch `json:"matches"`
}

// FindVolunteersForEvent ranks volunteer profiles against one event.
// Returns ErrEventNotFound when the event does not exist.
func (s *MatchingService) FindVolunteersForEvent(ctx context.Context, eventID string, opts MatchOptions) (*VolunteersForEventResult, error) {
	opts, err := normalizeMatchOptions(opts)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	profiles, err := s.profileRepo.List(ctx, maxCandidates)
	if err != nil {
		return nil, err
	}

	all := make([]*model.MatchResult, 0, len(profiles))
	stats := model.MatchStats{}
	for _, profile := range profiles {
		m := ScoreMatch(profile, event)
		m.VolunteerID = profile.ID
		m.VolunteerName = profile.Name
		stats.Add(m.MatchLevel)
		all = append(all, m)
	}

	filtered := make([]*model.MatchResult, 0, len(all))
	for _, m := range all {
		if m.Percentage < opts.MinPercentage {
			continue
		}
		if opts.MatchLevel != "" && m.MatchLevel != opts.MatchLevel {
			continue
		}
		filtered = append(filtered, m)
	}

	// Stable: candidates with equal scores keep their enumeration order
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})

	page := paginateMatches(filtered, opts.Offset, opts.Limit)

	return &VolunteersForEventResult{
		EventID:        event.ID,
		EventName:      event.Name,
		RequiredSkills: event.RequiredSkills,
		EventDate:      event.EventDate,
		Location:       event.Location,
		TotalMatches:   len(filtered),
		Matches:        page,
		Stats:          stats,
	}, nil
}

// FindEventsForVolunteer ranks events against one volunteer profile.
// Returns ErrVolunteerNotFound when the profile does not exist.
func (s *MatchingService) FindEventsForVolunteer(ctx context.Context, volunteerID string, opts MatchOptions) (*EventsForVolunteerResult, error) {
	opts, err := normalizeMatchOptions(opts)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrVolunteerNotFound
	}

	events, err := s.eventRepo.List(ctx, "", maxCandidates)
	if err != nil {
		return nil, err
	}

	filtered := make([]*EventMatch, 0, len(events))
	for _, event := range events {
		m := ScoreMatch(profile, event)
		m.EventID = event.ID
		m.EventName = event.Name
		if m.Percentage < opts.MinPercentage {
			continue
		}
		if opts.MatchLevel != "" && m.MatchLevel != opts.MatchLevel {
			continue
		}
		filtered = append(filtered, &EventMatch{
			MatchResult: *m,
			Description: event.Description,
			EventDate:   event.EventDate,
			Location:    event.Location,
			Urgency:     event.Urgency,
		})
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})

	total := len(filtered)
	start := opts.Offset
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	return &EventsForVolunteerResult{
		VolunteerID:   profile.ID,
		VolunteerName: profile.Name,
		TotalMatches:  total,
		Matches:       filtered[start:end],
	}, nil
}

// GetMatchScore scores one volunteer against one event.
// Returns ErrVolunteerNotFound or ErrEventNotFound when either id is unresolved.
func (s *MatchingService) GetMatchScore(ctx context.Context, volunteerID, eventID string) (*model.MatchResult, error) {
	profile, err := s.profileRepo.GetByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrVolunteerNotFound
	}

	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	m := ScoreMatch(profile, event)
	m.VolunteerID = profile.ID
	m.VolunteerName = profile.Name
	m.EventID = event.ID
	m.EventName = event.Name
	return m, nil
}

// ScoreMatch scores one volunteer profile against one event. It is a pure
// function: no I/O, no side effects, and no error conditions. Missing
// optional data (no required skills, no availability, no location) skips the
// corresponding component instead of failing.
//
// Three weighted components: skills (40), weekday availability (40), and
// location (20, with 10 partial credit for a state-level match). The skill
// maximum always counts toward maxScore; the availability and location
// maximums count only when those components are evaluated.
func ScoreMatch(profile *model.VolunteerProfile, event *model.Event) *model.MatchResult {
	m := &model.MatchResult{
		Reasons: []string{},
		Missing: []string{},
	}

	scoreSkills(m, profile, event)
	scoreAvailability(m, profile, event)
	scoreLocation(m, profile, event)

	m.Finalize()
	return m
}

func scoreSkills(m *model.MatchResult, profile *model.VolunteerProfile, event *model.Event) {
	m.MaxScore += model.SkillWeight

	// Blank skill labels are ignored: they would otherwise surface as a
	// nonsensical "Missing skill: " entry and dilute the matched ratio.
	required := make([]string, 0, len(event.RequiredSkills))
	for _, req := range event.RequiredSkills {
		if strings.TrimSpace(req) != "" {
			required = append(required, req)
		}
	}
	if len(required) == 0 {
		return
	}

	matched := 0
	unmatched := make([]string, 0)
	for _, req := range required {
		if hasMatchingSkill(profile.Skills, req) {
			matched++
		} else {
			unmatched = append(unmatched, req)
		}
	}

	m.Score += float64(matched) / float64(len(required)) * model.SkillWeight

	switch {
	case matched == len(required):
		m.Reasons = append(m.Reasons, "Has all required skills")
	case matched > 0:
		m.Reasons = append(m.Reasons, fmt.Sprintf("Has %d/%d required skills", matched, len(required)))
		for _, skill := range unmatched {
			m.Missing = append(m.Missing, "Missing skill: "+skill)
		}
	default:
		m.Missing = append(m.Missing, "No matching skills")
	}
}

func scoreAvailability(m *model.MatchResult, profile *model.VolunteerProfile, event *model.Event) {
	if event.EventDate == nil {
		return
	}
	if profile.Availability == nil || len(profile.Availability.Days) == 0 {
		return
	}

	m.MaxScore += model.AvailabilityWeight

	weekday := event.EventDate.Weekday().String()
	abbrev := weekday[:3]

	available := false
	for _, day := range profile.Availability.Days {
		if strings.EqualFold(day, weekday) || strings.EqualFold(day, abbrev) {
			available = true
			break
		}
	}

	if available {
		m.Score += model.AvailabilityWeight
		m.Reasons = append(m.Reasons, "Available on "+weekday)
	} else {
		m.Missing = append(m.Missing, "Not available on "+weekday)
	}
}

func scoreLocation(m *model.MatchResult, profile *model.VolunteerProfile, event *model.Event) {
	if event.Location == "" {
		return
	}
	if profile.Location == nil || profile.Location.City == "" {
		return
	}

	m.MaxScore += model.LocationCityWeight

	eventLoc := strings.ToLower(event.Location)
	city := strings.ToLower(profile.Location.City)

	if strings.Contains(eventLoc, city) || strings.Contains(city, eventLoc) {
		m.Score += model.LocationCityWeight
		m.Reasons = append(m.Reasons, "Same city as event")
		return
	}

	if state := strings.ToLower(strings.TrimSpace(profile.Location.State)); state != "" {
		if strings.Contains(eventLoc, state) {
			m.Score += model.LocationStateWeight
			m.Reasons = append(m.Reasons, "Same state as event")
		}
	}
	// A full location mismatch earns nothing and adds no explanation
}

// hasMatchingSkill reports whether any volunteer skill matches the required
// skill by symmetric case-insensitive substring containment. Substring
// matching tolerates label drift such as "Teaching" vs "Teaching/Tutoring".
func hasMatchingSkill(skills []string, required string) bool {
	req := strings.ToLower(strings.TrimSpace(required))
	if req == "" {
		return false
	}
	for _, skill := range skills {
		s := strings.ToLower(strings.TrimSpace(skill))
		if s == "" {
			continue
		}
		if strings.Contains(s, req) || strings.Contains(req, s) {
			return true
		}
	}
	return false
}

// normalizeWeekday maps a weekday name or 3-letter abbreviation to the full
// weekday name. Returns "" when the input is not a recognized weekday.
func normalizeWeekday(day string) string {
	d := strings.ToLower(strings.TrimSpace(day))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		full := wd.String()
		if d == strings.ToLower(full) || d == strings.ToLower(full[:3]) {
			return full
		}
	}
	return ""
}

func normalizeMatchOptions(opts MatchOptions) (MatchOptions, error) {
	if opts.MinPercentage < 0 || opts.MinPercentage > 100 {
		return opts, ErrInvalidPercentage
	}
	if opts.MatchLevel != "" && !model.IsValidMatchLevel(opts.MatchLevel) {
		return opts, ErrInvalidMatchLevel
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultMatchLimit
	}
	if opts.Limit > maxMatchLimit {
		opts.Limit = maxMatchLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return opts, nil
}

func paginateMatches(matches []*model.MatchResult, offset, limit int) []*model.MatchResult {
	total := len(matches)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matches[start:end]
}
