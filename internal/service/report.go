package service

import (
	"context"
	"sort"
	"time"

	"github.com/volunteerhub/api/internal/model"
)

// topMatchesPerReport caps how many ranked matches a report embeds.
const topMatchesPerReport = 10

// VolunteerReport summarizes how one volunteer matches across all events
type VolunteerReport struct {
	VolunteerID   string           `json:"volunteer_id"`
	VolunteerName string           `json:"volunteer_name"`
	GeneratedOn   time.Time        `json:"generated_on"`
	EventsScored  int              `json:"events_scored"`
	Levels        model.MatchStats `json:"levels"`
	TopMatches    []*EventMatch    `json:"top_matches"`
}

// EventReport summarizes the candidate pool for one event
type EventReport struct {
	EventID        string               `json:"event_id"`
	EventName      string               `json:"event_name"`
	GeneratedOn    time.Time            `json:"generated_on"`
	CandidateCount int                  `json:"candidate_count"`
	Levels         model.MatchStats     `json:"levels"`
	SkillCoverage  map[string]int       `json:"skill_coverage,omitempty"`
	TopCandidates  []*model.MatchResult `json:"top_candidates"`
}

// ReportService builds live matching summaries. Reports are computed from
// current data on every call; nothing is stored.
type ReportService struct {
	profileRepo ProfileRepository
	eventRepo   EventRepository
}

// ReportServiceConfig holds configuration for the report service
type ReportServiceConfig struct {
	ProfileRepo ProfileRepository
	EventRepo   EventRepository
}

// NewReportService creates a new report service
func NewReportService(cfg ReportServiceConfig) *ReportService {
	return &ReportService{
		profileRepo: cfg.ProfileRepo,
		eventRepo:   cfg.EventRepo,
	}
}

// VolunteerReport scores a volunteer against every event and summarizes the
// outcome. Returns ErrVolunteerNotFound when the profile does not exist.
func (s *ReportService) VolunteerReport(ctx context.Context, volunteerID string) (*VolunteerReport, error) {
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

	levels := model.MatchStats{}
	matches := make([]*EventMatch, 0, len(events))
	for _, event := range events {
		m := ScoreMatch(profile, event)
		m.EventID = event.ID
		m.EventName = event.Name
		levels.Add(m.MatchLevel)
		matches = append(matches, &EventMatch{
			MatchResult: *m,
			Description: event.Description,
			EventDate:   event.EventDate,
			Location:    event.Location,
			Urgency:     event.Urgency,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > topMatchesPerReport {
		matches = matches[:topMatchesPerReport]
	}

	return &VolunteerReport{
		VolunteerID:   profile.ID,
		VolunteerName: profile.Name,
		GeneratedOn:   time.Now().UTC(),
		EventsScored:  len(events),
		Levels:        levels,
		TopMatches:    matches,
	}, nil
}

// EventReport scores every volunteer against an event and summarizes the
// candidate pool. Returns ErrEventNotFound when the event does not exist.
func (s *ReportService) EventReport(ctx context.Context, eventID string) (*EventReport, error) {
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

	levels := model.MatchStats{}
	candidates := make([]*model.MatchResult, 0, len(profiles))
	var coverage map[string]int
	if len(event.RequiredSkills) > 0 {
		coverage = make(map[string]int, len(event.RequiredSkills))
		for _, skill := range event.RequiredSkills {
			coverage[skill] = 0
		}
	}

	for _, profile := range profiles {
		m := ScoreMatch(profile, event)
		m.VolunteerID = profile.ID
		m.VolunteerName = profile.Name
		levels.Add(m.MatchLevel)
		candidates = append(candidates, m)

		for _, skill := range event.RequiredSkills {
			if hasMatchingSkill(profile.Skills, skill) {
				coverage[skill]++
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > topMatchesPerReport {
		candidates = candidates[:topMatchesPerReport]
	}

	return &EventReport{
		EventID:        event.ID,
		EventName:      event.Name,
		GeneratedOn:    time.Now().UTC(),
		CandidateCount: len(profiles),
		Levels:         levels,
		SkillCoverage:  coverage,
		TopCandidates:  candidates,
	}, nil
}
