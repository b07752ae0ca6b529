package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/volunteerhub/api/internal/model"
)

// ============================================================================
// Mock repositories
// ============================================================================

type mockProfileRepo struct {
	createFunc      func(ctx context.Context, profile *model.VolunteerProfile) error
	getByIDFunc     func(ctx context.Context, id string) (*model.VolunteerProfile, error)
	getByUserIDFunc func(ctx context.Context, userID string) (*model.VolunteerProfile, error)
	updateFunc      func(ctx context.Context, userID string, updates map[string]interface{}) (*model.VolunteerProfile, error)
	deleteFunc      func(ctx context.Context, userID string) error
	listFunc        func(ctx context.Context, limit int) ([]*model.VolunteerProfile, error)
	countFunc       func(ctx context.Context) (int, error)
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *model.VolunteerProfile) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id string) (*model.VolunteerProfile, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID string) (*model.VolunteerProfile, error) {
	if m.getByUserIDFunc != nil {
		return m.getByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileRepo) Update(ctx context.Context, userID string, updates map[string]interface{}) (*model.VolunteerProfile, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, updates)
	}
	return nil, nil
}

func (m *mockProfileRepo) Delete(ctx context.Context, userID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID)
	}
	return nil
}

func (m *mockProfileRepo) List(ctx context.Context, limit int) ([]*model.VolunteerProfile, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockProfileRepo) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

type mockEventRepo struct {
	createFunc       func(ctx context.Context, event *model.Event) error
	getFunc          func(ctx context.Context, eventID string) (*model.Event, error)
	updateFunc       func(ctx context.Context, eventID string, updates map[string]interface{}) (*model.Event, error)
	deleteFunc       func(ctx context.Context, eventID string) error
	listFunc         func(ctx context.Context, status string, limit int) ([]*model.Event, error)
	listUpcomingFunc func(ctx context.Context, window time.Duration, limit int) ([]*model.Event, error)
	countFunc        func(ctx context.Context, status string) (int, error)
}

func (m *mockEventRepo) Create(ctx context.Context, event *model.Event) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, event)
	}
	return nil
}

func (m *mockEventRepo) Get(ctx context.Context, eventID string) (*model.Event, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, eventID)
	}
	return nil, nil
}

func (m *mockEventRepo) Update(ctx context.Context, eventID string, updates map[string]interface{}) (*model.Event, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, eventID, updates)
	}
	return nil, nil
}

func (m *mockEventRepo) Delete(ctx context.Context, eventID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, eventID)
	}
	return nil
}

func (m *mockEventRepo) List(ctx context.Context, status string, limit int) ([]*model.Event, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, status, limit)
	}
	return nil, nil
}

func (m *mockEventRepo) ListUpcoming(ctx context.Context, window time.Duration, limit int) ([]*model.Event, error) {
	if m.listUpcomingFunc != nil {
		return m.listUpcomingFunc(ctx, window, limit)
	}
	return nil, nil
}

func (m *mockEventRepo) Count(ctx context.Context, status string) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, status)
	}
	return 0, nil
}

// ============================================================================
// Helper functions
// ============================================================================

func newTestMatchingService(profiles *mockProfileRepo, events *mockEventRepo) *MatchingService {
	return NewMatchingService(MatchingServiceConfig{
		ProfileRepo: profiles,
		EventRepo:   events,
	})
}

// mondayDate is a known Monday used across availability tests
var mondayDate = time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)

// saturdayDate is a known Saturday
var saturdayDate = time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC)

func makeProfile(id, name string, skills []string, city, state string, days []string) *model.VolunteerProfile {
	p := &model.VolunteerProfile{
		ID:     id,
		Name:   name,
		Skills: skills,
	}
	if city != "" || state != "" {
		p.Location = &model.Location{City: city, State: state}
	}
	if len(days) > 0 {
		p.Availability = &model.Availability{Days: days}
	}
	return p
}

func makeEvent(id, name string, skills []string, location string, date *time.Time) *model.Event {
	return &model.Event{
		ID:             id,
		Name:           name,
		RequiredSkills: skills,
		Location:       location,
		EventDate:      date,
		Urgency:        model.UrgencyMedium,
		Status:         model.EventStatusPublished,
	}
}

func containsStr(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}

// ============================================================================
// ScoreMatch tests
// ============================================================================

func TestScoreMatch_PerfectMatch(t *testing.T) {
	t.Parallel()
	profile := makeProfile("volunteer_profile:v1", "Ada", []string{"First Aid", "Teaching"}, "Houston", "TX", []string{"Mon", "Wed"})
	event := makeEvent("event:e1", "Health Fair", []string{"First Aid"}, "Houston Community Center", &mondayDate)

	m := ScoreMatch(profile, event)

	if m.Score != 100 {
		t.Errorf("expected score 100, got %f", m.Score)
	}
	if m.MaxScore != 100 {
		t.Errorf("expected max score 100, got %f", m.MaxScore)
	}
	if m.Percentage != 100 {
		t.Errorf("expected percentage 100, got %d", m.Percentage)
	}
	if m.MatchLevel != model.MatchLevelHigh {
		t.Errorf("expected High match level, got %s", m.MatchLevel)
	}
	for _, want := range []string{"Has all required skills", "Available on Monday", "Same city as event"} {
		if !containsStr(m.Reasons, want) {
			t.Errorf("expected reason %q, got %v", want, m.Reasons)
		}
	}
	if len(m.Missing) != 0 {
		t.Errorf("expected no missing entries, got %v", m.Missing)
	}
}

func TestScoreMatch_TotalMismatch(t *testing.T) {
	t.Parallel()
	profile := makeProfile("volunteer_profile:v1", "Ada", []string{"First Aid", "Teaching"}, "Houston", "TX", []string{"Mon", "Wed"})
	event := makeEvent("event:e1", "Pipe Repair", []string{"Plumbing"}, "Denver Rec Center", &saturdayDate)

	m := ScoreMatch(profile, event)

	if m.Score != 0 {
		t.Errorf("expected score 0, got %f", m.Score)
	}
	if m.Percentage != 0 {
		t.Errorf("expected percentage 0, got %d", m.Percentage)
	}
	if m.MatchLevel != model.MatchLevelLow {
		t.Errorf("expected Low match level, got %s", m.MatchLevel)
	}
	if !containsStr(m.Missing, "No matching skills") {
		t.Errorf("expected missing to contain %q, got %v", "No matching skills", m.Missing)
	}
	if !containsStr(m.Missing, "Not available on Saturday") {
		t.Errorf("expected missing to contain %q, got %v", "Not available on Saturday", m.Missing)
	}
}

func TestScoreMatch_SkillSubstring_Symmetric(t *testing.T) {
	t.Parallel()
	// Volunteer skill is a substring of the required skill
	profile := makeProfile("v1", "Ada", []string{"teach"}, "", "", nil)
	event := makeEvent("e1", "Tutoring", []string{"Teaching"}, "", nil)

	m := ScoreMatch(profile, event)
	if m.Score != model.SkillWeight {
		t.Errorf("expected substring skill match to earn %v, got %f", model.SkillWeight, m.Score)
	}

	// Reversed: required skill is a substring of the volunteer skill
	profile = makeProfile("v1", "Ada", []string{"Teaching"}, "", "", nil)
	event = makeEvent("e1", "Tutoring", []string{"teach"}, "", nil)

	m = ScoreMatch(profile, event)
	if m.Score != model.SkillWeight {
		t.Errorf("expected reversed substring match to earn %v, got %f", model.SkillWeight, m.Score)
	}
}

func TestScoreMatch_PartialSkills(t *testing.T) {
	t.Parallel()
	profile := makeProfile("v1", "Ada", []string{"First Aid"}, "", "", nil)
	event := makeEvent("e1", "Field Day", []string{"First Aid", "Cooking"}, "", nil)

	m := ScoreMatch(profile, event)

	if m.Score != 20 {
		t.Errorf("expected 1/2 skills to earn 20, got %f", m.Score)
	}
	if !containsStr(m.Reasons, "Has 1/2 required skills") {
		t.Errorf("expected partial skill reason, got %v", m.Reasons)
	}
	if !containsStr(m.Missing, "Missing skill: Cooking") {
		t.Errorf("expected missing skill entry, got %v", m.Missing)
	}
}

func TestScoreMatch_BlankRequiredSkill_Ignored(t *testing.T) {
	t.Parallel()
	profile := makeProfile("v1", "Ada", []string{"First Aid"}, "", "", nil)
	event := makeEvent("e1", "Field Day", []string{"First Aid", "  "}, "", nil)

	m := ScoreMatch(profile, event)

	if m.Score != model.SkillWeight {
		t.Errorf("expected blank label dropped and full skill credit, got %f", m.Score)
	}
	if !containsStr(m.Reasons, "Has all required skills") {
		t.Errorf("expected all-skills reason, got %v", m.Reasons)
	}
	if len(m.Missing) != 0 {
		t.Errorf("expected no missing entries, got %v", m.Missing)
	}
}

func TestScoreMatch_NoRequiredSkills_MaxStillCounted(t *testing.T) {
	t.Parallel()
	profile := makeProfile("v1", "Ada", []string{"First Aid"}, "", "", nil)
	event := makeEvent("e1", "Open Day", nil, "", nil)

	m := ScoreMatch(profile, event)

	// The skill maximum always applies even when the event lists no skills
	if m.MaxScore != model.SkillWeight {
		t.Errorf("expected max score %v, got %f", model.SkillWeight, m.MaxScore)
	}
	if m.Score != 0 {
		t.Errorf("expected score 0, got %f", m.Score)
	}
	if m.Percentage != 0 {
		t.Errorf("expected percentage 0, got %d", m.Percentage)
	}
}

func TestScoreMatch_WeekdayAbbreviationEqualsFullName(t *testing.T) {
	t.Parallel()
	event := makeEvent("e1", "Cleanup", nil, "", &mondayDate)

	abbrev := makeProfile("v1", "Ada", nil, "", "", []string{"Mon"})
	full := makeProfile("v2", "Grace", nil, "", "", []string{"Monday"})

	mAbbrev := ScoreMatch(abbrev, event)
	mFull := ScoreMatch(full, event)

	if mAbbrev.Score != mFull.Score {
		t.Errorf("expected Mon and Monday to score equally, got %f vs %f", mAbbrev.Score, mFull.Score)
	}
	if !containsStr(mAbbrev.Reasons, "Available on Monday") {
		t.Errorf("expected availability reason, got %v", mAbbrev.Reasons)
	}
}

func TestScoreMatch_NoEventDate_SkipsAvailability(t *testing.T) {
	t.Parallel()
	profile := makeProfile("v1", "Ada", nil, "", "", []string{"Mon"})
	event := makeEvent("e1", "Cleanup", nil, "", nil)

	m := ScoreMatch(profile, event)

	// Only the skill max applies; availability was never evaluated
	if m.MaxScore != model.SkillWeight {
		t.Errorf("expected max score %v, got %f", model.SkillWeight, m.MaxScore)
	}
}

func TestScoreMatch_NoAvailabilityDays_SkipsAvailability(t *testing.T) {
	t.Parallel()
	profile := makeProfile("v1", "Ada", nil, "", "", nil)
	event := makeEvent("e1", "Cleanup", nil, "", &mondayDate)

	m := ScoreMatch(profile, event)

	if m.MaxScore != model.SkillWeight {
		t.Errorf("expected max score %v, got %f", model.SkillWeight, m.MaxScore)
	}
	if len(m.Missing) != 0 {
		t.Errorf("expected no missing entries when availability is absent, got %v", m.Missing)
	}
}

func TestScoreMatch_StateMatch_PartialCredit(t *testing.T) {
	t.Parallel()
	profile := makeProfile("v1", "Ada", nil, "Austin", "TX", nil)
	event := makeEvent("e1", "Drive", nil, "Dallas, TX", nil)

	m := ScoreMatch(profile, event)

	if m.Score != model.LocationStateWeight {
		t.Errorf("expected state match to earn %v, got %f", model.LocationStateWeight, m.Score)
	}
	if m.MaxScore != model.SkillWeight+model.LocationCityWeight {
		t.Errorf("expected max score %v, got %f", model.SkillWeight+model.LocationCityWeight, m.MaxScore)
	}
	if !containsStr(m.Reasons, "Same state as event") {
		t.Errorf("expected state reason, got %v", m.Reasons)
	}
}

func TestScoreMatch_CityMismatch_NoMissingEntry(t *testing.T) {
	t.Parallel()
	profile := makeProfile("v1", "Ada", nil, "Houston", "", nil)
	event := makeEvent("e1", "Drive", nil, "Denver Rec Center", nil)

	m := ScoreMatch(profile, event)

	if len(m.Missing) != 0 {
		t.Errorf("location mismatch must not add missing entries, got %v", m.Missing)
	}
}

func TestScoreMatch_NoProfileCity_SkipsLocation(t *testing.T) {
	t.Parallel()
	profile := makeProfile("v1", "Ada", nil, "", "TX", nil)
	event := makeEvent("e1", "Drive", nil, "Dallas, TX", nil)

	m := ScoreMatch(profile, event)

	// State alone does not trigger the component; the city gate is required
	if m.MaxScore != model.SkillWeight {
		t.Errorf("expected max score %v, got %f", model.SkillWeight, m.MaxScore)
	}
}

func TestScoreMatch_ScoreBoundedByMaxScore(t *testing.T) {
	t.Parallel()
	profiles := []*model.VolunteerProfile{
		makeProfile("v1", "A", []string{"First Aid", "Cooking"}, "Houston", "TX", []string{"Mon", "Tue"}),
		makeProfile("v2", "B", nil, "", "", nil),
		makeProfile("v3", "C", []string{"x"}, "Nowhere", "", []string{"Sun"}),
	}
	events := []*model.Event{
		makeEvent("e1", "E1", []string{"First Aid"}, "Houston", &mondayDate),
		makeEvent("e2", "E2", nil, "", nil),
		makeEvent("e3", "E3", []string{"Cooking", "Driving"}, "Dallas, TX", &saturdayDate),
	}

	for _, p := range profiles {
		for _, e := range events {
			m := ScoreMatch(p, e)
			if m.Score < 0 || m.Score > m.MaxScore {
				t.Errorf("score %f out of bounds [0, %f] for %s vs %s", m.Score, m.MaxScore, p.ID, e.ID)
			}
			if m.Percentage < 0 || m.Percentage > 100 {
				t.Errorf("percentage %d out of range for %s vs %s", m.Percentage, p.ID, e.ID)
			}
			if m.MatchLevel != model.MatchLevelFor(m.Percentage) {
				t.Errorf("match level %s inconsistent with percentage %d", m.MatchLevel, m.Percentage)
			}
		}
	}
}

// ============================================================================
// FindVolunteersForEvent tests
// ============================================================================

func TestFindVolunteersForEvent_EventNotFound(t *testing.T) {
	t.Parallel()
	events := &mockEventRepo{
		getFunc: func(ctx context.Context, eventID string) (*model.Event, error) {
			return nil, nil
		},
	}
	svc := newTestMatchingService(&mockProfileRepo{}, events)

	_, err := svc.FindVolunteersForEvent(context.Background(), "event:nonexistent", MatchOptions{})

	if !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestFindVolunteersForEvent_RepoError_Propagated(t *testing.T) {
	t.Parallel()
	expectedErr := errors.New("db error")
	events := &mockEventRepo{
		getFunc: func(ctx context.Context, eventID string) (*model.Event, error) {
			return nil, expectedErr
		},
	}
	svc := newTestMatchingService(&mockProfileRepo{}, events)

	_, err := svc.FindVolunteersForEvent(context.Background(), "event:e1", MatchOptions{})

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected repo error, got %v", err)
	}
}

func TestFindVolunteersForEvent_SortsByRawScoreDescending(t *testing.T) {
	t.Parallel()
	event := makeEvent("event:e1", "Health Fair", []string{"First Aid"}, "Houston", &mondayDate)
	events := &mockEventRepo{
		getFunc: func(ctx context.Context, eventID string) (*model.Event, error) {
			return event, nil
		},
	}
	profiles := &mockProfileRepo{
		listFunc: func(ctx context.Context, limit int) ([]*model.VolunteerProfile, error) {
			return []*model.VolunteerProfile{
				makeProfile("v:low", "Low", nil, "", "", nil),
				makeProfile("v:high", "High", []string{"First Aid"}, "Houston", "TX", []string{"Mon"}),
				makeProfile("v:mid", "Mid", []string{"First Aid"}, "", "", nil),
			}, nil
		},
	}
	svc := newTestMatchingService(profiles, events)

	result, err := svc.FindVolunteersForEvent(context.Background(), "event:e1", MatchOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(result.Matches))
	}
	if result.Matches[0].VolunteerID != "v:high" {
		t.Errorf("expected v:high first, got %s", result.Matches[0].VolunteerID)
	}
	if result.Matches[1].VolunteerID != "v:mid" {
		t.Errorf("expected v:mid second, got %s", result.Matches[1].VolunteerID)
	}
	if result.Matches[2].VolunteerID != "v:low" {
		t.Errorf("expected v:low third, got %s", result.Matches[2].VolunteerID)
	}
}

func TestFindVolunteersForEvent_TiesKeepEnumerationOrder(t *testing.T) {
	t.Parallel()
	event := makeEvent("event:e1", "Fair", []string{"First Aid"}, "", nil)
	events := &mockEventRepo{
		getFunc: func(ctx context.Context, eventID string) (*model.Event, error) {
			return event, nil
		},
	}
	profiles := &mockProfileRepo{
		listFunc: func(ctx context.Context, limit int) ([]*model.VolunteerProfile, error) {
			return []*model.VolunteerProfile{
				makeProfile("v:first", "First", []string{"First Aid"}, "", "", nil),
				makeProfile("v:second", "Second", []string{"First Aid"}, "", "", nil),
				makeProfile("v:third", "Third", []string{"First Aid"}, "", "", nil),
			}, nil
		},
	}
	svc := newTestMatchingService(profiles, events)

	result, err := svc.FindVolunteersForEvent(context.Background(), "event:e1", MatchOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order := []string{"v:first", "v:second", "v:third"}
	for i, want := range order {
		if result.Matches[i].VolunteerID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, result.Matches[i].VolunteerID)
		}
	}
}

func TestFindVolunteersForEvent_StatsCountUnfilteredSet(t *testing.T) {
	t.Parallel()
	event := makeEvent("event:e1", "Fair", []string{"First Aid"}, "Houston", &mondayDate)
	events := &mockEventRepo{
		getFunc: func(ctx context.Context, eventID string) (*model.Event, error) {
			return event, nil
		},
	}
	profiles := &mockProfileRepo{
		listFunc: func(ctx context.Context, limit int) ([]*model.VolunteerProfile, error) {
			return []*model.VolunteerProfile{
				makeProfile("v:high", "High", []string{"First Aid"}, "Houston", "TX", []string{"Mon"}),
				makeProfile("v:mid", "Mid", []string{"First Aid"}, "", "", []string{"Tue"}),
				makeProfile("v:low", "Low", nil, "", "", nil),
			}, nil
		},
	}
	svc := newTestMatchingService(profiles, events)

	// Only v:high survives a 100% filter, but stats describe all candidates
	result, err := svc.FindVolunteersForEvent(context.Background(), "event:e1", MatchOptions{MinPercentage: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalMatches != 1 {
		t.Errorf("expected totalMatches 1, got %d", result.TotalMatches)
	}
	if result.Stats.High != 1 || result.Stats.Medium != 1 || result.Stats.Low != 1 {
		t.Errorf("expected stats 1/1/1 across the unfiltered pool, got %+v", result.Stats)
	}
}

func TestFindVolunteersForEvent_FilterExcludesAll_StatsUnaffected(t *testing.T) {
	t.Parallel()
	event := makeEvent("event:e1", "Fair", []string{"Plumbing"}, "", nil)
	events := &mockEventRepo{
		getFunc: func(ctx context.Context, eventID string) (*model.Event, error) {
			return event, nil
		},
	}
	profiles := &mockProfileRepo{
		listFunc: func(ctx context.Context, limit int) ([]*model.VolunteerProfile, error) {
			return []*model.VolunteerProfile{
				makeProfile("v1", "A", []string{"Teaching"}, "", "", nil),
				makeProfile("v2", "B", []string{"Cooking"}, "", "", nil),
			}, nil
		},
	}
	svc := newTestMatchingService(profiles, events)

	result, err := svc.FindVolunteersForEvent(context.Background(), "event:e1", MatchOptions{MinPercentage: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Matches) != 0 {
		t.Errorf("expected empty matches, got %d", len(result.Matches))
	}
	if result.TotalMatches != 0 {
		t.Errorf("expected totalMatches 0, got %d", result.TotalMatches)
	}
	if result.Stats.Low != 2 {
		t.Errorf("expected stats.low 2 from unfiltered set, got %d", result.Stats.Low)
	}
}

func TestFindVolunteersForEvent_Pagination(t *testing.T) {
	t.Parallel()
	event := makeEvent("event:e1", "Fair", []string{"First Aid"}, "Houston", &mondayDate)
	events := &mockEventRepo{
		getFunc: func(ctx context.Context, eventID string) (*model.Event, error) {
			return event, nil
		},
	}
	profiles := &mockProfileRepo{
		listFunc: func(ctx context.Context, limit int) ([]*model.VolunteerProfile, error) {
			return []*model.VolunteerProfile{
				makeProfile("v:third", "Third", nil, "", "", nil),
				makeProfile("v:first", "First", []string{"First Aid"}, "Houston", "TX", []string{"Mon"}),
				makeProfile("v:second", "Second", []string{"First Aid"}, "", "", nil),
			}, nil
		},
	}
	svc := newTestMatchingService(profiles, events)

	result, err := svc.FindVolunteersForEvent(context.Background(), "event:e1", MatchOptions{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalMatches != 3 {
		t.Errorf("expected totalMatches 3, got %d", result.TotalMatches)
	}
	if len(result.Matches) != 1 {
		t.Fatalf("expected 1 match on page, got %d", len(result.Matches))
	}
	if result.Matches[0].VolunteerID != "v:second" {
		t.Errorf("expected second-ranked match, got %s", result.Matches[0].VolunteerID)
	}
}

func TestFindVolunteersForEvent_MatchLevelFilter(t *testing.T) {
	t.Parallel()
	event := makeEvent("event:e1", "Fair", []string{"First Aid"}, "Houston", &mondayDate)
	events := &mockEventRepo{
		getFunc: func(ctx context.Context, eventID string) (*model.Event, error) {
			return event, nil
		},
	}
	profiles := &mockProfileRepo{
		listFunc: func(ctx context.Context, limit int) ([]*model.VolunteerProfile, error) {
			return []*model.VolunteerProfile{
				makeProfile("v:high", "High", []string{"First Aid"}, "Houston", "TX", []string{"Mon"}),
				makeProfile("v:low", "Low", nil, "", "", nil),
			}, nil
		},
	}
	svc := newTestMatchingService(profiles, events)

	result, err := svc.FindVolunteersForEvent(context.Background(), "event:e1", MatchOptions{MatchLevel: model.MatchLevelHigh})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Matches) != 1 || result.Matches[0].VolunteerID != "v:high" {
		t.Errorf("expected only v:high, got %v", result.Matches)
	}
}

func TestFindVolunteersForEvent_InvalidOptions(t *testing.T) {
	t.Parallel()
	svc := newTestMatchingService(&mockProfileRepo{}, &mockEventRepo{})

	_, err := svc.FindVolunteersForEvent(context.Background(), "event:e1", MatchOptions{MinPercentage: 150})
	if !errors.Is(err, ErrInvalidPercentage) {
		t.Errorf("expected ErrInvalidPercentage, got %v", err)
	}

	_, err = svc.FindVolunteersForEvent(context.Background(), "event:e1", MatchOptions{MatchLevel: "Amazing"})
	if !errors.Is(err, ErrInvalidMatchLevel) {
		t.Errorf("expected ErrInvalidMatchLevel, got %v", err)
	}
}

// ============================================================================
// FindEventsForVolunteer tests
// ============================================================================

func TestFindEventsForVolunteer_VolunteerNotFound(t *testing.T) {
	t.Parallel()
	profiles := &mockProfileRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.VolunteerProfile, error) {
			return nil, nil
		},
	}
	svc := newTestMatchingService(profiles, &mockEventRepo{})

	_, err := svc.FindEventsForVolunteer(context.Background(), "volunteer_profile:ghost", MatchOptions{})

	if !errors.Is(err, ErrVolunteerNotFound) {
		t.Errorf("expected ErrVolunteerNotFound, got %v", err)
	}
}

func TestFindEventsForVolunteer_EmbedsEventFields(t *testing.T) {
	t.Parallel()
	profile := makeProfile("volunteer_profile:v1", "Ada", []string{"First Aid"}, "Houston", "TX", []string{"Mon"})
	desc := "Annual health fair"
	event := makeEvent("event:e1", "Health Fair", []string{"First Aid"}, "Houston", &mondayDate)
	event.Description = &desc
	event.Urgency = model.UrgencyHigh

	profiles := &mockProfileRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.VolunteerProfile, error) {
			return profile, nil
		},
	}
	events := &mockEventRepo{
		listFunc: func(ctx context.Context, status string, limit int) ([]*model.Event, error) {
			return []*model.Event{event}, nil
		},
	}
	svc := newTestMatchingService(profiles, events)

	result, err := svc.FindEventsForVolunteer(context.Background(), "volunteer_profile:v1", MatchOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.VolunteerID != "volunteer_profile:v1" || result.VolunteerName != "Ada" {
		t.Errorf("unexpected volunteer identity: %s / %s", result.VolunteerID, result.VolunteerName)
	}
	if len(result.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(result.Matches))
	}
	m := result.Matches[0]
	if m.EventID != "event:e1" || m.EventName != "Health Fair" {
		t.Errorf("unexpected event identity: %s / %s", m.EventID, m.EventName)
	}
	if m.Description == nil || *m.Description != desc {
		t.Errorf("expected embedded description, got %v", m.Description)
	}
	if m.Urgency != model.UrgencyHigh {
		t.Errorf("expected embedded urgency, got %s", m.Urgency)
	}
	if m.Location != "Houston" {
		t.Errorf("expected embedded location, got %s", m.Location)
	}
}

func TestFindEventsForVolunteer_FiltersByMinPercentage(t *testing.T) {
	t.Parallel()
	profile := makeProfile("v1", "Ada", []string{"First Aid"}, "", "", nil)
	profiles := &mockProfileRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.VolunteerProfile, error) {
			return profile, nil
		},
	}
	events := &mockEventRepo{
		listFunc: func(ctx context.Context, status string, limit int) ([]*model.Event, error) {
			return []*model.Event{
				makeEvent("event:match", "Match", []string{"First Aid"}, "", nil),
				makeEvent("event:nomatch", "No Match", []string{"Plumbing"}, "", nil),
			}, nil
		},
	}
	svc := newTestMatchingService(profiles, events)

	result, err := svc.FindEventsForVolunteer(context.Background(), "v1", MatchOptions{MinPercentage: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalMatches != 1 {
		t.Errorf("expected 1 match past the filter, got %d", result.TotalMatches)
	}
	if len(result.Matches) != 1 || result.Matches[0].EventID != "event:match" {
		t.Errorf("expected only event:match, got %v", result.Matches)
	}
}

// ============================================================================
// GetMatchScore tests
// ============================================================================

func TestGetMatchScore_BothResolved(t *testing.T) {
	t.Parallel()
	profile := makeProfile("volunteer_profile:v1", "Ada", []string{"First Aid"}, "Houston", "TX", []string{"Mon"})
	event := makeEvent("event:e1", "Health Fair", []string{"First Aid"}, "Houston", &mondayDate)

	profiles := &mockProfileRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.VolunteerProfile, error) {
			return profile, nil
		},
	}
	events := &mockEventRepo{
		getFunc: func(ctx context.Context, eventID string) (*model.Event, error) {
			return event, nil
		},
	}
	svc := newTestMatchingService(profiles, events)

	m, err := svc.GetMatchScore(context.Background(), "volunteer_profile:v1", "event:e1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.VolunteerID != "volunteer_profile:v1" || m.EventID != "event:e1" {
		t.Errorf("expected both identities populated, got %s / %s", m.VolunteerID, m.EventID)
	}
	if m.Percentage != 100 {
		t.Errorf("expected percentage 100, got %d", m.Percentage)
	}
}

func TestGetMatchScore_VolunteerNotFound(t *testing.T) {
	t.Parallel()
	svc := newTestMatchingService(&mockProfileRepo{}, &mockEventRepo{})

	_, err := svc.GetMatchScore(context.Background(), "volunteer_profile:ghost", "event:e1")
	if !errors.Is(err, ErrVolunteerNotFound) {
		t.Errorf("expected ErrVolunteerNotFound, got %v", err)
	}
}

func TestGetMatchScore_EventNotFound(t *testing.T) {
	t.Parallel()
	profiles := &mockProfileRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.VolunteerProfile, error) {
			return makeProfile("v1", "Ada", nil, "", "", nil), nil
		},
	}
	svc := newTestMatchingService(profiles, &mockEventRepo{})

	_, err := svc.GetMatchScore(context.Background(), "v1", "event:ghost")
	if !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

// ============================================================================
// normalizeWeekday tests
// ============================================================================

func TestNormalizeWeekday(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"Mon", "Monday"},
		{"monday", "Monday"},
		{"SAT", "Saturday"},
		{" sunday ", "Sunday"},
		{"Funday", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeWeekday(tt.in); got != tt.want {
			t.Errorf("normalizeWeekday(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
