package service

import (
	"context"
	"strings"

	"github.com/volunteerhub/api/internal/model"
)

// ProfileRepository defines the interface for volunteer profile storage
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.VolunteerProfile) error
	GetByID(ctx context.Context, id string) (*model.VolunteerProfile, error)
	GetByUserID(ctx context.Context, userID string) (*model.VolunteerProfile, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) (*model.VolunteerProfile, error)
	Delete(ctx context.Context, userID string) error
	List(ctx context.Context, limit int) ([]*model.VolunteerProfile, error)
	Count(ctx context.Context) (int, error)
}

// ProfileService handles volunteer profile operations
type ProfileService struct {
	profileRepo ProfileRepository
}

// ProfileServiceConfig holds configuration for the profile service
type ProfileServiceConfig struct {
	ProfileRepo ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(cfg ProfileServiceConfig) *ProfileService {
	return &ProfileService{
		profileRepo: cfg.ProfileRepo,
	}
}

// Create creates a volunteer profile for a user
func (s *ProfileService) Create(ctx context.Context, userID string, req model.CreateProfileRequest) (*model.VolunteerProfile, error) {
	if err := validateProfileFields(req.Name, req.Skills, req.Availability); err != nil {
		return nil, err
	}

	existing, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	profile := &model.VolunteerProfile{
		UserID:       userID,
		Name:         strings.TrimSpace(req.Name),
		Skills:       normalizeSkills(req.Skills),
		Location:     req.Location,
		Availability: normalizeAvailability(req.Availability),
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Get retrieves the profile belonging to a user
func (s *ProfileService) Get(ctx context.Context, userID string) (*model.VolunteerProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// GetByID retrieves a profile by its own record ID
func (s *ProfileService) GetByID(ctx context.Context, id string) (*model.VolunteerProfile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// Update applies a partial update to a user's profile
func (s *ProfileService) Update(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.VolunteerProfile, error) {
	existing, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProfileNotFound
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		if len(name) > model.MaxNameLength {
			return nil, ErrNameTooLong
		}
		updates["name"] = name
	}
	if req.Skills != nil {
		if err := validateSkills(req.Skills); err != nil {
			return nil, err
		}
		updates["skills"] = normalizeSkills(req.Skills)
	}
	if req.Location != nil {
		updates["location"] = map[string]interface{}{
			"city":  strings.TrimSpace(req.Location.City),
			"state": strings.TrimSpace(req.Location.State),
		}
	}
	if req.Availability != nil {
		if err := validateAvailability(req.Availability); err != nil {
			return nil, err
		}
		norm := normalizeAvailability(req.Availability)
		updates["availability"] = map[string]interface{}{
			"days": norm.Days,
		}
	}

	if len(updates) == 0 {
		return existing, nil
	}

	return s.profileRepo.Update(ctx, userID, updates)
}

// Delete removes a user's profile
func (s *ProfileService) Delete(ctx context.Context, userID string) error {
	existing, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProfileNotFound
	}
	return s.profileRepo.Delete(ctx, userID)
}

// List returns volunteer profiles, newest first, along with the total
// profile count so callers can page past the returned window.
func (s *ProfileService) List(ctx context.Context, limit int) ([]*model.VolunteerProfile, int, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	profiles, err := s.profileRepo.List(ctx, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.profileRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// Validation helpers

func validateProfileFields(name string, skills []string, availability *model.Availability) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if len(name) > model.MaxNameLength {
		return ErrNameTooLong
	}
	if err := validateSkills(skills); err != nil {
		return err
	}
	return validateAvailability(availability)
}

func validateSkills(skills []string) error {
	if len(skills) > model.MaxSkills {
		return ErrTooManySkills
	}
	for _, skill := range skills {
		if len(strings.TrimSpace(skill)) > model.MaxSkillLabel {
			return ErrSkillLabelTooLong
		}
	}
	return nil
}

func validateAvailability(availability *model.Availability) error {
	if availability == nil {
		return nil
	}
	for _, day := range availability.Days {
		if normalizeWeekday(day) == "" {
			return ErrInvalidWeekday
		}
	}
	return nil
}

// normalizeSkills trims whitespace and drops empty entries
func normalizeSkills(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// normalizeAvailability trims entries but preserves the caller's chosen form
// (full weekday names and 3-letter abbreviations are both valid).
func normalizeAvailability(availability *model.Availability) *model.Availability {
	if availability == nil || len(availability.Days) == 0 {
		return availability
	}
	days := make([]string, 0, len(availability.Days))
	for _, day := range availability.Days {
		if trimmed := strings.TrimSpace(day); trimmed != "" {
			days = append(days, trimmed)
		}
	}
	return &model.Availability{Days: days}
}
