package repository

import (
	"context"
	"errors"

	"github.com/volunteerhub/api/internal/database"
	"github.com/volunteerhub/api/internal/model"
)

// ProfileRepository handles volunteer profile data access
type ProfileRepository struct {
	db database.Database
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db database.Database) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new volunteer profile
func (r *ProfileRepository) Create(ctx context.Context, profile *model.VolunteerProfile) error {
	// Build query dynamically to avoid NULL vs NONE issues for optional fields
	setClause := `user = type::record($user_id), name = $name, created_on = time::now(), updated_on = time::now()`
	vars := map[string]interface{}{
		"user_id": profile.UserID,
		"name":    profile.Name,
	}

	if len(profile.Skills) > 0 {
		setClause += ", skills = $skills"
		vars["skills"] = profile.Skills
	}
	if profile.Location != nil {
		setClause += ", location = $location"
		vars["location"] = map[string]interface{}{
			"city":  profile.Location.City,
			"state": profile.Location.State,
		}
	}
	if profile.Availability != nil && len(profile.Availability.Days) > 0 {
		setClause += ", availability = $availability"
		vars["availability"] = map[string]interface{}{
			"days": profile.Availability.Days,
		}
	}

	query := "CREATE volunteer_profile SET " + setClause
	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return database.ErrDuplicate
		}
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	profile.ID = created.ID
	profile.CreatedOn = created.CreatedOn
	profile.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a profile by its record ID.
// Returns (nil, nil) when the profile does not exist.
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*model.VolunteerProfile, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	profile, err := r.parseProfileResult(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

// GetByUserID retrieves a profile by the owning user's ID.
// Returns (nil, nil) when the user has no profile.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*model.VolunteerProfile, error) {
	query := `SELECT * FROM volunteer_profile WHERE user = type::record($user_id) LIMIT 1`
	vars := map[string]interface{}{"user_id": userID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	profile, err := r.parseProfileResult(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

// Update applies a partial update and returns the updated profile
func (r *ProfileRepository) Update(ctx context.Context, userID string, updates map[string]interface{}) (*model.VolunteerProfile, error) {
	query := `UPDATE volunteer_profile SET updated_on = time::now()`
	vars := map[string]interface{}{
		"user_id": userID,
	}

	if name, ok := updates["name"]; ok {
		query += ", name = $name"
		vars["name"] = name
	}
	if skills, ok := updates["skills"]; ok {
		query += ", skills = $skills"
		vars["skills"] = skills
	}
	if location, ok := updates["location"]; ok {
		query += ", location = $location"
		vars["location"] = location
	}
	if availability, ok := updates["availability"]; ok {
		query += ", availability = $availability"
		vars["availability"] = availability
	}

	query += ` WHERE user = type::record($user_id) RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseProfileResult(result)
}

// Delete deletes a volunteer profile
func (r *ProfileRepository) Delete(ctx context.Context, userID string) error {
	query := `DELETE volunteer_profile WHERE user = type::record($user_id)`
	vars := map[string]interface{}{"user_id": userID}

	return r.db.Execute(ctx, query, vars)
}

// List returns profiles ordered by creation time, newest first.
// Used by the match finder to assemble its candidate set.
func (r *ProfileRepository) List(ctx context.Context, limit int) ([]*model.VolunteerProfile, error) {
	query := `
		SELECT * FROM volunteer_profile
		ORDER BY created_on DESC
		LIMIT $limit
	`
	vars := map[string]interface{}{"limit": limit}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseProfilesResult(result)
}

// Count returns the total number of volunteer profiles
func (r *ProfileRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT count() AS count FROM volunteer_profile GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return extractCount(result), nil
}

// Helper functions

func (r *ProfileRepository) parseProfileResult(result interface{}) (*model.VolunteerProfile, error) {
	data, err := unwrapSingle(result)
	if err != nil {
		return nil, err
	}

	profile := &model.VolunteerProfile{
		Name:   getString(data, "name"),
		Skills: getStringSlice(data, "skills"),
	}
	if id, ok := data["id"]; ok {
		profile.ID = convertSurrealID(id)
	}
	if user, ok := data["user"]; ok {
		profile.UserID = convertSurrealID(user)
	}
	if locData, ok := data["location"].(map[string]interface{}); ok {
		profile.Location = &model.Location{
			City:  getString(locData, "city"),
			State: getString(locData, "state"),
		}
	}
	if availData, ok := data["availability"].(map[string]interface{}); ok {
		profile.Availability = &model.Availability{
			Days: getStringSlice(availData, "days"),
		}
	}
	if t := getTime(data, "created_on"); t != nil {
		profile.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		profile.UpdatedOn = *t
	}

	return profile, nil
}

func (r *ProfileRepository) parseProfilesResult(result []interface{}) ([]*model.VolunteerProfile, error) {
	profiles := make([]*model.VolunteerProfile, 0)

	for _, item := range extractQueryResults(result) {
		profile, err := r.parseProfileResult(item)
		if err != nil {
			continue
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}
