package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/volunteerhub/api/internal/database"
	"github.com/volunteerhub/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	role := user.Role
	if role == "" {
		role = model.RoleUser
	}

	query := `
		CREATE user CONTENT {
			email: $email,
			hash: IF $hash IS NOT NULL THEN $hash ELSE NONE END,
			firstname: IF $firstname IS NOT NULL THEN $firstname ELSE NONE END,
			lastname: IF $lastname IS NOT NULL THEN $lastname ELSE NONE END,
			role: $role,
			email_verified: $email_verified,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"email":          user.Email,
		"hash":           ptrOrNil(user.Hash),
		"firstname":      ptrOrNil(user.Firstname),
		"lastname":       ptrOrNil(user.Lastname),
		"role":           role,
		"email_verified": user.EmailVerified,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	user.ID = created.ID
	user.Role = role
	user.CreatedOn = created.CreatedOn
	user.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a user by ID. Returns (nil, nil) when the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	user, err := parseUserResult(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// GetByEmail retrieves a user by email. Returns (nil, nil) when no user matches.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	user, err := parseUserResult(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// Update updates a user's mutable fields
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE type::record($id) SET
			email = $email,
			firstname = $firstname,
			lastname = $lastname,
			email_verified = $email_verified,
			updated_on = time::now()
	`

	vars := map[string]interface{}{
		"id":             user.ID,
		"email":          user.Email,
		"firstname":      user.Firstname,
		"lastname":       user.Lastname,
		"email_verified": user.EmailVerified,
	}

	return r.db.Execute(ctx, query, vars)
}

// UpdatePassword updates a user's password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID, hash string) error {
	query := `UPDATE type::record($id) SET hash = $hash, updated_on = time::now()`
	vars := map[string]interface{}{
		"id":   userID,
		"hash": hash,
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete deletes a user
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

func parseUserResult(result interface{}) (*model.User, error) {
	data, err := unwrapSingle(result)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:         getString(data, "email"),
		Hash:          getStringPtr(data, "hash"),
		Firstname:     getStringPtr(data, "firstname"),
		Lastname:      getStringPtr(data, "lastname"),
		Role:          getString(data, "role"),
		EmailVerified: getBool(data, "email_verified"),
	}
	if id, ok := data["id"]; ok {
		user.ID = convertSurrealID(id)
	}
	if t := getTime(data, "created_on"); t != nil {
		user.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		user.UpdatedOn = *t
	}

	return user, nil
}

// ptrOrNil converts a string pointer to its value or nil.
// The queries check for NULL explicitly, mapping nil to NONE.
func ptrOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
