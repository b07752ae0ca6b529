package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/volunteerhub/api/internal/model"
	"golang.org/x/crypto/bcrypt"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12

	// Password constraints
	minPasswordLength = 8
	maxPasswordLength = 128
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, userID, hash string) error
	Delete(ctx context.Context, id string) error
}

// ProfileRemover removes a user's volunteer profile during account deletion.
// Satisfied by *ProfileService.
type ProfileRemover interface {
	Delete(ctx context.Context, userID string) error
}

// WelcomeNotifier delivers the onboarding notification to new accounts.
// Satisfied by *NotificationService.
type WelcomeNotifier interface {
	SendWelcome(ctx context.Context, userID string) error
}

// AuthService handles authentication operations
type AuthService struct {
	userRepo        UserRepository
	tokenService    *TokenService
	profileRemover  ProfileRemover
	welcomeNotifier WelcomeNotifier
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo        UserRepository
	TokenService    *TokenService
	ProfileRemover  ProfileRemover  // optional
	WelcomeNotifier WelcomeNotifier // optional
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:        cfg.UserRepo,
		tokenService:    cfg.TokenService,
		profileRemover:  cfg.ProfileRemover,
		welcomeNotifier: cfg.WelcomeNotifier,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email     string
	Password  string
	Firstname string
	Lastname  string
}

// RegisterResult represents a successful registration
type RegisterResult struct {
	User      *model.User
	TokenPair *TokenPair
}

// Register creates a new user account with email/password
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	existingUser, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:         email,
		Hash:          &hash,
		Firstname:     stringPtr(strings.TrimSpace(req.Firstname)),
		Lastname:      stringPtr(strings.TrimSpace(req.Lastname)),
		Role:          model.RoleUser,
		EmailVerified: false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Best effort: a failed welcome notice must not fail the registration
	if s.welcomeNotifier != nil {
		if err := s.welcomeNotifier.SendWelcome(ctx, user.ID); err != nil {
			slog.Warn("failed to send welcome notification",
				slog.String("user_id", user.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	tokenPair, err := s.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	return &RegisterResult{
		User:      user,
		TokenPair: tokenPair,
	}, nil
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResult represents a successful login
type LoginResult struct {
	User      *model.User
	TokenPair *TokenPair
}

// Login authenticates a user with email/password
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if user.Hash == nil || *user.Hash == "" {
		return nil, ErrInvalidCredentials
	}

	if !checkPassword(req.Password, *user.Hash) {
		return nil, ErrInvalidCredentials
	}

	tokenPair, err := s.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:      user,
		TokenPair: tokenPair,
	}, nil
}

// GetUserByID retrieves a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// RefreshTokens validates a refresh token and issues new tokens
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	tokenHash := hashToken(refreshToken)
	storedToken, err := s.tokenService.tokenRepo.GetRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if storedToken == nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(ctx, storedToken.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return s.tokenService.RefreshTokens(ctx, refreshToken, user)
}

// Logout revokes the user's refresh tokens
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.tokenService.RevokeAllUserTokens(ctx, userID)
}

// ValidateAccessToken validates an access token and returns the claims
func (s *AuthService) ValidateAccessToken(token string) (*model.TokenClaims, error) {
	claims, err := s.tokenService.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}

	return &model.TokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}

// UpdateUserRequest carries partial account changes. Nil fields are left
// untouched; empty strings clear the field.
type UpdateUserRequest struct {
	Firstname *string
	Lastname  *string
}

// UpdateUser applies partial changes to the account's name fields
func (s *AuthService) UpdateUser(ctx context.Context, userID string, req UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Firstname != nil {
		user.Firstname = stringPtr(strings.TrimSpace(*req.Firstname))
	}
	if req.Lastname != nil {
		user.Lastname = stringPtr(strings.TrimSpace(*req.Lastname))
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount permanently removes an account after verifying the password.
// Sessions are revoked and the volunteer profile, if any, is removed first so
// the user cannot keep appearing in match results.
func (s *AuthService) DeleteAccount(ctx context.Context, userID, password string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if user.Hash == nil || *user.Hash == "" || !checkPassword(password, *user.Hash) {
		return ErrInvalidCredentials
	}

	if err := s.tokenService.RevokeAllUserTokens(ctx, userID); err != nil {
		return err
	}

	if s.profileRemover != nil {
		if err := s.profileRemover.Delete(ctx, userID); err != nil && !errors.Is(err, ErrProfileNotFound) {
			return err
		}
	}

	return s.userRepo.Delete(ctx, userID)
}

// ChangePassword changes a user's password and revokes existing sessions
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if user.Hash != nil && *user.Hash != "" {
		if !checkPassword(oldPassword, *user.Hash) {
			return ErrInvalidCredentials
		}
	}

	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	return s.tokenService.RevokeAllUserTokens(ctx, userID)
}

// Helper functions

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	if len(email) > 254 {
		return false
	}
	atIndex := strings.Index(email, "@")
	if atIndex < 1 {
		return false
	}
	dotIndex := strings.LastIndex(email, ".")
	if dotIndex < atIndex+2 {
		return false
	}
	if dotIndex >= len(email)-1 {
		return false
	}
	return true
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
