package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrInvalidEmail       = errors.New("invalid email format")
)

// ===== Token Errors =====
var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
)

// ===== Profile Errors =====
var (
	ErrProfileNotFound   = errors.New("volunteer profile not found")
	ErrProfileExists     = errors.New("volunteer profile already exists")
	ErrNameRequired      = errors.New("name is required")
	ErrNameTooLong       = errors.New("name exceeds maximum length")
	ErrTooManySkills     = errors.New("too many skills")
	ErrSkillLabelTooLong = errors.New("skill label exceeds maximum length")
	ErrInvalidWeekday    = errors.New("invalid availability day")
)

// ===== Event Errors =====
var (
	ErrEventNotFound         = errors.New("event not found")
	ErrEventNameRequired     = errors.New("event name is required")
	ErrEventNameTooLong      = errors.New("event name exceeds maximum length")
	ErrDescriptionTooLong    = errors.New("event description exceeds maximum length")
	ErrTooManyRequiredSkills = errors.New("too many required skills")
	ErrInvalidUrgency        = errors.New("invalid urgency level")
	ErrInvalidEventStatus    = errors.New("invalid event status")
	ErrInvalidEventDate      = errors.New("invalid event date format")
	ErrNotEventOwner         = errors.New("not the event owner")
)

// ===== Matching Errors =====
var (
	ErrVolunteerNotFound = errors.New("volunteer not found")
	ErrInvalidMatchLevel = errors.New("invalid match level filter")
	ErrInvalidPercentage = errors.New("minimum percentage must be between 0 and 100")
)

// ===== Notification Errors =====
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotNotificationOwner = errors.New("not the notification owner")
)
