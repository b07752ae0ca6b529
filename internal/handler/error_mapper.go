package handler

import (
	"errors"

	"github.com/volunteerhub/api/internal/model"
	"github.com/volunteerhub/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	// ===== Authentication Errors → 401 =====
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())
	case errors.Is(err, service.ErrInvalidRefreshToken),
		errors.Is(err, service.ErrRefreshTokenExpired),
		errors.Is(err, service.ErrRefreshTokenRevoked):
		return model.NewUnauthorizedError(err.Error())

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotEventOwner),
		errors.Is(err, service.ErrNotNotificationOwner):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrProfileNotFound):
		return model.NewNotFoundError("volunteer profile")
	case errors.Is(err, service.ErrVolunteerNotFound):
		return model.NewNotFoundError("volunteer")
	case errors.Is(err, service.ErrEventNotFound):
		return model.NewNotFoundError("event")
	case errors.Is(err, service.ErrNotificationNotFound):
		return model.NewNotFoundError("notification")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrProfileExists):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "credentials", Message: err.Error()}})

	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrNameTooLong),
		errors.Is(err, service.ErrTooManySkills),
		errors.Is(err, service.ErrSkillLabelTooLong),
		errors.Is(err, service.ErrInvalidWeekday):
		return model.NewValidationError([]model.FieldError{{Field: "profile", Message: err.Error()}})

	case errors.Is(err, service.ErrEventNameRequired),
		errors.Is(err, service.ErrEventNameTooLong),
		errors.Is(err, service.ErrDescriptionTooLong),
		errors.Is(err, service.ErrTooManyRequiredSkills),
		errors.Is(err, service.ErrInvalidUrgency),
		errors.Is(err, service.ErrInvalidEventStatus),
		errors.Is(err, service.ErrInvalidEventDate):
		return model.NewValidationError([]model.FieldError{{Field: "event", Message: err.Error()}})

	case errors.Is(err, service.ErrInvalidMatchLevel),
		errors.Is(err, service.ErrInvalidPercentage):
		return model.NewValidationError([]model.FieldError{{Field: "filter", Message: err.Error()}})

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
