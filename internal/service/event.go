package service

import (
	"context"
	"strings"
	"time"

	"github.com/volunteerhub/api/internal/model"
)

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	Get(ctx context.Context, eventID string) (*model.Event, error)
	Update(ctx context.Context, eventID string, updates map[string]interface{}) (*model.Event, error)
	Delete(ctx context.Context, eventID string) error
	List(ctx context.Context, status string, limit int) ([]*model.Event, error)
	ListUpcoming(ctx context.Context, window time.Duration, limit int) ([]*model.Event, error)
	Count(ctx context.Context, status string) (int, error)
}

// EventNotifier is notified after an event is updated or cancelled so that
// interested volunteers can be told. Implemented by the notification service.
type EventNotifier interface {
	NotifyEventChanged(ctx context.Context, event *model.Event, changeType string)
}

// EventService handles event operations
type EventService struct {
	eventRepo EventRepository
	notifier  EventNotifier
}

// EventServiceConfig holds configuration for the event service
type EventServiceConfig struct {
	EventRepo EventRepository
	Notifier  EventNotifier // optional
}

// NewEventService creates a new event service
func NewEventService(cfg EventServiceConfig) *EventService {
	return &EventService{
		eventRepo: cfg.EventRepo,
		notifier:  cfg.Notifier,
	}
}

// Create creates a new event owned by the given user
func (s *EventService) Create(ctx context.Context, userID string, req model.CreateEventRequest) (*model.Event, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEventNameRequired
	}
	if len(name) > model.MaxEventNameLength {
		return nil, ErrEventNameTooLong
	}
	if req.Description != nil && len(*req.Description) > model.MaxDescriptionChars {
		return nil, ErrDescriptionTooLong
	}
	if len(req.RequiredSkills) > model.MaxRequiredSkills {
		return nil, ErrTooManyRequiredSkills
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = model.UrgencyMedium
	}
	if !model.IsValidUrgency(urgency) {
		return nil, ErrInvalidUrgency
	}

	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		Name:           name,
		Description:    req.Description,
		Location:       strings.TrimSpace(req.Location),
		RequiredSkills: normalizeSkills(req.RequiredSkills),
		EventDate:      eventDate,
		Urgency:        urgency,
		Status:         model.EventStatusPublished,
		CreatedBy:      userID,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Get retrieves an event by ID
func (s *EventService) Get(ctx context.Context, eventID string) (*model.Event, error) {
	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// Update applies a partial update. Only the event owner or an admin may update.
func (s *EventService) Update(ctx context.Context, eventID string, claims *model.TokenClaims, req model.UpdateEventRequest) (*model.Event, error) {
	event, err := s.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != claims.UserID && claims.Role != model.RoleAdmin {
		return nil, ErrNotEventOwner
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrEventNameRequired
		}
		if len(name) > model.MaxEventNameLength {
			return nil, ErrEventNameTooLong
		}
		updates["name"] = name
	}
	if req.Description != nil {
		if len(*req.Description) > model.MaxDescriptionChars {
			return nil, ErrDescriptionTooLong
		}
		updates["description"] = *req.Description
	}
	if req.Location != nil {
		updates["location"] = strings.TrimSpace(*req.Location)
	}
	if req.RequiredSkills != nil {
		if len(req.RequiredSkills) > model.MaxRequiredSkills {
			return nil, ErrTooManyRequiredSkills
		}
		updates["required_skills"] = normalizeSkills(req.RequiredSkills)
	}
	if req.EventDate != nil {
		eventDate, err := parseEventDate(req.EventDate)
		if err != nil {
			return nil, err
		}
		if eventDate == nil {
			// Empty string clears the date
			updates["event_date"] = nil
		} else {
			updates["event_date"] = eventDate.Format(time.RFC3339)
		}
	}
	if req.Urgency != nil {
		if !model.IsValidUrgency(*req.Urgency) {
			return nil, ErrInvalidUrgency
		}
		updates["urgency"] = *req.Urgency
	}
	if req.Status != nil {
		if !isValidEventStatus(*req.Status) {
			return nil, ErrInvalidEventStatus
		}
		updates["status"] = *req.Status
	}

	if len(updates) == 0 {
		return event, nil
	}

	updated, err := s.eventRepo.Update(ctx, eventID, updates)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		changeType := model.NotificationEventUpdated
		if req.Status != nil && *req.Status == model.EventStatusCancelled {
			changeType = model.NotificationEventCancelled
		}
		s.notifier.NotifyEventChanged(ctx, updated, changeType)
	}

	return updated, nil
}

// Delete removes an event. Only the event owner or an admin may delete.
func (s *EventService) Delete(ctx context.Context, eventID string, claims *model.TokenClaims) error {
	event, err := s.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if event.CreatedBy != claims.UserID && claims.Role != model.RoleAdmin {
		return ErrNotEventOwner
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.NotifyEventChanged(ctx, event, model.NotificationEventCancelled)
	}
	return nil
}

// List returns events filtered by status ("" for all), newest first, along
// with the total count matching the filter.
func (s *EventService) List(ctx context.Context, status string, limit int) ([]*model.Event, int, error) {
	if status != "" && !isValidEventStatus(status) {
		return nil, 0, ErrInvalidEventStatus
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	events, err := s.eventRepo.List(ctx, status, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.eventRepo.Count(ctx, status)
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// Helper functions

func parseEventDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(*raw))
	if err != nil {
		// Date-only form is accepted as a convenience
		t, err = time.Parse("2006-01-02", strings.TrimSpace(*raw))
		if err != nil {
			return nil, ErrInvalidEventDate
		}
	}
	return &t, nil
}

func isValidEventStatus(status string) bool {
	switch status {
	case model.EventStatusDraft, model.EventStatusPublished, model.EventStatusCancelled, model.EventStatusCompleted:
		return true
	}
	return false
}
