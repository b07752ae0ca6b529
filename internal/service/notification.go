package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/volunteerhub/api/internal/model"
)

// NotificationRepository defines the interface for notification storage
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	CreateBatch(ctx context.Context, notifications []*model.Notification) error
	ListByUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*model.Notification, error)
	Get(ctx context.Context, id string) (*model.Notification, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	HasReminder(ctx context.Context, userID, eventID string) (bool, error)
}

// NotificationService manages per-user notifications. It also fans out
// event-change notices to well-matched volunteers, which is why it holds the
// matching service.
type NotificationService struct {
	notificationRepo NotificationRepository
	matchingService  *MatchingService
	profileRepo      ProfileRepository
	logger           *slog.Logger
}

// NotificationServiceConfig holds configuration for the notification service
type NotificationServiceConfig struct {
	NotificationRepo NotificationRepository
	MatchingService  *MatchingService
	ProfileRepo      ProfileRepository
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(cfg NotificationServiceConfig) *NotificationService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationService{
		notificationRepo: cfg.NotificationRepo,
		matchingService:  cfg.MatchingService,
		profileRepo:      cfg.ProfileRepo,
		logger:           logger,
	}
}

// minNotifyPercentage is the match percentage at which a volunteer is
// considered interested enough in an event to be notified about it.
const minNotifyPercentage = model.MediumMatchThreshold

// List returns a user's notifications, newest first
func (s *NotificationService) List(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*model.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.notificationRepo.ListByUser(ctx, userID, unreadOnly, limit)
}

// MarkRead marks one of the user's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	n, err := s.notificationRepo.Get(ctx, notificationID)
	if err != nil {
		return err
	}
	if n == nil {
		return ErrNotificationNotFound
	}
	if n.UserID != userID {
		return ErrNotNotificationOwner
	}
	return s.notificationRepo.MarkRead(ctx, notificationID)
}

// Delete removes one of the user's notifications
func (s *NotificationService) Delete(ctx context.Context, userID, notificationID string) error {
	n, err := s.notificationRepo.Get(ctx, notificationID)
	if err != nil {
		return err
	}
	if n == nil {
		return ErrNotificationNotFound
	}
	if n.UserID != userID {
		return ErrNotNotificationOwner
	}
	return s.notificationRepo.Delete(ctx, notificationID)
}

// SendWelcome creates the onboarding notification for a new account
func (s *NotificationService) SendWelcome(ctx context.Context, userID string) error {
	return s.notificationRepo.Create(ctx, &model.Notification{
		UserID:  userID,
		Type:    model.NotificationWelcome,
		Title:   "Welcome to VolunteerHub",
		Message: "Create a volunteer profile with your skills and availability to start getting matched with events.",
	})
}

// matchedVolunteers pages through the full filtered match set for an event.
// Fan-out must reach every qualifying volunteer, not just the first page.
func (s *NotificationService) matchedVolunteers(ctx context.Context, eventID string) ([]*model.MatchResult, error) {
	var all []*model.MatchResult
	for offset := 0; ; offset += maxMatchLimit {
		result, err := s.matchingService.FindVolunteersForEvent(ctx, eventID, MatchOptions{
			MinPercentage: minNotifyPercentage,
			Limit:         maxMatchLimit,
			Offset:        offset,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, result.Matches...)
		if len(result.Matches) < maxMatchLimit || len(all) >= result.TotalMatches {
			return all, nil
		}
	}
}

// NotifyEventChanged tells volunteers who match an event at Medium or better
// that it was updated or cancelled. Delivery is best effort: failures are
// logged, never propagated to the caller's write path.
func (s *NotificationService) NotifyEventChanged(ctx context.Context, event *model.Event, changeType string) {
	matches, err := s.matchedVolunteers(ctx, event.ID)
	if err != nil {
		s.logger.Error("event change fan-out failed",
			"event_id", event.ID,
			"change", changeType,
			"error", err)
		return
	}

	var title, message string
	switch changeType {
	case model.NotificationEventCancelled:
		title = "Event cancelled"
		message = fmt.Sprintf("%q has been cancelled.", event.Name)
	default:
		title = "Event updated"
		message = fmt.Sprintf("%q has been updated. Check the latest details.", event.Name)
	}

	notifications := make([]*model.Notification, 0, len(matches))
	for _, m := range matches {
		profile, err := s.profileRepo.GetByID(ctx, m.VolunteerID)
		if err != nil || profile == nil {
			continue
		}
		eventID := event.ID
		notifications = append(notifications, &model.Notification{
			UserID:  profile.UserID,
			Type:    changeType,
			Title:   title,
			Message: message,
			EventID: &eventID,
		})
	}

	if err := s.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		s.logger.Error("event change notifications not stored",
			"event_id", event.ID,
			"count", len(notifications),
			"error", err)
		return
	}

	s.logger.Info("event change notifications sent",
		"event_id", event.ID,
		"change", changeType,
		"count", len(notifications))
}

// SendEventReminders notifies volunteers matched at Medium or better that an
// event is starting soon. Each volunteer gets at most one reminder per event;
// the stored notifications make the call idempotent across job ticks.
// Returns the number of reminders created.
func (s *NotificationService) SendEventReminders(ctx context.Context, event *model.Event) (int, error) {
	matches, err := s.matchedVolunteers(ctx, event.ID)
	if err != nil {
		return 0, err
	}

	notifications := make([]*model.Notification, 0)
	for _, m := range matches {
		profile, err := s.profileRepo.GetByID(ctx, m.VolunteerID)
		if err != nil || profile == nil {
			continue
		}

		already, err := s.notificationRepo.HasReminder(ctx, profile.UserID, event.ID)
		if err != nil {
			return 0, err
		}
		if already {
			continue
		}

		eventID := event.ID
		notifications = append(notifications, &model.Notification{
			UserID:  profile.UserID,
			Type:    model.NotificationEventReminder,
			Title:   "Upcoming event",
			Message: fmt.Sprintf("%q starts soon and you're a %d%% match.", event.Name, m.Percentage),
			EventID: &eventID,
		})
	}

	if err := s.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		return 0, err
	}
	return len(notifications), nil
}
