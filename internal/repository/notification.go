package repository

import (
	"context"
	"errors"

	"github.com/volunteerhub/api/internal/database"
	"github.com/volunteerhub/api/internal/model"
)

// NotificationRepository handles notification data access
type NotificationRepository struct {
	db database.Database
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db database.Database) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a single notification
func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	query := notificationCreateQuery
	vars := notificationCreateVars(n)

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	n.ID = created.ID
	n.CreatedOn = created.CreatedOn
	return nil
}

// CreateBatch creates a set of notifications atomically. The reminder job
// uses this so a partially delivered fan-out never happens.
func (r *NotificationRepository) CreateBatch(ctx context.Context, notifications []*model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	batch := database.NewAtomicBatch()
	for _, n := range notifications {
		batch.Add(notificationCreateQuery, notificationCreateVars(n))
	}
	return batch.Execute(ctx, r.db)
}

// ListByUser returns a user's notifications, newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*model.Notification, error) {
	query := `SELECT * FROM notification WHERE user = type::record($user_id)`
	vars := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
	}

	if unreadOnly {
		query += ` AND read = false`
	}
	query += ` ORDER BY created_on DESC LIMIT $limit`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseNotificationsResult(result)
}

// Get retrieves a notification by ID. Returns (nil, nil) when it does not exist.
func (r *NotificationRepository) Get(ctx context.Context, id string) (*model.Notification, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	n, err := r.parseNotificationResult(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return n, nil
}

// MarkRead marks a notification as read
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	query := `UPDATE type::record($id) SET read = true`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

// Delete deletes a notification
func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

// HasReminder reports whether a reminder notification already exists for the
// given user and event. Keeps the reminder job idempotent across ticks.
func (r *NotificationRepository) HasReminder(ctx context.Context, userID, eventID string) (bool, error) {
	query := `
		SELECT count() AS count FROM notification
		WHERE user = type::record($user_id)
			AND event = type::record($event_id)
			AND type = $type
		GROUP ALL
	`
	vars := map[string]interface{}{
		"user_id":  userID,
		"event_id": eventID,
		"type":     model.NotificationEventReminder,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return extractCount(result) > 0, nil
}

const notificationCreateQuery = `
	CREATE notification CONTENT {
		user: type::record($user_id),
		type: $type,
		title: $title,
		message: $message,
		event: IF $event_id IS NOT NULL THEN type::record($event_id) ELSE NONE END,
		read: false,
		created_on: time::now()
	}
`

func notificationCreateVars(n *model.Notification) map[string]interface{} {
	return map[string]interface{}{
		"user_id":  n.UserID,
		"type":     n.Type,
		"title":    n.Title,
		"message":  n.Message,
		"event_id": ptrOrNil(n.EventID),
	}
}

// Helper functions

func (r *NotificationRepository) parseNotificationResult(result interface{}) (*model.Notification, error) {
	data, err := unwrapSingle(result)
	if err != nil {
		return nil, err
	}

	n := &model.Notification{
		Type:    getString(data, "type"),
		Title:   getString(data, "title"),
		Message: getString(data, "message"),
		Read:    getBool(data, "read"),
	}
	if id, ok := data["id"]; ok {
		n.ID = convertSurrealID(id)
	}
	if user, ok := data["user"]; ok {
		n.UserID = convertSurrealID(user)
	}
	if event, ok := data["event"]; ok && event != nil {
		id := convertSurrealID(event)
		if id != "" && id != "<nil>" {
			n.EventID = &id
		}
	}
	if t := getTime(data, "created_on"); t != nil {
		n.CreatedOn = *t
	}

	return n, nil
}

func (r *NotificationRepository) parseNotificationsResult(result []interface{}) ([]*model.Notification, error) {
	notifications := make([]*model.Notification, 0)

	for _, item := range extractQueryResults(result) {
		n, err := r.parseNotificationResult(item)
		if err != nil {
			continue
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}
