package repository

import (
	"context"
	"errors"
	"time"

	"github.com/volunteerhub/api/internal/database"
	"github.com/volunteerhub/api/internal/model"
)

// EventRepository handles event data access
type EventRepository struct {
	db database.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	// Build query dynamically to handle optional fields (SurrealDB option<T> requires NONE, not NULL)
	vars := map[string]interface{}{
		"name":       event.Name,
		"urgency":    event.Urgency,
		"status":     event.Status,
		"created_by": event.CreatedBy,
	}

	setClause := `
		name = $name,
		urgency = $urgency,
		status = $status,
		created_by = type::record($created_by),
		created_on = time::now(),
		updated_on = time::now()`

	if event.Description != nil {
		setClause += ", description = $description"
		vars["description"] = *event.Description
	}
	if event.Location != "" {
		setClause += ", location = $location"
		vars["location"] = event.Location
	}
	if len(event.RequiredSkills) > 0 {
		setClause += ", required_skills = $required_skills"
		vars["required_skills"] = event.RequiredSkills
	}
	if event.EventDate != nil {
		setClause += ", event_date = <datetime>$event_date"
		vars["event_date"] = event.EventDate.Format(time.RFC3339)
	}

	query := "CREATE event SET " + setClause

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	event.ID = created.ID
	event.CreatedOn = created.CreatedOn
	event.UpdatedOn = created.UpdatedOn
	return nil
}

// Get retrieves an event by ID. Returns (nil, nil) when the event does not exist.
func (r *EventRepository) Get(ctx context.Context, eventID string) (*model.Event, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": eventID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	event, err := r.parseEventResult(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

// Update applies a partial update and returns the updated event
func (r *EventRepository) Update(ctx context.Context, eventID string, updates map[string]interface{}) (*model.Event, error) {
	query := `UPDATE type::record($id) SET updated_on = time::now()`
	vars := map[string]interface{}{
		"id": eventID,
	}

	if name, ok := updates["name"]; ok {
		query += ", name = $name"
		vars["name"] = name
	}
	if description, ok := updates["description"]; ok {
		query += ", description = $description"
		vars["description"] = description
	}
	if location, ok := updates["location"]; ok {
		query += ", location = $location"
		vars["location"] = location
	}
	if skills, ok := updates["required_skills"]; ok {
		query += ", required_skills = $required_skills"
		vars["required_skills"] = skills
	}
	if eventDate, ok := updates["event_date"]; ok {
		if eventDate == nil {
			query += ", event_date = NONE"
		} else {
			query += ", event_date = <datetime>$event_date"
			vars["event_date"] = eventDate
		}
	}
	if urgency, ok := updates["urgency"]; ok {
		query += ", urgency = $urgency"
		vars["urgency"] = urgency
	}
	if status, ok := updates["status"]; ok {
		query += ", status = $status"
		vars["status"] = status
	}

	query += ` RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseEventResult(result)
}

// Delete deletes an event
func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": eventID}

	return r.db.Execute(ctx, query, vars)
}

// List returns events filtered by status, newest first. An empty status
// returns events in every status.
func (r *EventRepository) List(ctx context.Context, status string, limit int) ([]*model.Event, error) {
	query := `SELECT * FROM event`
	vars := map[string]interface{}{"limit": limit}

	if status != "" {
		query += ` WHERE status = $status`
		vars["status"] = status
	}
	query += ` ORDER BY created_on DESC LIMIT $limit`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseEventsResult(result)
}

// ListUpcoming returns published events starting within the given window.
// Used by the reminder job.
func (r *EventRepository) ListUpcoming(ctx context.Context, window time.Duration, limit int) ([]*model.Event, error) {
	query := `
		SELECT * FROM event
		WHERE status = $status
			AND event_date != NONE
			AND event_date > time::now()
			AND event_date < <datetime>$until
		ORDER BY event_date ASC
		LIMIT $limit
	`
	vars := map[string]interface{}{
		"status": model.EventStatusPublished,
		"until":  time.Now().Add(window).Format(time.RFC3339),
		"limit":  limit,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseEventsResult(result)
}

// Count returns the number of events with the given status (all when empty)
func (r *EventRepository) Count(ctx context.Context, status string) (int, error) {
	query := `SELECT count() AS count FROM event`
	vars := map[string]interface{}{}

	if status != "" {
		query += ` WHERE status = $status`
		vars["status"] = status
	}
	query += ` GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return extractCount(result), nil
}

// Helper functions

func (r *EventRepository) parseEventResult(result interface{}) (*model.Event, error) {
	data, err := unwrapSingle(result)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		Name:           getString(data, "name"),
		Description:    getStringPtr(data, "description"),
		Location:       getString(data, "location"),
		RequiredSkills: getStringSlice(data, "required_skills"),
		Urgency:        getString(data, "urgency"),
		Status:         getString(data, "status"),
	}
	if id, ok := data["id"]; ok {
		event.ID = convertSurrealID(id)
	}
	if createdBy, ok := data["created_by"]; ok {
		event.CreatedBy = convertSurrealID(createdBy)
	}
	event.EventDate = getTime(data, "event_date")
	if t := getTime(data, "created_on"); t != nil {
		event.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		event.UpdatedOn = *t
	}

	return event, nil
}

func (r *EventRepository) parseEventsResult(result []interface{}) ([]*model.Event, error) {
	events := make([]*model.Event, 0)

	for _, item := range extractQueryResults(result) {
		event, err := r.parseEventResult(item)
		if err != nil {
			continue
		}
		events = append(events, event)
	}

	return events, nil
}
