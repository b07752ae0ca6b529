package handler

import (
	"net/http"

	"github.com/volunteerhub/api/internal/middleware"
	"github.com/volunteerhub/api/internal/model"
	"github.com/volunteerhub/api/internal/service"
)

// EventHandler handles event endpoints
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// EventResponse represents an event in API responses
type EventResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    *string  `json:"description,omitempty"`
	Location       string   `json:"location,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	EventDate      *string  `json:"event_date,omitempty"`
	Urgency        string   `json:"urgency"`
	Status         string   `json:"status"`
	CreatedBy      string   `json:"created_by"`
	CreatedOn      string   `json:"created_on"`
	UpdatedOn      string   `json:"updated_on"`
}

// Create handles POST /v1/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.CreateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	event, err := h.eventService.Create(r.Context(), userID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, toEventResponse(event))
}

// Get handles GET /v1/events/{eventId}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.eventService.Get(r.Context(), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toEventResponse(event))
}

// Update handles PATCH /v1/events/{eventId}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.UpdateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	event, err := h.eventService.Update(r.Context(), r.PathValue("eventId"), claims, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toEventResponse(event))
}

// Delete handles DELETE /v1/events/{eventId}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	if err := h.eventService.Delete(r.Context(), r.PathValue("eventId"), claims); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// List handles GET /v1/events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	limit := parseIntParam(r, "limit", 50)

	events, total, err := h.eventService.List(r.Context(), status, limit)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	responses := make([]EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, toEventResponse(e))
	}

	WriteCollection(w, http.StatusOK, responses, &PaginationInfo{
		Total: total,
		Limit: limit,
	})
}

func toEventResponse(event *model.Event) EventResponse {
	resp := EventResponse{
		ID:             event.ID,
		Name:           event.Name,
		Description:    event.Description,
		Location:       event.Location,
		RequiredSkills: event.RequiredSkills,
		Urgency:        event.Urgency,
		Status:         event.Status,
		CreatedBy:      event.CreatedBy,
		CreatedOn:      event.CreatedOn.Format("2006-01-02T15:04:05Z"),
		UpdatedOn:      event.UpdatedOn.Format("2006-01-02T15:04:05Z"),
	}
	if event.EventDate != nil {
		formatted := event.EventDate.Format("2006-01-02T15:04:05Z")
		resp.EventDate = &formatted
	}
	return resp
}
