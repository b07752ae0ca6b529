package handler

import (
	"net/http"

	"github.com/volunteerhub/api/internal/middleware"
	"github.com/volunteerhub/api/internal/model"
	"github.com/volunteerhub/api/internal/service"
)

// NotificationHandler handles notification inbox endpoints
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	EventID   *string `json:"event_id,omitempty"`
	Read      bool    `json:"read"`
	CreatedOn string  `json:"created_on"`
}

// List handles GET /v1/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	unreadOnly := r.URL.Query().Get("unread_only") == "true"
	limit := parseIntParam(r, "limit", 50)

	notifications, err := h.notificationService.List(r.Context(), userID, unreadOnly, limit)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	responses := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, toNotificationResponse(n))
	}

	WriteCollection(w, http.StatusOK, responses, &PaginationInfo{
		Total: len(responses),
		Limit: limit,
	})
}

// MarkRead handles PATCH /v1/notifications/{notificationId}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	if err := h.notificationService.MarkRead(r.Context(), userID, r.PathValue("notificationId")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// Delete handles DELETE /v1/notifications/{notificationId}
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	if err := h.notificationService.Delete(r.Context(), userID, r.PathValue("notificationId")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

func toNotificationResponse(n *model.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		EventID:   n.EventID,
		Read:      n.Read,
		CreatedOn: n.CreatedOn.Format("2006-01-02T15:04:05Z"),
	}
}
