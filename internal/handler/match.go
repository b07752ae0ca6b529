package handler

import (
	"net/http"

	"github.com/volunteerhub/api/internal/service"
)

// MatchHandler handles matching endpoints
type MatchHandler struct {
	matchingService *service.MatchingService
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchingService *service.MatchingService) *MatchHandler {
	return &MatchHandler{
		matchingService: matchingService,
	}
}

// VolunteersForEvent handles GET /v1/events/{eventId}/matches
func (h *MatchHandler) VolunteersForEvent(w http.ResponseWriter, r *http.Request) {
	opts := matchOptionsFromQuery(r)

	result, err := h.matchingService.FindVolunteersForEvent(r.Context(), r.PathValue("eventId"), opts)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, result)
}

// EventsForVolunteer handles GET /v1/volunteers/{volunteerId}/matches
func (h *MatchHandler) EventsForVolunteer(w http.ResponseWriter, r *http.Request) {
	opts := matchOptionsFromQuery(r)

	result, err := h.matchingService.FindEventsForVolunteer(r.Context(), r.PathValue("volunteerId"), opts)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, result)
}

// Score handles GET /v1/volunteers/{volunteerId}/matches/{eventId}
func (h *MatchHandler) Score(w http.ResponseWriter, r *http.Request) {
	result, err := h.matchingService.GetMatchScore(r.Context(), r.PathValue("volunteerId"), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, result)
}

func matchOptionsFromQuery(r *http.Request) service.MatchOptions {
	return service.MatchOptions{
		MinPercentage: parseIntParam(r, "min_percentage", 0),
		MatchLevel:    r.URL.Query().Get("level"),
		Limit:         parseIntParam(r, "limit", 0),
		Offset:        parseIntParam(r, "offset", 0),
	}
}
