package handler

import (
	"net/http"
	"strconv"

	"github.com/volunteerhub/api/internal/middleware"
	"github.com/volunteerhub/api/internal/model"
	"github.com/volunteerhub/api/internal/service"
)

// ProfileHandler handles volunteer profile endpoints
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// ProfileResponse represents a volunteer profile in API responses
type ProfileResponse struct {
	ID           string              `json:"id"`
	UserID       string              `json:"user_id"`
	Name         string              `json:"name"`
	Skills       []string            `json:"skills,omitempty"`
	Location     *model.Location     `json:"location,omitempty"`
	Availability *model.Availability `json:"availability,omitempty"`
	CreatedOn    string              `json:"created_on"`
	UpdatedOn    string              `json:"updated_on"`
}

// Create handles POST /v1/profile
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.CreateProfileRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	profile, err := h.profileService.Create(r.Context(), userID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, toProfileResponse(profile))
}

// Get handles GET /v1/profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	profile, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toProfileResponse(profile))
}

// Update handles PATCH /v1/profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.UpdateProfileRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	profile, err := h.profileService.Update(r.Context(), userID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toProfileResponse(profile))
}

// Delete handles DELETE /v1/profile
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	if err := h.profileService.Delete(r.Context(), userID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// List handles GET /v1/volunteers
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", 50)

	profiles, total, err := h.profileService.List(r.Context(), limit)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	responses := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, toProfileResponse(p))
	}

	WriteCollection(w, http.StatusOK, responses, &PaginationInfo{
		Total: total,
		Limit: limit,
	})
}

// GetByID handles GET /v1/volunteers/{volunteerId}
func (h *ProfileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	volunteerID := r.PathValue("volunteerId")

	profile, err := h.profileService.GetByID(r.Context(), volunteerID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toProfileResponse(profile))
}

func toProfileResponse(profile *model.VolunteerProfile) ProfileResponse {
	return ProfileResponse{
		ID:           profile.ID,
		UserID:       profile.UserID,
		Name:         profile.Name,
		Skills:       profile.Skills,
		Location:     profile.Location,
		Availability: profile.Availability,
		CreatedOn:    profile.CreatedOn.Format("2006-01-02T15:04:05Z"),
		UpdatedOn:    profile.UpdatedOn.Format("2006-01-02T15:04:05Z"),
	}
}

// parseIntParam reads an integer query parameter, falling back to def when
// the parameter is absent or malformed.
func parseIntParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
