package api

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/service"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- DTOs for API (Data Transfer Objects) ---

// GoalRequest is one goal entry in a profile payload. ID is optional on
// create; the service mints one when absent.
type GoalRequest struct {
	ID         string     `json:"id"`
	Type       string     `json:"type" binding:"required"`
	Priority   int        `json:"priority" binding:"required,min=1"`
	TargetDate *time.Time `json:"targetDate"`
}

// MacroSplitRequest overrides the default calorie allocation.
type MacroSplitRequest struct {
	Protein float64 `json:"protein" binding:"required"`
	Carbs   float64 `json:"carbs" binding:"required"`
	Fat     float64 `json:"fat" binding:"required"`
}

// ProfileRequest defines the expected JSON for creating or updating a profile.
type ProfileRequest struct {
	Name          string             `json:"name" binding:"required"`
	Age           int                `json:"age" binding:"omitempty,min=0"`
	Sex           string             `json:"sex" binding:"omitempty,oneof=male female other"`
	HeightCM      float64            `json:"heightCm" binding:"omitempty,min=0"`
	WeightKG      float64            `json:"weightKg" binding:"omitempty,min=0"`
	ActivityLevel string             `json:"activityLevel"`
	Experience    string             `json:"experience"`
	Goals         []GoalRequest      `json:"goals"`
	Equipment     []string           `json:"equipment"`
	Schedule      map[string]bool    `json:"schedule"`
	Limitations   string             `json:"limitations"`
	MacroSplit    *MacroSplitRequest `json:"macroSplit"`
}

// GoalResponse is the DTO for returning a goal.
type GoalResponse struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Priority   int        `json:"priority"`
	TargetDate *time.Time `json:"targetDate,omitempty"`
}

// ProfileResponse is the DTO for returning profile details.
type ProfileResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Age           int                `json:"age,omitempty"`
	Sex           string             `json:"sex,omitempty"`
	HeightCM      float64            `json:"heightCm,omitempty"`
	WeightKG      float64            `json:"weightKg,omitempty"`
	ActivityLevel string             `json:"activityLevel,omitempty"`
	Experience    string             `json:"experience,omitempty"`
	Goals         []GoalResponse     `json:"goals"`
	Equipment     []string           `json:"equipment,omitempty"`
	Schedule      map[string]bool    `json:"schedule"`
	Limitations   string             `json:"limitations,omitempty"`
	MacroSplit    *MacroSplitRequest `json:"macroSplit,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// MapProfileToResponse converts a domain.Profile to ProfileResponse DTO.
func MapProfileToResponse(p *domain.Profile) ProfileResponse {
	if p == nil {
		return ProfileResponse{}
	}
	goals := make([]GoalResponse, len(p.Goals))
	for i, g := range p.Goals {
		goals[i] = GoalResponse{
			ID:         g.ID,
			Type:       string(g.Type),
			Priority:   g.Priority,
			TargetDate: g.TargetDate,
		}
	}
	resp := ProfileResponse{
		ID:            p.ID.Hex(),
		Name:          p.Name,
		Age:           p.Age,
		Sex:           string(p.Sex),
		HeightCM:      p.HeightCM,
		WeightKG:      p.WeightKG,
		ActivityLevel: string(p.ActivityLevel),
		Experience:    string(p.Experience),
		Goals:         goals,
		Equipment:     p.Equipment,
		Schedule:      p.Schedule,
		Limitations:   p.Limitations,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.MacroSplit != nil {
		resp.MacroSplit = &MacroSplitRequest{
			Protein: p.MacroSplit.Protein,
			Carbs:   p.MacroSplit.Carbs,
			Fat:     p.MacroSplit.Fat,
		}
	}
	return resp
}

func mapRequestToProfile(req *ProfileRequest) *domain.Profile {
	goals := make([]domain.Goal, len(req.Goals))
	for i, g := range req.Goals {
		goals[i] = domain.Goal{
			ID:         g.ID,
			Type:       domain.GoalType(g.Type),
			Priority:   g.Priority,
			TargetDate: g.TargetDate,
		}
	}
	profile := &domain.Profile{
		Name:          req.Name,
		Age:           req.Age,
		Sex:           domain.Sex(req.Sex),
		HeightCM:      req.HeightCM,
		WeightKG:      req.WeightKG,
		ActivityLevel: domain.ActivityLevel(req.ActivityLevel),
		Experience:    domain.ExperienceLevel(req.Experience),
		Goals:         goals,
		Equipment:     req.Equipment,
		Schedule:      req.Schedule,
		Limitations:   req.Limitations,
	}
	if req.MacroSplit != nil {
		profile.MacroSplit = &domain.MacroSplit{
			Protein: req.MacroSplit.Protein,
			Carbs:   req.MacroSplit.Carbs,
			Fat:     req.MacroSplit.Fat,
		}
	}
	return profile
}

// --- Handler Methods ---

// CreateProfile handles POST /api/v1/profiles.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	profile, err := h.profileService.CreateProfile(c.Request.Context(), mapRequestToProfile(&req))
	if err != nil {
		handleProfileServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapProfileToResponse(profile))
}

// ListProfiles handles GET /api/v1/profiles.
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileService.ListProfiles(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve profiles.")
		return
	}

	responses := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = MapProfileToResponse(&profiles[i])
	}
	c.JSON(http.StatusOK, responses)
}

// GetProfile handles GET /api/v1/profiles/:id.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profileID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfileByID(c.Request.Context(), profileID)
	if err != nil {
		handleProfileServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapProfileToResponse(profile))
}

// UpdateProfile handles PUT /api/v1/profiles/:id.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	profileID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	profile := mapRequestToProfile(&req)
	profile.ID = profileID

	updated, err := h.profileService.UpdateProfile(c.Request.Context(), profile)
	if err != nil {
		handleProfileServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapProfileToResponse(updated))
}

// DeleteProfile handles DELETE /api/v1/profiles/:id.
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	profileID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.profileService.DeleteProfile(c.Request.Context(), profileID); err != nil {
		handleProfileServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathObjectID parses an ObjectID path parameter, aborting with 400 on bad
// input. The bool reports whether the handler should continue.
func pathObjectID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format.")
		return primitive.NilObjectID, false
	}
	return id, true
}

func handleProfileServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		abortWithError(c, http.StatusNotFound, "Profile not found.")
	case errors.Is(err, service.ErrProfileInvalid),
		errors.Is(err, service.ErrUnknownGoalType),
		errors.Is(err, service.ErrUnknownEnumValue):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to process profile.")
	}
}
