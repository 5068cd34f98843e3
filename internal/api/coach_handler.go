package api

import (
	"alcyxob/fitness-coach/internal/coach"
	"alcyxob/fitness-coach/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CoachHandler holds the coach service dependency.
type CoachHandler struct {
	coachService service.CoachService
}

// NewCoachHandler creates a new CoachHandler.
func NewCoachHandler(coachService service.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// --- DTOs for API (Data Transfer Objects) ---

// TargetsResponse returns daily energy and macro targets.
type TargetsResponse struct {
	BMR      float64 `json:"bmr"`
	TDEE     float64 `json:"tdee"`
	Calories int     `json:"calories"`
	ProteinG int     `json:"proteinG"`
	CarbsG   int     `json:"carbsG"`
	FatG     int     `json:"fatG"`
}

// GeneratePlanRequest selects the goal to generate for. An empty goalId
// uses the profile's highest-priority goal.
type GeneratePlanRequest struct {
	GoalID string `json:"goalId"`
}

// GeneratePlanResponse bundles the stored plan with its targets and any
// slots the generator could not fill.
type GeneratePlanResponse struct {
	Plan     PlanResponse    `json:"plan"`
	Targets  TargetsResponse `json:"targets"`
	Warnings []string        `json:"warnings,omitempty"`
}

// SubstituteRequest addresses the plan slot to swap out.
type SubstituteRequest struct {
	Week     int    `json:"week" binding:"required,min=1"`
	Day      string `json:"day" binding:"required"`
	Position *int   `json:"position" binding:"required,min=0"`
}

// SubstituteResponse reports the substitution outcome. A null replacement
// means no alternative exists for the user's equipment; the plan is
// unchanged in that case.
type SubstituteResponse struct {
	Replacement *ExerciseResponse `json:"replacement"`
	Plan        PlanResponse      `json:"plan"`
}

func mapTargets(energy coach.EnergyTargets, macros coach.MacroTargets) TargetsResponse {
	return TargetsResponse{
		BMR:      energy.BMR,
		TDEE:     energy.TDEE,
		Calories: macros.Calories,
		ProteinG: macros.ProteinG,
		CarbsG:   macros.CarbsG,
		FatG:     macros.FatG,
	}
}

// --- Handler Methods ---

// GetTargets handles GET /api/v1/coach/profiles/:id/targets.
func (h *CoachHandler) GetTargets(c *gin.Context) {
	profileID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	result, err := h.coachService.CalculateTargets(c.Request.Context(), profileID, c.Query("goalId"))
	if err != nil {
		handleCoachServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapTargets(result.Energy, result.Macros))
}

// GeneratePlan handles POST /api/v1/coach/profiles/:id/plans.
func (h *CoachHandler) GeneratePlan(c *gin.Context) {
	profileID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.coachService.GeneratePlan(c.Request.Context(), profileID, req.GoalID)
	if err != nil {
		handleCoachServiceError(c, err)
		return
	}

	warnings := make([]string, len(result.Warnings))
	for i, w := range result.Warnings {
		warnings[i] = w.String()
	}
	c.JSON(http.StatusCreated, GeneratePlanResponse{
		Plan:     MapPlanToResponse(result.Plan),
		Targets:  mapTargets(result.Energy, result.Macros),
		Warnings: warnings,
	})
}

// SubstituteExercise handles POST /api/v1/coach/plans/:id/substitute.
func (h *CoachHandler) SubstituteExercise(c *gin.Context) {
	planID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req SubstituteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.coachService.SubstituteExercise(c.Request.Context(), planID, req.Week, req.Day, *req.Position)
	if err != nil {
		handleCoachServiceError(c, err)
		return
	}

	resp := SubstituteResponse{Plan: MapPlanToResponse(result.Plan)}
	if result.Replacement != nil {
		ex := MapExerciseToResponse(result.Replacement)
		resp.Replacement = &ex
	}
	c.JSON(http.StatusOK, resp)
}

// ClosePlanSession handles DELETE /api/v1/coach/plans/:id/session. Ends the
// substitution session so history restarts fresh next time the plan opens.
func (h *CoachHandler) ClosePlanSession(c *gin.Context) {
	planID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	h.coachService.ClosePlanSession(planID)
	c.Status(http.StatusNoContent)
}

func handleCoachServiceError(c *gin.Context, err error) {
	var missingErr *coach.MissingBiometricError
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		abortWithError(c, http.StatusNotFound, "Profile not found.")
	case errors.Is(err, service.ErrPlanNotFound):
		abortWithError(c, http.StatusNotFound, "Plan not found.")
	case errors.Is(err, service.ErrSlotNotFound):
		abortWithError(c, http.StatusNotFound, "No exercise at the requested plan position.")
	case errors.As(err, &missingErr),
		errors.Is(err, coach.ErrNoGoal),
		errors.Is(err, coach.ErrGoalNotFound),
		errors.Is(err, coach.ErrNoScheduledDays):
		abortWithError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, coach.ErrCatalogEmpty):
		abortWithError(c, http.StatusConflict, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to process coaching request.")
	}
}
