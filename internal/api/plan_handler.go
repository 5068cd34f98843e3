package api

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/patch"
	"alcyxob/fitness-coach/internal/service"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- DTOs for API (Data Transfer Objects) ---

// RepsRangeResponse is an inclusive rep window.
type RepsRangeResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SetSchemeResponse is the DTO for one set scheme.
type SetSchemeResponse struct {
	Count       int                `json:"count"`
	Reps        int                `json:"reps,omitempty"`
	RepsRange   *RepsRangeResponse `json:"repsRange,omitempty"`
	WeightKG    *float64           `json:"weightKg,omitempty"`
	RestSeconds int                `json:"restSeconds,omitempty"`
	RPE         *float64           `json:"rpe,omitempty"`
	Notes       string             `json:"notes,omitempty"`
}

// PrescriptionResponse is one exercise slot within a workout.
type PrescriptionResponse struct {
	ExerciseID   string            `json:"exerciseId"`
	ExerciseName string            `json:"exerciseName"`
	BodyPart     string            `json:"bodyPart"`
	Sets         SetSchemeResponse `json:"sets"`
}

// WorkoutResponse is one training day.
type WorkoutResponse struct {
	DayLabel  string                 `json:"dayLabel"`
	Exercises []PrescriptionResponse `json:"exercises"`
	Notes     string                 `json:"notes,omitempty"`
}

// WeekResponse is one program week.
type WeekResponse struct {
	WeekNumber int               `json:"weekNumber"`
	Workouts   []WorkoutResponse `json:"workouts"`
}

// PlanResponse is the DTO for returning a full workout plan.
type PlanResponse struct {
	ID          string         `json:"id"`
	ProfileID   string         `json:"profileId"`
	Name        string         `json:"name"`
	GeneratedBy string         `json:"generatedBy"`
	GoalID      string         `json:"goalId,omitempty"`
	Weeks       []WeekResponse `json:"weeks"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// SavePlanRequest defines the expected JSON for storing a manually built plan.
type SavePlanRequest struct {
	ProfileID string         `json:"profileId" binding:"required"`
	Name      string         `json:"name" binding:"required"`
	GoalID    string         `json:"goalId"`
	Weeks     []WeekResponse `json:"weeks" binding:"required"`
}

// ProposeEditsRequest carries a free-text instruction for the assistant.
type ProposeEditsRequest struct {
	Instruction string `json:"instruction" binding:"required"`
}

// ProposeEditsResponse returns the assistant's validated patch proposals.
// The caller applies them with a separate request if accepted.
type ProposeEditsResponse struct {
	Patches []patch.Patch `json:"patches"`
}

// MapPlanToResponse converts a domain.WorkoutPlan to PlanResponse DTO.
func MapPlanToResponse(p *domain.WorkoutPlan) PlanResponse {
	if p == nil {
		return PlanResponse{}
	}
	weeks := make([]WeekResponse, len(p.Weeks))
	for wi, week := range p.Weeks {
		workouts := make([]WorkoutResponse, len(week.Workouts))
		for di, workout := range week.Workouts {
			exercises := make([]PrescriptionResponse, len(workout.Exercises))
			for ei, ex := range workout.Exercises {
				exercises[ei] = PrescriptionResponse{
					ExerciseID:   ex.ExerciseID.Hex(),
					ExerciseName: ex.ExerciseName,
					BodyPart:     ex.BodyPart,
					Sets:         mapSetScheme(ex.Sets),
				}
			}
			workouts[di] = WorkoutResponse{
				DayLabel:  workout.DayLabel,
				Exercises: exercises,
				Notes:     workout.Notes,
			}
		}
		weeks[wi] = WeekResponse{WeekNumber: week.WeekNumber, Workouts: workouts}
	}
	return PlanResponse{
		ID:          p.ID.Hex(),
		ProfileID:   p.ProfileID.Hex(),
		Name:        p.Name,
		GeneratedBy: string(p.GeneratedBy),
		GoalID:      p.GoalID,
		Weeks:       weeks,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func mapSetScheme(s domain.SetScheme) SetSchemeResponse {
	resp := SetSchemeResponse{
		Count:       s.Count,
		Reps:        s.Reps,
		WeightKG:    s.WeightKG,
		RestSeconds: s.RestSeconds,
		RPE:         s.RPE,
		Notes:       s.Notes,
	}
	if s.RepsRange != nil {
		resp.RepsRange = &RepsRangeResponse{Min: s.RepsRange.Min, Max: s.RepsRange.Max}
	}
	return resp
}

func mapRequestToPlan(req *SavePlanRequest, profileID primitive.ObjectID) (*domain.WorkoutPlan, error) {
	weeks := make([]domain.PlanWeek, len(req.Weeks))
	for wi, week := range req.Weeks {
		workouts := make([]domain.PlanWorkout, len(week.Workouts))
		for di, workout := range week.Workouts {
			exercises := make([]domain.ExercisePrescription, len(workout.Exercises))
			for ei, ex := range workout.Exercises {
				exerciseID, err := primitive.ObjectIDFromHex(ex.ExerciseID)
				if err != nil {
					return nil, err
				}
				sets := domain.SetScheme{
					Count:       ex.Sets.Count,
					Reps:        ex.Sets.Reps,
					WeightKG:    ex.Sets.WeightKG,
					RestSeconds: ex.Sets.RestSeconds,
					RPE:         ex.Sets.RPE,
					Notes:       ex.Sets.Notes,
				}
				if ex.Sets.RepsRange != nil {
					sets.RepsRange = &domain.RepsRange{Min: ex.Sets.RepsRange.Min, Max: ex.Sets.RepsRange.Max}
				}
				exercises[ei] = domain.ExercisePrescription{
					ExerciseID:   exerciseID,
					ExerciseName: ex.ExerciseName,
					BodyPart:     ex.BodyPart,
					Sets:         sets,
				}
			}
			workouts[di] = domain.PlanWorkout{
				DayLabel:  workout.DayLabel,
				Exercises: exercises,
				Notes:     workout.Notes,
			}
		}
		weeks[wi] = domain.PlanWeek{WeekNumber: week.WeekNumber, Workouts: workouts}
	}
	return &domain.WorkoutPlan{
		ProfileID: profileID,
		Name:      req.Name,
		GoalID:    req.GoalID,
		Weeks:     weeks,
	}, nil
}

// --- Handler Methods ---

// GetPlan handles GET /api/v1/plans/:id.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	planID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	plan, err := h.planService.GetPlanByID(c.Request.Context(), planID)
	if err != nil {
		handlePlanServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapPlanToResponse(plan))
}

// ListPlansForProfile handles GET /api/v1/profiles/:id/plans.
func (h *PlanHandler) ListPlansForProfile(c *gin.Context) {
	profileID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	plans, err := h.planService.GetPlansForProfile(c.Request.Context(), profileID)
	if err != nil {
		handlePlanServiceError(c, err)
		return
	}

	responses := make([]PlanResponse, len(plans))
	for i := range plans {
		responses[i] = MapPlanToResponse(&plans[i])
	}
	c.JSON(http.StatusOK, responses)
}

// SavePlan handles POST /api/v1/plans (manually built plans).
func (h *PlanHandler) SavePlan(c *gin.Context) {
	var req SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	profileID, err := primitive.ObjectIDFromHex(req.ProfileID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid profileId format.")
		return
	}

	plan, err := mapRequestToPlan(&req, profileID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exerciseId format in plan.")
		return
	}

	saved, err := h.planService.SaveManualPlan(c.Request.Context(), plan)
	if err != nil {
		handlePlanServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapPlanToResponse(saved))
}

// DeletePlan handles DELETE /api/v1/plans/:id.
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	planID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.planService.DeletePlan(c.Request.Context(), planID); err != nil {
		handlePlanServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApplyPatches handles POST /api/v1/plans/:id/patches. The body is the raw
// patch array; schema validation happens in the patch package so the exact
// violation is reported back.
func (h *PlanHandler) ApplyPatches(c *gin.Context) {
	planID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Failed to read request body.")
		return
	}

	plan, err := h.planService.ApplyPatches(c.Request.Context(), planID, raw)
	if err != nil {
		handlePlanServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapPlanToResponse(plan))
}

// ProposeEdits handles POST /api/v1/plans/:id/propose-edits.
func (h *PlanHandler) ProposeEdits(c *gin.Context) {
	planID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req ProposeEditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	patches, err := h.planService.ProposeEdits(c.Request.Context(), planID, req.Instruction)
	if err != nil {
		handlePlanServiceError(c, err)
		return
	}
	if patches == nil {
		patches = []patch.Patch{}
	}
	c.JSON(http.StatusOK, ProposeEditsResponse{Patches: patches})
}

func handlePlanServiceError(c *gin.Context, err error) {
	var validationErr *patch.ValidationError
	switch {
	case errors.Is(err, service.ErrPlanNotFound):
		abortWithError(c, http.StatusNotFound, "Plan not found.")
	case errors.Is(err, service.ErrPlanInvalid):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAssistantUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, "No assistant is configured.")
	case errors.As(err, &validationErr),
		errors.Is(err, patch.ErrWorkoutNotFound),
		errors.Is(err, patch.ErrPositionOutOfRange),
		errors.Is(err, patch.ErrDuplicateExercise):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to process plan.")
	}
}
