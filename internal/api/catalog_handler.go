package api

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/service"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CatalogHandler holds the catalog service dependency.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateExerciseRequest defines the expected JSON for adding a custom
// exercise to the catalog.
type CreateExerciseRequest struct {
	Name         string   `json:"name" binding:"required"`
	BodyPart     string   `json:"bodyPart" binding:"required"`
	Category     string   `json:"category"`
	Equipment    []string `json:"equipment"`
	Difficulty   string   `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Instructions []string `json:"instructions"`
}

// ExerciseResponse is the DTO for returning catalog exercise details.
type ExerciseResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BodyPart     string    `json:"bodyPart"`
	Category     string    `json:"category,omitempty"`
	Equipment    []string  `json:"equipment,omitempty"`
	Difficulty   string    `json:"difficulty"`
	Instructions []string  `json:"instructions,omitempty"`
	Custom       bool      `json:"custom"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MapExerciseToResponse converts a domain.CatalogExercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.CatalogExercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:           ex.ID.Hex(),
		Name:         ex.Name,
		BodyPart:     ex.BodyPart,
		Category:     ex.Category,
		Equipment:    ex.Equipment,
		Difficulty:   string(ex.Difficulty),
		Instructions: ex.Instructions,
		Custom:       ex.Custom,
		CreatedAt:    ex.CreatedAt,
		UpdatedAt:    ex.UpdatedAt,
	}
}

// MapExercisesToResponse converts a slice of domain.CatalogExercise to DTOs.
func MapExercisesToResponse(exercises []domain.CatalogExercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateExercise handles POST /api/v1/catalog/exercises.
func (h *CatalogHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.catalogService.CreateCustomExercise(c.Request.Context(), &domain.CatalogExercise{
		Name:         req.Name,
		BodyPart:     req.BodyPart,
		Category:     req.Category,
		Equipment:    req.Equipment,
		Difficulty:   domain.Difficulty(req.Difficulty),
		Instructions: req.Instructions,
	})
	if err != nil {
		handleCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapExerciseToResponse(exercise))
}

// GetExercise handles GET /api/v1/catalog/exercises/:id.
func (h *CatalogHandler) GetExercise(c *gin.Context) {
	exerciseID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	exercise, err := h.catalogService.GetExerciseByID(c.Request.Context(), exerciseID)
	if err != nil {
		handleCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// ListExercises handles GET /api/v1/catalog/exercises.
// Exactly one of the bodyPart, equipment or q query parameters selects the
// lookup; bodyPart wins when several are present.
func (h *CatalogHandler) ListExercises(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		exercises []domain.CatalogExercise
		err       error
	)
	switch {
	case c.Query("bodyPart") != "":
		exercises, err = h.catalogService.GetByBodyPart(ctx, c.Query("bodyPart"))
	case c.Query("equipment") != "":
		exercises, err = h.catalogService.GetByEquipment(ctx, c.Query("equipment"))
	case c.Query("q") != "":
		exercises, err = h.catalogService.Search(ctx, c.Query("q"))
	default:
		abortWithError(c, http.StatusBadRequest, "One of bodyPart, equipment or q query parameters is required.")
		return
	}
	if err != nil {
		handleCatalogServiceError(c, err)
		return
	}

	if exercises == nil {
		c.JSON(http.StatusOK, []ExerciseResponse{})
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// UpdateExercise handles PUT /api/v1/catalog/exercises/:id.
func (h *CatalogHandler) UpdateExercise(c *gin.Context) {
	exerciseID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.catalogService.UpdateExercise(c.Request.Context(), &domain.CatalogExercise{
		ID:           exerciseID,
		Name:         req.Name,
		BodyPart:     req.BodyPart,
		Category:     req.Category,
		Equipment:    req.Equipment,
		Difficulty:   domain.Difficulty(req.Difficulty),
		Instructions: req.Instructions,
	})
	if err != nil {
		handleCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// DeleteExercise handles DELETE /api/v1/catalog/exercises/:id.
func (h *CatalogHandler) DeleteExercise(c *gin.Context) {
	exerciseID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteExercise(c.Request.Context(), exerciseID); err != nil {
		handleCatalogServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func handleCatalogServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExerciseNotFound):
		abortWithError(c, http.StatusNotFound, "Exercise not found.")
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to process exercise.")
	}
}
