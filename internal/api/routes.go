package api

import (
	"net/http"

	"alcyxob/fitness-coach/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every handler onto the router. The API is a local,
// single-user surface; there is no authentication layer.
func SetupRoutes(
	router *gin.Engine,
	profileService service.ProfileService,
	catalogService service.CatalogService,
	planService service.PlanService,
	coachService service.CoachService,
) {
	profileHandler := NewProfileHandler(profileService)
	catalogHandler := NewCatalogHandler(catalogService)
	planHandler := NewPlanHandler(planService)
	coachHandler := NewCoachHandler(coachService)

	router.Use(RequestIDMiddleware())
	router.Use(RequestLogMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		// --- Profile Routes ---
		profileGroup := apiV1.Group("/profiles")
		{
			profileGroup.POST("", profileHandler.CreateProfile)
			profileGroup.GET("", profileHandler.ListProfiles)
			profileGroup.GET("/:id", profileHandler.GetProfile)
			profileGroup.PUT("/:id", profileHandler.UpdateProfile)
			profileGroup.DELETE("/:id", profileHandler.DeleteProfile)

			// GET /api/v1/profiles/{id}/plans - every plan for a profile
			profileGroup.GET("/:id/plans", planHandler.ListPlansForProfile)
		}

		// --- Catalog Routes ---
		catalogGroup := apiV1.Group("/catalog/exercises")
		{
			catalogGroup.POST("", catalogHandler.CreateExercise)
			catalogGroup.GET("", catalogHandler.ListExercises)
			catalogGroup.GET("/:id", catalogHandler.GetExercise)
			catalogGroup.PUT("/:id", catalogHandler.UpdateExercise)
			catalogGroup.DELETE("/:id", catalogHandler.DeleteExercise)
		}

		// --- Plan Routes ---
		planGroup := apiV1.Group("/plans")
		{
			planGroup.POST("", planHandler.SavePlan)
			planGroup.GET("/:id", planHandler.GetPlan)
			planGroup.DELETE("/:id", planHandler.DeletePlan)

			// POST /api/v1/plans/{id}/patches - apply a validated edit batch
			planGroup.POST("/:id/patches", planHandler.ApplyPatches)
			// POST /api/v1/plans/{id}/propose-edits - ask the assistant
			planGroup.POST("/:id/propose-edits", planHandler.ProposeEdits)
		}

		// --- Coach Routes ---
		coachGroup := apiV1.Group("/coach")
		{
			// GET /api/v1/coach/profiles/{id}/targets?goalId=...
			coachGroup.GET("/profiles/:id/targets", coachHandler.GetTargets)
			// POST /api/v1/coach/profiles/{id}/plans - generate a program
			coachGroup.POST("/profiles/:id/plans", coachHandler.GeneratePlan)
			// POST /api/v1/coach/plans/{id}/substitute - swap one slot
			coachGroup.POST("/plans/:id/substitute", coachHandler.SubstituteExercise)
			// DELETE /api/v1/coach/plans/{id}/session - end substitution session
			coachGroup.DELETE("/plans/:id/session", coachHandler.ClosePlanSession)
		}
	}
}
