package service

import (
	"alcyxob/fitness-coach/internal/assistant"
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/patch"
	"alcyxob/fitness-coach/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrAssistantUnavailable = errors.New("no assistant is configured")
	ErrPlanInvalid          = errors.New("plan validation failed")
)

// --- Service Interface ---
type PlanService interface {
	GetPlanByID(ctx context.Context, planID primitive.ObjectID) (*domain.WorkoutPlan, error)
	GetPlansForProfile(ctx context.Context, profileID primitive.ObjectID) ([]domain.WorkoutPlan, error)
	SaveManualPlan(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error)
	DeletePlan(ctx context.Context, planID primitive.ObjectID) error
	// ApplyPatches validates a raw patch payload against the patch schema
	// and applies it to the stored plan.
	ApplyPatches(ctx context.Context, planID primitive.ObjectID, rawPatches []byte) (*domain.WorkoutPlan, error)
	// ProposeEdits asks the configured assistant for edit patches. The
	// patches are returned for review, not applied.
	ProposeEdits(ctx context.Context, planID primitive.ObjectID, instruction string) ([]patch.Patch, error)
}

// --- Service Implementation ---

// planService implements the PlanService interface. The assistant is
// optional; a nil assistant simply disables ProposeEdits.
type planService struct {
	planRepo  repository.WorkoutPlanRepository
	assistant assistant.Assistant
}

// NewPlanService creates a new instance of planService.
func NewPlanService(planRepo repository.WorkoutPlanRepository, asst assistant.Assistant) PlanService {
	return &planService{
		planRepo:  planRepo,
		assistant: asst,
	}
}

// GetPlanByID retrieves a single plan.
func (s *planService) GetPlanByID(ctx context.Context, planID primitive.ObjectID) (*domain.WorkoutPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// GetPlansForProfile retrieves every plan belonging to a profile.
func (s *planService) GetPlansForProfile(ctx context.Context, profileID primitive.ObjectID) ([]domain.WorkoutPlan, error) {
	return s.planRepo.GetByProfileID(ctx, profileID)
}

// SaveManualPlan stores a plan built by hand in the UI. The unique-exercise
// invariant is enforced here since the plan did not come from the generator.
func (s *planService) SaveManualPlan(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	if plan.Name == "" || plan.ProfileID == primitive.NilObjectID {
		return nil, ErrPlanInvalid
	}
	if err := validatePlanInvariants(plan); err != nil {
		return nil, err
	}
	plan.GeneratedBy = domain.PlanByManual

	planID, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	return s.planRepo.GetByID(ctx, planID)
}

// DeletePlan removes a plan.
func (s *planService) DeletePlan(ctx context.Context, planID primitive.ObjectID) error {
	err := s.planRepo.Delete(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}

// ApplyPatches validates, applies and persists a patch payload. The stored
// plan is only updated when every patch applies cleanly.
func (s *planService) ApplyPatches(ctx context.Context, planID primitive.ObjectID, rawPatches []byte) (*domain.WorkoutPlan, error) {
	patches, err := patch.Parse(rawPatches)
	if err != nil {
		return nil, err
	}

	plan, err := s.GetPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if err := patch.Apply(plan, patches); err != nil {
		return nil, err
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// ProposeEdits forwards the instruction to the assistant and returns its
// validated patch proposals.
func (s *planService) ProposeEdits(ctx context.Context, planID primitive.ObjectID, instruction string) ([]patch.Patch, error) {
	if s.assistant == nil {
		return nil, ErrAssistantUnavailable
	}

	plan, err := s.GetPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	return s.assistant.ProposePlanEdits(ctx, plan, instruction)
}

// validatePlanInvariants checks that no workout lists the same exercise
// twice.
func validatePlanInvariants(plan *domain.WorkoutPlan) error {
	for _, week := range plan.Weeks {
		for _, workout := range week.Workouts {
			seen := make(map[primitive.ObjectID]bool, len(workout.Exercises))
			for _, ex := range workout.Exercises {
				if seen[ex.ExerciseID] {
					return ErrPlanInvalid
				}
				seen[ex.ExerciseID] = true
			}
		}
	}
	return nil
}
