package service

import (
	"alcyxob/fitness-coach/internal/coach"
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound = errors.New("workout plan not found")
	ErrSlotNotFound = errors.New("no exercise at the requested plan position")
)

// TargetsResult bundles energy and macro targets for display.
type TargetsResult struct {
	Energy coach.EnergyTargets `json:"energy"`
	Macros coach.MacroTargets  `json:"macros"`
}

// SubstitutionResult reports the outcome of a substitution request.
// Replacement is nil when no suitable candidate exists; that is a routine
// outcome, not an error.
type SubstitutionResult struct {
	Replacement *domain.CatalogExercise `json:"replacement,omitempty"`
	Plan        *domain.WorkoutPlan     `json:"plan,omitempty"`
}

// --- Service Interface ---
type CoachService interface {
	CalculateTargets(ctx context.Context, profileID primitive.ObjectID, goalID string) (*TargetsResult, error)
	GeneratePlan(ctx context.Context, profileID primitive.ObjectID, goalID string) (*coach.GenerationResult, error)
	SubstituteExercise(ctx context.Context, planID primitive.ObjectID, week int, day string, position int) (*SubstitutionResult, error)
	ClosePlanSession(planID primitive.ObjectID)
}

// --- Service Implementation ---

// coachService orchestrates the coaching engine: it materializes catalog
// snapshots, runs the pure engine components, and persists results.
//
// Substitution histories are keyed per open plan and live only as long as
// the editing session; ClosePlanSession drops them. Access is serialized
// with a mutex since two UI surfaces editing the same slot concurrently is
// unsupported.
type coachService struct {
	profileRepo repository.ProfileRepository
	planRepo    repository.WorkoutPlanRepository
	catalog     repository.ExerciseCatalogClient
	weeks       int
	historySize int
	historiesMu sync.Mutex
	histories   map[primitive.ObjectID]*coach.SubstitutionHistory
}

// NewCoachService creates a new instance of coachService.
func NewCoachService(
	profileRepo repository.ProfileRepository,
	planRepo repository.WorkoutPlanRepository,
	catalog repository.ExerciseCatalogClient,
	weeks int,
	historySize int,
) CoachService {
	return &coachService{
		profileRepo: profileRepo,
		planRepo:    planRepo,
		catalog:     catalog,
		weeks:       weeks,
		historySize: historySize,
		histories:   make(map[primitive.ObjectID]*coach.SubstitutionHistory),
	}
}

// CalculateTargets computes energy and macro targets for display.
func (s *coachService) CalculateTargets(ctx context.Context, profileID primitive.ObjectID, goalID string) (*TargetsResult, error) {
	profile, err := s.loadProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	goal := profile.SelectedGoal(goalID)
	if goal == nil {
		if goalID != "" {
			return nil, coach.ErrGoalNotFound
		}
		return nil, coach.ErrNoGoal
	}

	energy, err := coach.NewAnalyzer().CalculateEnergy(profile)
	if err != nil {
		return nil, err
	}
	macros := coach.NewMacroPlanner().CalculateTargets(profile, goal.Type, energy.TDEE)
	return &TargetsResult{Energy: energy, Macros: macros}, nil
}

// GeneratePlan runs the program generator over a freshly materialized
// catalog snapshot and persists the resulting plan.
func (s *coachService) GeneratePlan(ctx context.Context, profileID primitive.ObjectID, goalID string) (*coach.GenerationResult, error) {
	profile, err := s.loadProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.materializeSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	generator := coach.NewGenerator(coach.NewSelector(snapshot), s.weeks)
	result, err := generator.Generate(profile, goalID)
	if err != nil {
		return nil, err
	}

	planID, err := s.planRepo.Create(ctx, result.Plan)
	if err != nil {
		return nil, err
	}
	result.Plan.ID = planID
	return result, nil
}

// SubstituteExercise replaces one slot of a stored plan and persists the
// updated plan. The per-plan substitution history keeps repeated requests
// on the same slot from cycling through the same few exercises.
func (s *coachService) SubstituteExercise(ctx context.Context, planID primitive.ObjectID, week int, day string, position int) (*SubstitutionResult, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	workout := plan.Workout(week, day)
	if workout == nil || position < 0 || position >= len(workout.Exercises) {
		return nil, ErrSlotNotFound
	}
	current := workout.Exercises[position]

	profile, err := s.loadProfile(ctx, plan.ProfileID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.materializeSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	s.historiesMu.Lock()
	defer s.historiesMu.Unlock()
	history, ok := s.histories[planID]
	if !ok {
		history = coach.NewSubstitutionHistory(s.historySize)
		s.histories[planID] = history
	}

	substituter := coach.NewSubstituter(coach.NewSelector(snapshot))
	replacement := substituter.Substitute(coach.SubstitutionRequest{
		ExerciseID: current.ExerciseID,
		Equipment:  profile.Equipment,
		Ceiling:    coach.DifficultyCeilingFor(profile.Experience),
		UsedInDay:  workout.ExerciseIDs(),
		SlotKey:    coach.SlotKey{Week: week, Day: day, Position: position},
	}, history)
	if replacement == nil {
		return &SubstitutionResult{Plan: plan}, nil
	}

	// Swap the exercise, keeping the prescription.
	workout.Exercises[position].ExerciseID = replacement.ID
	workout.Exercises[position].ExerciseName = replacement.Name
	workout.Exercises[position].BodyPart = replacement.BodyPart

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return &SubstitutionResult{Replacement: replacement, Plan: plan}, nil
}

// ClosePlanSession discards the substitution history for a plan, ending its
// editing session.
func (s *coachService) ClosePlanSession(planID primitive.ObjectID) {
	s.historiesMu.Lock()
	defer s.historiesMu.Unlock()
	delete(s.histories, planID)
}

func (s *coachService) loadProfile(ctx context.Context, profileID primitive.ObjectID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// materializeSnapshot reads every body part the split templates can ask for
// into one in-memory slice, so the engine itself never touches the store.
func (s *coachService) materializeSnapshot(ctx context.Context) ([]domain.CatalogExercise, error) {
	var snapshot []domain.CatalogExercise
	seen := make(map[primitive.ObjectID]bool)
	for _, bodyPart := range coach.TemplateBodyParts() {
		exercises, err := s.catalog.GetByBodyPart(ctx, bodyPart)
		if err != nil {
			return nil, err
		}
		for _, ex := range exercises {
			if !seen[ex.ID] {
				seen[ex.ID] = true
				snapshot = append(snapshot, ex)
			}
		}
	}
	return snapshot, nil
}
