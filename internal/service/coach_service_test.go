package service

import (
	"context"
	"testing"

	"alcyxob/fitness-coach/internal/coach"
	"alcyxob/fitness-coach/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoachService(planRepo *fakePlanRepo, weeks int) (CoachService, *fakeProfileRepo) {
	profileRepo := newFakeProfileRepo()
	return NewCoachService(profileRepo, planRepo, testCatalogRepo(), weeks, coach.DefaultHistorySize), profileRepo
}

func TestCalculateTargets(t *testing.T) {
	svc, profileRepo := newTestCoachService(newFakePlanRepo(), 4)
	ctx := context.Background()
	_, err := profileRepo.Create(ctx, testProfile())
	require.NoError(t, err)

	t.Run("highest priority goal by default", func(t *testing.T) {
		result, err := svc.CalculateTargets(ctx, oid(100), "")
		require.NoError(t, err)
		// 30y male, 180cm, 80kg, moderate activity, fat loss goal.
		assert.InDelta(t, 1780, result.Energy.BMR, 0.01)
		assert.InDelta(t, 2759, result.Energy.TDEE, 0.01)
		assert.Equal(t, 2207, result.Macros.Calories)
	})

	t.Run("explicit goal id", func(t *testing.T) {
		result, err := svc.CalculateTargets(ctx, oid(100), "goal-2")
		require.NoError(t, err)
		assert.Equal(t, 2759, result.Macros.Calories, "strength trains at maintenance")
	})

	t.Run("unknown goal id", func(t *testing.T) {
		_, err := svc.CalculateTargets(ctx, oid(100), "goal-404")
		assert.ErrorIs(t, err, coach.ErrGoalNotFound)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := svc.CalculateTargets(ctx, oid(404), "")
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}

func TestGeneratePlanPersists(t *testing.T) {
	planRepo := newFakePlanRepo()
	svc, profileRepo := newTestCoachService(planRepo, 2)
	ctx := context.Background()
	_, err := profileRepo.Create(ctx, testProfile())
	require.NoError(t, err)

	result, err := svc.GeneratePlan(ctx, oid(100), "")
	require.NoError(t, err)
	require.NotNil(t, result.Plan)
	assert.Empty(t, result.Warnings)

	stored, err := planRepo.GetByID(ctx, result.Plan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanByCoach, stored.GeneratedBy)
	assert.Equal(t, "goal-1", stored.GoalID)
	require.Len(t, stored.Weeks, 2)
	for _, week := range stored.Weeks {
		require.Len(t, week.Workouts, 3, "one workout per scheduled day")
		for _, workout := range week.Workouts {
			assert.Len(t, workout.Exercises, 6, "full body plus the fat-loss core slot")
		}
	}
}

func TestGeneratePlanEmptyCatalog(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	svc := NewCoachService(profileRepo, newFakePlanRepo(), newFakeCatalogRepo(), 4, coach.DefaultHistorySize)
	ctx := context.Background()
	_, err := profileRepo.Create(ctx, testProfile())
	require.NoError(t, err)

	_, err = svc.GeneratePlan(ctx, oid(100), "")
	assert.ErrorIs(t, err, coach.ErrCatalogEmpty)
}

// generateSingleWeek sets up a one-week plan and returns the service with
// the plan id for substitution tests. With the fixture catalog the monday
// chest slot deterministically holds Push-Up.
func generateSingleWeek(t *testing.T) (CoachService, *fakePlanRepo, *domain.WorkoutPlan) {
	t.Helper()
	planRepo := newFakePlanRepo()
	svc, profileRepo := newTestCoachService(planRepo, 1)
	ctx := context.Background()
	_, err := profileRepo.Create(ctx, testProfile())
	require.NoError(t, err)

	result, err := svc.GeneratePlan(ctx, oid(100), "")
	require.NoError(t, err)
	return svc, planRepo, result.Plan
}

const chestPosition = 1 // slot order: legs, chest, back, shoulders, core, core

func TestSubstituteExercise(t *testing.T) {
	svc, planRepo, plan := generateSingleWeek(t)
	ctx := context.Background()

	workout := plan.Workout(1, "monday")
	require.NotNil(t, workout)
	require.Equal(t, "Push-Up", workout.Exercises[chestPosition].ExerciseName)

	result, err := svc.SubstituteExercise(ctx, plan.ID, 1, "monday", chestPosition)
	require.NoError(t, err)
	require.NotNil(t, result.Replacement)
	assert.Equal(t, "Bench Press", result.Replacement.Name)

	stored, err := planRepo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bench Press", stored.Workout(1, "monday").Exercises[chestPosition].ExerciseName,
		"substitution is persisted")
	assert.Equal(t, "chest", stored.Workout(1, "monday").Exercises[chestPosition].BodyPart)
}

func TestSubstituteExerciseAvoidsRecentChoices(t *testing.T) {
	svc, _, plan := generateSingleWeek(t)
	ctx := context.Background()

	var names []string
	for i := 0; i < 3; i++ {
		result, err := svc.SubstituteExercise(ctx, plan.ID, 1, "monday", chestPosition)
		require.NoError(t, err)
		require.NotNil(t, result.Replacement)
		names = append(names, result.Replacement.Name)
	}
	assert.Equal(t, []string{"Bench Press", "Push-Up", "Dumbbell Fly"}, names)
}

func TestClosePlanSessionResetsHistory(t *testing.T) {
	svc, _, plan := generateSingleWeek(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.SubstituteExercise(ctx, plan.ID, 1, "monday", chestPosition)
		require.NoError(t, err)
	}
	// Slot now holds Dumbbell Fly with history [Bench Press, Push-Up,
	// Dumbbell Fly]; with the session still open the only candidate left
	// would be Incline Push-Up.
	svc.ClosePlanSession(plan.ID)

	result, err := svc.SubstituteExercise(ctx, plan.ID, 1, "monday", chestPosition)
	require.NoError(t, err)
	require.NotNil(t, result.Replacement)
	assert.Equal(t, "Push-Up", result.Replacement.Name, "fresh session forgets earlier substitutions")
}

func TestSubstituteExerciseBadSlot(t *testing.T) {
	svc, _, plan := generateSingleWeek(t)
	ctx := context.Background()

	_, err := svc.SubstituteExercise(ctx, plan.ID, 1, "monday", 99)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	_, err = svc.SubstituteExercise(ctx, plan.ID, 1, "sunday", 0)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	_, err = svc.SubstituteExercise(ctx, oid(404), 1, "monday", 0)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}
