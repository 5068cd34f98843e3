package service

import (
	"alcyxob/fitness-coach/internal/assistant"
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/patch"
	"alcyxob/fitness-coach/internal/repository"
	"context"
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// oid builds a deterministic ObjectID from a small integer so tests can
// reason about id ordering.
func oid(n int) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(fmt.Sprintf("%024x", n))
	if err != nil {
		panic(err)
	}
	return id
}

// --- In-memory repository fakes ---

type fakeProfileRepo struct {
	profiles map[primitive.ObjectID]domain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[primitive.ObjectID]domain.Profile)}
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *domain.Profile) (primitive.ObjectID, error) {
	if profile.ID == primitive.NilObjectID {
		profile.ID = primitive.NewObjectID()
	}
	r.profiles[profile.ID] = *profile
	return profile.ID, nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *fakeProfileRepo) List(_ context.Context) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, profile *domain.Profile) error {
	if _, ok := r.profiles[profile.ID]; !ok {
		return repository.ErrNotFound
	}
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.profiles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.profiles, id)
	return nil
}

type fakeCatalogRepo struct {
	exercises map[primitive.ObjectID]domain.CatalogExercise
}

func newFakeCatalogRepo(exercises ...domain.CatalogExercise) *fakeCatalogRepo {
	r := &fakeCatalogRepo{exercises: make(map[primitive.ObjectID]domain.CatalogExercise)}
	for _, ex := range exercises {
		r.exercises[ex.ID] = ex
	}
	return r
}

func (r *fakeCatalogRepo) all() []domain.CatalogExercise {
	var out []domain.CatalogExercise
	for _, ex := range r.exercises {
		out = append(out, ex)
	}
	// Stored sorted by id like the mongo repository returns them.
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out
}

func (r *fakeCatalogRepo) GetByBodyPart(_ context.Context, bodyPart string) ([]domain.CatalogExercise, error) {
	var out []domain.CatalogExercise
	for _, ex := range r.all() {
		if strings.EqualFold(ex.BodyPart, bodyPart) {
			out = append(out, ex)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) GetByEquipment(_ context.Context, equipment string) ([]domain.CatalogExercise, error) {
	var out []domain.CatalogExercise
	for _, ex := range r.all() {
		for _, eq := range ex.Equipment {
			if strings.EqualFold(eq, equipment) {
				out = append(out, ex)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) Search(_ context.Context, query string) ([]domain.CatalogExercise, error) {
	var out []domain.CatalogExercise
	for _, ex := range r.all() {
		if strings.Contains(strings.ToLower(ex.Name), strings.ToLower(query)) {
			out = append(out, ex)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.CatalogExercise, error) {
	ex, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &ex, nil
}

func (r *fakeCatalogRepo) Create(_ context.Context, exercise *domain.CatalogExercise) (primitive.ObjectID, error) {
	if exercise.ID == primitive.NilObjectID {
		exercise.ID = primitive.NewObjectID()
	}
	r.exercises[exercise.ID] = *exercise
	return exercise.ID, nil
}

func (r *fakeCatalogRepo) Update(_ context.Context, exercise *domain.CatalogExercise) error {
	if _, ok := r.exercises[exercise.ID]; !ok {
		return repository.ErrNotFound
	}
	r.exercises[exercise.ID] = *exercise
	return nil
}

func (r *fakeCatalogRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.exercises[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.exercises, id)
	return nil
}

type fakePlanRepo struct {
	plans   map[primitive.ObjectID]domain.WorkoutPlan
	updates int
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[primitive.ObjectID]domain.WorkoutPlan)}
}

func (r *fakePlanRepo) Create(_ context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error) {
	if plan.ID == primitive.NilObjectID {
		plan.ID = primitive.NewObjectID()
	}
	r.plans[plan.ID] = *plan
	return plan.ID, nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Deep-copy so callers cannot mutate the stored plan through shared
	// slices, matching the real repository which decodes fresh documents.
	p.Weeks = clonePlanWeeks(p.Weeks)
	return &p, nil
}

func clonePlanWeeks(weeks []domain.PlanWeek) []domain.PlanWeek {
	if weeks == nil {
		return nil
	}
	out := make([]domain.PlanWeek, len(weeks))
	copy(out, weeks)
	for i := range out {
		workouts := make([]domain.PlanWorkout, len(out[i].Workouts))
		copy(workouts, out[i].Workouts)
		for j := range workouts {
			exercises := make([]domain.ExercisePrescription, len(workouts[j].Exercises))
			copy(exercises, workouts[j].Exercises)
			workouts[j].Exercises = exercises
		}
		out[i].Workouts = workouts
	}
	return out
}

func (r *fakePlanRepo) GetByProfileID(_ context.Context, profileID primitive.ObjectID) ([]domain.WorkoutPlan, error) {
	var out []domain.WorkoutPlan
	for _, p := range r.plans {
		if p.ProfileID == profileID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out, nil
}

func (r *fakePlanRepo) Update(_ context.Context, plan *domain.WorkoutPlan) error {
	if _, ok := r.plans[plan.ID]; !ok {
		return repository.ErrNotFound
	}
	r.plans[plan.ID] = *plan
	r.updates++
	return nil
}

func (r *fakePlanRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.plans[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.plans, id)
	return nil
}

// fakeAssistant returns canned patches and records what it was asked.
type fakeAssistant struct {
	patches         []patch.Patch
	err             error
	lastInstruction string
}

var _ assistant.Assistant = (*fakeAssistant)(nil)

func (a *fakeAssistant) ProposePlanEdits(_ context.Context, _ *domain.WorkoutPlan, instruction string) ([]patch.Patch, error) {
	a.lastInstruction = instruction
	return a.patches, a.err
}

func (a *fakeAssistant) Close() error { return nil }

// --- Shared fixtures ---

func ex(n int, name, bodyPart string, equipment ...string) domain.CatalogExercise {
	if len(equipment) == 0 {
		equipment = []string{domain.EquipmentBodyweight}
	}
	return domain.CatalogExercise{
		ID:         oid(n),
		Name:       name,
		BodyPart:   bodyPart,
		Equipment:  equipment,
		Difficulty: domain.DifficultyBeginner,
	}
}

// testCatalogRepo seeds enough variety to fill a full-body template and
// leave alternatives for substitution.
func testCatalogRepo() *fakeCatalogRepo {
	return newFakeCatalogRepo(
		ex(1, "Push-Up", "chest"),
		ex(2, "Bench Press", "chest", "barbell", "bench"),
		ex(3, "Dumbbell Fly", "chest", "dumbbell", "bench"),
		ex(4, "Incline Push-Up", "chest"),
		ex(5, "Back Squat", "legs", "barbell", "rack"),
		ex(6, "Lunge", "legs"),
		ex(7, "Bent-Over Row", "back", "barbell"),
		ex(8, "Inverted Row", "back"),
		ex(9, "Overhead Press", "shoulders", "barbell"),
		ex(10, "Pike Push-Up", "shoulders"),
		ex(11, "Plank", "core"),
		ex(12, "Hanging Knee Raise", "core", "pullup_bar"),
		ex(13, "Sit-Up", "core"),
		ex(14, "Glute Bridge", "glutes"),
		ex(15, "Biceps Curl", "arms", "dumbbell"),
	)
}

func testProfile() *domain.Profile {
	return &domain.Profile{
		ID:            oid(100),
		Name:          "Alex",
		Age:           30,
		Sex:           domain.SexMale,
		HeightCM:      180,
		WeightKG:      80,
		ActivityLevel: domain.ActivityModerate,
		Experience:    domain.ExperienceIntermediate,
		Goals: []domain.Goal{
			{ID: "goal-1", Type: domain.GoalFatLoss, Priority: 2},
			{ID: "goal-2", Type: domain.GoalStrength, Priority: 1},
		},
		Equipment: []string{"barbell", "dumbbell", "bench", "rack"},
		Schedule: map[string]bool{
			"monday":    true,
			"wednesday": true,
			"friday":    true,
		},
	}
}
