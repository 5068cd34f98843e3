package repository

import (
	"alcyxob/fitness-coach/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ProfileRepository defines the interface for interacting with profile data.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ExerciseCatalogClient is the read-only query surface the coaching engine
// consumes. Custom user-added exercises come back through the same methods,
// indistinguishable from seeded entries.
type ExerciseCatalogClient interface {
	GetByBodyPart(ctx context.Context, bodyPart string) ([]domain.CatalogExercise, error)
	GetByEquipment(ctx context.Context, equipment string) ([]domain.CatalogExercise, error)
	Search(ctx context.Context, query string) ([]domain.CatalogExercise, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CatalogExercise, error)
}

// ExerciseCatalogRepository extends the query surface with the write side
// used to manage custom exercises.
type ExerciseCatalogRepository interface {
	ExerciseCatalogClient
	Create(ctx context.Context, exercise *domain.CatalogExercise) (primitive.ObjectID, error)
	Update(ctx context.Context, exercise *domain.CatalogExercise) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// WorkoutPlanRepository defines the interface for persisting workout plans.
// Plans are stored whole (weeks embedded), so save/update operate on the
// full document.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error)
	GetByProfileID(ctx context.Context, profileID primitive.ObjectID) ([]domain.WorkoutPlan, error)
	Update(ctx context.Context, plan *domain.WorkoutPlan) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
