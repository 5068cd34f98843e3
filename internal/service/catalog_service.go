package service

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrValidationFailed = errors.New("exercise validation failed")
)

var validDifficulties = map[domain.Difficulty]bool{
	domain.DifficultyBeginner:     true,
	domain.DifficultyIntermediate: true,
	domain.DifficultyAdvanced:     true,
}

// --- Service Interface ---
type CatalogService interface {
	CreateCustomExercise(ctx context.Context, exercise *domain.CatalogExercise) (*domain.CatalogExercise, error)
	GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.CatalogExercise, error)
	GetByBodyPart(ctx context.Context, bodyPart string) ([]domain.CatalogExercise, error)
	GetByEquipment(ctx context.Context, equipment string) ([]domain.CatalogExercise, error)
	Search(ctx context.Context, query string) ([]domain.CatalogExercise, error)
	UpdateExercise(ctx context.Context, exercise *domain.CatalogExercise) (*domain.CatalogExercise, error)
	DeleteExercise(ctx context.Context, exerciseID primitive.ObjectID) error
}

// --- Service Implementation ---

// catalogService implements the CatalogService interface.
type catalogService struct {
	catalogRepo repository.ExerciseCatalogRepository
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(catalogRepo repository.ExerciseCatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

// CreateCustomExercise stores a user-added exercise. Once stored it is
// indistinguishable from seeded catalog entries.
func (s *catalogService) CreateCustomExercise(ctx context.Context, exercise *domain.CatalogExercise) (*domain.CatalogExercise, error) {
	if exercise.Name == "" || exercise.BodyPart == "" {
		return nil, ErrValidationFailed
	}
	if exercise.Difficulty == "" {
		exercise.Difficulty = domain.DifficultyBeginner
	}
	if !validDifficulties[exercise.Difficulty] {
		return nil, ErrValidationFailed
	}
	exercise.Custom = true

	exerciseID, err := s.catalogRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}
	return s.catalogRepo.GetByID(ctx, exerciseID)
}

// GetExerciseByID retrieves a single catalog exercise.
func (s *catalogService) GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.CatalogExercise, error) {
	exercise, err := s.catalogRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// GetByBodyPart lists exercises targeting a body part.
func (s *catalogService) GetByBodyPart(ctx context.Context, bodyPart string) ([]domain.CatalogExercise, error) {
	if bodyPart == "" {
		return nil, ErrValidationFailed
	}
	return s.catalogRepo.GetByBodyPart(ctx, bodyPart)
}

// GetByEquipment lists exercises performable with a piece of equipment.
func (s *catalogService) GetByEquipment(ctx context.Context, equipment string) ([]domain.CatalogExercise, error) {
	if equipment == "" {
		return nil, ErrValidationFailed
	}
	return s.catalogRepo.GetByEquipment(ctx, equipment)
}

// Search runs a free-text query over the catalog.
func (s *catalogService) Search(ctx context.Context, query string) ([]domain.CatalogExercise, error) {
	if query == "" {
		return nil, ErrValidationFailed
	}
	return s.catalogRepo.Search(ctx, query)
}

// UpdateExercise modifies an existing catalog exercise.
func (s *catalogService) UpdateExercise(ctx context.Context, exercise *domain.CatalogExercise) (*domain.CatalogExercise, error) {
	if exercise.ID == primitive.NilObjectID || exercise.Name == "" {
		return nil, ErrValidationFailed
	}
	if exercise.Difficulty != "" && !validDifficulties[exercise.Difficulty] {
		return nil, ErrValidationFailed
	}

	if err := s.catalogRepo.Update(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return s.catalogRepo.GetByID(ctx, exercise.ID)
}

// DeleteExercise removes an exercise from the catalog.
func (s *catalogService) DeleteExercise(ctx context.Context, exerciseID primitive.ObjectID) error {
	err := s.catalogRepo.Delete(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}
