package service

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrProfileInvalid   = errors.New("profile validation failed")
	ErrUnknownGoalType  = errors.New("unknown goal type")
	ErrUnknownEnumValue = errors.New("unknown activity or experience level")
)

var validGoalTypes = map[domain.GoalType]bool{
	domain.GoalStrength:       true,
	domain.GoalHypertrophy:    true,
	domain.GoalFatLoss:        true,
	domain.GoalEndurance:      true,
	domain.GoalGeneralFitness: true,
}

var validActivityLevels = map[domain.ActivityLevel]bool{
	domain.ActivitySedentary:  true,
	domain.ActivityLight:      true,
	domain.ActivityModerate:   true,
	domain.ActivityActive:     true,
	domain.ActivityVeryActive: true,
}

var validExperienceLevels = map[domain.ExperienceLevel]bool{
	domain.ExperienceBeginner:     true,
	domain.ExperienceIntermediate: true,
	domain.ExperienceAdvanced:     true,
}

// --- Service Interface ---
type ProfileService interface {
	CreateProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	GetProfileByID(ctx context.Context, id primitive.ObjectID) (*domain.Profile, error)
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	UpdateProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	DeleteProfile(ctx context.Context, id primitive.ObjectID) error
}

// --- Service Implementation ---

// profileService implements the ProfileService interface.
type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

// CreateProfile validates and stores a new profile. Goals arriving without
// an id get one minted here so they are addressable later.
func (s *profileService) CreateProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	mintGoalIDs(profile)

	profileID, err := s.profileRepo.Create(ctx, profile)
	if err != nil {
		return nil, err
	}
	return s.profileRepo.GetByID(ctx, profileID)
}

// GetProfileByID retrieves a single profile.
func (s *profileService) GetProfileByID(ctx context.Context, id primitive.ObjectID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// ListProfiles retrieves all stored profiles.
func (s *profileService) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	return s.profileRepo.List(ctx)
}

// UpdateProfile validates and persists changes to an existing profile.
func (s *profileService) UpdateProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if profile.ID == primitive.NilObjectID {
		return nil, errors.New("profile ID is required")
	}
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	mintGoalIDs(profile)

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return s.profileRepo.GetByID(ctx, profile.ID)
}

// DeleteProfile removes a profile.
func (s *profileService) DeleteProfile(ctx context.Context, id primitive.ObjectID) error {
	err := s.profileRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}
	return nil
}

// validateProfile checks the fields the engine relies on. Biometric
// completeness is deliberately not enforced here; the analyzer reports the
// exact missing field when targets are actually requested.
func validateProfile(profile *domain.Profile) error {
	if profile.Name == "" {
		return ErrProfileInvalid
	}
	if profile.ActivityLevel != "" && !validActivityLevels[profile.ActivityLevel] {
		return ErrUnknownEnumValue
	}
	if profile.Experience != "" && !validExperienceLevels[profile.Experience] {
		return ErrUnknownEnumValue
	}
	for _, goal := range profile.Goals {
		if !validGoalTypes[goal.Type] {
			return ErrUnknownGoalType
		}
		if goal.Priority <= 0 {
			return ErrProfileInvalid
		}
	}
	for day := range profile.Schedule {
		if !isWeekday(day) {
			return ErrProfileInvalid
		}
	}
	return nil
}

func isWeekday(day string) bool {
	for _, d := range domain.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

func mintGoalIDs(profile *domain.Profile) {
	for i := range profile.Goals {
		if profile.Goals[i].ID == "" {
			profile.Goals[i].ID = uuid.NewString()
		}
	}
}
