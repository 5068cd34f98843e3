package coach

import (
	"fmt"
	"time"

	"alcyxob/fitness-coach/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// oid builds a deterministic ObjectID from a small integer so tests can
// reference catalog entries by number.
func oid(n int) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(fmt.Sprintf("%024x", n))
	if err != nil {
		panic(err)
	}
	return id
}

func ex(n int, name, bodyPart string, difficulty domain.Difficulty, equipment ...string) domain.CatalogExercise {
	return domain.CatalogExercise{
		ID:         oid(n),
		Name:       name,
		BodyPart:   bodyPart,
		Difficulty: difficulty,
		Equipment:  equipment,
	}
}

// testCatalog covers every body part the split templates ask for, with a mix
// of difficulties and equipment. Chest has five entries so substitution
// tests have room to rotate.
func testCatalog() []domain.CatalogExercise {
	return []domain.CatalogExercise{
		ex(1, "Push-Up", "chest", domain.DifficultyBeginner, "bodyweight"),
		ex(2, "Bench Press", "chest", domain.DifficultyIntermediate, "barbell", "bench"),
		ex(3, "Dumbbell Press", "chest", domain.DifficultyIntermediate, "dumbbell", "bench"),
		ex(4, "Dip", "chest", domain.DifficultyIntermediate, "bodyweight"),
		ex(5, "Weighted Dip", "chest", domain.DifficultyAdvanced, "dip belt"),

		ex(10, "Bodyweight Squat", "legs", domain.DifficultyBeginner, "bodyweight"),
		ex(11, "Back Squat", "legs", domain.DifficultyIntermediate, "barbell", "rack"),
		ex(12, "Pistol Squat", "legs", domain.DifficultyAdvanced, "bodyweight"),
		ex(13, "Romanian Deadlift", "legs", domain.DifficultyIntermediate, "barbell"),

		ex(20, "Inverted Row", "back", domain.DifficultyBeginner, "bodyweight"),
		ex(21, "Barbell Row", "back", domain.DifficultyIntermediate, "barbell"),
		ex(22, "Pull-Up", "back", domain.DifficultyIntermediate, "bodyweight"),

		ex(30, "Pike Push-Up", "shoulders", domain.DifficultyBeginner, "bodyweight"),
		ex(31, "Overhead Press", "shoulders", domain.DifficultyIntermediate, "barbell"),

		ex(40, "Plank", "core", domain.DifficultyBeginner, "bodyweight"),
		ex(41, "Hanging Leg Raise", "core", domain.DifficultyIntermediate, "bodyweight"),

		ex(50, "Biceps Curl", "arms", domain.DifficultyBeginner, "dumbbell"),
		ex(51, "Chin-Up", "arms", domain.DifficultyIntermediate, "bodyweight"),

		ex(60, "Glute Bridge", "glutes", domain.DifficultyBeginner, "bodyweight"),
		ex(61, "Hip Thrust", "glutes", domain.DifficultyIntermediate, "barbell", "bench"),
	}
}

// testProfile mirrors the reference scenario: 30-year-old male, 180 cm,
// 80 kg, moderate activity, fat-loss goal, training Mon/Wed/Fri.
func testProfile() *domain.Profile {
	return &domain.Profile{
		ID:            oid(100),
		Name:          "Test User",
		Age:           30,
		Sex:           domain.SexMale,
		HeightCM:      180,
		WeightKG:      80,
		ActivityLevel: domain.ActivityModerate,
		Experience:    domain.ExperienceIntermediate,
		Goals: []domain.Goal{
			{ID: "goal-1", Type: domain.GoalFatLoss, Priority: 1},
		},
		Equipment: []string{"barbell", "dumbbell", "bench", "rack"},
		Schedule: map[string]bool{
			"monday":    true,
			"wednesday": true,
			"friday":    true,
		},
	}
}

func fixedClock() func() time.Time {
	t := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}
