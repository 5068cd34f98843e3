package coach

import (
	"testing"

	"alcyxob/fitness-coach/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSelect_PrefersCeilingDifficulty(t *testing.T) {
	selector := NewSelector(testCatalog())

	got := selector.Select(SelectionConstraints{
		BodyPart:  "chest",
		Equipment: EquipmentSet([]string{"barbell", "bench", "dumbbell"}),
		Ceiling:   domain.DifficultyIntermediate,
	})

	require.NotNil(t, got)
	// Three intermediate chest candidates; lowest id wins the tie-break.
	assert.Equal(t, "Bench Press", got.Name)
}

func TestSelect_RelaxesDifficultyDownward(t *testing.T) {
	selector := NewSelector(testCatalog())

	// No advanced chest exercise is doable with bodyweight only, and the
	// intermediate dip is excluded, so the search walks down to beginner.
	got := selector.Select(SelectionConstraints{
		BodyPart:   "chest",
		Equipment:  EquipmentSet(nil),
		Ceiling:    domain.DifficultyAdvanced,
		ExcludeIDs: map[primitive.ObjectID]bool{oid(4): true},
	})

	require.NotNil(t, got)
	assert.Equal(t, "Push-Up", got.Name)
}

func TestSelect_RelaxesDifficultyUpward(t *testing.T) {
	catalog := []domain.CatalogExercise{
		ex(1, "Pistol Squat", "legs", domain.DifficultyAdvanced, "bodyweight"),
	}
	selector := NewSelector(catalog)

	got := selector.Select(SelectionConstraints{
		BodyPart:  "legs",
		Equipment: EquipmentSet(nil),
		Ceiling:   domain.DifficultyBeginner,
	})

	require.NotNil(t, got)
	assert.Equal(t, "Pistol Squat", got.Name)
}

func TestSelect_NeverRelaxesEquipment(t *testing.T) {
	// A body part whose only exercises need gear the user lacks must yield
	// nil, not an unusable exercise.
	catalog := []domain.CatalogExercise{
		ex(1, "Lat Pulldown", "back", domain.DifficultyBeginner, "cable machine"),
		ex(2, "Barbell Row", "back", domain.DifficultyIntermediate, "barbell"),
	}
	selector := NewSelector(catalog)

	got := selector.Select(SelectionConstraints{
		BodyPart:  "back",
		Equipment: EquipmentSet(nil), // bodyweight only
		Ceiling:   domain.DifficultyAdvanced,
	})

	assert.Nil(t, got)
}

func TestSelect_BodyweightAlwaysAvailable(t *testing.T) {
	selector := NewSelector(testCatalog())

	got := selector.Select(SelectionConstraints{
		BodyPart:  "core",
		Equipment: EquipmentSet(nil),
		Ceiling:   domain.DifficultyBeginner,
	})

	require.NotNil(t, got)
	assert.Equal(t, "Plank", got.Name)
}

func TestSelect_HonorsExclusions(t *testing.T) {
	selector := NewSelector(testCatalog())
	equipment := EquipmentSet([]string{"barbell", "bench", "dumbbell"})

	first := selector.Select(SelectionConstraints{
		BodyPart: "chest", Equipment: equipment, Ceiling: domain.DifficultyIntermediate,
	})
	require.NotNil(t, first)

	second := selector.Select(SelectionConstraints{
		BodyPart:   "chest",
		Equipment:  equipment,
		Ceiling:    domain.DifficultyIntermediate,
		ExcludeIDs: map[primitive.ObjectID]bool{first.ID: true},
	})
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSelect_DeterministicAcrossSnapshotOrder(t *testing.T) {
	catalog := testCatalog()
	reversed := make([]domain.CatalogExercise, len(catalog))
	for i, e := range catalog {
		reversed[len(catalog)-1-i] = e
	}

	constraints := SelectionConstraints{
		BodyPart:  "legs",
		Equipment: EquipmentSet([]string{"barbell", "rack"}),
		Ceiling:   domain.DifficultyIntermediate,
	}

	a := NewSelector(catalog).Select(constraints)
	b := NewSelector(reversed).Select(constraints)

	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, a.ID, b.ID)
}

func TestSelect_ExhaustedBodyPartReturnsNil(t *testing.T) {
	selector := NewSelector(testCatalog())

	got := selector.Select(SelectionConstraints{
		BodyPart:  "neck",
		Equipment: EquipmentSet(nil),
		Ceiling:   domain.DifficultyAdvanced,
	})

	assert.Nil(t, got)
}
