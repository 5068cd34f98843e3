package coach

import (
	"testing"

	"alcyxob/fitness-coach/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func chestSlot() SlotKey {
	return SlotKey{Week: 1, Day: "monday", Position: 0}
}

func TestSubstitute_NeverReturnsCurrentOrUsed(t *testing.T) {
	sub := NewSubstituter(NewSelector(testCatalog()))
	history := NewSubstitutionHistory(DefaultHistorySize)

	used := []primitive.ObjectID{oid(1), oid(3)} // push-up, dumbbell press
	got := sub.Substitute(SubstitutionRequest{
		ExerciseID: oid(2), // bench press
		Equipment:  []string{"barbell", "bench", "dumbbell", "dip belt"},
		Ceiling:    domain.DifficultyIntermediate,
		UsedInDay:  used,
		SlotKey:    chestSlot(),
	}, history)

	require.NotNil(t, got)
	assert.NotEqual(t, oid(2), got.ID)
	for _, id := range used {
		assert.NotEqual(t, id, got.ID)
	}
	assert.Equal(t, "chest", got.BodyPart)
}

func TestSubstitute_ConsecutiveCallsReturnDistinctExercises(t *testing.T) {
	// Five chest exercises in the catalog; three consecutive substitutions
	// on the same slot must return three distinct replacements.
	sub := NewSubstituter(NewSelector(testCatalog()))
	history := NewSubstitutionHistory(DefaultHistorySize)

	req := SubstitutionRequest{
		ExerciseID: oid(2),
		Equipment:  []string{"barbell", "bench", "dumbbell", "dip belt"},
		Ceiling:    domain.DifficultyIntermediate,
		SlotKey:    chestSlot(),
	}

	seen := make(map[primitive.ObjectID]bool)
	for i := 0; i < 3; i++ {
		got := sub.Substitute(req, history)
		require.NotNil(t, got, "call %d", i+1)
		assert.False(t, seen[got.ID], "call %d repeated %s", i+1, got.Name)
		seen[got.ID] = true
	}
}

func TestSubstitute_ReturnsNilWhenExhausted(t *testing.T) {
	catalog := []domain.CatalogExercise{
		ex(1, "Push-Up", "chest", domain.DifficultyBeginner, "bodyweight"),
		ex(2, "Dip", "chest", domain.DifficultyIntermediate, "bodyweight"),
	}
	sub := NewSubstituter(NewSelector(catalog))

	got := sub.Substitute(SubstitutionRequest{
		ExerciseID: oid(1),
		Ceiling:    domain.DifficultyIntermediate,
		UsedInDay:  []primitive.ObjectID{oid(2)},
		SlotKey:    chestSlot(),
	}, NewSubstitutionHistory(DefaultHistorySize))

	assert.Nil(t, got)
}

func TestSubstitute_UnknownExerciseReturnsNil(t *testing.T) {
	sub := NewSubstituter(NewSelector(testCatalog()))

	got := sub.Substitute(SubstitutionRequest{
		ExerciseID: oid(999),
		Ceiling:    domain.DifficultyIntermediate,
		SlotKey:    chestSlot(),
	}, NewSubstitutionHistory(DefaultHistorySize))

	assert.Nil(t, got)
}

func TestSubstitutionHistory_EvictsOldest(t *testing.T) {
	history := NewSubstitutionHistory(2)
	key := chestSlot()

	history.Record(key, oid(1))
	history.Record(key, oid(2))
	history.Record(key, oid(3))

	recent := history.Recent(key)
	require.Len(t, recent, 2)
	assert.Equal(t, oid(2), recent[0])
	assert.Equal(t, oid(3), recent[1])
}

func TestSubstitutionHistory_SlotsAreIndependent(t *testing.T) {
	history := NewSubstitutionHistory(DefaultHistorySize)
	history.Record(SlotKey{Week: 1, Day: "monday", Position: 0}, oid(1))

	other := history.Recent(SlotKey{Week: 2, Day: "monday", Position: 0})
	assert.Empty(t, other)
}

func TestSubstitute_HistoryAllowsEventualReuse(t *testing.T) {
	// With capacity 3 and five chest candidates, the exercise substituted
	// four calls ago falls out of history and becomes eligible again.
	sub := NewSubstituter(NewSelector(testCatalog()))
	history := NewSubstitutionHistory(3)

	req := SubstitutionRequest{
		ExerciseID: oid(1),
		Equipment:  []string{"barbell", "bench", "dumbbell", "dip belt"},
		Ceiling:    domain.DifficultyIntermediate,
		SlotKey:    chestSlot(),
	}

	var order []primitive.ObjectID
	for i := 0; i < 5; i++ {
		got := sub.Substitute(req, history)
		require.NotNil(t, got, "call %d", i+1)
		order = append(order, got.ID)
	}
	// Only four alternatives exist besides the current exercise, so a
	// repeat must appear by the fifth call.
	assert.Equal(t, order[0], order[4])
}
