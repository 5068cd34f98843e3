package coach

import (
	"sort"
	"strings"

	"alcyxob/fitness-coach/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SelectionConstraints narrow the catalog snapshot down to one candidate.
type SelectionConstraints struct {
	BodyPart   string
	Equipment  map[string]bool // available equipment; bodyweight is implicit
	Ceiling    domain.Difficulty
	ExcludeIDs map[primitive.ObjectID]bool
}

// Selector deterministically picks a single exercise from an in-memory
// catalog snapshot. The snapshot is sorted by id hex once at construction so
// selection order never depends on how the catalog was materialized.
//
// Tie-break policy: among all candidates surviving the filters, the one with
// the lowest catalog id (hex order) wins. Stable and documented so that plan
// generation is reproducible for a given snapshot.
type Selector struct {
	snapshot []domain.CatalogExercise
}

// NewSelector creates a Selector over a catalog snapshot. The input slice is
// copied; the caller may keep mutating its own copy.
func NewSelector(snapshot []domain.CatalogExercise) *Selector {
	s := make([]domain.CatalogExercise, len(snapshot))
	copy(s, snapshot)
	sort.Slice(s, func(i, j int) bool {
		return s[i].ID.Hex() < s[j].ID.Hex()
	})
	return &Selector{snapshot: s}
}

// Size returns the number of exercises in the snapshot.
func (s *Selector) Size() int {
	return len(s.snapshot)
}

// ByID returns the snapshot entry with the given id, or nil.
func (s *Selector) ByID(id primitive.ObjectID) *domain.CatalogExercise {
	for i := range s.snapshot {
		if s.snapshot[i].ID == id {
			return &s.snapshot[i]
		}
	}
	return nil
}

// Select returns the first candidate matching the constraints, or nil when
// the catalog is exhausted for that body part / equipment combination.
//
// Difficulty handling: candidates at the ceiling are preferred. When none
// exist, the ceiling is relaxed one level downward at a time, then upward.
// Equipment is never relaxed; an exercise requiring gear the user lacks is
// never returned.
func (s *Selector) Select(c SelectionConstraints) *domain.CatalogExercise {
	ceiling := domain.DifficultyRank(c.Ceiling)

	// Probe order: ceiling, then easier levels, then harder.
	levels := []int{ceiling}
	for r := ceiling - 1; r >= 0; r-- {
		levels = append(levels, r)
	}
	for r := ceiling + 1; r <= domain.DifficultyRank(domain.DifficultyAdvanced); r++ {
		levels = append(levels, r)
	}

	for _, level := range levels {
		if match := s.firstAtLevel(c, level); match != nil {
			return match
		}
	}
	return nil
}

// firstAtLevel scans the sorted snapshot for the first candidate at exactly
// the given difficulty rank.
func (s *Selector) firstAtLevel(c SelectionConstraints, level int) *domain.CatalogExercise {
	for i := range s.snapshot {
		ex := &s.snapshot[i]
		if domain.DifficultyRank(ex.Difficulty) != level {
			continue
		}
		if !strings.EqualFold(ex.BodyPart, c.BodyPart) {
			continue
		}
		if c.ExcludeIDs[ex.ID] {
			continue
		}
		if !ex.PerformableWith(c.Equipment) {
			continue
		}
		return ex
	}
	return nil
}

// EquipmentSet converts a profile equipment list into the lookup form the
// selector uses.
func EquipmentSet(equipment []string) map[string]bool {
	set := make(map[string]bool, len(equipment)+1)
	for _, eq := range equipment {
		set[strings.ToLower(eq)] = true
	}
	set[domain.EquipmentBodyweight] = true
	return set
}
