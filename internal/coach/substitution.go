package coach

import (
	"fmt"

	"alcyxob/fitness-coach/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultHistorySize bounds how many past substitutions are remembered per
// slot.
const DefaultHistorySize = 3

// SlotKey addresses a single exercise position within a plan for
// substitution purposes.
type SlotKey struct {
	Week     int
	Day      string
	Position int
}

func (k SlotKey) String() string {
	return fmt.Sprintf("w%d:%s:%d", k.Week, k.Day, k.Position)
}

// SubstitutionHistory remembers the last N exercises substituted into each
// slot so repeated substitution on the same slot keeps offering something
// new. Owned by the editing session and passed into the engine by the
// caller; it lives only as long as the plan is open for editing.
//
// Not safe for concurrent use; callers editing the same plan from multiple
// surfaces must serialize.
type SubstitutionHistory struct {
	capacity int
	entries  map[string][]primitive.ObjectID
}

// NewSubstitutionHistory creates a history with the given per-slot capacity.
// capacity <= 0 falls back to DefaultHistorySize.
func NewSubstitutionHistory(capacity int) *SubstitutionHistory {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &SubstitutionHistory{
		capacity: capacity,
		entries:  make(map[string][]primitive.ObjectID),
	}
}

// Recent returns the remembered exercise ids for a slot, oldest first.
func (h *SubstitutionHistory) Recent(key SlotKey) []primitive.ObjectID {
	return h.entries[key.String()]
}

// Record appends an id to a slot's history, evicting the oldest entry once
// capacity is exceeded.
func (h *SubstitutionHistory) Record(key SlotKey, id primitive.ObjectID) {
	k := key.String()
	ids := append(h.entries[k], id)
	if len(ids) > h.capacity {
		ids = ids[len(ids)-h.capacity:]
	}
	h.entries[k] = ids
}

// SubstitutionRequest carries everything needed to replace one exercise slot.
type SubstitutionRequest struct {
	ExerciseID primitive.ObjectID   // the exercise being replaced
	Equipment  []string             // user's available equipment
	Ceiling    domain.Difficulty    // from the user's experience level
	UsedInDay  []primitive.ObjectID // every exercise already in the workout
	SlotKey    SlotKey
}

// Substituter replaces a single exercise in an existing plan, reusing the
// selector's constraint logic and consulting per-slot history to avoid
// bouncing between the same few alternatives.
type Substituter struct {
	selector *Selector
}

// NewSubstituter creates a Substituter over the same snapshot the plan was
// generated from.
func NewSubstituter(selector *Selector) *Substituter {
	return &Substituter{selector: selector}
}

// Substitute returns a replacement for the requested slot, or nil when no
// valid candidate exists. A nil result is a routine outcome ("no better
// option"), never an error: the caller decides how to present it.
//
// The replacement is guaranteed to differ from the current exercise, from
// everything already in the day's workout, and from the slot's recent
// substitutions. On success the choice is recorded into history.
func (s *Substituter) Substitute(req SubstitutionRequest, history *SubstitutionHistory) *domain.CatalogExercise {
	current := s.selector.ByID(req.ExerciseID)
	if current == nil {
		return nil
	}

	exclude := make(map[primitive.ObjectID]bool, len(req.UsedInDay)+1+DefaultHistorySize)
	exclude[req.ExerciseID] = true
	for _, id := range req.UsedInDay {
		exclude[id] = true
	}
	if history != nil {
		for _, id := range history.Recent(req.SlotKey) {
			exclude[id] = true
		}
	}

	replacement := s.selector.Select(SelectionConstraints{
		BodyPart:   current.BodyPart,
		Equipment:  EquipmentSet(req.Equipment),
		Ceiling:    req.Ceiling,
		ExcludeIDs: exclude,
	})
	if replacement == nil {
		return nil
	}
	if history != nil {
		history.Record(req.SlotKey, replacement.ID)
	}
	return replacement
}
