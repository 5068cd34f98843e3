// Package assistant integrates an optional natural-language model that can
// propose plan edits. Proposals come back as patch payloads and are schema-
// validated before anything touches a plan; the coaching engine never
// depends on this package.
package assistant

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/patch"
	"context"
)

// Assistant proposes plan edits from a free-text instruction. Implementations
// are explicitly constructed with their dependencies injected; there is no
// package-level client, so multiple independent instances can coexist and
// lifecycle stays with the caller.
type Assistant interface {
	// ProposePlanEdits returns validated patches the user may apply to the
	// plan. The patches are proposals only; nothing is applied here.
	ProposePlanEdits(ctx context.Context, plan *domain.WorkoutPlan, instruction string) ([]patch.Patch, error)
	// Close releases any resources held by the assistant.
	Close() error
}
