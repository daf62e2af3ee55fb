package santa

import "github.com/arloliu/santa/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern avoids import cycles by allowing internal packages to depend
// on `types` without depending on the root `santa` package, while still
// providing a convenient `santa.Participant`, `santa.Logger`, etc. for users.
type (
	Participant       = types.Participant
	Pair              = types.Pair
	Assignment        = types.Assignment
	Constraint        = types.Constraint
	ConstraintKind    = types.ConstraintKind
	Snapshot          = types.Snapshot
	Roster            = types.Roster
	PairExclusion     = types.PairExclusion
	DirectedExclusion = types.DirectedExclusion
	Tracer            = types.Tracer
	ResolutionError   = types.ResolutionError
)

// Re-export interfaces from the internal types package for convenience.
type (
	AssignmentStrategy = types.AssignmentStrategy
	RosterSource       = types.RosterSource
	Random             = types.Random
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
)

// Re-export ConstraintKind constants from the internal types package.
const (
	ConstraintMutual   = types.ConstraintMutual
	ConstraintDirected = types.ConstraintDirected
)
