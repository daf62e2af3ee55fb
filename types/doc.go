// Package types provides core type definitions and interfaces for the santa library.
//
// This package contains shared types that are used across multiple packages in the
// santa library. By keeping these types in a separate package, we avoid import cycles
// between the main santa package and its internal implementations.
//
// Key types:
//   - Participant: Opaque group member identifier
//   - Constraint: Mutual or directed exclusion
//   - Snapshot: Immutable group view handed to strategies
//   - Assignment: Resolved giver → recipient pairs
//   - Roster: Serializable group description
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
//   - Tracer: Draw-by-draw decision sink
package types
