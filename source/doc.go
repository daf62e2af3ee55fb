// Package source provides built-in roster source implementations.
//
// Roster sources describe the participants of a group and the exclusions
// between them. The package includes:
//
//   - Static: In-memory roster, replaceable at runtime
//   - File: YAML roster file, decoded strictly
//
// Custom sources can be implemented by satisfying the types.RosterSource interface.
package source
