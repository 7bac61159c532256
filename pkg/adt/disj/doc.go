// Package disj provides Disjunction[L, R]: exactly one of two values,
// commonly a recovered-error / success split with the error on the
// Left and the data on the Right.
//
// Highlights:
// - Left/Right: construct a Disjunction
// - LeftValue/RightValue: optional payload accessors
// - Map/MapError: transform the Right or Left payload in place
// - FlatMap: bind on Right, short-circuit on Left
// - Match/MatchOr/MatchOrNull: dispatch on the full instance
// - When/WhenOr/WhenOrNull: dispatch on unwrapped payloads
package disj
