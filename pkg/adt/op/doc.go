// Package op provides OperationState[E, D]: a four-variant model of a
// one-shot fallible operation: initial, loading, success with data,
// error with a domain error.
//
// Highlights:
// - Initial/Loading/Success/Error: construct a State
// - Data/Err: optional payload accessors
// - Map/MapError/FlatMap: payload transforms; Success is the
//   continuable variant, everything else short-circuits
// - Match/MatchOr/MatchOrNull and When/WhenOr/WhenOrNull: dispatch
// - Produce: turn a fallible body into the ordered
//   Loading -> (Success | Error) snapshot sequence
//
// Initial is a pre-start sentinel for callers that have not invoked
// the operation yet; Produce never emits it.
package op
