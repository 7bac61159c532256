// Package sess provides SessionState[E, D]: a six-variant model of a
// long-lived connection lifecycle: initial, connecting, idle,
// updating, error, fatal error. Error is recoverable and retains the
// last-known data; FatalError is terminal and retains none.
//
// Highlights:
// - Initial/Connecting/Idle/Updating/Error/FatalError: construct a State
// - IsLoading: derived predicate, true on Connecting and Updating
// - Data/Err: optional payload accessors
// - Map/MapError: transform data or error payloads in place
// - FlatMap: bind on Idle; every other variant short-circuits
// - Match/MatchOr/MatchOrNull and When/WhenOr/WhenOrNull: dispatch
//
// Callers holding the lifecycle as externally computed predicates
// rather than a State use package match instead.
package sess
