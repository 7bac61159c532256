// Package keep provides PersistentState[E, D]: a three-variant model
// for data that exists from the start and is refreshed over time:
// loading, idle, error. Every variant carries the last-known data
// payload, error included; that is what separates it from op.State,
// whose Error carries no data.
//
// Highlights:
// - Loading/Idle/Error: construct a State (data required everywhere)
// - Data: total accessor; Err: optional accessor
// - Map/MapError: transform data (all variants) or error in place
// - FlatMap: bind on Idle; Loading and Error short-circuit
// - Match/MatchOr/MatchOrNull and When/WhenOr/WhenOrNull: dispatch
package keep
