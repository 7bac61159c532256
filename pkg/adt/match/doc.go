// Package match provides Matcher[E, D]: predicate-based dispatch for
// callers that hold a session lifecycle as four externally computed
// booleans (initial, connecting, operational, fatal) plus optional
// data and error, rather than as a sess.State instance.
//
// Highlights:
// - New: build a Matcher from the four predicates and payloads
// - When: total dispatch, checks predicates in fixed order
// - WhenOr: partial dispatch with a required fallback
// - WhenOrNull: partial dispatch returning an absent value
//
// Exactly one predicate must be true. When none is, dispatch raises
// adt.InvariantViolation: the booleans were built inconsistently by
// the caller, which is a programmer error, not a domain error.
package match
