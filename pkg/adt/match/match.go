package match

import "github.com/ib-77/adt/pkg/adt"

// Matcher holds the four lifecycle predicates and the payloads the
// operational and fatal branches unwrap.
type Matcher[E, D any] struct {
	initial     bool
	connecting  bool
	operational bool
	fatal       bool
	data        adt.Optional[D]
	err         adt.Optional[E]
}

// New builds a Matcher. The caller guarantees exactly one predicate is
// true; data must be present when operational is, err when fatal is.
func New[E, D any](initial, connecting, operational, fatal bool,
	data adt.Optional[D], err adt.Optional[E]) Matcher[E, D] {

	return Matcher[E, D]{
		initial:     initial,
		connecting:  connecting,
		operational: operational,
		fatal:       fatal,
		data:        data,
		err:         err,
	}
}

// Cases holds one branch per predicate. The operational and fatal
// branches receive their payloads unwrapped.
type Cases[E, D, R any] struct {
	OnInitial     func() R
	OnConnecting  func() R
	OnOperational func(D) R
	OnFatal       func(E) R
}

// dataPayload unwraps the operational payload, faulting if absent.
func (m Matcher[E, D]) dataPayload() D {
	d, ok := m.data.Unwrap()
	if !ok {
		adt.Violate("match: operational matcher built without data")
	}
	return d
}

// errPayload unwraps the fatal payload, faulting if absent.
func (m Matcher[E, D]) errPayload() E {
	e, ok := m.err.Unwrap()
	if !ok {
		adt.Violate("match: fatal matcher built without error")
	}
	return e
}

// When dispatches to the first branch whose predicate holds, checking
// in fixed order: initial, connecting, operational, fatal. Every
// branch is required. No predicate holding is an invariant violation.
func When[E, D, R any](m Matcher[E, D], c Cases[E, D, R]) R {
	switch {
	case m.initial:
		if c.OnInitial == nil {
			adt.Violate("match: When requires OnInitial")
		}
		return c.OnInitial()
	case m.connecting:
		if c.OnConnecting == nil {
			adt.Violate("match: When requires OnConnecting")
		}
		return c.OnConnecting()
	case m.operational:
		if c.OnOperational == nil {
			adt.Violate("match: When requires OnOperational")
		}
		return c.OnOperational(m.dataPayload())
	case m.fatal:
		if c.OnFatal == nil {
			adt.Violate("match: When requires OnFatal")
		}
		return c.OnFatal(m.errPayload())
	}
	adt.Violate("match: no predicate holds; matcher built inconsistently")
	panic("unreachable")
}

// WhenOr dispatches like When but branches are optional; an absent
// matching branch falls back. The all-false matcher still faults.
func WhenOr[E, D, R any](m Matcher[E, D], c Cases[E, D, R], fallback func() R) R {
	if fallback == nil {
		adt.Violate("match: WhenOr requires a fallback handler")
	}
	switch {
	case m.initial:
		if c.OnInitial != nil {
			return c.OnInitial()
		}
	case m.connecting:
		if c.OnConnecting != nil {
			return c.OnConnecting()
		}
	case m.operational:
		if c.OnOperational != nil {
			return c.OnOperational(m.dataPayload())
		}
	case m.fatal:
		if c.OnFatal != nil {
			return c.OnFatal(m.errPayload())
		}
	default:
		adt.Violate("match: no predicate holds; matcher built inconsistently")
	}
	return fallback()
}

// WhenOrNull dispatches like When but branches are optional; an absent
// matching branch yields Nothing. The all-false matcher still faults.
func WhenOrNull[E, D, R any](m Matcher[E, D], c Cases[E, D, R]) adt.Optional[R] {
	switch {
	case m.initial:
		if c.OnInitial != nil {
			return adt.Just(c.OnInitial())
		}
	case m.connecting:
		if c.OnConnecting != nil {
			return adt.Just(c.OnConnecting())
		}
	case m.operational:
		if c.OnOperational != nil {
			return adt.Just(c.OnOperational(m.dataPayload()))
		}
	case m.fatal:
		if c.OnFatal != nil {
			return adt.Just(c.OnFatal(m.errPayload()))
		}
	default:
		adt.Violate("match: no predicate holds; matcher built inconsistently")
	}
	return adt.Nothing[R]()
}
