// Package adt provides small closed algebraic data types for modelling
// optionality, disjunction and the lifecycle of asynchronous state.
//
// The root package holds Optional[A], the shared currency of the payload
// accessors in the subpackages, plus the invariant-violation fault raised
// when dispatch is driven with inconsistent or missing handlers.
package adt

import "fmt"

// Optional represents presence or absence of a value.
// The zero value is Nothing.
type Optional[A any] struct {
	value   A
	present bool
}

// Just constructs an Optional holding a value.
func Just[A any](value A) Optional[A] {
	return Optional[A]{value: value, present: true}
}

// Nothing constructs an empty Optional.
func Nothing[A any]() Optional[A] {
	return Optional[A]{}
}

// IsJust reports whether the optional holds a value.
func (o Optional[A]) IsJust() bool {
	return o.present
}

// IsNothing reports whether the optional is empty.
func (o Optional[A]) IsNothing() bool {
	return !o.present
}

// Unwrap returns the value and whether it was present.
func (o Optional[A]) Unwrap() (A, bool) {
	return o.value, o.present
}

// Or returns the value if present, otherwise fallback.
func (o Optional[A]) Or(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}

func (o Optional[A]) String() string {
	if o.present {
		return fmt.Sprintf("Optional.just(value: %v)", o.value)
	}
	return "Optional.nothing()"
}

// Map applies f to the value if present.
func Map[A, B any](o Optional[A], f func(A) B) Optional[B] {
	if o.present {
		return Just(f(o.value))
	}
	return Nothing[B]()
}

// FlatMap binds f over a present value; Nothing short-circuits.
func FlatMap[A, B any](o Optional[A], f func(A) Optional[B]) Optional[B] {
	if o.present {
		return f(o.value)
	}
	return Nothing[B]()
}

// Handlers dispatches on the full Optional instance, one handler per
// variant. Both handlers are required by Match; MatchOr and MatchOrNull
// treat nil handlers as absent.
type Handlers[A, R any] struct {
	OnJust    func(Optional[A]) R
	OnNothing func(Optional[A]) R
}

// Cases dispatches on unwrapped payloads instead of the wrapper.
type Cases[A, R any] struct {
	OnJust    func(A) R
	OnNothing func() R
}

// Match invokes the handler matching the variant. A nil required
// handler is an invariant violation.
func Match[A, R any](o Optional[A], h Handlers[A, R]) R {
	if o.present {
		if h.OnJust == nil {
			Violate("adt: Match on %v requires OnJust", o)
		}
		return h.OnJust(o)
	}
	if h.OnNothing == nil {
		Violate("adt: Match on %v requires OnNothing", o)
	}
	return h.OnNothing(o)
}

// MatchOr invokes the matching handler, or fallback when it is nil.
func MatchOr[A, R any](o Optional[A], h Handlers[A, R], fallback func() R) R {
	if fallback == nil {
		Violate("adt: MatchOr requires a fallback handler")
	}
	if o.present && h.OnJust != nil {
		return h.OnJust(o)
	}
	if !o.present && h.OnNothing != nil {
		return h.OnNothing(o)
	}
	return fallback()
}

// MatchOrNull invokes the matching handler, or returns Nothing when it
// is nil.
func MatchOrNull[A, R any](o Optional[A], h Handlers[A, R]) Optional[R] {
	if o.present && h.OnJust != nil {
		return Just(h.OnJust(o))
	}
	if !o.present && h.OnNothing != nil {
		return Just(h.OnNothing(o))
	}
	return Nothing[R]()
}

// When is Match over unwrapped payloads.
func When[A, R any](o Optional[A], c Cases[A, R]) R {
	if o.present {
		if c.OnJust == nil {
			Violate("adt: When on %v requires OnJust", o)
		}
		return c.OnJust(o.value)
	}
	if c.OnNothing == nil {
		Violate("adt: When on %v requires OnNothing", o)
	}
	return c.OnNothing()
}

// WhenOr is MatchOr over unwrapped payloads.
func WhenOr[A, R any](o Optional[A], c Cases[A, R], fallback func() R) R {
	if fallback == nil {
		Violate("adt: WhenOr requires a fallback handler")
	}
	if o.present && c.OnJust != nil {
		return c.OnJust(o.value)
	}
	if !o.present && c.OnNothing != nil {
		return c.OnNothing()
	}
	return fallback()
}

// WhenOrNull is MatchOrNull over unwrapped payloads.
func WhenOrNull[A, R any](o Optional[A], c Cases[A, R]) Optional[R] {
	if o.present && c.OnJust != nil {
		return Just(c.OnJust(o.value))
	}
	if !o.present && c.OnNothing != nil {
		return Just(c.OnNothing())
	}
	return Nothing[R]()
}
