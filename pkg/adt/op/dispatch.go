package op

import "github.com/ib-77/adt/pkg/adt"

// Handlers dispatches on the full State instance, one handler per
// variant. All four are required by Match; MatchOr and MatchOrNull
// treat nil handlers as absent.
type Handlers[E, D, R any] struct {
	OnInitial func(State[E, D]) R
	OnLoading func(State[E, D]) R
	OnSuccess func(State[E, D]) R
	OnError   func(State[E, D]) R
}

// Cases dispatches on unwrapped payloads instead of the wrapper.
type Cases[E, D, R any] struct {
	OnInitial func() R
	OnLoading func() R
	OnSuccess func(D) R
	OnError   func(E) R
}

// Match invokes the handler matching the variant. A nil required
// handler is an invariant violation.
func Match[E, D, R any](s State[E, D], h Handlers[E, D, R]) R {
	switch s.tag {
	case tagLoading:
		if h.OnLoading == nil {
			adt.Violate("op: Match on %v requires OnLoading", s)
		}
		return h.OnLoading(s)
	case tagSuccess:
		if h.OnSuccess == nil {
			adt.Violate("op: Match on %v requires OnSuccess", s)
		}
		return h.OnSuccess(s)
	case tagError:
		if h.OnError == nil {
			adt.Violate("op: Match on %v requires OnError", s)
		}
		return h.OnError(s)
	default:
		if h.OnInitial == nil {
			adt.Violate("op: Match on %v requires OnInitial", s)
		}
		return h.OnInitial(s)
	}
}

// MatchOr invokes the matching handler, or fallback when it is nil.
func MatchOr[E, D, R any](s State[E, D], h Handlers[E, D, R], fallback func() R) R {
	if fallback == nil {
		adt.Violate("op: MatchOr requires a fallback handler")
	}
	switch s.tag {
	case tagLoading:
		if h.OnLoading != nil {
			return h.OnLoading(s)
		}
	case tagSuccess:
		if h.OnSuccess != nil {
			return h.OnSuccess(s)
		}
	case tagError:
		if h.OnError != nil {
			return h.OnError(s)
		}
	default:
		if h.OnInitial != nil {
			return h.OnInitial(s)
		}
	}
	return fallback()
}

// MatchOrNull invokes the matching handler, or returns Nothing when it
// is nil.
func MatchOrNull[E, D, R any](s State[E, D], h Handlers[E, D, R]) adt.Optional[R] {
	switch s.tag {
	case tagLoading:
		if h.OnLoading != nil {
			return adt.Just(h.OnLoading(s))
		}
	case tagSuccess:
		if h.OnSuccess != nil {
			return adt.Just(h.OnSuccess(s))
		}
	case tagError:
		if h.OnError != nil {
			return adt.Just(h.OnError(s))
		}
	default:
		if h.OnInitial != nil {
			return adt.Just(h.OnInitial(s))
		}
	}
	return adt.Nothing[R]()
}

// When is Match over unwrapped payloads.
func When[E, D, R any](s State[E, D], c Cases[E, D, R]) R {
	switch s.tag {
	case tagLoading:
		if c.OnLoading == nil {
			adt.Violate("op: When on %v requires OnLoading", s)
		}
		return c.OnLoading()
	case tagSuccess:
		if c.OnSuccess == nil {
			adt.Violate("op: When on %v requires OnSuccess", s)
		}
		return c.OnSuccess(s.data)
	case tagError:
		if c.OnError == nil {
			adt.Violate("op: When on %v requires OnError", s)
		}
		return c.OnError(s.err)
	default:
		if c.OnInitial == nil {
			adt.Violate("op: When on %v requires OnInitial", s)
		}
		return c.OnInitial()
	}
}

// WhenOr is MatchOr over unwrapped payloads.
func WhenOr[E, D, R any](s State[E, D], c Cases[E, D, R], fallback func() R) R {
	if fallback == nil {
		adt.Violate("op: WhenOr requires a fallback handler")
	}
	switch s.tag {
	case tagLoading:
		if c.OnLoading != nil {
			return c.OnLoading()
		}
	case tagSuccess:
		if c.OnSuccess != nil {
			return c.OnSuccess(s.data)
		}
	case tagError:
		if c.OnError != nil {
			return c.OnError(s.err)
		}
	default:
		if c.OnInitial != nil {
			return c.OnInitial()
		}
	}
	return fallback()
}

// WhenOrNull is MatchOrNull over unwrapped payloads.
func WhenOrNull[E, D, R any](s State[E, D], c Cases[E, D, R]) adt.Optional[R] {
	switch s.tag {
	case tagLoading:
		if c.OnLoading != nil {
			return adt.Just(c.OnLoading())
		}
	case tagSuccess:
		if c.OnSuccess != nil {
			return adt.Just(c.OnSuccess(s.data))
		}
	case tagError:
		if c.OnError != nil {
			return adt.Just(c.OnError(s.err))
		}
	default:
		if c.OnInitial != nil {
			return adt.Just(c.OnInitial())
		}
	}
	return adt.Nothing[R]()
}
