package keep

import "github.com/ib-77/adt/pkg/adt"

// Handlers dispatches on the full State instance, one handler per
// variant. All three are required by Match; MatchOr and MatchOrNull
// treat nil handlers as absent.
type Handlers[E, D, R any] struct {
	OnLoading func(State[E, D]) R
	OnIdle    func(State[E, D]) R
	OnError   func(State[E, D]) R
}

// Cases dispatches on unwrapped payloads instead of the wrapper.
type Cases[E, D, R any] struct {
	OnLoading func(D) R
	OnIdle    func(D) R
	OnError   func(D, E) R
}

// Match invokes the handler matching the variant. A nil required
// handler is an invariant violation.
func Match[E, D, R any](s State[E, D], h Handlers[E, D, R]) R {
	switch s.tag {
	case tagIdle:
		if h.OnIdle == nil {
			adt.Violate("keep: Match on %v requires OnIdle", s)
		}
		return h.OnIdle(s)
	case tagError:
		if h.OnError == nil {
			adt.Violate("keep: Match on %v requires OnError", s)
		}
		return h.OnError(s)
	default:
		if h.OnLoading == nil {
			adt.Violate("keep: Match on %v requires OnLoading", s)
		}
		return h.OnLoading(s)
	}
}

// MatchOr invokes the matching handler, or fallback when it is nil.
func MatchOr[E, D, R any](s State[E, D], h Handlers[E, D, R], fallback func() R) R {
	if fallback == nil {
		adt.Violate("keep: MatchOr requires a fallback handler")
	}
	switch s.tag {
	case tagIdle:
		if h.OnIdle != nil {
			return h.OnIdle(s)
		}
	case tagError:
		if h.OnError != nil {
			return h.OnError(s)
		}
	default:
		if h.OnLoading != nil {
			return h.OnLoading(s)
		}
	}
	return fallback()
}

// MatchOrNull invokes the matching handler, or returns Nothing when it
// is nil.
func MatchOrNull[E, D, R any](s State[E, D], h Handlers[E, D, R]) adt.Optional[R] {
	switch s.tag {
	case tagIdle:
		if h.OnIdle != nil {
			return adt.Just(h.OnIdle(s))
		}
	case tagError:
		if h.OnError != nil {
			return adt.Just(h.OnError(s))
		}
	default:
		if h.OnLoading != nil {
			return adt.Just(h.OnLoading(s))
		}
	}
	return adt.Nothing[R]()
}

// When is Match over unwrapped payloads.
func When[E, D, R any](s State[E, D], c Cases[E, D, R]) R {
	switch s.tag {
	case tagIdle:
		if c.OnIdle == nil {
			adt.Violate("keep: When on %v requires OnIdle", s)
		}
		return c.OnIdle(s.data)
	case tagError:
		if c.OnError == nil {
			adt.Violate("keep: When on %v requires OnError", s)
		}
		return c.OnError(s.data, s.err)
	default:
		if c.OnLoading == nil {
			adt.Violate("keep: When on %v requires OnLoading", s)
		}
		return c.OnLoading(s.data)
	}
}

// WhenOr is MatchOr over unwrapped payloads.
func WhenOr[E, D, R any](s State[E, D], c Cases[E, D, R], fallback func() R) R {
	if fallback == nil {
		adt.Violate("keep: WhenOr requires a fallback handler")
	}
	switch s.tag {
	case tagIdle:
		if c.OnIdle != nil {
			return c.OnIdle(s.data)
		}
	case tagError:
		if c.OnError != nil {
			return c.OnError(s.data, s.err)
		}
	default:
		if c.OnLoading != nil {
			return c.OnLoading(s.data)
		}
	}
	return fallback()
}

// WhenOrNull is MatchOrNull over unwrapped payloads.
func WhenOrNull[E, D, R any](s State[E, D], c Cases[E, D, R]) adt.Optional[R] {
	switch s.tag {
	case tagIdle:
		if c.OnIdle != nil {
			return adt.Just(c.OnIdle(s.data))
		}
	case tagError:
		if c.OnError != nil {
			return adt.Just(c.OnError(s.data, s.err))
		}
	default:
		if c.OnLoading != nil {
			return adt.Just(c.OnLoading(s.data))
		}
	}
	return adt.Nothing[R]()
}
