package sess

import "github.com/ib-77/adt/pkg/adt"

// Handlers dispatches on the full State instance, one handler per
// variant. All six are required by Match; MatchOr and MatchOrNull
// treat nil handlers as absent.
type Handlers[E, D, R any] struct {
	OnInitial    func(State[E, D]) R
	OnConnecting func(State[E, D]) R
	OnIdle       func(State[E, D]) R
	OnUpdating   func(State[E, D]) R
	OnError      func(State[E, D]) R
	OnFatalError func(State[E, D]) R
}

// Cases dispatches on unwrapped payloads instead of the wrapper.
type Cases[E, D, R any] struct {
	OnInitial    func() R
	OnConnecting func() R
	OnIdle       func(D) R
	OnUpdating   func(D) R
	OnError      func(D, E) R
	OnFatalError func(E) R
}

// Match invokes the handler matching the variant. A nil required
// handler is an invariant violation.
func Match[E, D, R any](s State[E, D], h Handlers[E, D, R]) R {
	switch s.tag {
	case tagConnecting:
		if h.OnConnecting == nil {
			adt.Violate("sess: Match on %v requires OnConnecting", s)
		}
		return h.OnConnecting(s)
	case tagIdle:
		if h.OnIdle == nil {
			adt.Violate("sess: Match on %v requires OnIdle", s)
		}
		return h.OnIdle(s)
	case tagUpdating:
		if h.OnUpdating == nil {
			adt.Violate("sess: Match on %v requires OnUpdating", s)
		}
		return h.OnUpdating(s)
	case tagError:
		if h.OnError == nil {
			adt.Violate("sess: Match on %v requires OnError", s)
		}
		return h.OnError(s)
	case tagFatalError:
		if h.OnFatalError == nil {
			adt.Violate("sess: Match on %v requires OnFatalError", s)
		}
		return h.OnFatalError(s)
	default:
		if h.OnInitial == nil {
			adt.Violate("sess: Match on %v requires OnInitial", s)
		}
		return h.OnInitial(s)
	}
}

// MatchOr invokes the matching handler, or fallback when it is nil.
func MatchOr[E, D, R any](s State[E, D], h Handlers[E, D, R], fallback func() R) R {
	if fallback == nil {
		adt.Violate("sess: MatchOr requires a fallback handler")
	}
	switch s.tag {
	case tagConnecting:
		if h.OnConnecting != nil {
			return h.OnConnecting(s)
		}
	case tagIdle:
		if h.OnIdle != nil {
			return h.OnIdle(s)
		}
	case tagUpdating:
		if h.OnUpdating != nil {
			return h.OnUpdating(s)
		}
	case tagError:
		if h.OnError != nil {
			return h.OnError(s)
		}
	case tagFatalError:
		if h.OnFatalError != nil {
			return h.OnFatalError(s)
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
	case tagConnecting:
		if h.OnConnecting != nil {
			return adt.Just(h.OnConnecting(s))
		}
	case tagIdle:
		if h.OnIdle != nil {
			return adt.Just(h.OnIdle(s))
		}
	case tagUpdating:
		if h.OnUpdating != nil {
			return adt.Just(h.OnUpdating(s))
		}
	case tagError:
		if h.OnError != nil {
			return adt.Just(h.OnError(s))
		}
	case tagFatalError:
		if h.OnFatalError != nil {
			return adt.Just(h.OnFatalError(s))
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
	case tagConnecting:
		if c.OnConnecting == nil {
			adt.Violate("sess: When on %v requires OnConnecting", s)
		}
		return c.OnConnecting()
	case tagIdle:
		if c.OnIdle == nil {
			adt.Violate("sess: When on %v requires OnIdle", s)
		}
		return c.OnIdle(s.data)
	case tagUpdating:
		if c.OnUpdating == nil {
			adt.Violate("sess: When on %v requires OnUpdating", s)
		}
		return c.OnUpdating(s.data)
	case tagError:
		if c.OnError == nil {
			adt.Violate("sess: When on %v requires OnError", s)
		}
		return c.OnError(s.data, s.err)
	case tagFatalError:
		if c.OnFatalError == nil {
			adt.Violate("sess: When on %v requires OnFatalError", s)
		}
		return c.OnFatalError(s.err)
	default:
		if c.OnInitial == nil {
			adt.Violate("sess: When on %v requires OnInitial", s)
		}
		return c.OnInitial()
	}
}

// WhenOr is MatchOr over unwrapped payloads.
func WhenOr[E, D, R any](s State[E, D], c Cases[E, D, R], fallback func() R) R {
	if fallback == nil {
		adt.Violate("sess: WhenOr requires a fallback handler")
	}
	switch s.tag {
	case tagConnecting:
		if c.OnConnecting != nil {
			return c.OnConnecting()
		}
	case tagIdle:
		if c.OnIdle != nil {
			return c.OnIdle(s.data)
		}
	case tagUpdating:
		if c.OnUpdating != nil {
			return c.OnUpdating(s.data)
		}
	case tagError:
		if c.OnError != nil {
			return c.OnError(s.data, s.err)
		}
	case tagFatalError:
		if c.OnFatalError != nil {
			return c.OnFatalError(s.err)
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
	case tagConnecting:
		if c.OnConnecting != nil {
			return adt.Just(c.OnConnecting())
		}
	case tagIdle:
		if c.OnIdle != nil {
			return adt.Just(c.OnIdle(s.data))
		}
	case tagUpdating:
		if c.OnUpdating != nil {
			return adt.Just(c.OnUpdating(s.data))
		}
	case tagError:
		if c.OnError != nil {
			return adt.Just(c.OnError(s.data, s.err))
		}
	case tagFatalError:
		if c.OnFatalError != nil {
			return adt.Just(c.OnFatalError(s.err))
		}
	default:
		if c.OnInitial != nil {
			return adt.Just(c.OnInitial())
		}
	}
	return adt.Nothing[R]()
}
