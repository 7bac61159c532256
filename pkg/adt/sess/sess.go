package sess

import (
	"fmt"

	"github.com/ib-77/adt/pkg/adt"
)

type tag uint8

const (
	tagInitial tag = iota
	tagConnecting
	tagIdle
	tagUpdating
	tagError
	tagFatalError
)

// State is a closed six-variant union over a domain error E and a data
// payload D. Instances are immutable values; absent payload slots hold
// zero values so Go equality is structural over (variant, payloads).
// The zero value is Initial.
type State[E, D any] struct {
	tag  tag
	data D
	err  E
}

// Initial constructs the pre-connection sentinel state.
func Initial[E, D any]() State[E, D] {
	return State[E, D]{tag: tagInitial}
}

// Connecting constructs the first-connection state.
func Connecting[E, D any]() State[E, D] {
	return State[E, D]{tag: tagConnecting}
}

// Idle constructs the settled state carrying session data.
func Idle[E, D any](data D) State[E, D] {
	return State[E, D]{tag: tagIdle, data: data}
}

// Updating constructs the refreshing state, still carrying data.
func Updating[E, D any](data D) State[E, D] {
	return State[E, D]{tag: tagUpdating, data: data}
}

// Error constructs the recoverable failure state: the session is
// broken but the last-known data stays available.
func Error[E, D any](data D, err E) State[E, D] {
	return State[E, D]{tag: tagError, data: data, err: err}
}

// FatalError constructs the terminal failure state; no data survives.
func FatalError[E, D any](err E) State[E, D] {
	return State[E, D]{tag: tagFatalError, err: err}
}

func (s State[E, D]) IsInitial() bool {
	return s.tag == tagInitial
}

func (s State[E, D]) IsConnecting() bool {
	return s.tag == tagConnecting
}

func (s State[E, D]) IsIdle() bool {
	return s.tag == tagIdle
}

func (s State[E, D]) IsUpdating() bool {
	return s.tag == tagUpdating
}

func (s State[E, D]) IsError() bool {
	return s.tag == tagError
}

func (s State[E, D]) IsFatalError() bool {
	return s.tag == tagFatalError
}

// IsLoading is the derived predicate: the session is in flight either
// way, connecting for the first time or updating existing data.
func (s State[E, D]) IsLoading() bool {
	return s.tag == tagConnecting || s.tag == tagUpdating
}

// Data returns the data payload, present on Idle, Updating and Error.
func (s State[E, D]) Data() adt.Optional[D] {
	switch s.tag {
	case tagIdle, tagUpdating, tagError:
		return adt.Just(s.data)
	default:
		return adt.Nothing[D]()
	}
}

// Err returns the domain error payload, present on Error and
// FatalError.
func (s State[E, D]) Err() adt.Optional[E] {
	switch s.tag {
	case tagError, tagFatalError:
		return adt.Just(s.err)
	default:
		return adt.Nothing[E]()
	}
}

func (s State[E, D]) String() string {
	switch s.tag {
	case tagConnecting:
		return "SessionState.connecting()"
	case tagIdle:
		return fmt.Sprintf("SessionState.idle(data: %v)", s.data)
	case tagUpdating:
		return fmt.Sprintf("SessionState.updating(data: %v)", s.data)
	case tagError:
		return fmt.Sprintf("SessionState.error(data: %v, error: %v)", s.data, s.err)
	case tagFatalError:
		return fmt.Sprintf("SessionState.fatalError(error: %v)", s.err)
	default:
		return "SessionState.initial()"
	}
}

// Map transforms the data payload on Idle, Updating and Error; the
// data-free variants keep their shape and any carried error.
func Map[E, D, D2 any](s State[E, D], f func(D) D2) State[E, D2] {
	switch s.tag {
	case tagConnecting:
		return Connecting[E, D2]()
	case tagIdle:
		return Idle[E](f(s.data))
	case tagUpdating:
		return Updating[E](f(s.data))
	case tagError:
		return Error(f(s.data), s.err)
	case tagFatalError:
		return FatalError[E, D2](s.err)
	default:
		return Initial[E, D2]()
	}
}

// MapError transforms the error payload on Error and FatalError; the
// error-free variants keep their shape and any carried data.
func MapError[E, E2, D any](s State[E, D], f func(E) E2) State[E2, D] {
	switch s.tag {
	case tagConnecting:
		return Connecting[E2, D]()
	case tagIdle:
		return Idle[E2](s.data)
	case tagUpdating:
		return Updating[E2](s.data)
	case tagError:
		return Error(s.data, f(s.err))
	case tagFatalError:
		return FatalError[E2, D](f(s.err))
	default:
		return Initial[E2, D]()
	}
}

// FlatMap binds f over Idle and returns its result verbatim; every
// other variant short-circuits returning the receiver unchanged. The
// bind cannot change D here: Updating and Error would have to carry
// data of the new type without a value to build it from.
func FlatMap[E, D any](s State[E, D], f func(D) State[E, D]) State[E, D] {
	if s.tag == tagIdle {
		return f(s.data)
	}
	return s
}
