package keep

import (
	"fmt"

	"github.com/ib-77/adt/pkg/adt"
)

type tag uint8

const (
	tagLoading tag = iota
	tagIdle
	tagError
)

// State is a closed three-variant union where the data payload is
// present on every variant. Instances are immutable values; Go
// equality is structural over (variant, data, error).
type State[E, D any] struct {
	tag  tag
	data D
	err  E
}

// Loading constructs the refreshing state around the last-known data.
func Loading[E, D any](data D) State[E, D] {
	return State[E, D]{tag: tagLoading, data: data}
}

// Idle constructs the settled state.
func Idle[E, D any](data D) State[E, D] {
	return State[E, D]{tag: tagIdle, data: data}
}

// Error constructs the broken state, still carrying the last-known
// data next to the domain error.
func Error[E, D any](data D, err E) State[E, D] {
	return State[E, D]{tag: tagError, data: data, err: err}
}

func (s State[E, D]) IsLoading() bool {
	return s.tag == tagLoading
}

func (s State[E, D]) IsIdle() bool {
	return s.tag == tagIdle
}

func (s State[E, D]) IsError() bool {
	return s.tag == tagError
}

// Data returns the data payload; total, since every variant carries
// one.
func (s State[E, D]) Data() D {
	return s.data
}

// Err returns the domain error payload, present only on Error.
func (s State[E, D]) Err() adt.Optional[E] {
	if s.tag == tagError {
		return adt.Just(s.err)
	}
	return adt.Nothing[E]()
}

func (s State[E, D]) String() string {
	switch s.tag {
	case tagIdle:
		return fmt.Sprintf("PersistentState.idle(data: %v)", s.data)
	case tagError:
		return fmt.Sprintf("PersistentState.error(data: %v, error: %v)", s.data, s.err)
	default:
		return fmt.Sprintf("PersistentState.loading(data: %v)", s.data)
	}
}

// Map transforms the data payload on every variant; the variant itself
// and any carried error stay put.
func Map[E, D, D2 any](s State[E, D], f func(D) D2) State[E, D2] {
	switch s.tag {
	case tagIdle:
		return Idle[E](f(s.data))
	case tagError:
		return Error(f(s.data), s.err)
	default:
		return Loading[E](f(s.data))
	}
}

// MapError transforms the error payload on Error; Loading and Idle
// keep their shape and data.
func MapError[E, E2, D any](s State[E, D], f func(E) E2) State[E2, D] {
	switch s.tag {
	case tagIdle:
		return Idle[E2](s.data)
	case tagError:
		return Error(s.data, f(s.err))
	default:
		return Loading[E2](s.data)
	}
}

// FlatMap binds f over Idle and returns its result verbatim; Loading
// and Error short-circuit returning the receiver unchanged. The bind
// cannot change D here: the short-circuiting variants themselves carry
// data, so there is no way to rebuild them around a new data type.
func FlatMap[E, D any](s State[E, D], f func(D) State[E, D]) State[E, D] {
	if s.tag == tagIdle {
		return f(s.data)
	}
	return s
}
