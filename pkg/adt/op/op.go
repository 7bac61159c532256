package op

import (
	"fmt"

	"github.com/ib-77/adt/pkg/adt"
)

type tag uint8

const (
	tagInitial tag = iota
	tagLoading
	tagSuccess
	tagError
)

// State is a closed four-variant union over a domain error E and a
// data payload D. Instances are immutable values; absent payload slots
// hold zero values so that Go equality is structural over (variant,
// payloads). The zero value is Initial.
type State[E, D any] struct {
	tag  tag
	data D
	err  E
}

// Initial constructs the pre-start sentinel state.
func Initial[E, D any]() State[E, D] {
	return State[E, D]{tag: tagInitial}
}

// Loading constructs the in-flight state.
func Loading[E, D any]() State[E, D] {
	return State[E, D]{tag: tagLoading}
}

// Success constructs the terminal state carrying data.
func Success[E, D any](data D) State[E, D] {
	return State[E, D]{tag: tagSuccess, data: data}
}

// Error constructs the terminal state carrying a domain error.
func Error[E, D any](err E) State[E, D] {
	return State[E, D]{tag: tagError, err: err}
}

func (s State[E, D]) IsInitial() bool {
	return s.tag == tagInitial
}

func (s State[E, D]) IsLoading() bool {
	return s.tag == tagLoading
}

func (s State[E, D]) IsSuccess() bool {
	return s.tag == tagSuccess
}

func (s State[E, D]) IsError() bool {
	return s.tag == tagError
}

// Data returns the data payload, present only on Success.
func (s State[E, D]) Data() adt.Optional[D] {
	if s.tag == tagSuccess {
		return adt.Just(s.data)
	}
	return adt.Nothing[D]()
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
	case tagLoading:
		return "OperationState.loading()"
	case tagSuccess:
		return fmt.Sprintf("OperationState.success(data: %v)", s.data)
	case tagError:
		return fmt.Sprintf("OperationState.error(error: %v)", s.err)
	default:
		return "OperationState.initial()"
	}
}

// Map transforms the data payload on Success; every other variant keeps
// its shape and any carried error.
func Map[E, D, D2 any](s State[E, D], f func(D) D2) State[E, D2] {
	switch s.tag {
	case tagSuccess:
		return Success[E](f(s.data))
	case tagError:
		return Error[E, D2](s.err)
	case tagLoading:
		return Loading[E, D2]()
	default:
		return Initial[E, D2]()
	}
}

// MapError transforms the error payload on Error; every other variant
// keeps its shape and any carried data.
func MapError[E, E2, D any](s State[E, D], f func(E) E2) State[E2, D] {
	switch s.tag {
	case tagSuccess:
		return Success[E2](s.data)
	case tagError:
		return Error[E2, D](f(s.err))
	case tagLoading:
		return Loading[E2, D]()
	default:
		return Initial[E2, D]()
	}
}

// FlatMap binds f over Success and returns its result verbatim;
// Initial, Loading and Error short-circuit with shape and error
// preserved.
func FlatMap[E, D, D2 any](s State[E, D], f func(D) State[E, D2]) State[E, D2] {
	switch s.tag {
	case tagSuccess:
		return f(s.data)
	case tagError:
		return Error[E, D2](s.err)
	case tagLoading:
		return Loading[E, D2]()
	default:
		return Initial[E, D2]()
	}
}
