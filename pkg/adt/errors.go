package adt

import (
	"context"
	"errors"
)

// IsCancellation reports whether err stems from context cancellation or
// deadline expiry. Useful inside a produce error mapper that wants to
// classify cancellation separately from real faults.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// Faults flattens a joined error into its component errors.
func Faults(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
