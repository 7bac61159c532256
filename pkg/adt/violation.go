package adt

import "fmt"

// InvariantViolation signals a defect in calling code: dispatch over an
// inconsistent predicate set, or a missing required handler. It is
// raised via panic and must not be recovered as a domain error;
// domain errors travel as E payloads, never as faults.
type InvariantViolation struct {
	Msg string
}

func (v InvariantViolation) Error() string {
	return v.Msg
}

// Violate panics with an InvariantViolation.
func Violate(format string, args ...any) {
	panic(InvariantViolation{Msg: fmt.Sprintf(format, args...)})
}
