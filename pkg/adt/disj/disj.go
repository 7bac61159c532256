package disj

import (
	"fmt"

	"github.com/ib-77/adt/pkg/adt"
)

// Disjunction holds exactly one of two values. The zero value is an
// empty Left; always construct through Left or Right.
type Disjunction[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left constructs the left (recovered-error) variant.
func Left[L, R any](left L) Disjunction[L, R] {
	return Disjunction[L, R]{left: left}
}

// Right constructs the right (data) variant.
func Right[L, R any](right R) Disjunction[L, R] {
	return Disjunction[L, R]{right: right, isRight: true}
}

// IsLeft reports whether the disjunction holds a left value.
func (d Disjunction[L, R]) IsLeft() bool {
	return !d.isRight
}

// IsRight reports whether the disjunction holds a right value.
func (d Disjunction[L, R]) IsRight() bool {
	return d.isRight
}

// LeftValue returns the left payload, absent on Right.
func (d Disjunction[L, R]) LeftValue() adt.Optional[L] {
	if d.isRight {
		return adt.Nothing[L]()
	}
	return adt.Just(d.left)
}

// RightValue returns the right payload, absent on Left.
func (d Disjunction[L, R]) RightValue() adt.Optional[R] {
	if !d.isRight {
		return adt.Nothing[R]()
	}
	return adt.Just(d.right)
}

func (d Disjunction[L, R]) String() string {
	if d.isRight {
		return fmt.Sprintf("Disjunction.right(right: %v)", d.right)
	}
	return fmt.Sprintf("Disjunction.left(left: %v)", d.left)
}

// Map transforms the right payload; Left passes through unchanged.
func Map[L, R, R2 any](d Disjunction[L, R], f func(R) R2) Disjunction[L, R2] {
	if d.isRight {
		return Right[L](f(d.right))
	}
	return Left[L, R2](d.left)
}

// MapError transforms the left payload; Right passes through unchanged.
func MapError[L, L2, R any](d Disjunction[L, R], f func(L) L2) Disjunction[L2, R] {
	if d.isRight {
		return Right[L2](d.right)
	}
	return Left[L2, R](f(d.left))
}

// FlatMap binds f over a Right value; Left short-circuits with its
// payload untouched.
func FlatMap[L, R, R2 any](d Disjunction[L, R], f func(R) Disjunction[L, R2]) Disjunction[L, R2] {
	if d.isRight {
		return f(d.right)
	}
	return Left[L, R2](d.left)
}

// Handlers dispatches on the full instance, one handler per variant.
type Handlers[L, R, Out any] struct {
	OnLeft  func(Disjunction[L, R]) Out
	OnRight func(Disjunction[L, R]) Out
}

// Cases dispatches on unwrapped payloads.
type Cases[L, R, Out any] struct {
	OnLeft  func(L) Out
	OnRight func(R) Out
}

// Match invokes the handler matching the variant. A nil required
// handler is an invariant violation.
func Match[L, R, Out any](d Disjunction[L, R], h Handlers[L, R, Out]) Out {
	if d.isRight {
		if h.OnRight == nil {
			adt.Violate("disj: Match on %v requires OnRight", d)
		}
		return h.OnRight(d)
	}
	if h.OnLeft == nil {
		adt.Violate("disj: Match on %v requires OnLeft", d)
	}
	return h.OnLeft(d)
}

// MatchOr invokes the matching handler, or fallback when it is nil.
func MatchOr[L, R, Out any](d Disjunction[L, R], h Handlers[L, R, Out], fallback func() Out) Out {
	if fallback == nil {
		adt.Violate("disj: MatchOr requires a fallback handler")
	}
	if d.isRight && h.OnRight != nil {
		return h.OnRight(d)
	}
	if !d.isRight && h.OnLeft != nil {
		return h.OnLeft(d)
	}
	return fallback()
}

// MatchOrNull invokes the matching handler, or returns Nothing when it
// is nil.
func MatchOrNull[L, R, Out any](d Disjunction[L, R], h Handlers[L, R, Out]) adt.Optional[Out] {
	if d.isRight && h.OnRight != nil {
		return adt.Just(h.OnRight(d))
	}
	if !d.isRight && h.OnLeft != nil {
		return adt.Just(h.OnLeft(d))
	}
	return adt.Nothing[Out]()
}

// When is Match over unwrapped payloads.
func When[L, R, Out any](d Disjunction[L, R], c Cases[L, R, Out]) Out {
	if d.isRight {
		if c.OnRight == nil {
			adt.Violate("disj: When on %v requires OnRight", d)
		}
		return c.OnRight(d.right)
	}
	if c.OnLeft == nil {
		adt.Violate("disj: When on %v requires OnLeft", d)
	}
	return c.OnLeft(d.left)
}

// WhenOr is MatchOr over unwrapped payloads.
func WhenOr[L, R, Out any](d Disjunction[L, R], c Cases[L, R, Out], fallback func() Out) Out {
	if fallback == nil {
		adt.Violate("disj: WhenOr requires a fallback handler")
	}
	if d.isRight && c.OnRight != nil {
		return c.OnRight(d.right)
	}
	if !d.isRight && c.OnLeft != nil {
		return c.OnLeft(d.left)
	}
	return fallback()
}

// WhenOrNull is MatchOrNull over unwrapped payloads.
func WhenOrNull[L, R, Out any](d Disjunction[L, R], c Cases[L, R, Out]) adt.Optional[Out] {
	if d.isRight && c.OnRight != nil {
		return adt.Just(c.OnRight(d.right))
	}
	if !d.isRight && c.OnLeft != nil {
		return adt.Just(c.OnLeft(d.left))
	}
	return adt.Nothing[Out]()
}
