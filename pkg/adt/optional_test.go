package adt

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestOptional_Predicates(t *testing.T) {
	t.Parallel()

	j := Just(5)
	if !j.IsJust() || j.IsNothing() {
		t.Fatalf("expected Just: isJust=%v, isNothing=%v", j.IsJust(), j.IsNothing())
	}

	n := Nothing[int]()
	if n.IsJust() || !n.IsNothing() {
		t.Fatalf("expected Nothing: isJust=%v, isNothing=%v", n.IsJust(), n.IsNothing())
	}
}

func TestOptional_UnwrapAndOr(t *testing.T) {
	t.Parallel()

	v, ok := Just("a").Unwrap()
	if !ok || v != "a" {
		t.Fatalf("expected (a, true), got (%v, %v)", v, ok)
	}

	v, ok = Nothing[string]().Unwrap()
	if ok || v != "" {
		t.Fatalf("expected zero value and false, got (%v, %v)", v, ok)
	}

	if got := Nothing[string]().Or("fb"); got != "fb" {
		t.Fatalf("expected fallback, got %v", got)
	}
	if got := Just("x").Or("fb"); got != "x" {
		t.Fatalf("expected value, got %v", got)
	}
}

func TestOptional_Equality(t *testing.T) {
	t.Parallel()

	if Just(1) != Just(1) {
		t.Fatalf("equal Just values should be equal")
	}
	if Just(0) == Nothing[int]() {
		t.Fatalf("Just(zero) must not equal Nothing")
	}
}

func TestOptional_MapKeepsShape(t *testing.T) {
	t.Parallel()

	double := func(n int) int { return n * 2 }
	if got := Map(Just(3), double); got != Just(6) {
		t.Fatalf("expected Just(6), got %v", got)
	}
	if got := Map(Nothing[int](), double); !got.IsNothing() {
		t.Fatalf("expected Nothing, got %v", got)
	}
}

func TestOptional_FlatMapShortCircuit(t *testing.T) {
	t.Parallel()

	called := false
	got := FlatMap(Nothing[int](), func(n int) Optional[string] {
		called = true
		return Just("x")
	})
	if called || !got.IsNothing() {
		t.Fatalf("Nothing must short-circuit: called=%v, got=%v", called, got)
	}

	got = FlatMap(Just(7), func(n int) Optional[string] {
		return Just(fmt.Sprintf("n=%d", n))
	})
	if got != Just("n=7") {
		t.Fatalf("expected Just(n=7), got %v", got)
	}
}

func TestOptional_MatchDispatchesExactlyOne(t *testing.T) {
	t.Parallel()

	got := Match(Just(2), Handlers[int, string]{
		OnJust:    func(o Optional[int]) string { return o.String() },
		OnNothing: func(o Optional[int]) string { return "none" },
	})
	if got != "Optional.just(value: 2)" {
		t.Fatalf("unexpected match result: %v", got)
	}
}

func TestOptional_MatchMissingHandlerFaults(t *testing.T) {
	t.Parallel()

	defer func() {
		v := recover()
		if _, ok := v.(InvariantViolation); !ok {
			t.Fatalf("expected InvariantViolation, got %v", v)
		}
	}()

	Match(Just(2), Handlers[int, string]{
		OnNothing: func(o Optional[int]) string { return "none" },
	})
	t.Fatalf("Match with a missing required handler must fault")
}

func TestOptional_PartialDispatch(t *testing.T) {
	t.Parallel()

	got := MatchOr(Nothing[int](), Handlers[int, string]{
		OnJust: func(o Optional[int]) string { return "just" },
	}, func() string { return "fb" })
	if got != "fb" {
		t.Fatalf("expected fallback, got %v", got)
	}

	r := MatchOrNull(Nothing[int](), Handlers[int, string]{
		OnJust: func(o Optional[int]) string { return "just" },
	})
	if !r.IsNothing() {
		t.Fatalf("expected absent result, got %v", r)
	}
}

func TestOptional_WhenUnwrapsPayload(t *testing.T) {
	t.Parallel()

	got := When(Just(41), Cases[int, int]{
		OnJust:    func(n int) int { return n + 1 },
		OnNothing: func() int { return -1 },
	})
	if got != 42 {
		t.Fatalf("expected 42, got %v", got)
	}

	got = WhenOr(Just(1), Cases[int, int]{
		OnNothing: func() int { return -1 },
	}, func() int { return 0 })
	if got != 0 {
		t.Fatalf("expected fallback 0, got %v", got)
	}

	r := WhenOrNull(Just(1), Cases[int, int]{
		OnJust: func(n int) int { return n },
	})
	if r != Just(1) {
		t.Fatalf("expected Just(1), got %v", r)
	}
}

func TestOptional_String(t *testing.T) {
	t.Parallel()

	if s := Nothing[int]().String(); s != "Optional.nothing()" {
		t.Fatalf("unexpected rendering: %v", s)
	}
	if s := Just("ok").String(); s != "Optional.just(value: ok)" {
		t.Fatalf("unexpected rendering: %v", s)
	}
}

func TestIsCancellation(t *testing.T) {
	t.Parallel()

	if !IsCancellation(context.Canceled) || !IsCancellation(context.DeadlineExceeded) {
		t.Fatalf("context errors must count as cancellation")
	}
	if IsCancellation(errors.New("boom")) {
		t.Fatalf("ordinary errors are not cancellation")
	}
}

func TestFaults(t *testing.T) {
	t.Parallel()

	if got := Faults(nil); len(got) != 0 {
		t.Fatalf("expected no faults, got %v", got)
	}

	e1, e2 := errors.New("a"), errors.New("b")
	got := Faults(errors.Join(e1, e2))
	if len(got) != 2 || got[0] != e1 || got[1] != e2 {
		t.Fatalf("expected joined errors unwrapped, got %v", got)
	}

	got = Faults(e1)
	if len(got) != 1 || got[0] != e1 {
		t.Fatalf("expected single error, got %v", got)
	}
}
