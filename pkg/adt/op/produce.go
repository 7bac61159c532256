package op

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/adt/pkg/adt"
)

// snapshotCapacity buffers the at-most-two emissions of a run so the
// producer never blocks on a slow or departed consumer.
const snapshotCapacity = 2

// Trace identifies the run a fault originated from.
type Trace struct {
	RunID     uuid.UUID
	StartedAt time.Time
	// Stack is non-nil only when the body panicked; captured at the
	// recovery point.
	Stack []byte
}

// BodyPanic wraps a panic recovered from a produce body so it can
// travel the fault path as an ordinary error.
type BodyPanic struct {
	Value any
}

func (p BodyPanic) Error() string {
	return fmt.Sprintf("op: body panicked: %v", p.Value)
}

// Run is a single execution of a fallible body, publishing an ordered
// snapshot sequence to one logical consumer: Loading first, then
// exactly one of Success or Error, then the channel closes. Initial is
// never emitted.
type Run[E, D any] struct {
	id        uuid.UUID
	startedAt time.Time
	states    chan State[E, D]
	done      chan struct{}
	fault     error
}

// Produce starts body in its own goroutine and returns the Run
// publishing its state sequence. A body fault (returned error or
// recovered panic) is mapped to a domain error via onError and emitted
// as an Error state; when rethrow is set the original fault is
// additionally surfaced through Fault after the sequence closes.
//
// Cancelling ctx is the consumer's way of abandoning the run: the body
// observes it through its argument, and the buffered sequence lets the
// producer settle without the consumer reading further.
func Produce[E, D any](ctx context.Context,
	body func(ctx context.Context) (D, error),
	onError func(err error, t Trace) E, rethrow bool) *Run[E, D] {

	if body == nil {
		adt.Violate("op: Produce requires a body")
	}
	if onError == nil {
		adt.Violate("op: Produce requires an error mapper")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	r := &Run[E, D]{
		id:        uuid.New(),
		startedAt: time.Now().UTC(),
		states:    make(chan State[E, D], snapshotCapacity),
		done:      make(chan struct{}),
	}

	go r.produce(ctx, body, onError, rethrow)
	return r
}

// States returns the snapshot sequence. Single consumer; the channel
// closes after the terminal state.
func (r *Run[E, D]) States() <-chan State[E, D] {
	return r.states
}

// Fault blocks until the run settles and returns the original body
// fault, non-nil only when the run was produced with rethrow and the
// body faulted. The Error state carrying the mapped domain error is
// always emitted first; this is the out-of-band propagation on top of
// it.
func (r *Run[E, D]) Fault() error {
	<-r.done
	return r.fault
}

// ID returns the identity assigned to this run.
func (r *Run[E, D]) ID() uuid.UUID {
	return r.id
}

// StartedAt returns the run start time (UTC).
func (r *Run[E, D]) StartedAt() time.Time {
	return r.startedAt
}

// Drain collects the full snapshot sequence and the out-of-band fault.
func (r *Run[E, D]) Drain() ([]State[E, D], error) {
	var states []State[E, D]
	for s := range r.states {
		states = append(states, s)
	}
	return states, r.Fault()
}

func (r *Run[E, D]) produce(ctx context.Context,
	body func(ctx context.Context) (D, error),
	onError func(err error, t Trace) E, rethrow bool) {

	defer close(r.done)
	defer close(r.states)

	r.states <- Loading[E, D]()

	data, err, stack := runBody(ctx, body)
	if err == nil {
		r.states <- Success[E](data)
		return
	}

	t := Trace{RunID: r.id, StartedAt: r.startedAt, Stack: stack}
	r.states <- Error[E, D](onError(err, t))

	if rethrow {
		r.fault = err
	}
}

// runBody invokes body, recovering a panic into BodyPanic with its
// stack.
func runBody[D any](ctx context.Context,
	body func(ctx context.Context) (D, error)) (data D, err error, stack []byte) {

	defer func() {
		if v := recover(); v != nil {
			err = BodyPanic{Value: v}
			stack = debug.Stack()
		}
	}()

	data, err = body(ctx)
	return
}
