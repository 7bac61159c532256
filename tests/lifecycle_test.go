package tests

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/adt/pkg/adt"
	"github.com/ib-77/adt/pkg/adt/keep"
	"github.com/ib-77/adt/pkg/adt/match"
	"github.com/ib-77/adt/pkg/adt/op"
	"github.com/ib-77/adt/pkg/adt/sess"
)

// foldConnect turns one connect-operation snapshot into the session
// state it implies.
func foldConnect(state op.State[string, string]) sess.State[string, string] {
	return op.When(state, op.Cases[string, string, sess.State[string, string]]{
		OnInitial: func() sess.State[string, string] {
			return sess.Initial[string, string]()
		},
		OnLoading: func() sess.State[string, string] {
			return sess.Connecting[string, string]()
		},
		OnSuccess: func(d string) sess.State[string, string] {
			return sess.Idle[string](d)
		},
		OnError: func(e string) sess.State[string, string] {
			return sess.FatalError[string, string](e)
		},
	})
}

func TestSessionBringUp(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	run := op.Produce(ctx,
		func(ctx context.Context) (string, error) { return "session-42", nil },
		func(err error, tr op.Trace) string { return err.Error() },
		false)

	var rendered []string
	for state := range run.States() {
		rendered = append(rendered, foldConnect(state).String())
	}

	require.NoError(t, run.Fault())
	assert.Equal(t, []string{
		"SessionState.connecting()",
		"SessionState.idle(data: session-42)",
	}, rendered)
}

func TestSessionBringUpFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	run := op.Produce(ctx,
		func(ctx context.Context) (string, error) {
			return "", errors.New("dial refused")
		},
		func(err error, tr op.Trace) string {
			return fmt.Sprintf("connect %s failed: %v", tr.RunID, err)
		},
		false)

	session := sess.Initial[string, string]()
	for state := range run.States() {
		session = foldConnect(state)
	}

	require.True(t, session.IsFatalError())
	e, ok := session.Err().Unwrap()
	require.True(t, ok)
	assert.Contains(t, e, "dial refused")
}

func TestMatcherRendersReducedLifecycle(t *testing.T) {
	t.Parallel()

	session := sess.Error(42, "stale token")

	// A caller that reduced the lifecycle to predicates up front: a
	// recoverable error still counts as operational since data is
	// there to show.
	m := match.New(
		session.IsInitial(),
		session.IsConnecting(),
		session.IsIdle() || session.IsUpdating() || session.IsError(),
		session.IsFatalError(),
		session.Data(),
		session.Err(),
	)

	banner := match.When(m, match.Cases[string, int, string]{
		OnInitial:     func() string { return "not connected" },
		OnConnecting:  func() string { return "connecting..." },
		OnOperational: func(d int) string { return fmt.Sprintf("serving %d", d) },
		OnFatal:       func(e string) string { return "gone: " + e },
	})

	assert.Equal(t, "serving 42", banner)
}

func TestRefreshKeepsLastKnownData(t *testing.T) {
	t.Parallel()

	// A persistent value moving through a failed refresh never loses
	// its data.
	profile := keep.Idle[string]("cached-profile")

	refreshing := keep.Loading[string](profile.Data())
	broken := keep.Error(refreshing.Data(), "refresh timed out")

	assert.Equal(t, "cached-profile", broken.Data())
	assert.Equal(t, adt.Just("refresh timed out"), broken.Err())

	// And the rendering keeps both payloads visible.
	assert.Equal(t,
		"PersistentState.error(data: cached-profile, error: refresh timed out)",
		broken.String())
}

func TestOperationPipelineFeedsFlatMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	run := op.Produce(ctx,
		func(ctx context.Context) (int, error) { return 21, nil },
		func(err error, tr op.Trace) string { return err.Error() },
		false)

	states, err := run.Drain()
	require.NoError(t, err)

	final := op.FlatMap(states[len(states)-1], func(n int) op.State[string, int] {
		if n > 100 {
			return op.Error[string, int]("too large")
		}
		return op.Success[string](n * 2)
	})

	assert.Equal(t, op.Success[string](42), final)
}
