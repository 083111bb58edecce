package playback

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/algotrace/pkg/errors"
	"github.com/matzehuels/algotrace/pkg/trace"
)

const tick = 100 * time.Millisecond

func steps(n int) Source {
	return func() ([]trace.Step, error) {
		out := make([]trace.Step, n)
		for i := range out {
			out[i] = trace.ArrayStep(trace.NoLine, fmt.Sprintf("step %d", i), trace.ArrayState{Values: []float64{float64(i)}})
		}
		return out, nil
	}
}

func failing() Source {
	return func() ([]trace.Step, error) {
		return nil, errors.New(errors.ErrCodeInvalidNumber, "bad input")
	}
}

func newController(t *testing.T, n int) (*Controller, *ManualScheduler) {
	t.Helper()
	s := NewManualScheduler()
	c := New(WithScheduler(s), WithSpeed(tick))
	require.NoError(t, c.SetInput(steps(n)))
	return c, s
}

func TestNewControllerIsIdle(t *testing.T) {
	c := New()
	assert.Equal(t, Idle, c.State())
	assert.ErrorIs(t, c.Play(), ErrNothingToPlay)
	assert.ErrorIs(t, c.Step(), ErrNothingToPlay)
	_, ok := c.Current()
	assert.False(t, ok)
}

func TestSetInputLoadsReady(t *testing.T) {
	c, _ := newController(t, 5)
	assert.Equal(t, Ready, c.State())
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 5, c.Len())
}

func TestStepToFinished(t *testing.T) {
	c, _ := newController(t, 5)
	for i := 0; i < 4; i++ {
		require.NoError(t, c.Step())
	}
	assert.Equal(t, Finished, c.State())
	assert.Equal(t, 4, c.Index())
	assert.ErrorIs(t, c.Step(), ErrFinished)
	assert.ErrorIs(t, c.Play(), ErrFinished)
}

func TestStepFromReadyPauses(t *testing.T) {
	c, _ := newController(t, 3)
	require.NoError(t, c.Step())
	assert.Equal(t, Paused, c.State())
	assert.Equal(t, 1, c.Index())
}

func TestPlayAdvancesOnTicks(t *testing.T) {
	c, s := newController(t, 4)
	require.NoError(t, c.Play())
	assert.Equal(t, Playing, c.State())
	assert.Equal(t, 1, s.Pending())

	s.Advance(tick - time.Millisecond)
	assert.Equal(t, 0, c.Index())

	s.Advance(time.Millisecond)
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, 1, s.Pending())

	s.Advance(2 * tick)
	assert.Equal(t, 3, c.Index())
	assert.Equal(t, Finished, c.State())
	assert.Zero(t, s.Pending())
}

func TestStepWhilePlayingRejected(t *testing.T) {
	c, _ := newController(t, 4)
	require.NoError(t, c.Play())
	assert.ErrorIs(t, c.Step(), ErrPlaying)
	require.NoError(t, c.Play(), "play while playing is a no-op")
}

func TestPauseThenPlayResumes(t *testing.T) {
	c, s := newController(t, 6)
	require.NoError(t, c.Play())
	s.Advance(2 * tick)
	require.Equal(t, 2, c.Index())

	require.NoError(t, c.Pause())
	assert.Equal(t, Paused, c.State())
	assert.Zero(t, s.Pending())
	s.Advance(5 * tick)
	assert.Equal(t, 2, c.Index())

	require.NoError(t, c.Play())
	s.Advance(tick)
	assert.Equal(t, 3, c.Index())
}

func TestResetReturnsToStart(t *testing.T) {
	for _, prep := range []func(*Controller, *ManualScheduler){
		func(c *Controller, s *ManualScheduler) {},
		func(c *Controller, s *ManualScheduler) { _ = c.Step() },
		func(c *Controller, s *ManualScheduler) { _ = c.Play(); s.Advance(tick) },
		func(c *Controller, s *ManualScheduler) { _ = c.Play(); s.Advance(10 * tick) },
	} {
		c, s := newController(t, 4)
		prep(c, s)
		require.NoError(t, c.Reset())
		assert.Equal(t, 0, c.Index())
		assert.Equal(t, Ready, c.State())
		assert.Zero(t, s.Pending())
	}
}

func TestNoGhostAdvanceAfterReset(t *testing.T) {
	c, s := newController(t, 5)
	require.NoError(t, c.Play())
	require.NoError(t, c.Reset())
	s.Advance(10 * tick)
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, Ready, c.State())
}

func TestStaleCallbackIgnored(t *testing.T) {
	// A scheduler whose Stop never succeeds, like a timer that already fired.
	s := &leakyScheduler{}
	c := New(WithScheduler(s), WithSpeed(tick))
	require.NoError(t, c.SetInput(steps(5)))
	require.NoError(t, c.Play())
	require.NoError(t, c.Pause())

	s.fireAll()
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, Paused, c.State())
}

func TestSetSpeedAffectsFutureTicksOnly(t *testing.T) {
	c, s := newController(t, 5)
	require.NoError(t, c.Play())
	require.NoError(t, c.SetSpeed(3*tick))

	s.Advance(tick)
	assert.Equal(t, 1, c.Index(), "pending tick keeps its delay")
	s.Advance(tick)
	assert.Equal(t, 1, c.Index())
	s.Advance(2 * tick)
	assert.Equal(t, 2, c.Index())

	assert.ErrorIs(t, c.SetSpeed(0), ErrInvalidSpeed)
}

func TestInvalidInputKeepsPreviousSteps(t *testing.T) {
	c, s := newController(t, 5)
	require.NoError(t, c.Play())
	s.Advance(2 * tick)

	err := c.SetInput(failing())
	require.Error(t, err)
	assert.True(t, errors.IsInputError(err))
	assert.Equal(t, err, c.Diagnostic())
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, Paused, c.State())

	s.Advance(10 * tick)
	assert.Equal(t, 2, c.Index())

	require.NoError(t, c.SetInput(steps(3)))
	assert.NoError(t, c.Diagnostic())
	assert.Equal(t, Ready, c.State())
}

func TestInvalidFirstInputStaysIdle(t *testing.T) {
	c := New(WithScheduler(NewManualScheduler()))
	require.Error(t, c.SetInput(failing()))
	assert.Equal(t, Idle, c.State())
	assert.Error(t, c.Diagnostic())
}

func TestShortLists(t *testing.T) {
	c, _ := newController(t, 1)
	assert.Equal(t, Finished, c.State())
	assert.ErrorIs(t, c.Play(), ErrFinished)
	step, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "step 0", step.Message)

	c, _ = newController(t, 0)
	assert.Equal(t, Idle, c.State())
	assert.ErrorIs(t, c.Play(), ErrNothingToPlay)
}

func TestCloseCancelsPendingTick(t *testing.T) {
	c, s := newController(t, 5)
	require.NoError(t, c.Play())
	c.Close()
	assert.Zero(t, s.Pending())
	s.Advance(10 * tick)
	assert.Equal(t, 0, c.Index())
}

func TestOnChange(t *testing.T) {
	s := NewManualScheduler()
	var seen []Status
	c := New(WithScheduler(s), WithSpeed(tick), WithOnChange(func(st Status) { seen = append(seen, st) }))
	require.NoError(t, c.SetInput(steps(3)))
	require.NoError(t, c.Play())
	s.Advance(2 * tick)

	require.Len(t, seen, 4)
	assert.Equal(t, Ready, seen[0].State)
	assert.Equal(t, Playing, seen[1].State)
	assert.Equal(t, 1, seen[2].Index)
	assert.Equal(t, Finished, seen[3].State)
}

func TestTimerScheduler(t *testing.T) {
	c := New(WithScheduler(TimerScheduler{}), WithSpeed(MinSpeed))
	done := make(chan struct{})
	var once sync.Once
	c.onChange = func(st Status) {
		if st.State == Finished {
			once.Do(func() { close(done) })
		}
	}
	require.NoError(t, c.SetInput(steps(3)))
	require.NoError(t, c.Play())

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("playback did not finish")
	}
	assert.Equal(t, 2, c.Index())
}

// leakyScheduler records callbacks and never cancels them.
type leakyScheduler struct{ fns []func() }

func (s *leakyScheduler) Schedule(_ time.Duration, fn func()) Handle {
	s.fns = append(s.fns, fn)
	return leakyHandle{}
}

func (s *leakyScheduler) fireAll() {
	for _, fn := range s.fns {
		fn()
	}
}

type leakyHandle struct{}

func (leakyHandle) Stop() bool { return false }
