package playback

import (
	"sync"
	"time"

	"github.com/matzehuels/algotrace/pkg/errors"
	"github.com/matzehuels/algotrace/pkg/observability"
	"github.com/matzehuels/algotrace/pkg/trace"
)

// State is a playback state.
type State int

// Playback states.
const (
	Idle State = iota
	Ready
	Playing
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Speed bounds.
const (
	DefaultSpeed = 500 * time.Millisecond
	MinSpeed     = 10 * time.Millisecond
	MaxSpeed     = 10 * time.Second
)

// Errors returned for operations the current state does not allow.
var (
	ErrNothingToPlay = errors.New(errors.ErrCodePlayback, "there are no steps to play")
	ErrFinished      = errors.New(errors.ErrCodePlayback, "playback is at the last step; reset to start over")
	ErrPlaying       = errors.New(errors.ErrCodePlayback, "pause playback before stepping manually")
	ErrInvalidSpeed  = errors.New(errors.ErrCodeOutOfRange, "speed must be between %s and %s", MinSpeed, MaxSpeed)
)

// Source produces a fresh step list. It is called on SetInput and Reset.
type Source func() ([]trace.Step, error)

// FromTrace returns a source that always yields the steps of t.
func FromTrace(t trace.Trace) Source {
	return func() ([]trace.Step, error) { return t.Steps, nil }
}

// Status is a consistent view of the controller.
type Status struct {
	State State
	Index int
	Len   int
	Speed time.Duration
	// Diagnostic is the error of the last failed SetInput or Reset.
	Diagnostic error
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler sets the scheduler used for ticks. The default is
// [TimerScheduler].
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithSpeed sets the initial delay between ticks.
func WithSpeed(d time.Duration) Option {
	return func(c *Controller) { c.speed = d }
}

// WithOnChange registers a callback invoked after every change of state or
// index, outside the controller's lock.
func WithOnChange(fn func(Status)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// Controller is the playback state machine. It is safe for concurrent use.
type Controller struct {
	mu       sync.Mutex
	sched    Scheduler
	onChange func(Status)

	source Source
	steps  []trace.Step
	diag   error

	state   State
	index   int
	speed   time.Duration
	gen     uint64
	pending Handle
	closed  bool
}

// New returns an Idle controller.
func New(opts ...Option) *Controller {
	c := &Controller{sched: TimerScheduler{}, speed: DefaultSpeed}
	for _, opt := range opts {
		opt(c)
	}
	if c.speed < MinSpeed || c.speed > MaxSpeed {
		c.speed = DefaultSpeed
	}
	return c
}

// =============================================================================
// Operations
// =============================================================================

// SetInput cancels any pending tick and regenerates the steps from src.
//
// If src fails, its error is returned and kept as the diagnostic, the
// previous steps and index stay untouched, and a running playback is
// paused. On success the controller is Ready at index 0, Finished when the
// list has a single step, or Idle when it is empty.
func (c *Controller) SetInput(src Source) error {
	return c.update(func() error {
		return c.loadLocked(src)
	})
}

// Reset cancels any pending tick, regenerates the steps from the current
// source and returns to index 0. Without a source it only rewinds.
func (c *Controller) Reset() error {
	return c.update(func() error {
		if c.source == nil {
			c.cancelLocked()
			c.index = 0
			c.transitionLocked(initialState(len(c.steps)))
			return nil
		}
		return c.loadLocked(c.source)
	})
}

// Play starts automatic advancement from Ready or Paused. It is a no-op
// while already playing.
func (c *Controller) Play() error {
	return c.update(func() error {
		switch c.state {
		case Idle:
			return ErrNothingToPlay
		case Finished:
			return ErrFinished
		case Playing:
			return nil
		}
		if c.index >= len(c.steps)-1 {
			c.transitionLocked(Finished)
			return ErrFinished
		}
		c.transitionLocked(Playing)
		c.scheduleLocked()
		return nil
	})
}

// Pause stops automatic advancement. It is a no-op unless playing.
func (c *Controller) Pause() error {
	return c.update(func() error {
		if c.state != Playing {
			return nil
		}
		c.cancelLocked()
		c.transitionLocked(Paused)
		return nil
	})
}

// Step advances one step manually from Ready or Paused.
func (c *Controller) Step() error {
	return c.update(func() error {
		switch c.state {
		case Idle:
			return ErrNothingToPlay
		case Playing:
			return ErrPlaying
		case Finished:
			return ErrFinished
		}
		c.advanceLocked()
		if c.state != Finished {
			c.transitionLocked(Paused)
		}
		return nil
	})
}

// SetSpeed changes the delay used by ticks scheduled from now on. A tick
// that is already pending keeps its delay.
func (c *Controller) SetSpeed(d time.Duration) error {
	if d < MinSpeed || d > MaxSpeed {
		return ErrInvalidSpeed
	}
	c.mu.Lock()
	c.speed = d
	c.mu.Unlock()
	return nil
}

// Close cancels any pending tick. Later calls to Play are accepted but
// never tick.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.closed = true
	if c.state == Playing {
		c.transitionLocked(Paused)
	}
}

// =============================================================================
// Accessors
// =============================================================================

// Status returns the current state, index, length, speed and diagnostic.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusLocked()
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Index returns the current step index.
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Len returns the number of loaded steps.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.steps)
}

// Current returns the step at the current index. The step is shared with
// the controller and must not be modified.
func (c *Controller) Current() (trace.Step, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.steps) == 0 {
		return trace.Step{}, false
	}
	return c.steps[c.index], true
}

// Diagnostic returns the error of the last failed SetInput or Reset.
func (c *Controller) Diagnostic() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.diag
}

// =============================================================================
// Internals
// =============================================================================

// update runs fn under the lock and notifies the change callback when the
// state or index moved.
func (c *Controller) update(fn func() error) error {
	c.mu.Lock()
	before := c.statusLocked()
	err := fn()
	after := c.statusLocked()
	c.mu.Unlock()
	if c.onChange != nil && moved(before, after) {
		c.onChange(after)
	}
	return err
}

func moved(a, b Status) bool {
	return a.State != b.State || a.Index != b.Index || a.Len != b.Len
}

func (c *Controller) statusLocked() Status {
	return Status{State: c.state, Index: c.index, Len: len(c.steps), Speed: c.speed, Diagnostic: c.diag}
}

func (c *Controller) loadLocked(src Source) error {
	c.cancelLocked()
	steps, err := src()
	if err != nil {
		c.diag = err
		if c.state == Playing {
			c.transitionLocked(Paused)
		}
		return err
	}
	c.source = src
	c.steps = steps
	c.diag = nil
	c.index = 0
	c.transitionLocked(initialState(len(steps)))
	return nil
}

func initialState(n int) State {
	switch {
	case n == 0:
		return Idle
	case n == 1:
		return Finished
	default:
		return Ready
	}
}

func (c *Controller) advanceLocked() {
	if c.index < len(c.steps)-1 {
		c.index++
	}
	if c.index >= len(c.steps)-1 {
		c.transitionLocked(Finished)
	}
}

// scheduleLocked replaces any pending tick with a new one for the current
// generation.
func (c *Controller) scheduleLocked() {
	c.cancelLocked()
	if c.closed {
		return
	}
	gen := c.gen
	c.pending = c.sched.Schedule(c.speed, func() { c.tick(gen) })
}

// cancelLocked stops the pending tick and invalidates any callback that is
// already running.
func (c *Controller) cancelLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.gen++
}

func (c *Controller) tick(gen uint64) {
	_ = c.update(func() error {
		if gen != c.gen || c.state != Playing {
			observability.Playback().OnTick(c.index, true)
			return nil
		}
		c.pending = nil
		c.advanceLocked()
		observability.Playback().OnTick(c.index, false)
		if c.state == Playing {
			c.scheduleLocked()
		}
		return nil
	})
}

func (c *Controller) transitionLocked(to State) {
	if c.state == to {
		return
	}
	from := c.state
	c.state = to
	observability.Playback().OnTransition(from.String(), to.String(), c.index)
}
