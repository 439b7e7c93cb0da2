package playback

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/san-kum/sortscope/internal/trace"
)

const (
	DefaultBaseDelay = 500 * time.Millisecond

	MinSpeed = 0.1
	MaxSpeed = 5.0
)

var (
	ErrAlreadyPlaying = errors.New("playback: already playing")
	ErrNoTimeline     = errors.New("playback: no timeline loaded")
)

// Listener receives cursor movements. Both hooks are optional. They run
// without the controller lock held, on the playback goroutine while playing,
// and must not call Pause or Stop from there.
type Listener struct {
	Position func(state trace.ArrayState, step *trace.Step)
	Complete func()
}

// Controller walks a timeline's cursor, either manually or from a single
// cancellable playback goroutine.
type Controller struct {
	mu        sync.Mutex
	tl        *trace.Timeline
	speed     float64
	baseDelay time.Duration
	listeners []Listener
	logger    *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

type Option func(*Controller)

func WithBaseDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.baseDelay = d
		}
	}
}

func WithSpeed(speed float64) Option {
	return func(c *Controller) { c.speed = ClampSpeed(speed) }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewController(opts ...Option) *Controller {
	c := &Controller{
		speed:     1.0,
		baseDelay: DefaultBaseDelay,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Listen(l Listener) {
	c.mu.Lock()
	c.listeners = append(c.listeners, l)
	c.mu.Unlock()
}

// Load halts any playback and replaces the timeline. The cursor of tl is left
// where it is.
func (c *Controller) Load(tl *trace.Timeline) {
	c.Pause()
	c.mu.Lock()
	c.tl = tl
	c.mu.Unlock()
}

func (c *Controller) Timeline() *trace.Timeline {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tl
}

func (c *Controller) SetSpeed(speed float64) {
	c.mu.Lock()
	c.speed = ClampSpeed(speed)
	c.mu.Unlock()
}

func (c *Controller) Speed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

// Delay is the pause between two automatic steps at the current speed.
func (c *Controller) Delay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delayLocked()
}

func (c *Controller) StepForward() bool {
	return c.move(func(tl *trace.Timeline) bool { return tl.StepForward() })
}

func (c *Controller) StepBackward() bool {
	return c.move(func(tl *trace.Timeline) bool { return tl.StepBackward() })
}

func (c *Controller) SetPosition(pos int) bool {
	return c.move(func(tl *trace.Timeline) bool { return tl.SetPosition(pos) })
}

// Reset halts playback and rewinds to the initial snapshot.
func (c *Controller) Reset() {
	c.Pause()
	c.move(func(tl *trace.Timeline) bool {
		tl.Reset()
		return true
	})
}

// Stop halts playback, waits for the playback goroutine to exit and rewinds
// to the initial snapshot.
func (c *Controller) Stop() { c.Reset() }

// State returns the state and step visible at the cursor.
func (c *Controller) State() (trace.ArrayState, *trace.Step, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tl == nil {
		return trace.ArrayState{}, nil, false
	}
	return snapshot(c.tl)
}

func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tl == nil {
		return -1
	}
	return c.tl.Cursor()
}

func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tl == nil {
		return 0
	}
	return c.tl.Progress()
}

func (c *Controller) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done != nil
}

// Play starts stepping forward every Delay until the timeline ends, ctx is
// cancelled or Pause/Stop is called. Playing from the last position completes
// immediately.
func (c *Controller) Play(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tl == nil {
		return ErrNoTimeline
	}
	if c.done != nil {
		return ErrAlreadyPlaying
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done

	c.logger.Debug("playback started", "cursor", c.tl.Cursor(), "steps", c.tl.Len(), "speed", c.speed)
	go c.loop(ctx, done)
	return nil
}

// Pause halts playback and returns once the playback goroutine has exited.
func (c *Controller) Pause() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	if done == nil {
		return
	}
	cancel()
	<-done
}

// Wait blocks until the current playback ends.
func (c *Controller) Wait() {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (c *Controller) loop(ctx context.Context, done chan struct{}) {
	defer func() {
		c.mu.Lock()
		if c.done == done {
			c.cancel()
			c.cancel = nil
			c.done = nil
		}
		c.mu.Unlock()
		close(done)
	}()

	for {
		if ctx.Err() != nil {
			c.logger.Debug("playback paused", "cursor", c.Cursor())
			return
		}

		c.mu.Lock()
		moved := c.tl.StepForward()
		state, step, _ := snapshot(c.tl)
		listeners := c.listeners
		delay := c.delayLocked()
		c.mu.Unlock()

		if !moved {
			c.logger.Debug("playback complete")
			for _, l := range listeners {
				if l.Complete != nil {
					l.Complete()
				}
			}
			return
		}
		notify(listeners, state, step)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
	}
}

func (c *Controller) move(fn func(*trace.Timeline) bool) bool {
	c.mu.Lock()
	if c.tl == nil {
		c.mu.Unlock()
		return false
	}
	if !fn(c.tl) {
		c.mu.Unlock()
		return false
	}
	state, step, _ := snapshot(c.tl)
	listeners := c.listeners
	c.mu.Unlock()

	notify(listeners, state, step)
	return true
}

func (c *Controller) delayLocked() time.Duration {
	return time.Duration(float64(c.baseDelay) / c.speed)
}

func snapshot(tl *trace.Timeline) (trace.ArrayState, *trace.Step, bool) {
	state, ok := tl.CurrentState()
	if !ok {
		return trace.ArrayState{}, nil, false
	}
	if step, ok := tl.CurrentStep(); ok {
		return state, &step, true
	}
	return state, nil, true
}

func notify(listeners []Listener, state trace.ArrayState, step *trace.Step) {
	for _, l := range listeners {
		if l.Position != nil {
			l.Position(state, step)
		}
	}
}

func ClampSpeed(speed float64) float64 {
	return max(MinSpeed, min(MaxSpeed, speed))
}
