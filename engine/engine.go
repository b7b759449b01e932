package engine

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/input"
	"github.com/lixenwraith/bouncer/parameter"
	"github.com/lixenwraith/bouncer/physics"
	"github.com/lixenwraith/bouncer/status"
)

// ErrNoSurface is returned by Run when no SurfaceOpener was configured
var ErrNoSurface = errors.New("no surface configured")

// Engine owns the frame buffer and the entity list and drives the fixed-step loop
// All state is touched from the goroutine calling Run or Step only
type Engine struct {
	cfg      physics.Config
	viewport core.ViewportSize
	buffer   *core.FrameBuffer
	entities []Entity

	open      SurfaceOpener
	clock     Clock
	exitKeys  []input.Key
	onContact ContactHandler

	// Cached metric pointers
	metrics   *status.Registry
	frames    *atomic.Int64
	overruns  *atomic.Int64
	contacts  *atomic.Int64
	entityCnt *atomic.Int64
	fps       *status.AtomicFloat
	frameWork *status.AtomicFloat
}

// Option configures an Engine
type Option func(*Engine)

// WithSurface sets the display surface factory used by Run
func WithSurface(open SurfaceOpener) Option {
	return func(e *Engine) { e.open = open }
}

// WithClock replaces the real time provider
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithExitKeys sets the keys that end Run; defaults to the quit bindings
func WithExitKeys(keys ...input.Key) Option {
	return func(e *Engine) { e.exitKeys = keys }
}

// WithContactHandler registers a callback for boundary contacts
func WithContactHandler(h ContactHandler) Option {
	return func(e *Engine) { e.onContact = h }
}

// WithMetrics publishes frame statistics into r
func WithMetrics(r *status.Registry) Option {
	return func(e *Engine) { e.metrics = r }
}

// New creates an engine with a zeroed frame buffer for viewport
func New(viewport core.ViewportSize, cfg physics.Config, opts ...Option) (*Engine, error) {
	if !viewport.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", core.ErrInvalidViewport, viewport.Width, viewport.Height)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:      cfg,
		viewport: viewport,
		buffer:   core.NewFrameBuffer(viewport),
		clock:    NewTimeProvider(),
		exitKeys: input.DefaultBindings().Keys(input.ActionQuit),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.metrics == nil {
		e.metrics = status.NewRegistry()
	}

	e.frames = e.metrics.Ints.Get(status.KeyFrames)
	e.overruns = e.metrics.Ints.Get(status.KeyOverruns)
	e.contacts = e.metrics.Ints.Get(status.KeyContacts)
	e.entityCnt = e.metrics.Ints.Get(status.KeyEntities)
	e.fps = e.metrics.Floats.Get(status.KeyFPS)
	e.frameWork = e.metrics.Floats.Get(status.KeyFrameWork)

	return e, nil
}

// Register appends an entity; registration order is update and draw order
// Entities whose shape cannot fit the viewport are rejected
func (e *Engine) Register(ent Entity) error {
	if err := physics.CheckFit(ent.Shape().EffectiveSize(), e.viewport); err != nil {
		return fmt.Errorf("register entity %d: %w", len(e.entities), err)
	}
	e.entities = append(e.entities, ent)
	e.entityCnt.Store(int64(len(e.entities)))
	return nil
}

// Entities returns the registered entities in order
func (e *Engine) Entities() []Entity {
	return e.entities
}

// Buffer returns the frame buffer
func (e *Engine) Buffer() *core.FrameBuffer {
	return e.buffer
}

// Viewport returns the fixed viewport size
func (e *Engine) Viewport() core.ViewportSize {
	return e.viewport
}

// Config returns the tuning the engine was built with
func (e *Engine) Config() physics.Config {
	return e.cfg
}

// Metrics returns the registry frame statistics are published to
func (e *Engine) Metrics() *status.Registry {
	return e.metrics
}

// Step clears the buffer and runs one update for every entity with keys held
func (e *Engine) Step(keys input.KeySet) {
	e.buffer.Clear()
	for _, ent := range e.entities {
		e.update(ent, keys)
	}
	e.frames.Add(1)
}

// update runs the per-entity sequence: velocity, position, bounds, context, input, draw
func (e *Engine) update(ent Entity, keys input.KeySet) {
	s := ent.State()

	physics.IntegrateVelocity(s, ent.WeightFactor(), e.cfg)
	physics.IntegratePosition(s)

	bounciness, ok := ent.Bounciness()
	if !ok {
		bounciness = e.cfg.DefaultBounciness
	}
	c := physics.ResolveBounds(s, ent.Shape().EffectiveSize(), bounciness, e.viewport, e.cfg)
	if c.Any() {
		e.contacts.Add(1)
		if e.onContact != nil {
			e.onContact(ent, c)
		}
	}

	s.SetViewport(e.viewport)
	ent.HandleInput(keys)

	Composite(e.buffer, ent.Draw(), s.Position)
}

// Run opens the surface and loops until it closes or an exit key is held
// Presentation failures end the run with an error
func (e *Engine) Run(title string) error {
	if e.open == nil {
		return ErrNoSurface
	}

	surface, err := e.open(title, e.viewport)
	if err != nil {
		return fmt.Errorf("open surface: %w", err)
	}
	defer surface.Close()

	target := e.cfg.FrameDuration()
	if rl, ok := surface.(RateLimiter); ok {
		rl.LimitUpdateRate(target)
	}

	var lastStart time.Time
	for surface.IsOpen() {
		start := e.clock.Now()

		keys := surface.DepressedKeys()
		if keys.Any(e.exitKeys...) {
			break
		}

		if !lastStart.IsZero() {
			if period := start.Sub(lastStart); period > 0 {
				e.fps.Smooth(float64(time.Second)/float64(period), parameter.FPSSmoothing)
			}
		}
		lastStart = start

		e.Step(keys)

		if err := surface.Present(e.buffer.Pixels(), e.viewport.Width, e.viewport.Height); err != nil {
			return fmt.Errorf("present frame %d: %w", e.frames.Load(), err)
		}

		elapsed := e.clock.Now().Sub(start)
		e.frameWork.Set(float64(elapsed) / float64(time.Millisecond))
		if wait := target - elapsed; wait > 0 {
			e.clock.Sleep(wait)
		} else {
			e.overruns.Add(1)
		}
	}

	return nil
}
