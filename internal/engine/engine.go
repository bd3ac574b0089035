// Package engine implements the lighting engine: the animation state
// machine, the zone/brightness model and the periodic render loop
// that drives the hardware backend.
//
// All state lives in a single Engine owned by the caller. One mutex
// serializes setters and render ticks, so a tick never observes a
// partially applied update and a setter never runs concurrently with
// a hardware write.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/smazurov/fourzone/internal/backend"
	"github.com/smazurov/fourzone/internal/color"
	"github.com/smazurov/fourzone/internal/effects"
	"github.com/smazurov/fourzone/internal/events"
	"github.com/smazurov/fourzone/internal/metrics"
	"github.com/smazurov/fourzone/internal/snapshot"
)

// ErrInvalidArgument marks rejected input: out-of-range speed or
// zone, unknown mode names, malformed colors. State is unchanged when
// it is returned.
var ErrInvalidArgument = errors.New("invalid argument")

// DefaultTickInterval is how often an active animation renders.
const DefaultTickInterval = 50 * time.Millisecond

// Defaults used when no snapshot exists yet.
const (
	defaultBrightness = 100
	defaultSpeed      = 5
)

// Config wires the engine's collaborators. Backend and Store are
// required; Bus and Metrics are optional.
type Config struct {
	Backend      backend.Backend
	Store        snapshot.Store
	Bus          *events.Bus
	Metrics      *metrics.Recorder
	Logger       *slog.Logger
	TickInterval time.Duration
}

// State is a copy of the engine's current state.
type State struct {
	Mode       effects.Mode
	Speed      int
	Brightness int
	Active     bool
	Colors     effects.Zones
}

// loopHandle identifies one run of the render loop. A stale loop
// whose handle no longer matches the engine's renders nothing, so a
// restart never double-drives the hardware.
type loopHandle struct {
	quit chan struct{}
}

// Engine owns the full lighting state and the render loop.
type Engine struct {
	mu      sync.Mutex
	backend backend.Backend
	store   snapshot.Store
	bus     *events.Bus
	rec     *metrics.Recorder
	logger  *slog.Logger

	tickInterval time.Duration
	now          func() time.Time

	zones      effects.Zones // base colors, before brightness scaling
	brightness int
	mode       effects.Mode
	speed      int

	active    bool
	startTime time.Time
	loop      *loopHandle
	wg        sync.WaitGroup
}

// New creates an idle engine with default state (static mode, full
// brightness, all zones off).
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Engine{
		backend:      cfg.Backend,
		store:        cfg.Store,
		bus:          cfg.Bus,
		rec:          cfg.Metrics,
		logger:       logger,
		tickInterval: interval,
		now:          time.Now,
		brightness:   defaultBrightness,
		mode:         effects.Static,
		speed:        defaultSpeed,
	}
}

// Start loads the persisted snapshot, pushes the restored colors to
// the hardware and resumes a previously active animation. A missing
// snapshot means first run and selects the defaults.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap, err := e.store.Load()
	switch {
	case errors.Is(err, snapshot.ErrNotFound):
		e.logger.Info("No saved lighting state, using defaults")
	case err != nil:
		e.logger.Warn("Failed to load lighting state, using defaults", "error", err)
	default:
		e.mode = snap.Mode
		e.speed = snap.Speed
		e.brightness = snap.Brightness
		e.zones = snap.Colors
		e.logger.Info("Restored lighting state",
			"mode", e.mode.String(),
			"speed", e.speed,
			"brightness", e.brightness)
	}

	writeErr := e.writeScaledLocked()

	// Resume the animation exactly as a mode change would, but keep
	// the restored colors and brightness.
	if e.mode != effects.Static {
		e.startLocked()
	}
	return writeErr
}

// Close stops the render loop, restores the static colors and waits
// for any in-flight tick to finish so nothing races hardware
// teardown.
func (e *Engine) Close() error {
	err := e.Stop()
	e.wg.Wait()
	return err
}

// State returns a copy of the current lighting state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{
		Mode:       e.mode,
		Speed:      e.speed,
		Brightness: e.brightness,
		Active:     e.active,
		Colors:     e.zones,
	}
}

// SetMode switches the animation mode. Any running animation stops,
// the static colors are restored, and a non-static mode starts its
// loop from a fresh cycle. The new state is persisted even when the
// hardware write fails.
func (e *Engine) SetMode(mode effects.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidArgument, uint32(mode))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()
	writeErr := e.writeScaledLocked()
	e.mode = mode
	if mode != effects.Static {
		e.startLocked()
	}
	e.persistLocked()
	e.publish(events.ModeChangedEvent{
		Mode:      mode.String(),
		Active:    e.active,
		Timestamp: e.now().UTC().Format(time.RFC3339),
	})
	return writeErr
}

// SetModeName switches the animation mode by name.
func (e *Engine) SetModeName(name string) error {
	mode, err := effects.ParseMode(name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return e.SetMode(mode)
}

// SetSpeed changes the animation speed. A running animation restarts
// so the new cycle length takes effect from a clean phase.
func (e *Engine) SetSpeed(speed int) error {
	if speed < 1 || speed > 10 {
		return fmt.Errorf("%w: speed %d out of range [1,10]", ErrInvalidArgument, speed)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.speed = speed
	if e.active {
		e.stopLocked()
		e.startLocked()
	}
	e.persistLocked()
	e.publish(events.SpeedChangedEvent{
		Speed:     speed,
		Timestamp: e.now().UTC().Format(time.RFC3339),
	})
	return nil
}

// SetZoneColor sets one zone's base color. Animations stop and the
// mode drops back to static.
func (e *Engine) SetZoneColor(zone int, c color.RGB) error {
	if zone < 0 || zone >= effects.ZoneCount {
		return fmt.Errorf("%w: zone %d out of range [0,%d)", ErrInvalidArgument, zone, effects.ZoneCount)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()
	e.mode = effects.Static
	e.zones[zone] = c
	writeErr := e.writeScaledLocked()
	e.persistLocked()
	e.publish(events.ZoneColorChangedEvent{
		Zone:      zone,
		Color:     c.Hex(),
		Timestamp: e.now().UTC().Format(time.RFC3339),
	})
	return writeErr
}

// SetAllColor sets every zone's base color in one hardware batch.
// Animations stop and the mode drops back to static.
func (e *Engine) SetAllColor(c color.RGB) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()
	e.mode = effects.Static
	for i := range e.zones {
		e.zones[i] = c
	}
	writeErr := e.writeScaledLocked()
	e.persistLocked()
	e.publish(events.ZoneColorChangedEvent{
		Zone:      events.AllZones,
		Color:     c.Hex(),
		Timestamp: e.now().UTC().Format(time.RFC3339),
	})
	return writeErr
}

// SetBrightness changes the global brightness, clamped to [0,100],
// and rewrites all zones from the stored base colors. The stored
// model is the single source of truth; the engine never reads colors
// back from the hardware, which would race an in-flight tick.
func (e *Engine) SetBrightness(level int) error {
	if level < 0 {
		level = 0
	} else if level > 100 {
		level = 100
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.brightness = level
	var writeErr error
	if !e.active {
		writeErr = e.writeScaledLocked()
	}
	e.persistLocked()
	e.publish(events.BrightnessChangedEvent{
		Brightness: level,
		Timestamp:  e.now().UTC().Format(time.RFC3339),
	})
	return writeErr
}

// Stop cancels the animation loop and restores every zone to its
// base color scaled by the current brightness. The mode is kept so a
// later start can resume it.
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()
	return e.writeScaledLocked()
}

// Tick renders one animation frame. It is a no-op while idle or in
// static mode. The render loop funnels through here, and tests can
// call it directly.
func (e *Engine) Tick() error {
	return e.tickFrame(nil)
}

// tickFrame renders one frame. A non-nil handle must still be the
// engine's current loop, otherwise the frame belongs to a superseded
// animation and is dropped.
func (e *Engine) tickFrame(h *loopHandle) error {
	start := time.Now()

	e.mu.Lock()
	if h != nil && e.loop != h {
		e.mu.Unlock()
		return nil
	}
	if !e.active || e.mode == effects.Static {
		e.mu.Unlock()
		return nil
	}
	fn, ok := effects.Lookup(e.mode)
	if !ok {
		e.mu.Unlock()
		return nil
	}

	frame := fn(e.now().Sub(e.startTime), e.speed, e.zones)
	for i := range frame {
		frame[i] = frame[i].Scale(e.brightness)
	}
	err := e.backend.WriteZoneColors(frame)
	e.mu.Unlock()

	if err != nil {
		if e.rec != nil {
			e.rec.HardwareError("write")
		}
		e.logger.Warn("Animation frame write failed", "error", err)
		return err
	}
	if e.rec != nil {
		e.rec.ObserveTick(time.Since(start).Seconds())
	}
	return nil
}

// startLocked arms the render loop for the current mode. The cycle
// clock restarts from zero.
func (e *Engine) startLocked() {
	e.startTime = e.now()
	e.active = true
	h := &loopHandle{quit: make(chan struct{})}
	e.loop = h
	e.wg.Add(1)
	go e.run(h)
}

// stopLocked disarms the render loop. The loop goroutine exits on its
// own; a frame it may already be blocked on becomes a no-op because
// the handle no longer matches.
func (e *Engine) stopLocked() {
	if e.loop != nil {
		close(e.loop.quit)
		e.loop = nil
	}
	e.active = false
}

// run is the render loop. The ticker's capacity-one channel means a
// slow frame drops intervals instead of queuing them, so at most one
// frame is ever in flight.
func (e *Engine) run(h *loopHandle) {
	defer e.wg.Done()
	ticker := time.NewTicker(e.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.quit:
			return
		case <-ticker.C:
			_ = e.tickFrame(h)
		}
	}
}

// writeScaledLocked pushes base colors scaled by brightness to the
// hardware.
func (e *Engine) writeScaledLocked() error {
	out := e.zones
	for i := range out {
		out[i] = out[i].Scale(e.brightness)
	}
	if err := e.backend.WriteZoneColors(out); err != nil {
		if e.rec != nil {
			e.rec.HardwareError("write")
		}
		return fmt.Errorf("hardware write failed: %w", err)
	}
	return nil
}

// persistLocked saves the current snapshot. Failures are logged and
// counted but never surfaced; persistence is best-effort.
func (e *Engine) persistLocked() {
	snap := snapshot.Snapshot{
		Mode:       e.mode,
		Speed:      e.speed,
		Brightness: e.brightness,
		Colors:     e.zones,
	}
	if err := e.store.Save(snap); err != nil {
		if e.rec != nil {
			e.rec.PersistFailure()
		}
		e.logger.Warn("Failed to persist lighting state", "error", err)
	}
}

// publish sends an event if a bus is attached.
func (e *Engine) publish(ev events.Event) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}
