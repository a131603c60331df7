package prompter

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// State is a snapshot of the controller.
type State struct {
	Loaded    bool
	Playing   bool
	Index     int
	Units     int
	Words     int
	WordIndex int
	Speed     float64
	Pace      time.Duration
	Style     Style
}

// Controller owns the unit sequence, the cursor and the playback timer of one
// teleprompter session. It is safe for concurrent use.
type Controller struct {
	mu      sync.Mutex
	surface Surface
	cfg     controllerConfig
	units   []Unit
	words   int
	cursor  Cursor
	speed   float64
	style   Style
	playing bool
	timer   Timer
	gen     uint64
	closed  bool
}

// NewController returns a controller drawing on surface.
func NewController(surface Surface, opts ...Option) *Controller {
	cfg := defaultControllerConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	c := &Controller{
		surface: surface,
		cfg:     cfg,
		speed:   cfg.speed,
		style:   cfg.style.normalized(),
	}
	if styler, ok := surface.(Styler); ok {
		styler.ApplyStyle(c.style)
	}
	return c
}

// Load tokenizes text and replaces the current script. On error the
// previously loaded script is left untouched.
func (c *Controller) Load(text string) error {
	units, err := Tokenize(text)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	c.mu.Lock()
	c.stopLocked()
	c.units = units
	c.words = CountWords(units)
	c.cursor = Cursor{units: units}
	c.cursor.Reset()
	if c.surface != nil {
		c.surface.RenderUnits(units)
	}
	c.applyHighlightLocked()
	c.cfg.logger.Debug("script loaded",
		slog.Int("units", len(units)),
		slog.Int("words", c.words),
	)
	st := c.stateLocked()
	c.mu.Unlock()
	c.notify(st)
	return nil
}

// Start begins playback. It is a no-op when already playing or when no
// script is loaded.
func (c *Controller) Start() {
	c.mu.Lock()
	if !c.startLocked() {
		c.mu.Unlock()
		return
	}
	st := c.stateLocked()
	c.mu.Unlock()
	c.notify(st)
}

// Stop cancels the pending advance and ends playback. It is idempotent.
func (c *Controller) Stop() {
	c.mu.Lock()
	changed := c.stopLocked()
	st := c.stateLocked()
	c.mu.Unlock()
	if changed {
		c.notify(st)
	}
}

// Toggle stops playback when playing and starts it otherwise. It is a no-op
// when no script is loaded.
func (c *Controller) Toggle() {
	c.mu.Lock()
	if len(c.units) == 0 {
		c.mu.Unlock()
		return
	}
	if c.playing {
		c.stopLocked()
	} else {
		c.startLocked()
	}
	st := c.stateLocked()
	c.mu.Unlock()
	c.notify(st)
}

// StepForward stops playback and moves to the next word.
func (c *Controller) StepForward() {
	c.manualStep(true)
}

// StepBackward stops playback and moves to the previous word.
func (c *Controller) StepBackward() {
	c.manualStep(false)
}

func (c *Controller) manualStep(forward bool) {
	c.mu.Lock()
	c.stopLocked()
	if forward {
		c.stepForwardLocked()
	} else {
		c.stepBackwardLocked()
	}
	st := c.stateLocked()
	c.mu.Unlock()
	c.notify(st)
}

// ResetToStart stops playback and returns the cursor to the first word.
func (c *Controller) ResetToStart() {
	c.mu.Lock()
	c.stopLocked()
	c.cursor.Reset()
	if len(c.units) > 0 {
		c.applyHighlightLocked()
	}
	st := c.stateLocked()
	c.mu.Unlock()
	c.notify(st)
}

// SetSpeed updates the speed factor. While playing, the pending advance is
// cancelled and rescheduled at the new pace.
func (c *Controller) SetSpeed(factor float64) {
	c.mu.Lock()
	c.speed = factor
	if c.playing {
		c.scheduleLocked()
	}
	st := c.stateLocked()
	c.mu.Unlock()
	c.notify(st)
}

// Speed returns the configured speed factor.
func (c *Controller) Speed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

// Pace returns the current delay between advances.
func (c *Controller) Pace() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return paceFor(c.cfg.baseDelay, c.speed)
}

// SetStyle passes style to the surface when it implements Styler and
// re-centers the current line, since layout may have changed.
func (c *Controller) SetStyle(style Style) {
	c.mu.Lock()
	c.style = style.normalized()
	if styler, ok := c.surface.(Styler); ok {
		styler.ApplyStyle(c.style)
		if len(c.units) > 0 {
			c.applyHighlightLocked()
		}
	}
	st := c.stateLocked()
	c.mu.Unlock()
	c.notify(st)
}

// Refresh re-applies the highlight and re-centers the current line, for
// surfaces whose layout changed underneath the controller.
func (c *Controller) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.units) > 0 {
		c.applyHighlightLocked()
	}
}

// Units returns a copy of the loaded units.
func (c *Controller) Units() []Unit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.units)
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Close stops playback and detaches the surface. Later calls are no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	c.stopLocked()
	c.closed = true
	c.surface = nil
	c.mu.Unlock()
}

func (c *Controller) startLocked() bool {
	if c.closed || c.playing || len(c.units) == 0 {
		return false
	}
	c.playing = true
	c.scheduleLocked()
	c.cfg.logger.Debug("playback started",
		slog.Float64("speed", c.speed),
		slog.Duration("pace", paceFor(c.cfg.baseDelay, c.speed)),
	)
	return true
}

func (c *Controller) stopLocked() bool {
	c.cancelLocked()
	if !c.playing {
		return false
	}
	c.playing = false
	c.cfg.logger.Debug("playback stopped", slog.Int("index", c.cursor.Index()))
	return true
}

// scheduleLocked cancels any pending advance before arming a new one.
func (c *Controller) scheduleLocked() {
	c.cancelLocked()
	gen := c.gen
	c.timer = c.cfg.clock.AfterFunc(paceFor(c.cfg.baseDelay, c.speed), func() {
		c.advance(gen)
	})
}

func (c *Controller) cancelLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// advance runs when a scheduled timer fires. A timer cancelled after it
// already fired carries a stale generation and does nothing.
func (c *Controller) advance(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.playing {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.stepForwardLocked()
	if c.playing && !c.cursor.AtEnd() {
		c.scheduleLocked()
	} else {
		c.stopLocked()
	}
	st := c.stateLocked()
	c.mu.Unlock()
	c.notify(st)
}

func (c *Controller) stepForwardLocked() {
	if len(c.units) == 0 {
		return
	}
	if !c.cursor.Forward() {
		c.stopLocked()
		return
	}
	c.applyHighlightLocked()
}

func (c *Controller) stepBackwardLocked() {
	if c.cursor.Backward() {
		c.applyHighlightLocked()
	}
}

func (c *Controller) applyHighlightLocked() {
	if c.surface == nil {
		return
	}
	index := c.cursor.Index()
	mark := -1
	if u, ok := c.cursor.Current(); ok && u.Advanceable() {
		mark = index
	}
	c.surface.MarkCurrent(mark)
	if _, ok := c.cursor.Current(); !ok {
		return
	}
	c.surface.ScrollTo(CenterOffset(c.surface.Geometry(index)))
}

func (c *Controller) stateLocked() State {
	return State{
		Loaded:    len(c.units) > 0,
		Playing:   c.playing,
		Index:     c.cursor.Index(),
		Units:     len(c.units),
		Words:     c.words,
		WordIndex: c.cursor.WordIndex(),
		Speed:     c.speed,
		Pace:      paceFor(c.cfg.baseDelay, c.speed),
		Style:     c.style,
	}
}

func (c *Controller) notify(st State) {
	if c.cfg.onChange != nil {
		c.cfg.onChange(st)
	}
}
