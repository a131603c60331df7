package prompter

import (
	"io"
	"log/slog"
	"math"
	"time"
)

// DefaultBaseDelay is the pace at speed factor 1.0.
const DefaultBaseDelay = 350 * time.Millisecond

// Option configures a Controller.
type Option func(*controllerConfig)

type controllerConfig struct {
	baseDelay time.Duration
	speed     float64
	style     Style
	clock     Clock
	logger    *slog.Logger
	onChange  func(State)
}

func defaultControllerConfig() controllerConfig {
	return controllerConfig{
		baseDelay: DefaultBaseDelay,
		speed:     1,
		style:     DefaultStyle(),
		clock:     realClock{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithBaseDelay sets the delay between advances at speed 1.0.
func WithBaseDelay(d time.Duration) Option {
	return func(cfg *controllerConfig) {
		if d > 0 {
			cfg.baseDelay = d
		}
	}
}

// WithSpeed sets the initial speed factor.
func WithSpeed(factor float64) Option {
	return func(cfg *controllerConfig) {
		cfg.speed = factor
	}
}

// WithStyle sets the initial style passed to the surface.
func WithStyle(style Style) Option {
	return func(cfg *controllerConfig) {
		cfg.style = style
	}
}

// WithClock replaces the timer source.
func WithClock(clock Clock) Option {
	return func(cfg *controllerConfig) {
		if clock != nil {
			cfg.clock = clock
		}
	}
}

// WithLogger sets the logger used for playback events.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *controllerConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithOnChange registers fn to receive a snapshot after every state change.
// fn runs outside the controller lock and may call back into the controller.
func WithOnChange(fn func(State)) Option {
	return func(cfg *controllerConfig) {
		cfg.onChange = fn
	}
}

// Pace returns the delay between advances for a speed factor using
// DefaultBaseDelay.
func Pace(speed float64) time.Duration {
	return paceFor(DefaultBaseDelay, speed)
}

func paceFor(base time.Duration, speed float64) time.Duration {
	return time.Duration(float64(base) / effectiveSpeed(speed))
}

// effectiveSpeed maps a non-positive or non-numeric factor to 1.0.
func effectiveSpeed(speed float64) float64 {
	if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return 1
	}
	return speed
}

// Clock schedules deferred calls.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a scheduled call that can be cancelled.
type Timer interface {
	Stop() bool
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
