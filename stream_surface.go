package prompter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// StreamSurface writes the script to an io.Writer as the cursor reaches it.
// It suits pipes and dumb terminals where nothing can be redrawn.
type StreamSurface struct {
	mu      sync.Mutex
	w       io.Writer
	units   []Unit
	written int
	endedNL bool
	err     error
}

// NewStreamSurface returns a surface writing to w.
func NewStreamSurface(w io.Writer) *StreamSurface {
	return &StreamSurface{w: w}
}

// RenderUnits starts a new script. Nothing is written until a unit is marked.
func (s *StreamSurface) RenderUnits(units []Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = units
	s.written = 0
}

// MarkCurrent writes every unit up to and including index.
func (s *StreamSurface) MarkCurrent(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 {
		return
	}
	s.writeThroughLocked(index + 1)
}

// ScrollTo is a no-op: streamed output cannot scroll.
func (s *StreamSurface) ScrollTo(float64) {}

// Geometry returns the zero Geometry.
func (s *StreamSurface) Geometry(int) Geometry {
	return Geometry{}
}

// Finish writes the units not reached yet and terminates the last line.
func (s *StreamSurface) Finish() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeThroughLocked(len(s.units))
	s.endLineLocked()
	return s.err
}

// EndLine terminates the last written line without writing the rest.
func (s *StreamSurface) EndLine() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endLineLocked()
	return s.err
}

func (s *StreamSurface) endLineLocked() {
	if s.written > 0 && !s.endedNL && s.err == nil {
		_, s.err = io.WriteString(s.w, "\n")
		s.endedNL = true
	}
}

// Err returns the first write error.
func (s *StreamSurface) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *StreamSurface) writeThroughLocked(end int) {
	if end > len(s.units) {
		end = len(s.units)
	}
	if s.err != nil || end <= s.written {
		return
	}
	var b strings.Builder
	for _, u := range s.units[s.written:end] {
		b.WriteString(u.Literal())
	}
	s.written = end
	text := b.String()
	if text == "" {
		return
	}
	s.endedNL = strings.HasSuffix(text, "\n")
	_, s.err = io.WriteString(s.w, text)
}

// PlayRequest configures Play.
type PlayRequest struct {
	Text      string
	Writer    io.Writer
	Speed     float64
	BaseDelay time.Duration
	Clock     Clock
	Logger    *slog.Logger
}

// Play streams Text to Writer one word per pace interval and returns when
// the last word is reached or ctx is done.
func Play(ctx context.Context, req PlayRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("play: writer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	surface := NewStreamSurface(req.Writer)
	var (
		mu      sync.Mutex
		started bool
		once    sync.Once
	)
	done := make(chan struct{})
	opts := []Option{
		WithSpeed(req.Speed),
		WithBaseDelay(req.BaseDelay),
		WithClock(req.Clock),
		WithLogger(req.Logger),
		WithOnChange(func(st State) {
			mu.Lock()
			defer mu.Unlock()
			if st.Playing {
				started = true
				return
			}
			if started {
				once.Do(func() { close(done) })
			}
		}),
	}
	c := NewController(surface, opts...)
	if err := c.Load(req.Text); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	c.Start()
	if !c.State().Playing {
		once.Do(func() { close(done) })
	}
	finish := surface.Finish
	var retErr error
	select {
	case <-done:
	case <-ctx.Done():
		retErr = ctx.Err()
		finish = surface.EndLine
	}
	c.Close()
	if err := finish(); err != nil && retErr == nil {
		retErr = fmt.Errorf("play: write: %w", err)
	}
	return retErr
}
