package prompter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
)

// SessionOptions configures a Session.
type SessionOptions struct {
	MinSpeed  float64
	MaxSpeed  float64
	SpeedStep float64
	// LoadFile reads a script for the load command.
	LoadFile func(path string) (string, error)
	Logger   *slog.Logger
}

// DefaultSessionOptions returns the 0.5x to 3.0x speed range in 0.1 steps.
func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		MinSpeed:  0.5,
		MaxSpeed:  3.0,
		SpeedStep: 0.1,
	}
}

// Session binds a controller, a terminal surface and keyboard input.
type Session struct {
	controller *Controller
	surface    *TerminalSurface
	opts       SessionOptions
	logger     *slog.Logger

	mu          sync.Mutex
	commandMode bool
	command     []rune
}

// NewSession creates the controller for surface and wires its state into the
// status bar. opts are applied to the controller after the session's own.
func NewSession(surface *TerminalSurface, sopts SessionOptions, opts ...Option) *Session {
	if sopts.SpeedStep <= 0 {
		sopts.SpeedStep = DefaultSessionOptions().SpeedStep
	}
	if sopts.MinSpeed <= 0 {
		sopts.MinSpeed = DefaultSessionOptions().MinSpeed
	}
	if sopts.MaxSpeed < sopts.MinSpeed {
		sopts.MaxSpeed = math.Max(sopts.MinSpeed, DefaultSessionOptions().MaxSpeed)
	}
	logger := sopts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Session{surface: surface, opts: sopts, logger: logger}
	all := append([]Option{WithLogger(logger)}, opts...)
	all = append(all, WithOnChange(s.onChange))
	s.controller = NewController(surface, all...)
	s.onChange(s.controller.State())
	return s
}

// Controller returns the session's controller.
func (s *Session) Controller() *Controller {
	return s.controller
}

// Load loads text, showing a notice instead when it is blank.
func (s *Session) Load(text string) error {
	if err := s.controller.Load(text); err != nil {
		s.showError(err)
		return err
	}
	return nil
}

// Run reads keys from r until quit, EOF or ctx is done. Keys are read on a
// separate goroutine that exits once Run has returned and its pending read
// completes; a read blocked on an idle terminal lasts until the next byte or
// until r is closed.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	if r == nil {
		return fmt.Errorf("session: reader is nil")
	}
	keys := make(chan Key)
	errc := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		dec := NewKeyDecoder(bufio.NewReader(r))
		for {
			k, err := dec.ReadKey()
			if err != nil {
				errc <- err
				return
			}
			select {
			case keys <- k:
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	defer s.controller.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errc:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("session: read key: %w", err)
		case k := <-keys:
			if s.HandleKey(k) {
				return nil
			}
		}
	}
}

// Resize propagates new terminal dimensions and re-centers the current line.
func (s *Session) Resize(width, height int) {
	s.surface.Resize(width, height)
	s.controller.Refresh()
}

// HandleKey applies one key press and reports whether the session should end.
// While the command line is open every shortcut is suppressed.
func (s *Session) HandleKey(k Key) bool {
	if s.surface.Notice() != "" {
		s.surface.SetNotice("")
		return false
	}
	s.mu.Lock()
	inCommand := s.commandMode
	s.mu.Unlock()
	if inCommand {
		return s.handleCommandKey(k)
	}
	switch k.Kind {
	case KeySpace:
		s.controller.Toggle()
	case KeyRight:
		s.controller.StepForward()
	case KeyLeft:
		s.controller.StepBackward()
	case KeyUp:
		s.adjustSpeed(1)
	case KeyDown:
		s.adjustSpeed(-1)
	case KeyCtrlC:
		return true
	case KeyRune:
		return s.handleRune(k.Rune)
	}
	return false
}

func (s *Session) handleRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		return true
	case 'r', 'R':
		s.controller.ResetToStart()
	case '+', '=':
		s.adjustSpeed(1)
	case '-', '_':
		s.adjustSpeed(-1)
	case ']':
		s.adjustSize(0.5)
	case '[':
		s.adjustSize(-0.5)
	case 'a', 'A':
		st := s.controller.State().Style
		st.Align = (st.Align + 1) % (AlignJustify + 1)
		s.controller.SetStyle(st)
	case 'h', 'H':
		s.surface.SetStatusVisible(!s.surface.StatusVisible())
		s.controller.Refresh()
	case ':':
		s.mu.Lock()
		s.commandMode = true
		s.command = s.command[:0]
		s.mu.Unlock()
		s.surface.SetPrompt("", true)
	}
	return false
}

func (s *Session) handleCommandKey(k Key) bool {
	s.mu.Lock()
	switch k.Kind {
	case KeyEscape, KeyCtrlC:
		s.commandMode = false
		s.command = s.command[:0]
		s.mu.Unlock()
		s.surface.SetPrompt("", false)
		return false
	case KeyEnter:
		line := string(s.command)
		s.commandMode = false
		s.command = s.command[:0]
		s.mu.Unlock()
		s.surface.SetPrompt("", false)
		return s.runCommand(line)
	case KeyBackspace:
		if len(s.command) > 0 {
			s.command = s.command[:len(s.command)-1]
		}
	case KeySpace:
		s.command = append(s.command, ' ')
	case KeyRune:
		s.command = append(s.command, k.Rune)
	}
	text := string(s.command)
	s.mu.Unlock()
	s.surface.SetPrompt(text, true)
	return false
}

// runCommand executes a command line and reports whether to quit.
func (s *Session) runCommand(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name := strings.ToLower(fields[0])
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
	s.logger.Debug("command", slog.String("name", name), slog.String("arg", arg))
	switch name {
	case "q", "quit", "exit":
		return true
	case "reset":
		s.controller.ResetToStart()
	case "play":
		s.controller.Start()
	case "pause", "stop":
		s.controller.Stop()
	case "speed":
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil || f <= 0 {
			s.surface.SetNotice(fmt.Sprintf("speed: invalid value %q", arg))
			return false
		}
		s.controller.SetSpeed(s.clampSpeed(f))
	case "size":
		f, err := strconv.ParseFloat(strings.TrimSuffix(arg, "rem"), 64)
		if err != nil || f <= 0 {
			s.surface.SetNotice(fmt.Sprintf("size: invalid value %q", arg))
			return false
		}
		st := s.controller.State().Style
		st.FontSizeRem = f
		s.controller.SetStyle(st)
	case "align":
		a, err := ParseAlign(arg)
		if err != nil {
			s.surface.SetNotice(err.Error())
			return false
		}
		st := s.controller.State().Style
		st.Align = a
		s.controller.SetStyle(st)
	case "theme":
		t, ok := ThemeByName(arg)
		if !ok {
			s.surface.SetNotice(fmt.Sprintf("theme: unknown theme %q", arg))
			return false
		}
		s.surface.SetTheme(t)
	case "load":
		s.loadFile(arg)
	default:
		s.surface.SetNotice(fmt.Sprintf("unknown command %q", name))
	}
	return false
}

func (s *Session) loadFile(path string) {
	if path == "" {
		s.surface.SetNotice("load: path is required")
		return
	}
	if s.opts.LoadFile == nil {
		s.surface.SetNotice("load: not available")
		return
	}
	text, err := s.opts.LoadFile(path)
	if err != nil {
		s.logger.Warn("load script failed", slog.String("path", path), slog.Any("error", err))
		s.surface.SetNotice(fmt.Sprintf("load: %v", err))
		return
	}
	_ = s.Load(text)
}

func (s *Session) showError(err error) {
	var empty *EmptyInputError
	if errors.As(err, &empty) {
		s.surface.SetNotice(empty.Error())
		return
	}
	s.surface.SetNotice(err.Error())
}

func (s *Session) adjustSpeed(dir int) {
	next := s.controller.Speed() + float64(dir)*s.opts.SpeedStep
	s.controller.SetSpeed(s.clampSpeed(next))
}

func (s *Session) clampSpeed(f float64) float64 {
	f = math.Round(f*100) / 100
	return math.Min(s.opts.MaxSpeed, math.Max(s.opts.MinSpeed, f))
}

func (s *Session) adjustSize(delta float64) {
	st := s.controller.State().Style
	st.FontSizeRem = math.Min(4, math.Max(0.5, st.FontSizeRem+delta))
	s.controller.SetStyle(st)
}

func (s *Session) onChange(st State) {
	s.surface.SetStatus(StatusLine(st))
}

// StatusLine renders the status bar text for a state.
func StatusLine(st State) string {
	if !st.Loaded {
		return "no script loaded  : command  q quit"
	}
	label := "Play"
	if st.Playing {
		label = "Pause"
	}
	word := st.WordIndex + 1
	if st.WordIndex < 0 {
		word = 0
	}
	return fmt.Sprintf("␣ %s  %.1f×  %.1frem %s  word %d/%d  ←/→ step  r reset  +/- speed  : command  h hide  q quit",
		label, effectiveSpeed(st.Speed), st.Style.FontSizeRem, st.Style.Align, word, st.Words)
}
