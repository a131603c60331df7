package prompter

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/muesli/reflow/truncate"
)

const (
	defaultTabWidth      = 4
	defaultMargin        = 2
	defaultScrollFrames  = 6
	defaultScrollFrameMs = 16
)

// TerminalOptions configures a TerminalSurface.
type TerminalOptions struct {
	Width      int
	Height     int
	Theme      Theme
	TabWidth   int
	Margin     int
	ShowStatus bool
	// ScrollFrames is the number of frames a smooth scroll takes. Zero or one
	// jumps straight to the target.
	ScrollFrames int
	FrameDelay   time.Duration
}

// DefaultTerminalOptions returns an 80x24 surface with the default theme.
func DefaultTerminalOptions() TerminalOptions {
	return TerminalOptions{
		Width:        80,
		Height:       24,
		Theme:        DefaultTheme(),
		TabWidth:     defaultTabWidth,
		Margin:       defaultMargin,
		ShowStatus:   true,
		ScrollFrames: defaultScrollFrames,
		FrameDelay:   defaultScrollFrameMs * time.Millisecond,
	}
}

// TerminalSurface draws units on an ANSI terminal. Rows are measured in
// terminal cells; the font size maps to the number of rows per visual line.
type TerminalSurface struct {
	mu     sync.Mutex
	w      *bufio.Writer
	opts   TerminalOptions
	styles Styles
	style  Style

	units   []Unit
	cells   []cell
	rows    []layoutRow
	rowOf   []int
	current int

	offset  float64
	animGen uint64
	opened  bool

	status       string
	prompt       string
	promptActive bool
	notice       string
}

// NewTerminalSurface returns a surface writing frames to w.
func NewTerminalSurface(w io.Writer, opts TerminalOptions) *TerminalSurface {
	if opts.Theme == nil {
		opts.Theme = DefaultTheme()
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = defaultTabWidth
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	return &TerminalSurface{
		w:       bufio.NewWriterSize(w, 16<<10),
		opts:    opts,
		styles:  opts.Theme.Styles(),
		style:   DefaultStyle(),
		current: -1,
	}
}

// Open switches to the alternate screen and hides the cursor.
func (s *TerminalSurface) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opened = true
	s.writeString("\x1b[?1049h\x1b[?25l\x1b[?7l\x1b[2J")
	return s.drawLocked()
}

// Close restores the cursor and the main screen.
func (s *TerminalSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animGen++
	if !s.opened {
		return s.w.Flush()
	}
	s.opened = false
	s.writeString(ansiReset + "\x1b[?7h\x1b[?25h\x1b[?1049l")
	return s.w.Flush()
}

// RenderUnits lays out units and scrolls back to the top.
func (s *TerminalSurface) RenderUnits(units []Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = units
	s.cells = measureUnits(units, s.opts.TabWidth)
	s.current = -1
	s.animGen++
	s.offset = 0
	s.relayoutLocked()
	_ = s.drawLocked()
}

// MarkCurrent highlights the unit at index.
func (s *TerminalSurface) MarkCurrent(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = index
	_ = s.drawLocked()
}

// ScrollTo animates the viewport towards offset rows on a background
// goroutine. A newer request supersedes a running animation.
func (s *TerminalSurface) ScrollTo(offset float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if maxOff := s.maxOffsetLocked(); offset > maxOff {
		offset = maxOff
	}
	s.animGen++
	if s.opts.ScrollFrames <= 1 || s.opts.FrameDelay <= 0 {
		s.offset = offset
		_ = s.drawLocked()
		return
	}
	go s.animate(s.animGen, s.offset, offset)
}

func (s *TerminalSurface) animate(gen uint64, from, to float64) {
	ticker := time.NewTicker(s.opts.FrameDelay)
	defer ticker.Stop()
	frames := s.opts.ScrollFrames
	for i := 1; i <= frames; i++ {
		<-ticker.C
		s.mu.Lock()
		if gen != s.animGen {
			s.mu.Unlock()
			return
		}
		t := float64(i) / float64(frames)
		ease := 1 - math.Pow(1-t, 3)
		s.offset = from + (to-from)*ease
		_ = s.drawLocked()
		s.mu.Unlock()
	}
}

// Geometry reports the row of the visual line holding index.
func (s *TerminalSurface) Geometry(index int) Geometry {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.rowHeightLocked()
	g := Geometry{LineHeight: float64(h), Viewport: float64(s.viewportLocked())}
	if index >= 0 && index < len(s.rowOf) {
		g.Top = float64(s.rowOf[index] * h)
	}
	return g
}

// ApplyStyle changes the row spacing and alignment and lays out again.
func (s *TerminalSurface) ApplyStyle(style Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style = style.normalized()
	s.relayoutLocked()
	_ = s.drawLocked()
}

// Resize updates the terminal dimensions and lays out again.
func (s *TerminalSurface) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Width = width
	s.opts.Height = height
	s.relayoutLocked()
	if s.opened {
		s.writeString("\x1b[2J")
	}
	_ = s.drawLocked()
}

// SetTheme switches the theme.
func (s *TerminalSurface) SetTheme(theme Theme) {
	if theme == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Theme = theme
	s.styles = theme.Styles()
	_ = s.drawLocked()
}

// SetStatusVisible shows or hides the status bar.
func (s *TerminalSurface) SetStatusVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.ShowStatus = visible
	_ = s.drawLocked()
}

// StatusVisible reports whether the status bar is shown.
func (s *TerminalSurface) StatusVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.ShowStatus
}

// SetStatus replaces the status bar text.
func (s *TerminalSurface) SetStatus(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = text
	_ = s.drawLocked()
}

// SetPrompt shows text as the command line while active is true.
func (s *TerminalSurface) SetPrompt(text string, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = text
	s.promptActive = active
	_ = s.drawLocked()
}

// SetNotice shows a blocking notice on the bottom row. An empty text clears it.
func (s *TerminalSurface) SetNotice(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = text
	_ = s.drawLocked()
}

// Notice returns the notice currently shown.
func (s *TerminalSurface) Notice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

// Offset returns the current scroll offset in rows.
func (s *TerminalSurface) Offset() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

// Redraw writes a full frame.
func (s *TerminalSurface) Redraw() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawLocked()
}

func (s *TerminalSurface) textWidthLocked() int {
	w := s.opts.Width - 2*s.opts.Margin
	if w < 1 {
		return 1
	}
	return w
}

func (s *TerminalSurface) rowHeightLocked() int {
	h := int(math.Round(s.style.FontSizeRem))
	if h < 1 {
		return 1
	}
	return h
}

func (s *TerminalSurface) viewportLocked() int {
	h := s.opts.Height
	if s.opts.ShowStatus {
		h--
	}
	if h < 1 {
		return 1
	}
	return h
}

func (s *TerminalSurface) maxOffsetLocked() float64 {
	total := len(s.rows) * s.rowHeightLocked()
	return math.Max(0, float64(total-1))
}

func (s *TerminalSurface) relayoutLocked() {
	s.rows, s.rowOf = layoutRows(s.units, s.cells, s.textWidthLocked())
}

func (s *TerminalSurface) drawLocked() error {
	if !s.opened {
		return nil
	}
	h := s.rowHeightLocked()
	viewport := s.viewportLocked()
	first := int(math.Round(s.offset))
	textRow := h / 2
	for y := 0; y < viewport; y++ {
		s.printf("\x1b[%d;1H\x1b[2K", y+1)
		contentRow := first + y
		if contentRow < 0 || contentRow%h != textRow {
			continue
		}
		idx := contentRow / h
		if idx >= len(s.rows) {
			continue
		}
		s.writeString(s.renderRowLocked(s.rows[idx]))
	}
	s.drawBottomLocked()
	return s.w.Flush()
}

func (s *TerminalSurface) drawBottomLocked() {
	var text string
	var st TermStyle
	switch {
	case s.notice != "":
		text, st = s.notice, s.styles.Notice
	case s.promptActive:
		text, st = ":"+s.prompt, s.styles.Prompt
	case s.opts.ShowStatus:
		text, st = s.status, s.styles.Status
	default:
		return
	}
	width := s.opts.Width
	if width <= 0 {
		width = 1
	}
	text = fitBar(text, width, st.Prefix != "")
	s.printf("\x1b[%d;1H\x1b[2K", s.opts.Height)
	s.writeString(st.Prefix + text + ansiReset)
	if s.promptActive && s.notice == "" {
		s.writeString("\x1b[?25h")
	} else {
		s.writeString("\x1b[?25l")
	}
}

func (s *TerminalSurface) renderRowLocked(row layoutRow) string {
	maxWidth := s.textWidthLocked()
	left, extra := rowPadding(s.units, row, maxWidth, s.style.Align)
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", s.opts.Margin+left))
	for i := row.start; i < row.end; i++ {
		u := s.units[i]
		c := s.cells[i]
		switch u.Kind {
		case kindNewline:
			continue
		case kindWord:
			st := s.styles.Text
			if i == s.current {
				st = s.styles.Current
			} else if s.current >= 0 && i < s.current {
				st = s.styles.Read
			}
			b.WriteString(st.Prefix + c.text + ansiReset)
			if n := extra[i]; n > 0 {
				b.WriteString(strings.Repeat(" ", n))
			}
		default:
			b.WriteString(c.text)
		}
	}
	return truncate.String(b.String(), uint(s.opts.Width))
}

func (s *TerminalSurface) writeString(text string) {
	_, _ = s.w.WriteString(text)
}

func (s *TerminalSurface) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.w, format, args...)
}
