package prompter

import (
	"bytes"
	"strings"
	"testing"
)

func newTestTerminal(buf *bytes.Buffer) *TerminalSurface {
	opts := DefaultTerminalOptions()
	opts.Width = 20
	opts.Height = 5
	opts.Margin = 0
	opts.ScrollFrames = 0
	opts.Theme = BoringTheme()
	return NewTerminalSurface(buf, opts)
}

func TestTerminalSurfaceGeometry(t *testing.T) {
	var buf bytes.Buffer
	ts := newTestTerminal(&buf)
	c := NewController(ts, WithClock(&fakeClock{}))
	if err := c.Load("alpha beta gamma delta epsilon zeta"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	g := ts.Geometry(6)
	if g.Top != 1 || g.LineHeight != 1 || g.Viewport != 4 {
		t.Fatalf("unexpected geometry %+v", g)
	}
	c.SetStyle(Style{FontSizeRem: 2})
	g = ts.Geometry(6)
	if g.Top != 2 || g.LineHeight != 2 {
		t.Fatalf("unexpected geometry at 2rem %+v", g)
	}
	ts.SetStatusVisible(false)
	if g := ts.Geometry(0); g.Viewport != 5 {
		t.Fatalf("expected full-height viewport, got %+v", g)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output before Open")
	}
}

func TestTerminalSurfaceScrollClamps(t *testing.T) {
	var buf bytes.Buffer
	ts := newTestTerminal(&buf)
	units := mustTokenize(t, "one\ntwo\nthree")
	ts.RenderUnits(units)
	ts.ScrollTo(100)
	if got := ts.Offset(); got != 2 {
		t.Fatalf("expected offset clamped to 2, got %v", got)
	}
	ts.RenderUnits(units)
	if got := ts.Offset(); got != 0 {
		t.Fatalf("expected render to reset offset, got %v", got)
	}
}

func TestTerminalSurfaceDrawsFrame(t *testing.T) {
	var buf bytes.Buffer
	ts := newTestTerminal(&buf)
	if err := ts.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	c := NewController(ts, WithClock(&fakeClock{}))
	if err := c.Load("alpha beta\ngamma"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	ts.SetStatus("status here")
	out := buf.String()
	for _, want := range []string{"\x1b[?1049h", "alpha", "beta", "gamma", "status here"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output", want)
		}
	}
	ts.SetNotice("careful")
	if ts.Notice() != "careful" || !strings.Contains(buf.String(), "careful") {
		t.Fatalf("expected notice drawn")
	}
	if err := ts.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\x1b[?1049l") {
		t.Fatalf("expected main screen restored")
	}
}
