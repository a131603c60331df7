package prompter

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func TestStreamSurfaceWritesThroughMark(t *testing.T) {
	var buf bytes.Buffer
	s := NewStreamSurface(&buf)
	units := mustTokenize(t, "one two\n\nthree")
	s.RenderUnits(units)
	s.MarkCurrent(0)
	if buf.String() != "one" {
		t.Fatalf("unexpected output %q", buf.String())
	}
	s.MarkCurrent(2)
	s.MarkCurrent(-1)
	if buf.String() != "one two" {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if buf.String() != "one two\n\nthree\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestPlayStreamsWholeScript(t *testing.T) {
	cases := []string{"one two three", "a\n\nb", "Hi", "ends with newline\n"}
	for _, text := range cases {
		var buf bytes.Buffer
		err := Play(context.Background(), PlayRequest{
			Text:      text,
			Writer:    &buf,
			BaseDelay: time.Millisecond,
		})
		if err != nil {
			t.Fatalf("Play(%q): %v", text, err)
		}
		want := text
		if want[len(want)-1] != '\n' {
			want += "\n"
		}
		if buf.String() != want {
			t.Fatalf("Play(%q) wrote %q", text, buf.String())
		}
	}
}

func TestPlayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := Play(ctx, PlayRequest{Text: "one two three", Writer: &buf, BaseDelay: time.Hour})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if buf.String() != "one\n" {
		t.Fatalf("expected only the first word, got %q", buf.String())
	}
}

func TestPlayRejectsBadRequests(t *testing.T) {
	if err := Play(context.Background(), PlayRequest{Text: "x"}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	var buf bytes.Buffer
	err := Play(context.Background(), PlayRequest{Text: " \n", Writer: &buf})
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
