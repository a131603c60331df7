package prompter

import "testing"

func TestFitBar(t *testing.T) {
	cases := []struct {
		text  string
		width int
		pad   bool
		want  string
	}{
		{"short", 10, false, "short"},
		{"short", 8, true, "short   "},
		{"a longer status line", 8, false, "a longe…"},
		{"tab\there\n", 20, false, "tab here"},
		{"世界世界", 5, false, "世界…"},
		{"anything", 0, true, ""},
	}
	for _, tc := range cases {
		if got := fitBar(tc.text, tc.width, tc.pad); got != tc.want {
			t.Fatalf("fitBar(%q, %d, %v) = %q, want %q", tc.text, tc.width, tc.pad, got, tc.want)
		}
	}
}

func TestDetectColorSupport(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("PROMPTER_COLOR", "")
	t.Setenv("NO_COLOR", "1")
	if DetectColorSupport() {
		t.Fatalf("expected NO_COLOR to disable colors")
	}
	t.Setenv("PROMPTER_COLOR", "on")
	if !DetectColorSupport() {
		t.Fatalf("expected PROMPTER_COLOR to force colors")
	}
	t.Setenv("PROMPTER_COLOR", "off")
	t.Setenv("TERM", "xterm")
	if DetectColorSupport() {
		t.Fatalf("expected PROMPTER_COLOR=off to disable colors")
	}
}
