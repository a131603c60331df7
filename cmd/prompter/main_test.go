package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"pkt.systems/prompter"
	"pkt.systems/prompter/internal/config"
)

func TestOpenInputFileAndFileURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	reader, closer, err := openInputs([]string{path})
	if err != nil {
		t.Fatalf("openInputs file: %v", err)
	}
	buf, _ := io.ReadAll(reader)
	_ = closer.Close()
	if string(buf) != "hello" {
		t.Fatalf("unexpected file content: %q", string(buf))
	}

	reader, closer, err = openInputs([]string{"file://" + path})
	if err != nil {
		t.Fatalf("openInputs file URL: %v", err)
	}
	buf, _ = io.ReadAll(reader)
	_ = closer.Close()
	if string(buf) != "hello" {
		t.Fatalf("unexpected file URL content: %q", string(buf))
	}
}

func TestOpenInputsConcatenates(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(first, []byte("one "), 0o644); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := os.WriteFile(second, []byte("two"), 0o644); err != nil {
		t.Fatalf("write second: %v", err)
	}
	reader, closer, err := openInputs([]string{first, second})
	if err != nil {
		t.Fatalf("openInputs concat: %v", err)
	}
	defer func() { _ = closer.Close() }()
	buf, _ := io.ReadAll(reader)
	if string(buf) != "one \ntwo" {
		t.Fatalf("unexpected concatenated content: %q", string(buf))
	}
}

func TestOpenInputsSeparatesScripts(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.txt": "end of part one",
		"b.txt": "start of part two\n",
		"c.txt": "",
		"d.txt": "closing",
	}
	var args []string
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		args = append(args, path)
	}
	reader, closer, err := openInputs(args)
	if err != nil {
		t.Fatalf("openInputs: %v", err)
	}
	defer func() { _ = closer.Close() }()
	text, err := prompter.ReadScript(reader)
	if err != nil {
		t.Fatalf("ReadScript: %v", err)
	}
	if want := "end of part one\nstart of part two\nclosing"; text != want {
		t.Fatalf("unexpected joined scripts: %q want %q", text, want)
	}
	units, err := prompter.Tokenize(text)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if got := prompter.CountWords(units); got != 9 {
		t.Fatalf("expected 9 words, got %d", got)
	}
}

func TestOpenInputsReportsMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	reader, closer, err := openInputs([]string{missing})
	if err != nil {
		t.Fatalf("openInputs: %v", err)
	}
	defer func() { _ = closer.Close() }()
	if _, err := io.ReadAll(reader); err == nil || !strings.Contains(err.Error(), "missing.txt") {
		t.Fatalf("expected error naming the file, got %v", err)
	}
}

func TestOpenInputsRejectsNetworkSchemes(t *testing.T) {
	if _, _, err := openInputs([]string{"https://example.com/script.txt"}); err == nil {
		t.Fatalf("expected error for https input")
	}
}

func TestLoadScriptFileRejectsBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bin")
	if err := os.WriteFile(path, []byte{'a', 0x00, 'b'}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadScriptFile(path); err == nil {
		t.Fatalf("expected binary input error")
	}
}

func TestApplyFlagsOverridesConfig(t *testing.T) {
	cfg := config.Default()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var opts cliOptions
	flags.Float64VarP(&opts.speed, "speed", "s", 0, "")
	flags.StringVarP(&opts.align, "align", "a", "", "")
	flags.StringVar(&opts.logFile, "log-file", "", "")
	if err := flags.Parse([]string{"--speed", "2.5", "-a", "Center", "--log-file", ""}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := applyFlags(&cfg, flags, opts); err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	if cfg.Playback.Speed != 2.5 {
		t.Fatalf("speed=%v want 2.5", cfg.Playback.Speed)
	}
	if cfg.Display.Align != "center" {
		t.Fatalf("align=%q want center", cfg.Display.Align)
	}
	if cfg.Logging.File != "" {
		t.Fatalf("expected log file cleared, got %q", cfg.Logging.File)
	}
}

func TestApplyFlagsRejectsSpeedOutsideRange(t *testing.T) {
	cfg := config.Default()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var opts cliOptions
	flags.Float64VarP(&opts.speed, "speed", "s", 0, "")
	if err := flags.Parse([]string{"--speed", "9"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := applyFlags(&cfg, flags, opts); err == nil {
		t.Fatalf("expected error for speed above max_speed")
	}
}

func TestRenderUnitsTable(t *testing.T) {
	units, err := prompter.Tokenize("Hello   world")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	out := renderUnitsTable(units)
	for _, want := range []string{"word", "whitespace", `"Hello "`, `"   "`, `"world"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalSizeFallsBackToEnv(t *testing.T) {
	t.Setenv("COLUMNS", "100")
	t.Setenv("LINES", "40")
	w, h := terminalSize(nil, defaultWidth, defaultHeight)
	if w != 100 || h != 40 {
		t.Fatalf("terminalSize=%dx%d want 100x40", w, h)
	}
}
