package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/prompter"
	"pkt.systems/prompter/internal/config"
	"pkt.systems/prompter/internal/logging"
	"pkt.systems/version"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

func init() {
	version.SetDefaultModule("pkt.systems/prompter")
}

type cliOptions struct {
	configPath string
	initConfig string
	speed      float64
	baseDelay  time.Duration
	size       float64
	align      string
	themeName  string
	listThemes bool
	width      int
	height     int
	noStatus   bool
	stream     bool
	dump       bool
	boring     bool
	logLevel   string
	logFormat  string
	logFile    string
	showVer    bool
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: .env: %v\n", err)
	}

	var opts cliOptions
	flags := pflag.NewFlagSet("prompter", pflag.ExitOnError)
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default ~/.config/prompter/config.toml or ./prompter.toml)")
	flags.StringVar(&opts.initConfig, "init-config", "", "Write a sample config to the given path and exit")
	flags.Float64VarP(&opts.speed, "speed", "s", 0, "Speed factor (overrides config)")
	flags.DurationVar(&opts.baseDelay, "base-delay", 0, "Delay per word at speed 1.0 (overrides config)")
	flags.Float64Var(&opts.size, "size", 0, "Text size in rem; rows per line in a terminal (overrides config)")
	flags.StringVarP(&opts.align, "align", "a", "", "Text alignment: left|center|right|justify (overrides config)")
	flags.StringVarP(&opts.themeName, "theme", "t", "", "Theme name (overrides config)")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.IntVarP(&opts.width, "width", "w", 0, "Width override (0 uses terminal width if available)")
	flags.IntVar(&opts.height, "height", 0, "Height override (0 uses terminal height if available)")
	flags.BoolVar(&opts.noStatus, "no-status", false, "Start with the status bar hidden")
	flags.BoolVar(&opts.stream, "stream", false, "Stream words to stdout at pace instead of the interactive display")
	flags.BoolVar(&opts.dump, "dump", false, "Print the tokenized units as a table and exit")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Disable colors")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error (overrides config)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: console|json (overrides config)")
	flags.StringVar(&opts.logFile, "log-file", "", "Log file (overrides config)")
	flags.BoolVarP(&opts.showVer, "version", "v", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: prompter [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, the script is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nKeys: space play/pause, ←/→ step, r reset, +/- speed, [/] size, a align,")
		fmt.Fprintln(os.Stderr, "      h status bar, : command line (load, speed, size, align, theme), q quit")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if opts.showVer {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}
	if opts.listThemes {
		printThemes(os.Stdout)
		return
	}
	if opts.initConfig != "" {
		path := normalizePath(opts.initConfig)
		if err := config.CreateSample(path); err != nil {
			fmt.Fprintf(os.Stderr, "init config: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", path)
		return
	}

	cfg, _, _, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if err := applyFlags(cfg, flags, opts); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	theme, ok := prompter.ThemeByName(cfg.Display.Theme)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", cfg.Display.Theme)
		printThemes(os.Stderr)
		os.Exit(2)
	}
	if opts.boring || !prompter.DetectColorSupport() {
		theme = prompter.BoringTheme()
	}
	align, err := prompter.ParseAlign(cfg.Display.Align)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	reader, closer, err := openInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	text, err := prompter.ReadScript(reader)
	if closer != nil {
		_ = closer.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	units, err := prompter.Tokenize(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load: %v\n", err)
		os.Exit(1)
	}

	if opts.dump {
		fmt.Fprintln(os.Stdout, renderUnitsTable(units))
		return
	}

	interactive := !opts.stream && isTerminal(os.Stdout)
	logger, err := logging.NewFromConfig(cfg, interactive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	style := prompter.Style{FontSizeRem: cfg.Display.FontSizeRem, Align: align}
	if !interactive {
		err = prompter.Play(ctx, prompter.PlayRequest{
			Text:      text,
			Writer:    os.Stdout,
			Speed:     cfg.Playback.Speed,
			BaseDelay: cfg.BaseDelay(),
			Logger:    logger.With(logging.FieldComponent, "stream"),
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "play: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runInteractive(ctx, cfg, opts, text, theme, style, logger); err != nil {
		logger.Error("session failed", "error", err)
		fmt.Fprintf(os.Stderr, "session: %v\n", err)
		os.Exit(1)
	}
}

func runInteractive(ctx context.Context, cfg *config.Config, opts cliOptions, text string, theme prompter.Theme, style prompter.Style, logger *logging.Logger) error {
	tty, err := openTTY()
	if err != nil {
		return fmt.Errorf("open tty: %w", err)
	}
	defer tty.Close()

	rawState, err := term.MakeRaw(int(tty.in.Fd()))
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer func() { _ = term.Restore(int(tty.in.Fd()), rawState) }()

	width, height := resolveSize(tty.out, opts.width, opts.height)
	surface := prompter.NewTerminalSurface(tty.out, prompter.TerminalOptions{
		Width:        width,
		Height:       height,
		Theme:        theme,
		TabWidth:     cfg.Display.TabWidth,
		Margin:       cfg.Display.Margin,
		ShowStatus:   cfg.Display.ShowStatus,
		ScrollFrames: cfg.Display.ScrollFrames,
		FrameDelay:   cfg.ScrollFrameDelay(),
	})
	if err := surface.Open(); err != nil {
		return err
	}
	defer func() { _ = surface.Close() }()

	sessionLogger := logger.With(logging.FieldComponent, "session")
	session := prompter.NewSession(surface, prompter.SessionOptions{
		MinSpeed:  cfg.Playback.MinSpeed,
		MaxSpeed:  cfg.Playback.MaxSpeed,
		SpeedStep: cfg.Playback.SpeedStep,
		LoadFile:  loadScriptFile,
		Logger:    sessionLogger,
	},
		prompter.WithSpeed(cfg.Playback.Speed),
		prompter.WithBaseDelay(cfg.BaseDelay()),
		prompter.WithStyle(style),
	)
	defer session.Controller().Close()

	if err := session.Load(text); err != nil {
		return err
	}

	stopResize := watchResize(func() {
		if opts.width > 0 && opts.height > 0 {
			return
		}
		w, h := resolveSize(tty.out, opts.width, opts.height)
		session.Resize(w, h)
	})
	defer stopResize()

	sessionLogger.Info("session started",
		"units", len(session.Controller().Units()),
		"width", width,
		"height", height,
	)
	err = session.Run(ctx, tty.in)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func applyFlags(cfg *config.Config, flags *pflag.FlagSet, opts cliOptions) error {
	if flags.Changed("speed") {
		if opts.speed <= 0 {
			return fmt.Errorf("invalid --speed %g: must be positive", opts.speed)
		}
		cfg.Playback.Speed = opts.speed
	}
	if flags.Changed("base-delay") {
		if opts.baseDelay <= 0 {
			return fmt.Errorf("invalid --base-delay %s: must be positive", opts.baseDelay)
		}
		cfg.Playback.BaseDelayMs = int(opts.baseDelay / time.Millisecond)
	}
	if flags.Changed("size") {
		if opts.size <= 0 {
			return fmt.Errorf("invalid --size %g: must be positive", opts.size)
		}
		cfg.Display.FontSizeRem = opts.size
	}
	if flags.Changed("align") {
		cfg.Display.Align = strings.ToLower(strings.TrimSpace(opts.align))
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = strings.ToLower(strings.TrimSpace(opts.themeName))
	}
	if opts.noStatus {
		cfg.Display.ShowStatus = false
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(opts.logLevel))
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(opts.logFormat))
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = ""
		if strings.TrimSpace(opts.logFile) != "" {
			cfg.Logging.File = normalizePath(opts.logFile)
		}
	}
	return cfg.Validate()
}

func loadScriptFile(path string) (string, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return "", err
	}
	defer f.Close()
	return prompter.ReadScript(f)
}

func printThemes(w io.Writer) {
	for _, name := range prompter.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveSize(f *os.File, width, height int) (int, int) {
	w, h := terminalSize(f, defaultWidth, defaultHeight)
	if width > 0 {
		w = width
	}
	if height > 0 {
		h = height
	}
	return w, h
}

func terminalSize(f *os.File, fallbackW, fallbackH int) (int, int) {
	if f != nil {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
				return w, h
			}
		}
	}
	w, h := fallbackW, fallbackH
	if value := os.Getenv("COLUMNS"); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			w = n
		}
	}
	if value := os.Getenv("LINES"); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			h = n
		}
	}
	return w, h
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
