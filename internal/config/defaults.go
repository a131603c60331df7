package config

const (
	defaultSpeed         = 1.0
	defaultBaseDelayMs   = 350
	defaultMinSpeed      = 0.5
	defaultMaxSpeed      = 3.0
	defaultSpeedStep     = 0.1
	defaultTheme         = "default"
	defaultFontSizeRem   = 1.0
	defaultAlign         = "left"
	defaultTabWidth      = 4
	defaultMargin        = 2
	defaultScrollFrames  = 6
	defaultScrollFrameMs = 16
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogFile       = "~/.local/state/prompter/prompter.log"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Playback: Playback{
			Speed:       defaultSpeed,
			BaseDelayMs: defaultBaseDelayMs,
			MinSpeed:    defaultMinSpeed,
			MaxSpeed:    defaultMaxSpeed,
			SpeedStep:   defaultSpeedStep,
		},
		Display: Display{
			Theme:         defaultTheme,
			FontSizeRem:   defaultFontSizeRem,
			Align:         defaultAlign,
			ShowStatus:    true,
			TabWidth:      defaultTabWidth,
			Margin:        defaultMargin,
			ScrollFrames:  defaultScrollFrames,
			ScrollFrameMs: defaultScrollFrameMs,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			File:   defaultLogFile,
		},
	}
}
