package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	envSpeed    = "PROMPTER_SPEED"
	envTheme    = "PROMPTER_THEME"
	envLogLevel = "PROMPTER_LOG_LEVEL"
	envLogFile  = "PROMPTER_LOG_FILE"
)

func (c *Config) applyEnv() error {
	if value, ok := os.LookupEnv(envSpeed); ok && strings.TrimSpace(value) != "" {
		speed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("%s: %w", envSpeed, err)
		}
		c.Playback.Speed = speed
	}
	if value, ok := os.LookupEnv(envTheme); ok && strings.TrimSpace(value) != "" {
		c.Display.Theme = value
	}
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	if value, ok := os.LookupEnv(envLogFile); ok {
		c.Logging.File = value
	}
	return nil
}

func (c *Config) normalize() error {
	c.Display.Theme = strings.ToLower(strings.TrimSpace(c.Display.Theme))
	if c.Display.Theme == "" {
		c.Display.Theme = defaultTheme
	}
	c.Display.Align = strings.ToLower(strings.TrimSpace(c.Display.Align))
	if c.Display.Align == "" {
		c.Display.Align = defaultAlign
	}
	if c.Display.TabWidth <= 0 {
		c.Display.TabWidth = defaultTabWidth
	}
	if c.Display.ScrollFrames < 0 {
		c.Display.ScrollFrames = 0
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	file := strings.TrimSpace(c.Logging.File)
	if file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		file = expanded
	}
	c.Logging.File = file
	return nil
}
