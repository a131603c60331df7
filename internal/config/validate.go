package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePlayback(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePlayback() error {
	p := c.Playback
	if p.BaseDelayMs <= 0 {
		return errors.New("playback.base_delay_ms must be positive")
	}
	if p.MinSpeed <= 0 {
		return errors.New("playback.min_speed must be positive")
	}
	if p.MaxSpeed < p.MinSpeed {
		return fmt.Errorf("playback.max_speed (%g) must not be below min_speed (%g)", p.MaxSpeed, p.MinSpeed)
	}
	if p.SpeedStep <= 0 {
		return errors.New("playback.speed_step must be positive")
	}
	if p.Speed < p.MinSpeed || p.Speed > p.MaxSpeed {
		return fmt.Errorf("playback.speed %g is outside %g-%g", p.Speed, p.MinSpeed, p.MaxSpeed)
	}
	return nil
}

func (c *Config) validateDisplay() error {
	d := c.Display
	switch d.Align {
	case "left", "center", "right", "justify":
	default:
		return fmt.Errorf("display.align: unsupported value %q", d.Align)
	}
	if d.FontSizeRem <= 0 {
		return errors.New("display.font_size_rem must be positive")
	}
	if d.Margin < 0 {
		return errors.New("display.margin must not be negative")
	}
	if d.ScrollFrameMs < 0 {
		return errors.New("display.scroll_frame_ms must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
