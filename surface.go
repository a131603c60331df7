package prompter

import (
	"fmt"
	"math"
	"strings"
)

// Surface displays units and performs highlight and scroll effects.
//
// The controller calls a surface while holding its lock, so implementations
// must not call back into the controller.
type Surface interface {
	RenderUnits(units []Unit)
	// MarkCurrent marks the unit at index as current and clears every other
	// mark. A negative index clears all marks.
	MarkCurrent(index int)
	// ScrollTo requests a smooth scroll to offset. It must not block on the
	// animation.
	ScrollTo(offset float64)
	Geometry(index int) Geometry
}

// Styler is implemented by surfaces that honor cosmetic style parameters.
type Styler interface {
	ApplyStyle(Style)
}

// Geometry describes where a unit sits on a surface, in surface units
// (pixels in a browser, rows in a terminal).
type Geometry struct {
	// Top is the offset of the visual line holding the unit within the
	// scrollable content.
	Top        float64
	LineHeight float64
	Viewport   float64
}

// CenterOffset returns the scroll offset that puts the midpoint of the line
// described by g at the vertical center of the viewport, clamped to zero.
func CenterOffset(g Geometry) float64 {
	target := g.Top + g.LineHeight/2 - g.Viewport/2
	if target < 0 || math.IsNaN(target) {
		return 0
	}
	return target
}

// Align is a horizontal text alignment.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// ParseAlign parses left, center, right or justify. An empty value is left.
func ParseAlign(value string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	case "justify":
		return AlignJustify, nil
	default:
		return AlignLeft, fmt.Errorf("align: expected left|center|right|justify, got %q", value)
	}
}

// Style holds the cosmetic parameters passed through to a surface.
type Style struct {
	FontSizeRem float64
	Align       Align
}

// DefaultStyle returns 1rem left-aligned text.
func DefaultStyle() Style {
	return Style{FontSizeRem: 1, Align: AlignLeft}
}

// normalized replaces a non-positive or non-finite size with 1rem.
func (s Style) normalized() Style {
	if s.FontSizeRem <= 0 || math.IsNaN(s.FontSizeRem) || math.IsInf(s.FontSizeRem, 0) {
		s.FontSizeRem = 1
	}
	return s
}
