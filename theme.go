package prompter

import (
	"sort"
	"strconv"
	"strings"
)

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiDim       = "\x1b[2m"
	ansiUnderline = "\x1b[4m"
	ansiReverse   = "\x1b[7m"
)

// TermStyle describes a terminal style as an ANSI prefix sequence.
type TermStyle struct {
	Prefix string
}

// Styles groups the semantic styles used by the terminal surface.
type Styles struct {
	Text    TermStyle
	Current TermStyle
	Read    TermStyle
	Status  TermStyle
	Notice  TermStyle
	Prompt  TermStyle
}

// Theme provides named styles for the terminal surface.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) TermStyle {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return TermStyle{Prefix: b.String()}
}

func fg(r, g, b int) string {
	return "\x1b[38;2;" + strconv.Itoa(r) + ";" + strconv.Itoa(g) + ";" + strconv.Itoa(b) + "m"
}

func bg(r, g, b int) string {
	return "\x1b[48;2;" + strconv.Itoa(r) + ";" + strconv.Itoa(g) + ";" + strconv.Itoa(b) + "m"
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: Styles{
		Text:    style(fg(230, 230, 230)),
		Current: style(ansiBold, fg(20, 20, 20), bg(255, 214, 0)),
		Read:    style(fg(120, 120, 120)),
		Status:  style(ansiReverse),
		Notice:  style(ansiBold, fg(255, 255, 255), bg(170, 30, 30)),
		Prompt:  style(ansiBold),
	}},
	"high-contrast": theme{name: "high-contrast", styles: Styles{
		Text:    style(ansiBold, fg(255, 255, 255)),
		Current: style(ansiBold, fg(0, 0, 0), bg(255, 255, 255)),
		Read:    style(fg(150, 150, 150)),
		Status:  style(ansiReverse),
		Notice:  style(ansiBold, ansiReverse),
		Prompt:  style(ansiBold),
	}},
	"amber": theme{name: "amber", styles: Styles{
		Text:    style(fg(255, 176, 0)),
		Current: style(ansiBold, fg(0, 0, 0), bg(255, 176, 0)),
		Read:    style(fg(128, 88, 0)),
		Status:  style(fg(0, 0, 0), bg(204, 140, 0)),
		Notice:  style(ansiBold, fg(255, 255, 255), bg(150, 40, 0)),
		Prompt:  style(ansiBold, fg(255, 176, 0)),
	}},
	"green-screen": theme{name: "green-screen", styles: Styles{
		Text:    style(fg(51, 255, 51)),
		Current: style(ansiBold, fg(0, 0, 0), bg(51, 255, 51)),
		Read:    style(fg(20, 110, 20)),
		Status:  style(fg(0, 0, 0), bg(40, 200, 40)),
		Notice:  style(ansiBold, fg(255, 255, 255), bg(140, 20, 20)),
		Prompt:  style(ansiBold, fg(51, 255, 51)),
	}},
	"solarized-dark": theme{name: "solarized-dark", styles: Styles{
		Text:    style(fg(147, 161, 161)),
		Current: style(ansiBold, fg(0, 43, 54), bg(181, 137, 0)),
		Read:    style(fg(88, 110, 117)),
		Status:  style(fg(0, 43, 54), bg(131, 148, 150)),
		Notice:  style(ansiBold, fg(253, 246, 227), bg(220, 50, 47)),
		Prompt:  style(ansiBold, fg(38, 139, 210)),
	}},
	"solarized-light": theme{name: "solarized-light", styles: Styles{
		Text:    style(fg(88, 110, 117)),
		Current: style(ansiBold, fg(253, 246, 227), bg(38, 139, 210)),
		Read:    style(fg(147, 161, 161)),
		Status:  style(fg(253, 246, 227), bg(101, 123, 131)),
		Notice:  style(ansiBold, fg(253, 246, 227), bg(220, 50, 47)),
		Prompt:  style(ansiBold, fg(211, 54, 130)),
	}},
	"mono": theme{name: "mono", styles: Styles{
		Current: style(ansiReverse),
		Read:    style(ansiDim),
		Status:  style(ansiReverse),
		Notice:  style(ansiBold, ansiUnderline),
		Prompt:  style(ansiBold),
	}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// BoringTheme returns a theme without colors.
func BoringTheme() Theme {
	return NewTheme("boring", Styles{})
}
