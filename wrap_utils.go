package prompter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// fitBar cuts text to width display cells, ending in an ellipsis when cut.
// With pad set the result is filled with spaces to exactly width cells.
func fitBar(text string, width int, pad bool) string {
	if width <= 0 {
		return ""
	}
	text = strings.Map(func(r rune) rune {
		if r == '\t' {
			return ' '
		}
		if isControlRune(r) || r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, text)
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, "…")
	}
	if pad {
		text = runewidth.FillRight(text, width)
	}
	return text
}
