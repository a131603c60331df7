package prompter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cell is the measured display form of a unit.
type cell struct {
	text  string
	width int
	// trail is the width that may hang past the row edge. Only whitespace
	// units have one.
	trail int
}

type layoutRow struct {
	start, end int
	// content is the row width without trailing whitespace.
	content    int
	lastOfLine bool
}

// measureUnits converts units to display cells. Words are drawn from their
// source so the following whitespace unit alone separates them. Tabs expand
// to tabWidth spaces and control characters are dropped.
func measureUnits(units []Unit, tabWidth int) []cell {
	cells := make([]cell, len(units))
	for i, u := range units {
		switch u.Kind {
		case kindNewline:
			cells[i] = cell{}
		case kindWhitespace:
			text := displayText(u.Text, tabWidth)
			w := runewidth.StringWidth(text)
			cells[i] = cell{text: text, width: w, trail: w}
		default:
			text := displayText(u.Source, tabWidth)
			cells[i] = cell{text: text, width: runewidth.StringWidth(text)}
		}
	}
	return cells
}

func displayText(text string, tabWidth int) string {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	clean := true
	for _, r := range text {
		if r == '\t' || isControlRune(r) || r == '\r' || r == '\n' {
			clean = false
			break
		}
	}
	if clean {
		return text
	}
	var b strings.Builder
	for _, r := range text {
		switch {
		case r == '\t':
			b.WriteString(strings.Repeat(" ", tabWidth))
		case r == '\r', r == '\n', isControlRune(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// layoutRows wraps cells into rows no wider than maxWidth. Words wrap as a
// whole; whitespace never starts a new row. A newline unit ends its row.
// rowOf maps every unit index to its row.
func layoutRows(units []Unit, cells []cell, maxWidth int) (rows []layoutRow, rowOf []int) {
	rowOf = make([]int, len(units))
	cur := layoutRow{}
	used := 0
	finish := func(end int, last bool) {
		cur.end = end
		cur.lastOfLine = last
		cur.content = rowContentWidth(units, cells, cur.start, cur.end)
		rows = append(rows, cur)
		cur = layoutRow{start: end, end: end}
		used = 0
	}
	for i, u := range units {
		c := cells[i]
		switch u.Kind {
		case kindNewline:
			rowOf[i] = len(rows)
			finish(i+1, true)
			continue
		case kindWord:
			if maxWidth > 0 && cur.end > cur.start && used+c.width-c.trail > maxWidth {
				finish(i, false)
			}
		}
		rowOf[i] = len(rows)
		used += c.width
		cur.end = i + 1
	}
	if cur.end > cur.start {
		finish(cur.end, true)
	}
	return rows, rowOf
}

func rowContentWidth(units []Unit, cells []cell, start, end int) int {
	total := 0
	for i := start; i < end; i++ {
		total += cells[i].width
	}
	for i := end - 1; i >= start; i-- {
		if units[i].Kind == kindWord {
			total -= cells[i].trail
			break
		}
		total -= cells[i].width
	}
	if total < 0 {
		return 0
	}
	return total
}

// rowPadding returns the left padding and, for justified rows, the extra
// spaces to insert after each word of the row.
func rowPadding(units []Unit, row layoutRow, maxWidth int, align Align) (left int, extra map[int]int) {
	free := maxWidth - row.content
	if free <= 0 {
		return 0, nil
	}
	switch align {
	case AlignCenter:
		return free / 2, nil
	case AlignRight:
		return free, nil
	case AlignJustify:
		if row.lastOfLine {
			return 0, nil
		}
		var gaps []int
		lastWord := -1
		for i := row.start; i < row.end; i++ {
			if units[i].Kind == kindWord {
				if lastWord >= 0 {
					gaps = append(gaps, lastWord)
				}
				lastWord = i
			}
		}
		if len(gaps) == 0 {
			return 0, nil
		}
		extra = make(map[int]int, len(gaps))
		base, rem := free/len(gaps), free%len(gaps)
		for n, idx := range gaps {
			add := base
			if n < rem {
				add++
			}
			extra[idx] = add
		}
		return 0, extra
	default:
		return 0, nil
	}
}
