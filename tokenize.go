package prompter

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrEmptyInput matches every *EmptyInputError via errors.Is.
var ErrEmptyInput = errors.New("empty input")

// EmptyInputError reports a script that is blank or whitespace only.
type EmptyInputError struct {
	Length int
}

func (e *EmptyInputError) Error() string {
	return "Please enter some text for the teleprompter."
}

// Is lets errors.Is(err, ErrEmptyInput) match.
func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

const (
	newlineText     = "\n"
	placeholderText = " "
)

// Tokenize splits raw script text into display units.
//
// Lines are separated by newline units. A whitespace-only line becomes a
// single whitespace unit, an empty line a single-space placeholder. Other
// lines alternate word and whitespace units, whitespace runs kept verbatim
// and every word displayed with one trailing space.
func Tokenize(raw string) ([]Unit, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &EmptyInputError{Length: len(raw)}
	}
	units := make([]Unit, 0, estimateUnits(raw))
	emit := func(text, source string, kind unitKind) {
		units = append(units, Unit{Text: text, Source: source, Kind: kind, Index: len(units)})
	}
	lineIdx := 0
	for line := range strings.SplitSeq(raw, newlineText) {
		if lineIdx > 0 {
			emit(newlineText, newlineText, kindNewline)
		}
		lineIdx++
		switch {
		case line == "":
			emit(placeholderText, "", kindWhitespace)
		case strings.TrimSpace(line) == "":
			emit(line, line, kindWhitespace)
		default:
			splitLine(line, emit)
		}
	}
	return units, nil
}

func splitLine(line string, emit func(text, source string, kind unitKind)) {
	start := 0
	inSpace := false
	for i, r := range line {
		space := unicode.IsSpace(r)
		if i == 0 {
			inSpace = space
			continue
		}
		if space != inSpace {
			emitSegment(line[start:i], inSpace, emit)
			start = i
			inSpace = space
		}
	}
	if start < len(line) {
		emitSegment(line[start:], inSpace, emit)
	}
}

func emitSegment(seg string, space bool, emit func(text, source string, kind unitKind)) {
	if space {
		emit(seg, seg, kindWhitespace)
		return
	}
	emit(seg+" ", seg, kindWord)
}

func estimateUnits(raw string) int {
	n := utf8.RuneCountInString(raw) / 3
	if n < 4 {
		return 4
	}
	return n
}

// Join reassembles the original text from units.
func Join(units []Unit) string {
	var b strings.Builder
	for _, u := range units {
		b.WriteString(u.Literal())
	}
	return b.String()
}

// CountWords returns the number of advanceable units.
func CountWords(units []Unit) int {
	n := 0
	for _, u := range units {
		if u.Advanceable() {
			n++
		}
	}
	return n
}

// FirstWord returns the index of the first advanceable unit, or 0 when
// there is none.
func FirstWord(units []Unit) int {
	for i, u := range units {
		if u.Advanceable() {
			return i
		}
	}
	return 0
}
