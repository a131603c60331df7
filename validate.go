package prompter

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
	// MaxScriptBytes bounds how much ReadScript accepts.
	MaxScriptBytes = 16 << 20
)

// ValidateInput returns an error if the input is not valid UTF-8 or appears binary.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var total, control int
	for _, b := range src {
		total++
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if total >= minBinarySample && control*100 >= total*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

// ReadScript reads a whole script from r and validates it.
func ReadScript(r io.Reader) (string, error) {
	if r == nil {
		return "", fmt.Errorf("read script: reader is nil")
	}
	data, err := io.ReadAll(io.LimitReader(r, MaxScriptBytes+1))
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	if len(data) > MaxScriptBytes {
		return "", fmt.Errorf("read script: larger than %d bytes", MaxScriptBytes)
	}
	if err := ValidateInput(data); err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	return string(data), nil
}

func isControlByte(b byte) bool {
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	if b == 0x7F {
		return true
	}
	return false
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	if r < 0x20 || r == 0x7F {
		return true
	}
	return false
}
