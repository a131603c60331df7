package prompter

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputAcceptsScript(t *testing.T) {
	data := []byte("Good evening.\n\tTonight's top story:\r\n  weather.\n")
	if err := ValidateInput(data); err != nil {
		t.Fatalf("expected script to validate, got %v", err)
	}
}

func TestReadScript(t *testing.T) {
	text, err := ReadScript(strings.NewReader("Hello   world\n\nFoo"))
	if err != nil {
		t.Fatalf("ReadScript: %v", err)
	}
	if text != "Hello   world\n\nFoo" {
		t.Fatalf("unexpected text %q", text)
	}
	if _, err := ReadScript(strings.NewReader("a\x00b")); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	if _, err := ReadScript(nil); err == nil {
		t.Fatalf("expected error for nil reader")
	}
}
