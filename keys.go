package prompter

import (
	"bufio"
	"unicode/utf8"
)

// KeyKind classifies a decoded key press.
type KeyKind uint8

const (
	KeyUnknown KeyKind = iota
	KeyRune
	KeySpace
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyCtrlC
)

// Key is one decoded key press. Rune is set for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

// KeyDecoder turns raw terminal bytes into keys.
type KeyDecoder struct {
	r *bufio.Reader
}

// NewKeyDecoder returns a decoder reading from r.
func NewKeyDecoder(r *bufio.Reader) *KeyDecoder {
	return &KeyDecoder{r: r}
}

// ReadKey blocks until a key is available.
func (d *KeyDecoder) ReadKey() (Key, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	switch b {
	case 0x1b:
		return d.parseEscape(), nil
	case ' ':
		return Key{Kind: KeySpace}, nil
	case '\r', '\n':
		return Key{Kind: KeyEnter}, nil
	case 0x7f, 0x08:
		return Key{Kind: KeyBackspace}, nil
	case 0x03:
		return Key{Kind: KeyCtrlC}, nil
	}
	if b < utf8.RuneSelf {
		if b < 0x20 {
			return Key{Kind: KeyUnknown}, nil
		}
		return Key{Kind: KeyRune, Rune: rune(b)}, nil
	}
	buf := []byte{b}
	for !utf8.FullRune(buf) && len(buf) < utf8.UTFMax {
		next, err := d.r.ReadByte()
		if err != nil {
			break
		}
		buf = append(buf, next)
	}
	r, _ := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return Key{Kind: KeyUnknown}, nil
	}
	return Key{Kind: KeyRune, Rune: r}, nil
}

func (d *KeyDecoder) parseEscape() Key {
	if d.r.Buffered() == 0 {
		return Key{Kind: KeyEscape}
	}
	next, err := d.r.ReadByte()
	if err != nil {
		return Key{Kind: KeyEscape}
	}
	if next != '[' && next != 'O' {
		return Key{Kind: KeyEscape}
	}
	for {
		final, err := d.r.ReadByte()
		if err != nil {
			return Key{Kind: KeyUnknown}
		}
		// parameter and intermediate bytes precede the final byte
		if final >= 0x20 && final <= 0x3f {
			continue
		}
		switch final {
		case 'A':
			return Key{Kind: KeyUp}
		case 'B':
			return Key{Kind: KeyDown}
		case 'C':
			return Key{Kind: KeyRight}
		case 'D':
			return Key{Kind: KeyLeft}
		default:
			return Key{Kind: KeyUnknown}
		}
	}
}
