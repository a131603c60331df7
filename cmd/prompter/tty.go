package main

import (
	"errors"
	"os"
	"runtime"
)

type ttyFiles struct {
	in  *os.File
	out *os.File
	own bool
}

// openTTY prefers /dev/tty so the script may arrive on stdin.
func openTTY() (*ttyFiles, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		if runtime.GOOS == "windows" {
			return &ttyFiles{in: os.Stdin, out: os.Stdout}, nil
		}
		return nil, err
	}
	if tty == nil {
		return nil, errors.New("no tty available")
	}
	return &ttyFiles{in: tty, out: tty, own: true}, nil
}

func (t *ttyFiles) Close() error {
	if t.own {
		return t.in.Close()
	}
	return nil
}
