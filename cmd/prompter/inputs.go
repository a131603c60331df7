package main

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"pkt.systems/prompter/internal/config"
)

// scriptPart is one script named on the command line, opened on first read.
type scriptPart struct {
	name string
	open func() (io.ReadCloser, error)
}

// scriptReader reads parts back to back. A part that does not end in a line
// break is followed by one, so the last word of a script never runs into the
// first word of the next.
type scriptReader struct {
	parts   []scriptPart
	next    int
	cur     io.ReadCloser
	started bool
	lastNL  bool
	needNL  bool
	done    bool
}

func (r *scriptReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for !r.done {
		if r.cur == nil {
			if r.next >= len(r.parts) {
				r.done = true
				break
			}
			part := r.parts[r.next]
			r.next++
			rc, err := part.open()
			if err != nil {
				return 0, fmt.Errorf("%s: %w", part.name, err)
			}
			r.cur = rc
			r.needNL = r.started && !r.lastNL
		}
		if r.needNL {
			r.needNL = false
			r.lastNL = true
			p[0] = '\n'
			return 1, nil
		}
		n, err := r.cur.Read(p)
		if n > 0 {
			r.started = true
			r.lastNL = p[n-1] == '\n'
			return n, nil
		}
		if err == io.EOF {
			_ = r.cur.Close()
			r.cur = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
	return 0, io.EOF
}

func (r *scriptReader) Close() error {
	r.done = true
	if r.cur == nil {
		return nil
	}
	err := r.cur.Close()
	r.cur = nil
	return err
}

// openInputs joins the named scripts. No arguments or "-" read stdin.
func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	parts := make([]scriptPart, 0, len(args))
	for _, raw := range args {
		part, err := parseScriptArg(raw)
		if err != nil {
			return nil, nil, err
		}
		parts = append(parts, part)
	}
	r := &scriptReader{parts: parts}
	return r, r, nil
}

// parseScriptArg accepts "-", a path or a file:// URL. Network schemes are
// rejected.
func parseScriptArg(raw string) (scriptPart, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return scriptPart{}, fmt.Errorf("empty input argument")
	case raw == "-":
		return scriptPart{name: "stdin", open: func() (io.ReadCloser, error) {
			return io.NopCloser(os.Stdin), nil
		}}, nil
	}
	path := raw
	if u, err := url.Parse(raw); err == nil && len(u.Scheme) > 1 {
		if !strings.EqualFold(u.Scheme, "file") {
			return scriptPart{}, fmt.Errorf("unsupported input scheme %q", u.Scheme)
		}
		path = u.Path
		if path == "" {
			path = u.Host
		}
		if unescaped, err := url.PathUnescape(path); err == nil {
			path = unescaped
		}
	}
	return scriptPart{name: path, open: func() (io.ReadCloser, error) {
		return os.Open(normalizePath(path))
	}}, nil
}

// normalizePath expands "~" and makes path absolute, leaving it unchanged
// when that fails.
func normalizePath(path string) string {
	expanded, err := config.ExpandPath(path)
	if err != nil || expanded == "" {
		return path
	}
	return expanded
}
