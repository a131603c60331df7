// Package logging assembles the structured slog loggers used by prompter.
//
// Handlers for every configured output are fanned out with slog-multi so a
// session can log to a file and, when not drawing on the terminal, to
// stderr as well. Each logger carries a session_id attribute.
package logging
