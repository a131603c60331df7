// Package prompter is a teleprompter engine.
//
// A script is tokenized into units (words, whitespace runs and line breaks)
// that reproduce the input losslessly. A Controller owns the units, a cursor
// that only rests on words, and a single cancellable timer that advances the
// cursor at a pace derived from a speed factor. Every highlight moves the
// surface so the line holding the current word sits at the viewport center.
//
// The controller only talks to a Surface. TerminalSurface draws on an ANSI
// terminal and animates scrolling; StreamSurface writes words to any
// io.Writer as they are reached.
//
// Example:
//
//	err := prompter.Play(ctx, prompter.PlayRequest{
//		Text:   "Hello world\nand goodbye",
//		Writer: os.Stdout,
//		Speed:  1.5,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Session binds a TerminalSurface to keyboard input: space toggles
// playback, the arrow keys step, and ':' opens a command line.
package prompter
