package editor

import "log"

// Config configures an Editor.
type Config struct {
	// Screen size in cells, including the status line. Defaults to 80x24
	// until the first resize.
	Width, Height int

	// KeyMap defaults to DefaultKeyMap when no binding has keys.
	KeyMap KeyMap

	// Rendering options.
	Style    Style
	TabWidth int // default: 8

	// Logger receives debug events. Nil discards them.
	Logger *log.Logger
}
