package termio

import "fmt"

// TERM_BLACK represents black
const TERM_BLACK = uint(0)

// TERM_RED represents red
const TERM_RED = uint(1)

// TERM_GREEN represents green
const TERM_GREEN = uint(2)

// TERM_YELLOW represents yellow
const TERM_YELLOW = uint(3)

// TERM_BLUE represents blue
const TERM_BLUE = uint(4)

// TERM_MAGENTA represents magenta
const TERM_MAGENTA = uint(5)

// TERM_CYAN represents cyan
const TERM_CYAN = uint(6)

// TERM_WHITE represents white
const TERM_WHITE = uint(7)

// Painter renders text with ANSI escape codes, or verbatim when colouring is
// disabled (e.g. because output is not going to a terminal).
type Painter struct {
	enabled bool
}

// NewPainter constructs a painter which emits escape codes only when enabled.
func NewPainter(enabled bool) Painter {
	return Painter{enabled}
}

// Colour wraps text in a foreground colour escape.
func (p Painter) Colour(text string, colour uint) string {
	if !p.enabled {
		return text
	}
	//
	return fmt.Sprintf("\033[%dm%s\033[0m", 30+colour, text)
}

// BoldColour wraps text in a bold foreground colour escape.
func (p Painter) BoldColour(text string, colour uint) string {
	if !p.enabled {
		return text
	}
	//
	return fmt.Sprintf("\033[%d;1m%s\033[0m", 30+colour, text)
}
