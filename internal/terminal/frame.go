package terminal

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/yhirose/immersion/internal/text"
)

// frame collects one screen update as escape sequences and writes it to the
// terminal in a single call.
type frame struct {
	buf   strings.Builder
	style text.Style
}

func (f *frame) clear() {
	f.buf.Reset()
	f.style = text.Normal
	// Reset attributes, clear screen and move to top-left.
	f.buf.WriteString("\x1b[0m\x1b[2J\x1b[H")
}

func (f *frame) moveTo(row, col int) {
	fmt.Fprintf(&f.buf, "\x1b[%d;%dH", row+1, col+1)
}

func (f *frame) put(r rune, style text.Style) {
	if style != f.style {
		f.buf.WriteString(sgr(style))
		f.style = style
	}
	f.buf.WriteRune(printable(r))
}

func (f *frame) flush(w io.Writer) error {
	if f.style != text.Normal {
		f.buf.WriteString(sgr(text.Normal))
		f.style = text.Normal
	}
	_, err := io.WriteString(w, f.buf.String())
	f.buf.Reset()
	return err
}

func sgr(style text.Style) string {
	switch style {
	case text.Bold:
		return "\x1b[0;1m"
	case text.Underline:
		return "\x1b[0;4m"
	default:
		return "\x1b[0m"
	}
}

// printable replaces control characters, which would move the real cursor,
// with a visible placeholder of the same width.
func printable(r rune) rune {
	if unicode.IsControl(r) {
		return '?'
	}
	return r
}
