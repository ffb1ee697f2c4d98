package terminal

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/yhirose/immersion/internal/text"
)

// Terminal manages raw mode, the alternate screen buffer, terminal dimensions
// and a buffered frame of drawing commands.
type Terminal struct {
	in       *os.File
	out      *os.File
	oldState *term.State
	rows     int
	cols     int
	sigwinch chan os.Signal
	keys     chan readResult
	frame    frame
}

type readResult struct {
	event InputEvent
	err   error
}

// New puts in into raw mode and takes over out. When standard input is a pipe
// the caller passes the controlling terminal as in.
func New(in, out *os.File) (*Terminal, error) {
	t := &Terminal{in: in, out: out}

	// Switch to raw mode.
	oldState, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, err
	}
	t.oldState = oldState

	// Enter alternate screen buffer.
	io.WriteString(out, "\x1b[?1049h")

	// Query size.
	t.cols, t.rows, err = term.GetSize(int(out.Fd()))
	if err != nil {
		t.Close()
		return nil, err
	}

	// Listen for resize signals.
	t.sigwinch = make(chan os.Signal, 1)
	signal.Notify(t.sigwinch, unix.SIGWINCH)

	t.keys = make(chan readResult)
	go t.readLoop()

	return t, nil
}

// OpenTTY opens the controlling terminal. It is the keyboard when standard
// input carries the text.
func OpenTTY() (*os.File, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	return f, nil
}

// Resize re-queries terminal dimensions. Returns true if the size changed.
func (t *Terminal) Resize() bool {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return false
	}
	changed := w != t.cols || h != t.rows
	t.cols = w
	t.rows = h
	return changed
}

// Size returns the terminal height and width.
func (t *Terminal) Size() (rows, cols int) { return t.rows, t.cols }

// IgnoreInterrupt keeps SIGINT from ending the process.
func (t *Terminal) IgnoreInterrupt() {
	signal.Ignore(unix.SIGINT)
}

// SetCursorVisible shows or hides the cursor immediately.
func (t *Terminal) SetCursorVisible(visible bool) {
	if visible {
		io.WriteString(t.out, "\x1b[?25h")
	} else {
		io.WriteString(t.out, "\x1b[?25l")
	}
}

// Clear starts a new frame with an erased screen.
func (t *Terminal) Clear() { t.frame.clear() }

// MoveTo positions the frame cursor at a 0-based row and column.
func (t *Terminal) MoveTo(row, col int) { t.frame.moveTo(row, col) }

// Put draws r with style at the frame cursor.
func (t *Terminal) Put(r rune, style text.Style) { t.frame.put(r, style) }

// Show writes the buffered frame to the terminal in one go.
func (t *Terminal) Show() error { return t.frame.flush(t.out) }

// Close returns the terminal to its original state.
func (t *Terminal) Close() {
	io.WriteString(t.out, "\x1b[0m")
	// Show cursor.
	io.WriteString(t.out, "\x1b[?25h")
	// Leave alternate screen buffer.
	io.WriteString(t.out, "\x1b[?1049l")
	if t.oldState != nil {
		term.Restore(int(t.in.Fd()), t.oldState)
	}
	if t.sigwinch != nil {
		signal.Stop(t.sigwinch)
	}
}

// ReadEvent blocks until a key arrives or the terminal is resized.
func (t *Terminal) ReadEvent() (InputEvent, error) {
	select {
	case <-t.sigwinch:
		t.Resize()
		return InputEvent{Type: EventResize}, nil
	case r := <-t.keys:
		return r.event, r.err
	}
}

// readLoop turns raw input into key events. It is the only reader of t.in.
func (t *Terminal) readLoop() {
	buf := make([]byte, 32)
	for {
		n, err := t.in.Read(buf)
		if err != nil {
			t.keys <- readResult{err: err}
			return
		}
		for _, k := range parseKeys(buf[:n]) {
			t.keys <- readResult{event: InputEvent{Type: EventKey, Key: k}}
		}
	}
}
