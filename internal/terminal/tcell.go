package terminal

import (
	"errors"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sys/unix"

	"github.com/yhirose/immersion/internal/text"
)

// ErrClosed is returned by Screen.ReadEvent once the screen has been finalized.
var ErrClosed = errors.New("terminal: screen closed")

// Screen adapts a tcell.Screen to the same drawing and event surface as
// Terminal.
type Screen struct {
	screen tcell.Screen
	row    int
	col    int
}

// NewScreen initializes a tcell screen on the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return NewScreenFrom(s), nil
}

// NewScreenFrom wraps an already initialized screen.
func NewScreenFrom(s tcell.Screen) *Screen {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
	return &Screen{screen: s}
}

func (s *Screen) Size() (rows, cols int) {
	w, h := s.screen.Size()
	return h, w
}

func (s *Screen) Clear() { s.screen.Clear() }

func (s *Screen) MoveTo(row, col int) { s.row, s.col = row, col }

// Put draws r and advances the cursor by its layout width, which may differ
// from tcell's own idea of ambiguous-width characters.
func (s *Screen) Put(r rune, style text.Style) {
	s.screen.SetContent(s.col, s.row, printable(r), nil, cellStyle(style))
	s.col += text.Width(r)
}

func (s *Screen) Show() error {
	s.screen.Show()
	return nil
}

func (s *Screen) SetCursorVisible(visible bool) {
	if visible {
		s.screen.ShowCursor(s.col, s.row)
	} else {
		s.screen.HideCursor()
	}
}

func (s *Screen) IgnoreInterrupt() {
	signal.Ignore(unix.SIGINT)
}

func (s *Screen) ReadEvent() (InputEvent, error) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return InputEvent{}, ErrClosed
		}
		in, ok := translate(ev)
		if !ok {
			continue
		}
		if in.Type == EventResize {
			s.screen.Sync()
		}
		return in, nil
	}
}

// Close finalizes the screen and restores the terminal.
func (s *Screen) Close() { s.screen.Fini() }

func cellStyle(style text.Style) tcell.Style {
	st := tcell.StyleDefault
	switch style {
	case text.Bold:
		st = st.Bold(true)
	case text.Underline:
		st = st.Underline(true)
	}
	return st
}

// translate maps a tcell event to an InputEvent. Events the pager has no use
// for (mouse, paste, focus) report false.
func translate(ev tcell.Event) (InputEvent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return InputEvent{Type: EventResize}, true
	case *tcell.EventKey:
		return InputEvent{Type: EventKey, Key: translateKey(ev)}, true
	}
	return InputEvent{}, false
}

func translateKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			switch ev.Rune() {
			case 'c':
				return Key{Type: KeyCtrlC}
			case 'd':
				return Key{Type: KeyCtrlD}
			case 'u':
				return Key{Type: KeyCtrlU}
			}
			return Key{Type: KeyUnknown}
		}
		return Key{Type: KeyRune, Rune: ev.Rune()}
	case tcell.KeyEscape:
		return Key{Type: KeyEscape}
	case tcell.KeyEnter:
		return Key{Type: KeyEnter}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Key{Type: KeyBackspace}
	case tcell.KeyUp:
		return Key{Type: KeyUp}
	case tcell.KeyDown:
		return Key{Type: KeyDown}
	case tcell.KeyLeft:
		return Key{Type: KeyLeft}
	case tcell.KeyRight:
		return Key{Type: KeyRight}
	case tcell.KeyCtrlC:
		return Key{Type: KeyCtrlC}
	case tcell.KeyCtrlD:
		return Key{Type: KeyCtrlD}
	case tcell.KeyCtrlU:
		return Key{Type: KeyCtrlU}
	case tcell.KeyHome:
		return Key{Type: KeyHome}
	case tcell.KeyEnd:
		return Key{Type: KeyEnd}
	case tcell.KeyDelete:
		return Key{Type: KeyDelete}
	case tcell.KeyPgUp:
		return Key{Type: KeyPgUp}
	case tcell.KeyPgDn:
		return Key{Type: KeyPgDn}
	}
	return Key{Type: KeyUnknown}
}
