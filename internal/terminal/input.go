package terminal

import "unicode/utf8"

// Key types.
const (
	KeyRune      = iota // Normal printable character
	KeyEscape           // Escape key (standalone)
	KeyEnter            // Enter/Return
	KeyBackspace        // Backspace/Delete-backward
	KeyUp               // Arrow up
	KeyDown             // Arrow down
	KeyLeft             // Arrow left
	KeyRight            // Arrow right
	KeyCtrlC            // Ctrl+C
	KeyCtrlD            // Ctrl+D
	KeyCtrlU            // Ctrl+U
	KeyHome             // Home
	KeyEnd              // End
	KeyDelete           // Delete/Forward-delete
	KeyPgUp             // Page Up
	KeyPgDn             // Page Down
	KeyUnknown          // Unrecognised sequence
)

type Key struct {
	Type int
	Rune rune
}

// Event types.
const (
	EventKey = iota
	EventResize
)

// InputEvent is either a key press or a resize notification.
type InputEvent struct {
	Type int // EventKey or EventResize
	Key  Key
}

// parseKeys splits one read into keys. Escape sequences are taken whole;
// anything else is decoded one character at a time so typed-ahead keys are
// not lost.
func parseKeys(buf []byte) []Key {
	if len(buf) == 0 {
		return nil
	}
	if buf[0] == 27 {
		return []Key{parseKey(buf)}
	}
	var keys []Key
	for len(buf) > 0 {
		if buf[0] == 27 {
			return append(keys, parseKey(buf))
		}
		_, size := utf8.DecodeRune(buf)
		keys = append(keys, parseKey(buf[:size]))
		buf = buf[size:]
	}
	return keys
}

func parseKey(buf []byte) Key {
	if len(buf) == 0 {
		return Key{Type: KeyUnknown}
	}

	// Single byte.
	if len(buf) == 1 {
		b := buf[0]
		switch {
		case b == 27:
			return Key{Type: KeyEscape}
		case b == 13:
			return Key{Type: KeyEnter}
		case b == 127 || b == 8:
			return Key{Type: KeyBackspace}
		case b == 3: // Ctrl+C
			return Key{Type: KeyCtrlC}
		case b == 4: // Ctrl+D
			return Key{Type: KeyCtrlD}
		case b == 21: // Ctrl+U
			return Key{Type: KeyCtrlU}
		case b >= 32 && b < 127:
			return Key{Type: KeyRune, Rune: rune(b)}
		default:
			return Key{Type: KeyUnknown}
		}
	}

	// Escape sequences. SS3 (ESC O x) arrives from terminals in application
	// cursor mode.
	if buf[0] == 27 && len(buf) >= 3 && (buf[1] == '[' || buf[1] == 'O') {
		// 3-byte sequences.
		switch buf[2] {
		case 'A':
			return Key{Type: KeyUp}
		case 'B':
			return Key{Type: KeyDown}
		case 'C':
			return Key{Type: KeyRight}
		case 'D':
			return Key{Type: KeyLeft}
		case 'H':
			return Key{Type: KeyHome}
		case 'F':
			return Key{Type: KeyEnd}
		}

		// CSI 4-byte sequences: ESC [ <n> ~
		if len(buf) >= 4 && buf[1] == '[' && buf[3] == '~' {
			switch buf[2] {
			case '1', '7':
				return Key{Type: KeyHome}
			case '3':
				return Key{Type: KeyDelete}
			case '4', '8':
				return Key{Type: KeyEnd}
			case '5':
				return Key{Type: KeyPgUp}
			case '6':
				return Key{Type: KeyPgDn}
			}
		}
		return Key{Type: KeyUnknown}
	}

	// Multi-byte UTF-8 character.
	r, _ := utf8.DecodeRune(buf)
	if r >= 32 && r != utf8.RuneError {
		return Key{Type: KeyRune, Rune: r}
	}

	return Key{Type: KeyUnknown}
}
