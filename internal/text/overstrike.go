package text

// Backspace joins the two halves of an overstrike pair.
const Backspace = '\b'

// Style is the emphasis applied to a decoded character.
type Style int

const (
	Normal Style = iota
	Bold
	Underline
)

func (s Style) String() string {
	switch s {
	case Bold:
		return "bold"
	case Underline:
		return "underline"
	default:
		return "normal"
	}
}

// StyledChar is a visible character together with its emphasis.
type StyledChar struct {
	Rune  rune
	Style Style
}

// isOverstrike reports whether runes[pos] starts a complete overstrike triple.
// A backspace with nothing after it is not a triple.
func isOverstrike(runes []rune, pos int) bool {
	return pos+2 < len(runes) && runes[pos+1] == Backspace
}

// Decode turns a line using the overstrike convention into styled characters.
// "_\bX" underlines X and "X\bX" emboldens it. Any other overstruck pair is
// dropped. Decode never fails.
func Decode(line string) []StyledChar {
	runes := []rune(line)
	out := make([]StyledChar, 0, len(runes))
	for pos := 0; pos < len(runes); {
		c := runes[pos]
		if !isOverstrike(runes, pos) {
			out = append(out, StyledChar{Rune: c, Style: Normal})
			pos++
			continue
		}
		c2 := runes[pos+2]
		pos += 3
		switch {
		case c == '_':
			out = append(out, StyledChar{Rune: c2, Style: Underline})
		case c == c2:
			out = append(out, StyledChar{Rune: c2, Style: Bold})
		}
	}
	return out
}

// Plain returns the visible characters of chars without styling.
func Plain(chars []StyledChar) string {
	rs := make([]rune, len(chars))
	for i, sc := range chars {
		rs[i] = sc.Rune
	}
	return string(rs)
}
