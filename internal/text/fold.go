package text

// Segment is one folded slice of a logical line.
type Segment struct {
	Start int    // Rune offset of the first character in the line
	End   int    // Rune offset just past the last character
	Text  string // The raw text, overstrike sequences included
}

// IsInvalidStart reports whether r is closing punctuation that should not
// begin a visual line.
func IsInvalidStart(r rune) bool {
	switch r {
	case '.', ',', ';', '?', '!', '。', '，', '？', '！', '･':
		return true
	}
	return false
}

// Fold splits line into segments no wider than cols display columns.
//
// When the next character does not fit, closing punctuation is kept on the
// current segment, a space becomes the break, and with wordWrap the segment
// ends at the last space before the character. Otherwise the line is broken
// right before it. A character wider than cols starts a segment of its own;
// the break rules still apply to whatever follows it.
// The spaces a break consumes belong to no segment.
func Fold(line string, cols int, wordWrap bool) []Segment {
	if cols < 1 {
		cols = 1
	}
	runes := []rune(line)
	if len(runes) == 0 {
		return []Segment{{}}
	}

	var segs []Segment
	emit := func(from, to int) {
		segs = append(segs, Segment{Start: from, End: to, Text: string(runes[from:to])})
	}

	pos, start, col := 0, 0, 0
	for pos < len(runes) {
		// A unit is a plain character or a whole overstrike triple.
		unitStart := pos
		c := runes[pos]
		if isOverstrike(runes, pos) {
			pos += 2
			c = runes[pos]
		}
		unitEnd := pos + 1
		w := Width(c)

		if col+w <= cols {
			col += w
			pos = unitEnd
			continue
		}

		switch {
		case IsInvalidStart(c):
			pos = unitEnd
			emit(start, pos)
			for pos < len(runes) && runes[pos] == ' ' {
				pos++
			}
			start, col = pos, 0

		case c == ' ':
			emit(start, unitStart)
			pos = unitEnd
			start, col = pos, 0

		case wordWrap && lastSpace(runes, start, unitStart) >= start:
			brk := lastSpace(runes, start, unitStart)
			if brk > start {
				emit(start, brk)
			}
			pos = brk + 1
			start, col = pos, 0

		default:
			if unitStart > start {
				emit(start, unitStart)
			}
			start, col = unitStart, w
			pos = unitEnd
		}
	}

	if start < pos {
		emit(start, pos)
	}
	return segs
}

// lastSpace returns the index of the last plain space in runes[from:to], or
// -1. Spaces that are part of an overstrike triple do not count.
func lastSpace(runes []rune, from, to int) int {
	for i := to - 1; i >= from; i-- {
		if runes[i] != ' ' {
			continue
		}
		if i+1 < len(runes) && runes[i+1] == Backspace {
			continue
		}
		if i >= 1 && runes[i-1] == Backspace {
			continue
		}
		return i
	}
	return -1
}
