package text

import "golang.org/x/text/width"

// Width returns the number of terminal columns r occupies: 2 for East Asian
// Wide, Fullwidth and Ambiguous characters, 1 for everything else.
func Width(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth, width.EastAsianAmbiguous:
		return 2
	}
	return 1
}

// StringWidth returns the display width of s. An overstrike triple counts as
// its visible character only.
func StringWidth(s string) int {
	runes := []rune(s)
	cols := 0
	for pos := 0; pos < len(runes); pos++ {
		if isOverstrike(runes, pos) {
			pos += 2
		}
		cols += Width(runes[pos])
	}
	return cols
}
