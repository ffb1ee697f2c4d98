// Package layout folds logical lines into a Document of visual lines and
// computes the page geometry used to show it.
package layout

import "github.com/yhirose/immersion/internal/text"

// Line is one visual line, ready to draw.
type Line []text.StyledChar

// Width returns the display width of the line.
func (l Line) Width() int {
	w := 0
	for _, sc := range l {
		w += text.Width(sc.Rune)
	}
	return w
}

// Options are the layout-affecting settings.
type Options struct {
	Cols      int  // Column budget
	Linespace bool // Insert a blank line between logical lines
	WordWrap  bool // Prefer breaking at spaces
}

// Document is the folded form of the input.
type Document struct {
	Lines []Line
	Width int // Widest visual line
}

// Len returns the number of visual lines.
func (d *Document) Len() int { return len(d.Lines) }

// Build folds every logical line and decodes the result. It always produces a
// fresh Document.
func Build(lines []string, opt Options) *Document {
	doc := &Document{Lines: make([]Line, 0, len(lines))}
	for i, line := range lines {
		if i > 0 && opt.Linespace {
			doc.Lines = append(doc.Lines, Line{})
		}
		for _, seg := range text.Fold(line, opt.Cols, opt.WordWrap) {
			vl := Line(text.Decode(seg.Text))
			doc.Width = max(doc.Width, vl.Width())
			doc.Lines = append(doc.Lines, vl)
		}
	}
	return doc
}

// MaxWidth returns the display width of the widest logical line.
func MaxWidth(lines []string) int {
	cols := 0
	for _, line := range lines {
		cols = max(cols, text.StringWidth(line))
	}
	return cols
}
