package pager

import "github.com/yhirose/immersion/internal/layout"

// Draw renders the current page and flushes the surface.
//
// A document that fits is centred both ways in the terminal. Otherwise the
// visible lines starting at the scroll offset are drawn below the top margin.
func (v *Viewer) Draw() error {
	v.surface.Clear()

	width := min(v.doc.Width, v.cols, v.termCols)
	x := layout.Center(v.termCols, width)

	total := v.doc.Len()
	if total <= v.rows {
		y := layout.Center(v.termRows, total)
		for i, line := range v.doc.Lines {
			v.drawLine(y+i, x, line)
		}
	} else {
		for i := 0; i < v.visible; i++ {
			v.drawLine(v.margin+i, x, v.doc.Lines[v.offset+i])
		}
	}

	return v.surface.Show()
}

func (v *Viewer) drawLine(row, col int, line layout.Line) {
	if len(line) == 0 {
		return
	}
	v.surface.MoveTo(row, col)
	for _, sc := range line {
		v.surface.Put(sc.Rune, sc.Style)
	}
}
