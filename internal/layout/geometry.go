package layout

// Margin returns the number of blank rows above and below the content.
// A requestedRows of zero or less means "as many as fit inside minMargin".
// Short documents are centred; long ones get minMargin.
func Margin(requestedRows, minMargin, total, termRows int) int {
	minMargin = max(minMargin, 0)
	rows := requestedRows
	if rows <= 0 {
		rows = termRows - minMargin*2
	}
	return max((termRows-min(rows, total))/2, minMargin)
}

// ViewRows returns the rows left between the margins, at least 1.
func ViewRows(termRows, margin int) int {
	return max(termRows-margin*2, 1)
}

// Page returns how many lines are visible and the bottom offset, the largest
// scroll offset that still fills the view.
func Page(total, rows int) (visible, bottom int) {
	rows = max(rows, 1)
	if total <= rows {
		return total, 0
	}
	return rows, total - rows
}

// Center returns the offset that centres inner within outer, never negative.
func Center(outer, inner int) int {
	return max(outer/2-inner/2, 0)
}
