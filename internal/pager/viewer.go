// Package pager implements the interactive viewer: the scroll and size state
// machine, key bindings, and drawing a folded document onto a Surface.
package pager

import (
	"fmt"
	"log/slog"

	"github.com/yhirose/immersion/internal/layout"
	"github.com/yhirose/immersion/internal/terminal"
	"github.com/yhirose/immersion/internal/text"
)

// DefaultMinMargin is the number of rows and columns kept free around the
// text unless configured otherwise.
const DefaultMinMargin = 2

// Surface is the display the Viewer draws on and reads input from.
// terminal.Terminal and terminal.Screen implement it.
type Surface interface {
	Size() (rows, cols int)
	Clear()
	MoveTo(row, col int)
	Put(r rune, style text.Style)
	Show() error
	ReadEvent() (terminal.InputEvent, error)
	SetCursorVisible(visible bool)
	IgnoreInterrupt()
}

// Config holds the startup options of a Viewer.
type Config struct {
	Cols      int // Column budget; 0 fits the widest line into the terminal
	Rows      int // Row budget; 0 fills the terminal
	MinMargin int
	Linespace bool
	WordWrap  bool
	Logger    *slog.Logger
}

// State is a snapshot of the viewport.
type State struct {
	Cols      int
	Rows      int
	Margin    int
	Linespace bool
	WordWrap  bool
	Offset    int // Index of the first visible line
	Visible   int
	Bottom    int // Largest valid Offset
	Lines     int // Visual lines in the document
	TermRows  int
	TermCols  int
}

// Viewer owns the viewport state. It is not safe for concurrent use; Run
// processes one event at a time.
type Viewer struct {
	surface   Surface
	lines     []string
	minMargin int
	log       *slog.Logger

	cols      int
	linespace bool
	wordWrap  bool
	offset    int
	termRows  int
	termCols  int

	// reqRows is the requested row budget. 0 fills the terminal and stays 0
	// across relayouts until Taller or Shorter sets an explicit budget.
	reqRows int

	// Derived by relayout.
	doc     *layout.Document
	rows    int
	margin  int
	visible int
	bottom  int
}

// New creates a Viewer for lines and lays it out for the surface's size.
func New(surface Surface, lines []string, cfg Config) *Viewer {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	v := &Viewer{
		surface:   surface,
		lines:     lines,
		minMargin: max(cfg.MinMargin, 0),
		log:       log,
		reqRows:   cfg.Rows,
		linespace: cfg.Linespace,
		wordWrap:  cfg.WordWrap,
	}
	v.termRows, v.termCols = surface.Size()

	v.cols = cfg.Cols
	if v.cols <= 0 {
		v.cols = min(layout.MaxWidth(lines), v.termCols-v.minMargin*2)
	}
	v.cols = max(v.cols, 1)

	v.relayout()
	return v
}

// State returns the current viewport.
func (v *Viewer) State() State {
	return State{
		Cols:      v.cols,
		Rows:      v.rows,
		Margin:    v.margin,
		Linespace: v.linespace,
		WordWrap:  v.wordWrap,
		Offset:    v.offset,
		Visible:   v.visible,
		Bottom:    v.bottom,
		Lines:     v.doc.Len(),
		TermRows:  v.termRows,
		TermCols:  v.termCols,
	}
}

// Document returns the current folded document.
func (v *Viewer) Document() *layout.Document { return v.doc }

// Run draws the document and processes events until quit.
func (v *Viewer) Run() error {
	v.surface.IgnoreInterrupt()
	v.surface.SetCursorVisible(false)
	if err := v.Draw(); err != nil {
		return err
	}
	for {
		in, err := v.surface.ReadEvent()
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if !v.Handle(Translate(in)) {
			return nil
		}
		if err := v.Draw(); err != nil {
			return err
		}
	}
}

// Handle applies ev to the viewport. It returns false when ev ends the
// session.
func (v *Viewer) Handle(ev Event) bool {
	layoutChanged := false

	switch ev {
	case EventQuit:
		return false
	case EventToggleLinespace:
		v.linespace = !v.linespace
		layoutChanged = true
	case EventWiden:
		if v.cols < v.termCols-v.minMargin*2 {
			v.cols++
			layoutChanged = true
		}
	case EventNarrow:
		if v.cols > v.minMargin*2 {
			v.cols = max(v.cols-2, 1)
			layoutChanged = true
		}
	case EventTaller:
		if v.rows < v.termRows-v.minMargin*2 {
			v.reqRows = v.rows + 2
			layoutChanged = true
		}
	case EventShorter:
		if v.rows > v.minMargin*2 {
			v.reqRows = max(v.rows-2, 1)
			layoutChanged = true
		}
	case EventScrollDown:
		if v.offset < v.bottom {
			v.offset++
		}
	case EventScrollUp:
		if v.offset > 0 {
			v.offset--
		}
	case EventPageDown:
		v.scroll(v.visible)
	case EventPageUp:
		v.scroll(-v.visible)
	case EventHalfPageDown:
		v.scroll(max(v.visible/2, 1))
	case EventHalfPageUp:
		v.scroll(-max(v.visible/2, 1))
	case EventTop:
		v.offset = 0
	case EventBottom:
		v.offset = v.bottom
	case EventResize:
		v.termRows, v.termCols = v.surface.Size()
		v.log.Debug("terminal resized", "rows", v.termRows, "cols", v.termCols)
		layoutChanged = true
	case EventUnknown:
	}

	if layoutChanged {
		v.relayout()
	}
	return true
}

func (v *Viewer) scroll(delta int) {
	v.offset = min(max(v.offset+delta, 0), v.bottom)
}

// relayout rebuilds the document and everything derived from it.
func (v *Viewer) relayout() {
	v.doc = layout.Build(v.lines, layout.Options{
		Cols:      v.cols,
		Linespace: v.linespace,
		WordWrap:  v.wordWrap,
	})
	v.margin = layout.Margin(v.reqRows, v.minMargin, v.doc.Len(), v.termRows)
	v.rows = layout.ViewRows(v.termRows, v.margin)
	v.visible, v.bottom = layout.Page(v.doc.Len(), v.rows)
	if v.offset > v.bottom {
		v.offset = v.bottom
	}
	v.log.Debug("layout",
		"cols", v.cols,
		"rows", v.rows,
		"margin", v.margin,
		"lines", v.doc.Len(),
		"bottom", v.bottom,
		"offset", v.offset,
	)
}
