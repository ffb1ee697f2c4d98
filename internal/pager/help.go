package pager

import "github.com/mattn/go-runewidth"

// helpColumn is the width of the key/flag column on the help screen.
const helpColumn = 20

// Option describes one startup option for the help screen.
type Option struct {
	Flag string // e.g. "-c cols"
	Help string
}

// HelpLines builds the document shown when there is nothing else to page:
// the usage line, the options and every key binding.
func HelpLines(usage string, options []Option) []string {
	lines := []string{usage, ""}
	if len(options) > 0 {
		lines = append(lines, "  options:")
		for _, o := range options {
			lines = append(lines, helpRow(o.Flag, o.Help))
		}
		lines = append(lines, "")
	}
	lines = append(lines, "  commands:")
	for _, b := range Bindings {
		lines = append(lines, helpRow(b.Label(), b.Help))
	}
	return lines
}

func helpRow(key, help string) string {
	return "    " + runewidth.FillRight(key, helpColumn) + help
}
