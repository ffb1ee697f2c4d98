// Package source acquires the lines to page from standard input or a file.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yhirose/immersion/internal/text"
)

// TabStop is the tab width used when expanding tabs.
const TabStop = 8

// Origin tells where the lines of an Input came from.
type Origin int

const (
	OriginHelp Origin = iota // Nothing to read; the caller shows help
	OriginFile
	OriginPipe
)

func (o Origin) String() string {
	switch o {
	case OriginFile:
		return "file"
	case OriginPipe:
		return "pipe"
	default:
		return "help"
	}
}

// Input is the text to page.
type Input struct {
	Lines  []string
	Origin Origin
}

// Load reads piped standard input if there is any, otherwise the file at
// path. With neither it returns an empty Input with OriginHelp.
func Load(path string, stdin *os.File) (*Input, error) {
	tty := stdin == nil || term.IsTerminal(int(stdin.Fd()))
	var r io.Reader
	if stdin != nil {
		r = stdin
	}
	return load(path, r, tty)
}

func load(path string, stdin io.Reader, stdinIsTTY bool) (*Input, error) {
	if !stdinIsTTY && stdin != nil {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return &Input{Lines: Split(data), Origin: OriginPipe}, nil
	}
	if path == "" {
		return &Input{Origin: OriginHelp}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return &Input{Lines: Split(data), Origin: OriginFile}, nil
}

// Split breaks data into lines. One trailing newline is dropped, carriage
// returns before a newline are trimmed and tabs are expanded.
func Split(data []byte) []string {
	data = bytes.TrimSuffix(data, []byte("\n"))
	if len(data) == 0 {
		return []string{""}
	}
	raw := strings.Split(string(data), "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = ExpandTabs(strings.TrimSuffix(line, "\r"), TabStop)
	}
	return lines
}

// ExpandTabs replaces each tab with spaces up to the next multiple of
// tabstop columns. A backspace moves the column back over the previous
// character, so overstruck text keeps its alignment.
func ExpandTabs(line string, tabstop int) string {
	if !strings.ContainsRune(line, '\t') || tabstop <= 0 {
		return line
	}
	var b strings.Builder
	col := 0
	prev := 0
	for _, r := range line {
		switch r {
		case '\t':
			n := tabstop - col%tabstop
			b.WriteString(strings.Repeat(" ", n))
			col += n
			prev = 1
		case text.Backspace:
			b.WriteRune(r)
			col = max(col-prev, 0)
			prev = 0
		default:
			b.WriteRune(r)
			prev = text.Width(r)
			col += prev
		}
	}
	return b.String()
}
