package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/yhirose/immersion/internal/pager"
	"github.com/yhirose/immersion/internal/source"
	"github.com/yhirose/immersion/internal/terminal"
)

var Version = "dev"

const usageLine = "usage: immersion [options] [file]"

type options struct {
	cols      int
	rows      int
	margin    int
	linespace bool
	wordWrap  bool
	backend   string
	logPath   string
	logLevel  string
	version   bool
	path      string
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "immersion: %v\n", err)
		os.Exit(1)
	}
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("immersion", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.cols, "c", 0, "text width in `cols` (0 fits the widest line)")
	fs.IntVar(&opts.rows, "r", 0, "window height in `rows` (0 fills the terminal)")
	fs.IntVar(&opts.margin, "m", pager.DefaultMinMargin, "minimum `margin` around the text")
	fs.BoolVar(&opts.linespace, "s", false, "insert a blank line between lines")
	fs.BoolVar(&opts.wordWrap, "w", false, "wrap at word boundaries")
	fs.StringVar(&opts.backend, "backend", "ansi", "display `backend` (ansi, tcell)")
	fs.StringVar(&opts.logPath, "log", "", "write a debug log to `file`")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log `level` (debug, info, warn, error)")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageLine)
		fs.PrintDefaults()
	}
	return fs
}

func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{}
	fs := newFlagSet(opts, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		opts.path = fs.Arg(0)
	default:
		return nil, nil, fmt.Errorf("too many arguments: %s", strings.Join(fs.Args(), " "))
	}
	switch opts.backend {
	case "ansi", "tcell":
	default:
		return nil, nil, fmt.Errorf("unknown backend: %s", opts.backend)
	}
	if opts.margin < 0 {
		return nil, nil, fmt.Errorf("invalid margin: %d", opts.margin)
	}
	return opts, fs, nil
}

// helpOptions lists the flags of fs for the help screen.
func helpOptions(fs *flag.FlagSet) []pager.Option {
	var out []pager.Option
	fs.VisitAll(func(f *flag.Flag) {
		name, usage := flag.UnquoteUsage(f)
		flagName := "-" + f.Name
		if name != "" {
			flagName += " " + name
		}
		out = append(out, pager.Option{Flag: flagName, Help: usage})
	})
	return out
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", s)
	}
}

// newLogger returns a logger writing to path, or a discarding one when path
// is empty. The screen owns stdout, so nothing is logged there.
func newLogger(path, level string) (*slog.Logger, func() error, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})), f.Close, nil
}

// openSurface takes over the terminal. When stdin carries the text, keys
// are read from the controlling terminal.
func openSurface(backend string, piped bool) (pager.Surface, func(), error) {
	if backend == "tcell" {
		s, err := terminal.NewScreen()
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}

	in := os.Stdin
	closeIn := func() {}
	if piped {
		tty, err := terminal.OpenTTY()
		if err != nil {
			return nil, nil, err
		}
		in = tty
		closeIn = func() { tty.Close() }
	}
	t, err := terminal.New(in, os.Stdout)
	if err != nil {
		closeIn()
		return nil, nil, err
	}
	return t, func() {
		t.Close()
		closeIn()
	}, nil
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) error {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintln(stdout, "immersion", Version)
		return nil
	}

	logger, closeLog, err := newLogger(opts.logPath, opts.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	input, err := source.Load(opts.path, stdin)
	if err != nil {
		return err
	}

	cfg := pager.Config{
		Cols:      opts.cols,
		Rows:      opts.rows,
		MinMargin: opts.margin,
		Linespace: opts.linespace,
		WordWrap:  opts.wordWrap,
		Logger:    logger,
	}
	lines := input.Lines
	if input.Origin == source.OriginHelp {
		lines = pager.HelpLines(usageLine, helpOptions(fs))
		cfg.Cols, cfg.Rows = 0, 0
	}
	logger.Info("starting",
		"origin", input.Origin,
		"lines", len(lines),
		"backend", opts.backend,
	)

	surface, closeSurface, err := openSurface(opts.backend, input.Origin == source.OriginPipe)
	if err != nil {
		return err
	}
	defer closeSurface()

	return pager.New(surface, lines, cfg).Run()
}
