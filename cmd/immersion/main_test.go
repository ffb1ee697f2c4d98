package main

import (
	"bytes"
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, _, err := parseFlags(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if opts.margin != 2 || opts.cols != 0 || opts.rows != 0 {
		t.Errorf("defaults = %+v", opts)
	}
	if opts.backend != "ansi" || opts.path != "" {
		t.Errorf("backend = %q path = %q", opts.backend, opts.path)
	}
}

func TestParseFlags(t *testing.T) {
	opts, _, err := parseFlags([]string{"-c", "40", "-r", "10", "-m", "3", "-s", "-w", "-backend", "tcell", "doc.txt"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	want := options{cols: 40, rows: 10, margin: 3, linespace: true, wordWrap: true, backend: "tcell", logLevel: "info", path: "doc.txt"}
	if *opts != want {
		t.Errorf("parseFlags = %+v, want %+v", *opts, want)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := [][]string{
		{"-backend", "curses"},
		{"a.txt", "b.txt"},
		{"-m", "-1"},
		{"-c", "wide"},
	}
	for _, args := range tests {
		if _, _, err := parseFlags(args, &bytes.Buffer{}); err == nil {
			t.Errorf("parseFlags(%q) succeeded, want error", args)
		}
	}
}

func TestParseFlagsHelp(t *testing.T) {
	var stderr bytes.Buffer
	_, _, err := parseFlags([]string{"-h"}, &stderr)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
	if !strings.HasPrefix(stderr.String(), usageLine) {
		t.Errorf("usage output = %q", stderr.String())
	}
}

func TestHelpOptions(t *testing.T) {
	_, fs, err := parseFlags(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]string{}
	for _, o := range helpOptions(fs) {
		got[o.Flag] = o.Help
	}
	if h, ok := got["-c cols"]; !ok || !strings.HasPrefix(h, "text width in cols") {
		t.Errorf("-c option = %q, %v", h, ok)
	}
	if _, ok := got["-s"]; !ok {
		t.Errorf("missing -s in %v", got)
	}
	if _, ok := got["-log file"]; !ok {
		t.Errorf("missing -log file in %v", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseLevel(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := parseLevel("loud"); err == nil {
		t.Error("parseLevel(loud) succeeded, want error")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "immersion.log")
	logger, closeLog, err := newLogger(path, "debug")
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("layout", "cols", 40)
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=layout cols=40") {
		t.Errorf("log = %q", data)
	}
}

func TestRunVersion(t *testing.T) {
	var stdout bytes.Buffer
	if err := run([]string{"-version"}, nil, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if got := stdout.String(); got != "immersion "+Version+"\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestRunMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	err := run([]string{path}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "failed to open") {
		t.Errorf("run = %v, want open error", err)
	}
}

func TestRunInvalidLogLevel(t *testing.T) {
	err := run([]string{"-log-level", "loud", "x.txt"}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "invalid log level") {
		t.Errorf("run = %v, want log level error", err)
	}
}
