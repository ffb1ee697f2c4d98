package pager

import (
	"testing"

	"github.com/yhirose/immersion/internal/terminal"
)

func runeEvent(r rune) terminal.InputEvent {
	return terminal.InputEvent{Type: terminal.EventKey, Key: terminal.Key{Type: terminal.KeyRune, Rune: r}}
}

func keyEvent(keyType int) terminal.InputEvent {
	return terminal.InputEvent{Type: terminal.EventKey, Key: terminal.Key{Type: keyType}}
}

func TestTranslateBindings(t *testing.T) {
	for _, b := range Bindings {
		for _, r := range b.Keys {
			if got := Translate(runeEvent(r)); got != b.Event {
				t.Errorf("Translate(%q) = %v, want %v", r, got, b.Event)
			}
		}
	}
}

func TestTranslateRunes(t *testing.T) {
	tests := []struct {
		r    rune
		want Event
	}{
		{'q', EventQuit},
		{'s', EventToggleLinespace},
		{'i', EventWiden},
		{'o', EventNarrow},
		{'I', EventTaller},
		{'O', EventShorter},
		{'j', EventScrollDown},
		{'k', EventScrollUp},
		{' ', EventPageDown},
		{'-', EventPageUp},
		{'G', EventBottom},
		{'x', EventUnknown},
		{'Q', EventUnknown},
		{'日', EventUnknown},
	}
	for _, tt := range tests {
		if got := Translate(runeEvent(tt.r)); got != tt.want {
			t.Errorf("Translate(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestTranslateSpecialKeys(t *testing.T) {
	tests := []struct {
		key  int
		want Event
	}{
		{terminal.KeyDown, EventScrollDown},
		{terminal.KeyEnter, EventScrollDown},
		{terminal.KeyUp, EventScrollUp},
		{terminal.KeyPgDn, EventPageDown},
		{terminal.KeyPgUp, EventPageUp},
		{terminal.KeyCtrlD, EventHalfPageDown},
		{terminal.KeyCtrlU, EventHalfPageUp},
		{terminal.KeyHome, EventTop},
		{terminal.KeyEnd, EventBottom},
		{terminal.KeyCtrlC, EventUnknown},
		{terminal.KeyEscape, EventUnknown},
		{terminal.KeyLeft, EventUnknown},
		{terminal.KeyUnknown, EventUnknown},
	}
	for _, tt := range tests {
		if got := Translate(keyEvent(tt.key)); got != tt.want {
			t.Errorf("Translate(key %d) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestTranslateResize(t *testing.T) {
	if got := Translate(terminal.InputEvent{Type: terminal.EventResize}); got != EventResize {
		t.Errorf("Translate(resize) = %v, want %v", got, EventResize)
	}
}

func TestBindingKeysAreUnique(t *testing.T) {
	seen := make(map[rune]Event)
	for _, b := range Bindings {
		for _, r := range b.Keys {
			if prev, ok := seen[r]; ok {
				t.Errorf("key %q bound to both %v and %v", r, prev, b.Event)
			}
			seen[r] = b.Event
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{EventQuit, "quit"},
		{EventHalfPageDown, "half-page-down"},
		{EventResize, "resize"},
		{EventUnknown, "unknown"},
		{Event(-1), "unknown"},
		{Event(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("Event(%d).String() = %q, want %q", int(tt.ev), got, tt.want)
		}
	}
}

func TestBindingLabel(t *testing.T) {
	tests := []struct {
		keys []rune
		want string
	}{
		{[]rune{'q'}, "q"},
		{[]rune{'b', '-'}, "b or -"},
		{[]rune{'f', '=', ' '}, "f or = or [space]"},
	}
	for _, tt := range tests {
		if got := (Binding{Keys: tt.keys}).Label(); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.keys, got, tt.want)
		}
	}
}
