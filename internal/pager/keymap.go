package pager

import (
	"strings"

	"github.com/yhirose/immersion/internal/terminal"
)

// Event is a user or terminal action the Viewer reacts to.
type Event int

const (
	EventUnknown Event = iota
	EventQuit
	EventToggleLinespace
	EventWiden
	EventNarrow
	EventTaller
	EventShorter
	EventScrollDown
	EventScrollUp
	EventPageDown
	EventPageUp
	EventHalfPageDown
	EventHalfPageUp
	EventTop
	EventBottom
	EventResize
)

var eventNames = [...]string{
	EventUnknown:         "unknown",
	EventQuit:            "quit",
	EventToggleLinespace: "toggle-linespace",
	EventWiden:           "widen",
	EventNarrow:          "narrow",
	EventTaller:          "taller",
	EventShorter:         "shorter",
	EventScrollDown:      "scroll-down",
	EventScrollUp:        "scroll-up",
	EventPageDown:        "page-down",
	EventPageUp:          "page-up",
	EventHalfPageDown:    "half-page-down",
	EventHalfPageUp:      "half-page-up",
	EventTop:             "top",
	EventBottom:          "bottom",
	EventResize:          "resize",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

// Binding ties keys to an event. The order of Bindings is the order of the
// help screen.
type Binding struct {
	Keys  []rune
	Event Event
	Help  string
}

// Bindings is the key contract of the pager.
var Bindings = []Binding{
	{[]rune{'q'}, EventQuit, "quit"},
	{[]rune{'s'}, EventToggleLinespace, "toggle line space"},
	{[]rune{'i'}, EventWiden, "widen window"},
	{[]rune{'o'}, EventNarrow, "narrow window"},
	{[]rune{'I'}, EventTaller, "make window taller"},
	{[]rune{'O'}, EventShorter, "make window shorter"},
	{[]rune{'j'}, EventScrollDown, "line down"},
	{[]rune{'k'}, EventScrollUp, "line up"},
	{[]rune{'f', '=', ' '}, EventPageDown, "page down"},
	{[]rune{'b', '-'}, EventPageUp, "page up"},
	{[]rune{'d', 'J'}, EventHalfPageDown, "half page down"},
	{[]rune{'u', 'K'}, EventHalfPageUp, "half page up"},
	{[]rune{'g'}, EventTop, "go to top"},
	{[]rune{'G'}, EventBottom, "go to bottom"},
}

var runeEvents = func() map[rune]Event {
	m := make(map[rune]Event)
	for _, b := range Bindings {
		for _, r := range b.Keys {
			m[r] = b.Event
		}
	}
	return m
}()

// Label renders the keys of b the way the help screen shows them.
func (b Binding) Label() string {
	names := make([]string, len(b.Keys))
	for i, r := range b.Keys {
		if r == ' ' {
			names[i] = "[space]"
		} else {
			names[i] = string(r)
		}
	}
	return strings.Join(names, " or ")
}

// Translate maps a raw input event to the Event it triggers. Ctrl+C is
// deliberately unbound.
func Translate(in terminal.InputEvent) Event {
	if in.Type == terminal.EventResize {
		return EventResize
	}
	switch in.Key.Type {
	case terminal.KeyRune:
		if ev, ok := runeEvents[in.Key.Rune]; ok {
			return ev
		}
	case terminal.KeyDown, terminal.KeyEnter:
		return EventScrollDown
	case terminal.KeyUp:
		return EventScrollUp
	case terminal.KeyPgDn:
		return EventPageDown
	case terminal.KeyPgUp:
		return EventPageUp
	case terminal.KeyCtrlD:
		return EventHalfPageDown
	case terminal.KeyCtrlU:
		return EventHalfPageUp
	case terminal.KeyHome:
		return EventTop
	case terminal.KeyEnd:
		return EventBottom
	}
	return EventUnknown
}
