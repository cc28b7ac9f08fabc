// Package input translates tcell events into semantic intents
// Mouse and touch collapse into one pointer; only the left button drags
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine is the input state machine
// Tracks the left button so motion can be split into drag and hover
type Machine struct {
	leftDown bool
	lastX    int // Column of the most recent mouse event
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Dragging reports whether the left button is held
func (m *Machine) Dragging() bool {
	return m.leftDown
}

// LastX returns the column of the most recent mouse event
func (m *Machine) LastX() int {
	return m.lastX
}

// Reset forgets button state
func (m *Machine) Reset() {
	m.leftDown = false
}

// Process parses a tcell event into zero or more intents, in dispatch order
func (m *Machine) Process(ev tcell.Event) []Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return []Intent{{Type: IntentResize}}
	case *tcell.EventKey:
		if in := m.processKey(ev); in.Type != IntentNone {
			return []Intent{in}
		}
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			return m.leave()
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) []Intent {
	x, y := ev.Position()
	m.lastX = x
	left := ev.Buttons()&tcell.Button1 != 0
	hover := Intent{Type: IntentHover, X: x, Y: y}

	switch {
	case left && !m.leftDown:
		m.leftDown = true
		return []Intent{{Type: IntentPointerDown, X: x, Y: y}, hover}
	case left && m.leftDown:
		return []Intent{{Type: IntentPointerMove, X: x, Y: y}, hover}
	case !left && m.leftDown:
		m.leftDown = false
		return []Intent{{Type: IntentPointerUp, X: x, Y: y}, hover}
	}
	return []Intent{hover}
}

// leave ends any drag and clears hover, as if the pointer left the surface
func (m *Machine) leave() []Intent {
	m.leftDown = false
	return []Intent{{Type: IntentPointerLeave}, {Type: IntentHoverClear}}
}

func (m *Machine) processKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return Intent{Type: IntentQuit}
	case tcell.KeyLeft:
		return Intent{Type: IntentPrevProject}
	case tcell.KeyRight:
		return Intent{Type: IntentNextProject}
	case tcell.KeyRune:
		return m.processRune(ev.Rune())
	}
	return Intent{}
}

func (m *Machine) processRune(r rune) Intent {
	switch {
	case r == 'q':
		return Intent{Type: IntentQuit}
	case r == '[':
		return Intent{Type: IntentPrevProject}
	case r == ']':
		return Intent{Type: IntentNextProject}
	case r == 'f':
		return Intent{Type: IntentCycleFilter}
	case r == 'm':
		return Intent{Type: IntentToggleMute}
	case r >= '1' && r <= '9':
		return Intent{Type: IntentSelectProject, Index: int(r - '1')}
	}
	return Intent{}
}
