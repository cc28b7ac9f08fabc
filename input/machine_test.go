package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func types(intents []Intent) []IntentType {
	out := make([]IntentType, len(intents))
	for i, in := range intents {
		out[i] = in.Type
	}
	return out
}

func TestMachineDragSequence(t *testing.T) {
	m := NewMachine()

	got := m.Process(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	require.Equal(t, []IntentType{IntentPointerDown, IntentHover}, types(got))
	assert.Equal(t, 10, got[0].X)
	assert.Equal(t, 5, got[0].Y)
	assert.True(t, m.Dragging())

	got = m.Process(tcell.NewEventMouse(14, 5, tcell.Button1, tcell.ModNone))
	require.Equal(t, []IntentType{IntentPointerMove, IntentHover}, types(got))
	assert.Equal(t, 14, got[0].X)

	got = m.Process(tcell.NewEventMouse(14, 6, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, []IntentType{IntentPointerUp, IntentHover}, types(got))
	assert.False(t, m.Dragging())

	// Plain motion is hover only
	got = m.Process(tcell.NewEventMouse(3, 3, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, []IntentType{IntentHover}, types(got))
}

func TestMachineRightButtonDoesNotDrag(t *testing.T) {
	m := NewMachine()
	got := m.Process(tcell.NewEventMouse(1, 1, tcell.Button2, tcell.ModNone))
	assert.Equal(t, []IntentType{IntentHover}, types(got))
	assert.False(t, m.Dragging())
}

func TestMachineFocusLossEndsDrag(t *testing.T) {
	m := NewMachine()
	m.Process(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))

	got := m.Process(tcell.NewEventFocus(false))
	assert.Equal(t, []IntentType{IntentPointerLeave, IntentHoverClear}, types(got))
	assert.False(t, m.Dragging())

	// Button still held on return starts a fresh drag
	got = m.Process(tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone))
	assert.Equal(t, IntentPointerDown, got[0].Type)

	assert.Nil(t, m.Process(tcell.NewEventFocus(true)))
}

func TestMachineKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Intent{Type: IntentQuit}},
		{"esc quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Intent{Type: IntentQuit}},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), Intent{Type: IntentNextProject}},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Intent{Type: IntentPrevProject}},
		{"bracket next", tcell.NewEventKey(tcell.KeyRune, ']', tcell.ModNone), Intent{Type: IntentNextProject}},
		{"bracket prev", tcell.NewEventKey(tcell.KeyRune, '[', tcell.ModNone), Intent{Type: IntentPrevProject}},
		{"select 3", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), Intent{Type: IntentSelectProject, Index: 2}},
		{"filter", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), Intent{Type: IntentCycleFilter}},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), Intent{Type: IntentToggleMute}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMachine().Process(tt.ev)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}

	assert.Nil(t, NewMachine().Process(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)))
	assert.Nil(t, NewMachine().Process(tcell.NewEventKey(tcell.KeyRune, '0', tcell.ModNone)))
}

func TestMachineResize(t *testing.T) {
	got := NewMachine().Process(tcell.NewEventResize(80, 24))
	assert.Equal(t, []IntentType{IntentResize}, types(got))
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "PointerLeave", IntentPointerLeave.String())
	assert.Equal(t, "Unknown", IntentType(200).String())
}

func TestMachineTracksLastColumn(t *testing.T) {
	m := NewMachine()
	assert.Zero(t, m.LastX())

	m.Process(tcell.NewEventMouse(12, 4, tcell.Button1, tcell.ModNone))
	m.Process(tcell.NewEventMouse(17, 4, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 17, m.LastX())

	// Keys leave the pointer column alone
	m.Process(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone))
	assert.Equal(t, 17, m.LastX())
}
