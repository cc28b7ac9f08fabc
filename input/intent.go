package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C, Ctrl+Q
	IntentResize     // Terminal resize event
	IntentToggleMute // m

	// Pointer surface (cell coordinates in X, Y)
	IntentPointerDown  // Left button pressed
	IntentPointerMove  // Motion with left button held
	IntentPointerUp    // Left button released
	IntentPointerLeave // Terminal lost focus
	IntentHover        // Pointer position for hit testing, any button state
	IntentHoverClear   // Pointer gone; no item can be under it

	// Featured carousel
	IntentNextProject   // ], Right
	IntentPrevProject   // [, Left
	IntentSelectProject // 1-9, Index holds the zero-based slot
	IntentCycleFilter   // f
)

var intentNames = map[IntentType]string{
	IntentNone:          "None",
	IntentQuit:          "Quit",
	IntentResize:        "Resize",
	IntentToggleMute:    "ToggleMute",
	IntentPointerDown:   "PointerDown",
	IntentPointerMove:   "PointerMove",
	IntentPointerUp:     "PointerUp",
	IntentPointerLeave:  "PointerLeave",
	IntentHover:         "Hover",
	IntentHoverClear:    "HoverClear",
	IntentNextProject:   "NextProject",
	IntentPrevProject:   "PrevProject",
	IntentSelectProject: "SelectProject",
	IntentCycleFilter:   "CycleFilter",
}

// String returns the intent name
func (t IntentType) String() string {
	if s, ok := intentNames[t]; ok {
		return s
	}
	return "Unknown"
}

// Intent is one semantic action parsed from a terminal event
type Intent struct {
	Type  IntentType
	X, Y  int // Cell coordinates for pointer intents
	Index int // Slot for IntentSelectProject
}
