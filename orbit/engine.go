// Package orbit is the interactive orbital layout engine: a fixed set of items
// circling a center, turned by a fixed-cadence driver or by pointer drag, with
// a single hover focus
package orbit

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/skill-orbit/engine"
	"github.com/lixenwraith/skill-orbit/status"
	"github.com/lixenwraith/skill-orbit/vmath"
)

var (
	ErrNoItems        = errors.New("orbit: no items")
	ErrInvalidItem    = errors.New("orbit: invalid item")
	ErrInvalidConfig  = errors.New("orbit: invalid config")
	ErrAlreadyStarted = errors.New("orbit: engine already started")
	ErrStopped        = errors.New("orbit: engine stopped")
)

// Timer drives automatic rotation at a fixed cadence
// Start arms it once; Stop releases it once and guarantees no later tick
type Timer interface {
	Start(tick func())
	Stop()
}

// RotationState is the mutable orientation of the whole system
type RotationState struct {
	Degrees      float64 // Always in [0, 360)
	Dragging     bool
	LastPointerX float64 // Meaningful only while Dragging
}

// FocusState holds the single hovered item, empty when none
type FocusState struct {
	Hovered string
}

// FocusListener observes focus changes; prev or next may be empty
type FocusListener func(prev, next string)

// DragListener observes drag start (true) and end (false)
type DragListener func(dragging bool)

type phase uint8

const (
	phaseIdle phase = iota
	phaseRunning
	phaseStopped
)

// engineMetrics caches registry pointers written on every transition
type engineMetrics struct {
	ticks    *atomic.Int64
	drags    *atomic.Int64
	rotation *status.AtomicFloat
	dragging *atomic.Bool
	focus    *status.AtomicString
}

func newEngineMetrics(reg *status.Registry) engineMetrics {
	return engineMetrics{
		ticks:    reg.Ints.Get("orbit.ticks"),
		drags:    reg.Ints.Get("orbit.drags"),
		rotation: reg.Floats.Get("orbit.rotation"),
		dragging: reg.Bools.Get("orbit.dragging"),
		focus:    reg.Strings.Get("orbit.focus"),
	}
}

// Engine owns the rotation and focus state of one mounted view
// All transitions are serialized by mu; Project is pure and lock-free
type Engine struct {
	mu       sync.Mutex
	cfg      Config
	items    []Item
	index    map[string]int
	rotation RotationState
	focus    FocusState
	phase    phase

	timer          Timer
	focusListeners []FocusListener
	dragListeners  []DragListener
	logger         *slog.Logger
	registry       *status.Registry
	metrics        engineMetrics
}

// New creates an engine over a fixed item set
// Items are copied; the set cannot change for the engine's lifetime
func New(items []Item, opts ...Option) (*Engine, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	e := &Engine{
		cfg:   DefaultConfig(),
		items: make([]Item, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	for i, it := range items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if _, dup := e.index[it.ID]; dup {
			return nil, fmt.Errorf("item %d: %w: duplicate id %q", i, ErrInvalidItem, it.ID)
		}
		e.items[i] = it
		e.index[it.ID] = i
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.registry == nil {
		e.registry = status.NewRegistry()
	}
	if e.timer == nil {
		e.timer = engine.NewClockScheduler(e.cfg.TickInterval)
	}
	e.metrics = newEngineMetrics(e.registry)

	return e, nil
}

// Config returns the engine tuning
func (e *Engine) Config() Config {
	return e.cfg
}

// Items returns a copy of the configured items in configuration order
func (e *Engine) Items() []Item {
	out := make([]Item, len(e.items))
	copy(out, e.items)
	return out
}

// Registry returns the metrics registry the engine writes to
func (e *Engine) Registry() *status.Registry {
	return e.registry
}

// State returns a copy of the current rotation and focus state
func (e *Engine) State() (RotationState, FocusState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rotation, e.focus
}

// Rotation returns the global rotation in degrees
func (e *Engine) Rotation() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rotation.Degrees
}

// Dragging reports whether a drag gesture is active
func (e *Engine) Dragging() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rotation.Dragging
}

// Focused returns the hovered item id, empty when none
func (e *Engine) Focused() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.focus.Hovered
}

// --- Lifecycle ---

// Start arms the rotation timer; pair with exactly one Stop
func (e *Engine) Start() error {
	e.mu.Lock()
	switch e.phase {
	case phaseRunning:
		e.mu.Unlock()
		return ErrAlreadyStarted
	case phaseStopped:
		e.mu.Unlock()
		return ErrStopped
	}
	e.phase = phaseRunning
	e.mu.Unlock()

	e.timer.Start(e.Tick)
	e.logger.Info("orbit engine started", "items", len(e.items), "interval", e.cfg.TickInterval)
	return nil
}

// Stop releases the rotation timer; safe to call more than once
// Must not be called from a tick or listener callback
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.phase == phaseStopped {
		e.mu.Unlock()
		return
	}
	e.phase = phaseStopped
	e.mu.Unlock()

	// Lock released: timer.Stop waits for an in-flight Tick
	e.timer.Stop()
	e.logger.Info("orbit engine stopped", "ticks", e.metrics.ticks.Load())
}

// --- Rotation driver ---

// Tick advances automatic rotation by one step unless a drag is active
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.metrics.ticks.Add(1)
	if e.rotation.Dragging {
		return
	}
	e.setRotationLocked(e.rotation.Degrees + e.cfg.Step)
}

func (e *Engine) setRotationLocked(deg float64) {
	e.rotation.Degrees = vmath.NormalizeDegrees(deg)
	e.metrics.rotation.Set(e.rotation.Degrees)
}

// --- Pointer tracker ---

// PointerDown starts a drag anchored at x
// Non-finite positions are ignored
func (e *Engine) PointerDown(x float64) {
	if !finite(x) {
		return
	}
	e.mu.Lock()
	started := !e.rotation.Dragging
	e.rotation.Dragging = true
	e.rotation.LastPointerX = x
	if started {
		e.metrics.drags.Add(1)
		e.metrics.dragging.Store(true)
	}
	listeners := e.dragListeners
	e.mu.Unlock()

	if started {
		e.logger.Debug("drag start", "x", x)
		for _, fn := range listeners {
			fn(true)
		}
	}
}

// PointerMove rotates by the horizontal delta since the last pointer event
// No-op when no drag is active
func (e *Engine) PointerMove(x float64) {
	if !finite(x) {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.rotation.Dragging {
		return
	}
	delta := x - e.rotation.LastPointerX
	e.setRotationLocked(e.rotation.Degrees + delta*e.cfg.Sensitivity)
	e.rotation.LastPointerX = x
}

// PointerUp ends the drag
func (e *Engine) PointerUp() {
	e.endDrag("up")
}

// PointerLeave ends the drag exactly like PointerUp
// The surface keeps no pending drag once the pointer is gone
func (e *Engine) PointerLeave() {
	e.endDrag("leave")
}

func (e *Engine) endDrag(reason string) {
	e.mu.Lock()
	ended := e.rotation.Dragging
	e.rotation.Dragging = false
	e.rotation.LastPointerX = 0
	if ended {
		e.metrics.dragging.Store(false)
	}
	listeners := e.dragListeners
	rotation := e.rotation.Degrees
	e.mu.Unlock()

	if ended {
		e.logger.Debug("drag end", "reason", reason, "rotation", rotation)
		for _, fn := range listeners {
			fn(false)
		}
	}
}

// --- Hover/selection ---

// ItemPointerEnter focuses id, replacing any previous focus
// Unknown ids are ignored
func (e *Engine) ItemPointerEnter(id string) {
	e.mu.Lock()
	if _, ok := e.index[id]; !ok {
		e.mu.Unlock()
		e.logger.Debug("hover on unknown item", "id", id)
		return
	}
	prev := e.focus.Hovered
	if prev == id {
		e.mu.Unlock()
		return
	}
	e.focus.Hovered = id
	e.metrics.focus.Store(id)
	listeners := e.focusListeners
	e.mu.Unlock()

	e.notifyFocus(listeners, prev, id)
}

// ItemPointerLeave clears focus only if id is the focused item
// A stale leave for an earlier item does not clobber a newer hover
func (e *Engine) ItemPointerLeave(id string) {
	e.mu.Lock()
	if id == "" || e.focus.Hovered != id {
		e.mu.Unlock()
		return
	}
	e.focus.Hovered = ""
	e.metrics.focus.Store("")
	listeners := e.focusListeners
	e.mu.Unlock()

	e.notifyFocus(listeners, id, "")
}

func (e *Engine) notifyFocus(listeners []FocusListener, prev, next string) {
	e.logger.Debug("focus change", "prev", prev, "next", next)
	for _, fn := range listeners {
		fn(prev, next)
	}
}

// --- Projection ---

// Frame projects every item at the current rotation
// Placements are ordered back to front, ties kept in configuration order
func (e *Engine) Frame() Frame {
	e.mu.Lock()
	rot := e.rotation
	focused := e.focus.Hovered
	e.mu.Unlock()

	f := Frame{
		Rotation:   rot.Degrees,
		HubAngle:   vmath.NormalizeDegrees(rot.Degrees * e.cfg.HubRatio),
		Dragging:   rot.Dragging,
		Focused:    focused,
		Placements: make([]Placement, len(e.items)),
	}
	for i, it := range e.items {
		p := Placement{
			Item:       it,
			Projection: Project(it, rot.Degrees),
		}
		p.Scale = p.DepthScale
		if it.ID == focused {
			p.Scale = e.cfg.FocusScale
			p.Focused = true
			p.LabelVisible = true
		}
		f.Placements[i] = p
	}
	sort.SliceStable(f.Placements, func(a, b int) bool {
		return f.Placements[a].StackOrder < f.Placements[b].StackOrder
	})
	return f
}
