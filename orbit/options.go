package orbit

import (
	"log/slog"

	"github.com/lixenwraith/skill-orbit/status"
)

// Option configures an Engine at construction
type Option func(*Engine)

// WithConfig replaces the default tuning
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithTimer supplies the rotation timer
// Default is an engine.ClockScheduler at the configured interval
func WithTimer(t Timer) Option {
	return func(e *Engine) {
		e.timer = t
	}
}

// WithLogger sets the structured logger
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithRegistry shares a metrics registry with the host
func WithRegistry(r *status.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithFocusListener registers a focus-change observer
// Listeners run outside the engine lock, after the state change
func WithFocusListener(fn FocusListener) Option {
	return func(e *Engine) {
		e.focusListeners = append(e.focusListeners, fn)
	}
}

// WithDragListener registers a drag start/end observer
func WithDragListener(fn DragListener) Option {
	return func(e *Engine) {
		e.dragListeners = append(e.dragListeners, fn)
	}
}
