package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/skill-orbit/audio"
	"github.com/lixenwraith/skill-orbit/carousel"
	"github.com/lixenwraith/skill-orbit/content"
	"github.com/lixenwraith/skill-orbit/core"
	"github.com/lixenwraith/skill-orbit/input"
	"github.com/lixenwraith/skill-orbit/orbit"
	"github.com/lixenwraith/skill-orbit/render"
	"github.com/lixenwraith/skill-orbit/status"
)

// errQuit ends the loops without being reported as a failure
var errQuit = errors.New("quit")

// finiScreen makes Fini idempotent; loop shutdown and main's defer both call it
type finiScreen struct {
	tcell.Screen
	once sync.Once
}

func (s *finiScreen) Fini() {
	s.once.Do(s.Screen.Fini)
}

// app is one mounted orbit view: engine, screen and the panel state around it
// handle and draw run on the loop goroutine only
type app struct {
	screen   tcell.Screen
	engine   *orbit.Engine
	renderer *render.Renderer
	machine  *input.Machine
	player   *audio.Player
	catalog  *content.Catalog
	featured *carousel.Carousel[content.Project]
	registry *status.Registry
	logger   *slog.Logger

	filter   content.Category
	hovered  string          // Item the pointer was last over
	viewport render.Viewport // Layout of the last drawn frame
}

// newApp wires an engine over the catalog skills; opts override engine defaults
func newApp(screen tcell.Screen, cat *content.Catalog, cfg orbit.Config, player *audio.Player, logger *slog.Logger, opts ...orbit.Option) (*app, error) {
	reg := status.NewRegistry()
	base := []orbit.Option{
		orbit.WithConfig(cfg),
		orbit.WithLogger(logger),
		orbit.WithRegistry(reg),
		orbit.WithFocusListener(func(_, next string) {
			if next != "" {
				player.Play(audio.CueFocus)
			}
		}),
		orbit.WithDragListener(func(dragging bool) {
			if dragging {
				player.Play(audio.CueDragStart)
			} else {
				player.Play(audio.CueDragEnd)
			}
		}),
	}
	eng, err := orbit.New(cat.Skills, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	a := &app{
		screen:   screen,
		engine:   eng,
		renderer: render.NewRenderer(screen, eng.Items(), eng.Config().FocusScale, reg),
		machine:  input.NewMachine(),
		player:   player,
		catalog:  cat,
		featured: carousel.New(cat.Featured...),
		registry: reg,
		logger:   logger,
		filter:   content.CategoryAll,
	}
	a.viewport = a.renderer.Viewport()
	return a, nil
}

// run drives input polling and the frame loop until quit, ctx cancellation or a crash
func (a *app) run(ctx context.Context, frameInterval time.Duration) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 256)

	g.Go(guarded(func() error { return a.poll(ctx, events) }))
	g.Go(guarded(func() error { return a.loop(ctx, events, frameInterval) }))
	g.Go(func() error {
		// Unblocks PollEvent once any loop ends
		<-ctx.Done()
		a.screen.Fini()
		return nil
	})

	err := g.Wait()
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// guarded routes a panic in fn through the crash handler
func guarded(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		return fn()
	}
}

// poll forwards screen events until the screen is finalized
func (a *app) poll(ctx context.Context, events chan<- tcell.Event) error {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func (a *app) loop(ctx context.Context, events <-chan tcell.Event, frameInterval time.Duration) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if a.handle(ev) {
				return errQuit
			}
		case <-ticker.C:
			a.draw()
		}
	}
}

// draw paints the current engine frame and remembers the layout for hit testing
func (a *app) draw() {
	a.viewport = a.renderer.Draw(render.View{
		Frame:         a.engine.Frame(),
		Hub:           a.catalog.Hub,
		Featured:      a.featured.Items(),
		FeaturedIndex: a.featured.Index(),
		Filter:        a.filter,
		Projects:      content.FilterProjects(a.catalog.Projects, a.filter),
		Muted:         a.player.Muted(),
	})
}

// handle dispatches one event; returns true when the app should quit
func (a *app) handle(ev tcell.Event) bool {
	for _, in := range a.machine.Process(ev) {
		switch in.Type {
		case input.IntentQuit:
			return true
		case input.IntentResize:
			a.screen.Sync()
			a.viewport = a.renderer.Viewport()
			// Units shift with the scale; re-anchor so the resize is not read as motion
			if a.engine.Dragging() {
				a.engine.PointerDown(a.viewport.ToUnits(a.machine.LastX()))
			}
		case input.IntentToggleMute:
			a.player.SetMuted(!a.player.Muted())
		case input.IntentPointerDown:
			a.engine.PointerDown(a.viewport.ToUnits(in.X))
		case input.IntentPointerMove:
			a.engine.PointerMove(a.viewport.ToUnits(in.X))
		case input.IntentPointerUp:
			a.engine.PointerUp()
		case input.IntentPointerLeave:
			a.engine.PointerLeave()
		case input.IntentHover:
			id, _ := render.HitTest(a.engine.Frame(), a.viewport, in.X, in.Y)
			a.hover(id)
		case input.IntentHoverClear:
			a.hover("")
		case input.IntentNextProject:
			a.featured.Next()
			a.player.Play(audio.CueSelect)
		case input.IntentPrevProject:
			a.featured.Prev()
			a.player.Play(audio.CueSelect)
		case input.IntentSelectProject:
			if a.featured.Select(in.Index) {
				a.player.Play(audio.CueSelect)
			}
		case input.IntentCycleFilter:
			a.filter = content.NextFilter(a.filter).ID
			a.logger.Debug("filter", "category", a.filter)
		}
	}
	return false
}

// hover turns pointer position changes into item enter/leave pairs
func (a *app) hover(id string) {
	if id == a.hovered {
		return
	}
	if a.hovered != "" {
		a.engine.ItemPointerLeave(a.hovered)
	}
	if id != "" {
		a.engine.ItemPointerEnter(id)
	}
	a.hovered = id
}
