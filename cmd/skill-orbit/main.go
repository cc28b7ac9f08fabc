package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skill-orbit/audio"
	"github.com/lixenwraith/skill-orbit/config"
	"github.com/lixenwraith/skill-orbit/content"
	"github.com/lixenwraith/skill-orbit/core"
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "skill-orbit: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *muteFlag {
		cfg.Mute = true
	}

	logger, closer, err := setupLogging(*logFileFlag, levelFlag.value)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	raw, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	screen := &finiScreen{Screen: raw}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()

	// Panics anywhere restore the terminal before printing
	core.SetCrashTerminal(screen)
	defer core.SetCrashTerminal(nil)

	player := audio.NewPlayer(cfg.Volume, logger)
	if err := player.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
	} else {
		defer player.Close()
	}
	player.SetMuted(cfg.Mute)

	a, err := newApp(screen, cat, cfg.Orbit(), player, logger)
	if err != nil {
		return err
	}
	if err := a.engine.Start(); err != nil {
		return err
	}
	defer a.engine.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	logger.Info("session start", "skills", len(cat.Skills), "featured", len(cat.Featured), "projects", len(cat.Projects))
	err = a.run(ctx, cfg.FrameInterval)
	logger.Info("session end", append([]any{"uptime", sessionUptime(started, time.Now())}, a.registry.LogAttrs()...)...)
	return err
}

// loadCatalog reads the catalog file, or the embedded one when path is empty
func loadCatalog(path string) (*content.Catalog, error) {
	if path == "" {
		return content.DefaultCatalog()
	}
	return content.LoadCatalogFile(path)
}

// sessionUptime renders the session length the way humans read it, e.g. "3 minutes"
func sessionUptime(start, end time.Time) string {
	return strings.TrimSpace(humanize.RelTime(start, end, "", ""))
}
