package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player mixes cue sounds onto the speaker
// Safe for concurrent use; every method is a no-op until Initialize succeeds
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	volume      float64
	played      map[Cue]int
	logger      *slog.Logger
}

// NewPlayer creates a player at linear volume (0..1)
func NewPlayer(volume float64, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		played: make(map[Cue]int),
		logger: logger,
	}
}

// Initialize opens the speaker; the host continues silently if this fails
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all sounds
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	// beep has no speaker close; clearing the mixer leaves no artifacts
	p.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports the mute state
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Played returns how many times c was mixed in
func (p *Player) Played(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[c]
}

// Play mixes in cue c
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	s, err := BuildCue(c, sampleRate, p.volume)
	if err != nil {
		p.logger.Warn("audio cue", "cue", c, "error", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played[c]++
}
