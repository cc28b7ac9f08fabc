package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a short interface sound
type Cue uint8

const (
	CueFocus     Cue = iota // Skill gained hover focus
	CueDragStart            // Drag override engaged
	CueDragEnd              // Automatic rotation resumes
	CueSelect               // Carousel moved
)

// String returns the cue name
func (c Cue) String() string {
	switch c {
	case CueFocus:
		return "Focus"
	case CueDragStart:
		return "DragStart"
	case CueDragEnd:
		return "DragEnd"
	case CueSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// tone describes a single enveloped sine burst
type tone struct {
	freq     float64
	duration time.Duration
}

var cueTones = map[Cue]tone{
	CueFocus:     {freq: 880, duration: 50 * time.Millisecond},
	CueDragStart: {freq: 440, duration: 30 * time.Millisecond},
	CueDragEnd:   {freq: 330, duration: 30 * time.Millisecond},
	CueSelect:    {freq: 660, duration: 40 * time.Millisecond},
}

// BuildCue returns a finite streamer for c at linear volume vol
// Usable without an initialized speaker
func BuildCue(c Cue, sr beep.SampleRate, vol float64) (beep.Streamer, error) {
	t, ok := cueTones[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", c)
	}
	sine, err := generators.SineTone(sr, t.freq)
	if err != nil {
		return nil, fmt.Errorf("cue %s: %w", c, err)
	}
	total := sr.N(t.duration)
	ramp := sr.N(5 * time.Millisecond)
	return newVolume(newEnvelope(beep.Take(total, sine), total, ramp, ramp), vol), nil
}
