// Package audio provides the procedural split cue. Samples are
// synthesized at startup from an oscillator plus envelope and replayed
// through the speaker whenever a fracture lands; nothing here touches
// simulation state.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	popFreq      = 660.0
	popDuration  = 0.06
	popAttack    = 0.004
	popRelease   = 0.045
	popSweep     = 0.55 // frequency multiplier at the tail of the pop
	popAmplitude = 0.6
)

// Popper plays the pop cue. A muted popper is valid and does nothing.
type Popper struct {
	enabled bool
	buf     []float64
}

// NewPopper initializes the speaker and pre-renders the cue.
func NewPopper() (*Popper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Popper{enabled: true, buf: popBuffer()}, nil
}

// NewMutedPopper returns a no-op popper for -mute and headless runs.
func NewMutedPopper() *Popper {
	return &Popper{}
}

// Pop plays the cue once. Safe to call every tick.
func (p *Popper) Pop() {
	if !p.enabled {
		return
	}
	speaker.Play(&bufferStreamer{buf: p.buf})
}

// popBuffer renders a short downward-sweeping sine with an attack and
// release envelope.
func popBuffer() []float64 {
	total := int(popDuration * float64(sampleRate))
	buf := make([]float64, total)

	phase := 0.0
	for i := 0; i < total; i++ {
		progress := float64(i) / float64(total)
		freq := popFreq * (1 - (1-popSweep)*progress)
		buf[i] = popAmplitude * math.Sin(2*math.Pi*phase)
		phase += freq / float64(sampleRate)
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	applyEnvelope(buf, popAttack, popRelease)
	return buf
}

// applyEnvelope shapes attack and release in place.
func applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(sampleRate))
	releaseSamples := int(releaseSec * float64(sampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}
	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// bufferStreamer replays a mono buffer once on both channels.
type bufferStreamer struct {
	buf []float64
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= len(s.buf) {
			break
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error { return nil }
