// Package tone plays the watch's short feedback beeps. Each event tag maps
// to a fixed frequency and length; the tone is a sine wave whose gain decays
// exponentially from 0.1 to 0.01. Playback failures are never reported to
// the caller.
package tone

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
)

type Tag string

const (
	Click Tag = "click"
	Beep  Tag = "beep"
	Swipe Tag = "swipe"
	Theme Tag = "theme"
	Alarm Tag = "alarm"
	Tick  Tag = "tick"
	Reset Tag = "reset"
)

const (
	gainStart = 0.1
	gainEnd   = 0.01
)

// Spec is the shape of one tone.
type Spec struct {
	Frequency float64
	Duration  time.Duration
}

var defaultSpec = Spec{Frequency: 800, Duration: 100 * time.Millisecond}

var table = map[Tag]Spec{
	Click: {1000, 50 * time.Millisecond},
	Beep:  {1200, 100 * time.Millisecond},
	Swipe: {600, 80 * time.Millisecond},
	Theme: {1500, 150 * time.Millisecond},
	Alarm: {800, 500 * time.Millisecond},
	Tick:  {400, 30 * time.Millisecond},
	Reset: {300, 200 * time.Millisecond},
}

// Lookup returns the tone for tag; unknown tags get 800 Hz for 100 ms.
func Lookup(tag Tag) Spec {
	if s, ok := table[tag]; ok {
		return s
	}
	return defaultSpec
}

// Synth renders spec as a finite mono-in-stereo streamer at sample rate sr.
func Synth(sr beep.SampleRate, spec Spec) beep.Streamer {
	total := sr.N(spec.Duration)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for n = range samples {
			if pos >= total {
				return n, true
			}
			frac := float64(pos) / float64(total)
			gain := gainStart * math.Pow(gainEnd/gainStart, frac)
			v := gain * math.Sin(2*math.Pi*spec.Frequency*float64(pos)/float64(sr))
			samples[n][0], samples[n][1] = v, v
			pos++
		}
		return len(samples), true
	})
}

// Sink is an audio output.
type Sink interface {
	SampleRate() beep.SampleRate
	Play(s beep.Streamer) error
}

// Player gates tones on the sound preference.
type Player struct {
	sink    Sink
	enabled bool
	logger  *log.Logger
}

// NewPlayer returns an enabled player. A nil sink makes every Play silent.
func NewPlayer(sink Sink, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{sink: sink, enabled: true, logger: logger}
}

func (p *Player) SetEnabled(on bool) { p.enabled = on }
func (p *Player) Enabled() bool      { return p.enabled }

// Play sounds the tone for tag if sound is enabled. It returns immediately
// and swallows every failure.
func (p *Player) Play(tag Tag) {
	if !p.enabled || p.sink == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Debug("tone playback panicked", "tag", tag, "panic", fmt.Sprint(r))
		}
	}()
	if err := p.sink.Play(Synth(p.sink.SampleRate(), Lookup(tag))); err != nil {
		p.logger.Debug("tone playback failed", "tag", tag, "err", err)
	}
}
