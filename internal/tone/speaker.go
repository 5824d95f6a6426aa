package tone

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// DefaultSampleRate is used for the system speaker.
const DefaultSampleRate = beep.SampleRate(44100)

// SpeakerSink plays through the system audio device. The device is opened on
// the first Play; if that fails, every later Play returns the same error.
type SpeakerSink struct {
	sr      beep.SampleRate
	once    sync.Once
	initErr error
}

func NewSpeakerSink(sr beep.SampleRate) *SpeakerSink {
	return &SpeakerSink{sr: sr}
}

func (s *SpeakerSink) SampleRate() beep.SampleRate { return s.sr }

func (s *SpeakerSink) Play(st beep.Streamer) error {
	s.once.Do(func() {
		s.initErr = speaker.Init(s.sr, s.sr.N(time.Second/20))
	})
	if s.initErr != nil {
		return fmt.Errorf("init speaker: %w", s.initErr)
	}
	speaker.Play(st)
	return nil
}
