// Package audio plays the optional looping ambient track.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the speaker output rate.
const DefaultSampleRate = beep.SampleRate(44100)

// Ambient loops one WAV file in the background. The zero state is silent;
// nothing touches the audio device until Play succeeds.
type Ambient struct {
	mu sync.Mutex

	started bool
	stream  beep.StreamSeekCloser
	ctrl    *beep.Ctrl
	volume  *effects.Volume

	level float64 // 0..1
	muted bool
}

// NewAmbient returns a stopped player with the given volume and mute state.
func NewAmbient(level float64, muted bool) *Ambient {
	return &Ambient{level: clamp(level, 0, 1), muted: muted}
}

// Play opens the WAV file at path, initialises the speaker and starts the
// loop. Failure leaves the player silent.
func (a *Ambient) Play(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening ambient track: %w", err)
	}
	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	if stream.Len() == 0 {
		stream.Close()
		return errors.New("ambient track is empty")
	}

	if err := speaker.Init(DefaultSampleRate, DefaultSampleRate.N(time.Second/30)); err != nil {
		stream.Close()
		return fmt.Errorf("init speaker: %w", err)
	}

	var src beep.Streamer = &looper{s: stream}
	if format.SampleRate != DefaultSampleRate {
		src = beep.Resample(4, format.SampleRate, DefaultSampleRate, src)
	}

	a.mu.Lock()
	a.stream = stream
	a.ctrl = &beep.Ctrl{Streamer: src}
	a.volume = &effects.Volume{Streamer: a.ctrl, Base: 2}
	a.applyVolume()
	a.started = true
	a.mu.Unlock()

	speaker.Play(a.volume)
	return nil
}

// Playing reports whether the loop has been started.
func (a *Ambient) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.started
}

// SetMuted silences or restores the loop.
func (a *Ambient) SetMuted(muted bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.muted = muted
	a.applyVolume()
}

// Muted reports the mute state.
func (a *Ambient) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}

// SetVolume sets the linear volume, clamped to [0, 1].
func (a *Ambient) SetVolume(level float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.level = clamp(level, 0, 1)
	a.applyVolume()
}

// Volume returns the linear volume.
func (a *Ambient) Volume() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.level
}

// applyVolume pushes level and mute into the effect chain. Caller holds mu.
func (a *Ambient) applyVolume() {
	if a.volume == nil {
		return
	}
	silent := a.muted || a.level <= 0
	exp := gainExponent(a.level)
	if a.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	a.volume.Silent = silent
	a.volume.Volume = exp
}

// Close stops playback and releases the track.
func (a *Ambient) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.started {
		return
	}
	speaker.Clear()
	if a.stream != nil {
		a.stream.Close()
	}
	a.stream, a.ctrl, a.volume = nil, nil, nil
	a.started = false
}

// gainExponent converts a linear 0-1 volume to the base-2 exponent
// effects.Volume expects: 1 -> 0, 0.5 -> -1.
func gainExponent(vol float64) float64 {
	if vol <= 0 {
		return -16
	}
	return math.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// looper restarts s from the beginning whenever it runs dry.
type looper struct {
	s beep.StreamSeeker
}

func (l *looper) Stream(samples [][2]float64) (int, bool) {
	filled, empty := 0, 0
	for filled < len(samples) {
		n, ok := l.s.Stream(samples[filled:])
		filled += n
		if n > 0 {
			empty = 0
		} else {
			empty++
		}
		if ok && n > 0 {
			continue
		}
		// Two dry reads in a row means the source cannot produce samples.
		if empty > 1 || l.s.Seek(0) != nil {
			return filled, filled > 0
		}
	}
	return filled, true
}

func (l *looper) Err() error {
	return l.s.Err()
}
