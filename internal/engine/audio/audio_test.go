package audio

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
)

func TestGainExponent(t *testing.T) {
	tests := []struct {
		vol  float64
		want float64
	}{
		{1, 0},
		{0.5, -1},
		{0.25, -2},
		{0, -16},
		{-1, -16},
	}

	for _, tt := range tests {
		if got := gainExponent(tt.vol); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("gainExponent(%v) = %v, want %v", tt.vol, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestAmbientStateWithoutDevice(t *testing.T) {
	a := NewAmbient(1.5, false)
	if a.Volume() != 1 {
		t.Errorf("volume = %v, want 1 (clamped)", a.Volume())
	}
	if a.Playing() {
		t.Error("new player should not be playing")
	}

	a.SetMuted(true)
	if !a.Muted() {
		t.Error("expected muted")
	}
	a.SetVolume(-2)
	if a.Volume() != 0 {
		t.Errorf("volume = %v, want 0", a.Volume())
	}

	// Closing a player that never started is a no-op.
	a.Close()
}

func TestAmbientPlayMissingFile(t *testing.T) {
	a := NewAmbient(0.7, false)
	if err := a.Play(filepath.Join(t.TempDir(), "nope.wav")); err == nil {
		t.Fatal("expected error for missing track")
	}
	if a.Playing() {
		t.Error("failed Play must leave the player stopped")
	}
}

// ramp is an in-memory StreamSeeker producing 0, 1, 2, ... len-1.
type ramp struct {
	len, pos int
	seekErr  error
}

func (r *ramp) Stream(samples [][2]float64) (int, bool) {
	if r.pos >= r.len {
		return 0, false
	}
	n := 0
	for n < len(samples) && r.pos < r.len {
		samples[n] = [2]float64{float64(r.pos), float64(r.pos)}
		n++
		r.pos++
	}
	return n, true
}

func (r *ramp) Err() error { return nil }
func (r *ramp) Len() int { return r.len }
func (r *ramp) Position() int { return r.pos }
func (r *ramp) Seek(p int) error {
	if r.seekErr != nil {
		return r.seekErr
	}
	r.pos = p
	return nil
}

func TestLooperWraps(t *testing.T) {
	l := &looper{s: &ramp{len: 3}}
	buf := make([][2]float64, 8)

	n, ok := l.Stream(buf)
	if n != 8 || !ok {
		t.Fatalf("Stream = (%d, %v), want (8, true)", n, ok)
	}
	want := []float64{0, 1, 2, 0, 1, 2, 0, 1}
	for i, w := range want {
		if buf[i][0] != w {
			t.Errorf("sample %d = %v, want %v", i, buf[i][0], w)
		}
	}
}

func TestLooperEmptySource(t *testing.T) {
	l := &looper{s: &ramp{len: 0}}
	n, ok := l.Stream(make([][2]float64, 4))
	if n != 0 || ok {
		t.Errorf("Stream = (%d, %v), want (0, false)", n, ok)
	}
}

func TestLooperSeekFailure(t *testing.T) {
	l := &looper{s: &ramp{len: 2, seekErr: errors.New("not seekable")}}
	n, ok := l.Stream(make([][2]float64, 5))
	if n != 2 || !ok {
		t.Errorf("Stream = (%d, %v), want (2, true)", n, ok)
	}
}
