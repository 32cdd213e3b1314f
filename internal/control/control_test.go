package control

import (
	"testing"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/camera"
)

func newTestState() *State {
	cfg := config.Default()
	cam := camera.NewController(camera.Settings{}, []int{0, 1, 2, 3, 5, 6, 8, 10, 11})
	return NewState(cfg, cam)
}

func TestNewStateDefaults(t *testing.T) {
	s := newTestState()
	if s.Paused {
		t.Error("should start running")
	}
	if s.TimeScale != 1 {
		t.Errorf("TimeScale = %v, want 1", s.TimeScale)
	}
	if s.FOV != 45 {
		t.Errorf("FOV = %v, want 45", s.FOV)
	}
	if !s.ShowOrbits || !s.ShowStars {
		t.Error("orbits and stars should start visible")
	}
	if s.Camera.Mode() != camera.ModeOrbit {
		t.Errorf("mode = %v, want Orbit", s.Camera.Mode())
	}
}

func TestToggleMessages(t *testing.T) {
	s := newTestState()

	tests := []struct {
		cmd  Command
		want string
	}{
		{Command{Kind: ToggleOrbits}, "Orbit lines: OFF"},
		{Command{Kind: ToggleOrbits}, "Orbit lines: ON"},
		{Command{Kind: ToggleStars}, "Stars: OFF"},
		{Command{Kind: TogglePause}, "Paused"},
		{Command{Kind: TogglePause}, "Running"},
		{Command{Kind: AdjustTimeScale, Step: 1}, "timeScale=1.25"},
		{Command{Kind: AdjustTimeScale, Step: -1}, "timeScale=1.00"},
		{Command{Kind: ToggleMute}, "Sound: OFF"},
		{Command{Kind: AdjustFOV, Step: 1}, ""},
	}

	for _, tt := range tests {
		got := s.Apply(tt.cmd).Message
		if got != tt.want {
			t.Errorf("%v: message = %q, want %q", tt.cmd.Kind, got, tt.want)
		}
	}
}

func TestTimeScaleFloor(t *testing.T) {
	s := newTestState()
	for i := 0; i < 10; i++ {
		s.Apply(Command{Kind: AdjustTimeScale, Step: -1})
	}
	if s.TimeScale != 0 {
		t.Errorf("TimeScale = %v, want 0", s.TimeScale)
	}
	if r := s.Apply(Command{Kind: AdjustTimeScale, Step: -1}); r.Message != "timeScale=0.00" {
		t.Errorf("message at floor = %q", r.Message)
	}
	s.Apply(Command{Kind: AdjustTimeScale, Step: 1})
	if s.TimeScale != 0.25 {
		t.Errorf("TimeScale = %v, want 0.25", s.TimeScale)
	}
}

func TestFOVClamp(t *testing.T) {
	s := newTestState()
	for i := 0; i < 100; i++ {
		s.Apply(Command{Kind: AdjustFOV, Step: 1})
	}
	if s.FOV != 90 {
		t.Errorf("FOV = %v, want 90", s.FOV)
	}
	for i := 0; i < 100; i++ {
		s.Apply(Command{Kind: AdjustFOV, Step: -1})
	}
	if s.FOV != 20 {
		t.Errorf("FOV = %v, want 20", s.FOV)
	}
}

func TestScrollRouting(t *testing.T) {
	tests := []struct {
		name      string
		mode      camera.Mode
		wheel     float32
		wantFOV   float32
		wantOrbit float32
		wantFocus float32
	}{
		{"orbit zooms in", camera.ModeOrbit, 1, 45, 43, 12},
		{"orbit zooms out", camera.ModeOrbit, -2, 45, 49, 12},
		{"focus zooms in", camera.ModeFocus, 1, 45, 45, 10},
		{"free narrows fov", camera.ModeFree, 1, 44, 45, 12},
		{"free widens fov", camera.ModeFree, -3, 48, 45, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState()
			s.Apply(Command{Kind: SetCameraMode, Mode: tt.mode})
			s.Apply(Command{Kind: Scroll, X: tt.wheel})

			if s.FOV != tt.wantFOV {
				t.Errorf("FOV = %v, want %v", s.FOV, tt.wantFOV)
			}
			if s.Camera.Orbit.Distance != tt.wantOrbit {
				t.Errorf("orbit distance = %v, want %v", s.Camera.Orbit.Distance, tt.wantOrbit)
			}
			if s.Camera.Focus.Distance != tt.wantFocus {
				t.Errorf("focus distance = %v, want %v", s.Camera.Focus.Distance, tt.wantFocus)
			}
		})
	}
}

func TestScrollFOVClamp(t *testing.T) {
	s := newTestState()
	s.Apply(Command{Kind: SetCameraMode, Mode: camera.ModeFree})
	s.Apply(Command{Kind: Scroll, X: 100})
	if s.FOV != 20 {
		t.Errorf("FOV = %v, want 20", s.FOV)
	}
}

func TestFocusDistanceOnlyInFocusMode(t *testing.T) {
	s := newTestState()
	s.Apply(Command{Kind: AdjustFocusDistance, Step: 1})
	if s.Camera.Focus.Distance != 12 {
		t.Errorf("orbit mode changed focus distance to %v", s.Camera.Focus.Distance)
	}

	s.Apply(Command{Kind: SetCameraMode, Mode: camera.ModeFocus})
	s.Apply(Command{Kind: AdjustFocusDistance, Step: 1})
	if s.Camera.Focus.Distance != 14 {
		t.Errorf("focus distance = %v, want 14", s.Camera.Focus.Distance)
	}
	for i := 0; i < 10; i++ {
		s.Apply(Command{Kind: AdjustFocusDistance, Step: -1})
	}
	if s.Camera.Focus.Distance != 3 {
		t.Errorf("focus distance = %v, want 3", s.Camera.Focus.Distance)
	}
}

func TestCycleFocusWraps(t *testing.T) {
	s := newTestState()
	s.Apply(Command{Kind: CycleFocus, Step: -1})
	if s.Camera.Focus.Index != 8 {
		t.Errorf("Index = %d, want 8", s.Camera.Focus.Index)
	}
	s.Apply(Command{Kind: CycleFocus, Step: 1})
	if s.Camera.Focus.Index != 0 {
		t.Errorf("Index = %d, want 0", s.Camera.Focus.Index)
	}
}

func TestFocusBody(t *testing.T) {
	s := newTestState()

	if r := s.Apply(Command{Kind: FocusBody, Body: 4}); r != (Result{}) {
		t.Errorf("result = %+v, want empty", r)
	}
	if s.Camera.Mode() != camera.ModeOrbit {
		t.Errorf("non-target body switched mode to %v", s.Camera.Mode())
	}

	s.Apply(Command{Kind: FocusBody, Body: 6})
	if s.Camera.Mode() != camera.ModeFocus || s.Camera.Focus.Target() != 6 {
		t.Errorf("mode %v target %d, want focus on 6", s.Camera.Mode(), s.Camera.Focus.Target())
	}
}

func TestEffects(t *testing.T) {
	s := newTestState()

	if r := s.Apply(Command{Kind: ToggleFullscreen}); !r.Effect.Has(EffectFullscreen) || !s.Fullscreen {
		t.Errorf("fullscreen toggle: effect %v, state %v", r.Effect, s.Fullscreen)
	}
	if r := s.Apply(Command{Kind: Screenshot}); !r.Effect.Has(EffectScreenshot) {
		t.Errorf("screenshot effect missing: %v", r.Effect)
	}
	if r := s.Apply(Command{Kind: ToggleMute}); !r.Effect.Has(EffectMute) || !s.Muted {
		t.Errorf("mute toggle: effect %v, state %v", r.Effect, s.Muted)
	}
	if r := s.Apply(Command{Kind: Quit}); !r.Effect.Has(EffectQuit) || !s.Quit {
		t.Errorf("quit: effect %v, state %v", r.Effect, s.Quit)
	}
}

func TestResizeIgnoresEmptyWindow(t *testing.T) {
	s := newTestState()
	s.Apply(Command{Kind: Resize, Width: 800, Height: 400})
	if s.Aspect() != 2 {
		t.Errorf("Aspect = %v, want 2", s.Aspect())
	}
	s.Apply(Command{Kind: Resize, Width: 0, Height: 0})
	if s.Width != 800 || s.Height != 400 {
		t.Errorf("minimized resize overwrote size: %dx%d", s.Width, s.Height)
	}
}

func TestQueueDrainsInOrder(t *testing.T) {
	s := newTestState()
	q := NewQueue()

	q.Push(Command{Kind: SetCameraMode, Mode: camera.ModeFree})
	q.Push(Command{Kind: Scroll, X: 5})
	q.Push(Command{Kind: SetCameraMode, Mode: camera.ModeOrbit})
	q.Push(Command{Kind: Scroll, X: 5})
	q.Push(Command{Kind: ToggleStars})

	results := q.Drain(s)
	if len(results) != 5 {
		t.Fatalf("got %d results, want 5", len(results))
	}
	if q.Len() != 0 {
		t.Errorf("queue not empty after drain: %d", q.Len())
	}

	// The first scroll hits the FOV, the second the orbit distance.
	if s.FOV != 40 {
		t.Errorf("FOV = %v, want 40", s.FOV)
	}
	if s.Camera.Orbit.Distance != 35 {
		t.Errorf("orbit distance = %v, want 35", s.Camera.Orbit.Distance)
	}
	if results[4].Message != "Stars: OFF" {
		t.Errorf("last message = %q", results[4].Message)
	}

	if q.Drain(s) != nil {
		t.Error("empty drain should return nil")
	}
}

func TestKindString(t *testing.T) {
	if Quit.String() != "Quit" || Scroll.String() != "Scroll" {
		t.Errorf("unexpected names %q %q", Quit, Scroll)
	}
	if Kind(99).String() != "Kind(99)" {
		t.Errorf("out of range kind = %q", Kind(99))
	}
}
