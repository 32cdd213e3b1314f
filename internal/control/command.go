package control

import (
	"fmt"

	"github.com/Faultbox/orrery/internal/engine/camera"
)

// Kind identifies a command.
type Kind int

const (
	SetCameraMode Kind = iota
	CycleFocus
	FocusBody
	ToggleOrbits
	ToggleStars
	AdjustTimeScale
	AdjustFOV
	AdjustFocusDistance
	Scroll
	Drag
	Nudge
	Move
	TogglePause
	ToggleFullscreen
	ToggleMute
	Screenshot
	Resize
	Quit
)

var kindNames = [...]string{
	"SetCameraMode", "CycleFocus", "FocusBody", "ToggleOrbits", "ToggleStars",
	"AdjustTimeScale", "AdjustFOV", "AdjustFocusDistance", "Scroll", "Drag",
	"Nudge", "Move", "TogglePause", "ToggleFullscreen", "ToggleMute",
	"Screenshot", "Resize", "Quit",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Command is one requested change. Only the fields its Kind uses are read.
type Command struct {
	Kind Kind

	Mode camera.Mode
	// Step is the signed direction for cycling and adjustments (+1 or -1).
	Step int
	// X and Y carry drag pixels, nudge radians or wheel notches (X).
	X, Y float32

	Move   camera.Movement
	DT     float32
	Sprint bool

	Width, Height int

	// Body is the scene index a click landed on.
	Body int
}

// Effect flags tell the app which platform work a command needs.
type Effect uint8

const (
	EffectFullscreen Effect = 1 << iota
	EffectScreenshot
	EffectMute
	EffectResize
	EffectQuit
)

// Has reports whether all bits of f are set.
func (e Effect) Has(f Effect) bool {
	return e&f == f
}

// Result is the outcome of applying one command.
type Result struct {
	// Message is the console confirmation, empty when nothing is echoed.
	Message string
	Effect  Effect
}

// Apply mutates the state for one command.
func (s *State) Apply(c Command) Result {
	switch c.Kind {
	case SetCameraMode:
		s.Camera.SetMode(c.Mode)

	case CycleFocus:
		if c.Step < 0 {
			s.Camera.PrevFocus()
		} else {
			s.Camera.NextFocus()
		}

	case FocusBody:
		s.Camera.FocusOn(c.Body)

	case ToggleOrbits:
		s.ShowOrbits = !s.ShowOrbits
		return Result{Message: "Orbit lines: " + onOff(s.ShowOrbits)}

	case ToggleStars:
		s.ShowStars = !s.ShowStars
		return Result{Message: "Stars: " + onOff(s.ShowStars)}

	case AdjustTimeScale:
		s.TimeScale += float64(sign(c.Step)) * s.timeStep
		if s.TimeScale < 0 {
			s.TimeScale = 0
		}
		return Result{Message: fmt.Sprintf("timeScale=%.2f", s.TimeScale)}

	case AdjustFOV:
		s.FOV = clampFOV(s.FOV+float32(sign(c.Step))*fovStep, s.minFOV, s.maxFOV)

	case AdjustFocusDistance:
		s.Camera.AdjustFocusDistance(float32(sign(c.Step)) * focusStep)

	case Scroll:
		// The wheel zooms the active rig; free mode has no distance so it
		// narrows the field of view instead.
		if !s.Camera.Scroll(c.X) {
			s.FOV = clampFOV(s.FOV-c.X, s.minFOV, s.maxFOV)
		}

	case Drag:
		s.Camera.Drag(c.X, c.Y)

	case Nudge:
		s.Camera.Nudge(c.X, c.Y)

	case Move:
		s.Camera.Move(c.Move, c.DT, c.Sprint)

	case TogglePause:
		s.Paused = !s.Paused
		if s.Paused {
			return Result{Message: "Paused"}
		}
		return Result{Message: "Running"}

	case ToggleFullscreen:
		s.Fullscreen = !s.Fullscreen
		return Result{Effect: EffectFullscreen}

	case ToggleMute:
		s.Muted = !s.Muted
		return Result{Message: "Sound: " + onOff(!s.Muted), Effect: EffectMute}

	case Screenshot:
		return Result{Effect: EffectScreenshot}

	case Resize:
		if c.Width > 0 && c.Height > 0 {
			s.Width, s.Height = c.Width, c.Height
		}
		return Result{Effect: EffectResize}

	case Quit:
		s.Quit = true
		return Result{Effect: EffectQuit}
	}
	return Result{}
}

func sign(step int) int {
	switch {
	case step < 0:
		return -1
	case step > 0:
		return 1
	}
	return 0
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
