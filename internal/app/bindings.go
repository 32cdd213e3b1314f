package app

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/orrery/internal/control"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/input"
)

// Keyboard camera nudges outside free mode, in radians per frame.
const (
	nudgeYaw   = 0.04
	nudgePitch = 0.03
)

// keyCommands maps scancodes to commands. Keys listed here fire on key
// repeat too.
var keyCommands = map[sdl.Scancode]control.Command{
	sdl.SCANCODE_ESCAPE:       {Kind: control.Quit},
	sdl.SCANCODE_F11:          {Kind: control.ToggleFullscreen},
	sdl.SCANCODE_1:            {Kind: control.SetCameraMode, Mode: camera.ModeOrbit},
	sdl.SCANCODE_2:            {Kind: control.SetCameraMode, Mode: camera.ModeFree},
	sdl.SCANCODE_3:            {Kind: control.SetCameraMode, Mode: camera.ModeFocus},
	sdl.SCANCODE_N:            {Kind: control.CycleFocus, Step: 1},
	sdl.SCANCODE_P:            {Kind: control.CycleFocus, Step: -1},
	sdl.SCANCODE_H:            {Kind: control.ToggleOrbits},
	sdl.SCANCODE_B:            {Kind: control.ToggleStars},
	sdl.SCANCODE_LEFTBRACKET:  {Kind: control.AdjustTimeScale, Step: -1},
	sdl.SCANCODE_RIGHTBRACKET: {Kind: control.AdjustTimeScale, Step: 1},
	sdl.SCANCODE_MINUS:        {Kind: control.AdjustFOV, Step: -1},
	sdl.SCANCODE_EQUALS:       {Kind: control.AdjustFOV, Step: 1},
	sdl.SCANCODE_Z:            {Kind: control.AdjustFocusDistance, Step: -1},
	sdl.SCANCODE_X:            {Kind: control.AdjustFocusDistance, Step: 1},
}

// pressCommands fire once per physical press.
var pressCommands = map[sdl.Scancode]control.Command{
	sdl.SCANCODE_SPACE: {Kind: control.TogglePause},
	sdl.SCANCODE_F12:   {Kind: control.Screenshot},
	sdl.SCANCODE_M:     {Kind: control.ToggleMute},
}

// Bind translates one input event into a command. rightDown is whether the
// look button is held.
func Bind(ev input.Event, rightDown bool) (control.Command, bool) {
	switch ev.Type {
	case input.EventQuit:
		return control.Command{Kind: control.Quit}, true

	case input.EventKeyDown:
		if ev.Key == sdl.SCANCODE_RETURN && ev.Mod&uint16(sdl.KMOD_ALT) != 0 {
			return control.Command{Kind: control.ToggleFullscreen}, !ev.Repeat
		}
		if c, ok := keyCommands[ev.Key]; ok {
			return c, true
		}
		if c, ok := pressCommands[ev.Key]; ok && !ev.Repeat {
			return c, true
		}

	case input.EventMouseWheel:
		if ev.Wheel != 0 {
			return control.Command{Kind: control.Scroll, X: ev.Wheel}, true
		}

	case input.EventMouseMove:
		if rightDown && (ev.DeltaX != 0 || ev.DeltaY != 0) {
			return control.Command{Kind: control.Drag, X: float32(ev.DeltaX), Y: float32(ev.DeltaY)}, true
		}
	}
	return control.Command{}, false
}

// Picker maps a click in window points to a command, if anything was hit.
type Picker func(x, y int) (control.Command, bool)

// BindEvents translates one frame's events in arrival order. The look
// button state is tracked event by event, starting from rightDown, so a
// press, drag and release inside a single poll still drags. It returns the
// commands and the button state after the last event.
func BindEvents(events []input.Event, rightDown bool, pick Picker) ([]control.Command, bool) {
	var cmds []control.Command
	for _, ev := range events {
		if (ev.Type == input.EventMouseDown || ev.Type == input.EventMouseUp) && ev.Button == sdl.BUTTON_RIGHT {
			rightDown = ev.Type == input.EventMouseDown
			continue
		}
		if x, y, ok := Click(ev); ok {
			if c, hit := pick(x, y); hit {
				cmds = append(cmds, c)
			}
			continue
		}
		if c, ok := Bind(ev, rightDown); ok {
			cmds = append(cmds, c)
		}
	}
	return cmds, rightDown
}

// Click reports where the select button was pressed, in window points.
func Click(ev input.Event) (x, y int, ok bool) {
	if ev.Type != input.EventMouseDown || ev.Button != sdl.BUTTON_LEFT {
		return 0, 0, false
	}
	return ev.MouseX, ev.MouseY, true
}

// KeyState reports held keys.
type KeyState interface {
	KeyHeld(sdl.Scancode) bool
}

// HeldCommands turns held keys into continuous camera motion for this frame.
func HeldCommands(keys KeyState, rightDown bool, mode camera.Mode, dt float32) []control.Command {
	axis := func(pos, neg sdl.Scancode) float32 {
		var v float32
		if keys.KeyHeld(pos) {
			v++
		}
		if keys.KeyHeld(neg) {
			v--
		}
		return v
	}

	if mode == camera.ModeFree {
		m := camera.Movement{
			Forward: axis(sdl.SCANCODE_W, sdl.SCANCODE_S),
			Right:   axis(sdl.SCANCODE_D, sdl.SCANCODE_A),
			Up:      axis(sdl.SCANCODE_Q, sdl.SCANCODE_E),
		}
		if m == (camera.Movement{}) {
			return nil
		}
		return []control.Command{{Kind: control.Move, Move: m, DT: dt, Sprint: rightDown}}
	}

	yaw := axis(sdl.SCANCODE_D, sdl.SCANCODE_A) * nudgeYaw
	pitch := axis(sdl.SCANCODE_Q, sdl.SCANCODE_E) * nudgePitch
	if yaw == 0 && pitch == 0 {
		return nil
	}
	return []control.Command{{Kind: control.Nudge, X: yaw, Y: pitch}}
}
