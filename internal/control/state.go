// Package control holds the viewer's mutable settings and the commands that
// change them. Input handlers never touch the state directly; they queue
// commands which are applied once per frame.
package control

import (
	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/camera"
)

const (
	fovStep        float32 = 1
	focusStep      float32 = 2
	nearPlane      float32 = 0.1
	farPlane       float32 = 1000
	fallbackAspect float32 = 16.0 / 9.0
)

// State is everything the controls can change.
type State struct {
	Paused     bool
	TimeScale  float64
	FOV        float32 // degrees
	ShowOrbits bool
	ShowStars  bool
	Fullscreen bool
	Muted      bool
	Quit       bool

	Width, Height int

	Camera *camera.Controller

	minFOV, maxFOV float32
	timeStep       float64
}

// NewState builds the initial state from cfg.
func NewState(cfg *config.Config, cam *camera.Controller) *State {
	s := &State{
		Paused:     cfg.Simulation.Paused,
		TimeScale:  cfg.Simulation.TimeScale,
		ShowOrbits: cfg.Simulation.ShowOrbits,
		ShowStars:  cfg.Simulation.ShowStars,
		Fullscreen: cfg.Window.Fullscreen,
		Muted:      cfg.Audio.Muted,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Camera:     cam,
		minFOV:     cfg.Camera.MinFOV,
		maxFOV:     cfg.Camera.MaxFOV,
		timeStep:   cfg.Simulation.TimeScaleStep,
	}
	if s.TimeScale < 0 {
		s.TimeScale = 0
	}
	if s.timeStep <= 0 {
		s.timeStep = 0.25
	}
	s.FOV = clampFOV(cfg.Camera.FOV, s.minFOV, s.maxFOV)
	return s
}

// Aspect returns width/height, or 16:9 while the window has no area.
func (s *State) Aspect() float32 {
	if s.Width <= 0 || s.Height <= 0 {
		return fallbackAspect
	}
	return float32(s.Width) / float32(s.Height)
}

// ClipPlanes returns the near and far projection planes.
func (s *State) ClipPlanes() (near, far float32) {
	return nearPlane, farPlane
}

func clampFOV(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
