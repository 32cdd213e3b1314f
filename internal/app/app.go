// Package app wires the window, scene, controls and renderer into the
// viewer's main loop.
package app

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/control"
	"github.com/Faultbox/orrery/internal/engine/audio"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/clock"
	"github.com/Faultbox/orrery/internal/engine/debug"
	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/engine/renderer"
	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/internal/engine/window"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/solar"
)

// App is the running viewer.
type App struct {
	cfg *config.Config

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	textures *texture.Cache
	world    *World
	state    *control.State
	queue    *control.Queue
	shots    *debug.Screenshots
	ambient  *audio.Ambient
	console  *Console
	clock    *clock.Clock
	fps      *clock.FPSMeter

	rightDown bool // look button, tracked across frames
}

// New opens the window and loads everything the first frame needs.
func New(cfg *config.Config, out io.Writer) (*App, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Bool("fullscreen", cfg.Window.Fullscreen))

	a := &App{cfg: cfg, console: NewConsole(out)}

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The GL context must exist before the renderer loads functions.
	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(w, h)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	cat, err := solar.Load()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("loading catalogue: %w", err)
	}

	a.textures = texture.NewCache(cfg.Assets.TextureDir, renderer.UploadTexture)
	a.world, err = NewWorld(cat, renderer.Upload, a.textures.Get)
	if err != nil {
		a.Close()
		return nil, err
	}
	cam := camera.NewController(cameraSettings(cfg.Camera), a.world.Targets)
	a.state = control.NewState(cfg, cam)
	a.state.Width, a.state.Height = w, h
	a.state.Fullscreen = a.window.Fullscreen()
	a.queue = control.NewQueue()

	a.input = input.New()
	a.shots = debug.NewScreenshots(cfg.Screenshots.Dir, cfg.Screenshots.Prefix)
	a.ambient = audio.NewAmbient(cfg.Audio.Volume, cfg.Audio.Muted)
	if cfg.Audio.AmbientTrack != "" {
		if err := a.ambient.Play(cfg.Audio.AmbientTrack); err != nil {
			logger.Warn("ambient track unavailable", zap.String("path", cfg.Audio.AmbientTrack), zap.Error(err))
		}
	}

	a.clock = clock.New()
	a.fps = clock.NewFPSMeter()

	logger.Info("viewer initialized",
		zap.Int("bodies", a.world.Scene.Len()),
		zap.Int("textures", len(a.textures.Handles())))
	return a, nil
}

func cameraSettings(c config.CameraConfig) camera.Settings {
	return camera.Settings{
		OrbitDistance:    c.OrbitDistance,
		OrbitMinDistance: c.OrbitMinDistance,
		OrbitMaxDistance: c.OrbitMaxDistance,
		FocusDistance:    c.FocusDistance,
		FocusMinDistance: c.FocusMinDistance,
		FocusMaxDistance: c.FocusMaxDistance,
		DragSensitivity:  c.DragSensitivity,
		LookSensitivity:  c.LookSensitivity,
		FreeSpeed:        c.FreeSpeed,
		FreeSprintSpeed:  c.FreeSprintSpeed,
	}
}

// Run loops until a quit command is applied.
func (a *App) Run() {
	a.console.Banner()
	logger.Info("starting render loop")

	for !a.state.Quit {
		dt := a.clock.Tick()

		a.input.Update()
		a.gather(float32(dt))

		screenshot := a.apply()
		if a.state.Quit {
			break
		}

		a.world.Scene.Advance(dt, a.state.Paused, a.state.TimeScale)
		a.renderer.Draw(a.world.Frame(a.view()))

		if screenshot {
			a.screenshot()
		}
		a.window.SwapBuffers()

		if fps, ok := a.fps.Tick(dt); ok {
			a.report(fps)
		}
	}

	a.console.Finish()
	logger.Info("render loop stopped")
}

// gather queues this frame's commands: discrete events first, then held
// keys, then a resize if the drawable changed.
func (a *App) gather(dt float32) {
	cmds, right := BindEvents(a.input.Events(), a.rightDown, a.pick)
	a.rightDown = right
	for _, c := range cmds {
		a.queue.Push(c)
	}
	for _, c := range HeldCommands(a.input, right, a.state.Camera.Mode(), dt) {
		a.queue.Push(c)
	}

	if w, h := a.window.DrawableSize(); w != a.state.Width || h != a.state.Height {
		a.queue.Push(control.Command{Kind: control.Resize, Width: w, Height: h})
	}
}

// apply drains the queue and performs the side effects. It reports whether
// a screenshot was requested.
func (a *App) apply() bool {
	var screenshot bool
	for _, r := range a.queue.Drain(a.state) {
		if r.Message != "" {
			a.console.Println(r.Message)
		}
		switch {
		case r.Effect.Has(control.EffectFullscreen):
			if err := a.window.ToggleFullscreen(); err != nil {
				logger.Warn("fullscreen toggle failed", zap.Error(err))
				a.state.Fullscreen = a.window.Fullscreen()
			}
		case r.Effect.Has(control.EffectMute):
			a.ambient.SetMuted(a.state.Muted)
		case r.Effect.Has(control.EffectResize):
			a.renderer.Resize(a.state.Width, a.state.Height)
		case r.Effect.Has(control.EffectScreenshot):
			screenshot = true
		}
	}
	return screenshot
}

func (a *App) view() View {
	near, far := a.state.ClipPlanes()
	return View{
		Camera:     a.state.Camera.View(a.world.Scene),
		Projection: renderer.Projection(a.state.FOV, a.state.Aspect(), near, far),
		ShowStars:  a.state.ShowStars,
		ShowOrbits: a.state.ShowOrbits,
	}
}

// pick returns a focus change for the body under a click. Mouse positions
// are in window points and are scaled to drawable pixels first.
func (a *App) pick(x, y int) (control.Command, bool) {
	ww, wh := a.window.Size()
	if ww <= 0 || wh <= 0 {
		return control.Command{}, false
	}
	px := float32(x) * float32(a.state.Width) / float32(ww)
	py := float32(y) * float32(a.state.Height) / float32(wh)

	i, ok := a.world.Pick(px, py, a.state.Width, a.state.Height, a.view())
	if !ok {
		return control.Command{}, false
	}
	logger.Debug("picked body", zap.String("name", a.world.Scene.Body(i).Name))
	return control.Command{Kind: control.FocusBody, Body: i}, true
}

// screenshot reads the back buffer before it is swapped away.
func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.SaveGL(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
	a.console.Println("Screenshot: " + path)
}

func (a *App) report(fps float64) {
	a.window.SetTitle(Title(a.cfg.Window.Title, fps))
	a.console.Status(StatusLine(fps, a.state.Camera.Mode(), a.state.Camera.Focus.Distance, a.state.FOV))
}

// Close releases resources in reverse order of creation.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.ambient != nil {
		a.ambient.Close()
	}
	if a.world != nil {
		for _, m := range a.world.Meshes() {
			m.Delete()
		}
	}
	if a.textures != nil {
		renderer.DeleteTextures(a.textures.Handles())
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
	a.console.Finish()
}
