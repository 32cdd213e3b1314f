// Package window handles SDL2 window and OpenGL context creation.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window wraps SDL2 window and OpenGL context.
type Window struct {
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	screen    fullscreenTracker
}

// New creates a window with an OpenGL 4.1 core context.
func New(cfg Config) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// 4.1 core is the newest profile macOS offers.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)

	win, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	w := &Window{sdlWindow: win, glContext: ctx}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	if cfg.Fullscreen {
		if err := w.ToggleFullscreen(); err != nil {
			logger.Warn("failed to enter fullscreen", zap.Error(err))
		}
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", w.Fullscreen()),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// DrawableSize returns the framebuffer size in pixels, which differs from
// the window size on high-DPI displays.
func (w *Window) DrawableSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// Size returns the window size in screen points, the unit of mouse
// coordinates.
func (w *Window) Size() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

// Fullscreen reports whether the window covers the desktop.
func (w *Window) Fullscreen() bool {
	return w.screen.full
}

// ToggleFullscreen switches between windowed and desktop fullscreen,
// restoring the previous windowed position and size on the way back.
func (w *Window) ToggleFullscreen() error {
	if !w.screen.full {
		x, y := w.sdlWindow.GetPosition()
		width, height := w.sdlWindow.GetSize()
		if err := w.sdlWindow.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP); err != nil {
			return fmt.Errorf("entering fullscreen: %w", err)
		}
		w.screen.enter(Rect{X: int(x), Y: int(y), W: int(width), H: int(height)})
		return nil
	}

	if err := w.sdlWindow.SetFullscreen(0); err != nil {
		return fmt.Errorf("leaving fullscreen: %w", err)
	}
	r := w.screen.leave()
	w.sdlWindow.SetSize(int32(r.W), int32(r.H))
	w.sdlWindow.SetPosition(int32(r.X), int32(r.Y))
	return nil
}
