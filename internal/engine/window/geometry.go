package window

// Rect is a window position and size in screen coordinates.
type Rect struct {
	X, Y, W, H int
}

// defaultWindowed is restored if fullscreen is left without a saved rect,
// which happens when the window starts fullscreen.
var defaultWindowed = Rect{X: 100, Y: 100, W: 1280, H: 720}

type fullscreenTracker struct {
	full  bool
	saved Rect
}

func (t *fullscreenTracker) enter(windowed Rect) {
	if t.full {
		return
	}
	if windowed.W > 0 && windowed.H > 0 {
		t.saved = windowed
	}
	t.full = true
}

func (t *fullscreenTracker) leave() Rect {
	t.full = false
	if t.saved.W <= 0 || t.saved.H <= 0 {
		return defaultWindowed
	}
	return t.saved
}
