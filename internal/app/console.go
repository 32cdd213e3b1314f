package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/Faultbox/orrery/internal/engine/camera"
)

const controlsBanner = `Controls:
  1 Orbit cam, 2 Free cam (RMB look + WASD/QE), 3 Focus cam (N/P cycle)
  Mouse wheel: zoom/FOV   |  H: toggle orbit lines   |  B: toggle stars
  [ / ] time speed   |  Space pause/resume   |  F11 or Alt+Enter fullscreen
  - / = FOV          |  Z/X focus distance   |  ESC quit
  F12 screenshot     |  M mute ambient track  |  Click a planet to focus it

`

// Console writes the controls banner, the live status line and one-off
// confirmations to the terminal. The status line is rewritten in place.
type Console struct {
	out      io.Writer
	inStatus bool
	width    int
}

// NewConsole writes to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Banner prints the controls summary.
func (c *Console) Banner() {
	fmt.Fprint(c.out, controlsBanner)
}

// Status replaces the current status line.
func (c *Console) Status(line string) {
	pad := ""
	if n := c.width - len(line); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	fmt.Fprintf(c.out, "\r%s%s", line, pad)
	c.width = len(line)
	c.inStatus = true
}

// Println prints msg on its own line below the status line.
func (c *Console) Println(msg string) {
	c.Finish()
	fmt.Fprintln(c.out, msg)
}

// Finish ends the status line so later output starts on a fresh line.
func (c *Console) Finish() {
	if c.inStatus {
		fmt.Fprintln(c.out)
		c.inStatus = false
		c.width = 0
	}
}

// StatusLine formats the periodic readout.
func StatusLine(fps float64, mode camera.Mode, focusDist, fov float32) string {
	return fmt.Sprintf("FPS: %.1f | Mode: %s | FocusDist: %.1f | FOV: %.1f", fps, mode, focusDist, fov)
}

// Title formats the window title with the frame rate.
func Title(base string, fps float64) string {
	return fmt.Sprintf("%s  |  FPS: %.1f", base, fps)
}
