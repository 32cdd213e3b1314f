package camera

// Settings overrides the rig defaults. Zero values keep the default.
type Settings struct {
	OrbitDistance    float32
	OrbitMinDistance float32
	OrbitMaxDistance float32
	FocusDistance    float32
	FocusMinDistance float32
	FocusMaxDistance float32
	DragSensitivity  float32
	LookSensitivity  float32
	FreeSpeed        float32
	FreeSprintSpeed  float32
}

// Controller owns one rig per mode and tracks which is active. Each rig keeps
// its state when the mode changes.
type Controller struct {
	mode Mode

	Orbit *OrbitRig
	Free  *FreeRig
	Focus *FocusRig
}

// NewController builds the three rigs. focusTargets are scene indices in
// cycling order.
func NewController(s Settings, focusTargets []int) *Controller {
	orbit := NewOrbitRig()
	free := NewFreeRig()
	focus := NewFocusRig(focusTargets, orbit)

	set := func(dst *float32, v float32) {
		if v > 0 {
			*dst = v
		}
	}
	set(&orbit.MinDistance, s.OrbitMinDistance)
	set(&orbit.MaxDistance, s.OrbitMaxDistance)
	set(&orbit.Distance, s.OrbitDistance)
	set(&orbit.DragSensitivity, s.DragSensitivity)
	set(&focus.MinDistance, s.FocusMinDistance)
	set(&focus.MaxDistance, s.FocusMaxDistance)
	set(&focus.Distance, s.FocusDistance)
	set(&free.LookSensitivity, s.LookSensitivity)
	set(&free.Speed, s.FreeSpeed)
	set(&free.SprintSpeed, s.FreeSprintSpeed)

	orbit.Distance = clamp(orbit.Distance, orbit.MinDistance, orbit.MaxDistance)
	focus.Distance = clamp(focus.Distance, focus.MinDistance, focus.MaxDistance)

	return &Controller{mode: ModeOrbit, Orbit: orbit, Free: free, Focus: focus}
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// SetMode switches the active rig. Unknown modes are ignored.
func (c *Controller) SetMode(m Mode) {
	switch m {
	case ModeOrbit, ModeFree, ModeFocus:
		c.mode = m
	}
}

// Active returns the rig for the current mode.
func (c *Controller) Active() Rig {
	switch c.mode {
	case ModeFree:
		return c.Free
	case ModeFocus:
		return c.Focus
	default:
		return c.Orbit
	}
}

// View computes the active rig's view.
func (c *Controller) View(loc Locator) View {
	return c.Active().View(loc)
}

// Drag routes a look-button drag to the free rig in free mode and to the
// shared orbit angles otherwise.
func (c *Controller) Drag(dx, dy float32) {
	if c.mode == ModeFree {
		c.Free.Look(dx, dy)
		return
	}
	c.Orbit.Drag(dx, dy)
}

// Scroll applies wheel notches to the active rig's distance. It reports false
// in free mode, where the wheel belongs to the field of view.
func (c *Controller) Scroll(wheel float32) bool {
	switch c.mode {
	case ModeOrbit:
		c.Orbit.Zoom(wheel)
	case ModeFocus:
		c.Focus.Zoom(wheel)
	default:
		return false
	}
	return true
}

// Nudge rotates the orbit angles from the keyboard. Ignored in free mode.
func (c *Controller) Nudge(dyaw, dpitch float32) {
	if c.mode != ModeFree {
		c.Orbit.Rotate(dyaw, dpitch)
	}
}

// Move flies the free rig. Ignored outside free mode.
func (c *Controller) Move(m Movement, dt float32, sprint bool) {
	if c.mode == ModeFree {
		c.Free.Move(m, dt, sprint)
	}
}

// AdjustFocusDistance changes the focus distance in focus mode.
func (c *Controller) AdjustFocusDistance(delta float32) bool {
	if c.mode != ModeFocus {
		return false
	}
	c.Focus.Adjust(delta)
	return true
}

// NextFocus advances the focus target. Works in any mode so the target is
// ready when focus mode is entered.
func (c *Controller) NextFocus() {
	c.Focus.Next()
}

// PrevFocus steps the focus target back.
func (c *Controller) PrevFocus() {
	c.Focus.Prev()
}

// FocusOn switches to focus mode centred on body. Bodies outside the focus
// list leave the camera unchanged.
func (c *Controller) FocusOn(body int) bool {
	if !c.Focus.Select(body) {
		return false
	}
	c.mode = ModeFocus
	return true
}
