package scene

// EffectiveDelta is the simulated time that elapses this frame.
// A negative time scale is treated as zero.
func EffectiveDelta(elapsed float64, paused bool, timeScale float64) float64 {
	if paused || timeScale <= 0 || elapsed <= 0 {
		return 0
	}
	return elapsed * timeScale
}

// Advance moves every body along its orbit and spin by its angular speed
// times the effective delta, then refreshes the world transforms.
func (s *Scene) Advance(elapsed float64, paused bool, timeScale float64) {
	adv := float32(EffectiveDelta(elapsed, paused, timeScale))
	if adv != 0 {
		for i := range s.bodies {
			b := &s.bodies[i]
			b.OrbitAngle += b.OrbitSpeed * adv
			b.SpinAngle += b.SpinSpeed * adv
		}
	}
	s.Update()
}
