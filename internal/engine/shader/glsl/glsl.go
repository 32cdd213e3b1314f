// Package glsl embeds the viewer's shader sources.
package glsl

import _ "embed"

// Lit textured bodies.
var (
	//go:embed body.vert
	BodyVertex string
	//go:embed body.frag
	BodyFragment string
)

// Flat-coloured lines (orbit guides and the HUD circle).
var (
	//go:embed line.vert
	LineVertex string
	//go:embed line.frag
	LineFragment string
)
