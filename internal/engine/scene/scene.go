// Package scene holds the body hierarchy of the simulated system and the
// animation step that advances it.
//
// Bodies live in a flat table where every child appears after its parent, so
// world transforms are produced by a single forward pass each frame.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// NoParent marks a body attached to the world origin.
const NoParent = -1

// Attachment describes how a body is placed relative to its parent.
type Attachment int

const (
	// Orbit rotates around the parent by the orbit angle, translates by the
	// orbital radius, then spins about the local Y axis.
	Orbit Attachment = iota
	// Rigid is a fixed tilt in the parent's orbit frame, e.g. a planetary ring.
	Rigid
)

// Body is a single entry in the scene table. Angles are in degrees and speeds
// in degrees per second.
type Body struct {
	Name     string
	Parent   int
	Attach   Attachment
	Mesh     string
	Texture  string
	Material string

	OrbitRadius float32
	OrbitSpeed  float32
	SpinSpeed   float32

	// TiltX is the fixed rotation about X applied to Rigid attachments.
	TiltX float32

	OrbitAngle float32
	SpinAngle  float32
}

// Scene is the mutable body table.
type Scene struct {
	bodies []Body
	index  map[string]int

	frames []mgl32.Mat4
	models []mgl32.Mat4
}

// New validates the table and builds a scene. Parents must precede their
// children and names must be unique.
func New(bodies []Body) (*Scene, error) {
	s := &Scene{
		bodies: make([]Body, len(bodies)),
		index:  make(map[string]int, len(bodies)),
		frames: make([]mgl32.Mat4, len(bodies)),
		models: make([]mgl32.Mat4, len(bodies)),
	}
	copy(s.bodies, bodies)

	for i, b := range s.bodies {
		if b.Name == "" {
			return nil, fmt.Errorf("body %d has no name", i)
		}
		if _, dup := s.index[b.Name]; dup {
			return nil, fmt.Errorf("duplicate body %q", b.Name)
		}
		if b.Parent != NoParent && (b.Parent < 0 || b.Parent >= i) {
			return nil, fmt.Errorf("body %q: parent %d must precede it", b.Name, b.Parent)
		}
		if b.Attach == Rigid && b.Parent == NoParent {
			return nil, fmt.Errorf("body %q: rigid attachment needs a parent", b.Name)
		}
		s.index[b.Name] = i
	}

	s.Update()
	return s, nil
}

// Len returns the number of bodies.
func (s *Scene) Len() int {
	return len(s.bodies)
}

// Body returns a copy of body i.
func (s *Scene) Body(i int) Body {
	return s.bodies[i]
}

// Bodies returns the body table. Callers must not modify it.
func (s *Scene) Bodies() []Body {
	return s.bodies
}

// Index returns the table index of the named body.
func (s *Scene) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Update recomputes every body's frame and model matrix from the current
// angles. A frame excludes the body's own spin so children do not inherit it.
func (s *Scene) Update() {
	for i := range s.bodies {
		b := &s.bodies[i]

		parent := mgl32.Ident4()
		if b.Parent != NoParent {
			parent = s.frames[b.Parent]
		}

		switch b.Attach {
		case Rigid:
			s.frames[i] = parent.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(b.TiltX)))
			s.models[i] = s.frames[i]
		default:
			local := mgl32.HomogRotate3DY(mgl32.DegToRad(b.OrbitAngle)).
				Mul4(mgl32.Translate3D(b.OrbitRadius, 0, 0))
			s.frames[i] = parent.Mul4(local)
			s.models[i] = s.frames[i].Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(b.SpinAngle)))
		}
	}
}

// WorldTransforms returns a copy of every body's model matrix as of the last
// Update, in table order.
func (s *Scene) WorldTransforms() []mgl32.Mat4 {
	out := make([]mgl32.Mat4, len(s.models))
	copy(out, s.models)
	return out
}

// Model returns the model matrix of body i as of the last Update.
func (s *Scene) Model(i int) mgl32.Mat4 {
	return s.models[i]
}

// Position returns the world-space centre of body i as of the last Update.
func (s *Scene) Position(i int) mgl32.Vec3 {
	return s.frames[i].Col(3).Vec3()
}
