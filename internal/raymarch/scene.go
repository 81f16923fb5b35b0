package raymarch

import "github.com/chewxy/math32"

// Camera: Yaw turns rays about the vertical axis. Roll is carried but not applied by the projection.
type Camera struct {
	Eye  Vec3
	Yaw  Real // degrees
	Roll Real // degrees
}

// Turn adds deltaDeg to the yaw.
func (c *Camera) Turn(deltaDeg Real) { c.Yaw += deltaDeg }

// Scene is an ordered, append-only list of primitives plus the camera looking at them.
// Order only matters for exact distance ties, where the earlier primitive wins.
type Scene struct {
	Primitives []Primitive
	Camera     Camera
}

// NewScene returns an empty scene with the camera at the origin.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends p and returns the index that identifies it for UpdateRotation.
func (s *Scene) Add(p Primitive) int {
	idx := len(s.Primitives)
	s.Primitives = append(s.Primitives, p)
	DebugLog("Added %s #%d at %+v", p.Kind(), idx, p.Position())
	return idx
}

func (s *Scene) Len() int { return len(s.Primitives) }

func (s *Scene) At(idx int) Primitive { return s.Primitives[idx] }

// UpdateRotation rebuilds the rotation of primitive idx from angles in degrees.
// Primitives without a rotation (spheres, planes) are left untouched.
func (s *Scene) UpdateRotation(idx int, angles Rot3Deg) {
	if r, ok := s.Primitives[idx].(rotatable); ok {
		s.Primitives[idx] = r.Rotated(angles)
	}
}

// Nearest returns the smallest primitive distance at p and the index of that primitive.
// ok is false only for an empty scene.
func (s *Scene) Nearest(p Vec3) (dist Real, idx int, ok bool) {
	if len(s.Primitives) == 0 {
		return math32.Inf(1), -1, false
	}
	dist = s.Primitives[0].Distance(p)
	for i := 1; i < len(s.Primitives); i++ {
		if d := s.Primitives[i].Distance(p); d < dist {
			dist, idx = d, i
		}
	}
	return dist, idx, true
}

// Tetrahedron offsets for normal estimation.
var (
	tetK1 = Vec3{normalEpsilon, -normalEpsilon, -normalEpsilon}
	tetK2 = Vec3{-normalEpsilon, -normalEpsilon, normalEpsilon}
	tetK3 = Vec3{-normalEpsilon, normalEpsilon, -normalEpsilon}
	tetK4 = Vec3{normalEpsilon, normalEpsilon, normalEpsilon}
)

// Normal estimates the gradient of the nearest-distance field at p from four samples.
func (s *Scene) Normal(p Vec3) Vec3 {
	d1, _, _ := s.Nearest(p.Add(tetK1))
	d2, _, _ := s.Nearest(p.Add(tetK2))
	d3, _, _ := s.Nearest(p.Add(tetK3))
	d4, _, _ := s.Nearest(p.Add(tetK4))
	return tetK1.Mul(d1).Add(tetK2.Mul(d2)).Add(tetK3.Mul(d3)).Add(tetK4.Mul(d4)).Norm()
}

// CopyFrom makes s an independent copy of o, reusing s's storage.
func (s *Scene) CopyFrom(o *Scene) {
	s.Primitives = append(s.Primitives[:0], o.Primitives...)
	s.Camera = o.Camera
}

// Clone returns a deep copy.
func (s *Scene) Clone() *Scene {
	c := &Scene{}
	c.CopyFrom(s)
	return c
}
