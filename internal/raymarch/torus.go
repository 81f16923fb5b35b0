package raymarch

import "github.com/chewxy/math32"

// Torus lying in its local XZ plane: Major is the ring radius, Minor the tube radius.
type Torus struct {
	Center       Vec3
	Major, Minor Real
	Rot          Rotation
	Color        RGB
}

// NewTorus builds a torus; angles are in degrees.
func NewTorus(center Vec3, major, minor Real, color RGB, angles Rot3Deg) Torus {
	t := Torus{Center: center, Major: major, Minor: minor, Rot: NewRotation(angles), Color: color}
	DebugLog("Created torus: %+v", t)
	return t
}

func (t Torus) Distance(p Vec3) Real {
	l := t.Rot.toLocal(p.Sub(t.Center))
	qx := math32.Hypot(l.X, l.Z) - t.Major
	return math32.Hypot(qx, l.Y) - t.Minor
}

func (t Torus) Albedo() RGB    { return t.Color }
func (t Torus) Kind() Kind     { return KindTorus }
func (t Torus) Position() Vec3 { return t.Center }

func (t Torus) Rotated(angles Rot3Deg) Primitive {
	t.Rot = NewRotation(angles)
	return t
}
