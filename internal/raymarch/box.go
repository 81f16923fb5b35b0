package raymarch

import "github.com/chewxy/math32"

// Box: axis-aligned in local space with half-extents Half, rotated by Rot about Center.
type Box struct {
	Center Vec3
	Half   Vec3
	Rot    Rotation
	Color  RGB
}

// NewBox builds a box; angles are in degrees.
func NewBox(center, half Vec3, color RGB, angles Rot3Deg) Box {
	b := Box{Center: center, Half: half, Rot: NewRotation(angles), Color: color}
	DebugLog("Created box: %+v", b)
	return b
}

// Exact SDF of a box in its local frame.
func (b Box) Distance(p Vec3) Real {
	q := b.Rot.toLocal(p.Sub(b.Center)).Abs().Sub(b.Half)
	return q.Max(0).Len() + math32.Min(q.MaxComp(), 0)
}

func (b Box) Albedo() RGB    { return b.Color }
func (b Box) Kind() Kind     { return KindBox }
func (b Box) Position() Vec3 { return b.Center }

func (b Box) Rotated(angles Rot3Deg) Primitive {
	b.Rot = NewRotation(angles)
	return b
}
