package raymarch

import "github.com/chewxy/math32"

type Real = float32

// Vec3 is used both for points and directions in 3D space.
type Vec3 struct {
	X, Y, Z Real
}

// Vector functions
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vec3) Mul(s Real) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Neg() Vec3       { return Vec3{-v.X, -v.Y, -v.Z} }

// Abs returns the component-wise absolute value.
func (v Vec3) Abs() Vec3 { return Vec3{math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)} }

// Max returns the component-wise maximum of v and s.
func (v Vec3) Max(s Real) Vec3 {
	return Vec3{math32.Max(v.X, s), math32.Max(v.Y, s), math32.Max(v.Z, s)}
}

// MaxComp returns the largest component.
func (v Vec3) MaxComp() Real { return math32.Max(v.X, math32.Max(v.Y, v.Z)) }

// Dot returns the dot product between two 3D vectors.
func (a Vec3) Dot(b Vec3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Len returns the Euclidean length of the vector.
func (v Vec3) Len() Real { return math32.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
func (v Vec3) Norm() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}
