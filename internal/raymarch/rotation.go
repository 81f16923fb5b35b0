package raymarch

import "github.com/chewxy/math32"

// Euler angles in radians about the X, Y and Z axes.
type Rot3 struct {
	X, Y, Z Real
}

// Rotation in degrees (friendlier than radians for callers and key bindings).
type Rot3Deg struct {
	X, Y, Z Real
}

func (r Rot3Deg) Radians() Rot3 {
	return Rot3{X: degToRad(r.X), Y: degToRad(r.Y), Z: degToRad(r.Z)}
}

func degToRad(d Real) Real { return d / 180 * math32.Pi }

func rotX(a Real) Mat3 {
	c, s := math32.Cos(a), math32.Sin(a)
	M := I3()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}

func rotY(a Real) Mat3 {
	c, s := math32.Cos(a), math32.Sin(a)
	M := I3()
	M.M[0][0], M.M[0][2] = c, s
	M.M[2][0], M.M[2][2] = -s, c
	return M
}

func rotZ(a Real) Mat3 {
	c, s := math32.Cos(a), math32.Sin(a)
	M := I3()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}

// Compose rotation from angles: yaw, then pitch, then roll (Ry * Rx * Rz). The order is fixed.
func rotFromAngles(r Rot3) Mat3 {
	return rotY(r.Y).Mul(rotX(r.X)).Mul(rotZ(r.Z))
}

// Rotation keeps the Euler angles a primitive was last rotated to together with the matrix built from them.
type Rotation struct {
	Angles Rot3Deg
	M      Mat3 // local->world
}

func NewRotation(angles Rot3Deg) Rotation {
	return Rotation{Angles: angles, M: rotFromAngles(angles.Radians())}
}

// toLocal un-rotates a point already translated into the primitive's frame.
func (r Rotation) toLocal(p Vec3) Vec3 { return r.M.MulVecT(p) }
