package raymarch

import "github.com/chewxy/math32"

// Size of the output grid in cells.
type Size struct {
	W, H int
}

// GenerateRay returns the primary ray for cell (px, py). Pixel coordinates are mirrored
// about both axes, the horizontal axis is squeezed by half to compensate for tall terminal
// cells, and the depth component of 2 fixes the field of view. The yaw rotates the
// direction in the XZ plane with the rotated X mirrored back to match the pixel mirror.
//
// Rays start at the origin, not at cam.Eye, and cam.Roll is not applied.
func GenerateRay(cam Camera, size Size, px, py int) Ray {
	w, h := Real(size.W), Real(size.H)
	fcx, fcy := Real(size.W-px), Real(size.H-py)
	ux := (2*fcx - w) / h
	uy := (2*fcy - h) / h
	d := Vec3{ux * 0.5, uy, 2}.Norm()

	r := degToRad(cam.Yaw)
	c, s := math32.Cos(r), math32.Sin(r)
	dx := d.X*c - d.Z*s
	dz := d.Z*c + d.X*s
	d.X, d.Z = -dx, dz

	return NewRay(Vec3{}, d)
}
