package raymarch

// Plane is the horizontal plane y = Height. It never rotates: its distance is only
// a valid SDF while the normal stays +Y.
type Plane struct {
	Height Real
	Color  RGB
}

func NewPlane(height Real, color RGB) Plane {
	p := Plane{Height: height, Color: color}
	DebugLog("Created plane: %+v", p)
	return p
}

func (pl Plane) Distance(p Vec3) Real { return p.Y - pl.Height }
func (pl Plane) Albedo() RGB          { return pl.Color }
func (pl Plane) Kind() Kind           { return KindPlane }
func (pl Plane) Position() Vec3       { return Vec3{0, pl.Height, 0} }
