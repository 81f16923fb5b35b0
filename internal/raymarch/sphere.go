package raymarch

// Sphere of Radius around Center. It has no rotation.
type Sphere struct {
	Center Vec3
	Radius Real
	Color  RGB
}

func NewSphere(center Vec3, radius Real, color RGB) Sphere {
	s := Sphere{Center: center, Radius: radius, Color: color}
	DebugLog("Created sphere: %+v", s)
	return s
}

func (s Sphere) Distance(p Vec3) Real { return p.Sub(s.Center).Len() - s.Radius }
func (s Sphere) Albedo() RGB          { return s.Color }
func (s Sphere) Kind() Kind           { return KindSphere }
func (s Sphere) Position() Vec3       { return s.Center }
