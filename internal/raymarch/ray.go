package raymarch

// Ray is a marching cursor: Position advances along Direction by each step.
type Ray struct {
	Origin    Vec3
	Direction Vec3 // unit
	Position  Vec3
}

func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, Position: origin}
}

// Step advances the position by d along the direction.
func (r *Ray) Step(d Real) {
	r.Position = r.Position.Add(r.Direction.Mul(d))
}
