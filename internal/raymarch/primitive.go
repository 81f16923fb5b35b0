package raymarch

import "fmt"

type Kind uint8

const (
	KindSphere Kind = iota
	KindBox
	KindTorus
	KindPlane
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	case KindTorus:
		return "torus"
	case KindPlane:
		return "plane"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Primitive is one implicit surface. Distance must be a lower bound on the true Euclidean
// distance to the surface (Lipschitz-1), otherwise marching can overshoot.
// Implementations are value types: a copied Primitive never shares state with the original.
type Primitive interface {
	Distance(p Vec3) Real
	Albedo() RGB
	Kind() Kind
	Position() Vec3
}

// rotatable primitives carry a rotation that can be rebuilt from fresh Euler angles.
type rotatable interface {
	Primitive
	Rotated(angles Rot3Deg) Primitive
}
