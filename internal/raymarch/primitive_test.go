package raymarch

import (
	"math"
	"math/rand"
	"testing"
)

func randVec(rng *rand.Rand, span float64) Vec3 {
	return Vec3{
		Real((rng.Float64()*2 - 1) * span),
		Real((rng.Float64()*2 - 1) * span),
		Real((rng.Float64()*2 - 1) * span),
	}
}

func TestSphereDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewSphere(Vec3{}, 1.5, RGB{255, 0, 0})
	for i := 0; i < 1000; i++ {
		p := randVec(rng, 10)
		if got, want := s.Distance(p), p.Len()-1.5; !near(got, want, 1e-6) {
			t.Fatalf("sphere distance at %+v: got %g want %g", p, got, want)
		}
	}
	// Points exactly on the surface.
	for i := 0; i < 1000; i++ {
		p := randVec(rng, 1).Norm().Mul(1.5)
		if d := s.Distance(p); math.Abs(float64(d)) >= 1e-5 {
			t.Fatalf("surface point %+v has distance %g", p, d)
		}
	}
}

func TestSphereDistance_Offset(t *testing.T) {
	s := NewSphere(Vec3{2, 0, 5}, 1, RGB{})
	if d := s.Distance(Vec3{}); !near(d, Real(math.Sqrt(29))-1, 1e-6) {
		t.Fatalf("offset sphere distance wrong: %g", d)
	}
	if d := s.Distance(Vec3{2, 0, 5}); d != -1 {
		t.Fatalf("center should be -radius: %g", d)
	}
}

func TestBoxDistance(t *testing.T) {
	b := NewBox(Vec3{0, 0, 0}, Vec3{1, 2, 3}, RGB{}, Rot3Deg{})
	cases := []struct {
		p    Vec3
		want Real
	}{
		// inside, the nearest face is x
		{Vec3{0, 0, 0}, -1},
		{Vec3{0.5, 0, 0}, -0.5},
		{Vec3{2, 0, 0}, 1},
		{Vec3{0, 0, -4}, 1},
		// beyond the x/y edge
		{Vec3{2, 3, 0}, Real(math.Sqrt2)},
		{Vec3{1, 2, 3}, 0},
	}
	for _, c := range cases {
		if d := b.Distance(c.p); !near(d, c.want, 1e-6) {
			t.Fatalf("box distance at %+v: got %g want %g", c.p, d, c.want)
		}
	}
}

func TestBoxDistance_Rotated(t *testing.T) {
	// A long thin box along X, yawed 90 degrees, lies along Z.
	b := NewBox(Vec3{0, 0, 5}, Vec3{3, 0.5, 0.5}, RGB{}, Rot3Deg{Y: 90})
	if d := b.Distance(Vec3{0, 0, 7.5}); d > 0 {
		t.Fatalf("point along the rotated long axis should be inside: %g", d)
	}
	if d := b.Distance(Vec3{2.5, 0, 5}); !near(d, 2, 1e-5) {
		t.Fatalf("point beside the rotated box: got %g want 2", d)
	}
}

func TestTorusDistance(t *testing.T) {
	tr := NewTorus(Vec3{0, 0, 0}, 2, 0.5, RGB{}, Rot3Deg{})
	if d := tr.Distance(Vec3{2, 0, 0}); !near(d, -0.5, 1e-6) {
		t.Fatalf("tube center should be -minor: %g", d)
	}
	if d := tr.Distance(Vec3{0, 0, 0}); !near(d, 1.5, 1e-6) {
		t.Fatalf("torus hole center: got %g want 1.5", d)
	}
	if d := tr.Distance(Vec3{0, 1, -2}); !near(d, 0.5, 1e-6) {
		t.Fatalf("above the ring: got %g want 0.5", d)
	}
	// Rotated 90 degrees about X the ring stands in the XY plane.
	up := NewTorus(Vec3{0, 0, 0}, 2, 0.5, RGB{}, Rot3Deg{X: 90})
	if d := up.Distance(Vec3{0, 2, 0}); !near(d, -0.5, 1e-5) {
		t.Fatalf("rotated tube center: %g", d)
	}
}

func TestPlaneDistance(t *testing.T) {
	p := NewPlane(-1, RGB{255, 255, 255})
	if d := p.Distance(Vec3{3, 0, -7}); d != 1 {
		t.Fatalf("plane distance above: %g", d)
	}
	if d := p.Distance(Vec3{0, -3, 0}); d != -2 {
		t.Fatalf("plane distance below: %g", d)
	}
	if pos := p.Position(); pos != (Vec3{0, -1, 0}) {
		t.Fatalf("plane position: %+v", pos)
	}
}

func TestDistance_NegativeSizeDoesNotPanic(t *testing.T) {
	prims := []Primitive{
		NewSphere(Vec3{}, -1, RGB{}),
		NewBox(Vec3{}, Vec3{-1, -1, -1}, RGB{}, Rot3Deg{}),
		NewTorus(Vec3{}, -1, -2, RGB{}, Rot3Deg{}),
	}
	for _, p := range prims {
		_ = p.Distance(Vec3{1, 2, 3})
	}
}

func TestDistance_Lipschitz(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	prims := []Primitive{
		NewSphere(Vec3{2, 0, 5}, 1, RGB{}),
		NewBox(Vec3{0, 1, 4}, Vec3{1, 0.5, 2}, RGB{}, Rot3Deg{X: 30, Y: 45, Z: 60}),
		NewBox(Vec3{}, Vec3{1, 1, 1}, RGB{}, Rot3Deg{}),
		NewTorus(Vec3{-2, 0, 5}, 1, 0.5, RGB{}, Rot3Deg{X: -100, Y: 20, Z: 60}),
		NewPlane(-1, RGB{}),
	}
	const eps = 1e-4
	for _, pr := range prims {
		for i := 0; i < 5000; i++ {
			p := randVec(rng, 8)
			q := p.Add(randVec(rng, 2))
			diff := math.Abs(float64(pr.Distance(p) - pr.Distance(q)))
			if bound := float64(p.Sub(q).Len()); diff > bound+eps*(1+bound) {
				t.Fatalf("%s violates Lipschitz bound: |d(p)-d(q)|=%g > |p-q|=%g (p=%+v q=%+v)", pr.Kind(), diff, bound, p, q)
			}
		}
	}
}

func TestKindString(t *testing.T) {
	if KindSphere.String() != "sphere" || KindBox.String() != "box" || KindTorus.String() != "torus" || KindPlane.String() != "plane" {
		t.Fatal("kind names wrong")
	}
	if Kind(9).String() != "kind(9)" {
		t.Fatalf("unknown kind: %s", Kind(9))
	}
}
