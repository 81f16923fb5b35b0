package tui

import (
	"time"

	"github.com/lukaszgryglicki/termmarcher/internal/raymarch"
)

// Spinner rotates one primitive of a scene at a fixed rate in degrees per second.
type Spinner struct {
	Index  int
	Angles raymarch.Rot3Deg
	Rate   raymarch.Rot3Deg
}

// Advance moves the angles forward by dt and applies them to s.
func (sp *Spinner) Advance(s *raymarch.Scene, dt time.Duration) {
	k := raymarch.Real(dt.Seconds())
	sp.Angles.X += sp.Rate.X * k
	sp.Angles.Y += sp.Rate.Y * k
	sp.Angles.Z += sp.Rate.Z * k
	s.UpdateRotation(sp.Index, sp.Angles)
}

// DemoScene builds the floor, a red sphere and a spinning green torus.
func DemoScene() (*raymarch.Scene, *Spinner) {
	s := raymarch.NewScene()
	s.Add(raymarch.NewPlane(-1, raymarch.RGB{R: 255, G: 255, B: 255}))
	s.Add(raymarch.NewSphere(raymarch.Vec3{X: 2, Z: 5}, 1, raymarch.RGB{R: 255}))
	torus := s.Add(raymarch.NewTorus(raymarch.Vec3{X: -2, Z: 5}, 1, 0.5, raymarch.RGB{G: 255}, raymarch.Rot3Deg{}))
	return s, &Spinner{
		Index: torus,
		Rate:  raymarch.Rot3Deg{X: -100.5, Y: -20.5, Z: 60.5},
	}
}
