package raymarch

type MarchState uint8

const (
	Marching MarchState = iota
	Hit
	Miss
)

func (s MarchState) String() string {
	switch s {
	case Marching:
		return "marching"
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	}
	return "unknown"
}

// MarchResult is the terminal state of one marched ray.
type MarchResult struct {
	State    MarchState
	Index    int // primitive hit, -1 on a miss
	Position Vec3
	Distance Real // nearest-surface distance at Position
	Steps    int
}

// March sphere-traces ray through the scene until it hits a surface, escapes past
// cfg.MaxDistance or runs out of cfg.MaxSteps.
func (s *Scene) March(ray Ray, cfg Config) MarchResult {
	d, idx, ok := s.Nearest(ray.Position)
	steps := 0
	for {
		if !ok {
			logMarch(catEmpty)
			return MarchResult{State: Miss, Index: -1, Position: ray.Position, Distance: d, Steps: steps}
		}
		if d >= cfg.MaxDistance {
			logMarch(catEscaped)
			return MarchResult{State: Miss, Index: -1, Position: ray.Position, Distance: d, Steps: steps}
		}
		if d <= cfg.HitEpsilon {
			logMarch(catHit)
			return MarchResult{State: Hit, Index: idx, Position: ray.Position, Distance: d, Steps: steps}
		}
		if steps >= cfg.MaxSteps {
			logMarch(catStepLimit)
			return MarchResult{State: Miss, Index: -1, Position: ray.Position, Distance: d, Steps: steps}
		}
		ray.Step(d)
		steps++
		d, idx, ok = s.Nearest(ray.Position)
	}
}

// Trace marches ray and shades the result into a glyph and foreground color.
func (s *Scene) Trace(ray Ray, cfg Config) (rune, Color) {
	res := s.March(ray, cfg)
	if res.State != Hit {
		return MissGlyph, ColorRed
	}
	n := s.Normal(res.Position)
	return Shade(s.Primitives[res.Index].Albedo(), n, ray.Direction)
}
