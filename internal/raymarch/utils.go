package raymarch

import "github.com/chewxy/math32"

func isFinite(x Real) bool { return !math32.IsInf(x, 0) && !math32.IsNaN(x) }

func clamp01(x Real) Real {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
