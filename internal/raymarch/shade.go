package raymarch

import "github.com/chewxy/math32"

var ramp = []rune(GradientRamp)

// Lambert scales albedo by the cosine between normal and the light direction.
func Lambert(albedo RGB, normal, light Vec3) RGB {
	return albedo.Scale(clamp01(normal.Dot(light.Neg())))
}

// Shade picks the glyph and color for a surface point seen along view.
// The glyph brightness is attenuated twice, by the light angle and by the view angle,
// which darkens silhouettes.
func Shade(albedo RGB, normal, view Vec3) (rune, Color) {
	color := Lambert(albedo, normal, lightDir)
	intensity := clamp01(normal.Dot(lightDir.Neg())) * clamp01(normal.Dot(view.Norm().Neg()))
	return ramp[rampIndex(intensity)], ColorOf(color)
}

// rampIndex maps intensity in [0,1] onto the ramp. The scale is len+1, so the brightest
// tenth of the range (and exactly 1) would land past the end; those clamp to the last glyph.
func rampIndex(intensity Real) int {
	i := int(math32.Floor(intensity * Real(len(ramp)+1)))
	if i >= len(ramp) {
		i = len(ramp) - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
