package raymarch

const (
	ThreadCount   = 8    // column bands (and workers) per frame
	MaxSteps      = 64   // march iterations before a ray is given up
	MaxDistance   = 64.0 // nearest-surface distance at which a ray has escaped the scene
	HitEpsilon    = 0.1  // nearest-surface distance that counts as a hit
	GradientRamp  = ":;1?$X%#@"
	MissGlyph     = ' '
	normalEpsilon = 0.00028865 // tetrahedron offset for normal estimation
	NumShards     = 64         // row shards guarding frame buffer writes when UseLocks is set
)

// Directional light, pointing from the upper-front-right into the scene.
var lightDir = Vec3{0.25, -0.5, 0.5}.Norm()
