package raymarch

var (
	Debug    = false // set to true to collect march statistics
	UseLocks = true  // set to false to write the frame buffer without locks (bands are disjoint)
	// Compile time checks to ensure that the primitive interface is implemented by all variants
	_ Primitive = Sphere{}
	_ Primitive = Box{}
	_ Primitive = Torus{}
	_ Primitive = Plane{}
	_ rotatable = Box{}
	_ rotatable = Torus{}
	_ Sink      = (*FrameBuffer)(nil)
)
