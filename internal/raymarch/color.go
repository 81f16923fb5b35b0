package raymarch

// RGB is a surface albedo.
type RGB struct {
	R, G, B uint8
}

// Scale multiplies every channel by k in [0,1], truncating toward zero.
func (c RGB) Scale(k Real) RGB {
	k = clamp01(k)
	return RGB{uint8(Real(c.R) * k), uint8(Real(c.G) * k), uint8(Real(c.B) * k)}
}

// Color is a terminal cell color. The zero value is the terminal's default color.
type Color struct {
	RGB
	Set bool
}

func ColorOf(c RGB) Color { return Color{RGB: c, Set: true} }

var (
	ColorDefault = Color{}
	ColorRed     = ColorOf(RGB{255, 0, 0})
	ColorWhite   = ColorOf(RGB{255, 255, 255})
)
