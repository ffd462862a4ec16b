package phong3d

// RGB stores color components; lit values may exceed 1 before output.
type RGB struct {
	R, G, B Real
}

var Black = RGB{}

func (c RGB) Add(o RGB) RGB    { return RGB{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c RGB) Mul(s Real) RGB   { return RGB{c.R * s, c.G * s, c.B * s} }
func (c RGB) MulRGB(o RGB) RGB { return RGB{c.R * o.R, c.G * o.G, c.B * o.B} }

func (c RGB) finite() bool { return isFinite(c.R) && isFinite(c.G) && isFinite(c.B) }

// clamp01 clamps each channel to [0,1].
func (c RGB) clamp01() RGB {
	cl := func(x Real) Real {
		if x < 0 {
			return 0
		}
		if x > 1 {
			return 1
		}
		return x
	}
	return RGB{cl(c.R), cl(c.G), cl(c.B)}
}

// Bytes clamps to [0,1], scales by 255 and truncates.
func (c RGB) Bytes() (r, g, b uint8) {
	c = c.clamp01()
	return uint8(255 * c.R), uint8(255 * c.G), uint8(255 * c.B)
}
