package phong3d

import "math"

// sample is a pixel-space offset from the pixel centre with its weight.
type sample struct {
	dx, dy Real
	w      Real
}

// samplePattern returns the centre sample followed by extra samples on a
// circle of radius SampleRadius at angles pi/4 + 2*pi*k/extra.
// The pattern is identical for every pixel.
func samplePattern(extra int) []sample {
	if extra < 0 {
		extra = 0
	}
	out := make([]sample, 0, extra+1)
	out = append(out, sample{w: CenterWeight})
	for k := 0; k < extra; k++ {
		a := math.Pi/4 + 2*math.Pi*Real(k)/Real(extra)
		out = append(out, sample{
			dx: SampleRadius * math.Cos(a),
			dy: SampleRadius * math.Sin(a),
			w:  ExtraWeight,
		})
	}
	return out
}

// primaryRay maps the pixel-space point (sx, sy) onto the near-plane window.
func (c Camera) primaryRay(sx, sy Real, w, h int) Vector4 {
	return Vec(
		c.Left+(c.Right-c.Left)*sx/Real(w),
		c.Top-(c.Top-c.Bottom)*sy/Real(h),
		-c.Near,
	)
}

// shadePixel averages the weighted samples of pixel (px, py).
func shadePixel(scene *Scene, px, py int, pattern []sample) RGB {
	origin := Point(0, 0, 0)
	var acc RGB
	var wsum Real
	for _, s := range pattern {
		D := scene.Camera.primaryRay(Real(px)+0.5+s.dx, Real(py)+0.5+s.dy, scene.Width, scene.Height)
		c := traceRay(scene, origin, D, PrimaryTMin, scene.MaxBounces)
		if !c.finite() {
			c = Black
		}
		acc = acc.Add(c.Mul(s.w))
		wsum += s.w
	}
	return acc.Mul(1 / wsum)
}
