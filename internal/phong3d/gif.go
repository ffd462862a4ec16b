package phong3d

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

// WriteGIF quantizes to the Plan9 palette with Floyd-Steinberg dithering.
func WriteGIF(out io.Writer, buf []byte, w, h int) error {
	if err := checkRaster(buf, w, h); err != nil {
		return err
	}
	rgba := toNRGBA(buf, w, h)
	pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})
	return gif.Encode(out, pimg, &gif.Options{NumColors: len(palette.Plan9)})
}
