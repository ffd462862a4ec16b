package phong3d

import (
	"image"
	"image/png"
	"io"
)

// toNRGBA wraps the RGB raster as an opaque 8-bit image.
func toNRGBA(buf []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := buf[y*3*w : (y+1)*3*w]
		dst := img.Pix[y*img.Stride : y*img.Stride+4*w]
		for x := 0; x < w; x++ {
			dst[4*x+0] = src[3*x+0]
			dst[4*x+1] = src[3*x+1]
			dst[4*x+2] = src[3*x+2]
			dst[4*x+3] = 255
		}
	}
	return img
}

func WritePNG(out io.Writer, buf []byte, w, h int) error {
	if err := checkRaster(buf, w, h); err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(out, toNRGBA(buf, w, h))
}
