package phong3d

import (
	"bufio"
	"fmt"
	"io"
)

// WritePPM writes a binary P6 image: "P6\n{w} {h}\n255\n" followed by the RGB bytes.
func WritePPM(out io.Writer, buf []byte, w, h int) error {
	if err := checkRaster(buf, w, h); err != nil {
		return err
	}
	bw := bufio.NewWriter(out)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", w, h); err != nil {
		return err
	}
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	return bw.Flush()
}

func checkRaster(buf []byte, w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("bad raster size %dx%d", w, h)
	}
	if exp := 3 * w * h; len(buf) != exp {
		return fmt.Errorf("raster length mismatch: got %d, expected %d (3*w*h)", len(buf), exp)
	}
	return nil
}
