package phong3d

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func WriteBMP(out io.Writer, buf []byte, w, h int) error {
	if err := checkRaster(buf, w, h); err != nil {
		return err
	}
	return bmp.Encode(out, toNRGBA(buf, w, h))
}

func WriteTIFF(out io.Writer, buf []byte, w, h int) error {
	if err := checkRaster(buf, w, h); err != nil {
		return err
	}
	return tiff.Encode(out, toNRGBA(buf, w, h), &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

type encoder func(io.Writer, []byte, int, int) error

// encoderFor picks the image writer from the file extension.
func encoderFor(path string) (encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return WritePPM, nil
	case ".png":
		return WritePNG, nil
	case ".gif":
		return WriteGIF, nil
	case ".bmp":
		return WriteBMP, nil
	case ".tif", ".tiff":
		return WriteTIFF, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q for %s", ext, path)
	}
}

// SaveImage encodes the raster into path, creating parent directories.
func SaveImage(path string, buf []byte, w, h int) error {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := enc(f, buf, w, h); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	DebugLog("Saved %dx%d image: %s", w, h, path)
	return nil
}
