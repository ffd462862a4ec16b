package phong3d

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// band is a contiguous run of rows and its disjoint view of the output buffer.
type band struct {
	y0, y1 int
	buf    []byte
}

// splitBands gives every band H/n rows and the last one the remainder.
func splitBands(buf []byte, w, h, n int) []band {
	if n < 1 {
		n = 1
	}
	rows := h / n
	stride := 3 * w
	bands := make([]band, 0, n)
	for i := 0; i < n; i++ {
		y0 := i * rows
		y1 := y0 + rows
		if i == n-1 {
			y1 = h
		}
		bands = append(bands, band{y0: y0, y1: y1, buf: buf[y0*stride : y1*stride]})
	}
	return bands
}

// Render traces the scene into an RGB buffer (3 bytes per pixel, row-major,
// top row first). Rows are split into threads bands rendered concurrently;
// the result does not depend on threads.
func Render(scene *Scene, extraSamples, threads int) []byte {
	if threads < 1 {
		threads = 1
	}
	W, H := scene.Width, scene.Height
	buf := make([]byte, 3*W*H)
	pattern := samplePattern(extraSamples)

	var done int64
	step := int64(imax(H/100, 1))

	var g errgroup.Group
	for _, b := range splitBands(buf, W, H, threads) {
		if b.y0 == b.y1 {
			continue
		}
		b := b // per-iteration copy; go directive is below 1.22 loopvar semantics
		g.Go(func() error {
			for y := b.y0; y < b.y1; y++ {
				row := b.buf[(y-b.y0)*3*W : (y-b.y0+1)*3*W]
				for x := 0; x < W; x++ {
					r, gg, bb := shadePixel(scene, x, y, pattern).Bytes()
					row[3*x], row[3*x+1], row[3*x+2] = r, gg, bb
				}
				if Progress {
					if n := atomic.AddInt64(&done, 1); n%step == 0 || n == int64(H) {
						fmt.Printf("[PROGRESS] %.2f%%\n", Real(n)*100/Real(H))
					}
				}
			}
			return nil
		})
	}
	// band workers always return nil; Wait is only the join
	_ = g.Wait()
	DebugLog("Rendered %dx%d with %d bands, %d samples per pixel", W, H, threads, len(pattern))
	return buf
}
