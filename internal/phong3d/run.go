package phong3d

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

type Options struct {
	ScenePath string
	Output    string // overrides the scene's OUTPUT when set
	Threads   int
	Antialias bool // ExtraSamples extra samples per pixel
}

// LoadScene picks the loader from the file extension: .json or the token format.
func LoadScene(path string) (*Scene, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSONScene(path)
	}
	return LoadTextScene(path)
}

func Run(opts Options) error {
	if opts.Threads < 1 || opts.Threads > MaxThreads {
		return fmt.Errorf("threads must be in [1,%d], got %d", MaxThreads, opts.Threads)
	}
	scene, err := LoadScene(opts.ScenePath)
	if err != nil {
		return err
	}
	out := scene.Output
	if opts.Output != "" {
		out = opts.Output
	}
	// fail on a bad extension before spending time on the render
	if _, err := encoderFor(out); err != nil {
		return err
	}
	extra := 0
	if opts.Antialias {
		extra = ExtraSamples
	}
	if Debug {
		resetRayLog()
	}

	start := time.Now()
	buf := Render(scene, extra, opts.Threads)
	elapsed := time.Since(start)
	DebugLog("Rendered %s in %s", opts.ScenePath, elapsed)

	if Debug {
		raysStats()
	}
	if err := SaveImage(out, buf, scene.Width, scene.Height); err != nil {
		return err
	}
	fmt.Printf("Rendered %dx%d (%d samples/pixel, %d threads) in %s -> %s\n",
		scene.Width, scene.Height, extra+1, opts.Threads, elapsed.Round(time.Millisecond), out)
	return nil
}
