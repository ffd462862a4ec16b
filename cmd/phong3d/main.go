package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/phong3d/internal/phong3d"
)

func main() {
	threads := flag.Int("t", 1, fmt.Sprintf("render threads, 1..%d", phong3d.MaxThreads))
	aa := flag.Bool("a", false, fmt.Sprintf("antialiasing: %d extra samples per pixel", phong3d.ExtraSamples))
	out := flag.String("o", "", "output image (.ppm, .png, .gif, .bmp, .tif); overrides the scene OUTPUT")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-t threads] [-a] [-o out] scene\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	phong3d.Debug = os.Getenv("DEBUG") != ""
	phong3d.Progress = os.Getenv("PROGRESS") != ""
	phong3d.UseCull = os.Getenv("NO_CULL") == ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts := phong3d.Options{
		ScenePath: flag.Arg(0),
		Output:    *out,
		Threads:   *threads,
		Antialias: *aa,
	}
	if err := phong3d.Run(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
