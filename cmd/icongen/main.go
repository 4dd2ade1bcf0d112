// icongen regenerates every TaskTrove icon asset from one square master
// image: branding copies, web-app icons, favicons, Android launcher bitmaps
// and the adaptive-icon XML helpers.
//
// Usage: icongen [-radius 0.2] [-root DIR] source.png
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dohsimpson/TaskTrove/internal/config"
	"github.com/dohsimpson/TaskTrove/internal/imaging"
	"github.com/dohsimpson/TaskTrove/internal/manifest"
	"github.com/dohsimpson/TaskTrove/internal/ui"
)

func main() {
	radius := flag.Float64("radius", 0.2, "rounded corner radius fraction")
	root := flag.String("root", "", "repository root (default: current directory)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-radius FRAC] [-root DIR] SOURCE\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "SOURCE is a square RGBA image (PNG, or SVG rasterized at intrinsic size)")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	source := flag.Arg(0)

	ui.Header("Generating Icons")

	master, err := imaging.Load(source)
	if err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
	ui.Info(fmt.Sprintf("source: %s (%dpx, radius %.2f)", source, master.Bounds().Dx(), *radius))

	layout, err := config.NewLayout(*root)
	if err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}

	run := manifest.Runner{Layout: layout, RadiusFrac: *radius}
	if err := run.Run(master); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}

	ui.Success("done")
}
