package manifest

import (
	"fmt"
	"image"
	"os"

	"github.com/dohsimpson/TaskTrove/internal/config"
	"github.com/dohsimpson/TaskTrove/internal/encode"
	"github.com/dohsimpson/TaskTrove/internal/imaging"
	"github.com/dohsimpson/TaskTrove/internal/ui"
)

// Runner executes the catalog against one master image. Entries run
// sequentially; the first failed encode or write aborts the run. Re-running
// against the same master reproduces every artifact byte for byte.
type Runner struct {
	Layout     config.Layout
	RadiusFrac float64 // rounded-variant corner radius fraction
	IconSizes  []int   // ICO bundle sizes, nil = encode.FaviconSizes
	Quiet      bool    // suppress per-artifact progress lines
}

// Run derives the rounded variant once, then processes every entry and the
// platform descriptors.
func (r Runner) Run(master *image.NRGBA) error {
	rounded := imaging.Round(master, r.RadiusFrac)

	for _, e := range Entries() {
		src := master
		if e.Variant == Rounded {
			src = rounded
		}
		data, err := r.produce(e, src)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}
		for _, rel := range e.Destinations {
			if err := r.write(rel, data, e.Encoding); err != nil {
				return fmt.Errorf("%s: %w", e.Name, err)
			}
		}
	}

	for _, d := range Descriptors() {
		if err := r.write(d.Destination, d.Content, "xml"); err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}
	}
	return nil
}

func (r Runner) produce(e Entry, src *image.NRGBA) ([]byte, error) {
	img := src
	switch {
	case e.Pad.Canvas > 0:
		img = imaging.Pad(src, e.Pad.Canvas, e.Pad.Scale)
	case e.Resize > 0:
		img = imaging.Resize(src, e.Resize)
	}

	switch e.Encoding {
	case EncPNG:
		return encode.PNG(img)
	case EncICO:
		sizes := r.IconSizes
		if sizes == nil {
			sizes = encode.FaviconSizes
		}
		return encode.ICO(img, sizes)
	case EncSVG:
		return encode.SVG(img)
	default:
		return nil, fmt.Errorf("unknown encoding %q", e.Encoding)
	}
}

func (r Runner) write(rel string, data []byte, kind string) error {
	dest := r.Layout.Resolve(rel)
	if err := config.EnsureParent(dest); err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return err
	}
	if !r.Quiet {
		ui.Artifact(kind, dest)
	}
	return nil
}
