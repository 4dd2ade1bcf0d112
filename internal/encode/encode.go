// Package encode serializes pipeline images into the three artifact formats:
// plain PNG, multi-resolution ICO bundles, and SVG documents wrapping a PNG
// payload. All encoders are pure functions of their inputs.
package encode

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/dohsimpson/TaskTrove/internal/imaging"
)

// FaviconSizes is the size set packed into favicon.ico bundles.
var FaviconSizes = []int{16, 32, 48, 64}

// PNG losslessly serializes img at its current dimensions. Callers that need
// a different size resize first.
func PNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// ICO packs one independently resized rendition of base per requested size
// into a single bundle. The consumer picks the best match at display time.
func ICO(base image.Image, sizes []int) ([]byte, error) {
	frames := make([]image.Image, 0, len(sizes))
	for _, s := range sizes {
		frames = append(frames, imaging.Resize(base, s))
	}
	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, frames); err != nil {
		return nil, fmt.Errorf("encode ico: %w", err)
	}
	return buf.Bytes(), nil
}

// SVG wraps the PNG encoding of img in a minimal vector document whose
// intrinsic size equals the raster's pixel dimensions. This is a container,
// not a vector conversion: fidelity is bound to the embedded raster. The
// color-scheme style block applies no filter yet and exists so themed
// variants can be introduced without changing consumers.
func SVG(img image.Image) ([]byte, error) {
	payload, err := PNG(img)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		"<svg xmlns='http://www.w3.org/2000/svg' width='%d' height='%d' viewBox='0 0 %d %d'>",
		w, h, w, h)
	fmt.Fprintf(&buf,
		"<image href='data:image/png;base64,%s' width='%d' height='%d'/>",
		base64.StdEncoding.EncodeToString(payload), w, h)
	buf.WriteString("<style>@media (prefers-color-scheme: light){:root{filter:none;}}@media (prefers-color-scheme: dark){:root{filter:none;}}</style>")
	buf.WriteString("</svg>")
	return buf.Bytes(), nil
}
