package imaging

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// Round clips src to a rounded rectangle and returns the result on a fresh
// transparent canvas of the same size. radiusFrac is relative to the shorter
// dimension and must be in (0, 0.5]; values outside that range are a caller
// bug. src is not modified.
func Round(src *image.NRGBA, radiusFrac float64) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	radius := float64(min(w, h)) * radiusFrac

	dc := gg.NewContext(w, h)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), radius)
	dc.SetRGB(1, 1, 1)
	dc.Fill()

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.DrawMask(out, out.Rect, src, b.Min, dc.AsMask(), image.Point{}, draw.Over)
	return out
}

// Pad places src, scaled to floor(canvas*scale) pixels square, at the center
// of a transparent canvas×canvas image. scale=2/3 keeps the glyph inside the
// adaptive-icon safe zone; scale=1 degenerates to a plain resize. Truncation
// can leave the content one pixel off-center, which is fine for launchers.
func Pad(src *image.NRGBA, canvas int, scale float64) *image.NRGBA {
	inner := int(float64(canvas) * scale)
	offset := (canvas - inner) / 2

	out := image.NewNRGBA(image.Rect(0, 0, canvas, canvas))
	target := image.Rect(offset, offset, offset+inner, offset+inner)
	draw.CatmullRom.Scale(out, target, src, src.Bounds(), draw.Over, nil)
	return out
}

// Resize scales src to a size×size square using Catmull-Rom resampling.
func Resize(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Over, nil)
	return dst
}
