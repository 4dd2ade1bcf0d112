package manifest

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dohsimpson/TaskTrove/internal/config"
)

var red = color.NRGBA{R: 255, A: 255}

func solidSquare(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func runInto(t *testing.T, root string, master *image.NRGBA) {
	t.Helper()
	run := Runner{Layout: config.Layout{Root: root}, RadiusFrac: 0.2, Quiet: true}
	if err := run.Run(master); err != nil {
		t.Fatal(err)
	}
}

// decodeSVGPayload extracts and decodes the PNG embedded in a generated SVG.
func decodeSVGPayload(t *testing.T, path string) image.Image {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	doc := string(data)
	start := strings.Index(doc, "base64,")
	if start < 0 {
		t.Fatalf("%s has no embedded payload", path)
	}
	start += len("base64,")
	end := strings.Index(doc[start:], "'") + start
	payload, err := base64.StdEncoding.DecodeString(doc[start:end])
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestRunWritesEveryDestination(t *testing.T) {
	root := t.TempDir()
	runInto(t, root, solidSquare(64, red))

	for _, e := range Entries() {
		for _, rel := range e.Destinations {
			if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
				t.Errorf("%s: missing destination %s", e.Name, rel)
			}
		}
	}
	for _, d := range Descriptors() {
		got, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(d.Destination)))
		if err != nil {
			t.Errorf("missing descriptor %s", d.Destination)
			continue
		}
		if !bytes.Equal(got, d.Content) {
			t.Errorf("descriptor %s not written verbatim", d.Name)
		}
	}
}

func TestRunOverwritesStaleArtifacts(t *testing.T) {
	root := t.TempDir()
	stale := filepath.Join(root, "packages", "branding", "icons", "tasktrove-icon.png")
	if err := os.MkdirAll(filepath.Dir(stale), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	runInto(t, root, solidSquare(64, red))

	data, err := os.ReadFile(stale)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(data, []byte("stale")) {
		t.Error("existing artifact was not overwritten")
	}
}

func TestRunDeterministic(t *testing.T) {
	rootA, rootB := t.TempDir(), t.TempDir()
	runInto(t, rootA, solidSquare(64, red))
	runInto(t, rootB, solidSquare(64, red))

	for _, e := range Entries() {
		for _, rel := range e.Destinations {
			rel := filepath.FromSlash(rel)
			a, err := os.ReadFile(filepath.Join(rootA, rel))
			if err != nil {
				t.Fatal(err)
			}
			b, err := os.ReadFile(filepath.Join(rootB, rel))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(a, b) {
				t.Errorf("%s: runs produced different bytes for %s", e.Name, rel)
			}
		}
	}
}

func TestRunFailsOnUnwritableDestination(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("directory permissions do not bind for root")
	}
	root := t.TempDir()
	blocked := filepath.Join(root, "packages")
	if err := os.MkdirAll(blocked, 0555); err != nil {
		t.Fatal(err)
	}

	run := Runner{Layout: config.Layout{Root: root}, RadiusFrac: 0.2, Quiet: true}
	if err := run.Run(solidSquare(16, red)); err == nil {
		t.Fatal("expected run to abort on first write failure")
	}
}

// Full scenario: 512px opaque red master, default radius.
func TestRunRedSquareScenario(t *testing.T) {
	root := t.TempDir()
	runInto(t, root, solidSquare(512, red))

	// Branding raster: unmodified 512px all-red-opaque copy.
	f, err := os.Open(filepath.Join(root, "packages", "branding", "icons", "tasktrove-icon.png"))
	if err != nil {
		t.Fatal(err)
	}
	branding, err := png.Decode(f)
	f.Close()
	if err != nil {
		t.Fatal(err)
	}
	if b := branding.Bounds(); b.Dx() != 512 || b.Dy() != 512 {
		t.Fatalf("branding icon is %v, want 512x512", b)
	}
	for _, p := range []image.Point{{0, 0}, {256, 256}, {511, 511}} {
		r, _, _, a := branding.At(p.X, p.Y).RGBA()
		if r != 0xffff || a != 0xffff {
			t.Errorf("branding pixel %v not opaque red: r=%#x a=%#x", p, r, a)
		}
	}

	// Rounded vector: corners clipped at radius 0.2*512 = 102.
	roundedPath := filepath.Join(root, "apps", "web", "app", "icon-rounded.svg")
	rounded := decodeSVGPayload(t, roundedPath)
	if b := rounded.Bounds(); b.Dx() != 512 || b.Dy() != 512 {
		t.Fatalf("rounded payload is %v, want 512x512", b)
	}
	if _, _, _, a := rounded.At(5, 5).RGBA(); a != 0 {
		t.Error("rounded corner region is not transparent")
	}
	if r, _, _, a := rounded.At(102, 102).RGBA(); r != 0xffff || a != 0xffff {
		t.Error("rounded arc-center pixel lost the source color")
	}

	// xhdpi launcher: 96px canvas, glyph in the centered floor(96*2/3)=64px.
	f, err = os.Open(filepath.Join(root, "apps", "mobile.pro", "android", "app",
		"src", "main", "res", "mipmap-xhdpi", "ic_launcher.png"))
	if err != nil {
		t.Fatal(err)
	}
	launcher, err := png.Decode(f)
	f.Close()
	if err != nil {
		t.Fatal(err)
	}
	if b := launcher.Bounds(); b.Dx() != 96 || b.Dy() != 96 {
		t.Fatalf("launcher is %v, want 96x96", b)
	}
	for _, p := range []image.Point{{0, 0}, {95, 0}, {0, 95}, {95, 95}} {
		if _, _, _, a := launcher.At(p.X, p.Y).RGBA(); a != 0 {
			t.Errorf("launcher corner %v not transparent", p)
		}
	}
	for _, p := range []image.Point{{16, 16}, {48, 48}, {79, 79}} {
		r, _, _, a := launcher.At(p.X, p.Y).RGBA()
		if r != 0xffff || a != 0xffff {
			t.Errorf("launcher glyph pixel %v not opaque red: r=%#x a=%#x", p, r, a)
		}
	}
}
