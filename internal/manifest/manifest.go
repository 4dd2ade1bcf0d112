// Package manifest declares the full destination catalog for a pipeline run
// and executes it. Every artifact the tool can produce appears here as data:
// which source variant it starts from, which transform shapes it, which
// encoding serializes it, and where the bytes land. Entries are independent,
// so each one doubles as a test case.
package manifest

// Variant selects the run-scoped source image an entry starts from.
type Variant int

const (
	Master  Variant = iota // unmodified source
	Rounded                // corner-rounded once per run, then shared
)

// Encodings. The value doubles as the progress-line prefix.
const (
	EncPNG = "png"
	EncICO = "ico"
	EncSVG = "svg"
)

// PadSpec centers the source, scaled to floor(Canvas*Scale) pixels, on a
// transparent Canvas×Canvas square. The zero value means no padding.
type PadSpec struct {
	Canvas int
	Scale  float64
}

// Entry is one row of the catalog. At most one of Resize/Pad is set; both
// zero means the variant is encoded at its native size. The same encoded
// bytes go to every destination.
type Entry struct {
	Name         string
	Variant      Variant
	Resize       int // pre-encode square resize, 0 = keep dimensions
	Pad          PadSpec
	Encoding     string
	Destinations []string
}

// Android launcher density buckets. Classic mipmaps get both the standard
// and the "round" file name with identical content; the platform applies its
// own mask to the round one.
var launcherDensities = []struct {
	Dir        string
	Classic    int
	Foreground int
}{
	{"mipmap-mdpi", 48, 108},
	{"mipmap-hdpi", 72, 162},
	{"mipmap-xhdpi", 96, 216},
	{"mipmap-xxhdpi", 144, 324},
	{"mipmap-xxxhdpi", 192, 432},
}

const androidRes = "apps/mobile.pro/android/app/src/main/res"

// SafeZoneScale keeps launcher glyphs inside the adaptive-icon safe zone.
const SafeZoneScale = 2.0 / 3.0

// Entries returns the full static catalog. The table is fixed at build time;
// only the rounded variant's radius varies per run, and that lives in the
// Runner, not here.
func Entries() []Entry {
	entries := []Entry{
		{
			Name:         "branding-png",
			Variant:      Master,
			Encoding:     EncPNG,
			Destinations: []string{"packages/branding/icons/tasktrove-icon.png"},
		},
		{
			Name:         "branding-svg",
			Variant:      Master,
			Encoding:     EncSVG,
			Destinations: []string{"packages/branding/icons/tasktrove-icon.svg"},
		},
		{
			Name:     "public-svg",
			Variant:  Master,
			Encoding: EncSVG,
			Destinations: []string{
				"apps/import.pro/public/tasktrove-icon.svg",
				"apps/docs.pro/docs/public/tasktrove-icon.svg",
			},
		},
		{
			Name:     "app-icon-square",
			Variant:  Master,
			Encoding: EncSVG,
			Destinations: []string{
				"apps/web/app/icon0.svg",
				"apps/web.pro/app/icon0.svg",
				"apps/mobile.pro/app/icon0.svg",
			},
		},
		{
			Name:     "app-icon-rounded",
			Variant:  Rounded,
			Encoding: EncSVG,
			Destinations: []string{
				"apps/web/app/icon-rounded.svg",
				"apps/web.pro/app/icon-rounded.svg",
				"apps/mobile.pro/app/icon-rounded.svg",
				"apps/web/public/icon-rounded.svg",
				"apps/web.pro/public/icon-rounded.svg",
				"apps/mobile.pro/public/icon-rounded.svg",
			},
		},
		{
			Name:     "app-icon-96",
			Variant:  Master,
			Resize:   96,
			Encoding: EncPNG,
			Destinations: []string{
				"apps/web/app/icon1.png",
				"apps/mobile.pro/app/icon1.png",
				"apps/mobile.pro/app/icon.png",
			},
		},
		{
			Name:     "apple-touch-180",
			Variant:  Master,
			Resize:   180,
			Encoding: EncPNG,
			Destinations: []string{
				"apps/web/app/apple-icon.png",
				"apps/mobile.pro/app/apple-icon.png",
			},
		},
		{
			Name:     "favicon",
			Variant:  Master,
			Encoding: EncICO,
			Destinations: []string{
				"apps/web/app/favicon.ico",
				"apps/import.pro/app/favicon.ico",
				"apps/mobile.pro/app/favicon.ico",
			},
		},
	}

	for _, d := range launcherDensities {
		entries = append(entries, Entry{
			Name:     "launcher-" + d.Dir,
			Variant:  Master,
			Pad:      PadSpec{Canvas: d.Classic, Scale: SafeZoneScale},
			Encoding: EncPNG,
			Destinations: []string{
				androidRes + "/" + d.Dir + "/ic_launcher.png",
				androidRes + "/" + d.Dir + "/ic_launcher_round.png",
			},
		})
	}
	for _, d := range launcherDensities {
		entries = append(entries, Entry{
			Name:     "launcher-foreground-" + d.Dir,
			Variant:  Master,
			Pad:      PadSpec{Canvas: d.Foreground, Scale: SafeZoneScale},
			Encoding: EncPNG,
			Destinations: []string{
				androidRes + "/" + d.Dir + "/ic_launcher_foreground.png",
			},
		})
	}

	// Notification small icon: full-size glyph centered on a transparent
	// 96px canvas, so padding degenerates to a straight resize.
	entries = append(entries, Entry{
		Name:         "notification",
		Variant:      Master,
		Pad:          PadSpec{Canvas: 96, Scale: 1.0},
		Encoding:     EncPNG,
		Destinations: []string{androidRes + "/drawable/ic_stat_tasktrove.png"},
	})

	return entries
}
