package manifest

// Adaptive-icon XML helpers. These are fixed templates, not derived from
// pixel data; they complete the launcher triplet (foreground bitmap,
// background, descriptors) alongside the padded mipmaps.

// Descriptor is a static platform-markup document with a fixed destination.
type Descriptor struct {
	Name        string
	Destination string
	Content     []byte
}

const foregroundXML = `<bitmap xmlns:android="http://schemas.android.com/apk/res/android"
    android:src="@mipmap/ic_launcher_foreground"
    android:gravity="center" />`

const backgroundXML = `<?xml version="1.0" encoding="utf-8"?>
<vector xmlns:android="http://schemas.android.com/apk/res/android"
    android:width="108dp"
    android:height="108dp"
    android:viewportHeight="108"
    android:viewportWidth="108">
    <path android:fillColor="#FFFFFFFF" android:pathData="M0,0h108v108h-108z" />
</vector>`

// Descriptors returns the launcher XML documents written after the catalog:
// a center-gravity reference to the generated foreground bitmap, and a solid
// white 108dp background sized to the adaptive-icon canvas.
func Descriptors() []Descriptor {
	return []Descriptor{
		{
			Name:        "launcher-foreground-xml",
			Destination: androidRes + "/drawable-v24/ic_launcher_foreground.xml",
			Content:     []byte(foregroundXML),
		},
		{
			Name:        "launcher-background-xml",
			Destination: androidRes + "/drawable/ic_launcher_background.xml",
			Content:     []byte(backgroundXML),
		},
	}
}
