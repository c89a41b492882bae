package paths

import (
	"path/filepath"
	"strings"

	"github.com/kataras/icon-fetcher/pkg/icon"
)

// Platform names a target platform.
type Platform string

// Supported platforms.
const (
	Android Platform = "android"
	IOS     Platform = "ios"
)

// Densities are the Android density buckets, in the order they are processed.
var Densities = []string{"hdpi", "mdpi", "xhdpi", "xxhdpi", "xxxhdpi"}

// Scales are the iOS scale suffixes as they appear inside the archive.
var Scales = []string{"", "_2x", "_3x"}

// PathPair is one file to copy from the extracted archive into the project.
type PathPair struct {
	Platform    Platform
	Variant     string // density bucket or "1x", "2x", "3x"
	Source      string
	Destination string
}

// Layout holds the project-relative resource roots.
type Layout struct {
	AndroidDir string // contains drawable-<density> directories
	IOSDir     string // flat directory
}

// DefaultLayout matches a Xamarin.Forms solution with Droid and iOS heads.
var DefaultLayout = Layout{
	AndroidDir: filepath.Join("Sources", "HipMobileUI.Droid", "Resources"),
	IOSDir:     filepath.Join("Sources", "HipMobileUI.iOS", "Resources"),
}

// DrawableDir returns the Android resource directory name of a density bucket.
func DrawableDir(density string) string {
	return "drawable-" + density
}

// ForAndroid maps every density bucket of req to its source and destination.
// It performs no I/O.
func ForAndroid(req icon.Request, archiveRoot, projectRoot string, layout Layout) []PathPair {
	source := icon.FileName(req.Name, req.Color, req.Size, icon.NameOptions{
		WithColor: true,
		WithSize:  true,
		Unit:      icon.UnitDP,
		Ext:       "png",
	})
	dest := req.BaseName("", "png")

	pairs := make([]PathPair, 0, len(Densities))
	for _, density := range Densities {
		dir := DrawableDir(density)
		pairs = append(pairs, PathPair{
			Platform:    Android,
			Variant:     density,
			Source:      filepath.Join(archiveRoot, string(Android), dir, source),
			Destination: filepath.Join(projectRoot, layout.AndroidDir, dir, dest),
		})
	}

	return pairs
}

// Imageset returns the iOS imageset base name inside the archive:
// the color suffix is present only for non-default colors and the size
// suffix only for non-default sizes.
func Imageset(req icon.Request) string {
	return icon.FileName(req.Name, req.Color, req.Size, iosNameOptions(req, ""))
}

// ForIOS maps every scale bucket of req to its source and destination.
// It performs no I/O.
func ForIOS(req icon.Request, archiveRoot, projectRoot string, layout Layout) []PathPair {
	imageset := Imageset(req) + ".imageset"

	pairs := make([]PathPair, 0, len(Scales))
	for _, scale := range Scales {
		opts := iosNameOptions(req, scale)
		opts.Ext = "png"
		source := icon.FileName(req.Name, req.Color, req.Size, opts)
		dest := req.BaseName(DestinationScale(scale), "png")

		pairs = append(pairs, PathPair{
			Platform:    IOS,
			Variant:     scaleVariant(scale),
			Source:      filepath.Join(archiveRoot, string(IOS), imageset, source),
			Destination: filepath.Join(projectRoot, layout.IOSDir, dest),
		})
	}

	return pairs
}

// All returns the Android pairs followed by the iOS pairs.
func All(req icon.Request, archiveRoot, projectRoot string, layout Layout) []PathPair {
	return append(ForAndroid(req, archiveRoot, projectRoot, layout), ForIOS(req, archiveRoot, projectRoot, layout)...)
}

// DestinationScale converts an archive scale suffix ("_2x") into
// the project convention ("@2x"). The 1x suffix stays empty.
func DestinationScale(scale string) string {
	if scale == "" {
		return ""
	}
	return "@" + strings.TrimPrefix(scale, "_")
}

func iosNameOptions(req icon.Request, scale string) icon.NameOptions {
	return icon.NameOptions{
		WithColor: !req.Color.IsDefault(),
		WithSize:  !req.Size.IsDefault(),
		Unit:      icon.UnitPT,
		Suffix:    scale,
	}
}

func scaleVariant(scale string) string {
	if scale == "" {
		return "1x"
	}
	return strings.TrimPrefix(scale, "_")
}
