// Package iconfetcher downloads a Material icon archive, unpacks it, and
// places the Android density and iOS scale variants into a mobile project's
// resource directories under their canonical names.
//
// The CLI lives in cmd/icon-fetcher; this root package exposes the same
// pipeline as a Go API.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named iconfetcher:
//
//	import "github.com/kataras/icon-fetcher" // package iconfetcher
//
// # Quick start
//
//	result, err := iconfetcher.Run(ctx, iconfetcher.Options{
//	    Name:       "directions car",
//	    Color:      "white",
//	    Size:       36,
//	    ProjectDir: "/path/to/solution",
//	})
//	if err != nil {
//	    os.Exit(iconfetcher.ExitCode(err))
//	}
//	fmt.Print(result.Markdown)
//
// # Naming
//
// The archive ic_directions_car_white_36dp.zip contains
// android/drawable-<density>/ic_directions_car_white_36dp.png and
// ios/ic_directions_car_white_36pt.imageset/ic_directions_car_white_36pt[_2x|_3x].png.
// They are copied to <android dir>/drawable-<density>/ic_directions_car.png and
// <ios dir>/ic_directions_car[@2x|@3x].png: color and size never appear in
// the project file names.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Errors
//
// Run returns a [*UsageError] before any I/O for invalid input, and a
// [*DownloadError], [*ExtractionError] or [*CopyError] when a stage fails.
// Failing to remove temporary files is reported in [Result.Warnings] only.
package iconfetcher
