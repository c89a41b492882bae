package icon

import (
	"strconv"
	"strings"
)

// Unit is the size unit appended to a size suffix.
type Unit string

// Size units used by the two platform trees of the archive.
const (
	UnitDP Unit = "dp" // Android
	UnitPT Unit = "pt" // iOS
)

// NameOptions controls which suffixes FileName appends.
type NameOptions struct {
	WithColor bool
	WithSize  bool
	Unit      Unit   // defaults to UnitDP
	Suffix    string // appended last, before the extension (e.g. "_2x", "@2x")
	Ext       string // without the dot; empty means no extension
}

// FileName derives a canonical icon file name:
//
//	ic_<name>[_<color>][_<size><unit>][<suffix>][.<ext>]
//
// name is normalized first, so callers may pass raw user input.
func FileName(name string, color Color, size Size, opts NameOptions) string {
	var b strings.Builder
	b.WriteString("ic_")
	b.WriteString(NormalizeName(name))

	if opts.WithColor {
		b.WriteByte('_')
		b.WriteString(string(color))
	}

	if opts.WithSize {
		unit := opts.Unit
		if unit == "" {
			unit = UnitDP
		}
		b.WriteByte('_')
		b.WriteString(strconv.Itoa(int(size)))
		b.WriteString(string(unit))
	}

	b.WriteString(opts.Suffix)

	if opts.Ext != "" {
		b.WriteByte('.')
		b.WriteString(strings.TrimPrefix(opts.Ext, "."))
	}

	return b.String()
}

// BaseName is the destination form "ic_<name>[.<ext>]": color and size never leak into it.
func (r Request) BaseName(suffix, ext string) string {
	return FileName(r.Name, r.Color, r.Size, NameOptions{Suffix: suffix, Ext: ext})
}
