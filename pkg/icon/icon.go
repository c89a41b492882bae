package icon

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyName is returned when the icon name is empty after trimming.
	ErrEmptyName = errors.New("icon name is required")
	// ErrInvalidColor is returned for colors other than black and white.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidSize is returned for sizes outside of the published set.
	ErrInvalidSize = errors.New("invalid size")
)

// Color is the foreground color of a Material icon.
type Color string

// Published icon colors.
const (
	Black Color = "black"
	White Color = "white"
)

// DefaultColor is used when no color is requested.
const DefaultColor = Black

// ParseColor validates a color name, case-insensitively.
// An empty string yields DefaultColor.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch Color(s) {
	case "":
		return DefaultColor, nil
	case Black, White:
		return Color(s), nil
	default:
		return "", fmt.Errorf("%w %q (must be black or white)", ErrInvalidColor, s)
	}
}

// IsDefault reports whether c is the archive's default color.
func (c Color) IsDefault() bool {
	return c == DefaultColor
}

// Size is the icon size in dp (Android) or pt (iOS).
type Size int

// DefaultSize is used when no size is requested.
const DefaultSize Size = 24

// Sizes lists every size published upstream.
var Sizes = []Size{18, 24, 36, 48}

// ParseSize validates a size given as text.
func ParseSize(s string) (Size, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultSize, nil
	}

	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSuffix(s, "dp"), "pt"))
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidSize, s, err)
	}

	return ValidateSize(Size(n))
}

// ValidateSize returns size if it is one of Sizes.
func ValidateSize(size Size) (Size, error) {
	for _, s := range Sizes {
		if s == size {
			return size, nil
		}
	}
	return 0, fmt.Errorf("%w %d (must be one of 18, 24, 36, 48)", ErrInvalidSize, size)
}

// IsDefault reports whether s is the archive's default size.
func (s Size) IsDefault() bool {
	return s == DefaultSize
}

// Request identifies one icon download. It is built once and never mutated.
type Request struct {
	Name  string // normalized, e.g. "directions_car"
	Color Color
	Size  Size
}

// NewRequest validates and normalizes the raw user input.
func NewRequest(rawName string, color Color, size Size) (Request, error) {
	name := NormalizeName(rawName)
	if name == "" {
		return Request{}, ErrEmptyName
	}

	if color == "" {
		color = DefaultColor
	}
	if color != Black && color != White {
		return Request{}, fmt.Errorf("%w %q (must be black or white)", ErrInvalidColor, color)
	}

	if size == 0 {
		size = DefaultSize
	}
	if _, err := ValidateSize(size); err != nil {
		return Request{}, err
	}

	return Request{Name: name, Color: color, Size: size}, nil
}

// NormalizeName trims the raw icon name and joins its words with a single underscore.
func NormalizeName(raw string) string {
	return strings.Join(strings.Fields(raw), "_")
}

// ArchiveName returns the remote archive base name, e.g. "ic_home_black_24dp".
func (r Request) ArchiveName() string {
	return FileName(r.Name, r.Color, r.Size, NameOptions{WithColor: true, WithSize: true, Unit: UnitDP})
}

// String implements fmt.Stringer.
func (r Request) String() string {
	return fmt.Sprintf("%s (%s, %d)", r.Name, r.Color, r.Size)
}
