package settings

import "fmt"

// FontSize selects one of the three font slots.
type FontSize int

// Font slots.
const (
	Large FontSize = iota
	Medium
	Small

	// NumFonts is the number of font slots.
	NumFonts = 3
)

//nolint:gochecknoglobals // Read-only lookup table.
var fontSizeNames = [NumFonts]string{"large", "medium", "small"}

// FontSizes lists every slot in table order.
func FontSizes() []FontSize {
	return []FontSize{Large, Medium, Small}
}

// Valid reports whether the value names a font slot.
func (f FontSize) Valid() bool {
	return f >= Large && f <= Small
}

// String returns the slot name.
func (f FontSize) String() string {
	if !f.Valid() {
		return fmt.Sprintf("font(%d)", int(f))
	}

	return fontSizeNames[f]
}

// Font describes one font slot.
type Font struct {
	// FileName is the path of the TrueType file.
	FileName string
	// Size is the point size.
	Size int
}

// Fonts is the font table indexed by FontSize.
type Fonts [NumFonts]Font

// DefaultFonts returns the built-in font table.
func DefaultFonts() Fonts {
	return Fonts{
		Large:  {FileName: "/usr/share/fonts/truetype/freefont/FreeSerifBoldItalic.ttf", Size: 240},
		Medium: {FileName: "/usr/share/fonts/truetype/freefont/FreeSerif.ttf", Size: 50},
		Small:  {FileName: "/usr/share/fonts/truetype/freefont/FreeSans.ttf", Size: 32},
	}
}

// Get returns the font of one slot.
func (f Fonts) Get(size FontSize) (Font, bool) {
	if !size.Valid() {
		return Font{}, false
	}

	return f[size], true
}
