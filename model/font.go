package model

// RGB represents an RGB color.
type RGB struct {
	R, G, B uint8
}

// Black is the default text color when the source region carries none.
var Black = RGB{0, 0, 0}

// FontHint captures the font characteristics of a source text region.
// It is immutable once captured: fitting uses it as a starting size and a
// style preference, never as a hard constraint.
type FontHint struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
	Color  RGB
}

// DefaultFontHint returns the hint used when the extraction stage could not
// determine font information for a region.
func DefaultFontHint() FontHint {
	return FontHint{
		Family: "Helvetica",
		Size:   12,
		Color:  Black,
	}
}
