package fit

import (
	"strings"
	"sync"
	"unicode/utf8"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// FontStyle identifies a font face for measurement: the family name from
// the source hint plus bold/italic flags.
type FontStyle struct {
	Family string
	Bold   bool
	Italic bool
}

// TextMeasurer computes the rendered bounding box of a single line of text
// under a given style and size.
//
// Implementations must be monotonic in size for fixed text (a larger size
// never yields a smaller width) and safe for concurrent use. Monotonicity
// is what makes the downward font-size search valid.
type TextMeasurer interface {
	Measure(text string, style FontStyle, size float64) (width, height float64)
}

// CharMetrics is a deterministic measurement model based on per-family
// average glyph widths. Width scales linearly with size and rune count, so
// monotonicity holds trivially. It needs no font data, which makes it the
// model of choice for tests and for environments without core font metrics.
type CharMetrics struct {
	// Factor is the glyph width as a fraction of the font size. When zero,
	// a per-family default is used.
	Factor float64
}

// Measure returns the estimated width and height of a single line.
func (m CharMetrics) Measure(text string, style FontStyle, size float64) (width, height float64) {
	factor := m.Factor
	if factor <= 0 {
		factor = widthFactor(style.Family)
	}
	width = float64(utf8.RuneCountInString(text)) * size * factor
	if style.Bold {
		width *= 1.05
	}
	return width, size
}

// widthFactor returns the average glyph width fraction for a font family.
func widthFactor(family string) float64 {
	f := strings.ToLower(family)
	switch {
	case strings.Contains(f, "courier"), strings.Contains(f, "mono"):
		return 0.60
	case strings.Contains(f, "times"), strings.Contains(f, "serif"), strings.Contains(f, "roman"):
		return 0.48
	default:
		return 0.52
	}
}

// PDFMetrics measures text with the PDF core font metrics (Helvetica,
// Times, Courier). Arbitrary families are mapped onto the nearest core
// font, mirroring how the reconstruction writer substitutes fonts, so
// measured widths match what is eventually drawn.
//
// The underlying fpdf document is stateful; a mutex keeps Measure safe for
// concurrent use. Results depend only on the inputs, so determinism is
// preserved.
type PDFMetrics struct {
	mu  sync.Mutex
	pdf *fpdf.Fpdf
}

// NewPDFMetrics creates a core-font measurement backend.
func NewPDFMetrics() *PDFMetrics {
	return &PDFMetrics{
		pdf: fpdf.New("P", "pt", "A4", ""),
	}
}

// Measure returns the core-font string width at the given size. Text is
// converted to ISO-8859-1 first, matching the encoding used when drawing;
// characters outside Latin-1 fall back to the raw string.
func (m *PDFMetrics) Measure(text string, style FontStyle, size float64) (width, height float64) {
	name, styleStr := CoreFont(style)

	latin1, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		latin1 = text
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pdf.SetFont(name, styleStr, size)
	return m.pdf.GetStringWidth(latin1), size
}

// CoreFont maps a font style onto one of the PDF core fonts and the fpdf
// style string ("", "B", "I" or "BI"). Serif families map to Times,
// fixed-width families to Courier, everything else to Helvetica.
func CoreFont(style FontStyle) (name, styleStr string) {
	f := strings.ToLower(style.Family)
	switch {
	case strings.Contains(f, "courier"), strings.Contains(f, "mono"):
		name = "Courier"
	case strings.Contains(f, "times"), strings.Contains(f, "serif"), strings.Contains(f, "roman"), strings.Contains(f, "georgia"), strings.Contains(f, "garamond"):
		name = "Times"
	default:
		name = "Helvetica"
	}
	if style.Bold {
		styleStr += "B"
	}
	if style.Italic {
		styleStr += "I"
	}
	return name, styleStr
}
