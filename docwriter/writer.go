// Package docwriter renders page plans into a PDF document. It is the
// document-writing collaborator the planner hands its output to: it draws
// fitted text lines at their computed positions, copies preserved raster
// elements back at their original coordinates, and strokes table-cell
// borders. The fitting and planning packages never import it.
package docwriter

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"codeberg.org/go-pdf/fpdf"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	"golang.org/x/text/encoding/charmap"

	"github.com/dwhalen/refit/fit"
	"github.com/dwhalen/refit/model"
	"github.com/dwhalen/refit/plan"
)

// Config holds rendering settings.
type Config struct {
	// LineHeightFactor must match the factor the fitter used, or stacked
	// lines will not land where the fit calculation placed them.
	LineHeightFactor float64

	// AscentRatio positions the text baseline within the first line's box.
	AscentRatio float64

	// Cover paints an opaque rectangle over each text region before drawing,
	// hiding whatever the preserved background shows there.
	Cover      bool
	CoverColor model.RGB
}

// DefaultConfig returns the standard rendering settings.
func DefaultConfig() Config {
	return Config{
		LineHeightFactor: 1.2,
		AscentRatio:      0.718,
		Cover:            true,
		CoverColor:       model.RGB{R: 255, G: 255, B: 255},
	}
}

// Writer renders page plans to PDF bytes.
type Writer struct {
	config Config
	logger *slog.Logger
}

// NewWriter creates a writer with default configuration. A nil logger falls
// back to slog.Default().
func NewWriter(logger *slog.Logger) *Writer {
	return NewWriterWithConfig(DefaultConfig(), logger)
}

// NewWriterWithConfig creates a writer with custom configuration.
func NewWriterWithConfig(config Config, logger *slog.Logger) *Writer {
	if config.LineHeightFactor < 1.0 {
		config.LineHeightFactor = DefaultConfig().LineHeightFactor
	}
	if config.AscentRatio <= 0 {
		config.AscentRatio = DefaultConfig().AscentRatio
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{config: config, logger: logger}
}

// Write emits one PDF page per plan, each at the plan's preserved
// dimensions, and streams the document to out.
func (w *Writer) Write(plans []plan.PagePlan, out io.Writer) error {
	pdf := fpdf.New("P", "pt", "A4", "")

	for _, p := range plans {
		if p.PageWidth <= 0 || p.PageHeight <= 0 {
			return fmt.Errorf("page %d: invalid dimensions %.1fx%.1f", p.PageNumber, p.PageWidth, p.PageHeight)
		}
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: p.PageWidth, Ht: p.PageHeight})

		// Preserved elements first, in original order, so text draws on top.
		for _, el := range p.Preserved {
			w.drawPreserved(pdf, p.PageNumber, el)
		}

		for _, unit := range p.Placements {
			w.drawUnit(pdf, unit)
		}

		if err := pdf.Error(); err != nil {
			return fmt.Errorf("page %d: %w", p.PageNumber, err)
		}
	}

	if err := pdf.Output(out); err != nil {
		return fmt.Errorf("failed to generate PDF: %w", err)
	}
	return nil
}

// drawPreserved copies a preserved element back onto the page. Only raster
// images can be re-emitted through fpdf; vector and font payloads are
// format-opaque here and are skipped with a log line.
func (w *Writer) drawPreserved(pdf *fpdf.Fpdf, pageNum int, el model.PreservedElement) {
	if el.Kind != model.PreservedImage || len(el.Payload) == 0 {
		if el.Kind != model.PreservedImage {
			w.logger.Debug("docwriter.preserved.skipped",
				"page", pageNum, "id", el.ID, "kind", el.Kind.String())
		}
		return
	}

	imageType, payload, err := normalizeImage(el.Payload)
	if err != nil {
		w.logger.Warn("docwriter.preserved.unsupported",
			"page", pageNum, "id", el.ID, "err", err)
		return
	}

	name := fmt.Sprintf("preserved-%d-%s", pageNum, el.ID)
	opts := fpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(payload))
	pdf.ImageOptions(name, el.BBox.X0, el.BBox.Y0, el.BBox.Width(), el.BBox.Height(), false, opts, 0, "")
}

// drawUnit covers the unit's region, strokes cell borders when present, and
// draws the fitted lines at their baselines.
func (w *Writer) drawUnit(pdf *fpdf.Fpdf, unit plan.PlacementUnit) {
	region := unit.Region

	if w.config.Cover {
		pdf.SetFillColor(int(w.config.CoverColor.R), int(w.config.CoverColor.G), int(w.config.CoverColor.B))
		pdf.Rect(region.X0, region.Y0, region.Width(), region.Height(), "F")
	}

	if unit.Kind == model.UnitTableCell {
		w.drawCellBorder(pdf, unit)
	}

	if len(unit.Fit.Lines) == 0 {
		return
	}

	name, style := fit.CoreFont(fit.FontStyle{
		Family: unit.Hint.Family,
		Bold:   unit.Hint.Bold,
		Italic: unit.Hint.Italic,
	})
	pdf.SetFont(name, style, unit.Fit.FontSize)
	pdf.SetTextColor(int(unit.Hint.Color.R), int(unit.Hint.Color.G), int(unit.Hint.Color.B))

	lineHeight := unit.Fit.FontSize * w.config.LineHeightFactor
	y := region.Y0 + unit.Fit.FontSize*w.config.AscentRatio
	for _, line := range unit.Fit.Lines {
		if y > region.Y1 {
			break
		}
		pdf.Text(region.X0, y, latin1(line))
		y += lineHeight
	}
}

// drawCellBorder strokes the sides the border metadata marks as present.
func (w *Writer) drawCellBorder(pdf *fpdf.Fpdf, unit plan.PlacementUnit) {
	border := unit.Border
	if !border.Top && !border.Bottom && !border.Left && !border.Right {
		return
	}

	width := border.Width
	if width <= 0 {
		width = 0.5
	}
	pdf.SetDrawColor(int(border.Color.R), int(border.Color.G), int(border.Color.B))
	pdf.SetLineWidth(width)

	r := unit.Region
	if border.Top {
		pdf.Line(r.X0, r.Y0, r.X1, r.Y0)
	}
	if border.Bottom {
		pdf.Line(r.X0, r.Y1, r.X1, r.Y1)
	}
	if border.Left {
		pdf.Line(r.X0, r.Y0, r.X0, r.Y1)
	}
	if border.Right {
		pdf.Line(r.X1, r.Y0, r.X1, r.Y1)
	}
}

// normalizeImage detects the payload format and converts formats fpdf
// cannot embed directly (TIFF, BMP) to PNG.
func normalizeImage(data []byte) (imageType string, payload []byte, err error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode image config: %w", err)
	}

	switch format {
	case "png", "jpeg", "gif":
		return strings.ToUpper(format), data, nil
	case "tiff", "bmp":
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return "", nil, fmt.Errorf("failed to decode %s image: %w", format, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return "", nil, fmt.Errorf("failed to re-encode %s image: %w", format, err)
		}
		return "PNG", buf.Bytes(), nil
	default:
		return "", nil, fmt.Errorf("unsupported image format %q", format)
	}
}

// latin1 converts text to ISO-8859-1 to avoid PDF encoding issues with the
// core fonts, falling back to the raw string for unmappable characters.
func latin1(s string) string {
	converted, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return s
	}
	return converted
}
