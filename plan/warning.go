package plan

import (
	"fmt"
	"strings"
)

// WarningCode classifies a recorded, non-fatal unit-level problem.
type WarningCode int

const (
	// WarnDegenerateRegion: the unit's target box had non-positive width or
	// height. The original text is preserved at the hint size instead.
	WarnDegenerateRegion WarningCode = iota

	// WarnFitInfeasible: no font size down to the minimum could contain the
	// text even after truncation. A best-effort placement is still emitted.
	WarnFitInfeasible

	// WarnCoordinateTransform: an image-local OCR box could not be mapped
	// into page space. The unit is skipped.
	WarnCoordinateTransform
)

func (c WarningCode) String() string {
	switch c {
	case WarnDegenerateRegion:
		return "degenerate-region"
	case WarnFitInfeasible:
		return "fit-infeasible"
	case WarnCoordinateTransform:
		return "coordinate-transform"
	default:
		return "unknown"
	}
}

// Warning records a non-fatal problem with one unit. Warnings are
// accumulated per page and forwarded to the processing summary; they are
// never raised as errors.
type Warning struct {
	Page    int
	Unit    int // index into the page's unit sequence
	Code    WarningCode
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("page %d unit %d [%s]: %s", w.Page, w.Unit, w.Code, w.Message)
}

// FormatWarnings renders a warning list as one line per warning, for
// inclusion in logs or user-facing summaries.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
