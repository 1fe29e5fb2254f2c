package fit

import (
	"strings"
	"unicode/utf8"

	"github.com/dwhalen/refit/model"
)

// Ellipsis is the truncation marker appended to the last line when text
// must be cut to fit.
const Ellipsis = "…"

// FitConfig holds the fitting constants. It is passed in at construction,
// never held as mutable package state, so concurrent fitters with different
// configurations are safe.
type FitConfig struct {
	// MinFontSize is the hard readability floor. Fitted sizes never go
	// below it; text that cannot fit at this size is truncated instead.
	MinFontSize float64

	// LineHeightFactor models leading: a line occupies size * factor
	// vertical units.
	LineHeightFactor float64

	// SizeStep is the search resolution in font-size units. Binary search
	// converges to this step; the linear scan decrements by it.
	SizeStep float64

	// LinearScan selects a fixed-decrement scan from the hint size down to
	// the minimum instead of binary search. The greedy wrap's line count is
	// not strictly monotonic in size under every metric model, so the scan
	// is the safe choice for untrusted measurement backends; it always
	// finds the largest fitting size on the step grid.
	LinearScan bool
}

// DefaultFitConfig returns the standard fitting constants.
func DefaultFitConfig() FitConfig {
	return FitConfig{
		MinFontSize:      6.0,
		LineHeightFactor: 1.2,
		SizeStep:         0.5,
		LinearScan:       false,
	}
}

// FitRequest describes one fitting problem: the translated text, the region
// it must occupy, and the source font characteristics to start from.
type FitRequest struct {
	Text      string
	TargetBox model.Rect
	Hint      model.FontHint

	// CellConstraint, when set, further bounds the target box (table
	// context). Fitting runs against the intersection of the two, so text
	// can never overflow into a neighboring cell regardless of the nominal
	// target box.
	CellConstraint *model.Rect
}

// FitResult is the placement plan for one unit.
//
// FontSize is always within [MinFontSize, Hint.Size]. When Truncated is
// true the last line ends with the ellipsis marker and the block fits at
// the minimum size, except in the degenerate case where Fits is false: the
// result is then best effort and the caller records a warning rather than
// failing.
type FitResult struct {
	FontSize  float64
	Lines     []string
	Truncated bool
	Fits      bool
}

// Fitter computes text placements. It holds only immutable configuration
// and a concurrency-safe measurer, so a single Fitter may be shared across
// goroutines.
type Fitter struct {
	config   FitConfig
	measurer TextMeasurer
}

// NewFitter creates a fitter with default configuration.
func NewFitter(m TextMeasurer) *Fitter {
	return NewFitterWithConfig(m, DefaultFitConfig())
}

// NewFitterWithConfig creates a fitter with custom configuration. Invalid
// fields fall back to their defaults.
func NewFitterWithConfig(m TextMeasurer, config FitConfig) *Fitter {
	def := DefaultFitConfig()
	if config.MinFontSize <= 0 {
		config.MinFontSize = def.MinFontSize
	}
	if config.LineHeightFactor < 1.0 {
		config.LineHeightFactor = def.LineHeightFactor
	}
	if config.SizeStep <= 0 {
		config.SizeStep = def.SizeStep
	}
	return &Fitter{config: config, measurer: m}
}

// Config returns the fitter's configuration.
func (f *Fitter) Config() FitConfig {
	return f.config
}

// Fit searches for the largest font size in [MinFontSize, Hint.Size] whose
// greedy line wrap fits the target box, truncating at the minimum size when
// no size fits. A degenerate box (non-positive width or height, including
// an empty cell intersection) returns a *DegenerateRegionError before any
// search begins.
func (f *Fitter) Fit(req FitRequest) (FitResult, error) {
	target := req.TargetBox
	if req.CellConstraint != nil {
		target = target.Intersect(*req.CellConstraint)
	}
	if target.IsDegenerate() {
		return FitResult{}, &DegenerateRegionError{Box: target}
	}
	box := boxSize{width: target.Width(), height: target.Height()}

	style := FontStyle{Family: req.Hint.Family, Bold: req.Hint.Bold, Italic: req.Hint.Italic}
	start := req.Hint.Size
	if start < f.config.MinFontSize {
		start = f.config.MinFontSize
	}

	text := strings.TrimSpace(req.Text)
	if utf8.RuneCountInString(text) <= 1 {
		var lines []string
		if text != "" {
			lines = []string{text}
		}
		return FitResult{FontSize: start, Lines: lines, Fits: true}, nil
	}

	// The hint size itself is the most common winner; probe it first.
	if lines, ok := f.layout(text, style, start, box); ok {
		return FitResult{FontSize: start, Lines: lines, Fits: true}, nil
	}

	if size, ok := f.search(text, style, start, box); ok {
		lines, ok := f.layout(text, style, size, box)
		if ok {
			return FitResult{FontSize: size, Lines: lines, Fits: true}, nil
		}
	}

	// Exact floor probe: the search converges to within a step of the
	// minimum but may never have tested it.
	if lines, ok := f.layout(text, style, f.config.MinFontSize, box); ok {
		return FitResult{FontSize: f.config.MinFontSize, Lines: lines, Fits: true}, nil
	}

	return f.truncate(text, style, box), nil
}

// search locates the largest fitting size strictly below start. The caller
// has already established that start itself does not fit.
func (f *Fitter) search(text string, style FontStyle, start float64, box boxSize) (float64, bool) {
	if f.config.LinearScan {
		for size := start - f.config.SizeStep; size > f.config.MinFontSize; size -= f.config.SizeStep {
			if _, ok := f.layout(text, style, size, box); ok {
				return size, true
			}
		}
		return 0, false
	}

	lo := f.config.MinFontSize
	hi := start
	best := 0.0
	found := false
	for hi-lo > f.config.SizeStep {
		mid := (lo + hi) / 2
		if _, ok := f.layout(text, style, mid, box); ok {
			best = mid
			found = true
			lo = mid
		} else {
			hi = mid
		}
	}
	return best, found
}

// truncate produces the best-effort placement at the minimum font size:
// text is hard-wrapped (overwide words broken at rune boundaries), clipped
// to the number of lines the box can hold, and the last line is trimmed
// character by character until it fits together with the ellipsis marker.
//
// Fits is false only when even the truncated text cannot be confirmed to
// fit: a box shorter than a single line at the minimum size, or too narrow
// for the ellipsis itself. The result is still returned for best-effort
// placement; it is never an error.
func (f *Fitter) truncate(text string, style FontStyle, box boxSize) FitResult {
	size := f.config.MinFontSize
	lineHeight := size * f.config.LineHeightFactor

	maxLines := int(box.height / lineHeight)
	heightOK := maxLines >= 1
	if maxLines < 1 {
		maxLines = 1
	}

	lines := f.wrapHard(text, style, size, box.width)
	if len(lines) == 0 {
		lines = []string{""}
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	last := lines[len(lines)-1]
	ellipsisOK := false
	for {
		w, _ := f.measurer.Measure(last+Ellipsis, style, size)
		if w <= box.width {
			ellipsisOK = true
			break
		}
		if last == "" {
			break
		}
		_, trim := utf8.DecodeLastRuneInString(last)
		last = last[:len(last)-trim]
	}

	if ellipsisOK {
		lines[len(lines)-1] = last + Ellipsis
		return FitResult{FontSize: size, Lines: lines, Truncated: true, Fits: heightOK}
	}

	// Not even the ellipsis fits the width. Emit the widest prefix that
	// does fit, possibly a single character or nothing at all.
	best := ""
	for _, r := range text {
		candidate := best + string(r)
		w, _ := f.measurer.Measure(candidate, style, size)
		if w > box.width {
			break
		}
		best = candidate
	}
	return FitResult{FontSize: size, Lines: []string{best}, Truncated: true, Fits: false}
}
