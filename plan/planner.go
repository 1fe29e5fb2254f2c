package plan

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dwhalen/refit/fit"
	"github.com/dwhalen/refit/model"
)

// ErrInvalidPageDescriptor reports a page descriptor missing required
// geometry. This is the only failure that is fatal for a page; it still
// never derails sibling pages in a batch.
var ErrInvalidPageDescriptor = errors.New("page descriptor missing required geometry")

// Planner builds page plans from translated units and source page
// geometry. It is stateless apart from its fitter and logger and safe to
// share across goroutines.
type Planner struct {
	fitter *fit.Fitter
	logger *slog.Logger
}

// NewPlanner creates a planner. A nil logger falls back to slog.Default().
func NewPlanner(fitter *fit.Fitter, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{fitter: fitter, logger: logger}
}

// BuildPagePlan fits every translated unit of a page and merges the results
// with the page's preserved elements into an ordered plan.
//
// Units are processed in the order given, which is the reading order
// recorded during extraction; the emitted placements keep that order. A
// unit that cannot be processed is recorded as a warning and either skipped
// (unmappable overlay coordinates) or replaced by a fallback placement
// carrying the original text (degenerate region). Processing always
// continues with the remaining units.
func (p *Planner) BuildPagePlan(page model.PageDescriptor, units []model.UnitDescriptor) (*PagePlan, []Warning, error) {
	if page.Width <= 0 || page.Height <= 0 {
		return nil, nil, fmt.Errorf("page %d: %w", page.Number, ErrInvalidPageDescriptor)
	}

	plan := &PagePlan{
		PageNumber: page.Number,
		PageWidth:  page.Width,
		PageHeight: page.Height,
		Placements: make([]PlacementUnit, 0, len(units)),
		Preserved:  page.Preserved,
	}
	var warnings []Warning

	for i, unit := range units {
		req := fit.FitRequest{
			Text:      unitText(unit),
			TargetBox: unit.Box,
			Hint:      unit.Hint,
		}

		switch unit.Kind {
		case model.UnitImageOverlay:
			box, err := overlayToPage(unit.Box, page.ImageRegions, unit.ImageIndex)
			if err != nil {
				warnings = append(warnings, Warning{
					Page: page.Number, Unit: i, Code: WarnCoordinateTransform,
					Message: err.Error(),
				})
				p.logger.Warn("plan.unit.transform_failed",
					"page", page.Number, "unit", i, "image_index", unit.ImageIndex, "err", err)
				continue
			}
			req.TargetBox = box
		case model.UnitTableCell:
			cell := unit.Box
			req.CellConstraint = &cell
		}

		result, err := p.fitter.Fit(req)
		if err != nil {
			var degenerate *fit.DegenerateRegionError
			if !errors.As(err, &degenerate) {
				return nil, warnings, fmt.Errorf("page %d unit %d: %w", page.Number, i, err)
			}
			warnings = append(warnings, Warning{
				Page: page.Number, Unit: i, Code: WarnDegenerateRegion,
				Message: err.Error(),
			})
			p.logger.Warn("plan.unit.degenerate",
				"page", page.Number, "unit", i, "kind", unit.Kind.String())
			plan.Placements = append(plan.Placements, fallbackPlacement(page.Number, unit, req.TargetBox))
			continue
		}

		if !result.Fits {
			warnings = append(warnings, Warning{
				Page: page.Number, Unit: i, Code: WarnFitInfeasible,
				Message: fmt.Sprintf("text cannot fit %s region %.1fx%.1f even truncated",
					unit.Kind, req.TargetBox.Width(), req.TargetBox.Height()),
			})
			p.logger.Warn("plan.unit.infeasible",
				"page", page.Number, "unit", i, "kind", unit.Kind.String())
		}

		plan.Placements = append(plan.Placements, PlacementUnit{
			Kind:   unit.Kind,
			Page:   page.Number,
			Region: req.TargetBox,
			Fit:    result,
			Hint:   unit.Hint,
			Row:    unit.Row,
			Col:    unit.Col,
			Border: unit.Border,
		})
	}

	return plan, warnings, nil
}

// unitText selects the text to place: the translation when present,
// otherwise the original. The translation-succeeded flag is not consulted
// here; it only feeds summary reporting.
func unitText(unit model.UnitDescriptor) string {
	if strings.TrimSpace(unit.Translated) != "" {
		return unit.Translated
	}
	return unit.Text
}

// fallbackPlacement preserves the original, untranslated text at the hint
// font size when the target region is degenerate. The source rendered this
// text in this region, so the placement mirrors the source rather than
// claiming a verified fit of the translation.
func fallbackPlacement(page int, unit model.UnitDescriptor, region model.Rect) PlacementUnit {
	var lines []string
	if s := strings.TrimSpace(unit.Text); s != "" {
		lines = strings.Fields(s)
		lines = []string{strings.Join(lines, " ")}
	}
	return PlacementUnit{
		Kind:   unit.Kind,
		Page:   page,
		Region: region,
		Fit: fit.FitResult{
			FontSize: unit.Hint.Size,
			Lines:    lines,
			Fits:     true,
		},
		Hint:   unit.Hint,
		Row:    unit.Row,
		Col:    unit.Col,
		Border: unit.Border,
	}
}
