package plan

import "fmt"

// Summary aggregates per-document fit outcomes for user-visible reporting.
// Truncated and infeasible fits are surfaced here as warning counts, never
// as failures of the overall job.
type Summary struct {
	Pages       int
	FailedPages int

	Units      int // placements emitted
	Truncated  int // placements whose text was cut to fit
	Infeasible int // placements emitted best-effort without a confirmed fit
	Skipped    int // units dropped (unmappable coordinates)

	// TranslationFailures counts units whose upstream translation did not
	// succeed; their original text was placed instead.
	TranslationFailures int

	Warnings []Warning
}

// Summarize folds page results and their inputs into a document summary.
// inputs and results must be index-aligned, as produced by
// BuildDocumentPlans.
func Summarize(inputs []PageInput, results []PageResult) Summary {
	var s Summary
	s.Pages = len(results)

	for i, res := range results {
		if res.Err != nil {
			s.FailedPages++
			continue
		}
		s.Warnings = append(s.Warnings, res.Warnings...)
		for _, w := range res.Warnings {
			if w.Code == WarnCoordinateTransform {
				s.Skipped++
			}
		}
		if res.Plan == nil {
			continue
		}
		s.Units += len(res.Plan.Placements)
		for _, placement := range res.Plan.Placements {
			if placement.Fit.Truncated {
				s.Truncated++
			}
			if !placement.Fit.Fits {
				s.Infeasible++
			}
		}
		if i < len(inputs) {
			for _, unit := range inputs[i].Units {
				if !unit.TranslationOK {
					s.TranslationFailures++
				}
			}
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d pages (%d failed), %d placements: %d truncated, %d infeasible, %d skipped, %d untranslated",
		s.Pages, s.FailedPages, s.Units, s.Truncated, s.Infeasible, s.Skipped, s.TranslationFailures)
}
