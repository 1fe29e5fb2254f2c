// Package fit computes the largest font size and line layout that places a
// piece of translated text inside a target rectangle.
//
// The [Fitter] searches font sizes downward from the source hint to a
// configurable minimum, re-running a greedy word wrap at every probed size,
// and falls back to character-level truncation with an ellipsis when even
// the minimum size cannot contain the text.
//
// Basic usage:
//
//	fitter := fit.NewFitter(fit.NewPDFMetrics())
//	result, err := fitter.Fit(fit.FitRequest{
//	    Text:      translated,
//	    TargetBox: region,
//	    Hint:      hint,
//	})
//
// Fit is a pure function of its inputs: identical requests always produce
// identical results, which makes reprocessing idempotent and lets callers
// fit independent units concurrently without locking.
package fit
