// Package refit fits translated text back into the geometry of the source
// document: given text, the region it must occupy, and the original font
// characteristics, it produces a placement plan (font size, line breaks,
// truncation decision) and assembles whole pages that preserve every
// non-text element at its original coordinates.
//
// Basic usage:
//
//	engine := refit.New(nil)
//	results, err := engine.PlanDocument(ctx, pages, 4)
//	if err != nil {
//	    // handle error
//	}
//	summary := plan.Summarize(pages, results)
//
// The fit calculator can also be used on its own:
//
//	result, err := engine.Fitter().Fit(fit.FitRequest{
//	    Text:      "translated text",
//	    TargetBox: model.NewRect(72, 72, 300, 120),
//	    Hint:      model.FontHint{Family: "Helvetica", Size: 12},
//	})
package refit

import (
	"context"
	"log/slog"

	"github.com/dwhalen/refit/fit"
	"github.com/dwhalen/refit/plan"
)

// Engine bundles a fit calculator and a reconstruction planner sharing one
// configuration. It is stateless across calls and safe for concurrent use.
type Engine struct {
	fitter  *fit.Fitter
	planner *plan.Planner
	workers int
}

// New creates an engine with default configuration and PDF core-font
// metrics. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Engine {
	return NewWithConfig(DefaultConfig(), logger)
}

// NewWithConfig creates an engine from a configuration, typically loaded
// via LoadConfig.
func NewWithConfig(config Config, logger *slog.Logger) *Engine {
	var measurer fit.TextMeasurer
	if config.CharMetrics {
		measurer = fit.CharMetrics{}
	} else {
		measurer = fit.NewPDFMetrics()
	}

	fitter := fit.NewFitterWithConfig(measurer, config.fitConfig())
	return &Engine{
		fitter:  fitter,
		planner: plan.NewPlanner(fitter, logger),
		workers: config.Workers,
	}
}

// Fitter returns the engine's fit calculator.
func (e *Engine) Fitter() *fit.Fitter {
	return e.fitter
}

// Planner returns the engine's reconstruction planner.
func (e *Engine) Planner() *plan.Planner {
	return e.planner
}

// PlanPage builds the plan for a single page.
func (e *Engine) PlanPage(input plan.PageInput) (*plan.PagePlan, []plan.Warning, error) {
	return e.planner.BuildPagePlan(input.Page, input.Units)
}

// PlanDocument plans all pages of a document, fanning them out across the
// configured number of workers. workers <= 0 uses the engine's configured
// worker count.
func (e *Engine) PlanDocument(ctx context.Context, pages []plan.PageInput, workers int) ([]plan.PageResult, error) {
	if workers <= 0 {
		workers = e.workers
	}
	return e.planner.BuildDocumentPlans(ctx, pages, workers)
}
