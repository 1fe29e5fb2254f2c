package plan

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dwhalen/refit/model"
)

// PageInput pairs one source page descriptor with its translated units in
// reading order.
type PageInput struct {
	Page  model.PageDescriptor
	Units []model.UnitDescriptor
}

// PageResult holds the outcome for one page. Err is set only for a
// structurally invalid page descriptor; unit-level problems surface as
// warnings on an otherwise complete plan.
type PageResult struct {
	Plan     *PagePlan
	Warnings []Warning
	Err      error
}

// BuildDocumentPlans plans every page of a document. Pages carry no
// dependency on each other, so they are fanned out across at most workers
// goroutines; results are written by index, which restores the original
// page order without serializing the work. A failed page is reported in
// its slot and never stops the others.
//
// workers < 1 means sequential processing.
func (p *Planner) BuildDocumentPlans(ctx context.Context, pages []PageInput, workers int) ([]PageResult, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]PageResult, len(pages))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, input := range pages {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pagePlan, warnings, err := p.BuildPagePlan(input.Page, input.Units)
			results[i] = PageResult{Plan: pagePlan, Warnings: warnings, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
