package plan

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dwhalen/refit/model"
)

func TestBuildDocumentPlansPreservesPageOrder(t *testing.T) {
	p := testPlanner()

	var pages []PageInput
	for i := 1; i <= 8; i++ {
		pages = append(pages, PageInput{
			Page:  model.PageDescriptor{Number: i, Width: 612, Height: 792},
			Units: []model.UnitDescriptor{nativeUnit("text", "text")},
		})
	}

	results, err := p.BuildDocumentPlans(context.Background(), pages, 3)
	if err != nil {
		t.Fatalf("BuildDocumentPlans returned error: %v", err)
	}
	if len(results) != len(pages) {
		t.Fatalf("Expected %d results, got %d", len(pages), len(results))
	}
	for i, res := range results {
		if res.Err != nil {
			t.Fatalf("Page %d failed: %v", i+1, res.Err)
		}
		if res.Plan.PageNumber != i+1 {
			t.Errorf("Result %d holds page %d", i, res.Plan.PageNumber)
		}
	}
}

func TestBuildDocumentPlansIsolatesFailedPage(t *testing.T) {
	p := testPlanner()

	pages := []PageInput{
		{Page: model.PageDescriptor{Number: 1, Width: 612, Height: 792},
			Units: []model.UnitDescriptor{nativeUnit("one", "one")}},
		{Page: model.PageDescriptor{Number: 2, Width: 0, Height: 792}}, // invalid
		{Page: model.PageDescriptor{Number: 3, Width: 612, Height: 792},
			Units: []model.UnitDescriptor{nativeUnit("three", "three")}},
	}

	results, err := p.BuildDocumentPlans(context.Background(), pages, 2)
	if err != nil {
		t.Fatalf("Expected page failure to stay in its slot, got %v", err)
	}

	if !errors.Is(results[1].Err, ErrInvalidPageDescriptor) {
		t.Errorf("Expected ErrInvalidPageDescriptor in slot 1, got %v", results[1].Err)
	}
	for _, i := range []int{0, 2} {
		if results[i].Err != nil {
			t.Errorf("Sibling page %d failed: %v", i+1, results[i].Err)
		}
		if results[i].Plan == nil || len(results[i].Plan.Placements) != 1 {
			t.Errorf("Sibling page %d missing its plan", i+1)
		}
	}
}

func TestBuildDocumentPlansSequentialFallback(t *testing.T) {
	p := testPlanner()

	pages := []PageInput{
		{Page: model.PageDescriptor{Number: 1, Width: 612, Height: 792}},
	}
	results, err := p.BuildDocumentPlans(context.Background(), pages, 0)
	if err != nil {
		t.Fatalf("BuildDocumentPlans returned error: %v", err)
	}
	if len(results) != 1 || results[0].Err != nil {
		t.Errorf("Unexpected results: %+v", results)
	}
}

func TestBuildDocumentPlansCanceledContext(t *testing.T) {
	p := testPlanner()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pages := []PageInput{
		{Page: model.PageDescriptor{Number: 1, Width: 612, Height: 792}},
	}
	_, err := p.BuildDocumentPlans(ctx, pages, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	p := testPlanner()

	overflowing := nativeUnit("hello world", "hello world")
	overflowing.Box = model.NewRect(0, 0, 30, 5)

	untranslated := nativeUnit("Hallo", "")

	skipped := model.UnitDescriptor{
		Kind:       model.UnitImageOverlay,
		Text:       "orphan",
		Box:        model.NewRect(0, 0, 100, 20),
		Hint:       model.FontHint{Size: 12},
		ImageIndex: 7,
	}

	pages := []PageInput{
		{Page: model.PageDescriptor{Number: 1, Width: 612, Height: 792},
			Units: []model.UnitDescriptor{nativeUnit("a", "a"), overflowing}},
		{Page: model.PageDescriptor{Number: 2, Width: 612, Height: 792},
			Units: []model.UnitDescriptor{untranslated, skipped}},
		{Page: model.PageDescriptor{Number: 3, Width: 0, Height: 792}}, // fails
	}

	results, err := p.BuildDocumentPlans(context.Background(), pages, 2)
	if err != nil {
		t.Fatalf("BuildDocumentPlans returned error: %v", err)
	}

	s := Summarize(pages, results)
	if s.Pages != 3 {
		t.Errorf("Pages = %d, want 3", s.Pages)
	}
	if s.FailedPages != 1 {
		t.Errorf("FailedPages = %d, want 1", s.FailedPages)
	}
	if s.Units != 3 {
		t.Errorf("Units = %d, want 3", s.Units)
	}
	if s.Infeasible != 1 {
		t.Errorf("Infeasible = %d, want 1", s.Infeasible)
	}
	if s.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", s.Skipped)
	}
	if s.TranslationFailures != 2 {
		t.Errorf("TranslationFailures = %d, want 2", s.TranslationFailures)
	}
	if len(s.Warnings) != 2 {
		t.Errorf("Warnings = %d, want 2: %v", len(s.Warnings), s.Warnings)
	}

	text := s.String()
	if !strings.Contains(text, "3 pages (1 failed)") {
		t.Errorf("Summary string missing page counts: %q", text)
	}
}

func TestFormatWarnings(t *testing.T) {
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("Expected empty string for no warnings, got %q", got)
	}

	warnings := []Warning{
		{Page: 1, Unit: 0, Code: WarnDegenerateRegion, Message: "zero width"},
		{Page: 2, Unit: 3, Code: WarnCoordinateTransform, Message: "no image"},
	}
	got := FormatWarnings(warnings)
	if !strings.Contains(got, "degenerate-region") || !strings.Contains(got, "coordinate-transform") {
		t.Errorf("FormatWarnings missing codes: %q", got)
	}
	if len(strings.Split(got, "\n")) != 2 {
		t.Errorf("Expected one line per warning, got %q", got)
	}
}
