package plan

import (
	"github.com/dwhalen/refit/fit"
	"github.com/dwhalen/refit/model"
)

// PlacementUnit is one positioned, fitted piece of content destined for the
// output page. Units are created per page and handed straight to the
// document-writing stage; nothing retains them after the page is emitted.
type PlacementUnit struct {
	Kind   model.UnitKind
	Page   int
	Region model.Rect
	Fit    fit.FitResult
	Hint   model.FontHint

	// Row, Col and Border are populated for table-cell units only.
	Row, Col int
	Border   model.BorderStyle
}

// PagePlan is the complete ordered description of one output page: fitted
// placements in the original reading order plus the untouched preserved
// elements. PageWidth and PageHeight are copied verbatim from the source
// page descriptor and never recomputed.
type PagePlan struct {
	PageNumber int
	PageWidth  float64
	PageHeight float64
	Placements []PlacementUnit
	Preserved  []model.PreservedElement
}
