package fit

import (
	"fmt"

	"github.com/dwhalen/refit/model"
)

// DegenerateRegionError reports a target box with non-positive width or
// height. It is returned before any search begins and is always recoverable
// at the unit level: the planner records it and falls back to the original
// text.
type DegenerateRegionError struct {
	Box model.Rect
}

func (e *DegenerateRegionError) Error() string {
	return fmt.Sprintf("degenerate target region: %.2f x %.2f", e.Box.Width(), e.Box.Height())
}
