package plan

import (
	"errors"

	"github.com/dwhalen/refit/model"
)

// ErrMissingImageRegion reports that an overlay unit references image
// placement metadata that is absent or unusable, so its OCR coordinates
// cannot be mapped into page space.
var ErrMissingImageRegion = errors.New("image region metadata missing or degenerate")

// pageTransform returns a function mapping image-local OCR coordinates into
// page coordinates through the image's placement rectangle: local pixels
// are scaled by the placement extent and offset by its origin.
func pageTransform(img model.ImageRegion) (func(x, y float64) (float64, float64), error) {
	if img.Width <= 0 || img.Height <= 0 || img.BBox.IsDegenerate() {
		return nil, ErrMissingImageRegion
	}
	return func(x, y float64) (float64, float64) {
		px := img.BBox.X0 + (x/img.Width)*img.BBox.Width()
		py := img.BBox.Y0 + (y/img.Height)*img.BBox.Height()
		return px, py
	}, nil
}

// overlayToPage maps an image-local box of the unit at imageIndex into page
// coordinates.
func overlayToPage(local model.Rect, regions []model.ImageRegion, imageIndex int) (model.Rect, error) {
	if imageIndex < 0 || imageIndex >= len(regions) {
		return model.Rect{}, ErrMissingImageRegion
	}
	transform, err := pageTransform(regions[imageIndex])
	if err != nil {
		return model.Rect{}, err
	}
	x0, y0 := transform(local.X0, local.Y0)
	x1, y1 := transform(local.X1, local.Y1)
	return model.NewRect(x0, y0, x1, y1), nil
}
