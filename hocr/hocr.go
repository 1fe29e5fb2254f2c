// Package hocr parses the minimal subset of hOCR output needed to turn OCR
// results into image-overlay text regions: ocr_line elements with their
// bounding boxes. Coordinates are left in image-local pixels; mapping into
// page space happens in the planner, which knows where the image sits on
// the page.
package hocr

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/dwhalen/refit/model"
)

// Region is one recognized text line with its image-local bounding box.
type Region struct {
	Text string
	BBox model.Rect
}

// Parse extracts text regions from an hOCR document. Elements without a
// parseable bbox in their title attribute are skipped; a document with no
// usable regions yields an empty slice, not an error.
func Parse(r io.Reader) ([]Region, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hOCR: %w", err)
	}

	var regions []Region
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocr_line") {
			if bbox, ok := titleBBox(n); ok {
				text := strings.Join(strings.Fields(nodeText(n)), " ")
				if text != "" {
					regions = append(regions, Region{Text: text, BBox: bbox})
				}
			}
			return // words inside the line are already covered by its text
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return regions, nil
}

// ToUnits converts parsed regions into image-overlay unit descriptors
// referencing the image at imageIndex, all sharing the given font hint.
// The Translated field is left empty for the translation stage to fill.
func ToUnits(regions []Region, imageIndex int, hint model.FontHint) []model.UnitDescriptor {
	units := make([]model.UnitDescriptor, 0, len(regions))
	for _, region := range regions {
		units = append(units, model.UnitDescriptor{
			Kind:       model.UnitImageOverlay,
			Text:       region.Text,
			Box:        region.BBox,
			Hint:       hint,
			ImageIndex: imageIndex,
		})
	}
	return units
}

// hasClass reports whether the node's class attribute contains the given
// class name.
func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// titleBBox extracts the "bbox x0 y0 x1 y1" property from the hOCR title
// attribute, e.g. "bbox 100 200 300 400; x_wconf 95".
func titleBBox(n *html.Node) (model.Rect, bool) {
	for _, attr := range n.Attr {
		if attr.Key != "title" {
			continue
		}
		for _, prop := range strings.Split(attr.Val, ";") {
			fields := strings.Fields(strings.TrimSpace(prop))
			if len(fields) != 5 || fields[0] != "bbox" {
				continue
			}
			coords := make([]float64, 4)
			ok := true
			for i, field := range fields[1:] {
				v, err := strconv.ParseFloat(field, 64)
				if err != nil {
					ok = false
					break
				}
				coords[i] = v
			}
			if ok {
				return model.NewRect(coords[0], coords[1], coords[2], coords[3]), true
			}
		}
	}
	return model.Rect{}, false
}

// nodeText concatenates all descendant text of a node.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
		sb.WriteString(" ")
	}
	return sb.String()
}
