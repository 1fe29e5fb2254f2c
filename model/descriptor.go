package model

// UnitKind identifies the variant of a translatable unit.
type UnitKind int

const (
	UnitUnknown UnitKind = iota
	UnitNativeText
	UnitImageOverlay
	UnitTableCell
)

func (k UnitKind) String() string {
	switch k {
	case UnitNativeText:
		return "NativeText"
	case UnitImageOverlay:
		return "ImageOverlayText"
	case UnitTableCell:
		return "TableCell"
	default:
		return "Unknown"
	}
}

// BorderStyle carries table-cell border metadata through reconstruction
// unchanged. The core never interprets it beyond passing it along.
type BorderStyle struct {
	Top    bool
	Bottom bool
	Left   bool
	Right  bool
	Width  float64
	Color  RGB
}

// UnitDescriptor describes one translatable unit on a page, as supplied by
// the extraction stage and paired with its translation.
//
// Box is in final page coordinates for NativeText and TableCell units. For
// ImageOverlay units it is in image-local pixel coordinates as reported by
// OCR; the planner maps it into page space through the referenced image
// region before fitting.
type UnitDescriptor struct {
	Kind UnitKind

	// Text is the original extracted text.
	Text string

	// Translated is the translated text. It may equal Text when translation
	// failed upstream; TranslationOK records whether translation succeeded,
	// for summary reporting only.
	Translated    string
	TranslationOK bool

	Box  Rect
	Hint FontHint

	// ImageIndex references PageDescriptor.ImageRegions for overlay units.
	ImageIndex int

	// Row and Col are the cell indices for table-cell units.
	Row, Col int
	Border   BorderStyle
}

// ImageRegion describes the placement of a source image on the page,
// used to resolve OCR-reported image-local coordinates.
type ImageRegion struct {
	// BBox is the image's placement rectangle in page coordinates.
	BBox Rect

	// Width and Height are the image's pixel dimensions, the coordinate
	// space OCR bounding boxes are reported in.
	Width  float64
	Height float64
}

// PreservedKind classifies a preserved element just enough for the
// document writer to know how to copy it.
type PreservedKind int

const (
	PreservedOther PreservedKind = iota
	PreservedImage
	PreservedVector
	PreservedFont
)

func (k PreservedKind) String() string {
	switch k {
	case PreservedImage:
		return "Image"
	case PreservedVector:
		return "Vector"
	case PreservedFont:
		return "Font"
	default:
		return "Other"
	}
}

// PreservedElement is an opaque handle to a non-translatable page element
// (raster image, vector graphics, embedded font). The core never inspects
// the payload; it only guarantees the element reappears at the same
// coordinates and in its original position in the content order.
type PreservedElement struct {
	ID      string
	Kind    PreservedKind
	BBox    Rect
	Payload []byte
}

// PageDescriptor is the per-page geometry contract consumed from the
// extraction stage. Width and Height are copied verbatim into the resulting
// page plan and never recomputed.
type PageDescriptor struct {
	Number       int
	Width        float64
	Height       float64
	ImageRegions []ImageRegion
	Preserved    []PreservedElement
}
