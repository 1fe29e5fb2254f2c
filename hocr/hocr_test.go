package hocr

import (
	"strings"
	"testing"

	"github.com/dwhalen/refit/model"
)

const sampleHOCR = `<!DOCTYPE html>
<html>
<body>
  <div class="ocr_page" title="bbox 0 0 1000 1400">
    <div class="ocr_carea" title="bbox 50 50 950 300">
      <p class="ocr_par">
        <span class="ocr_line" title="bbox 100 200 300 240; baseline 0 -5">
          <span class="ocrx_word" title="bbox 100 200 180 240; x_wconf 96">Hello</span>
          <span class="ocrx_word" title="bbox 190 200 300 240; x_wconf 93">world</span>
        </span>
        <span class="ocr_line" title="bbox 100 260 420 300">
          <span class="ocrx_word" title="bbox 100 260 420 300; x_wconf 88">Again</span>
        </span>
        <span class="ocr_line" title="x_wconf 12">no box here</span>
        <span class="ocr_line" title="bbox 0 0 10 20">   </span>
      </p>
    </div>
  </div>
</body>
</html>`

func TestParse(t *testing.T) {
	regions, err := Parse(strings.NewReader(sampleHOCR))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	// The malformed-title line and the whitespace-only line are dropped.
	if len(regions) != 2 {
		t.Fatalf("Expected 2 regions, got %d: %+v", len(regions), regions)
	}

	if regions[0].Text != "Hello world" {
		t.Errorf("Region 0 text = %q, want %q", regions[0].Text, "Hello world")
	}
	if regions[0].BBox != model.NewRect(100, 200, 300, 240) {
		t.Errorf("Region 0 bbox = %+v", regions[0].BBox)
	}
	if regions[1].Text != "Again" {
		t.Errorf("Region 1 text = %q, want %q", regions[1].Text, "Again")
	}
	if regions[1].BBox != model.NewRect(100, 260, 420, 300) {
		t.Errorf("Region 1 bbox = %+v", regions[1].BBox)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	regions, err := Parse(strings.NewReader("<html><body><p>no ocr markup</p></body></html>"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(regions) != 0 {
		t.Errorf("Expected no regions, got %+v", regions)
	}
}

func TestToUnits(t *testing.T) {
	regions := []Region{
		{Text: "line one", BBox: model.NewRect(0, 0, 200, 40)},
		{Text: "line two", BBox: model.NewRect(0, 50, 180, 90)},
	}
	hint := model.FontHint{Family: "Helvetica", Size: 11}

	units := ToUnits(regions, 2, hint)
	if len(units) != 2 {
		t.Fatalf("Expected 2 units, got %d", len(units))
	}
	for i, unit := range units {
		if unit.Kind != model.UnitImageOverlay {
			t.Errorf("Unit %d kind = %v, want image overlay", i, unit.Kind)
		}
		if unit.ImageIndex != 2 {
			t.Errorf("Unit %d image index = %d, want 2", i, unit.ImageIndex)
		}
		if unit.Text != regions[i].Text || unit.Box != regions[i].BBox {
			t.Errorf("Unit %d does not match its region", i)
		}
		if unit.Translated != "" {
			t.Errorf("Unit %d translation should be empty, got %q", i, unit.Translated)
		}
		if unit.Hint != hint {
			t.Errorf("Unit %d hint = %+v", i, unit.Hint)
		}
	}
}
