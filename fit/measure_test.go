package fit

import "testing"

func TestCharMetricsMeasure(t *testing.T) {
	m := CharMetrics{Factor: 0.5}
	style := FontStyle{Family: "Helvetica"}

	w, h := m.Measure("hello", style, 12)
	if w != 30 {
		t.Errorf("Expected width 30, got %f", w)
	}
	if h != 12 {
		t.Errorf("Expected height 12, got %f", h)
	}

	// Bold widens, multi-byte runes count as one glyph.
	bw, _ := m.Measure("hello", FontStyle{Family: "Helvetica", Bold: true}, 12)
	if bw <= w {
		t.Errorf("Expected bold width > %f, got %f", w, bw)
	}
	ew, _ := m.Measure("héllo", style, 12)
	if ew != w {
		t.Errorf("Expected rune-count width %f for accented text, got %f", w, ew)
	}
}

func TestCharMetricsFamilyDefaults(t *testing.T) {
	m := CharMetrics{}

	cw, _ := m.Measure("abc", FontStyle{Family: "Courier New"}, 10)
	tw, _ := m.Measure("abc", FontStyle{Family: "Times New Roman"}, 10)
	hw, _ := m.Measure("abc", FontStyle{Family: "Helvetica"}, 10)

	if !(cw > hw && hw > tw) {
		t.Errorf("Expected courier > default > times, got %f, %f, %f", cw, hw, tw)
	}
}

func TestCharMetricsMonotonicInSize(t *testing.T) {
	m := CharMetrics{Factor: 0.5}
	style := FontStyle{Family: "Helvetica"}

	prev := 0.0
	for size := 6.0; size <= 24; size += 0.5 {
		w, _ := m.Measure("monotonic", style, size)
		if w < prev {
			t.Fatalf("Width decreased from %f to %f at size %f", prev, w, size)
		}
		prev = w
	}
}

func TestPDFMetricsMonotonicInSize(t *testing.T) {
	m := NewPDFMetrics()
	style := FontStyle{Family: "Helvetica"}

	prev := 0.0
	for size := 6.0; size <= 24; size += 0.5 {
		w, h := m.Measure("monotonic", style, size)
		if w < prev {
			t.Fatalf("Width decreased from %f to %f at size %f", prev, w, size)
		}
		if h != size {
			t.Errorf("Expected height %f, got %f", size, h)
		}
		prev = w
	}
}

func TestPDFMetricsDeterministic(t *testing.T) {
	m := NewPDFMetrics()
	style := FontStyle{Family: "Times", Bold: true}

	w1, _ := m.Measure("repeatable", style, 14)
	w2, _ := m.Measure("repeatable", style, 14)
	if w1 != w2 {
		t.Errorf("Expected identical widths, got %f and %f", w1, w2)
	}
	if w1 <= 0 {
		t.Errorf("Expected positive width, got %f", w1)
	}
}

func TestCoreFont(t *testing.T) {
	tests := []struct {
		family    string
		bold      bool
		italic    bool
		wantName  string
		wantStyle string
	}{
		{"Helvetica", false, false, "Helvetica", ""},
		{"Arial", true, false, "Helvetica", "B"},
		{"Times New Roman", false, true, "Times", "I"},
		{"Georgia", true, true, "Times", "BI"},
		{"Courier New", false, false, "Courier", ""},
		{"DejaVu Sans Mono", false, false, "Courier", ""},
		{"", false, false, "Helvetica", ""},
	}

	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			name, style := CoreFont(FontStyle{Family: tt.family, Bold: tt.bold, Italic: tt.italic})
			if name != tt.wantName || style != tt.wantStyle {
				t.Errorf("CoreFont(%q) = %q/%q, want %q/%q", tt.family, name, style, tt.wantName, tt.wantStyle)
			}
		})
	}
}
