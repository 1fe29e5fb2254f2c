package fit

import "strings"

// wrap performs the greedy word wrap at a fixed size: words are consumed in
// order and accumulated onto the current line while the measured width stays
// within maxWidth. A word wider than maxWidth still gets its own line (no
// hyphenation); the caller decides whether such an overwide line disqualifies
// the size.
func (f *Fitter) wrap(text string, style FontStyle, size, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		w, _ := f.measurer.Measure(candidate, style, size)
		if w <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// wrapHard wraps like wrap but additionally breaks words wider than
// maxWidth across lines at rune boundaries. Used only on the truncation
// path, where every line must be narrow enough to honor the containment
// guarantee.
func (f *Fitter) wrapHard(text string, style FontStyle, size, maxWidth float64) []string {
	var lines []string
	for _, line := range f.wrap(text, style, size, maxWidth) {
		w, _ := f.measurer.Measure(line, style, size)
		if w <= maxWidth {
			lines = append(lines, line)
			continue
		}
		lines = append(lines, f.breakWord(line, style, size, maxWidth)...)
	}
	return lines
}

// breakWord splits a single overwide word into rune-boundary chunks that
// each measure within maxWidth. A rune that alone exceeds maxWidth still
// becomes its own chunk so progress is always made.
func (f *Fitter) breakWord(word string, style FontStyle, size, maxWidth float64) []string {
	var parts []string
	current := ""
	for _, r := range word {
		candidate := current + string(r)
		w, _ := f.measurer.Measure(candidate, style, size)
		if w <= maxWidth || current == "" {
			current = candidate
			continue
		}
		parts = append(parts, current)
		current = string(r)
	}
	if current != "" {
		parts = append(parts, current)
	}
	return parts
}

// layout wraps text at the candidate size and reports whether the result
// fits the box: the stacked line height must stay within the box height and
// every line's measured width within the box width.
func (f *Fitter) layout(text string, style FontStyle, size float64, box boxSize) ([]string, bool) {
	lines := f.wrap(text, style, size, box.width)
	if float64(len(lines))*size*f.config.LineHeightFactor > box.height {
		return lines, false
	}
	for _, line := range lines {
		w, _ := f.measurer.Measure(line, style, size)
		if w > box.width {
			return lines, false
		}
	}
	return lines, true
}

// boxSize is the usable extent of a target box.
type boxSize struct {
	width, height float64
}
