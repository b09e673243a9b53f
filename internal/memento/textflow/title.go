package textflow

// FitTitleSize shrinks a single line of title text until it fits maxWidth,
// decrementing from base one pixel at a time. The floor size is returned
// even if the text still overflows there; overflow is accepted rather
// than shrinking without bound.
func FitTitleSize(m *Measurer, family Family, text string, maxWidth, base, floor float64) float64 {
	if floor > base {
		floor = base
	}
	size := base
	for size > floor && m.Width(family, size, text) > maxWidth {
		size--
	}
	return size
}
