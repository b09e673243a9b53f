package textflow

import (
	"fmt"
	"math"
)

// Box is the region the tracklist must fit into, in template coordinates.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Options tune the column flow.
type Options struct {
	BaseFontSize float64
	MinFontSize  float64
	// LineHeight is an em multiple of the font size.
	LineHeight float64
	// Gap is the horizontal space between columns.
	Gap float64
	MaxColumns int
	// MinColumnWidth skips narrow column layouts unless MaxColumns forces them.
	MinColumnWidth float64
}

// Column is one positioned run of lines. The first line sits at the
// absolute baseline (X, Y); each following line advances one line height.
type Column struct {
	X     float64
	Y     float64
	Lines []string
}

// Result is the outcome of a flow computation. It is recomputed per
// render and never cached, so identical inputs always agree.
type Result struct {
	Columns      []Column
	FontSize     float64
	ColumnCount  int
	Rendered     int
	Omitted      int
	LineHeightPx float64
}

// Flow distributes lines across columns inside box, shrinking the font
// size from BaseFontSize toward MinFontSize until everything fits. If the
// floor size still lacks capacity it renders what fits and closes with a
// "+K more" marker.
func Flow(lines []string, box Box, opts Options) Result {
	opts = opts.withDefaults()

	for size := opts.BaseFontSize; size >= opts.MinFontSize; size-- {
		for cols := 1; cols <= opts.MaxColumns; cols++ {
			if skipNarrow(box, opts, cols) {
				continue
			}
			perCol := linesPerColumn(box, opts, size)
			if perCol < 1 {
				continue
			}
			if perCol*cols >= len(lines) {
				return layout(lines, box, opts, size, cols, perCol, 0)
			}
		}
	}

	// Floor reached with insufficient capacity: force the widest layout
	// and truncate.
	size := opts.MinFontSize
	perCol := linesPerColumn(box, opts, size)
	if perCol < 1 {
		perCol = 1
	}
	capacity := perCol * opts.MaxColumns

	shown := len(lines)
	if shown > capacity {
		shown = capacity
	}
	omitted := len(lines) - shown
	if omitted > 0 && shown == capacity {
		// No free slot: the marker replaces the last rendered line.
		shown--
		omitted++
	}
	return layout(lines[:shown], box, opts, size, opts.MaxColumns, perCol, omitted)
}

func (o Options) withDefaults() Options {
	if o.BaseFontSize <= 0 {
		o.BaseFontSize = 20
	}
	if o.MinFontSize <= 0 {
		o.MinFontSize = 10
	}
	if o.MinFontSize > o.BaseFontSize {
		o.MinFontSize = o.BaseFontSize
	}
	if o.LineHeight <= 0 {
		o.LineHeight = 1.4
	}
	if o.MaxColumns < 1 {
		o.MaxColumns = 1
	}
	return o
}

func skipNarrow(box Box, opts Options, cols int) bool {
	if cols == opts.MaxColumns || opts.MinColumnWidth <= 0 {
		return false
	}
	return columnWidth(box, opts, cols) < opts.MinColumnWidth
}

func columnWidth(box Box, opts Options, cols int) float64 {
	return (box.Width - opts.Gap*float64(cols-1)) / float64(cols)
}

func linesPerColumn(box Box, opts Options, size float64) int {
	return int(math.Floor(box.Height / (size * opts.LineHeight)))
}

func layout(lines []string, box Box, opts Options, size float64, cols, perCol, omitted int) Result {
	rendered := append([]string(nil), lines...)
	if omitted > 0 {
		rendered = append(rendered, fmt.Sprintf("+%d more", omitted))
	}

	lineHeightPx := size * opts.LineHeight
	colW := columnWidth(box, opts, cols)

	columns := make([]Column, 0, cols)
	for i := 0; i < cols && i*perCol < len(rendered); i++ {
		end := (i + 1) * perCol
		if end > len(rendered) {
			end = len(rendered)
		}
		columns = append(columns, Column{
			X:     box.X + float64(i)*(colW+opts.Gap),
			Y:     box.Y + size,
			Lines: rendered[i*perCol : end],
		})
	}

	return Result{
		Columns:      columns,
		FontSize:     size,
		ColumnCount:  cols,
		Rendered:     len(lines),
		Omitted:      omitted,
		LineHeightPx: lineHeightPx,
	}
}
