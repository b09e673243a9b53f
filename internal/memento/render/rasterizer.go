package render

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterizer turns the overlay document into pixels at the given size.
type Rasterizer interface {
	Rasterize(doc string, width, height int) (image.Image, error)
}

// Rasterizers pairs the primary renderer with its degradation fallback.
// The fallback draws at the template's nominal size only; the composer
// resamples its output up to the target scale.
type Rasterizers struct {
	Primary  Rasterizer
	Fallback Rasterizer
}

// OksvgRasterizer is the pure-Go default. oksvg panics on some malformed
// documents, so the panic is folded into the error return.
type OksvgRasterizer struct{}

func (OksvgRasterizer) Rasterize(doc string, width, height int) (img image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("rasterize: %v", r)
		}
	}()

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rasterize: invalid target %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parse overlay: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)
	return rgba, nil
}
