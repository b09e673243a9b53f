package render

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// EstimateDominantColor downsamples the photo to 32x32 and averages the
// pixels. Templates use the estimate to tint their contrast gradients.
func EstimateDominantColor(img image.Image) string {
	if img == nil || img.Bounds().Empty() {
		return ""
	}

	small := imaging.Resize(img, 32, 32, imaging.Box)
	bounds := small.Bounds()

	var r, g, b, n uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pr, pg, pb, _ := small.At(x, y).RGBA()
			r += uint64(pr >> 8)
			g += uint64(pg >> 8)
			b += uint64(pb >> 8)
			n++
		}
	}
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", uint8(r/n), uint8(g/n), uint8(b/n))
}
