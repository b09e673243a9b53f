package svg

import (
	"fmt"
	"strings"
)

// Fit mirrors CSS object-fit for embedded images.
type Fit string

const (
	FitCover   Fit = "cover"
	FitContain Fit = "contain"
)

func (f Fit) preserveAspectRatio() string {
	if f == FitContain {
		return "xMidYMid meet"
	}
	return "xMidYMid slice"
}

// ClipRect emits a clipPath containing a rectangle, optionally rounded.
func ClipRect(id string, x, y, w, h, radius float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<clipPath id="%s">`, id)
	fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s"`, trimFloat(x), trimFloat(y), trimFloat(w), trimFloat(h))
	if radius > 0 {
		fmt.Fprintf(&b, ` rx="%s" ry="%s"`, trimFloat(radius), trimFloat(radius))
	}
	b.WriteString("/></clipPath>")
	return b.String()
}

// Image is an embedded raster reference. Href is expected to be a data URI
// so the document stays self-contained.
type Image struct {
	Href     string
	X, Y     float64
	W, H     float64
	Fit      Fit
	ClipID   string
	FilterID string
	// Rotate spins the image about the rectangle center, in degrees.
	Rotate float64
}

func (i Image) String() string {
	var b strings.Builder
	b.WriteString("<g")
	if i.ClipID != "" {
		fmt.Fprintf(&b, ` clip-path="url(#%s)"`, i.ClipID)
	}
	if i.Rotate != 0 {
		cx := i.X + i.W/2
		cy := i.Y + i.H/2
		fmt.Fprintf(&b, ` transform="rotate(%s %s %s)"`, trimFloat(i.Rotate), trimFloat(cx), trimFloat(cy))
	}
	b.WriteString(">")
	fmt.Fprintf(&b, `<image x="%s" y="%s" width="%s" height="%s" preserveAspectRatio="%s"`,
		trimFloat(i.X), trimFloat(i.Y), trimFloat(i.W), trimFloat(i.H), i.Fit.preserveAspectRatio())
	if i.FilterID != "" {
		fmt.Fprintf(&b, ` filter="url(#%s)"`, i.FilterID)
	}
	fmt.Fprintf(&b, ` xlink:href="%s"/>`, i.Href)
	b.WriteString("</g>")
	return b.String()
}

// ClippedImage emits an image element clipped by clipID, optionally rotated
// about the rectangle center.
func ClippedImage(href, clipID string, x, y, w, h, rotate float64, fit Fit) string {
	return Image{Href: href, X: x, Y: y, W: w, H: h, Fit: fit, ClipID: clipID, Rotate: rotate}.String()
}

// BlurFilter emits a gaussian blur filter definition.
func BlurFilter(id string, stdDeviation float64) string {
	return fmt.Sprintf(`<filter id="%s"><feGaussianBlur in="SourceGraphic" stdDeviation="%s"/></filter>`, id, trimFloat(stdDeviation))
}

// DimRect emits a full-area black rectangle at the given opacity.
func DimRect(opacity float64) string {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return fmt.Sprintf(`<rect width="100%%" height="100%%" fill="black" fill-opacity="%s"/>`, trimFloat(opacity))
}
