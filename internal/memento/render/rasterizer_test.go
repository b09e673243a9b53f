package render

import (
	"testing"

	"github.com/smallbiznis/memento/internal/memento/svg"
)

func TestOksvgRasterizeRect(t *testing.T) {
	r := OksvgRasterizer{}
	doc := svg.Header(10, 10) + `<rect width="10" height="10" fill="#ffffff"/>` + svg.Footer()
	img, err := r.Rasterize(doc, 20, 20)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("bounds %v", b)
	}
}

func TestOksvgRasterizeMalformedXML(t *testing.T) {
	r := OksvgRasterizer{}
	for _, doc := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"><rect`, // truncated element
		`<svg><svg><svg`,                                // unclosed nesting
	} {
		if _, err := r.Rasterize(doc, 10, 10); err == nil {
			t.Fatalf("expected parse error for %q", doc)
		}
	}
}

func TestOksvgRasterizeInvalidTarget(t *testing.T) {
	r := OksvgRasterizer{}
	doc := svg.Header(10, 10) + svg.Footer()
	if _, err := r.Rasterize(doc, 0, 10); err == nil {
		t.Fatalf("expected error for zero width")
	}
}
