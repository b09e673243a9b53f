// Command genassets writes a deterministic sample photo and logo into the
// asset directory, so local development works without real event photos.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

func main() {
	out := flag.String("out", "public", "output directory")
	flag.Parse()

	if err := os.MkdirAll(filepath.Join(*out, "fonts"), 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	photoPath := filepath.Join(*out, "sample-photo.png")
	if err := drawPhoto(photoPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logoPath := filepath.Join(*out, "logo.png")
	if err := drawLogo(logoPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("wrote", photoPath)
	fmt.Println("wrote", logoPath)
}

// drawPhoto paints a fixed club scene: gradient sky, light beams and a
// crowd silhouette. No randomness, so repeated runs are byte-identical.
func drawPhoto(path string) error {
	const w, h = 1200, 900
	dc := gg.NewContext(w, h)

	grad := gg.NewLinearGradient(0, 0, 0, h)
	grad.AddColorStop(0, color.RGBA{R: 24, G: 28, B: 64, A: 255})
	grad.AddColorStop(1, color.RGBA{R: 96, G: 32, B: 88, A: 255})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	for i := 0; i < 12; i++ {
		dc.SetRGBA(0.9, 0.8, 1, 0.08)
		dc.DrawRectangle(float64(i)*100, 0, 36, h)
		dc.Fill()
	}

	for i := 0; i < 24; i++ {
		cx := 25 + float64(i)*50
		r := 28 + float64((i*7)%20)
		dc.SetRGBA(0, 0, 0, 0.85)
		dc.DrawCircle(cx, h-r/2, r*1.6)
		dc.Fill()
	}

	return dc.SavePNG(path)
}

// drawLogo paints the turntable mark used as the poster watermark.
func drawLogo(path string) error {
	const size = 256
	dc := gg.NewContext(size, size)

	dc.SetHexColor("#111827")
	dc.DrawCircle(128, 128, 120)
	dc.Fill()

	dc.SetHexColor("#38bdf8")
	dc.SetLineWidth(10)
	dc.DrawCircle(128, 128, 96)
	dc.Stroke()

	dc.SetHexColor("#e2e8f0")
	dc.SetLineWidth(14)
	dc.DrawLine(128, 128, 196, 60)
	dc.Stroke()
	dc.DrawCircle(128, 128, 16)
	dc.Fill()

	return dc.SavePNG(path)
}
