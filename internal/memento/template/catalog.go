package template

import (
	"fmt"
	"strings"

	"github.com/smallbiznis/memento/internal/memento/domain"
	"github.com/smallbiznis/memento/internal/memento/svg"
	"github.com/smallbiznis/memento/internal/memento/textflow"
)

var catalog = map[domain.TemplateID]Template{
	domain.TemplatePosterBold:      posterBold(),
	domain.TemplateMinimalCard:     minimalCard(),
	domain.TemplateNeonGrid:        neonGrid(),
	domain.TemplateStoryVertical:   storyVertical(),
	domain.TemplatePolaroidCollage: polaroidCollage(),
}

func posterBold() Template {
	t := Template{
		ID:        domain.TemplatePosterBold,
		Width:     1080,
		Height:    1350,
		Placement: PhotoPlacement{Mode: PlacementCover},
	}
	t.Overlay = func(in OverlayInput) string {
		var b strings.Builder
		b.WriteString(photoLayer(t, in))
		b.WriteString("<defs>" + tintGradient("tint", in.DominantColor) + "</defs>")
		b.WriteString(`<rect width="100%" height="100%" fill="url(#tint)"/>`)
		b.WriteString(titleText(in, 64, 120, 952, 64, 36, "#fff"))
		b.WriteString(subtitleText(in, 64, 172, 24, "#fff", 0.9))
		b.WriteString(trackColumns(in,
			textflow.Box{X: 64, Y: 208, Width: 952, Height: 1020},
			textflow.Options{BaseFontSize: 20, MinFontSize: 12, LineHeight: 1.4, Gap: 48, MaxColumns: 2, MinColumnWidth: 420},
			"#fff", 0.95))
		b.WriteString(footerText(in, 64, 1290, 20, "#fff", 0.9))
		b.WriteString(notesText(in, 64, 1322, 18, "#fff", 0.75))
		b.WriteString(logoBadge(in, 920, 48, 96))
		return b.String()
	}
	return t
}

func minimalCard() Template {
	t := Template{
		ID:        domain.TemplateMinimalCard,
		Width:     1080,
		Height:    1080,
		Placement: PhotoPlacement{Mode: PlacementCover},
		Effects:   &BackgroundEffects{Blur: 18, Dim: 0.45},
	}
	t.Overlay = func(in OverlayInput) string {
		var b strings.Builder
		b.WriteString(photoLayer(t, in))
		b.WriteString(`<rect x="80" y="120" width="920" height="840" rx="24" fill="#fff" fill-opacity="0.92"/>`)
		b.WriteString(titleText(in, 120, 200, 840, 56, 32, "#111"))
		b.WriteString(subtitleText(in, 120, 246, 22, "#444", 0))
		b.WriteString(trackColumns(in,
			textflow.Box{X: 120, Y: 270, Width: 840, Height: 620},
			textflow.Options{BaseFontSize: 20, MinFontSize: 12, LineHeight: 1.5, Gap: 40, MaxColumns: 2, MinColumnWidth: 380},
			"#111", 0))
		b.WriteString(footerText(in, 120, 930, 20, "#444", 0))
		b.WriteString(logoBadge(in, 912, 868, 72))
		return b.String()
	}
	return t
}

func neonGrid() Template {
	t := Template{
		ID:     domain.TemplateNeonGrid,
		Width:  1600,
		Height: 900,
		Placement: PhotoPlacement{
			Mode:         PlacementRect,
			X:            950,
			Y:            140,
			Width:        600,
			Height:       620,
			Fit:          svg.FitCover,
			Rotate:       -2,
			CornerRadius: 16,
		},
	}
	t.Background = func(BackgroundInput) string {
		var b strings.Builder
		b.WriteString("<defs>")
		b.WriteString(svg.LinearGradient("bg", []svg.Stop{
			{Offset: 0, Color: "#0f172a"},
			{Offset: 1, Color: "#1e1b4b"},
		}))
		b.WriteString("</defs>")
		b.WriteString(`<rect width="100%" height="100%" fill="url(#bg)"/>`)
		for i := 0; i < 20; i++ {
			x := i * 80
			fmt.Fprintf(&b, `<line x1="%d" y1="0" x2="%d" y2="900" stroke="#38bdf8" stroke-opacity="0.12"/>`, x, x)
		}
		for i := 0; i < 12; i++ {
			y := i * 75
			fmt.Fprintf(&b, `<line x1="0" y1="%d" x2="1600" y2="%d" stroke="#38bdf8" stroke-opacity="0.12"/>`, y, y)
		}
		return b.String()
	}
	t.Overlay = func(in OverlayInput) string {
		var b strings.Builder
		b.WriteString(photoLayer(t, in))
		b.WriteString(titleText(in, 80, 120, 820, 64, 36, "#e0e8ff"))
		b.WriteString(subtitleText(in, 80, 172, 22, "#c7d2fe", 0))
		b.WriteString(trackColumns(in,
			textflow.Box{X: 80, Y: 210, Width: 820, Height: 620},
			textflow.Options{BaseFontSize: 20, MinFontSize: 12, LineHeight: 1.4, Gap: 48, MaxColumns: 2, MinColumnWidth: 360},
			"#a5b4fc", 0))
		b.WriteString(footerText(in, 80, 868, 20, "#c7d2fe", 0.85))
		b.WriteString(logoBadge(in, 1424, 724, 96))
		return b.String()
	}
	return t
}

func storyVertical() Template {
	t := Template{
		ID:        domain.TemplateStoryVertical,
		Width:     1080,
		Height:    1920,
		Placement: PhotoPlacement{Mode: PlacementCover},
	}
	t.Overlay = func(in OverlayInput) string {
		var b strings.Builder
		b.WriteString(photoLayer(t, in))
		fmt.Fprintf(&b, `<rect x="0" y="0" width="1080" height="420" fill="%s"/>`, svg.RGBA(0, 0, 0, 0.55))
		fmt.Fprintf(&b, `<rect x="0" y="1320" width="1080" height="600" rx="24" fill="%s"/>`, svg.RGBA(17, 17, 17, 0.6))
		b.WriteString(titleText(in, 64, 120, 952, 60, 34, "#fff"))
		b.WriteString(subtitleText(in, 64, 172, 24, "#fff", 0.9))
		b.WriteString(trackColumns(in,
			textflow.Box{X: 64, Y: 1360, Width: 952, Height: 440},
			textflow.Options{BaseFontSize: 22, MinFontSize: 12, LineHeight: 1.4, Gap: 48, MaxColumns: 2, MinColumnWidth: 420},
			"#fff", 0))
		b.WriteString(footerText(in, 64, 1860, 20, "#fff", 0.85))
		b.WriteString(logoBadge(in, 920, 48, 96))
		return b.String()
	}
	return t
}

func polaroidCollage() Template {
	t := Template{
		ID:     domain.TemplatePolaroidCollage,
		Width:  1240,
		Height: 1548,
		Placement: PhotoPlacement{
			Mode:         PlacementRect,
			X:            90,
			Y:            120,
			Width:        560,
			Height:       720,
			Fit:          svg.FitCover,
			Rotate:       -3,
			CornerRadius: 8,
		},
	}
	t.Overlay = func(in OverlayInput) string {
		var b strings.Builder
		b.WriteString(`<rect width="100%" height="100%" fill="#fff"/>`)
		b.WriteString(`<rect x="40" y="40" width="1160" height="1468" fill="#f8fafc" stroke="#e2e8f0"/>`)
		// Mat stays visible behind the tilted print and when no photo came in.
		b.WriteString(`<rect x="80" y="120" width="560" height="720" fill="#e5e7eb"/>`)
		b.WriteString(photoLayer(t, in))
		b.WriteString(subtitleText(in, 100, 888, 24, "#111", 0))
		b.WriteString(titleText(in, 100, 944, 560, 56, 30, "#111"))
		b.WriteString(notesText(in, 100, 994, 20, "#334155", 0))
		b.WriteString(trackColumns(in,
			textflow.Box{X: 760, Y: 150, Width: 400, Height: 1250},
			textflow.Options{BaseFontSize: 18, MinFontSize: 11, LineHeight: 1.4, MaxColumns: 1},
			"#111", 0))
		b.WriteString(footerText(in, 100, 1460, 20, "#334155", 0))
		b.WriteString(logoBadge(in, 1080, 1388, 84))
		return b.String()
	}
	return t
}
