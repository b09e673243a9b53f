package template

import (
	"fmt"
	"strings"

	"github.com/smallbiznis/memento/internal/memento/svg"
	"github.com/smallbiznis/memento/internal/memento/textflow"
)

const (
	sansFamily = "Space Grotesk, system-ui, sans-serif"
	monoFamily = "JetBrains Mono, ui-monospace, monospace"
)

// tintGradient builds the contrast gradient over the photo. Without a
// color estimate a neutral darkening gradient stands in.
func tintGradient(id, hex string) string {
	if hex == "" {
		return svg.LinearGradient(id, []svg.Stop{
			{Offset: 0, Color: "#000", Opacity: 0.1, HasOpacity: true},
			{Offset: 1, Color: "#000", Opacity: 0.6, HasOpacity: true},
		})
	}
	return svg.LinearGradient(id, []svg.Stop{
		{Offset: 0, Color: hex, Opacity: 0.15, HasOpacity: true},
		{Offset: 1, Color: "#000", Opacity: 0.65, HasOpacity: true},
	})
}

// titleText renders the party name at an auto-shrunk size.
func titleText(in OverlayInput, x, y, maxWidth, base, floor float64, fill string) string {
	size := base
	if in.Measure != nil {
		size = textflow.FitTitleSize(in.Measure, textflow.FamilySans, in.PartyName, maxWidth, base, floor)
	}
	return fmt.Sprintf(`<text x="%g" y="%g" font-family=%q font-size="%g" font-weight="800" fill="%s">%s</text>`,
		x, y, sansFamily, size, fill, svg.Escape(in.PartyName))
}

func subtitleText(in OverlayInput, x, y, size float64, fill string, opacity float64) string {
	return fmt.Sprintf(`<text x="%g" y="%g" font-family=%q font-size="%g" fill="%s"%s>%s</text>`,
		x, y, sansFamily, size, fill, opacityAttr(opacity), svg.Escape(in.Subtitle))
}

// trackColumns flows the tracklist into the given box and renders one
// text element per column.
func trackColumns(in OverlayInput, box textflow.Box, opts textflow.Options, fill string, opacity float64) string {
	if len(in.Tracks) == 0 {
		return ""
	}
	lines := textflow.TrackLines(in.Tracks)
	res := textflow.Flow(lines, box, opts)

	var b strings.Builder
	for _, col := range res.Columns {
		fmt.Fprintf(&b, `<text font-family=%q font-size="%g" fill="%s"%s>`,
			monoFamily, res.FontSize, fill, opacityAttr(opacity))
		for j, line := range col.Lines {
			if j == 0 {
				fmt.Fprintf(&b, `<tspan x="%g" y="%g">%s</tspan>`, col.X, col.Y, svg.Escape(line))
			} else {
				fmt.Fprintf(&b, `<tspan x="%g" dy="%gem">%s</tspan>`, col.X, opts.LineHeight, svg.Escape(line))
			}
		}
		b.WriteString("</text>")
	}
	return b.String()
}

// footerText joins date and location with a dot separator.
func footerText(in OverlayInput, x, y, size float64, fill string, opacity float64) string {
	parts := make([]string, 0, 2)
	if d := strings.TrimSpace(in.Date); d != "" {
		parts = append(parts, d)
	}
	if l := strings.TrimSpace(in.Location); l != "" {
		parts = append(parts, l)
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf(`<text x="%g" y="%g" font-family=%q font-size="%g" fill="%s"%s>%s</text>`,
		x, y, sansFamily, size, fill, opacityAttr(opacity), svg.Escape(strings.Join(parts, " • ")))
}

func notesText(in OverlayInput, x, y, size float64, fill string, opacity float64) string {
	notes := textflow.Ellipsize(strings.TrimSpace(in.Notes), 90)
	if notes == "" {
		return ""
	}
	return fmt.Sprintf(`<text x="%g" y="%g" font-family=%q font-size="%g" fill="%s"%s>%s</text>`,
		x, y, sansFamily, size, fill, opacityAttr(opacity), svg.Escape(notes))
}

// logoBadge embeds the watermark when one was loaded.
func logoBadge(in OverlayInput, x, y, size float64) string {
	if in.LogoHref == "" {
		return ""
	}
	return svg.Image{Href: in.LogoHref, X: x, Y: y, W: size, H: size, Fit: svg.FitContain}.String()
}

// photoLayer embeds the photo according to the template placement. The
// clip path keeps photo, effects and text in one coordinate space.
func photoLayer(t Template, in OverlayInput) string {
	if in.PhotoHref == "" {
		return ""
	}

	var defs, body strings.Builder
	switch t.Placement.Mode {
	case PlacementRect:
		p := t.Placement
		defs.WriteString(svg.ClipRect("photo-clip", p.X, p.Y, p.Width, p.Height, p.CornerRadius))
		body.WriteString(svg.Image{
			Href:   in.PhotoHref,
			X:      p.X,
			Y:      p.Y,
			W:      p.Width,
			H:      p.Height,
			Fit:    p.Fit,
			ClipID: "photo-clip",
			Rotate: p.Rotate,
		}.String())
	default:
		w := float64(t.Width)
		h := float64(t.Height)
		defs.WriteString(svg.ClipRect("photo-clip", 0, 0, w, h, 0))
		filterID := ""
		if t.Effects != nil && t.Effects.Blur > 0 {
			filterID = "photo-blur"
			defs.WriteString(svg.BlurFilter(filterID, t.Effects.Blur))
		}
		body.WriteString(svg.Image{
			Href:     in.PhotoHref,
			X:        0,
			Y:        0,
			W:        w,
			H:        h,
			Fit:      svg.FitCover,
			ClipID:   "photo-clip",
			FilterID: filterID,
		}.String())
		if t.Effects != nil && t.Effects.Dim > 0 {
			body.WriteString(svg.DimRect(t.Effects.Dim))
		}
	}

	return "<defs>" + defs.String() + "</defs>" + body.String()
}

func opacityAttr(opacity float64) string {
	if opacity <= 0 || opacity >= 1 {
		return ""
	}
	return fmt.Sprintf(` opacity="%g"`, opacity)
}
