// Package svg assembles the vector overlay documents the templates emit.
// The documents embed photos, fonts and clip paths, so the builder writes
// SVG text directly instead of going through a canvas abstraction.
package svg

import (
	"fmt"
	"sort"
	"strings"
)

// Stop is one gradient stop. Offset is 0..1.
type Stop struct {
	Offset  float64
	Color   string
	Opacity float64
	// HasOpacity distinguishes "no stop-opacity attribute" from 0.
	HasOpacity bool
}

// Escape escapes text for inclusion in SVG attribute or element content.
func Escape(input string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(input)
}

// Header opens an SVG document at the given nominal size.
func Header(width, height int) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>`+"\n"+
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)
}

// Footer closes the document.
func Footer() string { return "</svg>" }

// LinearGradient emits a vertical gradient definition with stops sorted by
// offset.
func LinearGradient(id string, stops []Stop) string {
	ordered := append([]Stop(nil), stops...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Offset < ordered[j].Offset })

	var b strings.Builder
	fmt.Fprintf(&b, `<linearGradient id="%s" x1="0" y1="0" x2="0" y2="1">`, id)
	for _, s := range ordered {
		fmt.Fprintf(&b, `<stop offset="%d%%" stop-color="%s"`, int(s.Offset*100), s.Color)
		if s.HasOpacity {
			fmt.Fprintf(&b, ` stop-opacity="%s"`, trimFloat(s.Opacity))
		}
		b.WriteString("/>")
	}
	b.WriteString("</linearGradient>")
	return b.String()
}

// RGBA formats a translucent fill value.
func RGBA(r, g, b uint8, a float64) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, trimFloat(a))
}

// FontFace is one embedded font declaration.
type FontFace struct {
	Family  string
	Format  string
	DataURI string
}

// FontFaceStyle renders a <style> block of @font-face rules backed by
// inline data URIs, so rasterization never depends on installed fonts.
func FontFaceStyle(faces []FontFace) string {
	if len(faces) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<style>")
	for _, face := range faces {
		format := face.Format
		if format == "" {
			format = "truetype"
		}
		fmt.Fprintf(&b, `@font-face{font-family:%q;src:url(%s) format(%q);}`, face.Family, face.DataURI, format)
	}
	b.WriteString("</style>")
	return b.String()
}

// InjectFontFaces splices a font style block immediately after the opening
// svg tag. Documents without a root element are returned unchanged.
func InjectFontFaces(doc string, faces []FontFace) string {
	style := FontFaceStyle(faces)
	if style == "" {
		return doc
	}
	open := strings.Index(doc, "<svg")
	if open < 0 {
		return doc
	}
	end := strings.Index(doc[open:], ">")
	if end < 0 {
		return doc
	}
	at := open + end + 1
	return doc[:at] + style + doc[at:]
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
