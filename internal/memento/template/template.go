// Package template holds the fixed poster catalog. Each entry is a
// declarative record of canvas geometry plus pure generator functions;
// the catalog never changes after process start.
package template

import (
	"github.com/smallbiznis/memento/internal/memento/domain"
	"github.com/smallbiznis/memento/internal/memento/svg"
	"github.com/smallbiznis/memento/internal/memento/textflow"
)

// PlacementMode distinguishes full-canvas photos from framed ones.
type PlacementMode string

const (
	PlacementCover PlacementMode = "cover"
	PlacementRect  PlacementMode = "rect"
)

// PhotoPlacement declares where the photo lands on the canvas, in
// template (1x) coordinates.
type PhotoPlacement struct {
	Mode         PlacementMode
	X, Y         float64
	Width        float64
	Height       float64
	Fit          svg.Fit
	Rotate       float64
	CornerRadius float64
}

// BackgroundEffects soften a cover-mode photo behind the text.
type BackgroundEffects struct {
	Blur float64
	Dim  float64
}

// BackgroundInput feeds the optional decorative base layer.
type BackgroundInput struct {
	PartyName string
	Subtitle  string
	Date      string
	Location  string
	Notes     string
}

// OverlayInput feeds the overlay generator. All derived values are
// computed fresh by the orchestrator for every render.
type OverlayInput struct {
	PartyName string
	Subtitle  string
	Date      string
	Location  string
	Notes     string
	Tracks    []domain.Track

	// DominantColor is the "#rrggbb" estimate of the base canvas, or ""
	// when estimation failed.
	DominantColor string
	// PhotoHref is the photo as a data URI, or "" when no photo was given.
	PhotoHref string
	// LogoHref is the watermark as a data URI, or "" when absent/disabled.
	LogoHref string

	Measure *textflow.Measurer
}

// Template is one catalog entry.
type Template struct {
	ID     domain.TemplateID
	Width  int
	Height int

	Placement PhotoPlacement
	Effects   *BackgroundEffects

	// Background draws a decorative base layer independent of the photo.
	Background func(BackgroundInput) string
	// Overlay draws text, decorative marks and the embedded photo.
	Overlay func(OverlayInput) string
}

// Lookup resolves a template id against the catalog.
func Lookup(id domain.TemplateID) (Template, bool) {
	t, ok := catalog[id]
	return t, ok
}

// IDs lists the catalog in a stable order.
func IDs() []domain.TemplateID {
	return []domain.TemplateID{
		domain.TemplatePosterBold,
		domain.TemplateMinimalCard,
		domain.TemplateNeonGrid,
		domain.TemplateStoryVertical,
		domain.TemplatePolaroidCollage,
	}
}
