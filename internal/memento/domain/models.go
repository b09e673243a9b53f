package domain

// TemplateID selects a poster template from the fixed catalog.
type TemplateID string

const (
	TemplatePosterBold      TemplateID = "poster-bold"
	TemplateMinimalCard     TemplateID = "minimal-card"
	TemplateNeonGrid        TemplateID = "neon-grid"
	TemplateStoryVertical   TemplateID = "story-vertical"
	TemplatePolaroidCollage TemplateID = "polaroid-collage"
)

// SubtitleVariant picks one of the two fixed subtitle phrasings.
type SubtitleVariant string

const (
	SubtitleFrom       SubtitleVariant = "from"
	SubtitleAfterparty SubtitleVariant = "afterparty"
)

// Label returns the subtitle text rendered on the poster.
func (v SubtitleVariant) Label() string {
	if v == SubtitleAfterparty {
		return "DJ Ziff Afterparty Setlist"
	}
	return "From DJ Ziff"
}

// Track is one entry of the poster tracklist; insertion order is display order.
type Track struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
	Mix    string `json:"mix,omitempty"`
}

// Photo references the poster photo either as an embedded data URI or a
// fetchable URL. Both may be empty; the render then proceeds without a
// photo layer.
type Photo struct {
	DataURL string `json:"dataUrl,omitempty"`
	URL     string `json:"url,omitempty"`
}

// RenderRequest is the complete input to one poster composition call.
// It is never mutated by the engine.
type RenderRequest struct {
	TemplateID      TemplateID      `json:"templateId"`
	PartyName       string          `json:"partyName"`
	SubtitleVariant SubtitleVariant `json:"subtitleVariant"`
	Date            string          `json:"date,omitempty"`
	Location        string          `json:"location,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Tracks          []Track         `json:"tracks"`
	Photo           Photo           `json:"photo"`
	Preview         bool            `json:"preview,omitempty"`
	ShowLogo        bool            `json:"showLogo,omitempty"`
}

// MaxTracks is the single enforced tracklist bound for final renders.
const MaxTracks = 100
