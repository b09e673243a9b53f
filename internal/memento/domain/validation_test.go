package domain

import (
	"errors"
	"testing"
)

func finalRequest() RenderRequest {
	return RenderRequest{
		TemplateID: TemplatePosterBold,
		PartyName:  "Warehouse Sessions",
		Tracks:     []Track{{Artist: "A", Title: "B"}},
	}
}

func TestValidateFinal(t *testing.T) {
	if err := ValidateFinal(finalRequest()); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	req := finalRequest()
	req.PartyName = "   "
	if err := ValidateFinal(req); !errors.Is(err, ErrPartyNameRequired) {
		t.Fatalf("blank party name: %v", err)
	}

	req = finalRequest()
	req.Tracks = nil
	if err := ValidateFinal(req); !errors.Is(err, ErrTracksRequired) {
		t.Fatalf("no tracks: %v", err)
	}

	req = finalRequest()
	req.Tracks = make([]Track, MaxTracks+1)
	if err := ValidateFinal(req); !errors.Is(err, ErrTooManyTracks) {
		t.Fatalf("over limit: %v", err)
	}

	req = finalRequest()
	req.Tracks = make([]Track, MaxTracks)
	if err := ValidateFinal(req); err != nil {
		t.Fatalf("exactly MaxTracks rejected: %v", err)
	}
}

func TestSubtitleLabels(t *testing.T) {
	if got := SubtitleFrom.Label(); got != "From DJ Ziff" {
		t.Fatalf("from label %q", got)
	}
	if got := SubtitleAfterparty.Label(); got != "DJ Ziff Afterparty Setlist" {
		t.Fatalf("afterparty label %q", got)
	}
	if got := SubtitleVariant("bogus").Label(); got != "From DJ Ziff" {
		t.Fatalf("unknown variant label %q", got)
	}
}
