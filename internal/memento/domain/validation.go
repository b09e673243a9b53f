package domain

import "strings"

// ValidateFinal applies the strict boundary checks for final renders.
// Previews are rendered without these checks so the editor can show
// placeholder state.
func ValidateFinal(req RenderRequest) error {
	if strings.TrimSpace(req.PartyName) == "" {
		return ErrPartyNameRequired
	}
	if len(req.Tracks) < 1 {
		return ErrTracksRequired
	}
	if len(req.Tracks) > MaxTracks {
		return ErrTooManyTracks
	}
	return nil
}
