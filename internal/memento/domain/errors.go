package domain

import "errors"

var (
	// Terminal engine errors. Each aborts the render with no image.
	ErrUnknownTemplate = errors.New("unknown_template")
	ErrInvalidPhoto    = errors.New("invalid_photo")
	ErrEncodeFailed    = errors.New("encode_failed")
	ErrRenderFailed    = errors.New("render_failed")

	// Caller-validation errors, rejected before the engine runs.
	ErrPartyNameRequired = errors.New("party_name_required")
	ErrTracksRequired    = errors.New("tracks_required")
	ErrTooManyTracks     = errors.New("too_many_tracks")
)
