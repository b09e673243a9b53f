package textflow

import (
	"fmt"
	"strings"

	"github.com/smallbiznis/memento/internal/memento/domain"
)

// TrackLine renders one tracklist entry as "NN. Artist – Title (Mix)".
// Numbering is 1-based and zero-padded to two digits.
func TrackLine(index int, t domain.Track) string {
	parts := make([]string, 0, 2)
	if artist := strings.TrimSpace(t.Artist); artist != "" {
		parts = append(parts, artist)
	}
	if title := strings.TrimSpace(t.Title); title != "" {
		parts = append(parts, title)
	}
	line := strings.Join(parts, " – ")
	if mix := strings.TrimSpace(t.Mix); mix != "" {
		line += " (" + mix + ")"
	}
	return fmt.Sprintf("%02d. %s", index+1, line)
}

// TrackLines renders the whole tracklist preserving insertion order.
func TrackLines(tracks []domain.Track) []string {
	lines := make([]string, len(tracks))
	for i, t := range tracks {
		lines[i] = TrackLine(i, t)
	}
	return lines
}

// Ellipsize truncates to maxChars runes, ending with an ellipsis.
func Ellipsize(input string, maxChars int) string {
	runes := []rune(input)
	if len(runes) <= maxChars {
		return input
	}
	if maxChars < 1 {
		return "…"
	}
	return strings.TrimRight(string(runes[:maxChars-1]), " ") + "…"
}
