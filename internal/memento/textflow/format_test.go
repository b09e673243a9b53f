package textflow

import (
	"testing"

	"github.com/smallbiznis/memento/internal/memento/domain"
)

func TestTrackLine(t *testing.T) {
	cases := []struct {
		index int
		track domain.Track
		want  string
	}{
		{0, domain.Track{Artist: "Artist", Title: "Title"}, "01. Artist – Title"},
		{8, domain.Track{Artist: "Artist", Title: "Title", Mix: "Club Mix"}, "09. Artist – Title (Club Mix)"},
		{9, domain.Track{Artist: "Artist", Title: "Title"}, "10. Artist – Title"},
		{2, domain.Track{Title: "Title Only"}, "03. Title Only"},
	}
	for _, tc := range cases {
		if got := TrackLine(tc.index, tc.track); got != tc.want {
			t.Errorf("TrackLine(%d) = %q, want %q", tc.index, got, tc.want)
		}
	}
}

func TestTrackLinesPreserveOrder(t *testing.T) {
	tracks := []domain.Track{
		{Artist: "B", Title: "Second"},
		{Artist: "A", Title: "First"},
	}
	lines := TrackLines(tracks)
	if lines[0] != "01. B – Second" || lines[1] != "02. A – First" {
		t.Fatalf("insertion order not preserved: %v", lines)
	}
}

func TestEllipsize(t *testing.T) {
	if got := Ellipsize("short", 10); got != "short" {
		t.Fatalf("unexpected %q", got)
	}
	got := Ellipsize("a much longer party name", 10)
	if len([]rune(got)) > 10 {
		t.Fatalf("result too long: %q", got)
	}
	if got[len(got)-len("…"):] != "…" {
		t.Fatalf("expected trailing ellipsis, got %q", got)
	}
}
