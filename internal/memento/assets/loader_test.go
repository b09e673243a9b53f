package assets

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestFontsMissingDir(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "missing"), zap.NewNop())
	if faces := l.Fonts(); len(faces) != 0 {
		t.Fatalf("expected no faces, got %d", len(faces))
	}
	if _, ok := l.Logo(); ok {
		t.Fatalf("expected no logo")
	}
}

func TestLogoPrefersVector(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "logo.svg"), []byte("<svg/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "logo.png"), []byte{0x89, 'P', 'N', 'G'}, 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(dir, zap.NewNop())
	uri, ok := l.Logo()
	if !ok {
		t.Fatalf("expected logo")
	}
	if !strings.HasPrefix(uri, "data:image/svg+xml;base64,") {
		t.Fatalf("expected svg data URI, got %q", uri)
	}
	payload := strings.TrimPrefix(uri, "data:image/svg+xml;base64,")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || string(decoded) != "<svg/>" {
		t.Fatalf("payload round-trip failed: %v %q", err, decoded)
	}
}

func TestLogoRasterFallback(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "logo.png"), []byte{0x89, 'P', 'N', 'G'}, 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(dir, zap.NewNop())
	uri, ok := l.Logo()
	if !ok || !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("expected png data URI fallback, got ok=%v uri=%q", ok, uri)
	}
}

func TestReadCachesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(dir, zap.NewNop())
	if _, ok := l.Logo(); !ok {
		t.Fatalf("expected logo")
	}

	// Removing the file behind the cache keeps the entry alive.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if _, ok := l.Logo(); !ok {
		t.Fatalf("expected cached logo after file removal")
	}
}
