// Package assets reads the optional logo and font files shipped next to
// the binary. Every read is best-effort: a missing file never fails a
// render, it only drops the corresponding poster element.
package assets

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"time"

	"github.com/smallbiznis/memento/internal/cache"
	"go.uber.org/zap"
)

const (
	sansFontPath = "fonts/SpaceGrotesk-Variable.ttf"
	monoFontPath = "fonts/JetBrainsMono-Variable.ttf"
	logoSVGPath  = "logo.svg"
	logoPNGPath  = "logo.png"

	cacheTTL = 5 * time.Minute
)

// FontFace is a loaded font binary plus its data URI form for embedding.
type FontFace struct {
	Family  string
	Format  string
	DataURI string
	TTF     []byte
}

// Loader reads poster assets from a fixed directory layout.
type Loader struct {
	dir   string
	log   *zap.Logger
	cache cache.Cache[string, []byte]
}

// NewLoader builds a loader rooted at dir.
func NewLoader(dir string, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	var c cache.Cache[string, []byte] = cache.NewTTLCache[string, []byte]()
	if dir == "" {
		c = cache.NoopCache[string, []byte]{}
	}
	return &Loader{
		dir:   dir,
		log:   log.Named("memento.assets"),
		cache: c,
	}
}

// Fonts returns the embeddable font faces found on disk. Missing files
// yield a shorter (possibly empty) slice, never an error.
func (l *Loader) Fonts() []FontFace {
	faces := make([]FontFace, 0, 2)
	if data, ok := l.read(sansFontPath); ok {
		faces = append(faces, FontFace{
			Family:  "Space Grotesk",
			Format:  "truetype",
			DataURI: "data:font/ttf;base64," + base64.StdEncoding.EncodeToString(data),
			TTF:     data,
		})
	}
	if data, ok := l.read(monoFontPath); ok {
		faces = append(faces, FontFace{
			Family:  "JetBrains Mono",
			Format:  "truetype",
			DataURI: "data:font/ttf;base64," + base64.StdEncoding.EncodeToString(data),
			TTF:     data,
		})
	}
	return faces
}

// Logo returns the watermark as a data URI, preferring the vector form.
func (l *Loader) Logo() (string, bool) {
	if data, ok := l.read(logoSVGPath); ok {
		return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(data), true
	}
	if data, ok := l.read(logoPNGPath); ok {
		return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), true
	}
	return "", false
}

func (l *Loader) read(rel string) ([]byte, bool) {
	path := filepath.Join(l.dir, rel)
	if data, ok := l.cache.Get(path); ok {
		return data, true
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.log.Warn("asset read failed", zap.String("path", path), zap.Error(err))
		}
		return nil, false
	}
	l.cache.Set(path, data, cacheTTL)
	return data, true
}
