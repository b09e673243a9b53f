package textflow

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Family selects which of the two poster fonts to measure against.
type Family int

const (
	FamilySans Family = iota
	FamilyMono
)

// Measurer measures text width in pixels against parsed font binaries.
// Preview and final renders must share one measurer so size choices agree.
type Measurer struct {
	sans *opentype.Font
	mono *opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	family Family
	size   int
}

// NewMeasurer parses the provided TTF payloads. Either payload may be nil;
// the embedded Go fonts stand in so measurement works without disk assets.
func NewMeasurer(sansTTF, monoTTF []byte) (*Measurer, error) {
	if len(sansTTF) == 0 {
		sansTTF = goregular.TTF
	}
	if len(monoTTF) == 0 {
		monoTTF = gomono.TTF
	}

	sans, err := opentype.Parse(sansTTF)
	if err != nil {
		return nil, fmt.Errorf("parse sans font: %w", err)
	}
	mono, err := opentype.Parse(monoTTF)
	if err != nil {
		return nil, fmt.Errorf("parse mono font: %w", err)
	}

	return &Measurer{
		sans:  sans,
		mono:  mono,
		faces: make(map[faceKey]font.Face),
	}, nil
}

// Default returns a measurer backed by the embedded Go fonts.
func Default() *Measurer {
	m, err := NewMeasurer(nil, nil)
	if err != nil {
		// The embedded fonts always parse.
		panic(err)
	}
	return m
}

// Width returns the advance width of text at the given size in pixels.
func (m *Measurer) Width(family Family, size float64, text string) float64 {
	face, err := m.face(family, size)
	if err != nil {
		return 0
	}
	return float64(font.MeasureString(face, text).Ceil())
}

func (m *Measurer) face(family Family, size float64) (font.Face, error) {
	key := faceKey{family: family, size: int(size)}

	m.mu.Lock()
	defer m.mu.Unlock()
	if face, ok := m.faces[key]; ok {
		return face, nil
	}

	parsed := m.sans
	if family == FamilyMono {
		parsed = m.mono
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(key.size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	m.faces[key] = face
	return face, nil
}
