package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/smallbiznis/memento/internal/memento/domain"
	"github.com/smallbiznis/memento/internal/observability/logger"
	"go.uber.org/zap"
)

const maxPhotoBytes = 20 << 20

// Photo is a resolved poster photo: decoded pixels for color estimation
// plus the data URI embedded into the overlay document. Both fields are
// zero when the request carried no usable photo.
type Photo struct {
	Image image.Image
	Href  string
}

// PhotoLoader resolves the photo reference of a render request. Inline
// data URLs are strict; a malformed one fails the render. Remote URLs are
// best-effort; any fetch problem degrades to a photo-less poster.
type PhotoLoader struct {
	client  *http.Client
	log     *zap.Logger
	timeout time.Duration
}

func NewPhotoLoader(client *http.Client, log *zap.Logger, timeout time.Duration) *PhotoLoader {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &PhotoLoader{client: client, log: log.Named("memento.photo"), timeout: timeout}
}

// Load resolves p. The inline form wins when both are set.
func (l *PhotoLoader) Load(ctx context.Context, p domain.Photo) (Photo, error) {
	if strings.TrimSpace(p.DataURL) != "" {
		return l.fromDataURL(strings.TrimSpace(p.DataURL))
	}
	if strings.TrimSpace(p.URL) != "" {
		return l.fromURL(ctx, strings.TrimSpace(p.URL)), nil
	}
	return Photo{}, nil
}

func (l *PhotoLoader) fromDataURL(raw string) (Photo, error) {
	p, err := parseDataURL(raw)
	if err != nil {
		l.log.Warn("inline photo rejected",
			zap.String("photo", logger.SummarizeDataURI(raw)), zap.Error(err))
		return Photo{}, err
	}
	return p, nil
}

func parseDataURL(raw string) (Photo, error) {
	if !strings.HasPrefix(raw, "data:") {
		return Photo{}, fmt.Errorf("%w: missing data scheme", domain.ErrInvalidPhoto)
	}
	if strings.Count(raw, ",") != 1 {
		return Photo{}, fmt.Errorf("%w: malformed data url", domain.ErrInvalidPhoto)
	}
	header, payload, _ := strings.Cut(raw, ",")
	if !strings.Contains(header, ";base64") {
		return Photo{}, fmt.Errorf("%w: payload is not base64", domain.ErrInvalidPhoto)
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Photo{}, fmt.Errorf("%w: %v", domain.ErrInvalidPhoto, err)
	}
	img, _, err := image.Decode(bytes.NewReader(decoded))
	if err != nil {
		return Photo{}, fmt.Errorf("%w: undecodable image payload", domain.ErrInvalidPhoto)
	}
	return Photo{Image: img, Href: raw}, nil
}

func (l *PhotoLoader) fromURL(ctx context.Context, url string) Photo {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		l.log.Warn("photo request build failed", zap.String("url", url), zap.Error(err))
		return Photo{}
	}
	resp, err := l.client.Do(req)
	if err != nil {
		l.log.Warn("photo fetch failed", zap.String("url", url), zap.Error(err))
		return Photo{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.log.Warn("photo fetch rejected", zap.String("url", url), zap.Int("status", resp.StatusCode))
		return Photo{}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPhotoBytes+1))
	if err != nil {
		l.log.Warn("photo read failed", zap.String("url", url), zap.Error(err))
		return Photo{}
	}
	if len(data) > maxPhotoBytes {
		l.log.Warn("photo too large", zap.String("url", url), zap.Int("limit_bytes", maxPhotoBytes))
		return Photo{}
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		l.log.Warn("photo decode failed", zap.String("url", url), zap.Error(err))
		return Photo{}
	}

	href := "data:image/" + format + ";base64," + base64.StdEncoding.EncodeToString(data)
	return Photo{Image: img, Href: href}
}
