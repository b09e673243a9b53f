// Package render orchestrates one poster composition: resolve the photo,
// build the overlay document, rasterize it and encode the PNG.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/smallbiznis/memento/internal/clock"
	"github.com/smallbiznis/memento/internal/memento/assets"
	"github.com/smallbiznis/memento/internal/memento/domain"
	"github.com/smallbiznis/memento/internal/memento/svg"
	"github.com/smallbiznis/memento/internal/memento/template"
	"github.com/smallbiznis/memento/internal/memento/textflow"
	"github.com/smallbiznis/memento/internal/observability/metrics"
	"github.com/smallbiznis/memento/internal/observability/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Final renders draw at twice the template geometry; previews stay at 1x.
const renderScale = 2

// Result is one finished composition.
type Result struct {
	PNG           []byte
	Width         int
	Height        int
	Scale         int
	TemplateID    domain.TemplateID
	TrackCount    int
	DominantColor string
	UsedFallback  bool
	Duration      time.Duration
}

// Composer runs the full pipeline. It is safe for concurrent use; every
// render derives its state from the request alone.
type Composer struct {
	log     *zap.Logger
	assets  *assets.Loader
	photos  *PhotoLoader
	rasters Rasterizers
	metrics *metrics.RenderMetrics
	clk     clock.Clock
	tracer  trace.Tracer

	measureOnce sync.Once
	measure     *textflow.Measurer
}

func NewComposer(log *zap.Logger, loader *assets.Loader, photos *PhotoLoader, rasters Rasterizers, m *metrics.RenderMetrics, clk clock.Clock) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	if clk == nil {
		clk = clock.SystemClock{}
	}
	if rasters.Primary == nil {
		rasters.Primary = OksvgRasterizer{}
	}
	if rasters.Fallback == nil {
		rasters.Fallback = OksvgRasterizer{}
	}
	return &Composer{
		log:     log.Named("memento.render"),
		assets:  loader,
		photos:  photos,
		rasters: rasters,
		metrics: m,
		clk:     clk,
		tracer:  tracing.Tracer("memento/render"),
	}
}

// Render composes req into a PNG. Terminal errors carry a domain sentinel.
func (c *Composer) Render(ctx context.Context, req domain.RenderRequest) (*Result, error) {
	start := c.clk.Now()
	ctx, span := c.tracer.Start(ctx, "memento.render", trace.WithAttributes(
		attribute.String("memento.template", string(req.TemplateID)),
		attribute.Bool("memento.preview", req.Preview),
		attribute.Int("memento.tracks", len(req.Tracks)),
	))
	defer span.End()

	tpl, ok := template.Lookup(req.TemplateID)
	if !ok {
		return nil, c.fail(span, req, start, domain.ErrUnknownTemplate)
	}
	if !req.Preview {
		if err := domain.ValidateFinal(req); err != nil {
			return nil, c.fail(span, req, start, err)
		}
	}

	photo, err := c.photos.Load(ctx, req.Photo)
	if err != nil {
		return nil, c.fail(span, req, start, err)
	}

	scale := renderScale
	if req.Preview {
		scale = 1
	}

	dominant := ""
	if photo.Image != nil {
		dominant = EstimateDominantColor(photo.Image)
	}

	logoHref := ""
	if req.ShowLogo {
		if uri, ok := c.assets.Logo(); ok {
			logoHref = uri
		}
	}

	doc := c.document(tpl, req, dominant, photo.Href, logoHref)

	img, usedFallback, err := c.rasterize(ctx, doc, tpl, scale)
	if err != nil {
		return nil, c.fail(span, req, start, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err))
	}
	if usedFallback {
		c.metrics.IncFallback()
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, c.fail(span, req, start, fmt.Errorf("%w: %v", domain.ErrEncodeFailed, err))
	}

	duration := c.clk.Now().Sub(start)
	c.metrics.ObserveRender(string(req.TemplateID), "ok", duration)
	c.log.Info("poster rendered",
		zap.String("template", string(req.TemplateID)),
		zap.Bool("preview", req.Preview),
		zap.Int("tracks", len(req.Tracks)),
		zap.Int("bytes", buf.Len()),
		zap.Bool("fallback", usedFallback),
		zap.Duration("duration", duration),
	)

	return &Result{
		PNG:           buf.Bytes(),
		Width:         tpl.Width * scale,
		Height:        tpl.Height * scale,
		Scale:         scale,
		TemplateID:    req.TemplateID,
		TrackCount:    len(req.Tracks),
		DominantColor: dominant,
		UsedFallback:  usedFallback,
		Duration:      duration,
	}, nil
}

// document assembles the full SVG: background layer, overlay with the
// embedded photo, then the font faces spliced in after the root tag.
func (c *Composer) document(tpl template.Template, req domain.RenderRequest, dominant, photoHref, logoHref string) string {
	var b strings.Builder
	b.WriteString(svg.Header(tpl.Width, tpl.Height))
	if tpl.Background != nil {
		b.WriteString(tpl.Background(template.BackgroundInput{
			PartyName: req.PartyName,
			Subtitle:  req.SubtitleVariant.Label(),
			Date:      req.Date,
			Location:  req.Location,
			Notes:     req.Notes,
		}))
	}
	b.WriteString(tpl.Overlay(template.OverlayInput{
		PartyName:     req.PartyName,
		Subtitle:      req.SubtitleVariant.Label(),
		Date:          req.Date,
		Location:      req.Location,
		Notes:         req.Notes,
		Tracks:        req.Tracks,
		DominantColor: dominant,
		PhotoHref:     photoHref,
		LogoHref:      logoHref,
		Measure:       c.measurer(),
	}))
	b.WriteString(svg.Footer())

	faces := make([]svg.FontFace, 0, 2)
	for _, f := range c.assets.Fonts() {
		faces = append(faces, svg.FontFace{Family: f.Family, Format: f.Format, DataURI: f.DataURI})
	}
	return svg.InjectFontFaces(b.String(), faces)
}

// rasterize draws at the target scale with the primary renderer. When
// that fails the independent fallback draws at nominal size and the
// result is resampled up, so losing the primary still yields an image
// with the target dimensions.
func (c *Composer) rasterize(ctx context.Context, doc string, tpl template.Template, scale int) (image.Image, bool, error) {
	_, span := c.tracer.Start(ctx, "memento.rasterize")
	defer span.End()

	width := tpl.Width * scale
	height := tpl.Height * scale

	img, err := c.rasters.Primary.Rasterize(doc, width, height)
	if err == nil {
		return img, false, nil
	}

	c.log.Warn("primary rasterization failed, using fallback renderer",
		zap.String("template", string(tpl.ID)), zap.Error(err))
	span.RecordError(err)

	base, ferr := c.rasters.Fallback.Rasterize(doc, tpl.Width, tpl.Height)
	if ferr != nil {
		span.SetStatus(codes.Error, "rasterization failed")
		return nil, false, ferr
	}
	if scale == 1 {
		return base, true, nil
	}
	return imaging.Resize(base, width, height, imaging.Lanczos), true, nil
}

func (c *Composer) measurer() *textflow.Measurer {
	c.measureOnce.Do(func() {
		var sans, mono []byte
		for _, f := range c.assets.Fonts() {
			switch f.Family {
			case "Space Grotesk":
				sans = f.TTF
			case "JetBrains Mono":
				mono = f.TTF
			}
		}
		m, err := textflow.NewMeasurer(sans, mono)
		if err != nil {
			c.log.Warn("font parse failed, measuring with builtin fonts", zap.Error(err))
			m = textflow.Default()
		}
		c.measure = m
	})
	return c.measure
}

func (c *Composer) fail(span trace.Span, req domain.RenderRequest, start time.Time, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	c.metrics.ObserveRender(string(req.TemplateID), "error", c.clk.Now().Sub(start))
	return err
}
