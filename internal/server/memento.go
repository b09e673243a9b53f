package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/memento/internal/memento/domain"
	"github.com/smallbiznis/memento/internal/memento/render"
	"github.com/smallbiznis/memento/internal/memento/template"
	obscontext "github.com/smallbiznis/memento/internal/observability/context"
	"github.com/smallbiznis/memento/internal/renderlog"
)

const (
	renderRateLimit  = 30
	renderRateWindow = time.Minute
)

type templateInfo struct {
	ID     domain.TemplateID `json:"id"`
	Width  int               `json:"width"`
	Height int               `json:"height"`
}

// ListTemplates returns the fixed catalog with nominal geometry.
func (s *Server) ListTemplates(c *gin.Context) {
	infos := make([]templateInfo, 0, len(template.IDs()))
	for _, id := range template.IDs() {
		tpl, ok := template.Lookup(id)
		if !ok {
			continue
		}
		infos = append(infos, templateInfo{ID: tpl.ID, Width: tpl.Width, Height: tpl.Height})
	}
	c.JSON(http.StatusOK, gin.H{"templates": infos})
}

// RenderPoster composes a poster and streams the PNG back. The preview
// flag in the body skips final validation and renders at nominal scale.
func (s *Server) RenderPoster(c *gin.Context) {
	s.renderPoster(c, false)
}

// PreviewPoster always renders in preview mode, whatever the body says.
func (s *Server) PreviewPoster(c *gin.Context) {
	s.renderPoster(c, true)
}

func (s *Server) renderPoster(c *gin.Context, forcePreview bool) {
	if !s.limiter.Allow(c.ClientIP()) {
		AbortWithError(c, ErrRateLimited)
		return
	}

	var req domain.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if forcePreview {
		req.Preview = true
	}
	if strings.TrimSpace(string(req.TemplateID)) == "" {
		AbortWithError(c, newValidationError("templateId", "template_id_required", "templateId is required"))
		return
	}

	ctx := c.Request.Context()
	requestID := obscontext.RequestIDFromGin(c)
	res, err := s.composer.Render(ctx, req)
	if err != nil {
		s.recordFailure(ctx, req, requestID, err)
		AbortWithError(c, err)
		return
	}
	s.recordSuccess(ctx, req, requestID, res)

	c.Header("X-Render-Scale", strconv.Itoa(res.Scale))
	c.Header("Content-Disposition", `inline; filename="memento.png"`)
	c.Data(http.StatusOK, "image/png", res.PNG)
}

func (s *Server) recordSuccess(ctx context.Context, req domain.RenderRequest, requestID string, res *render.Result) {
	outcome := renderlog.OutcomeOK
	if res.UsedFallback {
		outcome = renderlog.OutcomeFallback
	}
	s.recorder.Record(ctx, renderlog.Entry{
		TemplateID: string(req.TemplateID),
		Preview:    req.Preview,
		TrackCount: res.TrackCount,
		Outcome:    outcome,
		DurationMS: res.Duration.Milliseconds(),
		Metadata: map[string]interface{}{
			"request_id":     requestID,
			"scale":          res.Scale,
			"width":          res.Width,
			"height":         res.Height,
			"dominant_color": res.DominantColor,
			"bytes":          len(res.PNG),
		},
	})
}

func (s *Server) recordFailure(ctx context.Context, req domain.RenderRequest, requestID string, err error) {
	s.recorder.Record(ctx, renderlog.Entry{
		TemplateID: string(req.TemplateID),
		Preview:    req.Preview,
		TrackCount: len(req.Tracks),
		Outcome:    renderlog.OutcomeError,
		ErrorCode:  errorCode(err),
		Metadata:   map[string]interface{}{"request_id": requestID},
	})
}
