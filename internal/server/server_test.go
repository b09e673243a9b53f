package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/memento/internal/config"
	"github.com/smallbiznis/memento/internal/memento/domain"
	"github.com/smallbiznis/memento/internal/memento/render"
	"go.uber.org/zap"
)

type fakeComposer struct {
	res *render.Result
	err error
	got domain.RenderRequest
}

func (f *fakeComposer) Render(_ context.Context, req domain.RenderRequest) (*render.Result, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func newTestServer(t *testing.T, composer Composer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := NewServer(config.Config{Environment: "test"}, zap.NewNop(), composer, nil, nil, nil)
	return s.Engine()
}

func renderBody(t *testing.T, req domain.RenderRequest) *bytes.Reader {
	t.Helper()
	payload, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(payload)
}

func validRenderRequest() domain.RenderRequest {
	return domain.RenderRequest{
		TemplateID:      domain.TemplatePosterBold,
		PartyName:       "Warehouse Sessions",
		SubtitleVariant: domain.SubtitleFrom,
		Tracks:          []domain.Track{{Artist: "A", Title: "B"}},
	}
}

func TestRenderPosterSuccess(t *testing.T) {
	fake := &fakeComposer{res: &render.Result{
		PNG:        []byte("png-bytes"),
		Width:      2160,
		Height:     2700,
		Scale:      2,
		TemplateID: domain.TemplatePosterBold,
		TrackCount: 1,
		Duration:   80 * time.Millisecond,
	}}
	engine := newTestServer(t, fake)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/memento/render", renderBody(t, validRenderRequest()))
	engine.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type %q", ct)
	}
	if scale := w.Header().Get("X-Render-Scale"); scale != "2" {
		t.Fatalf("scale header %q", scale)
	}
	if w.Body.String() != "png-bytes" {
		t.Fatalf("body %q", w.Body.String())
	}
	if fake.got.PartyName != "Warehouse Sessions" {
		t.Fatalf("request not forwarded: %+v", fake.got)
	}
}

func TestRenderPosterBadJSON(t *testing.T) {
	engine := newTestServer(t, &fakeComposer{})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/memento/render", bytes.NewReader([]byte("{nope")))
	engine.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d", w.Code)
	}
	var apiErr APIError
	if err := json.Unmarshal(w.Body.Bytes(), &apiErr); err != nil {
		t.Fatal(err)
	}
	if apiErr.Code != "invalid_request" {
		t.Fatalf("code %q", apiErr.Code)
	}
}

func TestRenderPosterErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrTracksRequired, http.StatusUnprocessableEntity, "tracks_required"},
		{domain.ErrPartyNameRequired, http.StatusUnprocessableEntity, "party_name_required"},
		{domain.ErrTooManyTracks, http.StatusUnprocessableEntity, "too_many_tracks"},
		{domain.ErrUnknownTemplate, http.StatusBadRequest, "unknown_template"},
		{fmt.Errorf("%w: missing data scheme", domain.ErrInvalidPhoto), http.StatusBadRequest, "invalid_photo"},
		{fmt.Errorf("%w: boom", domain.ErrRenderFailed), http.StatusInternalServerError, "render_failed"},
		{domain.ErrEncodeFailed, http.StatusInternalServerError, "encode_failed"},
	}

	for _, tc := range cases {
		engine := newTestServer(t, &fakeComposer{err: tc.err})
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/memento/render", renderBody(t, validRenderRequest()))
		engine.ServeHTTP(w, r)

		if w.Code != tc.status {
			t.Fatalf("%v: status %d, want %d", tc.err, w.Code, tc.status)
		}
		var apiErr APIError
		if err := json.Unmarshal(w.Body.Bytes(), &apiErr); err != nil {
			t.Fatal(err)
		}
		if apiErr.Code != tc.code {
			t.Fatalf("%v: code %q, want %q", tc.err, apiErr.Code, tc.code)
		}
	}
}

func TestRenderPosterRateLimited(t *testing.T) {
	fake := &fakeComposer{res: &render.Result{PNG: []byte("x"), Scale: 1}}
	engine := newTestServer(t, fake)

	var last int
	for i := 0; i < renderRateLimit+1; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/memento/render", renderBody(t, validRenderRequest()))
		r.RemoteAddr = "10.0.0.1:1234"
		engine.ServeHTTP(w, r)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after %d requests, got %d", renderRateLimit+1, last)
	}
}

func TestListTemplates(t *testing.T) {
	engine := newTestServer(t, &fakeComposer{})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/memento/templates", nil)
	engine.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var body struct {
		Templates []templateInfo `json:"templates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Templates) != 5 {
		t.Fatalf("expected 5 templates, got %d", len(body.Templates))
	}
	if body.Templates[0].ID != domain.TemplatePosterBold || body.Templates[0].Width != 1080 {
		t.Fatalf("unexpected first entry: %+v", body.Templates[0])
	}
}

func TestPreviewForcesPreviewMode(t *testing.T) {
	fake := &fakeComposer{res: &render.Result{PNG: []byte("x"), Scale: 1}}
	engine := newTestServer(t, fake)

	req := validRenderRequest()
	req.Preview = false
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/memento/preview", renderBody(t, req))
	engine.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
	if !fake.got.Preview {
		t.Fatalf("preview route must force preview mode")
	}
}

func TestRenderPosterMissingTemplateID(t *testing.T) {
	engine := newTestServer(t, &fakeComposer{})

	req := validRenderRequest()
	req.TemplateID = "  "
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/memento/render", renderBody(t, req))
	engine.ServeHTTP(w, r)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d", w.Code)
	}
	var apiErr APIError
	if err := json.Unmarshal(w.Body.Bytes(), &apiErr); err != nil {
		t.Fatal(err)
	}
	if apiErr.Code != "template_id_required" || apiErr.Field != "templateId" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestUnknownRouteNotFound(t *testing.T) {
	engine := newTestServer(t, &fakeComposer{})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/nothing", nil)
	engine.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d", w.Code)
	}
	var apiErr APIError
	if err := json.Unmarshal(w.Body.Bytes(), &apiErr); err != nil {
		t.Fatal(err)
	}
	if apiErr.Code != "not_found" {
		t.Fatalf("code %q", apiErr.Code)
	}
}

func TestHealthz(t *testing.T) {
	engine := newTestServer(t, &fakeComposer{})

	for _, path := range []string{"/healthz", "/api/health"} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, path, nil)
		engine.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: status %d", path, w.Code)
		}
	}
}
