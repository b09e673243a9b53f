package metrics

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RenderMetrics tracks poster composition outcomes.
type RenderMetrics struct {
	renderTotal    *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	fallbackTotal  prometheus.Counter
}

var (
	renderMetricsOnce sync.Once
	renderMetrics     *RenderMetrics
)

func Render() *RenderMetrics {
	return RenderWithConfig(Config{})
}

func RenderWithConfig(cfg Config) *RenderMetrics {
	renderMetricsOnce.Do(func() {
		renderMetrics = newRenderMetrics(prometheus.DefaultRegisterer, cfg)
	})
	return renderMetrics
}

func ResetRenderMetricsForTest() {
	renderMetricsOnce = sync.Once{}
	renderMetrics = nil
}

func newRenderMetrics(registerer prometheus.Registerer, cfg Config) *RenderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "memento"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}

	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	renderTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "memento_render_total",
			Help:        "Total poster renders by outcome and template.",
			ConstLabels: constLabels,
		},
		[]string{"result", "template"}, // result: ok | error
	)

	renderDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "memento_render_duration_seconds",
			Help:        "Wall time of a full poster composition.",
			Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			ConstLabels: constLabels,
		},
		[]string{"template"},
	)

	fallbackTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "memento_render_fallback_total",
			Help:        "Renders that used the resize-based rasterizer fallback.",
			ConstLabels: constLabels,
		},
	)

	registerer.MustRegister(renderTotal, renderDuration, fallbackTotal)

	return &RenderMetrics{
		renderTotal:    renderTotal,
		renderDuration: renderDuration,
		fallbackTotal:  fallbackTotal,
	}
}

func (m *RenderMetrics) ObserveRender(template string, result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.renderTotal.WithLabelValues(result, template).Inc()
	m.renderDuration.WithLabelValues(template).Observe(duration.Seconds())
}

func (m *RenderMetrics) IncFallback() {
	if m == nil {
		return
	}
	m.fallbackTotal.Inc()
}
