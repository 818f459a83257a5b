// Package metrics exposes Prometheus instrumentation for overlay sessions.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Registry holds the collectors created by Default.
var Registry = prometheus.NewRegistry()

// Default is the collector set registered on Registry.
var Default = New(Registry)

// Collector groups the overlay metrics. A nil *Collector records nothing.
type Collector struct {
	// SessionsStarted counts successful Highlight calls.
	SessionsStarted prometheus.Counter

	// Dismissals counts completed dismissals by reason
	// (caller, target_tap, highlighted_tap, dismiss_control).
	Dismissals *prometheus.CounterVec

	// Hits counts routed pointer-down events by result
	// (target, dismiss_control, absorbed, ignored).
	Hits *prometheus.CounterVec

	// HighlightErrors counts rejected Highlight calls by error kind.
	HighlightErrors *prometheus.CounterVec

	// FadeDuration tracks how long fade animations took, by direction (in, out).
	FadeDuration *prometheus.HistogramVec
}

// New creates a Collector and registers it on reg.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		SessionsStarted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "spotlight_sessions_started_total",
				Help: "Total overlay sessions presented",
			},
		),
		Dismissals: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spotlight_dismissals_total",
				Help: "Total completed overlay dismissals by reason",
			},
			[]string{"reason"},
		),
		Hits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spotlight_hits_total",
				Help: "Total pointer hit tests by result",
			},
			[]string{"result"},
		),
		HighlightErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spotlight_highlight_errors_total",
				Help: "Total rejected highlight calls by error kind",
			},
			[]string{"kind"},
		),
		FadeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spotlight_fade_duration_seconds",
				Help:    "Fade animation duration in seconds",
				Buckets: []float64{.05, .1, .2, .3, .35, .5, .75, 1},
			},
			[]string{"direction"},
		),
	}
}

// SessionStarted records a presented session.
func (c *Collector) SessionStarted() {
	if c == nil {
		return
	}
	c.SessionsStarted.Inc()
}

// Dismissed records a completed dismissal.
func (c *Collector) Dismissed(reason string) {
	if c == nil {
		return
	}
	c.Dismissals.WithLabelValues(reason).Inc()
}

// Hit records a hit-test result.
func (c *Collector) Hit(result string) {
	if c == nil {
		return
	}
	c.Hits.WithLabelValues(result).Inc()
}

// HighlightFailed records a rejected Highlight call.
func (c *Collector) HighlightFailed(kind string) {
	if c == nil {
		return
	}
	c.HighlightErrors.WithLabelValues(kind).Inc()
}

// ObserveFade records a finished fade.
func (c *Collector) ObserveFade(direction string, d time.Duration) {
	if c == nil {
		return
	}
	c.FadeDuration.WithLabelValues(direction).Observe(d.Seconds())
}

// WriteText writes every metric family gathered from g in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
