package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the dashboard.
type Metrics struct {
	FigureRenders   prometheus.Counter
	EmptySelections prometheus.Counter
	PNGExports      prometheus.Counter
	DatasetRows     prometheus.Gauge

	RenderDuration  prometheus.Histogram
	SelectedSources prometheus.Histogram
}

// NewMetrics creates and registers all dashboard metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FigureRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forcing_dashboard",
			Name:      "figure_renders_total",
			Help:      "Total waterfall figure specifications built.",
		}),
		EmptySelections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forcing_dashboard",
			Name:      "empty_selections_total",
			Help:      "Figure requests whose selection matched no dataset rows.",
		}),
		PNGExports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forcing_dashboard",
			Name:      "png_exports_total",
			Help:      "Total server-side PNG chart exports.",
		}),
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "forcing_dashboard",
			Name:      "dataset_rows",
			Help:      "Number of forcing records loaded at startup.",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "forcing_dashboard",
			Name:      "render_duration_seconds",
			Help:      "Duration of one filter-and-render cycle.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		SelectedSources: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "forcing_dashboard",
			Name:      "selected_sources",
			Help:      "Number of sources selected per figure request.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 11, 14},
		}),
	}

	prometheus.MustRegister(
		m.FigureRenders,
		m.EmptySelections,
		m.PNGExports,
		m.DatasetRows,
		m.RenderDuration,
		m.SelectedSources,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FigureRenders:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "forcing_dashboard", Name: "figure_renders_total"}),
		EmptySelections: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "forcing_dashboard", Name: "empty_selections_total"}),
		PNGExports:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "forcing_dashboard", Name: "png_exports_total"}),
		DatasetRows:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "forcing_dashboard", Name: "dataset_rows"}),
		RenderDuration:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "forcing_dashboard", Name: "render_duration_seconds"}),
		SelectedSources: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "forcing_dashboard", Name: "selected_sources"}),
	}
}
