// Package metrics records search timings and graph sizes on a private
// Prometheus registry, exported as a node-exporter textfile.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder owns one registry and the collectors registered on it.
type Recorder struct {
	reg *prometheus.Registry

	searchSeconds *prometheus.HistogramVec
	settled       *prometheus.CounterVec
	searches      *prometheus.CounterVec
	vertices      prometheus.Gauge
	edges         prometheus.Gauge
}

// New returns a Recorder with empty collectors.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,
		searchSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "skypath_search_duration_seconds",
				Help: "Wall time of one point-to-point search",
				// microseconds (tiny graphs) up to seconds (10^6 vertices)
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{"algorithm"},
		),
		settled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skypath_search_settled_vertices_total",
				Help: "Vertices settled or expanded across all searches",
			},
			[]string{"algorithm"},
		),
		searches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skypath_searches_total",
				Help: "Searches run, by outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		vertices: factory.NewGauge(prometheus.GaugeOpts{
			Name: "skypath_graph_vertices",
			Help: "Live vertices in the searched graph",
		}),
		edges: factory.NewGauge(prometheus.GaugeOpts{
			Name: "skypath_graph_edges",
			Help: "Edges in the searched graph",
		}),
	}
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveSearch records one search. found selects the outcome label.
func (r *Recorder) ObserveSearch(algorithm string, d time.Duration, settled int, found bool) {
	r.searchSeconds.WithLabelValues(algorithm).Observe(d.Seconds())
	r.settled.WithLabelValues(algorithm).Add(float64(settled))
	outcome := "unreachable"
	if found {
		outcome = "found"
	}
	r.searches.WithLabelValues(algorithm, outcome).Inc()
}

// SetGraphSize records the size of the graph under test.
func (r *Recorder) SetGraphSize(vertices, edges int) {
	r.vertices.Set(float64(vertices))
	r.edges.Set(float64(edges))
}

// WriteToTextfile writes every metric to path in the text exposition format.
func (r *Recorder) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
