// Package metrics exposes pipeline and export counters on a private
// prometheus registry.
package metrics

import (
	"net/http"
	"time"

	"orderfeatures/internal/core/domain/model/features"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orderfeatures"

type Registry struct {
	reg                *prometheus.Registry
	Builds             *prometheus.CounterVec
	BuildDurationSec   prometheus.Histogram
	RowsProduced       prometheus.Counter
	RowsDropped        prometheus.Counter
	InvalidTimestamps  prometheus.Counter
	IncompleteGeocodes prometheus.Counter
	LastBuildRows      prometheus.Gauge

	Exports        *prometheus.CounterVec
	RowsExported   prometheus.Counter
	LastExportTime prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	builds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "builds_total",
		Help:      "Training table builds by outcome.",
	}, []string{"result"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "build_duration_seconds",
		Help:      "Wall time of one training table build.",
		Buckets:   prometheus.DefBuckets,
	})
	rows := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "rows_produced_total"})
	dropped := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "rows_dropped_total"})
	invalid := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "invalid_timestamps_total"})
	incomplete := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "incomplete_geocodes_total"})
	lastRows := prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "last_build_rows"})

	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Training table exports by outcome.",
	}, []string{"result"})
	exported := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "rows_exported_total"})
	lastExport := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_export_timestamp_seconds",
	})

	r.MustRegister(builds, duration, rows, dropped, invalid, incomplete, lastRows, exports, exported, lastExport)
	return &Registry{
		reg:                r,
		Builds:             builds,
		BuildDurationSec:   duration,
		RowsProduced:       rows,
		RowsDropped:        dropped,
		InvalidTimestamps:  invalid,
		IncompleteGeocodes: incomplete,
		LastBuildRows:      lastRows,
		Exports:            exports,
		RowsExported:       exported,
		LastExportTime:     lastExport,
	}
}

// ObserveBuild records one training table build. A failed build only counts
// the failure and its duration.
func (r *Registry) ObserveBuild(stats features.BuildStats, elapsed time.Duration, err error) {
	r.BuildDurationSec.Observe(elapsed.Seconds())
	if err != nil {
		r.Builds.WithLabelValues("error").Inc()
		return
	}

	r.Builds.WithLabelValues("ok").Inc()
	r.RowsProduced.Add(float64(stats.Rows))
	r.RowsDropped.Add(float64(stats.DroppedRows))
	r.InvalidTimestamps.Add(float64(stats.InvalidTimestamps))
	r.IncompleteGeocodes.Add(float64(stats.IncompleteGeocodes))
	r.LastBuildRows.Set(float64(stats.Rows))
}

// ObserveExport records one export attempt.
func (r *Registry) ObserveExport(rows int, err error) {
	if err != nil {
		r.Exports.WithLabelValues("error").Inc()
		return
	}

	r.Exports.WithLabelValues("ok").Inc()
	r.RowsExported.Add(float64(rows))
	r.LastExportTime.SetToCurrentTime()
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
