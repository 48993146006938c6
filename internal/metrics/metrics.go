// Package metrics provides Prometheus instrumentation for the settings
// registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load results used as the "result" label of settings_file_loads_total.
const (
	ResultSuccess      = "success"
	ResultNotFound     = "not_found"
	ResultParseFailure = "parse_failure"
	ResultInvalid      = "invalid"
)

// Lookup results used as the "result" label of settings_lookups_total.
const (
	LookupHit  = "hit"
	LookupMiss = "miss"
)

// Metrics groups the registry collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	FileLoads *prometheus.CounterVec
	Lookups   *prometheus.CounterVec
	Entries   prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FileLoads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "settings_file_loads_total",
			Help: "Total number of settings file loads, by result.",
		}, []string{"result"}),
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "settings_lookups_total",
			Help: "Total number of settings lookups, by result (hit/miss).",
		}, []string{"result"}),
		Entries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "settings_entries",
			Help: "Current number of entries held by the settings registry.",
		}),
	}
}

// ObserveLoad counts one settings file load with the given result.
func (m *Metrics) ObserveLoad(result string) {
	if m == nil {
		return
	}
	m.FileLoads.WithLabelValues(result).Inc()
}

// ObserveLookup counts one lookup as a hit or a miss.
func (m *Metrics) ObserveLookup(found bool) {
	if m == nil {
		return
	}
	if found {
		m.Lookups.WithLabelValues(LookupHit).Inc()
		return
	}
	m.Lookups.WithLabelValues(LookupMiss).Inc()
}

// SetEntries records the current registry size.
func (m *Metrics) SetEntries(n int) {
	if m == nil {
		return
	}
	m.Entries.Set(float64(n))
}
