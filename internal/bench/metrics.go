// Copyright 2025 go-quicksort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ajroetker/go-quicksort/internal/hostinfo"
)

// Implementation label values.
const (
	implQSort  = "qsort"
	implStdlib = "stdlib"
)

// Metrics records benchmark and verification results in a private
// registry, so several runs in one process never collide.
type Metrics struct {
	registry *prometheus.Registry

	// SortDuration observes single sort timings.
	// Labels: impl (qsort, stdlib), scenario, size
	SortDuration *prometheus.HistogramVec

	// MedianRatio is qsort's median time over the stdlib median.
	// Labels: scenario, size
	MedianRatio *prometheus.GaugeVec

	// TrialsTotal counts verification trials.
	// Labels: result (pass, fail)
	TrialsTotal *prometheus.CounterVec

	// ChecksTotal counts individual property checks performed.
	ChecksTotal prometheus.Counter
}

// NewMetrics creates the benchmark metrics labelled with the host's
// architecture and vector level.
func NewMetrics(host hostinfo.Info) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"goarch": host.GOARCH, "vector": host.Vector}

	return &Metrics{
		registry: reg,
		SortDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   "qsort",
				Subsystem:   "bench",
				Name:        "sort_duration_seconds",
				Help:        "Duration of a single sort call in seconds",
				Buckets:     prometheus.ExponentialBuckets(1e-6, 4, 12),
				ConstLabels: constLabels,
			},
			[]string{"impl", "scenario", "size"},
		),
		MedianRatio: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   "qsort",
				Subsystem:   "bench",
				Name:        "median_ratio",
				Help:        "Median qsort time divided by median stdlib time",
				ConstLabels: constLabels,
			},
			[]string{"scenario", "size"},
		),
		TrialsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   "qsort",
				Subsystem:   "verify",
				Name:        "trials_total",
				Help:        "Total number of verification trials by result",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
		ChecksTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace:   "qsort",
				Subsystem:   "verify",
				Name:        "checks_total",
				Help:        "Total number of property checks performed",
				ConstLabels: constLabels,
			},
		),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes every metric in the Prometheus text format, for the
// node_exporter textfile collector or later inspection.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func sizeLabel(n int) string {
	return strconv.Itoa(n)
}
