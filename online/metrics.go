/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package online

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK        = "ok"
	outcomeHTTPError = "http_error"
	outcomeDiscarded = "discarded"
)

// Metrics instruments an Engine. A nil *Metrics records nothing.
type Metrics struct {
	probes   *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration prometheus.Histogram
	runs     prometheus.Counter
}

// NewMetrics creates the probe metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		probes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "online_probes_total",
				Help: "Total number of completed probes by outcome.",
			},
			[]string{"outcome"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "online_errors_total",
				Help: "Total number of failures recorded in the error log by kind.",
			},
			[]string{"kind"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "online_probe_duration_seconds",
				Help:    "Probe duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
		),
		runs: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "online_runs_total",
				Help: "Total number of runs that dispatched probes.",
			},
		),
	}

	for _, c := range []prometheus.Collector{m.probes, m.errors, m.duration, m.runs} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering probe metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) observeProbe(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.probes.WithLabelValues(outcome).Inc()
	m.duration.Observe(d.Seconds())
}

func (m *Metrics) observeError(kind ErrorKind) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) observeRun() {
	if m == nil {
		return
	}
	m.runs.Inc()
}
