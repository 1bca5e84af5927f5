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
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	rhttp "sigs.k8s.io/online/http"
	"sigs.k8s.io/online/http/httpfakes"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	require.Error(t, err, "metrics can only be registered once per registry")
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.observeRun()
		m.observeError(ExecFailed)
		m.observeProbe(outcomeOK, time.Second)
	})
}

func TestRunMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	ok := newFakeHandle("http://ok.example", rhttp.Info{URL: "http://ok.example", StatusCode: 200, TotalTime: time.Second})
	bad := newFakeHandle("http://bad.example", rhttp.Info{URL: "http://bad.example", StatusCode: 500})
	lost := newFakeHandle("http://lost.example", rhttp.Info{})

	multi := &httpfakes.FakeMultiplexer{}
	multi.CompletedReturnsOnCall(0, []rhttp.Message{{Handle: ok}, {Handle: bad}, {Handle: lost}, {}})

	e, _ := newFakeEngine(t, multi, map[string]*httpfakes.FakeHandle{
		"http://ok.example": ok, "http://bad.example": bad, "http://lost.example": lost,
	})
	e.WithMetrics(m)
	e.Run()
	e.Run()

	require.InDelta(t, 2, testutil.ToFloat64(m.runs), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.probes.WithLabelValues(outcomeOK)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.probes.WithLabelValues(outcomeHTTPError)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.probes.WithLabelValues(outcomeDiscarded)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.errors.WithLabelValues(string(NoURLInResult))), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.errors.WithLabelValues(string(NoResourceProvided))), 0)
	require.Equal(t, 1, testutil.CollectAndCount(m.duration))

	count, err := testutil.GatherAndCount(reg, "online_probes_total", "online_runs_total")
	require.NoError(t, err)
	require.Equal(t, 4, count)
}
