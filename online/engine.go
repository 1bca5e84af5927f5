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
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"

	rhttp "sigs.k8s.io/online/http"
)

// State is the stage of a run.
type State int

const (
	// StateIdle is the state before dispatching anything.
	StateIdle State = iota
	// StateDispatching creates and registers one handle per pending URL.
	StateDispatching
	// StatePolling drives the multiplexer and waits for readiness.
	StatePolling
	// StateDraining turns completed handles into results.
	StateDraining
	// StateClosed means every handle and the multiplexer were released.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDispatching:
		return "Dispatching"
	case StatePolling:
		return "Polling"
	case StateDraining:
		return "Draining"
	case StateClosed:
		return "Closed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// maxFailedDrives is the number of consecutive failed drives after which a
// batch gives up on the handles still running.
const maxFailedDrives = 3

// batch is the state of a single run.
type batch struct {
	id       string
	seq      int
	failed   int
	engine   *Engine
	opts     engineOptions
	clock    clock.Clock
	metrics  *Metrics
	multi    rhttp.Multiplexer
	inFlight map[rhttp.Handle]string
}

// Run probes every pending URL once and waits until all probes completed,
// or until the multiplexer failed maxFailedDrives times in a row. Other
// failures are recorded in the error log and never abort the batch. Calls on
// the same engine are serialized.
func (e *Engine) Run() {
	e.runMu.Lock()
	defer e.runMu.Unlock()

	e.transition(StateIdle)
	pending := e.registry.snapshot()
	if len(pending) == 0 {
		logrus.Debug("No URLs pending, nothing to probe")
		return
	}

	e.mu.RLock()
	b := &batch{
		id:       uuid.NewString(),
		engine:   e,
		opts:     *e.options,
		clock:    e.clock,
		metrics:  e.metrics,
		multi:    e.transport.NewMultiplexer(),
		inFlight: map[rhttp.Handle]string{},
	}
	transport := e.transport
	e.mu.RUnlock()
	defer b.close()

	b.metrics.observeRun()
	logrus.Debugf("Starting batch %s for %d URLs (%s)", b.id, len(pending), &b.opts)

	e.transition(StateDispatching)
	b.dispatch(transport, pending)

	e.transition(StatePolling)
	running := b.drive()
	b.drain()
	for running > 0 {
		if b.failed >= maxFailedDrives {
			logrus.Errorf(
				"Giving up batch %s after %d failed drives, %d handles still running",
				b.id, b.failed, running,
			)
			return
		}
		b.wait()
		running = b.drive()
		b.drain()
	}
}

func (e *Engine) transition(s State) {
	logrus.Debugf("Engine state %s -> %s", e.State(), s)
	e.setState(s)
}

// dispatch creates and registers one handle per URL.
func (b *batch) dispatch(transport rhttp.Transport, urls []string) {
	opts := rhttp.HandleOptions{
		UserAgent:      b.opts.UserAgent,
		Timeout:        b.opts.Timeout,
		ConnectTimeout: b.opts.ConnectTimeout,
	}

	for _, url := range urls {
		h, err := transport.NewHandle(url, opts)
		if err != nil {
			b.engine.recordError(url, RegisterFailed, err.Error(), url)
			continue
		}

		if err := b.multi.Register(h); err != nil {
			b.engine.recordError(url, RegisterFailed, err.Error(), url)
			if err := h.Close(); err != nil {
				logrus.Errorf("Closing unregistered handle for %s: %v", url, err)
			}
			continue
		}

		logrus.Debugf("Dispatching GET %s", url)
		b.inFlight[h] = url
	}
}

// drive pumps the multiplexer until it asks for readiness and returns the
// number of handles still running.
func (b *batch) drive() int {
	running, err := b.multi.Drive()
	for errors.Is(err, rhttp.ErrCallMultiPerform) {
		running, err = b.multi.Drive()
	}
	if err != nil {
		b.failed++
		b.seq++
		key := fmt.Sprintf("%s-%d", b.id, b.seq)
		b.engine.recordError(key, ExecFailed, err.Error(), b.urls()...)
		return running
	}
	b.failed = 0
	return running
}

// wait blocks until a handle is ready. The fallback sleep is only used when
// the multiplexer cannot tell.
func (b *batch) wait() {
	if r := b.multi.Wait(b.opts.WaitTimeout); r == rhttp.WaitIndeterminate {
		logrus.Debugf("Readiness %s, sleeping %s", r, b.opts.FallbackSleep)
		b.clock.Sleep(b.opts.FallbackSleep)
	}
}

// drain turns the completed handles into results and releases them.
func (b *batch) drain() {
	msgs := b.multi.Completed()
	if len(msgs) == 0 {
		return
	}

	b.engine.transition(StateDraining)
	defer b.engine.transition(StatePolling)

	for _, msg := range msgs {
		if msg.Handle == nil {
			b.engine.recordError(syntheticKey(), NoResourceProvided, "no handle provided")
			continue
		}

		url, ok := b.inFlight[msg.Handle]
		if !ok {
			logrus.Debugf("Skipping completion of handle not in flight: %s", msg.Handle.URL())
			continue
		}

		result, err := newProbeResult(msg.Handle)
		if err != nil {
			b.engine.recordError(syntheticKey(), NoURLInResult, err.Error(), url)
			b.metrics.observeProbe(outcomeDiscarded, result.Time())
		} else {
			logrus.Debugf("Probed %s: %d in %s", result.URL(), result.StatusCode(), result.Time())
			b.engine.store.put(result)
			b.metrics.observeProbe(result.outcome(), result.Time())
		}
		b.release(msg.Handle)
	}
}

// release deregisters and closes h.
func (b *batch) release(h rhttp.Handle) {
	url := b.inFlight[h]
	delete(b.inFlight, h)

	if err := b.multi.Deregister(h); err != nil {
		logrus.Errorf("Deregistering handle for %s: %v", url, err)
	}
	if err := h.Close(); err != nil {
		logrus.Errorf("Closing handle for %s: %v", url, err)
	}
}

// close releases the handles that never completed, then the multiplexer.
func (b *batch) close() {
	if len(b.inFlight) > 0 {
		logrus.Debugf("Releasing %d handles that did not complete", len(b.inFlight))
	}
	for h := range b.inFlight {
		b.release(h)
	}
	if err := b.multi.Close(); err != nil {
		logrus.Errorf("Closing multiplexer of batch %s: %v", b.id, err)
	}
	b.engine.transition(StateClosed)
}

// urls returns the sorted URLs in flight.
func (b *batch) urls() []string {
	urls := make([]string, 0, len(b.inFlight))
	for _, url := range b.inFlight {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}

func (e *Engine) recordError(key string, kind ErrorKind, msg string, urls ...string) {
	logrus.Warnf("%s for %s: %s", kind, key, msg)
	e.errors.record(key, kind, msg, urls...)
	e.mu.RLock()
	m := e.metrics
	e.mu.RUnlock()
	m.observeError(kind)
}
