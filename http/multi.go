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

package http

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nozzle/throttler"
	"github.com/sirupsen/logrus"
)

// Readiness is the answer of Multiplexer.Wait.
type Readiness int

const (
	// WaitReady means at least one handle made progress or nothing is pending.
	WaitReady Readiness = iota
	// WaitTimeout means the wait expired without any handle completing.
	WaitTimeout
	// WaitIndeterminate means readiness could not be determined.
	WaitIndeterminate
)

func (r Readiness) String() string {
	switch r {
	case WaitReady:
		return "ready"
	case WaitTimeout:
		return "timeout"
	case WaitIndeterminate:
		return "indeterminate"
	}
	return fmt.Sprintf("Readiness(%d)", int(r))
}

// Message reports a completed handle.
type Message struct {
	Handle Handle
	Result ErrorCode
}

// Multiplexer drives many handles from a single control flow.
//
//counterfeiter:generate -header ../hack/boilerplate/boilerplate.generatego.txt . Multiplexer
type Multiplexer interface {
	// Register adds a handle. It starts performing on the next Drive.
	Register(Handle) error
	// Drive starts registered handles and collects finished ones without
	// blocking. It returns the number of handles still running.
	Drive() (int, error)
	// Wait blocks until a handle finishes or the timeout expires.
	Wait(time.Duration) Readiness
	// Completed returns the completions collected since the last call.
	Completed() []Message
	// Deregister removes a handle, aborting it when still running.
	Deregister(Handle) error
	// Close releases the multiplexer.
	Close() error
}

type sessionState int

const (
	stateRegistered sessionState = iota
	stateRunning
	stateDone
)

// Multi is the Multiplexer returned by Agent.NewMultiplexer.
type Multi struct {
	impl        AgentImplementation
	maxParallel uint

	ctx    context.Context
	cancel context.CancelFunc
	done   chan *Session

	mu       sync.Mutex
	sessions map[*Session]sessionState
	pending  []*Session
	running  int
	queue    []Message
	closed   bool
}

func newMulti(impl AgentImplementation, maxParallel uint) *Multi {
	ctx, cancel := context.WithCancel(context.Background())
	return &Multi{
		impl:        impl,
		maxParallel: maxParallel,
		ctx:         ctx,
		cancel:      cancel,
		done:        make(chan *Session),
		sessions:    map[*Session]sessionState{},
	}
}

// Register adds a handle created by an Agent.
func (m *Multi) Register(h Handle) error {
	s, ok := h.(*Session)
	if !ok {
		return ErrForeignHandle
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrMultiClosed
	}
	if _, ok := m.sessions[s]; ok {
		return ErrHandleRegistered
	}
	m.sessions[s] = stateRegistered
	m.pending = append(m.pending, s)
	return nil
}

// Drive launches the registered sessions and collects the finished ones.
// It returns ErrCallMultiPerform when it launched sessions, as they may
// already have results to collect.
func (m *Multi) Drive() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, ErrMultiClosed
	}

	launched := m.launch()
	for {
		select {
		case s := <-m.done:
			m.collect(s)
			continue
		default:
		}
		break
	}

	if launched > 0 {
		return m.running, ErrCallMultiPerform
	}
	return m.running, nil
}

// Wait blocks for at most timeout until a running session finishes.
func (m *Multi) Wait(timeout time.Duration) Readiness {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return WaitIndeterminate
	}
	if len(m.queue) > 0 || m.running == 0 {
		m.mu.Unlock()
		return WaitReady
	}
	m.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case s := <-m.done:
		m.mu.Lock()
		m.collect(s)
		m.mu.Unlock()
		return WaitReady
	case <-timer.C:
		return WaitTimeout
	case <-m.ctx.Done():
		return WaitIndeterminate
	}
}

// Completed hands over the collected completions.
func (m *Multi) Completed() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := m.queue
	m.queue = nil
	return msgs
}

// Deregister removes a handle, aborting its request if still running.
func (m *Multi) Deregister(h Handle) error {
	s, ok := h.(*Session)
	if !ok {
		return ErrForeignHandle
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.sessions[s]
	if !ok {
		return ErrHandleNotRegistered
	}
	delete(m.sessions, s)

	switch state {
	case stateRegistered:
		for i := range m.pending {
			if m.pending[i] == s {
				m.pending = append(m.pending[:i], m.pending[i+1:]...)
				break
			}
		}
	case stateRunning:
		m.running--
		s.mu.Lock()
		if s.cancel != nil {
			s.cancel()
		}
		s.mu.Unlock()
	case stateDone:
	}
	return nil
}

// Close aborts every running session and releases the multiplexer.
func (m *Multi) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrMultiClosed
	}
	m.closed = true
	m.cancel()
	if m.running > 0 {
		logrus.Debugf("Closing multiplexer with %d sessions still running", m.running)
	}
	return nil
}

// launch starts the pending sessions. Must be called with m.mu held.
func (m *Multi) launch() int {
	batch := m.pending
	m.pending = nil
	if len(batch) == 0 {
		return 0
	}

	for _, s := range batch {
		m.sessions[s] = stateRunning
	}
	m.running += len(batch)

	workers := int(m.maxParallel)
	if workers == 0 || workers > len(batch) {
		workers = len(batch)
	}
	go m.dispatch(batch, workers)
	return len(batch)
}

func (m *Multi) dispatch(batch []*Session, workers int) {
	t := throttler.New(workers, len(batch))
	for _, s := range batch {
		go func(s *Session) {
			s.perform(m.ctx, m.impl)
			code, _ := s.Error()
			if code != CodeOK {
				t.Done(fmt.Errorf("performing %s: %s", s.url, code))
			} else {
				t.Done(nil)
			}

			select {
			case m.done <- s:
			case <-m.ctx.Done():
			}
		}(s)
		t.Throttle()
	}
}

// collect queues the completion of s. Must be called with m.mu held.
func (m *Multi) collect(s *Session) {
	if m.sessions[s] != stateRunning {
		// Deregistered while running, already accounted for.
		return
	}
	m.sessions[s] = stateDone
	m.running--
	code, _ := s.Error()
	m.queue = append(m.queue, Message{Handle: s, Result: code})
}
