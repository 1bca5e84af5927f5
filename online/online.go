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
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"k8s.io/utils/clock"

	"sigs.k8s.io/online/env"
	rhttp "sigs.k8s.io/online/http"
)

const (
	// DefaultWaitTimeout bounds a single wait for readiness.
	DefaultWaitTimeout = time.Second

	// DefaultFallbackSleep is slept when readiness cannot be determined.
	DefaultFallbackSleep = 5 * time.Second

	// EnvTimeout overrides the default request timeout.
	EnvTimeout = "ONLINE_TIMEOUT"

	// EnvConnectTimeout overrides the default connect timeout.
	EnvConnectTimeout = "ONLINE_CONNECT_TIMEOUT"

	// EnvUserAgent overrides the default user agent.
	EnvUserAgent = "ONLINE_USER_AGENT"
)

// Engine registers URLs and probes them in batches.
type Engine struct {
	mu        sync.RWMutex
	options   *engineOptions
	transport rhttp.Transport
	clock     clock.Clock
	metrics   *Metrics
	state     State

	runMu    sync.Mutex
	registry *registry
	store    *resultStore
	errors   *errorLog
}

type engineOptions struct {
	Timeout        time.Duration // Total time allowed per probe
	ConnectTimeout time.Duration // Time allowed to connect per probe
	UserAgent      string        // User agent sent with every probe
	WaitTimeout    time.Duration // Bound of a single readiness wait
	FallbackSleep  time.Duration // Sleep when readiness is indeterminate
}

// String returns a string representation of the options.
func (o *engineOptions) String() string {
	return fmt.Sprintf(
		"Timeout: %s - ConnectTimeout: %s - UserAgent: %q - WaitTimeout: %s - FallbackSleep: %s",
		o.Timeout, o.ConnectTimeout, o.UserAgent, o.WaitTimeout, o.FallbackSleep,
	)
}

// Validate checks the options are usable for dispatching probes.
func (o *engineOptions) Validate() error {
	positive := validation.Min(time.Nanosecond)
	return validation.ValidateStruct(o,
		validation.Field(&o.Timeout, validation.Required, positive),
		validation.Field(&o.ConnectTimeout, validation.Required, positive),
		validation.Field(&o.UserAgent, validation.Required, validation.By(validateUserAgent)),
		validation.Field(&o.WaitTimeout, validation.Required, positive),
		validation.Field(&o.FallbackSleep, validation.Required, positive),
	)
}

func validateUserAgent(value interface{}) error {
	ua, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}
	for _, c := range ua {
		if c < 0x20 || c == 0x7f {
			return validation.NewError("validation_invalid_user_agent", "must not contain control characters")
		}
	}
	return nil
}

func defaultEngineOptions() *engineOptions {
	return &engineOptions{
		Timeout:        env.DefaultDuration(EnvTimeout, rhttp.DefaultTimeout),
		ConnectTimeout: env.DefaultDuration(EnvConnectTimeout, rhttp.DefaultTimeout),
		UserAgent:      env.Default(EnvUserAgent, rhttp.DefaultUserAgent),
		WaitTimeout:    DefaultWaitTimeout,
		FallbackSleep:  DefaultFallbackSleep,
	}
}

// New returns an engine with default options probing through an http.Agent.
func New() *Engine {
	return &Engine{
		options:   defaultEngineOptions(),
		transport: rhttp.NewAgent(),
		clock:     clock.RealClock{},
		registry:  newRegistry(),
		store:     newResultStore(),
		errors:    newErrorLog(),
	}
}

// SetTransport sets the transport creating handles and multiplexers.
func (e *Engine) SetTransport(transport rhttp.Transport) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transport = transport
}

// WithTimeout sets the total timeout of probes dispatched afterwards.
func (e *Engine) WithTimeout(timeout time.Duration) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.options.Timeout = timeout
	return e
}

// WithConnectTimeout sets the connect timeout of probes dispatched afterwards.
func (e *Engine) WithConnectTimeout(timeout time.Duration) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.options.ConnectTimeout = timeout
	return e
}

// WithUserAgent sets the user agent of probes dispatched afterwards.
func (e *Engine) WithUserAgent(userAgent string) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.options.UserAgent = userAgent
	return e
}

// WithWaitTimeout bounds each wait for readiness. Non positive values are
// ignored.
func (e *Engine) WithWaitTimeout(timeout time.Duration) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	if timeout > 0 {
		e.options.WaitTimeout = timeout
	}
	return e
}

// WithFallbackSleep sets the sleep used when readiness cannot be determined.
// Non positive values are ignored.
func (e *Engine) WithFallbackSleep(d time.Duration) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	if d > 0 {
		e.options.FallbackSleep = d
	}
	return e
}

// WithClock sets the clock used for the fallback sleep.
func (e *Engine) WithClock(c clock.Clock) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clock = c
	return e
}

// WithMetrics instruments the engine with m.
func (e *Engine) WithMetrics(m *Metrics) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.metrics = m
	return e
}

// Configure sets the timeout and user agent of probes dispatched afterwards.
// The timeout bounds both connecting and the whole request.
func (e *Engine) Configure(timeout time.Duration, userAgent string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	opts := *e.options
	opts.Timeout = timeout
	opts.ConnectTimeout = timeout
	opts.UserAgent = userAgent
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	e.options = &opts
	return nil
}

// Register adds url to the pending set and returns its normalized form.
func (e *Engine) Register(url string) (string, error) {
	normalized, err := e.registry.add(url)
	if err != nil {
		return "", fmt.Errorf("registering url: %w", err)
	}
	return normalized, nil
}

// Pending returns the sorted pending URLs.
func (e *Engine) Pending() []string {
	return e.registry.snapshot()
}

// Get returns the last result of url, or nil when it has none.
func (e *Engine) Get(url string) (*ProbeResult, error) {
	normalized, err := Normalize(url)
	if err != nil {
		return nil, fmt.Errorf("looking up url: %w", err)
	}
	r, ok := e.store.get(normalized)
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// Results returns every stored result sorted by URL.
func (e *Engine) Results() []ProbeResult {
	return e.store.all()
}

// Errors returns a copy of the error log keyed by URL or synthetic id.
func (e *Engine) Errors() map[string]map[ErrorKind]string {
	return e.errors.snapshot()
}

// ErrorTargets returns the URLs the error log entry key is attributed to.
func (e *Engine) ErrorTargets(key string) []string {
	return e.errors.targetsOf(key)
}

// State returns the state of the current or last run.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

func (e *Engine) setState(s State) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = s
}
