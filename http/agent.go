/*
Copyright 2021 The Kubernetes Authors.

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
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultTimeout is the default total and connect timeout of a handle.
	DefaultTimeout = 15 * time.Second

	// DefaultUserAgent is sent when no user agent has been configured.
	DefaultUserAgent = "sigs.k8s.io/online"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Agent creates handles and multiplexers that perform single GET probes.
type Agent struct {
	options *agentOptions
	AgentImplementation
}

// AgentImplementation is the actual implementation of the http calls
//
//counterfeiter:generate -header ../hack/boilerplate/boilerplate.generatego.txt . AgentImplementation
type AgentImplementation interface {
	SendGetRequest(*http.Client, *http.Request) (*http.Response, error)
}

// Transport is the capability the probing engine consumes: it creates
// handles and the multiplexer driving them.
//
//counterfeiter:generate -header ../hack/boilerplate/boilerplate.generatego.txt . Transport
type Transport interface {
	NewHandle(url string, opts HandleOptions) (Handle, error)
	NewMultiplexer() Multiplexer
}

type defaultAgentImplementation struct{}

// agentOptions has the configurable bits of the agent.
type agentOptions struct {
	Handle      HandleOptions // Defaults for handles when the caller leaves fields unset
	MaxParallel uint          // Maximum number of sessions performing at once, 0 is unlimited
}

// HandleOptions configures a single probe handle.
type HandleOptions struct {
	UserAgent      string
	Timeout        time.Duration // Total time allowed for the request, body included
	ConnectTimeout time.Duration // Time allowed to establish the connection
}

// String returns a string representation of the options.
func (ao *agentOptions) String() string {
	return fmt.Sprintf(
		"HTTP.Agent options: Timeout: %s - ConnectTimeout: %s - UserAgent: %q - MaxParallel: %d",
		ao.Handle.Timeout, ao.Handle.ConnectTimeout, ao.Handle.UserAgent, ao.MaxParallel,
	)
}

func defaultAgentOptions() *agentOptions {
	return &agentOptions{
		Handle: HandleOptions{
			UserAgent:      DefaultUserAgent,
			Timeout:        DefaultTimeout,
			ConnectTimeout: DefaultTimeout,
		},
		MaxParallel: 0,
	}
}

// NewAgent return a new agent with default options.
func NewAgent() *Agent {
	return &Agent{
		AgentImplementation: &defaultAgentImplementation{},
		options:             defaultAgentOptions(),
	}
}

// SetImplementation sets the agent implementation.
func (a *Agent) SetImplementation(impl AgentImplementation) {
	a.AgentImplementation = impl
}

// WithTimeout sets the default total timeout of new handles.
func (a *Agent) WithTimeout(timeout time.Duration) *Agent {
	a.options.Handle.Timeout = timeout
	return a
}

// WithConnectTimeout sets the default connect timeout of new handles.
func (a *Agent) WithConnectTimeout(timeout time.Duration) *Agent {
	a.options.Handle.ConnectTimeout = timeout
	return a
}

// WithUserAgent sets the default user agent of new handles.
func (a *Agent) WithUserAgent(userAgent string) *Agent {
	a.options.Handle.UserAgent = userAgent
	return a
}

// WithMaxParallel controls how many sessions a multiplexer performs at once.
func (a *Agent) WithMaxParallel(workers int) *Agent {
	if workers < 0 {
		workers = 0
	}
	a.options.MaxParallel = uint(workers)
	return a
}

// Client return an net/http client configured for a single probe: redirects
// are never followed and every request dials a fresh connection.
func (a *Agent) Client(opts HandleOptions) *http.Client {
	dialer := &net.Dialer{Timeout: opts.ConnectTimeout}
	return &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: opts.ConnectTimeout,
			DisableKeepAlives:   true,
		},
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// NewHandle creates a GET handle for url. Zero fields of opts are filled in
// from the agent defaults.
func (a *Agent) NewHandle(url string, opts HandleOptions) (Handle, error) {
	opts = a.withDefaults(opts)
	logrus.Debugf("Creating GET handle for %s (%s)", url, a.options)

	session, err := newSession(url, opts, a.Client(opts))
	if err != nil {
		return nil, fmt.Errorf("creating handle for %s: %w", url, err)
	}
	return session, nil
}

// NewMultiplexer returns an empty multiplexer performing its sessions through
// the agent implementation.
func (a *Agent) NewMultiplexer() Multiplexer {
	return newMulti(a.AgentImplementation, a.options.MaxParallel)
}

func (a *Agent) withDefaults(opts HandleOptions) HandleOptions {
	if opts.UserAgent == "" {
		opts.UserAgent = a.options.Handle.UserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = a.options.Handle.Timeout
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = a.options.Handle.ConnectTimeout
	}
	return opts
}

// SendGetRequest performs the actual request.
func (impl *defaultAgentImplementation) SendGetRequest(client *http.Client, req *http.Request) (
	response *http.Response, err error,
) {
	response, err = client.Do(req)
	if err != nil {
		return response, fmt.Errorf("getting %s: %w", req.URL, err)
	}

	return response, nil
}
