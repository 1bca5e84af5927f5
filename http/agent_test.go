/*
Copyright 2025 The Kubernetes Authors.

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

package http_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rhttp "sigs.k8s.io/online/http"
	"sigs.k8s.io/online/http/httpfakes"
)

func TestNewHandle(t *testing.T) {
	for name, tc := range map[string]struct {
		url     string
		opts    rhttp.HandleOptions
		mustErr bool
	}{
		"should succeed": {
			url: "http://example.com",
		},
		"should succeed with options": {
			url:  "https://example.com/path",
			opts: rhttp.HandleOptions{UserAgent: "test", Timeout: time.Second},
		},
		"should fail on unparsable URL": {
			url:     "http://[::1",
			mustErr: true,
		},
		"should fail on control characters": {
			url:     "http://example.com/\x7f",
			mustErr: true,
		},
	} {
		t.Run(name, func(t *testing.T) {
			h, err := rhttp.NewAgent().NewHandle(tc.url, tc.opts)
			if tc.mustErr {
				require.Error(t, err)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.url, h.URL())
			require.NoError(t, h.Close())
		})
	}
}

func TestHandleRequestOptions(t *testing.T) {
	fake := &httpfakes.FakeAgentImplementation{}
	fake.SendGetRequestCalls(func(*http.Client, *http.Request) (*http.Response, error) {
		return getTestResponse(http.StatusOK), nil
	})

	agent := rhttp.NewAgent().WithUserAgent("agent-default").WithTimeout(3 * time.Second)
	agent.SetImplementation(fake)

	m := agent.NewMultiplexer()
	defer m.Close()

	withDefaults, err := agent.NewHandle("http://default.example", rhttp.HandleOptions{})
	require.NoError(t, err)
	custom, err := agent.NewHandle("http://custom.example", rhttp.HandleOptions{
		UserAgent: "custom", Timeout: time.Second, ConnectTimeout: 500 * time.Millisecond,
	})
	require.NoError(t, err)

	require.NoError(t, m.Register(withDefaults))
	require.NoError(t, m.Register(custom))
	require.Len(t, driveToCompletion(t, m), 2)
	require.Equal(t, 2, fake.SendGetRequestCallCount())

	seen := map[string]struct{}{}
	for i := range fake.SendGetRequestCallCount() {
		client, req := fake.SendGetRequestArgsForCall(i)
		require.Equal(t, http.MethodGet, req.Method)
		require.True(t, req.Close, "fresh connection expected")
		require.NotNil(t, client.CheckRedirect)
		require.ErrorIs(t, client.CheckRedirect(req, nil), http.ErrUseLastResponse)

		switch req.URL.Host {
		case "default.example":
			require.Equal(t, "agent-default", req.Header.Get("User-Agent"))
			require.Equal(t, 3*time.Second, client.Timeout)
		case "custom.example":
			require.Equal(t, "custom", req.Header.Get("User-Agent"))
			require.Equal(t, time.Second, client.Timeout)
		default:
			t.Fatalf("unexpected host %s", req.URL.Host)
		}
		seen[req.URL.Host] = struct{}{}
	}
	require.Len(t, seen, 2)
}

func TestClient(t *testing.T) {
	client := rhttp.NewAgent().Client(rhttp.HandleOptions{Timeout: 2 * time.Second, ConnectTimeout: time.Second})
	require.Equal(t, 2*time.Second, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	require.True(t, transport.DisableKeepAlives)
	require.Equal(t, time.Second, transport.TLSHandshakeTimeout)
	require.ErrorIs(t, client.CheckRedirect(&http.Request{}, nil), http.ErrUseLastResponse)
}

func TestWithMaxParallelNegative(t *testing.T) {
	fake := &httpfakes.FakeAgentImplementation{}
	fake.SendGetRequestReturns(getTestResponse(http.StatusOK), nil)

	agent := rhttp.NewAgent().WithMaxParallel(-1)
	agent.SetImplementation(fake)

	m := agent.NewMultiplexer()
	defer m.Close()

	h, err := agent.NewHandle("http://example.com", rhttp.HandleOptions{})
	require.NoError(t, err)
	require.NoError(t, m.Register(h))
	require.Len(t, driveToCompletion(t, m), 1)
}

func TestTransportError(t *testing.T) {
	fake := &httpfakes.FakeAgentImplementation{}
	fake.SendGetRequestReturns(nil, errors.New("unsupported protocol scheme \"ftp\""))

	agent := rhttp.NewAgent()
	agent.SetImplementation(fake)

	m := agent.NewMultiplexer()
	defer m.Close()

	h, err := agent.NewHandle("ftp://example.com", rhttp.HandleOptions{})
	require.NoError(t, err)
	require.NoError(t, m.Register(h))

	msgs := driveToCompletion(t, m)
	require.Len(t, msgs, 1)
	require.Equal(t, rhttp.CodeUnsupportedProtocol, msgs[0].Result)

	code, msg := h.Error()
	require.Equal(t, rhttp.CodeUnsupportedProtocol, code)
	require.Contains(t, msg, "unsupported protocol")

	info, err := h.Info()
	require.NoError(t, err)
	require.Empty(t, info.URL)
	require.Zero(t, info.StatusCode)
}
