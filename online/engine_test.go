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
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	rhttp "sigs.k8s.io/online/http"
	"sigs.k8s.io/online/http/httpfakes"
)

func newFakeHandle(url string, info rhttp.Info) *httpfakes.FakeHandle {
	h := &httpfakes.FakeHandle{}
	h.URLReturns(url)
	h.InfoReturns(info, nil)
	h.ContentReturns([]byte("hello online!"))
	return h
}

// newFakeEngine returns an engine whose transport hands out the given
// handles by URL and always returns multi as multiplexer.
func newFakeEngine(
	t *testing.T, multi *httpfakes.FakeMultiplexer, handles map[string]*httpfakes.FakeHandle,
) (*Engine, *httpfakes.FakeTransport) {
	t.Helper()
	transport := &httpfakes.FakeTransport{}
	transport.NewMultiplexerReturns(multi)
	transport.NewHandleCalls(func(url string, _ rhttp.HandleOptions) (rhttp.Handle, error) {
		h, ok := handles[url]
		if !ok {
			return nil, errors.New("no handle for " + url)
		}
		return h, nil
	})

	e := New().WithClock(testingclock.NewFakeClock(time.Now()))
	e.SetTransport(transport)
	for url := range handles {
		_, err := e.Register(url)
		require.NoError(t, err)
	}
	return e, transport
}

func syntheticKeys(log map[string]map[ErrorKind]string) []string {
	keys := []string{}
	for key := range log {
		if strings.HasPrefix(key, syntheticPrefix) {
			keys = append(keys, key)
		}
	}
	return keys
}

func TestRunEmptyPendingSet(t *testing.T) {
	multi := &httpfakes.FakeMultiplexer{}
	e, transport := newFakeEngine(t, multi, nil)

	e.Run()

	require.Zero(t, transport.NewMultiplexerCallCount())
	require.Zero(t, transport.NewHandleCallCount())
	require.Zero(t, multi.CloseCallCount())
	require.Empty(t, e.Errors())
	require.Empty(t, e.Results())
	require.Equal(t, StateIdle, e.State())
}

func TestRunStoresResults(t *testing.T) {
	ok := newFakeHandle("http://ok.example", rhttp.Info{
		URL: "http://ok.example/", StatusCode: 200, PrimaryIP: "10.0.0.1",
		TotalTime: 30 * time.Millisecond, Msg: "200 OK",
	})
	missing := newFakeHandle("http://missing.example", rhttp.Info{
		URL: "http://missing.example", StatusCode: 404, Msg: "404 Not Found",
	})
	refused := newFakeHandle("http://refused.example", rhttp.Info{Result: rhttp.CodeCouldntConnect})
	refused.ErrorReturns(rhttp.CodeCouldntConnect, "connection refused")
	refused.ContentReturns(nil)

	multi := &httpfakes.FakeMultiplexer{}
	multi.DriveReturnsOnCall(0, 3, rhttp.ErrCallMultiPerform)
	multi.DriveReturnsOnCall(1, 3, nil)
	multi.DriveReturnsOnCall(2, 0, nil)
	multi.CompletedReturnsOnCall(1, []rhttp.Message{
		{Handle: missing}, {Handle: refused, Result: rhttp.CodeCouldntConnect}, {Handle: ok},
	})

	e, _ := newFakeEngine(t, multi, map[string]*httpfakes.FakeHandle{
		"http://ok.example": ok, "http://missing.example": missing, "http://refused.example": refused,
	})
	e.Run()

	res, err := e.Get("http://ok.example/")
	require.NoError(t, err)
	require.NotNil(t, res)
	require.True(t, res.IsOK())
	require.False(t, res.IsRedirect())
	require.Equal(t, "http://ok.example", res.URL())
	require.Equal(t, "10.0.0.1", res.IP())
	require.Equal(t, 30*time.Millisecond, res.Time())
	require.Equal(t, "200 OK", res.Message())
	require.True(t, res.Status())

	res, err = e.Get("http://missing.example")
	require.NoError(t, err)
	require.NotNil(t, res)
	require.False(t, res.IsOK())
	require.Equal(t, 404, res.StatusCode())

	res, err = e.Get("http://refused.example")
	require.NoError(t, err)
	require.Nil(t, res)

	log := e.Errors()
	require.Len(t, log, 1)
	keys := syntheticKeys(log)
	require.Len(t, keys, 1)
	require.Contains(t, log[keys[0]], NoURLInResult)
	require.Contains(t, log[keys[0]][NoURLInResult], "connection refused")
	require.Equal(t, []string{"http://refused.example"}, e.ErrorTargets(keys[0]))

	require.Equal(t, 3, multi.RegisterCallCount())
	require.Equal(t, 3, multi.DeregisterCallCount())
	require.Equal(t, 1, multi.CloseCallCount())
	for _, h := range []*httpfakes.FakeHandle{ok, missing, refused} {
		require.Equal(t, 1, h.CloseCallCount())
	}
	require.Equal(t, StateClosed, e.State())
	require.Len(t, e.Pending(), 3, "the pending set survives a run")
}

func TestRunRegisterFailed(t *testing.T) {
	rejected := newFakeHandle("http://b.example", rhttp.Info{})
	stuck := newFakeHandle("http://c.example", rhttp.Info{})

	multi := &httpfakes.FakeMultiplexer{}
	multi.RegisterReturnsOnCall(0, errors.New("rejected"))
	multi.DriveReturns(0, nil)

	e, transport := newFakeEngine(t, multi, map[string]*httpfakes.FakeHandle{
		"http://b.example": rejected, "http://c.example": stuck,
	})
	// No handle exists for this one, NewHandle fails.
	_, err := e.Register("http://a.example")
	require.NoError(t, err)

	e.Run()

	require.Equal(t, 3, transport.NewHandleCallCount())
	log := e.Errors()
	require.Len(t, log, 2)
	require.Contains(t, log["http://a.example"][RegisterFailed], "no handle for http://a.example")
	require.Equal(t, "rejected", log["http://b.example"][RegisterFailed])
	require.Equal(t, []string{"http://b.example"}, e.ErrorTargets("http://b.example"))

	// The rejected handle was never registered, it is only closed.
	require.Equal(t, 1, rejected.CloseCallCount())

	// The registered handle never completed and is released on close.
	require.Equal(t, 1, stuck.CloseCallCount())
	require.Equal(t, 1, multi.DeregisterCallCount())
	require.Equal(t, stuck, multi.DeregisterArgsForCall(0))
	require.Equal(t, 1, multi.CloseCallCount())
	require.Empty(t, e.Results())
}

func TestRunExecFailed(t *testing.T) {
	h := newFakeHandle("http://a.example", rhttp.Info{URL: "http://a.example", StatusCode: 200})

	multi := &httpfakes.FakeMultiplexer{}
	multi.DriveReturnsOnCall(0, 1, errors.New("out of memory"))
	multi.DriveReturnsOnCall(1, 0, nil)
	multi.CompletedReturnsOnCall(1, []rhttp.Message{{Handle: h}})

	e, _ := newFakeEngine(t, multi, map[string]*httpfakes.FakeHandle{"http://a.example": h})
	e.Run()

	log := e.Errors()
	require.Len(t, log, 1)
	for key, kinds := range log {
		require.Equal(t, "out of memory", kinds[ExecFailed])
		require.True(t, strings.HasSuffix(key, "-1"), key)
		_, err := uuid.Parse(strings.TrimSuffix(key, "-1"))
		require.NoError(t, err)
		require.Equal(t, []string{"http://a.example"}, e.ErrorTargets(key))
	}

	// Polling continued after the failed drive.
	res, err := e.Get("http://a.example")
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, 1, h.CloseCallCount())
}

func TestRunGivesUpAfterFailedDrives(t *testing.T) {
	h := newFakeHandle("http://a.example", rhttp.Info{URL: "http://a.example", StatusCode: 200})

	multi := &httpfakes.FakeMultiplexer{}
	multi.DriveReturns(1, errors.New("multiplexer broken"))
	multi.WaitReturns(rhttp.WaitTimeout)

	e, _ := newFakeEngine(t, multi, map[string]*httpfakes.FakeHandle{"http://a.example": h})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return while drives kept failing")
	}

	require.Equal(t, maxFailedDrives, multi.DriveCallCount())
	log := e.Errors()
	require.Len(t, log, maxFailedDrives)
	for key, kinds := range log {
		require.Equal(t, "multiplexer broken", kinds[ExecFailed])
		require.Equal(t, []string{"http://a.example"}, e.ErrorTargets(key))
	}

	require.Empty(t, e.Results())
	require.Equal(t, 1, h.CloseCallCount())
	require.Equal(t, 1, multi.DeregisterCallCount())
	require.Equal(t, 1, multi.CloseCallCount())
	require.Equal(t, StateClosed, e.State())
}

func TestRunFailedDrivesResetOnSuccess(t *testing.T) {
	h := newFakeHandle("http://a.example", rhttp.Info{URL: "http://a.example", StatusCode: 200})

	multi := &httpfakes.FakeMultiplexer{}
	calls := 0
	multi.DriveCalls(func() (int, error) {
		calls++
		switch {
		case calls == 2*maxFailedDrives:
			return 0, nil
		case calls%maxFailedDrives == 0:
			return 1, nil
		}
		return 1, errors.New("transient")
	})
	multi.WaitReturns(rhttp.WaitTimeout)
	multi.CompletedCalls(func() []rhttp.Message {
		if calls == 2*maxFailedDrives {
			return []rhttp.Message{{Handle: h}}
		}
		return nil
	})

	e, _ := newFakeEngine(t, multi, map[string]*httpfakes.FakeHandle{"http://a.example": h})
	e.Run()

	require.Equal(t, 2*maxFailedDrives, multi.DriveCallCount())
	require.Len(t, e.Errors(), 2*(maxFailedDrives-1))

	res, err := e.Get("http://a.example")
	require.NoError(t, err)
	require.NotNil(t, res)
	require.True(t, res.IsOK())
}

func TestRunNoResourceProvided(t *testing.T) {
	h := newFakeHandle("http://a.example", rhttp.Info{URL: "http://a.example", StatusCode: 204})

	multi := &httpfakes.FakeMultiplexer{}
	multi.CompletedReturnsOnCall(0, []rhttp.Message{{}, {Handle: h}})

	e, _ := newFakeEngine(t, multi, map[string]*httpfakes.FakeHandle{"http://a.example": h})
	e.Run()

	log := e.Errors()
	keys := syntheticKeys(log)
	require.Len(t, keys, 1)
	require.Equal(t, "no handle provided", log[keys[0]][NoResourceProvided])
	require.Empty(t, e.ErrorTargets(keys[0]))

	res, err := e.Get("http://a.example")
	require.NoError(t, err)
	require.NotNil(t, res)
	require.True(t, res.IsOK())
}

func TestRunResultConstructionFails(t *testing.T) {
	h := &httpfakes.FakeHandle{}
	h.URLReturns("http://a.example")
	h.InfoReturns(rhttp.Info{}, rhttp.ErrHandleIncomplete)

	multi := &httpfakes.FakeMultiplexer{}
	multi.CompletedReturnsOnCall(0, []rhttp.Message{{Handle: h}})

	e, _ := newFakeEngine(t, multi, map[string]*httpfakes.FakeHandle{"http://a.example": h})
	e.Run()

	log := e.Errors()
	keys := syntheticKeys(log)
	require.Len(t, keys, 1)
	require.Contains(t, log[keys[0]][NoURLInResult], rhttp.ErrHandleIncomplete.Error())
	require.Equal(t, []string{"http://a.example"}, e.ErrorTargets(keys[0]))
	require.Empty(t, e.Results())
	require.Equal(t, 1, h.CloseCallCount())
	require.Equal(t, 1, multi.DeregisterCallCount())
}

func TestRunDrainsHandleOnce(t *testing.T) {
	h := newFakeHandle("http://a.example", rhttp.Info{URL: "http://a.example", StatusCode: 200})

	multi := &httpfakes.FakeMultiplexer{}
	multi.CompletedReturnsOnCall(0, []rhttp.Message{{Handle: h}, {Handle: h}})

	e, _ := newFakeEngine(t, multi, map[string]*httpfakes.FakeHandle{"http://a.example": h})
	e.Run()

	require.Equal(t, 1, h.InfoCallCount())
	require.Equal(t, 1, h.CloseCallCount())
	require.Equal(t, 1, multi.DeregisterCallCount())
	require.Empty(t, e.Errors())
}

func TestRunWaitIndeterminate(t *testing.T) {
	h := newFakeHandle("http://a.example", rhttp.Info{URL: "http://a.example", StatusCode: 200})

	multi := &httpfakes.FakeMultiplexer{}
	multi.DriveReturnsOnCall(0, 1, nil)
	multi.DriveReturnsOnCall(1, 1, nil)
	multi.DriveReturnsOnCall(2, 0, nil)
	multi.WaitReturnsOnCall(0, rhttp.WaitIndeterminate)
	multi.WaitReturnsOnCall(1, rhttp.WaitTimeout)
	multi.CompletedReturnsOnCall(2, []rhttp.Message{{Handle: h}})

	start := time.Now()
	clk := testingclock.NewFakeClock(start)
	e, _ := newFakeEngine(t, multi, map[string]*httpfakes.FakeHandle{"http://a.example": h})
	e.WithClock(clk).WithWaitTimeout(250 * time.Millisecond)
	e.Run()

	require.Equal(t, 2, multi.WaitCallCount())
	require.Equal(t, 250*time.Millisecond, multi.WaitArgsForCall(0))
	require.Equal(t, DefaultFallbackSleep, clk.Since(start), "only the indeterminate wait sleeps")

	res, err := e.Get("http://a.example")
	require.NoError(t, err)
	require.NotNil(t, res)
}

func TestConfigureAffectsLaterDispatches(t *testing.T) {
	h := newFakeHandle("http://a.example", rhttp.Info{URL: "http://a.example", StatusCode: 200})
	multi := &httpfakes.FakeMultiplexer{}
	e, transport := newFakeEngine(t, multi, map[string]*httpfakes.FakeHandle{"http://a.example": h})

	require.NoError(t, e.Configure(3*time.Second, "first-agent"))
	e.Run()
	require.NoError(t, e.Configure(7*time.Second, "second-agent"))

	_, opts := transport.NewHandleArgsForCall(0)
	require.Equal(t, rhttp.HandleOptions{
		UserAgent: "first-agent", Timeout: 3 * time.Second, ConnectTimeout: 3 * time.Second,
	}, opts)

	e.Run()
	require.Equal(t, 2, transport.NewHandleCallCount())
	_, opts = transport.NewHandleArgsForCall(1)
	require.Equal(t, "second-agent", opts.UserAgent)
	require.Equal(t, 7*time.Second, opts.Timeout)
}

func TestConfigureValidation(t *testing.T) {
	for name, tc := range map[string]struct {
		timeout   time.Duration
		userAgent string
		mustErr   bool
	}{
		"should succeed":                 {timeout: time.Second, userAgent: "probe"},
		"should fail on zero timeout":     {timeout: 0, userAgent: "probe", mustErr: true},
		"should fail on negative timeout": {timeout: -time.Second, userAgent: "probe", mustErr: true},
		"should fail on empty user agent": {timeout: time.Second, userAgent: "", mustErr: true},
		"should fail on control chars":    {timeout: time.Second, userAgent: "probe\r\nX-Evil: 1", mustErr: true},
	} {
		t.Run(name, func(t *testing.T) {
			e := New()
			before := *e.options

			err := e.Configure(tc.timeout, tc.userAgent)
			if tc.mustErr {
				require.Error(t, err)
				require.Equal(t, before, *e.options)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.timeout, e.options.Timeout)
			require.Equal(t, tc.timeout, e.options.ConnectTimeout)
			require.Equal(t, tc.userAgent, e.options.UserAgent)
		})
	}
}

func TestDefaultsFromEnvironment(t *testing.T) {
	t.Setenv(EnvTimeout, "4s")
	t.Setenv(EnvConnectTimeout, "2s")
	t.Setenv(EnvUserAgent, "env-agent")

	e := New()
	require.Equal(t, 4*time.Second, e.options.Timeout)
	require.Equal(t, 2*time.Second, e.options.ConnectTimeout)
	require.Equal(t, "env-agent", e.options.UserAgent)
	require.NoError(t, e.options.Validate())

	t.Setenv(EnvTimeout, "soon")
	require.Equal(t, rhttp.DefaultTimeout, New().options.Timeout)
}

func TestStateString(t *testing.T) {
	for s, name := range map[State]string{
		StateIdle: "Idle", StateDispatching: "Dispatching", StatePolling: "Polling",
		StateDraining: "Draining", StateClosed: "Closed", State(9): "State(9)",
	} {
		require.Equal(t, name, s.String())
	}
}
