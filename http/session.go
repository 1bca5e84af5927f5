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
	"io"
	"net"
	"net/http"
	"net/http/httptrace"
	"sync"
	"time"
)

// Handle is a single in-flight GET request owned by a multiplexer.
//
//counterfeiter:generate -header ../hack/boilerplate/boilerplate.generatego.txt . Handle
type Handle interface {
	// URL returns the URL the handle was created for.
	URL() string
	// Error returns the transport error of the completed request.
	Error() (ErrorCode, string)
	// Content returns the response body.
	Content() []byte
	// Info returns the response metadata of the completed request.
	Info() (Info, error)
	// Close releases the handle resources.
	Close() error
}

// Info is the response metadata of a completed handle.
type Info struct {
	URL           string        // Effective URL, empty when no response was received
	StatusCode    int           // HTTP status code, 0 on transport failure
	RedirectCount int           // Number of redirects followed
	RedirectURL   string        // Target a redirect response points to
	PrimaryIP     string        // Remote address of the connection used
	TotalTime     time.Duration // Time from dispatch until the body was read
	Msg           string        // Completion message, the HTTP status line
	Result        ErrorCode     // Transport result code
	Header        http.Header   // Captured response headers
}

// Session is the Handle implementation created by an Agent.
type Session struct {
	url     string
	opts    HandleOptions
	client  *http.Client
	request *http.Request

	mu        sync.Mutex
	cancel    context.CancelFunc
	completed bool
	closed    bool
	code      ErrorCode
	errMsg    string
	content   []byte
	info      Info
}

func newSession(url string, opts HandleOptions, client *http.Client) (*Session, error) {
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("building GET request: %w", err)
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	req.Close = true

	return &Session{
		url:     url,
		opts:    opts,
		client:  client,
		request: req,
	}, nil
}

// URL returns the URL the session was created for.
func (s *Session) URL() string {
	return s.url
}

// Error returns the transport error code and message.
func (s *Session) Error() (ErrorCode, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code, s.errMsg
}

// Content returns the response body read by the session.
func (s *Session) Content() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}

// Info returns the response metadata. It fails until the session completed.
func (s *Session) Info() (Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Info{}, ErrHandleClosed
	}
	if !s.completed {
		return Info{}, ErrHandleIncomplete
	}
	return s.info, nil
}

// Close releases the connection resources of the session.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrHandleClosed
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	s.client.CloseIdleConnections()
	return nil
}

// perform runs the request to completion. It blocks and is meant to run on a
// goroutine owned by the multiplexer.
func (s *Session) perform(ctx context.Context, impl AgentImplementation) {
	var primaryIP string
	trace := &httptrace.ClientTrace{
		GotConn: func(conn httptrace.GotConnInfo) {
			if conn.Conn == nil {
				return
			}
			host, _, err := net.SplitHostPort(conn.Conn.RemoteAddr().String())
			if err == nil {
				primaryIP = host
			}
		},
	}

	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	start := time.Now()
	req := s.request.WithContext(httptrace.WithClientTrace(ctx, trace))

	//nolint: bodyclose // closed below once read
	resp, err := impl.SendGetRequest(s.client, req)
	if err != nil {
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}
		s.complete(classifyError(err), err.Error(), nil, Info{
			PrimaryIP: primaryIP,
			TotalTime: time.Since(start),
			Result:    classifyError(err),
		})
		return
	}
	if resp.Body == nil {
		resp.Body = http.NoBody
	}
	defer resp.Body.Close()

	content, readErr := io.ReadAll(resp.Body)
	info := Info{
		URL:        s.request.URL.String(),
		StatusCode: resp.StatusCode,
		PrimaryIP:  primaryIP,
		TotalTime:  time.Since(start),
		Msg:        resp.Status,
		Header:     resp.Header.Clone(),
	}
	if resp.Request != nil && resp.Request.URL != nil {
		info.URL = resp.Request.URL.String()
	}
	if location, err := resp.Location(); err == nil {
		info.RedirectURL = location.String()
	}

	code, msg := CodeOK, ""
	if readErr != nil {
		code, msg = classifyError(readErr), readErr.Error()
	}
	info.Result = code
	s.complete(code, msg, content, info)
}

func (s *Session) complete(code ErrorCode, msg string, content []byte, info Info) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed = true
	s.code = code
	s.errMsg = msg
	s.content = content
	s.info = info
}
