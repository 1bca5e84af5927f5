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
	"net/http"
	"time"

	rhttp "sigs.k8s.io/online/http"
)

var errNoURL = errors.New("no url in result")

// ProbeResult is the outcome of one completed probe. It is a value and is
// never modified once built.
type ProbeResult struct {
	requested     string
	url           string
	statusCode    int
	redirectCount int
	redirectURL   string
	ip            string
	elapsed       time.Duration
	errNo         rhttp.ErrorCode
	errMsg        string
	message       string
	result        rhttp.ErrorCode
	header        http.Header
	content       []byte
}

// newProbeResult snapshots a completed handle. On error the returned result
// holds whatever could be read and must not be stored.
func newProbeResult(h rhttp.Handle) (ProbeResult, error) {
	r := ProbeResult{requested: h.URL()}
	r.errNo, r.errMsg = h.Error()
	r.content = h.Content()

	info, err := h.Info()
	if err != nil {
		return r, fmt.Errorf("preparing result of %s: %w", r.requested, err)
	}
	r.statusCode = info.StatusCode
	r.redirectCount = info.RedirectCount
	r.redirectURL = info.RedirectURL
	r.ip = info.PrimaryIP
	r.elapsed = info.TotalTime
	r.message = info.Msg
	r.result = info.Result
	r.header = info.Header

	if info.URL == "" {
		if r.errNo != rhttp.CodeOK {
			return r, fmt.Errorf("%w: %d - %s", errNoURL, r.errNo, r.errMsg)
		}
		return r, errNoURL
	}

	url, err := Normalize(info.URL)
	if err != nil {
		return r, fmt.Errorf("%w: %w", errNoURL, err)
	}
	r.url = url
	return r, nil
}

// URL is the normalized URL the result is stored under.
func (r *ProbeResult) URL() string { return r.url }

// RequestedURL is the URL the probe was dispatched for.
func (r *ProbeResult) RequestedURL() string { return r.requested }

// StatusCode is the HTTP status code, 0 when no response was received.
func (r *ProbeResult) StatusCode() int { return r.statusCode }

// IsOK returns true for a 2xx status code.
func (r *ProbeResult) IsOK() bool {
	return r.statusCode >= 200 && r.statusCode < 300
}

// IsRedirect returns true for a 301 response or when redirects were counted.
func (r *ProbeResult) IsRedirect() bool {
	if r.statusCode == 0 {
		return false
	}
	return r.statusCode == http.StatusMovedPermanently || r.redirectCount > 0
}

// RedirectURL is the target reported by a redirect response.
func (r *ProbeResult) RedirectURL() string { return r.redirectURL }

// RedirectCount is the number of redirects followed.
func (r *ProbeResult) RedirectCount() int { return r.redirectCount }

// IP is the remote address the probe connected to.
func (r *ProbeResult) IP() string { return r.ip }

// Time is the total time of the probe.
func (r *ProbeResult) Time() time.Duration { return r.elapsed }

// ErrNo is the transport error code, CodeOK on success.
func (r *ProbeResult) ErrNo() rhttp.ErrorCode { return r.errNo }

// ErrorMessage is the transport error message.
func (r *ProbeResult) ErrorMessage() string { return r.errMsg }

// Message is the completion message, the HTTP status line.
func (r *ProbeResult) Message() string { return r.message }

// Result is the transport result code of the completed request.
func (r *ProbeResult) Result() rhttp.ErrorCode { return r.result }

// Status returns true when the probe received content.
func (r *ProbeResult) Status() bool { return len(r.content) > 0 }

// Header returns a copy of the captured response headers.
func (r *ProbeResult) Header() http.Header { return r.header.Clone() }

// Content returns a copy of the response body.
func (r *ProbeResult) Content() []byte {
	if r.content == nil {
		return nil
	}
	return append([]byte{}, r.content...)
}

// outcome classifies the result for metrics.
func (r *ProbeResult) outcome() string {
	if r.IsOK() {
		return outcomeOK
	}
	return outcomeHTTPError
}
