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
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"strings"
)

var (
	// ErrCallMultiPerform is returned by Multiplexer.Drive when more work can
	// be done right away and the caller should drive again before waiting.
	ErrCallMultiPerform = errors.New("call multi perform again")

	// ErrMultiClosed is returned when operating on a closed multiplexer.
	ErrMultiClosed = errors.New("multiplexer is closed")

	// ErrHandleRegistered is returned when a handle is registered twice.
	ErrHandleRegistered = errors.New("handle already registered")

	// ErrHandleNotRegistered is returned when deregistering an unknown handle.
	ErrHandleNotRegistered = errors.New("handle not registered")

	// ErrForeignHandle is returned when a handle was not created by this package.
	ErrForeignHandle = errors.New("handle was not created by an http.Agent")

	// ErrHandleIncomplete is returned when reading info from a running handle.
	ErrHandleIncomplete = errors.New("handle has not completed")

	// ErrHandleClosed is returned when using a closed handle.
	ErrHandleClosed = errors.New("handle is closed")
)

// ErrorCode is the transport error number of a completed handle. Values
// mirror libcurl's CURLcode numbering.
type ErrorCode int

const (
	CodeOK                  ErrorCode = 0
	CodeUnsupportedProtocol ErrorCode = 1
	CodeURLMalformat        ErrorCode = 3
	CodeCouldntResolveHost  ErrorCode = 6
	CodeCouldntConnect      ErrorCode = 7
	CodeOperationTimedout   ErrorCode = 28
	CodeSSLConnectError     ErrorCode = 35
	CodeAbortedByCallback   ErrorCode = 42
	CodeGotNothing          ErrorCode = 52
	CodeSendError           ErrorCode = 55
	CodeRecvError           ErrorCode = 56
	CodePeerFailedVerify    ErrorCode = 60
	CodeUnknown             ErrorCode = 99
)

var codeNames = map[ErrorCode]string{
	CodeOK:                  "OK",
	CodeUnsupportedProtocol: "unsupported protocol",
	CodeURLMalformat:        "URL using bad/illegal format",
	CodeCouldntResolveHost:  "couldn't resolve host name",
	CodeCouldntConnect:      "couldn't connect to server",
	CodeOperationTimedout:   "timeout was reached",
	CodeSSLConnectError:     "SSL connect error",
	CodeAbortedByCallback:   "operation was aborted",
	CodeGotNothing:          "server returned nothing",
	CodeSendError:           "failed sending data to the peer",
	CodeRecvError:           "failure when receiving data from the peer",
	CodePeerFailedVerify:    "SSL peer certificate was not OK",
	CodeUnknown:             "unknown error",
}

// String returns a human readable description of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return codeNames[CodeUnknown]
}

// classifyError maps an error returned by a round trip to an ErrorCode.
func classifyError(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}

	var (
		dnsErr    *net.DNSError
		opErr     *net.OpError
		netErr    net.Error
		certErr   *tls.CertificateVerificationError
		unknownCA x509.UnknownAuthorityError
		hostErr   x509.HostnameError
		recordErr tls.RecordHeaderError
	)

	switch {
	case errors.Is(err, context.Canceled):
		return CodeAbortedByCallback
	case errors.Is(err, context.DeadlineExceeded):
		return CodeOperationTimedout
	case errors.As(err, &dnsErr):
		if dnsErr.IsTimeout {
			return CodeOperationTimedout
		}
		return CodeCouldntResolveHost
	case errors.As(err, &netErr) && netErr.Timeout():
		return CodeOperationTimedout
	case errors.As(err, &certErr), errors.As(err, &unknownCA), errors.As(err, &hostErr):
		return CodePeerFailedVerify
	case errors.As(err, &recordErr):
		return CodeSSLConnectError
	case errors.As(err, &opErr):
		switch opErr.Op {
		case "dial":
			return CodeCouldntConnect
		case "write":
			return CodeSendError
		case "read":
			return CodeRecvError
		}
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return CodeGotNothing
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "unsupported protocol scheme"):
		return CodeUnsupportedProtocol
	case strings.Contains(msg, "no Host in request URL"), strings.Contains(msg, "invalid URL"):
		return CodeURLMalformat
	case strings.Contains(msg, "tls:"):
		return CodeSSLConnectError
	}
	return CodeUnknown
}
