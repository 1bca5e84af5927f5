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
	"sort"
	"sync"

	"github.com/google/uuid"
)

// ErrorKind names the kind of failure recorded in the error log.
type ErrorKind string

const (
	// InvalidURL is a URL that is empty once normalized.
	InvalidURL ErrorKind = "InvalidURL"
	// RegisterFailed is a handle that could not be created or registered.
	RegisterFailed ErrorKind = "RegisterFailed"
	// ExecFailed is a failed drive of the multiplexer.
	ExecFailed ErrorKind = "ExecFailed"
	// NoResourceProvided is a completion without a handle.
	NoResourceProvided ErrorKind = "NoResourceProvided"
	// NoURLInResult is a completed probe that could not be resolved to a URL.
	NoURLInResult ErrorKind = "NoURLInResult"
)

// ErrorKinds lists every kind of failure.
var ErrorKinds = []ErrorKind{InvalidURL, RegisterFailed, ExecFailed, NoResourceProvided, NoURLInResult}

const syntheticPrefix = "unknown_"

func syntheticKey() string {
	return syntheticPrefix + uuid.NewString()
}

// errorLog records failures per key and kind. Entries are overwritten per
// (key, kind) and never cleared.
type errorLog struct {
	mu      sync.RWMutex
	entries map[string]map[ErrorKind]string
	targets map[string]map[string]struct{}
}

func newErrorLog() *errorLog {
	return &errorLog{
		entries: map[string]map[ErrorKind]string{},
		targets: map[string]map[string]struct{}{},
	}
}

// record stores msg under key and kind, attributing it to urls.
func (l *errorLog) record(key string, kind ErrorKind, msg string, urls ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.entries[key] == nil {
		l.entries[key] = map[ErrorKind]string{}
	}
	l.entries[key][kind] = msg

	if len(urls) == 0 {
		return
	}
	if l.targets[key] == nil {
		l.targets[key] = map[string]struct{}{}
	}
	for _, url := range urls {
		l.targets[key][url] = struct{}{}
	}
}

func (l *errorLog) snapshot() map[string]map[ErrorKind]string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]map[ErrorKind]string, len(l.entries))
	for key, kinds := range l.entries {
		out[key] = make(map[ErrorKind]string, len(kinds))
		for kind, msg := range kinds {
			out[key][kind] = msg
		}
	}
	return out
}

func (l *errorLog) targetsOf(key string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	urls := make([]string, 0, len(l.targets[key]))
	for url := range l.targets[key] {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}
