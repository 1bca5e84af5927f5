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
)

// registry is the deduplicated set of URLs waiting to be probed.
type registry struct {
	mu      sync.RWMutex
	pending map[string]string
}

func newRegistry() *registry {
	return &registry{pending: map[string]string{}}
}

func (r *registry) add(url string) (string, error) {
	normalized, err := Normalize(url)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending[normalized] = normalized
	return normalized, nil
}

// snapshot returns the pending URLs sorted.
func (r *registry) snapshot() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	urls := make([]string, 0, len(r.pending))
	for _, url := range r.pending {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}
