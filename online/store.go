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

// resultStore caches the last result of every resolved URL.
type resultStore struct {
	mu      sync.RWMutex
	results map[string]ProbeResult
}

func newResultStore() *resultStore {
	return &resultStore{results: map[string]ProbeResult{}}
}

func (s *resultStore) put(r ProbeResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[r.url] = r
}

func (s *resultStore) get(url string) (ProbeResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.results[url]
	return r, ok
}

// all returns the stored results sorted by URL.
func (s *resultStore) all() []ProbeResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]ProbeResult, 0, len(s.results))
	for _, r := range s.results {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].url < results[j].url
	})
	return results
}
