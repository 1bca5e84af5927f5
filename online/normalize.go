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
	"strings"
)

// ErrInvalidURL is returned for a URL that is empty once normalized.
var ErrInvalidURL = errors.New("the provided URL has no valid content")

// cutset is trimmed from both ends of every URL.
const cutset = " \t\n\r\x00\x0b/"

// Normalize trims surrounding whitespace and slashes from url. It fails with
// ErrInvalidURL when nothing is left. Normalize is idempotent.
func Normalize(url string) (string, error) {
	normalized := strings.Trim(url, cutset)
	if normalized == "" {
		return "", fmt.Errorf("normalizing %q: %w", url, ErrInvalidURL)
	}
	return normalized, nil
}
