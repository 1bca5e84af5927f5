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

/*
Package online probes batches of HTTP(S) URLs for reachability.

URLs are registered on an Engine and probed together by Run, which performs
exactly one GET per URL without following redirects:

	e := online.New().WithTimeout(10 * time.Second)
	if _, err := e.Register("https://example.com/"); err != nil {
		return err
	}
	e.Run()

	res, err := e.Get("https://example.com")
	if err == nil && res != nil && res.IsOK() {
		// reachable
	}

# Normalization

URLs are trimmed of surrounding whitespace and slashes before use, so
" https://example.com/ " and "https://example.com" name the same target.
A URL that is empty after trimming fails with ErrInvalidURL.

# Failures

Run never fails. Per target failures are recorded in the error log returned
by Errors, keyed either by the URL or by a synthetic id. ErrorTargets tells
which URLs a synthetic id is attributed to. A URL whose probe could not be
resolved, for example because the connection failed, is absent from the
results.

# Run lifecycle

Each Run moves through the states Idle, Dispatching, Polling, Draining and
Closed. An empty pending set returns from Idle without creating any
transport resources. Results and errors persist across runs; probing a URL
again replaces its previous result.
*/
package online
