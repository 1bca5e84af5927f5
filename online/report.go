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
	"fmt"
	"io"
	"strconv"
	"time"

	rhttp "sigs.k8s.io/online/http"
	"sigs.k8s.io/online/util"
)

// Report writes a table of the stored results to w.
func (e *Engine) Report(w io.Writer) error {
	table := util.NewTableWriter(w)
	table.Header("URL", "Status", "OK", "Redirect", "IP", "Time", "Error")

	for _, r := range e.store.all() {
		redirect := ""
		if r.IsRedirect() {
			redirect = r.RedirectURL()
		}
		transportErr := ""
		if r.ErrNo() != rhttp.CodeOK {
			transportErr = fmt.Sprintf("%d %s", r.ErrNo(), r.ErrNo())
		}

		if err := table.Append([]string{
			r.URL(),
			strconv.Itoa(r.StatusCode()),
			strconv.FormatBool(r.IsOK()),
			redirect,
			r.IP(),
			r.Time().Round(time.Millisecond).String(),
			transportErr,
		}); err != nil {
			return fmt.Errorf("adding %s to report: %w", r.URL(), err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}
