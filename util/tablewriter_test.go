/*
Copyright 2025 The Kubernetes Authors.

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

package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/olekukonko/tablewriter"
	"github.com/stretchr/testify/require"
)

func TestNewTableWriter(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		options  []tablewriter.Option
		header   []any
		rows     [][]string
		contains []string
	}{
		"NoOptions": {
			header:   []any{"URL", "Status"},
			rows:     [][]string{{"http://example.com", "200"}},
			contains: []string{"URL", "STATUS", "http://example.com", "200"},
		},
		"WithMaxWidth": {
			options:  []tablewriter.Option{tablewriter.WithMaxWidth(80)},
			header:   []any{"URL", "Status"},
			rows:     [][]string{{"http://example.com", "404"}},
			contains: []string{"http://example.com", "404"},
		},
		"WithHeaderOption": {
			options:  []tablewriter.Option{tablewriter.WithHeader([]string{"URL", "IP"})},
			rows:     [][]string{{"http://example.com", "127.0.0.1"}},
			contains: []string{"URL", "IP", "127.0.0.1"},
		},
		"MultipleRows": {
			header: []any{"URL", "Status", "OK"},
			rows: [][]string{
				{"http://a.example", "200", "true"},
				{"http://b.example", "301", "false"},
				{"http://c.example", "500", "false"},
			},
			contains: []string{"http://a.example", "http://b.example", "http://c.example", "301", "500"},
		},
		"EmptyTable": {
			header:   []any{"URL", "Status"},
			contains: []string{"URL", "STATUS"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var output bytes.Buffer
			table := NewTableWriter(&output, tc.options...)
			require.NotNil(t, table)
			require.IsType(t, &tablewriter.Table{}, table)

			if tc.header != nil {
				table.Header(tc.header...)
			}
			for _, row := range tc.rows {
				require.NoError(t, table.Append(row))
			}
			require.NoError(t, table.Render())

			rendered := output.String()
			for _, want := range tc.contains {
				require.Contains(t, strings.ToUpper(rendered), strings.ToUpper(want))
			}
		})
	}
}

func TestTerminalWidthNotATerminal(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	width, ok := TerminalWidth(&output)
	require.False(t, ok)
	require.Zero(t, width)
}
