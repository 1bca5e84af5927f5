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
	"io"

	"github.com/moby/term"
	"github.com/olekukonko/tablewriter"
)

// NewTableWriter creates a table writing to output. When output is a
// terminal the table is bounded to its width, explicit options win.
func NewTableWriter(output io.Writer, options ...tablewriter.Option) *tablewriter.Table {
	opts := []tablewriter.Option{}
	if width, ok := TerminalWidth(output); ok {
		opts = append(opts, tablewriter.WithMaxWidth(width))
	}
	opts = append(opts, options...)

	return tablewriter.NewTable(output, opts...)
}

// TerminalWidth returns the column count of w when it is a terminal.
func TerminalWidth(w io.Writer) (int, bool) {
	fd, isTerminal := term.GetFdInfo(w)
	if !isTerminal {
		return 0, false
	}

	size, err := term.GetWinsize(fd)
	if err != nil || size.Width == 0 {
		return 0, false
	}
	return int(size.Width), true
}
