/*
Copyright 2024 The Kubernetes Authors.

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
Package http provides the transport used to probe many URLs at once from a
single control flow.

# Handles and Multiplexers

An Agent creates two kinds of objects:

	NewHandle(url string, opts HandleOptions) (Handle, error)
	NewMultiplexer() Multiplexer

A Handle is one GET request. It always uses a fresh connection, never
follows redirects and captures the response headers. A Multiplexer drives
any number of handles:

	m := agent.NewMultiplexer()
	defer m.Close()

	h, _ := agent.NewHandle("https://example.com", http.HandleOptions{})
	_ = m.Register(h)

	running, err := m.Drive()
	for running > 0 {
		if m.Wait(time.Second) == http.WaitIndeterminate {
			time.Sleep(5 * time.Second)
		}
		running, err = m.Drive()
		for _, msg := range m.Completed() {
			info, _ := msg.Handle.Info()
			// use info
			_ = m.Deregister(msg.Handle)
			_ = msg.Handle.Close()
		}
	}

Drive never blocks. It returns ErrCallMultiPerform when it should be called
again right away. Wait is the only blocking call and returns as soon as a
handle completes.

# Parallelism

Every registered handle performs its round trip on its own goroutine inside
the multiplexer. The number of handles performing at the same time can be
bounded with the .WithMaxParallel(int) option:

	agent := http.NewAgent().WithMaxParallel(10)

# Errors

Transport failures are reported per handle as an ErrorCode whose values
follow libcurl's numbering, for example CodeCouldntResolveHost (6) or
CodeOperationTimedout (28).
*/
package http
