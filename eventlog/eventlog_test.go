// Copyright 2026 Vincent Ha
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package eventlog

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/ttycolor"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Concurrent writers must come out as whole lines, never interleaved
// fragments.
func TestConsoleSerializesWriters(t *testing.T) {
	const writers = 16
	const lines = 50
	r := require.New(t)

	var buf bytes.Buffer
	c := NewConsole(&buf, nil)

	var eg errgroup.Group
	for i := 0; i < writers; i++ {
		id := i + 1
		eg.Go(func() error {
			for j := 0; j < lines; j++ {
				c.Log(id, fmt.Sprintf("philosopher %d speaks", id))
			}
			return nil
		})
	}
	r.NoError(eg.Wait())

	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	r.Len(got, writers*lines)

	counts := make(map[string]int)
	for _, line := range got {
		counts[line]++
	}
	for i := 1; i <= writers; i++ {
		r.Equal(lines, counts[fmt.Sprintf("philosopher %d speaks", i)])
	}
}

func TestConsoleColor(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	c := NewConsole(&buf, ttycolor.Profile8)
	c.Log(1, "colored")

	out := buf.String()
	r.Contains(out, "colored")
	r.Contains(out, "\033[", "expected an ANSI escape sequence")
	r.True(strings.HasSuffix(out, "\n"))
}

func TestConsolePlain(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	c := NewConsole(&buf, nil)
	c.Log(7, "plain")
	r.Equal("plain\n", buf.String())
}

func TestNop(t *testing.T) {
	// Must be callable with any input, including out-of-range ids.
	Nop().Log(0, "dropped")
	Nop().Log(-1, "dropped")
}
