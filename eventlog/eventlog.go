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

// Package eventlog delivers human-readable dining progress to an
// output stream.
//
// Logging is a pure side effect of the protocol: it can be disabled
// entirely (see [Nop]) without affecting coordination. The console
// implementation serializes concurrent calls with an internal mutex so
// lines are never interleaved. That mutex is held around a single
// write only and never across any other lock acquisition, so it cannot
// participate in a lock-ordering cycle.
package eventlog

import (
	"fmt"
	"io"
	"sync"

	"github.com/cockroachdb/ttycolor"
)

// Logger receives one event per call. Implementations must serialize
// concurrent calls so that no partial lines are interleaved.
type Logger interface {
	// Log records a message attributed to the given 1-indexed
	// philosopher.
	Log(philosopher int, message string)
}

// Nop returns a Logger that discards all events.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Log(int, string) {}

// palette cycles the colors assigned to philosophers, matching the
// blue/green/red/yellow/white rotation of the original console demo.
var palette = []ttycolor.Code{
	ttycolor.Blue,
	ttycolor.Green,
	ttycolor.Red,
	ttycolor.Yellow,
	ttycolor.White,
}

// Console is a Logger that writes one line per event, colored per
// philosopher. A Console is internally synchronized and safe for
// concurrent use; it should not be copied after creation.
type Console struct {
	profile ttycolor.Profile

	mu struct {
		sync.Mutex
		out io.Writer
	}
}

var _ Logger = (*Console)(nil)

// NewConsole constructs a Console writing to out. The profile may be
// nil to disable color; pass [ttycolor.StdoutProfile] to colorize when
// the output is a terminal.
func NewConsole(out io.Writer, profile ttycolor.Profile) *Console {
	c := &Console{profile: profile}
	c.mu.out = out
	return c
}

// Log implements Logger.
func (c *Console) Log(philosopher int, message string) {
	idx := philosopher - 1
	if idx < 0 {
		idx = 0
	}
	code := palette[idx%len(palette)]

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.mu.out, "%s%s%s\n",
		c.profile[code], message, c.profile[ttycolor.Reset])
}
