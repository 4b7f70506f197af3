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

/*
Package dining demonstrates deadlock-free acquisition of overlapping
resource pairs, in the shape of the classic dining philosophers
problem.

N philosophers sit at a round table with N chopsticks placed between
them. Before eating, a philosopher must hold both neighboring
chopsticks. If every philosopher grabbed their spatially left chopstick
first, each would end up holding one chopstick while waiting on a
neighbor, completing a cycle of waiters: a deadlock. The table instead
enforces a single global rule: every philosopher, including the one at
the wrap-around seat, acquires its two chopsticks in ascending table
index order. With a total order on acquisition there can be no cycle,
so every philosopher eventually eats.

	err := dining.Dine(ctx, 5)

The same rule applies anywhere two shared locks must be taken together,
such as transferring funds between two accounts: always lock the
account with the smaller identifier first.
*/
package dining

import (
	"context"
	"os"

	"github.com/Vincent-Ha/Dining-Philosophers/eventlog"
	"github.com/cockroachdb/ttycolor"
)

// Dine runs the full dining problem with count philosophers, writing
// colored progress to stdout. It returns once every philosopher has
// finished, or with the first failure after all of them have been
// joined.
func Dine(ctx context.Context, count int) error {
	t, err := NewTable(count)
	if err != nil {
		return err
	}
	t.SetLogger(eventlog.NewConsole(os.Stdout, ttycolor.StdoutProfile))
	return t.Run(ctx)
}
