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

package dining

import (
	"context"
	"fmt"

	"github.com/Vincent-Ha/Dining-Philosophers/eventlog"
)

// A Table owns a fixed pool of chopsticks arranged in a cycle and the
// philosophers seated between them. All chopsticks are created before
// any philosopher starts and outlive every philosopher task.
//
// A Table runs once; it should not be reused across calls to
// [Table.Run].
type Table struct {
	chopsticks []*Chopstick
	seats      []*Philosopher
	events     *Events
	runner     Runner
}

// NewTable builds a table of count chopsticks, indexed 0..count-1, and
// count philosophers paired to their neighboring chopsticks. It
// returns [ErrInvalidConfiguration] if count is less than 2: a single
// philosopher would need the same chopstick on both sides.
func NewTable(count int) (*Table, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: need at least 2 philosophers, have %d",
			ErrInvalidConfiguration, count)
	}

	t := &Table{}
	t.chopsticks = make([]*Chopstick, count)
	for i := range t.chopsticks {
		t.chopsticks[i] = NewChopstick(i)
	}

	t.seats = make([]*Philosopher, count)
	for k := 1; k <= count; k++ {
		low, high := chopsticksFor(k, count)
		p, err := NewPhilosopher(k, t.chopsticks[low], t.chopsticks[high])
		if err != nil {
			return nil, err
		}
		t.seats[k-1] = p
	}
	return t, nil
}

// chopsticksFor returns the ascending table indices of the two
// chopsticks used by philosopher k (1-indexed) at a table of n.
// Philosopher k sits between chopsticks (k-2+n) mod n and (k-1) mod n,
// so the wrap-around seat (k=1) uses chopsticks 0 and n-1. Returning
// the indices in ascending order is what breaks the circular wait: if
// the wrap-around philosopher grabbed its spatially left chopstick
// (index n-1) first, the cycle would be complete.
func chopsticksFor(k, n int) (low, high int) {
	low = (k + n - 2) % n
	high = (k + n - 1) % n
	if low > high {
		low, high = high, low
	}
	return low, high
}

// SetEvents injects observer callbacks into the table. This method
// should be called prior to [Table.Run].
func (t *Table) SetEvents(events *Events) {
	t.events = events
}

// SetLogger routes chopstick pickups and eating reports to the given
// logger. This method should be called prior to [Table.Run]. A nil
// logger disables output.
func (t *Table) SetLogger(logger eventlog.Logger) {
	if logger == nil {
		logger = eventlog.Nop()
	}
	for _, c := range t.chopsticks {
		c.logger = logger
	}
	for _, p := range t.seats {
		p.logger = logger
	}
}

// SetRunner replaces the default [GoRunner] used to start philosopher
// tasks. This method should be called prior to [Table.Run].
func (t *Table) SetRunner(runner Runner) {
	t.runner = runner
}

// Run starts one task per philosopher and blocks until all of them
// have finished, returning the first failure observed after every task
// has been joined. No task is left running when Run returns, and every
// chopstick is back in the free state.
func (t *Table) Run(ctx context.Context) error {
	runner := t.runner
	if runner == nil {
		runner = GoRunner(ctx)
	}

	outcomes := make([]Outcome, len(t.seats))
	for i, p := range t.seats {
		p := p
		outcomes[i] = p.Outcome()
		if err := runner.Go(func(context.Context) { p.run(t.events) }); err != nil {
			p.outcome.Set(StatusFor(err))
		}
	}
	return Wait(ctx, outcomes)
}

// Wait blocks until every outcome reaches a terminal status, then
// returns the first error observed in seat order. Unlike a
// fail-fast wait, it drains all outcomes before returning so that no
// philosopher is left running behind the caller's back.
func Wait(ctx context.Context, outcomes []Outcome) error {
	var first error
	for _, outcome := range outcomes {
		for {
			status, changed := outcome.Get()
			if status.Done() {
				if first == nil {
					first = status.Err()
				}
				break
			}
			select {
			case <-changed:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return first
}
