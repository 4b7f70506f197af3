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
	"errors"
	"fmt"
	"runtime"

	"github.com/Vincent-Ha/Dining-Philosophers/eventlog"
	"github.com/cockroachdb/field-eng-powertools/notify"
)

// ErrInvalidConfiguration is returned when a table or a philosopher
// cannot be constructed from the given arguments.
var ErrInvalidConfiguration = errors.New("invalid table configuration")

// ErrInvalidPairing is returned when a philosopher would be assigned
// the same chopstick twice. It is reported before any lock is touched.
var ErrInvalidPairing = fmt.Errorf("%w: low and high chopsticks must differ", ErrInvalidConfiguration)

// A Philosopher is one concurrent task in a dining run. It holds
// references to the two chopsticks adjacent to its seat, ordered by
// table index: the smaller-indexed chopstick is always acquired first.
// A Philosopher runs to completion once started; it cannot be
// cancelled.
type Philosopher struct {
	id     int
	low    *Chopstick
	high   *Chopstick
	logger eventlog.Logger

	outcome notify.Var[*Status]
}

// NewPhilosopher pairs philosopher id (1-indexed) with its two
// chopsticks. The chopstick with the smaller index becomes the
// philosopher's low chopstick regardless of argument order. It returns
// [ErrInvalidPairing] if both arguments name the same chopstick.
func NewPhilosopher(id int, a, b *Chopstick) (*Philosopher, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil chopstick", ErrInvalidConfiguration)
	}
	if a == b || a.index == b.index {
		return nil, fmt.Errorf("%w: philosopher %d assigned chopstick %d on both sides",
			ErrInvalidPairing, id, a.index)
	}
	if a.index > b.index {
		a, b = b, a
	}
	p := &Philosopher{id: id, low: a, high: b, logger: eventlog.Nop()}
	p.outcome.Set(seated)
	return p, nil
}

// ID returns the philosopher's 1-indexed identity.
func (p *Philosopher) ID() int { return p.id }

// Outcome returns the philosopher's awaitable status. The status moves
// through the protocol states and settles on a terminal value once the
// philosopher is finished.
func (p *Philosopher) Outcome() Outcome { return &p.outcome }

// run executes the dining protocol and publishes the terminal status.
func (p *Philosopher) run(events *Events) {
	p.outcome.Set(StatusFor(p.dine(events)))
}

// dine acquires the low-indexed chopstick, then the high-indexed one,
// eats, and releases both on the way out. Acquiring strictly by
// ascending index is the entire deadlock-avoidance argument; see the
// package documentation.
//
// The releases are deferred so that both chopsticks return to the
// table on every exit path, including a panic in an event callback or
// logger. The panic handler is installed first so it also covers the
// release path. High is released before low by defer ordering, though
// once both chopsticks are held the release order is immaterial.
func (p *Philosopher) dine(events *Events) (err error) {
	defer func() {
		x := recover()
		switch t := x.(type) {
		case nil:
		// Success.
		case error:
			err = t
		default:
			err = fmt.Errorf("panic while dining: %v", t)
		}
	}()

	p.outcome.Set(acquiringLow)
	p.low.Acquire(p.id)
	defer func() {
		p.low.Release()
		events.doRelease(p.id, p.low.index)
	}()
	events.doAcquire(p.id, p.low.index)

	p.outcome.Set(acquiringHigh)
	p.high.Acquire(p.id)
	defer func() {
		p.high.Release()
		events.doRelease(p.id, p.high.index)
	}()
	events.doAcquire(p.id, p.high.index)

	p.outcome.Set(eating)
	runtime.Gosched()
	p.logger.Log(p.id, fmt.Sprintf("Philosopher %d eats.", p.id))
	events.doDine(p.id)
	return nil
}
