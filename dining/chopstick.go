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
	"fmt"

	"github.com/Vincent-Ha/Dining-Philosophers/eventlog"
	"github.com/Vincent-Ha/Dining-Philosophers/spinlock"
)

// A Chopstick is a shared resource guarded by its own spin lock. Its
// table index is assigned at construction and never changes.
// Philosophers hold only transient references to chopsticks; the
// [Table] owns them for the duration of a run.
type Chopstick struct {
	index  int
	logger eventlog.Logger
	lock   spinlock.Lock
}

// NewChopstick constructs a free chopstick at the given table index.
func NewChopstick(index int) *Chopstick {
	return &Chopstick{index: index, logger: eventlog.Nop()}
}

// Index returns the chopstick's position at the table.
func (c *Chopstick) Index() int { return c.index }

// Acquire blocks until the chopstick is held exclusively by the
// calling philosopher, then reports the pickup. The report is
// cosmetic; disabling it does not affect the locking protocol.
func (c *Chopstick) Acquire(philosopher int) {
	c.lock.Lock()
	c.logger.Log(philosopher,
		fmt.Sprintf("Philosopher %d picked up chopstick %d.", philosopher, c.index))
}

// Release returns the chopstick to the table. Only the current holder
// may call Release.
func (c *Chopstick) Release() {
	c.lock.Unlock()
}
