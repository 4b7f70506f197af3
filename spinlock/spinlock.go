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

// Package spinlock provides a minimal mutual-exclusion primitive built
// on a single atomic flag.
//
// Acquisition busy-waits instead of parking the calling goroutine on a
// wait queue. That trades scheduling efficiency for simplicity, which
// is acceptable when critical sections are short and contention is
// bounded. No fairness is provided: a spinning goroutine may be
// overtaken by later arrivals.
package spinlock

import (
	"runtime"
	"sync/atomic"
)

// A Lock is a test-and-set spin lock. The zero value is an unlocked
// Lock. A Lock must not be copied after first use.
//
// The lock is not reentrant. A goroutine that already holds the lock
// must not call Lock again: it would spin forever waiting on itself.
type Lock struct {
	held atomic.Bool
}

// Lock acquires the lock, spinning until the flag transitions from
// free to held. The transition is a single compare-and-swap, so
// exactly one of any number of simultaneous contenders wins.
func (l *Lock) Lock() {
	for !l.held.CompareAndSwap(false, true) {
		// Let the current holder make progress.
		runtime.Gosched()
	}
}

// TryLock makes a single acquisition attempt without spinning and
// reports whether it succeeded.
func (l *Lock) TryLock() bool {
	return l.held.CompareAndSwap(false, true)
}

// Unlock releases the lock. Only the current holder may call Unlock;
// releasing a free lock is always a caller bug, so it panics rather
// than being silently tolerated.
func (l *Lock) Unlock() {
	if !l.held.CompareAndSwap(true, false) {
		panic("spinlock: unlock of unlocked Lock")
	}
}
