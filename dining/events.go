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

// Events provides a [Table] with optional callbacks to observe the
// progress of the dining protocol.
//
// Callbacks run on the philosopher's goroutine, possibly while
// chopstick locks are held. They must not acquire chopsticks
// themselves.
//
// See [Table.SetEvents].
type Events struct {
	OnAcquire func(philosopher, chopstick int)
	OnDine    func(philosopher int)
	OnRelease func(philosopher, chopstick int)
}

func (e *Events) doAcquire(philosopher, chopstick int) {
	if e != nil && e.OnAcquire != nil {
		e.OnAcquire(philosopher, chopstick)
	}
}

func (e *Events) doDine(philosopher int) {
	if e != nil && e.OnDine != nil {
		e.OnDine(philosopher)
	}
}

func (e *Events) doRelease(philosopher, chopstick int) {
	if e != nil && e.OnRelease != nil {
		e.OnRelease(philosopher, chopstick)
	}
}
