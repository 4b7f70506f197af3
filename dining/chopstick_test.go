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
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// A single chopstick guards a shared counter against many concurrent
// incrementers. Lost updates would betray a hole in the exclusion
// guarantee.
func TestChopstickMutualExclusion(t *testing.T) {
	const holders = 16
	const increments = 500
	r := require.New(t)

	c := NewChopstick(0)
	counter := 0

	var eg errgroup.Group
	for i := 0; i < holders; i++ {
		id := i + 1
		eg.Go(func() error {
			for j := 0; j < increments; j++ {
				c.Acquire(id)
				counter++
				c.Release()
			}
			return nil
		})
	}
	r.NoError(eg.Wait())
	r.Equal(holders*increments, counter)

	r.Equal(0, c.Index())
	r.True(c.lock.TryLock())
	c.lock.Unlock()
}
