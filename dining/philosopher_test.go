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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidPairing(t *testing.T) {
	r := require.New(t)

	c := NewChopstick(0)
	_, err := NewPhilosopher(1, c, c)
	r.ErrorIs(err, ErrInvalidPairing)
	r.ErrorIs(err, ErrInvalidConfiguration)

	// The check happens before any lock interaction.
	r.True(c.lock.TryLock(), "chopstick lock was touched")
	c.lock.Unlock()

	// Distinct chopsticks with a colliding index are just as wrong.
	_, err = NewPhilosopher(1, NewChopstick(3), NewChopstick(3))
	r.ErrorIs(err, ErrInvalidPairing)
}

func TestNilChopstickRejected(t *testing.T) {
	r := require.New(t)

	_, err := NewPhilosopher(1, nil, NewChopstick(0))
	r.ErrorIs(err, ErrInvalidConfiguration)
	r.NotErrorIs(err, ErrInvalidPairing)
}

// The constructor normalizes argument order so that the low-indexed
// chopstick is always acquired first, however the caller passed them.
func TestPairingNormalized(t *testing.T) {
	r := require.New(t)

	low := NewChopstick(0)
	high := NewChopstick(4)

	p, err := NewPhilosopher(1, high, low)
	r.NoError(err)
	r.Equal(0, p.low.Index())
	r.Equal(4, p.high.Index())
}

func TestPhilosopherLifecycle(t *testing.T) {
	r := require.New(t)

	a, b := NewChopstick(0), NewChopstick(1)
	p, err := NewPhilosopher(1, a, b)
	r.NoError(err)

	status, _ := p.Outcome().Get()
	r.False(status.Done())
	r.Equal("seated", status.String())

	p.run(nil)

	status, _ = p.Outcome().Get()
	r.True(status.Done())
	r.True(status.Success())
	r.NoError(status.Err())

	// Both chopsticks are back on the table.
	r.True(a.lock.TryLock())
	a.lock.Unlock()
	r.True(b.lock.TryLock())
	b.lock.Unlock()
}

func TestStatusFor(t *testing.T) {
	r := require.New(t)

	r.True(StatusFor(nil).Success())
	r.True(StatusFor(nil).Done())
	r.False(StatusFor(context.Canceled).Success())
	r.True(StatusFor(context.Canceled).Done())
	r.ErrorIs(StatusFor(context.Canceled).Err(), context.Canceled)
}
