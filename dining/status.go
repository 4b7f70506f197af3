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

	"github.com/cockroachdb/field-eng-powertools/notify"
)

// Outcome is a convenience type alias for a philosopher's awaitable
// status.
type Outcome = *notify.Var[*Status]

// Status describes where a philosopher is in the dining protocol.
type Status struct {
	err error
}

// Sentinel instances of Status, in protocol order.
var (
	seated        = &Status{}
	acquiringLow  = &Status{}
	acquiringHigh = &Status{}
	eating        = &Status{}
	done          = &Status{}
)

// StatusFor constructs a successful terminal status if err is nil.
// Otherwise, it returns a new Status that reports the error.
func StatusFor(err error) *Status {
	if err == nil {
		return done
	}
	return &Status{err: err}
}

// Done returns true once the philosopher has finished, successfully or
// not. See also [Status.Success].
func (s *Status) Done() bool {
	return s == done || s.err != nil
}

// Eating returns true while the philosopher holds both chopsticks and
// is performing its critical-section step.
func (s *Status) Eating() bool {
	return s == eating
}

// Err returns the task failure, if any.
func (s *Status) Err() error {
	return s.err
}

// Success returns true if the philosopher completed the full protocol
// without error.
func (s *Status) Success() bool {
	return s == done
}

func (s *Status) String() string {
	switch s {
	case seated:
		return "seated"
	case acquiringLow:
		return "acquiringLow"
	case acquiringHigh:
		return "acquiringHigh"
	case eating:
		return "eating"
	case done:
		return "done"
	default:
		return fmt.Sprintf("error: %v", s.err)
	}
}
