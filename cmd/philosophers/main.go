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

// Package main runs the dining philosophers demonstration on the
// console.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Vincent-Ha/Dining-Philosophers/dining"
)

func main() {
	count := flag.Int("n", 5, "number of philosophers at the table")
	flag.Parse()

	if err := dining.Dine(context.Background(), *count); err != nil {
		fmt.Fprintln(os.Stderr, "dining:", err)
		os.Exit(1)
	}
}
