// Copyright 2025 The declass Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sample is the Go rendition of testdata/Sample.java, the canonical
// input fixture for the class-file tooling. The Java original is an abstract
// base class plus an interface implemented by one concrete class; here the
// base state is a record embedded by composition and the interface is a
// one-method capability contract.
package sample

import (
	"fmt"
	"io"
)

// Base is the shared base state. Both fields are set once at construction
// and never mutated afterwards.
type Base struct {
	stringField string
	longStrings map[int64]string
}

func NewBase() *Base {
	return &Base{
		stringField: "string",
		longStrings: map[int64]string{},
	}
}

func (b *Base) StringField() string {
	return b.stringField
}

// BaseHolder is the capability contract: return the associated base state.
type BaseHolder interface {
	Base() *Base
}

// Sample is the concrete realization of BaseHolder.
type Sample struct {
	base *Base
}

// New constructs a Sample. It performs no I/O; all output happens in Sum
// against the writer the caller provides.
func New() *Sample {
	return &Sample{base: NewBase()}
}

func (s *Sample) Base() *Base {
	return s.base
}

// Sum accumulates the integers 0..count-1 and writes the running total to w
// after each step, one "sum is N" line per step. It returns the final total,
// n*(n-1)/2. A negative count is an accepted degenerate case: the loop never
// runs and the result is 0.
func (s *Sample) Sum(w io.Writer, count int) int64 {
	var sum int64
	for i := 0; i < count; i++ {
		sum += int64(i)
		fmt.Fprintf(w, "sum is %d\n", sum)
	}
	return sum
}
