/*
 * Copyright (c) 2019 OysterPack, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dynerr

import (
	"github.com/oysterpack/dynerr/pkg/eventlog"
)

// Result carries a value or a unified error.
// It is the single return type counterpart for code that passes results around as
// values, e.g., over channels.
type Result[T any] struct {
	Value T
	Err   Err
}

// NewResult constructs a Result from a (value, error) pair.
func NewResult[T any](value T, err Err) Result[T] {
	return Result[T]{Value: value, Err: err}
}

// Ok returns true if the Result carries no error.
func (r Result[T]) Ok() bool {
	return r.Err == nil
}

// Unwrap returns the underlying (value, error) pair.
func (r Result[T]) Unwrap() (T, Err) {
	return r.Value, r.Err
}

// Check returns the value if the Result is Ok - otherwise the error is logged to
// the specified log file and then raised as a panic.
//   - if no file is specified, then the default log file is used
func (r Result[T]) Check(file ...string) T {
	if r.Err != nil {
		eventlog.LoggedPanic(r.Err.Error(), file...)
	}
	return r.Value
}
