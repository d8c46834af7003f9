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
	"errors"
)

// Case is a single dispatch case for Match. Cases are constructed via On and Default.
type Case[R any] interface {
	eval(err Err) (R, bool)
}

type caseFunc[R any] func(err Err) (R, bool)

func (f caseFunc[R]) eval(err Err) (R, bool) {
	return f(err)
}

// On returns a Case that matches when the error chain contains a T.
//
// The handler body plays the role of the per-type match arms - its final branch is
// the per-type fallback. Once the type matches, the case claims the error: later
// cases are never consulted, regardless of what the handler returns.
func On[T Err, R any](handle func(e T) R) Case[R] {
	return caseFunc[R](func(err Err) (R, bool) {
		var target T
		if errors.As(err, &target) {
			return handle(target), true
		}
		var zero R
		return zero, false
	})
}

// Default returns the final fallback Case - it matches any error, including nil.
func Default[R any](handle func(e Err) R) Case[R] {
	return caseFunc[R](func(err Err) (R, bool) {
		return handle(err), true
	})
}

// Match performs typed dispatch on the error's concrete underlying type.
//
// Cases are evaluated in declaration order. The first case whose type is found in
// the error chain claims the error, and its handler's return value is returned.
// Returns false only when no case matched - i.e., no type case matched and no
// Default case was supplied.
func Match[R any](err Err, cases ...Case[R]) (R, bool) {
	for _, c := range cases {
		if result, ok := c.eval(err); ok {
			return result, true
		}
	}
	var zero R
	return zero, false
}
