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

/*
Package dynerr unifies heterogeneous error types behind a single return type and
dispatches on the concrete error type at handling time.

A function declares a single error return type (Err) and is then free to raise any
concrete error through it:

	func play(x uint) (uint, dynerr.Err) {
		switch {
		case x < 5:
			return 0, dynerr.New(&InvalidMoveError{Move: x})
		case x < 11:
			return 0, dynerr.New(&OutOfBoundsError{X: x})
		}
		return x, nil
	}

At handling time, Match inspects the error's concrete underlying type against an
ordered list of type cases, with a final fallback:

	msg, _ := dynerr.Match(e,
		dynerr.On(func(e *InvalidMoveError) string { return "invalid move" }),
		dynerr.On(func(e *OutOfBoundsError) string { return "out of bounds" }),
		dynerr.Default(func(e dynerr.Err) string { return e.Error() }),
	)

New wraps the raised error in an Instance, which is assigned a unique instance ULID
and captures the raise site stacktrace. The Instance knows how to log itself.
*/
package dynerr
