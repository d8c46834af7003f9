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

package eventlog

// Check returns the value if err is nil - otherwise the error is logged to the
// default log file and then raised as a panic.
//
// It is meant to wrap a (value, error) returning call directly:
//
//	f := eventlog.Check(os.Open("app.state"))
func Check[T any](v T, err error) T {
	if err != nil {
		LoggedPanic(err.Error())
	}
	return v
}

// CheckErr panics after logging the error to the named log file, if err is not nil.
//   - if no file is specified, then the default log file is used
func CheckErr(err error, file ...string) {
	if err != nil {
		LoggedPanic(err.Error(), file...)
	}
}
