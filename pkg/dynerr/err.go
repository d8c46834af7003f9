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
	"fmt"
	"github.com/oklog/ulid"
	"github.com/oysterpack/dynerr/pkg/ulidgen"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Err is the unified error type. Any concrete error can be returned through a
// single declared Err return type and recovered at handling time via Match.
type Err = error

// ErrInstanceID is the log field name used for the error instance ID
const ErrInstanceID = "i"

var newULID = ulidgen.MonotonicULIDGenerator()

// Instance represents a raised error instance.
// All raised errors are wrapped within an Instance, which is assigned a unique InstanceID.
type Instance struct {
	// Cause is the concrete error that was raised
	Cause Err
	// InstanceID is the unique error instance ID.
	// use case: the InstanceID can be returned back to the client, which can be used to track down the specific error.
	InstanceID ulid.ULID

	// cause with the raise site stacktrace attached
	withStack Err
}

// New raises the specified error as a unified error value.
// The raise site stacktrace is captured here, not at handling time.
func New(cause Err) *Instance {
	return &Instance{
		Cause:      cause,
		InstanceID: newULID(),
		withStack:  errors.WithStack(cause),
	}
}

// Errorf raises a new error built from the format specifier.
func Errorf(format string, args ...interface{}) *Instance {
	cause := errors.Errorf(format, args...)
	return &Instance{
		Cause:      cause,
		InstanceID: newULID(),
		withStack:  cause,
	}
}

// Wrap raises the specified error with an added context message.
func Wrap(cause Err, message string) *Instance {
	return &Instance{
		Cause:      cause,
		InstanceID: newULID(),
		withStack:  errors.Wrap(cause, message),
	}
}

// Error implements the error interface
func (e *Instance) Error() string {
	if e.withStack == nil {
		return fmt.Sprintf("error instance %s", e.InstanceID)
	}
	return e.withStack.Error()
}

// Unwrap returns the raised cause, which makes the Instance transparent to
// errors.Is / errors.As based dispatch.
func (e *Instance) Unwrap() Err {
	return e.Cause
}

// Log logs the error using the specified logger
func (e *Instance) Log(logger *zerolog.Logger) *zerolog.Event {
	return logger.Error().
		Str(ErrInstanceID, e.InstanceID.String()).
		Stack().
		Err(e.withStack)
}
