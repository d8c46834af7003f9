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

import (
	"bytes"
	"fmt"
	"github.com/oysterpack/dynerr/pkg/ulidgen"
	"github.com/rs/zerolog"
	"io"
	"os"
	"sync"
)

// Applies standard zerolog initialization.
//
// The following global settings are applied for performance reasons:
//   - the following standard logger field names are shortened
//     - Timestamp -> t
//     - Level -> l
//	   - Message -> m
//     - Error -> e
//   - Unix time format is used for performance reasons - seconds granularity is sufficient for log events
//   - time.Duration fields are rendered as int instead float because it's more efficient
func init() {
	zerolog.TimestampFieldName = "t"
	zerolog.LevelFieldName = "l"
	zerolog.MessageFieldName = "m"
	zerolog.ErrorFieldName = "e"

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.DurationFieldInteger = true
}

// standard top level logger field names
const (
	ULID = "z" // event instance ULID
)

// DefaultLogFile is the initial default log file target.
const DefaultLogFile = "event.log"

var (
	newEventULID = ulidgen.MonotonicULIDGenerator()

	mu             sync.RWMutex
	defaultLogFile = DefaultLogFile
)

// SetDefaultLogFile overrides the log file that events are appended to when no
// file is specified. It is applied by logcfg.Configure, but may also be set directly.
func SetDefaultLogFile(file string) {
	mu.Lock()
	defaultLogFile = file
	mu.Unlock()
}

// DefaultFile returns the log file that events are appended to when no file is specified.
func DefaultFile() string {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogFile
}

// WithEventULID augments each log event with an event ULID.
//
// NOTE: The ULID uses a monotonic generator - thus, its timestamp portion is simply
// used to construct the ULID and does not represent when the ULID was created.
func WithEventULID(logger zerolog.Logger) zerolog.Logger {
	return logger.Hook(zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, _ string) {
		e.Str(ULID, newEventULID().String())
	}))
}

// NewZeroLogger constructs a new zerolog.Logger that is configured to add the following fields:
//   - timestamp in UNIX time format
//   - event ULID
func NewZeroLogger(w io.Writer) zerolog.Logger {
	return WithEventULID(zerolog.New(w)).
		With().
		Timestamp().
		Logger()
}

// Log appends the event as a single timestamped, ULID-stamped line to the named
// log file, creating the file if it does not exist.
//   - if no file is specified, then the default log file is used
//   - the event is returned, so that it can be fed to panic after being logged
//   - panics if the file cannot be opened or appended to - the event is preserved
//     in the panic message so that it is not lost
func Log(event string, file ...string) string {
	appendLine(event, resolveFile(file))
	return event
}

// LoggedPanic appends the event to the named log file and then panics with the event.
//   - if no file is specified, then the default log file is used
//   - the log line is synced to disk before the panic unwinds
func LoggedPanic(event string, file ...string) {
	panic(Log(event, file...))
}

// LogError logs the error through the specified logger, including the error
// stacktrace if one was captured.
func LogError(logger *zerolog.Logger, err error) {
	logger.Error().Stack().Err(err).Msg("")
}

// Clean deletes the named log file, if it exists.
//   - if no file is specified, then the default log file is deleted
//   - panics if the file exists but fails to be removed
func Clean(file ...string) {
	path := resolveFile(file)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return
		}
		panic(fmt.Sprintf("eventlog: failed to stat log file: %v", err))
	}
	if err := os.Remove(path); err != nil {
		panic(fmt.Sprintf("eventlog: failed to clean log file: %v", err))
	}
}

func resolveFile(file []string) string {
	if len(file) > 0 {
		return file[0]
	}
	return DefaultFile()
}

// The line is rendered first and written with a single O_APPEND write, so that
// concurrent appends to the same file never interleave partial lines.
func appendLine(event, file string) {
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		panic(fmt.Sprintf("eventlog: failed to open log file: %v (event that was being logged: %s)", err, event))
	}

	buf := new(bytes.Buffer)
	logger := NewZeroLogger(buf)
	logger.Log().Msg(event)

	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		panic(fmt.Sprintf("eventlog: failed to append to log file: %v (event that was being logged: %s)", err, event))
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		panic(fmt.Sprintf("eventlog: failed to sync log file: %v (event that was being logged: %s)", err, event))
	}
	if err := f.Close(); err != nil {
		panic(fmt.Sprintf("eventlog: failed to close log file: %v (event that was being logged: %s)", err, event))
	}
}
