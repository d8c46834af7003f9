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

// Package apptest is used to support testing
package apptest

import (
	"bytes"
	"github.com/oysterpack/dynerr/pkg/eventlog"
	"github.com/oysterpack/dynerr/pkg/logcfg"
	"github.com/rs/zerolog"
	"os"
	"time"
)

// Key represents env var config property names - without the envconfig name prefix
type Key string

// envconfig keys
const (
	LogGlobalLevel     = Key("LOG_GLOBAL_LEVEL")
	LogDisableSampling = Key("LOG_DISABLE_SAMPLING")
	LogFile            = Key("LOG_FILE")
)

func prefix(key Key) string {
	return logcfg.EnvPrefix + "_" + string(key)
}

// Setenv prefixes the key with the envconfig prefix and then sets the value of the
// environment variable named by the prefixed key.
func Setenv(key Key, value string) {
	if err := os.Setenv(prefix(key), value); err != nil {
		panic(err)
	}
}

// Unsetenv prefixes the key with the envconfig prefix and then tries to unset the env var
func Unsetenv(key Key) {
	if err := os.Unsetenv(prefix(key)); err != nil {
		panic(err)
	}
}

// ClearLogEnvSettings clears the logging specific env vars
func ClearLogEnvSettings() {
	Unsetenv(LogGlobalLevel)
	Unsetenv(LogDisableSampling)
	Unsetenv(LogFile)
}

// TestLogger captures log events in a buffer, so that tests can inspect them
type TestLogger struct {
	*zerolog.Logger
	Buf *bytes.Buffer
}

// NewTestLogger constructs a new TestLogger
func NewTestLogger() *TestLogger {
	buf := new(bytes.Buffer)
	logger := eventlog.NewZeroLogger(buf)
	return &TestLogger{
		Logger: &logger,
		Buf:    buf,
	}
}

// LogEvent is the JSON model for a captured log line
type LogEvent struct {
	Level         string `json:"l"`
	Timestamp     int64  `json:"t"`
	Message       string `json:"m"`
	Error         string `json:"e"`
	ULID          string `json:"z"`
	ErrInstanceID string `json:"i"`
}

// Time returns the log event timestamp
func (e *LogEvent) Time() time.Time {
	return time.Unix(e.Timestamp, 0)
}
