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

// Package ulidgen generates and validates the ULIDs used throughout the library
// as error instance IDs and log event IDs.
package ulidgen

import (
	"crypto/rand"
	"errors"
	"github.com/oklog/ulid"
	"sync"
)

// ErrZeroULID indicates a ULID with the zero value, which is never a valid ID.
var ErrZeroULID = errors.New("ULID must not be zero")

// MonotonicULIDGenerator returns a generator function whose ULIDs are strictly
// increasing across all of its callers.
//   - safe for concurrent use - the generator serializes access to its entropy source
//   - panics if a ULID fails to be generated
func MonotonicULIDGenerator() func() ulid.ULID {
	var m sync.Mutex
	entropy := ulid.Monotonic(rand.Reader, 0)

	return func() (uid ulid.ULID) {
		m.Lock()
		uid = ulid.MustNew(ulid.Now(), entropy)
		m.Unlock()
		return
	}
}

// RandomULIDGenerator returns a generator function whose ULIDs are
// cryptographically random, with no ordering guarantee.
//   - ~5x slower than a MonotonicULIDGenerator function
//   - panics if a ULID fails to be generated
func RandomULIDGenerator() func() ulid.ULID {
	return func() ulid.ULID {
		return MustNew()
	}
}

// MustNew generates a single crypto/rand based ULID.
//   - panics if a ULID fails to be generated
func MustNew() ulid.ULID {
	return ulid.MustNew(ulid.Now(), rand.Reader)
}

// Parse parses the id into a ULID, rejecting the zero value with ErrZeroULID.
func Parse(id string) (ulid.ULID, error) {
	uid, err := ulid.Parse(id)
	if err != nil {
		return uid, err
	}
	if IsZero(uid) {
		return uid, ErrZeroULID
	}
	return uid, nil
}

// IsZero returns true if the id is the zero value
func IsZero(id ulid.ULID) bool {
	return id == ulid.ULID{}
}
