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

package dynerr_test

import (
	"fmt"
	"github.com/oysterpack/dynerr/pkg/dynerr"
	"os"
	"testing"
)

// OutOfBoundsError is a second custom error type used to test dispatch ordering
type OutOfBoundsError struct {
	Position uint
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("OutOfBoundsError: %d", e.Position)
}

// play returns different error types through a single declared return type
func play(x uint) (uint, dynerr.Err) {
	switch {
	case x == 1:
		return x, nil
	case x < 5:
		return 0, dynerr.New(&InvalidMoveError{Move: x})
	case x < 11:
		return 0, dynerr.New(&OutOfBoundsError{Position: x})
	default:
		f, err := os.Open("no-such-file")
		if err != nil {
			return 0, dynerr.New(err)
		}
		f.Close()
		return x, nil
	}
}

func TestMatch(t *testing.T) {
	handle := func(err dynerr.Err) (uint, bool) {
		return dynerr.Match(err,
			dynerr.On(func(e *InvalidMoveError) uint {
				// per-type arms, with the final branch as the per-type fallback
				switch e.Move {
				case 2:
					return 2
				default:
					return 0
				}
			}),
			dynerr.On(func(e *OutOfBoundsError) uint {
				return e.Position
			}),
			dynerr.On(func(e *os.PathError) uint {
				if os.IsNotExist(e) {
					return 5
				}
				return 0
			}),
			dynerr.Default(func(e dynerr.Err) uint {
				return 99
			}),
		)
	}

	t.Run("first type case matches", func(t *testing.T) {
		_, err := play(2)
		result, ok := handle(err)
		if !ok || result != 2 {
			t.Errorf("expected (2, true) : got (%d, %v)", result, ok)
		}
	})

	t.Run("per-type fallback", func(t *testing.T) {
		_, err := play(3)
		result, ok := handle(err)
		if !ok || result != 0 {
			t.Errorf("expected (0, true) : got (%d, %v)", result, ok)
		}
	})

	t.Run("second type case matches", func(t *testing.T) {
		_, err := play(8)
		result, ok := handle(err)
		if !ok || result != 8 {
			t.Errorf("expected (8, true) : got (%d, %v)", result, ok)
		}
	})

	t.Run("error type not defined by us", func(t *testing.T) {
		_, err := play(20)
		result, ok := handle(err)
		if !ok || result != 5 {
			t.Errorf("expected (5, true) : got (%d, %v)", result, ok)
		}
	})
}

func TestMatch_DeclarationOrder(t *testing.T) {
	// Given an error
	err := dynerr.New(&InvalidMoveError{Move: 3})
	var evaluated []string
	// When two cases could match the same error
	result, ok := dynerr.Match[string](err,
		dynerr.On(func(e *InvalidMoveError) string {
			evaluated = append(evaluated, "first")
			return "first"
		}),
		dynerr.On(func(e *InvalidMoveError) string {
			evaluated = append(evaluated, "second")
			return "second"
		}),
		dynerr.Default(func(e dynerr.Err) string {
			evaluated = append(evaluated, "default")
			return "default"
		}),
	)
	// Then the first matching case claims the error and later cases are never consulted
	if !ok || result != "first" {
		t.Errorf("expected (first, true) : got (%s, %v)", result, ok)
	}
	if len(evaluated) != 1 {
		t.Errorf("only the first matching case should have run: %v", evaluated)
	}
}

func TestMatch_Default(t *testing.T) {
	// Given an error whose type has no case
	err := dynerr.Errorf("boom")
	// When it is matched
	result, ok := dynerr.Match(err,
		dynerr.On(func(e *InvalidMoveError) string { return "invalid move" }),
		dynerr.Default(func(e dynerr.Err) string { return e.Error() }),
	)
	// Then the final fallback handles it
	if !ok || result != "boom" {
		t.Errorf("expected (boom, true) : got (%s, %v)", result, ok)
	}
}

func TestMatch_NoMatch(t *testing.T) {
	// Given no Default case
	err := dynerr.Errorf("boom")
	result, ok := dynerr.Match(err,
		dynerr.On(func(e *InvalidMoveError) string { return "invalid move" }),
	)
	// Then Match reports that nothing matched
	if ok || result != "" {
		t.Errorf("expected (zero, false) : got (%s, %v)", result, ok)
	}
}

func TestMatch_NilError(t *testing.T) {
	t.Run("without default", func(t *testing.T) {
		// no type case can match a nil error
		result, ok := dynerr.Match[string](nil,
			dynerr.On(func(e *InvalidMoveError) string { return "invalid move" }),
		)
		if ok || result != "" {
			t.Errorf("expected (zero, false) : got (%s, %v)", result, ok)
		}
	})

	t.Run("with default", func(t *testing.T) {
		result, ok := dynerr.Match[string](nil,
			dynerr.On(func(e *InvalidMoveError) string { return "invalid move" }),
			dynerr.Default(func(e dynerr.Err) string { return "default" }),
		)
		if !ok || result != "default" {
			t.Errorf("expected (default, true) : got (%s, %v)", result, ok)
		}
	})
}

// positioned is an error interface used to test interface type cases
type positioned interface {
	error
	Pos() uint
}

func (e *OutOfBoundsError) Pos() uint {
	return e.Position
}

func TestMatch_InterfaceTypeCase(t *testing.T) {
	// Given an error raised behind the unified type
	_, err := play(8)
	// When a case is declared for an interface type
	result, ok := dynerr.Match(err,
		dynerr.On(func(e positioned) uint { return e.Pos() }),
		dynerr.Default(func(e dynerr.Err) uint { return 0 }),
	)
	// Then any chain entry implementing the interface matches
	if !ok || result != 8 {
		t.Errorf("expected (8, true) : got (%d, %v)", result, ok)
	}
}

func TestMatch_BareError(t *testing.T) {
	// dispatch also works on errors that were never raised through New
	result, ok := dynerr.Match[string](&InvalidMoveError{Move: 7},
		dynerr.On(func(e *InvalidMoveError) string { return "invalid move" }),
	)
	if !ok || result != "invalid move" {
		t.Errorf("expected (invalid move, true) : got (%s, %v)", result, ok)
	}
}
