// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package field

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero signals an attempt to divide by the zero element.  The
// caller must guard divisors.
var ErrDivisionByZero = errors.New("field: division by zero")

// ErrNoSquareRoot signals that Sqrt was called on a quadratic non-residue.
// Callers check Legendre(x) == 1 beforehand to avoid it.
var ErrNoSquareRoot = errors.New("field: element is not a quadratic residue")

// ParseError signals malformed textual input to SetString.
type ParseError struct {
	// Field names the backend which rejected the input.
	Field string
	// Input is the rejected string.
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q as a field element", e.Field, e.Input)
}

// LengthError signals a byte encoding wider than the field's fixed width
// being passed to SetBytes.  This always indicates caller misuse.
type LengthError struct {
	// Field names the backend which rejected the input.
	Field string
	// Expected is the fixed byte width of the field.
	Expected uint
	// Got is the width of the rejected input.
	Got uint
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: expected at most %d bytes, got %d", e.Field, e.Expected, e.Got)
}

// InvariantViolation indicates a defective backend or a non-prime modulus.
// It is never returned as an error value: impossible states panic with it,
// which keeps them distinguishable from every recoverable condition.
type InvariantViolation struct {
	// Field names the backend on which the violation was observed.
	Field string
	// Msg describes the impossible state.
	Msg string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("%s: invariant violation: %s", e.Field, e.Msg)
}
