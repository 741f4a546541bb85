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
	"fmt"
	"math/big"
)

// An Element of a prime-order field.  The type parameter F is the concrete
// element type itself, which keeps operations strongly typed across backends.
// Every operation is a pure value transformation; receivers are never
// mutated.  Operations which require a field element (e.g. SetUint64) always
// construct it in the receiver's field, so backends whose modulus is only
// known at runtime work exactly like those with a type-level modulus.
//
// No timing guarantees of any kind are made: both the backends and the
// generic algorithms built on this interface run in variable time.
type Element[F any] interface {
	fmt.Stringer
	// Add x+y
	Add(y F) F
	// Sub x-y
	Sub(y F) F
	// Mul x*y
	Mul(y F) F
	// Neg -x
	Neg() F
	// Inverse x⁻¹, or 0 if x = 0.
	Inverse() F
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y, comparing
	// numerical values.
	Cmp(y F) int
	// Equals checks whether x and y denote the same residue class.
	Equals(y F) bool
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Return the modulus for the field in question.
	Modulus() *big.Int
	// SetUint64 returns the element of x's field with the given value.
	SetUint64(val uint64) F
	// SetString parses a decimal string into an element of x's field,
	// returning a *ParseError on malformed input.
	SetString(s string) (F, error)
	// Bytes returns the canonical little-endian encoding of x.  The result
	// is always exactly ByteWidth() bytes long.
	Bytes() []byte
	// SetBytes decodes a little-endian encoding into an element of x's
	// field.  Inputs shorter than ByteWidth() are zero padded; longer
	// inputs fail with a *LengthError.
	SetBytes(bytes []byte) (F, error)
	// ByteWidth returns the fixed encoding width for the field.
	ByteWidth() uint
	// Name returns a short identifier for the field.
	Name() string
	// Text returns the numerical value of x in the given base.
	Text(base int) string
}

// Zero constructs a field element representing 0.  Only meaningful for
// backends whose modulus is fixed at the type level; runtime-modulus rings
// construct their elements through a field handle instead.
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1.
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 construct a field element from a given uint64.
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// Div computes x / y, failing with ErrDivisionByZero when y is zero.
func Div[F Element[F]](x, y F) (F, error) {
	if y.IsZero() {
		return y, ErrDivisionByZero
	}
	//
	return x.Mul(y.Inverse()), nil
}

// Pow takes a given value to the power n, by iterative squaring.
func Pow[F Element[F]](val F, n uint64) F {
	result := val.SetUint64(1)
	//
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(val)
		}
		//
		val = val.Mul(val)
	}
	//
	return result
}
