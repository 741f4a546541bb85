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
package curve25519

import (
	"encoding/binary"
	"math/big"
	"slices"

	"filippo.io/edwards25519"

	"github.com/consensys/scalarff/pkg/field"
)

// byteWidth of the scalar encoding, fixed by edwards25519.
const byteWidth = 32

// modulus is the order of the prime-order subgroup of curve25519, i.e.
// 2²⁵² + 27742317777372353535851937790883648493.
var modulus, _ = new(big.Int).SetString(
	"7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

// scalarOne is the multiplicative identity, pre-encoded.
var scalarOne = scalarFromUint64(1)

// Element wraps edwards25519.Scalar, i.e. an element of the scalar field of
// the ed25519 group, to conform to the field.Element interface.  The zero
// value is the zero element.
type Element struct {
	scalar edwards25519.Scalar
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res edwards25519.Scalar
	//
	res.Add(&x.scalar, &y.scalar)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res edwards25519.Scalar
	//
	res.Subtract(&x.scalar, &y.scalar)
	//
	return Element{res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res edwards25519.Scalar
	//
	res.Multiply(&x.scalar, &y.scalar)
	//
	return Element{res}
}

// Neg -x
func (x Element) Neg() Element {
	var res edwards25519.Scalar
	//
	res.Negate(&x.scalar)
	//
	return Element{res}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	if x.IsZero() {
		return Element{}
	}
	//
	var res edwards25519.Scalar
	//
	res.Invert(&x.scalar)
	//
	return Element{res}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.bigInt().Cmp(y.bigInt())
}

// Equals implementation for the Element interface
func (x Element) Equals(y Element) bool {
	return x.scalar.Equal(&y.scalar) == 1
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	var zero edwards25519.Scalar
	//
	return x.scalar.Equal(&zero) == 1
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x.scalar.Equal(&scalarOne) == 1
}

// Modulus implementation for the Element interface
func (x Element) Modulus() *big.Int {
	return new(big.Int).Set(modulus)
}

// SetUint64 implementation for the Element interface
func (x Element) SetUint64(val uint64) Element {
	return Element{scalarFromUint64(val)}
}

// SetString parses a decimal string into an element.
func (x Element) SetString(s string) (Element, error) {
	value, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Element{}, &field.ParseError{Field: x.Name(), Input: s}
	}
	//
	return x.setBigInt(value), nil
}

// Bytes returns the little-endian encoded value of the Element, always
// exactly 32 bytes wide.
func (x Element) Bytes() []byte {
	return x.scalar.Bytes()
}

// SetBytes decodes a little-endian encoding, reducing out-of-range values
// modulo the modulus.
func (x Element) SetBytes(bytes []byte) (Element, error) {
	if uint(len(bytes)) > x.ByteWidth() {
		return Element{}, &field.LengthError{Field: x.Name(), Expected: x.ByteWidth(), Got: uint(len(bytes))}
	}
	// Values in [p, 2²⁵⁶) are not canonical scalar encodings, so reduction
	// goes through big.Int rather than the scalar type itself.
	return x.setBigInt(new(big.Int).SetBytes(reverse(bytes))), nil
}

// ByteWidth implementation for the Element interface
func (x Element) ByteWidth() uint {
	return byteWidth
}

// Name implementation for the Element interface
func (x Element) Name() string {
	return "curve25519"
}

func (x Element) String() string {
	return x.bigInt().String()
}

// Text implementation for the Element interface
func (x Element) Text(base int) string {
	return x.bigInt().Text(base)
}

// bigInt returns the numerical value of x.
func (x Element) bigInt() *big.Int {
	return new(big.Int).SetBytes(reverse(x.scalar.Bytes()))
}

// setBigInt encodes v mod p as a scalar.  The reduced value is always a
// canonical encoding.
func (x Element) setBigInt(v *big.Int) Element {
	var (
		buf     [byteWidth]byte
		reduced = new(big.Int).Mod(v, modulus)
		res     edwards25519.Scalar
	)
	//
	copy(buf[:], reverse(reduced.Bytes()))
	//
	if _, err := res.SetCanonicalBytes(buf[:]); err != nil {
		panic(&field.InvariantViolation{Field: x.Name(), Msg: err.Error()})
	}
	//
	return Element{res}
}

func scalarFromUint64(val uint64) edwards25519.Scalar {
	var (
		buf [byteWidth]byte
		res edwards25519.Scalar
	)
	//
	binary.LittleEndian.PutUint64(buf[:8], val)
	// Cannot fail: a uint64 is far below the modulus.
	if _, err := res.SetCanonicalBytes(buf[:]); err != nil {
		panic(err)
	}
	//
	return res
}

// reverse returns a copy of bytes in the opposite order.
func reverse(bytes []byte) []byte {
	bytes = slices.Clone(bytes)
	slices.Reverse(bytes)
	//
	return bytes
}
