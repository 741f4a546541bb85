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
package bn254

import (
	"math/big"
	"slices"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/scalarff/pkg/field"
)

// Element wraps fr.Element of the BN254 curve (a.k.a. alt_bn128) to conform
// to the field.Element interface.
type Element struct {
	fr.Element
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res fr.Element
	//
	res.Sub(&x.Element, &y.Element)
	//
	return Element{res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res fr.Element
	//
	res.Mul(&x.Element, &y.Element)
	//
	return Element{res}
}

// Neg -x
func (x Element) Neg() Element {
	var res fr.Element
	//
	res.Neg(&x.Element)
	//
	return Element{res}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var res fr.Element
	//
	res.Inverse(&x.Element)
	//
	return Element{res}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

// Equals implementation for the Element interface
func (x Element) Equals(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// Modulus implementation for the Element interface
func (x Element) Modulus() *big.Int {
	return fr.Modulus()
}

// SetUint64 implementation for the Element interface
func (x Element) SetUint64(val uint64) Element {
	x.Element.SetUint64(val)
	//
	return x
}

// SetString parses a decimal string into an element.
func (x Element) SetString(s string) (Element, error) {
	value, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Element{}, &field.ParseError{Field: x.Name(), Input: s}
	}
	//
	x.Element.SetBigInt(value)
	//
	return x, nil
}

// Bytes returns the little-endian encoded value of the Element, always
// exactly fr.Bytes wide.
func (x Element) Bytes() []byte {
	bytes := x.Element.Bytes()
	slices.Reverse(bytes[:])
	//
	return bytes[:]
}

// SetBytes decodes a little-endian encoding, reducing out-of-range values
// modulo the modulus.
func (x Element) SetBytes(bytes []byte) (Element, error) {
	if uint(len(bytes)) > x.ByteWidth() {
		return Element{}, &field.LengthError{Field: x.Name(), Expected: x.ByteWidth(), Got: uint(len(bytes))}
	}
	//
	bytes = slices.Clone(bytes)
	slices.Reverse(bytes)
	x.Element.SetBytes(bytes)
	//
	return x, nil
}

// ByteWidth implementation for the Element interface
func (x Element) ByteWidth() uint {
	return fr.Bytes
}

// Name implementation for the Element interface
func (x Element) Name() string {
	return "bn254"
}

func (x Element) String() string {
	return x.Text(10)
}

// Text returns the canonical representative in [0, p), unlike the embedded
// Text which renders values close to the modulus as small negatives.
func (x Element) Text(base int) string {
	var value big.Int
	//
	x.Element.BigInt(&value)
	//
	return value.Text(base)
}
