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
	"math/big"
	"slices"
)

// ToBigInt returns the canonical unsigned integer representative of x in the
// range [0, p), by reading its little-endian byte encoding.  This always
// agrees with the numerical value of the decimal serialization.
func ToBigInt[F Element[F]](x F) *big.Int {
	return new(big.Int).SetBytes(reverse(x.Bytes()))
}

// FromBigInt returns the element of like's field whose integer representative
// is v.  The like argument supplies the field; its value is otherwise
// irrelevant.  Values outside [0, p) are reduced modulo p before conversion,
// rather than truncated to the field's byte width.  Negative values panic.
func FromBigInt[F Element[F]](like F, v *big.Int) F {
	if v.Sign() < 0 {
		panic("negative value encountered")
	}
	//
	reduced := new(big.Int).Mod(v, like.Modulus())
	// Cannot fail, since the reduced value fits the field's byte width.
	element, err := like.SetBytes(reverse(reduced.Bytes()))
	//
	if err != nil {
		panic(&InvariantViolation{like.Name(), err.Error()})
	}
	//
	return element
}

// reverse returns a copy of bytes in the opposite order.
func reverse(bytes []byte) []byte {
	bytes = slices.Clone(bytes)
	slices.Reverse(bytes)
	//
	return bytes
}
