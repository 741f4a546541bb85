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

import "math/big"

// Legendre computes the Legendre symbol of x: 1 if x is a nonzero quadratic
// residue, -1 if it is a non-residue, and 0 if x is zero.  Any other outcome
// of the underlying exponentiation means the modulus is not prime or the
// backend is defective, and panics with an *InvariantViolation.
//
// The exponent (p-1)/2 is derived inside the field as (-1)/(1+1): field
// division already performs the modular inverse reduction, so the same code
// serves every backend satisfying the Element contract.
func Legendre[F Element[F]](x F) int {
	if x.IsZero() {
		return 0
	}
	//
	var (
		one = x.SetUint64(1)
		two = x.SetUint64(2)
		// (p-1)/2 represented as a field element
		exponent = one.Neg().Mul(two.Inverse())
		p        = x.Modulus()
		pMinus1  = new(big.Int).Sub(p, big.NewInt(1))
	)
	//
	symbol := new(big.Int).Exp(ToBigInt(x), ToBigInt(exponent), p)
	//
	switch {
	case symbol.Cmp(big.NewInt(1)) == 0:
		return 1
	case symbol.Cmp(pMinus1) == 0:
		return -1
	default:
		panic(&InvariantViolation{x.Name(), "legendre symbol is not 1, -1, or 0"})
	}
}
