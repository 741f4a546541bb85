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

// Sqrt returns the canonical square root of x, i.e. the numerically smaller
// of the two roots r and p-r.  The root of zero is zero.  Calling Sqrt on a
// quadratic non-residue fails with ErrNoSquareRoot.
//
// This is the prime-field square root of Kumar 2008
// (https://arxiv.org/pdf/2008.11814v4), a Tonelli-Shanks variant.  The
// exponents apow and bpow are tracked as field elements and halved with the
// field's own division operator, which is valid because they never exceed p.
// The halving loop runs at most ⌈log₂ p⌉ times; the preceding witness search
// terminates quickly since half of all nonzero elements are non-residues.
func Sqrt[F Element[F]](x F) (F, error) {
	if x.IsZero() {
		return x, nil
	}
	//
	if Legendre(x) != 1 {
		return x.SetUint64(0), ErrNoSquareRoot
	}
	//
	var (
		one  = x.SetUint64(1)
		half = x.SetUint64(2).Inverse()
		//
		p       = x.Modulus()
		pMinus1 = new(big.Int).Sub(p, big.NewInt(1))
	)
	// Linear search for a non-residue witness, starting at 2.
	n := x.SetUint64(2)
	for Legendre(n) != -1 {
		n = n.Add(one)
	}
	//
	var (
		a = ToBigInt(x)
		b = ToBigInt(n)
		// (p-1)/2 as a field element, for the correction step below
		m    = one.Neg().Mul(half)
		apow = one.Neg()
		bpow = x.SetUint64(0)
	)
	//
	for ToBigInt(apow).Bit(0) == 0 {
		apow = apow.Mul(half)
		bpow = bpow.Mul(half)
		//
		product := new(big.Int).Exp(a, ToBigInt(apow), p)
		product.Mul(product, new(big.Int).Exp(b, ToBigInt(bpow), p))
		product.Mod(product, p)
		//
		if product.Cmp(pMinus1) == 0 {
			bpow = bpow.Add(m)
		}
	}
	//
	apow = apow.Add(one).Mul(half)
	bpow = bpow.Mul(half)
	//
	root := new(big.Int).Exp(a, ToBigInt(apow), p)
	root.Mul(root, new(big.Int).Exp(b, ToBigInt(bpow), p))
	root.Mod(root, p)
	// Canonicalise to the smaller of the two roots.
	if other := new(big.Int).Sub(p, root); other.Cmp(root) < 0 {
		root = other
	}
	//
	return FromBigInt(x, root), nil
}
