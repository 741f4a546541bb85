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
package field_test

import (
	"testing"

	"github.com/consensys/scalarff/pkg/field"
	"github.com/consensys/scalarff/pkg/field/bls12_377"
	"github.com/consensys/scalarff/pkg/field/bn254"
	"github.com/consensys/scalarff/pkg/field/curve25519"
	"github.com/consensys/scalarff/pkg/field/goldilocks"
	"github.com/consensys/scalarff/pkg/field/koalabear"
	"github.com/consensys/scalarff/pkg/field/mersenne31"
	"github.com/consensys/scalarff/pkg/field/smallfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqrtF13(t *testing.T) {
	f13 := smallfield.New(13, "f13")
	// the worked examples modulo 13
	for _, pair := range [][2]uint64{{1, 1}, {3, 4}, {4, 2}, {9, 3}, {10, 6}, {12, 5}} {
		root, err := field.Sqrt(f13.NewElement(pair[0]))
		require.NoError(t, err)
		assert.True(t, f13.NewElement(pair[1]).Equals(root), "sqrt of %d", pair[0])
	}
}

func TestSqrtBn254(t *testing.T) {
	testSqrt(t, field.Zero[bn254.Element](), 100)
}

func TestSqrtBls12_377(t *testing.T) {
	testSqrt(t, field.Zero[bls12_377.Element](), 100)
}

func TestSqrtGoldilocks(t *testing.T) {
	testSqrt(t, field.Zero[goldilocks.Element](), 250)
}

func TestSqrtKoalabear(t *testing.T) {
	testSqrt(t, field.Zero[koalabear.Element](), 250)
}

func TestSqrtCurve25519(t *testing.T) {
	testSqrt(t, field.Zero[curve25519.Element](), 100)
}

func TestSqrtMersenne31(t *testing.T) {
	testSqrt(t, field.Zero[mersenne31.Element](), 250)
}

func TestSqrtSmallfield(t *testing.T) {
	testSqrt(t, smallfield.New(65537, "f65537").NewElement(0), 250)
}

func TestSqrtZero(t *testing.T) {
	root, err := field.Sqrt(field.Zero[bn254.Element]())
	require.NoError(t, err)
	assert.True(t, root.IsZero())
}

func TestSqrtNonResidue(t *testing.T) {
	f13 := smallfield.New(13, "f13")
	//
	_, err := field.Sqrt(f13.NewElement(2))
	require.ErrorIs(t, err, field.ErrNoSquareRoot)
	// likewise on a large field, using any known non-residue
	one := field.One[goldilocks.Element]()
	x := one.Add(one)
	//
	for field.Legendre(x) != -1 {
		x = x.Add(one)
	}
	//
	_, err = field.Sqrt(x)
	require.ErrorIs(t, err, field.ErrNoSquareRoot)
}

// testSqrt squares successive elements and checks the extracted root squares
// back to the original, and that the canonical root is reported.
func testSqrt[F field.Element[F]](t *testing.T, seed F, rounds uint) {
	one := seed.SetUint64(1)
	x := seed.SetUint64(1)
	//
	for range rounds {
		square := x.Mul(x)
		root, err := field.Sqrt(square)
		require.NoError(t, err)
		assert.True(t, square.Equals(root.Mul(root)), "%s: root of %s", seed.Name(), square)
		// of the two roots, the numerically smaller one is returned
		assert.LessOrEqual(t, root.Cmp(root.Neg()), 0, "%s: canonical root of %s", seed.Name(), square)
		x = x.Add(one)
	}
}
