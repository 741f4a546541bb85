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
	"math/big"
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
)

func TestBigIntBridge(t *testing.T) {
	testBigIntBridge(t, field.Zero[bn254.Element]())
	testBigIntBridge(t, field.Zero[bls12_377.Element]())
	testBigIntBridge(t, field.Zero[goldilocks.Element]())
	testBigIntBridge(t, field.Zero[koalabear.Element]())
	testBigIntBridge(t, field.Zero[curve25519.Element]())
	testBigIntBridge(t, field.Zero[mersenne31.Element]())
	testBigIntBridge(t, smallfield.New(13, "f13").NewElement(0))
}

func TestFromBigIntReduces(t *testing.T) {
	testFromBigIntReduces(t, field.Zero[koalabear.Element]())
	testFromBigIntReduces(t, field.Zero[bn254.Element]())
	testFromBigIntReduces(t, smallfield.New(13, "f13").NewElement(0))
}

func TestFromBigIntNegativePanics(t *testing.T) {
	like := field.Zero[goldilocks.Element]()
	//
	assert.Panics(t, func() {
		field.FromBigInt(like, big.NewInt(-1))
	})
}

func testBigIntBridge[F field.Element[F]](t *testing.T, seed F) {
	x := seed.SetUint64(99999)
	// the integer view agrees with the decimal rendering
	assert.Equal(t, "99999", field.ToBigInt(x).String(), seed.Name())
	// converting there and back is the identity
	y := x
	one := seed.SetUint64(1)
	//
	for range 100 {
		assert.True(t, y.Equals(field.FromBigInt(seed, field.ToBigInt(y))), "%s: round trip of %s", seed.Name(), y)
		y = y.Mul(y).Add(one)
	}
}

func testFromBigIntReduces[F field.Element[F]](t *testing.T, seed F) {
	// values at or above the modulus are reduced, not rejected
	v := new(big.Int).Add(seed.Modulus(), big.NewInt(5))
	assert.True(t, seed.SetUint64(5).Equals(field.FromBigInt(seed, v)), seed.Name())
	//
	assert.True(t, field.FromBigInt(seed, seed.Modulus()).IsZero(), seed.Name())
}
