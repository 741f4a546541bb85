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
	"github.com/consensys/scalarff/pkg/field"
	"github.com/consensys/scalarff/pkg/field/bls12_377"
	"github.com/consensys/scalarff/pkg/field/bn254"
	"github.com/consensys/scalarff/pkg/field/curve25519"
	"github.com/consensys/scalarff/pkg/field/goldilocks"
	"github.com/consensys/scalarff/pkg/field/koalabear"
	"github.com/consensys/scalarff/pkg/field/mersenne31"
	"github.com/consensys/scalarff/pkg/field/smallfield"
)

func init() {
	// make sure the interface is adhered to.
	_ = field.Element[bn254.Element](bn254.Element{})
	_ = field.Element[bls12_377.Element](bls12_377.Element{})
	_ = field.Element[goldilocks.Element](goldilocks.Element{})
	_ = field.Element[koalabear.Element](koalabear.Element{})
	_ = field.Element[curve25519.Element](curve25519.Element{})
	_ = field.Element[mersenne31.Element](mersenne31.Element{})
	_ = field.Element[smallfield.Element](smallfield.New(13, "f13").NewElement(0))
}
