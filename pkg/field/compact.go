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

// low60Mask selects the low 60 bits of an integer view.
var low60Mask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 60), big.NewInt(1))

// CompactString renders only the low 60 bits of x's integer view, suffixed
// with an "_L60" marker, falling back to the full decimal string whenever
// that representation would not be shorter.  The compact form is lossy and
// intended for display only; it must never be parsed back.
func CompactString[F Element[F]](x F) string {
	var (
		plain   = x.String()
		compact = fmt.Sprintf("%s_L60", new(big.Int).And(ToBigInt(x), low60Mask))
	)
	// The margin ensures elements of 64 bit fields always print in full.
	if len(compact)+3 < len(plain) {
		return compact
	}
	//
	return plain
}
