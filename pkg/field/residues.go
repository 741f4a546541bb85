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

// A Residue pairs a quadratic residue with both of its square roots.
// LowRoot is the canonical (numerically smaller) root, and HighRoot is its
// negation.
type Residue[F Element[F]] struct {
	Value    F
	LowRoot  F
	HighRoot F
}

// Residues scans candidate values upwards from start, classifying each one
// in turn, and returns the first count quadratic residues together with
// their roots, ordered by increasing candidate.  Zero and non-residue
// candidates are skipped.  Each call rescans from start.
func Residues[F Element[F]](start F, count uint) []Residue[F] {
	var (
		out = make([]Residue[F], 0, count)
		one = start.SetUint64(1)
		x   = start
	)
	//
	for uint(len(out)) < count {
		if Legendre(x) == 1 {
			root, err := Sqrt(x)
			// Cannot fail, since x was just classified as a residue.
			if err != nil {
				panic(&InvariantViolation{x.Name(), err.Error()})
			}
			//
			out = append(out, newResidue(x, root))
		}
		//
		x = x.Add(one)
	}
	//
	return out
}

func newResidue[F Element[F]](value, low F) Residue[F] {
	high := low.Neg()
	// Check both roots actually square back to the value.
	if !value.Equals(low.Mul(low)) || !value.Equals(high.Mul(high)) ||
		!value.Neg().Equals(low.Mul(high)) {
		panic(&InvariantViolation{value.Name(), "computed roots do not square to their residue"})
	}
	//
	return Residue[F]{value, low, high}
}
