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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/scalarff/pkg/field"
	"github.com/consensys/scalarff/pkg/field/bls12_377"
	"github.com/consensys/scalarff/pkg/field/bn254"
	"github.com/consensys/scalarff/pkg/field/curve25519"
	"github.com/consensys/scalarff/pkg/field/goldilocks"
	"github.com/consensys/scalarff/pkg/field/koalabear"
	"github.com/consensys/scalarff/pkg/field/mersenne31"
)

// residueRow is one scanned residue rendered for display.
type residueRow struct {
	Value    string
	LowRoot  string
	HighRoot string
}

// runner binds the generic field algorithms to one concrete backend, erasing
// the element type so that commands can dispatch on a field name given at
// the command line.
type runner interface {
	// Name of the underlying field.
	Name() string
	// Legendre computes the Legendre symbol of the given decimal value.
	Legendre(value string) (int, error)
	// Sqrt returns both roots of the given decimal value, canonical first.
	Sqrt(value string) (string, string, error)
	// Residues scans for count residues upwards from start, rendering each
	// in compact display form.
	Residues(start uint64, count uint) []residueRow
}

// backend implements runner for any fixed-modulus element type.
type backend[F field.Element[F]] struct{}

// Name implementation for the runner interface
func (b backend[F]) Name() string {
	return field.Zero[F]().Name()
}

// Legendre implementation for the runner interface
func (b backend[F]) Legendre(value string) (int, error) {
	x, err := field.Zero[F]().SetString(value)
	if err != nil {
		return 0, err
	}
	//
	return field.Legendre(x), nil
}

// Sqrt implementation for the runner interface
func (b backend[F]) Sqrt(value string) (string, string, error) {
	x, err := field.Zero[F]().SetString(value)
	if err != nil {
		return "", "", err
	}
	//
	root, err := field.Sqrt(x)
	if err != nil {
		return "", "", err
	}
	//
	return root.String(), root.Neg().String(), nil
}

// Residues implementation for the runner interface
func (b backend[F]) Residues(start uint64, count uint) []residueRow {
	residues := field.Residues(field.Uint64[F](start), count)
	rows := make([]residueRow, len(residues))
	//
	for i, r := range residues {
		rows[i] = residueRow{
			Value:    field.CompactString(r.Value),
			LowRoot:  field.CompactString(r.LowRoot),
			HighRoot: field.CompactString(r.HighRoot),
		}
	}
	//
	return rows
}

// backends lists every field the CLI can operate on.
var backends = []runner{
	backend[bn254.Element]{},
	backend[bls12_377.Element]{},
	backend[goldilocks.Element]{},
	backend[koalabear.Element]{},
	backend[curve25519.Element]{},
	backend[mersenne31.Element]{},
}

// findBackend resolves a field name given on the command line, exiting with
// a diagnostic when no backend carries that name.
func findBackend(name string) runner {
	for _, b := range backends {
		if b.Name() == name {
			return b
		}
	}
	//
	fmt.Printf("unknown field \"%s\"\n", name)
	os.Exit(2)
	// unreachable
	return nil
}
