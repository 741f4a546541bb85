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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/scalarff/pkg/util"
	"github.com/consensys/scalarff/pkg/util/termio"
)

var residuesCmd = &cobra.Command{
	Use:   "residues [flags]",
	Short: "scan for quadratic residues and their square roots.",
	Long: `Scan upwards from a starting value, classifying each candidate in turn, and
print the requested number of quadratic residues together with both of their
square roots.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			start    = GetUint64(cmd, "start")
			count    = GetUint(cmd, "count")
			name     = GetString(cmd, "field")
			selected = backends
			//
			painter    = termio.NewPainter(term.IsTerminal(int(os.Stdout.Fd())))
			transcript = util.NewTranscript()
		)
		//
		if name != "" {
			selected = []runner{findBackend(name)}
		}
		//
		for _, b := range selected {
			stats := util.NewPerfStats()
			printResidues(b, painter, start, count)
			transcript.Record(fmt.Sprintf("%d quadratic residues in %s", count, b.Name()), stats)
		}
		// Timing summary
		for _, line := range transcript.Summary() {
			fmt.Println(painter.Colour(line, termio.TERM_GREEN))
		}
	},
}

// printResidues scans one field and prints each residue as a product of its
// two roots.
func printResidues(b runner, painter termio.Painter, start uint64, count uint) {
	header := fmt.Sprintf("finding the next %d residues in field %s: starting at %d", count, b.Name(), start)
	fmt.Println(painter.BoldColour(header, termio.TERM_BLUE))
	//
	for _, row := range b.Residues(start, count) {
		fmt.Printf("    %s_%s = %s * %s\n",
			painter.BoldColour(row.Value, termio.TERM_RED),
			painter.BoldColour(b.Name(), termio.TERM_GREEN),
			row.LowRoot,
			row.HighRoot,
		)
	}
}

func init() {
	rootCmd.AddCommand(residuesCmd)
	residuesCmd.Flags().Uint64("start", 360, "first candidate value to classify")
	residuesCmd.Flags().Uint("count", 10, "number of residues to collect")
	residuesCmd.Flags().StringP("field", "f", "", "restrict the scan to a single field")
}
