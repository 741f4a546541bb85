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
)

var legendreCmd = &cobra.Command{
	Use:   "legendre [flags] field value",
	Short: "compute the Legendre symbol of a field element.",
	Long: `Classify the given value as a quadratic residue (1), a non-residue (-1) or
zero (0) in the chosen field.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		symbol, err := findBackend(args[0]).Legendre(args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		switch symbol {
		case 1:
			fmt.Println("1 (quadratic residue)")
		case -1:
			fmt.Println("-1 (non-residue)")
		default:
			fmt.Println("0 (zero)")
		}
	},
}

func init() {
	rootCmd.AddCommand(legendreCmd)
}
