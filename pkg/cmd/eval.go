// Copyright Hoodiv Software Inc.
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

	"github.com/hoodiv/bveval/pkg/bitvec"
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression(s)",
	Short: "Evaluate one or more boolean-set expressions.",
	Long: `Evaluate one or more boolean-set expressions against a fixed bit-vector
	length, printing each result as a string of 0s and 1s.  For example,
	"bveval eval -n 4 'true * 1100'" prints 1100.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		context := bitvec.Context{Length: GetUint(cmd, "length")}
		failed := false
		// Evaluate each expression in turn
		for _, expr := range args {
			result, errs := bitvec.Evaluate(expr, context)
			//
			if len(errs) != 0 {
				for _, err := range errs {
					printSyntaxError(&err)
				}
				//
				failed = true
			} else {
				fmt.Printf("%s = %s\n", expr, result.String())
			}
		}
		//
		if failed {
			os.Exit(4)
		}
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
