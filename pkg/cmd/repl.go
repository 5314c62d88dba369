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
	"bufio"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hoodiv/bveval/pkg/bitvec"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "Evaluate boolean-set expressions read from stdin.",
	Long: `Read one expression per line from stdin, evaluating each against a fixed
	bit-vector length and printing the result (or any errors).  Exits on
	end-of-input.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		context := bitvec.Context{Length: GetUint(cmd, "length")}
		scanner := bufio.NewScanner(os.Stdin)
		// Read expressions line by line
		for scanner.Scan() {
			expr := strings.TrimSpace(scanner.Text())
			//
			if expr == "" {
				continue
			}
			//
			result, errs := bitvec.Evaluate(expr, context)
			//
			if len(errs) != 0 {
				for _, err := range errs {
					printSyntaxError(&err)
				}
			} else {
				fmt.Println(result.String())
			}
		}
		//
		if err := scanner.Err(); err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
