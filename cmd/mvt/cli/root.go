// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli holds the shared scaffolding every mvt subcommand registers
// itself against: the root command and the input-wrapping helpers in
// progress.go.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the entry point every subcommand package registers itself
// against from its init function.
var RootCmd = &cobra.Command{
	Use:   "mvt",
	Short: "Inspect and build Mapbox Vector Tiles",
	Long:  "mvt reads, writes, and archives Mapbox Vector Tile (MVT) data.",
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
