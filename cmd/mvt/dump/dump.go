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

// Package dump implements the "mvt dump" subcommand.
package dump

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"m4o.io/mvt"
	"m4o.io/mvt/cmd/mvt/cli"
)

func init() {
	cli.RootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump [<tile file>]",
	Short: "Dump every layer, feature and attribute of an encoded tile",
	Long:  "Dump every layer, feature and attribute of an encoded tile as plain text",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var f *os.File

		var err error

		if len(args) == 1 {
			f, err = os.Open(args[0])
			if err != nil {
				log.Fatal(err)
			}
		} else {
			f = os.Stdin
		}

		in, err := cli.WrapInputFile(f)
		if err != nil {
			log.Fatal(err)
		}

		buf, err := io.ReadAll(in)
		if err != nil {
			log.Fatal(err)
		}

		if err := in.Close(); err != nil {
			log.Fatal(err)
		}

		if err := runDump(os.Stdout, buf); err != nil {
			log.Fatal(err)
		}
	},
}

func runDump(out io.Writer, buf []byte) error {
	tile, err := mvt.DecodeTile(buf)
	if err != nil {
		return fmt.Errorf("decoding tile: %w", err)
	}

	var iterErr error

	tile.Layers()(func(i int, layer *mvt.LayerView, err error) bool {
		if err != nil {
			iterErr = fmt.Errorf("parsing layer %d: %w", i, err)
			return false
		}

		fmt.Fprintf(out, "layer %s (version=%d extent=%d features=%d)\n",
			layer.Name(), layer.Version(), layer.Extent(), layer.NumFeatures())

		layer.Features()(func(j int, feature *mvt.FeatureView, err error) bool {
			if err != nil {
				iterErr = fmt.Errorf("parsing feature %d of layer %s: %w", j, layer.Name(), err)
				return false
			}

			fmt.Fprintf(out, "  feature %d (geometry=%s)\n", j, feature.GeometryType())

			h := &mvt.DumpHandler{}

			if _, _, err := feature.DecodeAllAttributes(h); err != nil {
				iterErr = fmt.Errorf("decoding attributes of feature %d of layer %s: %w", j, layer.Name(), err)
				return false
			}

			for _, line := range splitNonEmptyLines(h.String()) {
				fmt.Fprintf(out, "    %s\n", line)
			}

			return true
		})

		return iterErr == nil
	})

	return iterErr
}

func splitNonEmptyLines(s string) []string {
	var lines []string

	start := 0

	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			if i > start {
				lines = append(lines, s[start:i])
			}

			start = i + 1
		}
	}

	return lines
}
