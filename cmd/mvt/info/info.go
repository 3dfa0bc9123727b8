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

// Package info implements the "mvt info" subcommand.
package info

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/mvt"
	"m4o.io/mvt/cmd/mvt/cli"
)

var out io.Writer = os.Stdout

type layerInfo struct {
	Name         string `json:"name"`
	Version      uint32 `json:"version"`
	Extent       uint32 `json:"extent"`
	FeatureCount int    `json:"featureCount"`
}

type tileInfo struct {
	Layers []layerInfo `json:"layers"`
}

func init() {
	cli.RootCmd.AddCommand(infoCmd)

	flags := infoCmd.Flags()
	flags.BoolP("json", "j", false, "format information in JSON")
}

var infoCmd = &cobra.Command{
	Use:   "info [<tile file>]",
	Short: "Print information about an encoded tile",
	Long:  "Print information about an encoded tile",
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

		info, err := runInfo(buf)
		if err != nil {
			log.Fatal(err)
		}

		jsonfmt, err := cmd.Flags().GetBool("json")
		if err != nil {
			log.Fatal(err)
		}

		if jsonfmt {
			renderJSON(info)
		} else {
			renderTxt(info)
		}
	},
}

func runInfo(buf []byte) (*tileInfo, error) {
	tile, err := mvt.DecodeTile(buf)
	if err != nil {
		return nil, fmt.Errorf("decoding tile: %w", err)
	}

	info := &tileInfo{}

	var iterErr error

	tile.Layers()(func(i int, layer *mvt.LayerView, err error) bool {
		if err != nil {
			iterErr = fmt.Errorf("parsing layer %d: %w", i, err)
			return false
		}

		info.Layers = append(info.Layers, layerInfo{
			Name:         layer.Name(),
			Version:      layer.Version(),
			Extent:       layer.Extent(),
			FeatureCount: layer.NumFeatures(),
		})

		return true
	})

	if iterErr != nil {
		return nil, iterErr
	}

	return info, nil
}

func renderJSON(info *tileInfo) {
	b, err := json.Marshal(info)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprintln(out, string(b))
}

func renderTxt(info *tileInfo) {
	for _, l := range info.Layers {
		fmt.Fprintf(out, "%s: version=%d extent=%d features=%s\n", l.Name, l.Version, l.Extent, humanize.Comma(int64(l.FeatureCount)))
	}
}
