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

// Package archivecmd implements the "mvt archive build" and "mvt archive
// list" subcommands.
package archivecmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/destel/rill"
	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/mvt/archive"
	"m4o.io/mvt/cmd/mvt/cli"
)

var out io.Writer = os.Stdout

// readConcurrency bounds how many input tile files runBuild reads at once;
// compression happens inside archive.Writer.Put and stays sequential.
const readConcurrency = 4

func init() {
	cli.RootCmd.AddCommand(archiveCmd)
	archiveCmd.AddCommand(buildCmd)
	archiveCmd.AddCommand(listCmd)

	flags := buildCmd.Flags()
	flags.StringP("output", "o", "tiles.mvtar", "archive file to write")
	flags.StringP("compression", "c", "zstd", "compression to use: raw, zlib, lz4, zstd, xz")
}

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Build and inspect tile archives",
}

var buildCmd = &cobra.Command{
	Use:   "build <tile file>...",
	Short: "Pack one or more encoded tiles into a tile archive",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			log.Fatal(err)
		}

		compressionName, err := cmd.Flags().GetString("compression")
		if err != nil {
			log.Fatal(err)
		}

		compression, err := parseCompression(compressionName)
		if err != nil {
			log.Fatal(err)
		}

		if err := runBuild(output, compression, args); err != nil {
			log.Fatal(err)
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list [<archive file>]",
	Short: "List the entries of a tile archive",
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

		if err := runList(in); err != nil {
			log.Fatal(err)
		}

		if err := in.Close(); err != nil {
			log.Fatal(err)
		}
	},
}

func parseCompression(name string) (archive.Compression, error) {
	switch name {
	case "raw":
		return archive.Raw, nil
	case "zlib":
		return archive.Zlib, nil
	case "lz4":
		return archive.LZ4, nil
	case "zstd":
		return archive.Zstd, nil
	case "xz":
		return archive.XZ, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

type tileFile struct {
	name string
	data []byte
}

func runBuild(output string, compression archive.Compression, inputs []string) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()

	w := archive.NewWriter(f, archive.WithWriterCompression(compression))

	paths := make(chan rill.Try[string])

	go func() {
		defer close(paths)

		for _, path := range inputs {
			paths <- rill.Try[string]{Value: path}
		}
	}()

	files := rill.OrderedMap(paths, readConcurrency, func(path string) (tileFile, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return tileFile{}, fmt.Errorf("reading %s: %w", path, err)
		}

		return tileFile{name: filepath.Base(path), data: data}, nil
	})

	for res := range files {
		if res.Error != nil {
			return fmt.Errorf("building archive: %w", res.Error)
		}

		if err := w.Put(res.Value.name, res.Value.data); err != nil {
			return fmt.Errorf("packing %s: %w", res.Value.name, err)
		}

		fmt.Fprintf(out, "added %s (%s)\n", res.Value.name, humanize.Bytes(uint64(len(res.Value.data))))
	}

	return nil
}

func runList(r io.Reader) error {
	ar := archive.NewReader(r)

	for {
		e, err := ar.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("listing: %w", err)
		}

		fmt.Fprintf(out, "%s\t%s\t%s\n", e.Name, e.Compression, humanize.Bytes(uint64(e.RawSize)))
	}
}
