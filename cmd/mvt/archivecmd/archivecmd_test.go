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

package archivecmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/mvt/archive"
)

func TestParseCompression(t *testing.T) {
	c, err := parseCompression("zstd")
	require.NoError(t, err)
	assert.Equal(t, archive.Zstd, c)

	_, err = parseCompression("bogus")
	assert.Error(t, err)
}

func TestRunBuildAndList(t *testing.T) {
	dir := t.TempDir()

	tile1 := filepath.Join(dir, "a.mvt")
	tile2 := filepath.Join(dir, "b.mvt")
	require.NoError(t, os.WriteFile(tile1, []byte("tile-a-payload"), 0o600))
	require.NoError(t, os.WriteFile(tile2, []byte("tile-b-payload"), 0o600))

	archivePath := filepath.Join(dir, "out.mvtar")

	buildOut := &bytes.Buffer{}
	saved := out

	defer func() { out = saved }()

	out = buildOut

	require.NoError(t, runBuild(archivePath, archive.Raw, []string{tile1, tile2}))
	assert.Contains(t, buildOut.String(), "added a.mvt")
	assert.Contains(t, buildOut.String(), "added b.mvt")

	f, err := os.Open(archivePath)
	require.NoError(t, err)

	defer f.Close()

	listOut := &bytes.Buffer{}
	out = listOut

	require.NoError(t, runList(f))
	assert.Contains(t, listOut.String(), "a.mvt\traw\t14 B\n")
	assert.Contains(t, listOut.String(), "b.mvt\traw\t14 B\n")
}
