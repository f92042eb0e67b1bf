// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package cli

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireTempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "bytesize-test-*")
	require.NoError(t, err)
	return dir
}

func TestLoadDefaultsMissingFile(t *testing.T) {
	dir := requireTempDir(t)
	defer os.RemoveAll(dir)

	defaults, err := LoadDefaults(filepath.Join(dir, "nope", "defaults.json"))
	assert.NoError(t, err)
	assert.Equal(t, Defaults{}, defaults)
}

func TestLoadDefaultsFailsOnGarbage(t *testing.T) {
	dir := requireTempDir(t)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "defaults.json")
	require.NoError(t, ioutil.WriteFile(path, []byte("not json"), 0666))

	_, err := LoadDefaults(path)
	assert.Error(t, err)
}

func TestDefaultsRoundTrip(t *testing.T) {
	dir := requireTempDir(t)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "nested", "defaults.json")
	saved := Defaults{TargetUnit: "MiB"}
	require.NoError(t, SaveDefaults(path, saved))

	loaded, err := LoadDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}
