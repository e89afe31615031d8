// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points MATCACHE_CFG at a testdata file and reloads the
// package-level Config.
func setupTestConfig(t *testing.T, testdataFile string, namespace string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("MATCACHE_CFG", absPath)

	Config = Type{}
	_, err = Load(namespace)
	require.NoError(t, err)

	t.Cleanup(func() { Config = Type{} })
}

func TestLoad(t *testing.T) {
	setupTestConfig(t, "simple.yaml", "")

	assert.NotEmpty(t, Config.Source)
	assert.Contains(t, Config.Data, "size")
	assert.Contains(t, Config.Data, "bench")
}

func TestGetInt(t *testing.T) {
	setupTestConfig(t, "simple.yaml", "")

	tests := []struct {
		name    string
		key     string
		def     []int
		want    int
		wantErr bool
	}{
		{name: "top level", key: "size", want: 64},
		{name: "nested", key: "bench.seed", want: 7},
		{name: "missing with default", key: "bench.nope", def: []int{9}, want: 9},
		{name: "missing without default", key: "bench.nope", wantErr: true},
		{name: "not an int", key: "output", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetInt(tt.key, tt.def...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetString(t *testing.T) {
	setupTestConfig(t, "simple.yaml", "")

	got, err := GetString("output")
	require.NoError(t, err)
	assert.Equal(t, "table", got)

	got, err = GetString("missing", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)

	_, err = GetString("missing")
	assert.Error(t, err)
}

func TestGetStringSlice(t *testing.T) {
	setupTestConfig(t, "simple.yaml", "")

	got, err := GetStringSlice("invert.defaults")
	require.NoError(t, err)
	assert.Equal(t, []string{"--size 8", "--times 2"}, got)

	def := []string{"x"}
	got, err = GetStringSlice("missing", def)
	require.NoError(t, err)
	assert.Equal(t, def, got)
}

func TestNamespacePrecedence(t *testing.T) {
	// With the bench namespace, "size" resolves to bench.size before the
	// top-level key.
	setupTestConfig(t, "simple.yaml", "bench")

	got, err := GetInt("size")
	require.NoError(t, err)
	assert.Equal(t, 128, got)

	// Keys absent from the namespace fall back to the top level.
	got, err = GetInt("iterations")
	require.NoError(t, err)
	assert.Equal(t, 1000, got)
}
