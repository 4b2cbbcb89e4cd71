// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir_Override(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, dir)

	assert.Equal(t, dir, GetConfigDir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), GetConfigFile())
}

func TestGetConfigDir_Default(t *testing.T) {
	t.Setenv(ConfigDirEnv, "")

	dir := GetConfigDir()
	assert.NotEmpty(t, dir)
	assert.Contains(t, dir, "rulecheck")
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ResolvePath("~/codes.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "codes.txt"), got)

	got, err = ResolvePath("codes.txt")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))

	_, err = ResolvePath("")
	var pathErr *PathValidationError
	assert.True(t, errors.As(err, &pathErr))

	_, err = ResolvePath("a\x00b")
	assert.Error(t, err)
}
