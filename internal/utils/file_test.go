// Copyright 2025 The declass Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.json")
	require.NoError(t, MustWriteFile(path, []byte("hello")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestWatchDir(t *testing.T) {
	dir := t.TempDir()

	events := make(chan string, 8)
	require.NoError(t, WatchDir(dir, func(op fsnotify.Op, file string) {
		if op&fsnotify.Create != 0 || op&fsnotify.Write != 0 {
			events <- file
		}
	}))

	target := filepath.Join(dir, "Sample.class")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))

	select {
	case file := <-events:
		assert.Equal(t, target, file)
	case <-time.After(3 * time.Second):
		t.Fatal("no watch event received")
	}
}

func TestWatchDirMissing(t *testing.T) {
	err := WatchDir(filepath.Join(t.TempDir(), "nope"), func(fsnotify.Op, string) {})
	assert.Error(t, err)
}
