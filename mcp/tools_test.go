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

package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvmkit/declass/internal/testutil"
)

func writeSampleClassDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "Sample.class")
	require.NoError(t, os.WriteFile(path, testutil.SampleClassBytes(), 0644))
	return dir
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	tc, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return tc.Text
}

func TestClassToolsListClasses(t *testing.T) {
	tools, err := NewClassTools(ClassToolsOptions{ClassDir: writeSampleClassDir(t)})
	require.NoError(t, err)

	result, err := tools.handleListClasses(context.Background(), callRequest(ToolListClasses, nil))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, textOf(t, result), "Sample")
}

func TestClassToolsGetClassStructure(t *testing.T) {
	tools, err := NewClassTools(ClassToolsOptions{ClassDir: writeSampleClassDir(t)})
	require.NoError(t, err)

	request := callRequest(ToolGetClassStruct, map[string]any{ParamClassName: "Sample"})
	result, err := tools.handleGetClassStructure(context.Background(), request)
	require.NoError(t, err)
	require.False(t, result.IsError)

	out := textOf(t, result)
	assert.Contains(t, out, `"Java 21"`)
	assert.Contains(t, out, "doSomething")
	assert.Contains(t, out, "stringField")
	assert.Contains(t, out, "Sample$MyInterface")
	assert.Contains(t, out, "Sample.java")
}

func TestClassToolsGetConstantPool(t *testing.T) {
	tools, err := NewClassTools(ClassToolsOptions{ClassDir: writeSampleClassDir(t)})
	require.NoError(t, err)

	request := callRequest(ToolGetConstantPool, map[string]any{ParamClassName: "Sample"})
	result, err := tools.handleGetConstantPool(context.Background(), request)
	require.NoError(t, err)
	require.False(t, result.IsError)

	out := textOf(t, result)
	assert.Contains(t, out, "Utf8")
	assert.Contains(t, out, "java/lang/Object")
	assert.Contains(t, out, "42l")
}

func TestClassToolsUnknownClass(t *testing.T) {
	tools, err := NewClassTools(ClassToolsOptions{ClassDir: writeSampleClassDir(t)})
	require.NoError(t, err)

	request := callRequest(ToolGetClassStruct, map[string]any{ParamClassName: "NoSuch"})
	result, err := tools.handleGetClassStructure(context.Background(), request)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestClassToolsMissingParam(t *testing.T) {
	tools, err := NewClassTools(ClassToolsOptions{ClassDir: writeSampleClassDir(t)})
	require.NoError(t, err)

	result, err := tools.handleGetConstantPool(context.Background(), callRequest(ToolGetConstantPool, nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestClassToolsRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Broken.class"), []byte{0xDE, 0xAD}, 0644))

	_, err := NewClassTools(ClassToolsOptions{ClassDir: dir})
	assert.Error(t, err)
}

func TestNewServer(t *testing.T) {
	svr, err := NewServer(ServerOptions{
		ServerName:    "declass",
		ServerVersion: "test",
		ClassToolsOptions: ClassToolsOptions{
			ClassDir: writeSampleClassDir(t),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, svr.Server)
}

func TestClassToolsDefinitions(t *testing.T) {
	tools, err := NewClassTools(ClassToolsOptions{ClassDir: writeSampleClassDir(t)})
	require.NoError(t, err)

	defs := tools.Tools()
	require.Len(t, defs, 3)
	names := make([]string, 0, len(defs))
	for _, d := range defs {
		names = append(names, d.Tool.Name)
		require.NotNil(t, d.Handler)
	}
	assert.ElementsMatch(t, []string{ToolListClasses, ToolGetClassStruct, ToolGetConstantPool}, names)
}
