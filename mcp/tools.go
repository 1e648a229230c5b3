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
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jvmkit/declass/classfile"
	"github.com/jvmkit/declass/internal/utils"
	"github.com/jvmkit/declass/log"
	"github.com/jvmkit/declass/parser"
)

const (
	ToolListClasses     = "list_classes"
	DescListClasses     = "List the binary names of all loaded classes. No parameters required. Always the first step."
	ToolGetClassStruct  = "get_class_structure"
	DescGetClassStruct  = "Get the structure of one class: version, super class, interfaces, fields and methods with decoded Java signatures. Input: class_name from list_classes output."
	ToolGetConstantPool = "get_constant_pool"
	DescGetConstantPool = "Get the resolved constant pool of one class. Input: class_name from list_classes output."
	ParamClassName      = "class_name"
)

type Tool struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

type ClassToolsOptions struct {
	// ClassDir holds the *.class files to serve.
	ClassDir string
}

// ClassTools keeps every class file under ClassDir parsed in memory and
// follows directory changes.
type ClassTools struct {
	opts    ClassToolsOptions
	classes sync.Map // binary class name => *classfile.ClassFile
	files   sync.Map // file path => binary class name
}

func NewClassTools(opts ClassToolsOptions) (*ClassTools, error) {
	ret := &ClassTools{opts: opts}

	files, err := filepath.Glob(filepath.Join(opts.ClassDir, "*.class"))
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if err := ret.load(f); err != nil {
			return nil, fmt.Errorf("load class file %s failed: %w", f, err)
		}
	}

	if err := utils.WatchDir(opts.ClassDir, func(op fsnotify.Op, file string) {
		if !strings.HasSuffix(file, ".class") {
			return
		}
		if op&fsnotify.Write != 0 || op&fsnotify.Create != 0 {
			if err := ret.load(file); err != nil {
				log.Error("reload class file %s failed: %v", file, err)
			}
		} else if op&fsnotify.Remove != 0 {
			if name, ok := ret.files.LoadAndDelete(file); ok {
				ret.classes.Delete(name)
			}
		}
	}); err != nil {
		return nil, err
	}

	return ret, nil
}

func (t *ClassTools) load(file string) error {
	cf, err := parser.ParseFile(file)
	if err != nil {
		return err
	}
	name, err := cf.ClassName()
	if err != nil {
		return err
	}
	t.classes.Store(name, cf)
	t.files.Store(file, name)
	log.Info("loaded class %s from %s", name, file)
	return nil
}

func (t *ClassTools) get(name string) (*classfile.ClassFile, bool) {
	v, ok := t.classes.Load(name)
	if !ok {
		return nil, false
	}
	return v.(*classfile.ClassFile), true
}

// Tools returns the MCP tool set backed by this store.
func (t *ClassTools) Tools() []Tool {
	return []Tool{
		{
			Tool: mcp.NewTool(ToolListClasses,
				mcp.WithDescription(DescListClasses)),
			Handler: t.handleListClasses,
		},
		{
			Tool: mcp.NewTool(ToolGetClassStruct,
				mcp.WithDescription(DescGetClassStruct),
				mcp.WithString(ParamClassName, mcp.Required(),
					mcp.Description("binary class name, e.g. com/example/Sample"))),
			Handler: t.handleGetClassStructure,
		},
		{
			Tool: mcp.NewTool(ToolGetConstantPool,
				mcp.WithDescription(DescGetConstantPool),
				mcp.WithString(ParamClassName, mcp.Required(),
					mcp.Description("binary class name, e.g. com/example/Sample"))),
			Handler: t.handleGetConstantPool,
		},
	}
}

func (t *ClassTools) handleListClasses(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var names []string
	t.classes.Range(func(k, _ interface{}) bool {
		names = append(names, k.(string))
		return true
	})
	sort.Strings(names)
	out, err := utils.MarshalJSONIndent(names)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(out), nil
}

func (t *ClassTools) handleGetClassStructure(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString(ParamClassName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cf, ok := t.get(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("class not loaded: %s", name)), nil
	}
	summary, err := summarize(cf)
	if err != nil {
		return nil, err
	}
	out, err := utils.MarshalJSONIndent(summary)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(out), nil
}

func (t *ClassTools) handleGetConstantPool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString(ParamClassName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cf, ok := t.get(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("class not loaded: %s", name)), nil
	}
	out, err := utils.MarshalJSONIndent(cf.ConstPool.Describe())
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(out), nil
}

// ClassSummary is the get_class_structure payload.
type ClassSummary struct {
	Name        string
	JavaVersion string
	Modifiers   []string        `json:",omitempty"`
	SuperClass  string          `json:",omitempty"`
	Interfaces  []string        `json:",omitempty"`
	SourceFile  string          `json:",omitempty"`
	Fields      []FieldSummary  `json:",omitempty"`
	Methods     []MethodSummary `json:",omitempty"`
}

type FieldSummary struct {
	Modifiers     []string `json:",omitempty"`
	Type          string
	Name          string
	ConstantValue string `json:",omitempty"`
}

type MethodSummary struct {
	Modifiers []string `json:",omitempty"`
	Name      string
	Params    []string `json:",omitempty"`
	Returns   string
}

func summarize(cf *classfile.ClassFile) (*ClassSummary, error) {
	name, err := cf.ClassName()
	if err != nil {
		return nil, err
	}
	super, err := cf.SuperClassName()
	if err != nil {
		return nil, err
	}
	ifaces, err := cf.InterfaceNames()
	if err != nil {
		return nil, err
	}

	ret := &ClassSummary{
		Name:        name,
		JavaVersion: cf.JavaVersion(),
		Modifiers:   classfile.ClassModifiers(cf.AccessFlags),
		SuperClass:  super,
		Interfaces:  ifaces,
		SourceFile:  cf.SourceFile(),
	}

	for _, f := range cf.Fields {
		typ, err := classfile.FieldType(f.Descriptor)
		if err != nil {
			typ = f.Descriptor
		}
		ret.Fields = append(ret.Fields, FieldSummary{
			Modifiers:     classfile.FieldModifiers(f.AccessFlags),
			Type:          typ,
			Name:          f.Name,
			ConstantValue: f.ConstantValue,
		})
	}

	for _, m := range cf.Methods {
		params, retType, err := classfile.MethodSignature(m.Descriptor)
		if err != nil {
			params, retType = nil, m.Descriptor
		}
		ret.Methods = append(ret.Methods, MethodSummary{
			Modifiers: classfile.MethodModifiers(m.AccessFlags),
			Name:      m.Name,
			Params:    params,
			Returns:   retType,
		})
	}

	return ret, nil
}
