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

// Package classfile models the JVM class file format, see
// https://docs.oracle.com/javase/specs/jvms/se21/html/jvms-4.html
package classfile

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// Magic is the magic number every class file starts with.
const Magic uint32 = 0xCAFE_BABE

// ClassFile is the parsed structure of one .class file, JVMS 4.1.
type ClassFile struct {
	Magic        uint32
	MinorVersion uint16
	MajorVersion uint16
	ConstPool    *ConstPool
	AccessFlags  uint16
	ThisClass    uint16
	SuperClass   uint16
	Interfaces   []uint16     `json:",omitempty"`
	Fields       []FieldInfo  `json:",omitempty"`
	Methods      []MethodInfo `json:",omitempty"`
	Attributes   []Attribute  `json:",omitempty"`
}

func NewClassFile(magic uint32) *ClassFile {
	return &ClassFile{Magic: magic}
}

// ClassName returns the binary name of this class (slash-separated).
func (cf *ClassFile) ClassName() (string, error) {
	return cf.ConstPool.ClassName(cf.ThisClass)
}

// SuperClassName returns the binary name of the super class, or "" for
// java.lang.Object itself (super_class index 0).
func (cf *ClassFile) SuperClassName() (string, error) {
	if cf.SuperClass == 0 {
		return "", nil
	}
	return cf.ConstPool.ClassName(cf.SuperClass)
}

// InterfaceNames resolves the direct superinterfaces.
func (cf *ClassFile) InterfaceNames() ([]string, error) {
	var ret []string
	for _, idx := range cf.Interfaces {
		name, err := cf.ConstPool.ClassName(idx)
		if err != nil {
			return nil, err
		}
		ret = append(ret, name)
	}
	return ret, nil
}

// SourceFile returns the SourceFile attribute value, if present.
func (cf *ClassFile) SourceFile() string {
	for _, a := range cf.Attributes {
		if sf, ok := a.(*SourceFileAttr); ok {
			return sf.SourceFile
		}
	}
	return ""
}

// JavaVersion names the platform release the major version corresponds to.
func (cf *ClassFile) JavaVersion() string {
	switch {
	case cf.MajorVersion >= 49:
		return fmt.Sprintf("Java %d", cf.MajorVersion-44)
	case cf.MajorVersion >= 45:
		return fmt.Sprintf("Java 1.%d", cf.MajorVersion-44)
	default:
		return fmt.Sprintf("unknown (major %d)", cf.MajorVersion)
	}
}

// ExternalName converts a binary class name to the dotted source form.
func ExternalName(binary string) string {
	return strings.ReplaceAll(binary, "/", ".")
}

func marshalJSON(v interface{}) ([]byte, error) {
	return sonic.Marshal(v)
}
