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

package classfile

// FieldInfo is one field_info structure, JVMS 4.5. Name and Descriptor are
// resolved from the constant pool at parse time.
type FieldInfo struct {
	AccessFlags uint16
	Name        string
	Descriptor  string

	// ConstantValue is the resolved literal of a ConstantValue attribute,
	// or "" if the field has none.
	ConstantValue string `json:",omitempty"`

	Attributes []Attribute `json:",omitempty"`
}

// MethodInfo is one method_info structure, JVMS 4.6.
type MethodInfo struct {
	AccessFlags uint16
	Name        string
	Descriptor  string
	Attributes  []Attribute `json:",omitempty"`
}

// Code returns the method's Code attribute, or nil for abstract and native
// methods.
func (m *MethodInfo) Code() *CodeAttr {
	if a := FindAttr(m.Attributes, AttrCode); a != nil {
		return a.(*CodeAttr)
	}
	return nil
}

// LineNumbers returns the LineNumberTable nested in the Code attribute,
// or nil.
func (m *MethodInfo) LineNumbers() *LineNumberTableAttr {
	code := m.Code()
	if code == nil {
		return nil
	}
	if a := FindAttr(code.Attributes, AttrLineNumberTable); a != nil {
		return a.(*LineNumberTableAttr)
	}
	return nil
}
