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

// Attribute names the parser decodes into typed structures. Anything else
// is retained as a RawAttr.
const (
	AttrConstantValue    = "ConstantValue"
	AttrCode             = "Code"
	AttrLineNumberTable  = "LineNumberTable"
	AttrSourceFile       = "SourceFile"
	AttrMethodParameters = "MethodParameters"
	AttrInnerClasses     = "InnerClasses"
	AttrExceptions       = "Exceptions"
	AttrSignature        = "Signature"
	AttrDeprecated       = "Deprecated"
	AttrSynthetic        = "Synthetic"
)

// Attribute is one attribute_info structure, JVMS 4.7.
type Attribute interface {
	AttrName() string
}

// ConstantValueAttr marks a field with a compile-time constant, JVMS 4.7.2.
// Value is the literal resolved from the constant pool at parse time.
type ConstantValueAttr struct {
	ValueIndex uint16
	Value      string
}

// CodeAttr holds the bytecode of a method, JVMS 4.7.3. The code bytes are
// kept raw; declass does not decode instructions.
type CodeAttr struct {
	MaxStack       uint16
	MaxLocals      uint16
	Code           []byte
	ExceptionTable []ExceptionHandler `json:",omitempty"`
	Attributes     []Attribute        `json:",omitempty"`
}

type ExceptionHandler struct {
	StartPC   uint16
	EndPC     uint16
	HandlerPC uint16
	CatchType uint16
}

// LineNumberTableAttr maps bytecode offsets to source lines, JVMS 4.7.12.
type LineNumberTableAttr struct {
	Entries []LineNumberEntry
}

type LineNumberEntry struct {
	StartPC    uint16
	LineNumber uint16
}

type SourceFileAttr struct {
	SourceFile string
}

// MethodParametersAttr, JVMS 4.7.24. Parameter names are resolved from the
// pool at parse time; a zero name_index yields "".
type MethodParametersAttr struct {
	Parameters []MethodParameter
}

type MethodParameter struct {
	Name        string
	AccessFlags uint16
}

type InnerClassesAttr struct {
	Classes []InnerClass
}

type InnerClass struct {
	InnerClassInfoIndex  uint16
	OuterClassInfoIndex  uint16
	InnerNameIndex       uint16
	InnerClassAccessFlag uint16
}

// ExceptionsAttr lists the checked exceptions a method declares, resolved
// to binary class names.
type ExceptionsAttr struct {
	Exceptions []string
}

type SignatureAttr struct {
	Signature string
}

type DeprecatedAttr struct{}

type SyntheticAttr struct{}

// RawAttr preserves an attribute the parser does not decode, with its
// undecoded info bytes.
type RawAttr struct {
	Name string
	Info []byte
}

func (*ConstantValueAttr) AttrName() string    { return AttrConstantValue }
func (*CodeAttr) AttrName() string             { return AttrCode }
func (*LineNumberTableAttr) AttrName() string  { return AttrLineNumberTable }
func (*SourceFileAttr) AttrName() string       { return AttrSourceFile }
func (*MethodParametersAttr) AttrName() string { return AttrMethodParameters }
func (*InnerClassesAttr) AttrName() string     { return AttrInnerClasses }
func (*ExceptionsAttr) AttrName() string       { return AttrExceptions }
func (*SignatureAttr) AttrName() string        { return AttrSignature }
func (*DeprecatedAttr) AttrName() string       { return AttrDeprecated }
func (*SyntheticAttr) AttrName() string        { return AttrSynthetic }
func (a *RawAttr) AttrName() string            { return a.Name }

// FindAttr returns the first attribute with the given name, or nil.
func FindAttr(attrs []Attribute, name string) Attribute {
	for _, a := range attrs {
		if a.AttrName() == name {
			return a
		}
	}
	return nil
}
