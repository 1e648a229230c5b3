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

import (
	"errors"
	"fmt"
	"strings"
)

// Constant pool tags, see JVMS se21 4.4.
const (
	TagUtf8               uint8 = 1
	TagInteger            uint8 = 3
	TagFloat              uint8 = 4
	TagLong               uint8 = 5
	TagDouble             uint8 = 6
	TagClass              uint8 = 7
	TagString             uint8 = 8
	TagFieldref           uint8 = 9
	TagMethodref          uint8 = 10
	TagInterfaceMethodref uint8 = 11
	TagNameAndType        uint8 = 12
	TagMethodHandle       uint8 = 15
	TagMethodType         uint8 = 16
	TagDynamic            uint8 = 17
	TagInvokeDynamic      uint8 = 18
	TagModule             uint8 = 19
	TagPackage            uint8 = 20
)

var (
	ErrNoSuchConstant    = errors.New("no such constant pool entry")
	ErrWrongConstantKind = errors.New("unexpected constant pool entry kind")
)

// Constant is one constant pool entry.
type Constant interface {
	Tag() uint8
}

type Utf8Const struct {
	Value string
}

type IntegerConst struct {
	Value int32
}

type FloatConst struct {
	Value float32
}

type LongConst struct {
	Value int64
}

type DoubleConst struct {
	Value float64
}

type ClassConst struct {
	NameIndex uint16
}

type StringConst struct {
	StringIndex uint16
}

type FieldrefConst struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

type MethodrefConst struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

type InterfaceMethodrefConst struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

type NameAndTypeConst struct {
	NameIndex       uint16
	DescriptorIndex uint16
}

type MethodHandleConst struct {
	RefKind  uint8
	RefIndex uint16
}

type MethodTypeConst struct {
	DescriptorIndex uint16
}

type DynamicConst struct {
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

type InvokeDynamicConst struct {
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

type ModuleConst struct {
	NameIndex uint16
}

type PackageConst struct {
	NameIndex uint16
}

func (Utf8Const) Tag() uint8               { return TagUtf8 }
func (IntegerConst) Tag() uint8            { return TagInteger }
func (FloatConst) Tag() uint8              { return TagFloat }
func (LongConst) Tag() uint8               { return TagLong }
func (DoubleConst) Tag() uint8             { return TagDouble }
func (ClassConst) Tag() uint8              { return TagClass }
func (StringConst) Tag() uint8             { return TagString }
func (FieldrefConst) Tag() uint8           { return TagFieldref }
func (MethodrefConst) Tag() uint8          { return TagMethodref }
func (InterfaceMethodrefConst) Tag() uint8 { return TagInterfaceMethodref }
func (NameAndTypeConst) Tag() uint8        { return TagNameAndType }
func (MethodHandleConst) Tag() uint8       { return TagMethodHandle }
func (MethodTypeConst) Tag() uint8         { return TagMethodType }
func (DynamicConst) Tag() uint8            { return TagDynamic }
func (InvokeDynamicConst) Tag() uint8      { return TagInvokeDynamic }
func (ModuleConst) Tag() uint8             { return TagModule }
func (PackageConst) Tag() uint8            { return TagPackage }

func TagName(tag uint8) string {
	switch tag {
	case TagUtf8:
		return "Utf8"
	case TagInteger:
		return "Integer"
	case TagFloat:
		return "Float"
	case TagLong:
		return "Long"
	case TagDouble:
		return "Double"
	case TagClass:
		return "Class"
	case TagString:
		return "String"
	case TagFieldref:
		return "Fieldref"
	case TagMethodref:
		return "Methodref"
	case TagInterfaceMethodref:
		return "InterfaceMethodref"
	case TagNameAndType:
		return "NameAndType"
	case TagMethodHandle:
		return "MethodHandle"
	case TagMethodType:
		return "MethodType"
	case TagDynamic:
		return "Dynamic"
	case TagInvokeDynamic:
		return "InvokeDynamic"
	case TagModule:
		return "Module"
	case TagPackage:
		return "Package"
	default:
		return fmt.Sprintf("Unknown(%d)", tag)
	}
}

// ConstPool holds the constant pool of a class file.
//
// Entries are addressed by the 1-based indices the class file uses. A Long
// or Double entry occupies two slots and the slot after it is unusable
// (JVMS 4.4.5).
type ConstPool struct {
	entries []Constant
}

func NewConstPool(count uint16) *ConstPool {
	n := int(count)
	if n < 1 {
		n = 1
	}
	return &ConstPool{entries: make([]Constant, 1, n)}
}

// Add appends an entry and returns its index. Long and Double consume the
// following slot as well.
func (p *ConstPool) Add(c Constant) uint16 {
	idx := uint16(len(p.entries))
	p.entries = append(p.entries, c)
	switch c.Tag() {
	case TagLong, TagDouble:
		p.entries = append(p.entries, nil)
	}
	return idx
}

// Size reports the number of slots including index 0 and the phantom slots
// after Long/Double entries, i.e. the constant_pool_count of the class file
// once reading is complete.
func (p *ConstPool) Size() int {
	return len(p.entries)
}

// Entry returns the entry at idx, or nil if idx is out of range or points
// at an unusable slot.
func (p *ConstPool) Entry(idx uint16) Constant {
	if int(idx) >= len(p.entries) || idx == 0 {
		return nil
	}
	return p.entries[idx]
}

// Utf8 resolves idx as a CONSTANT_Utf8 entry.
func (p *ConstPool) Utf8(idx uint16) (string, error) {
	c := p.Entry(idx)
	if c == nil {
		return "", fmt.Errorf("%w: index %d", ErrNoSuchConstant, idx)
	}
	u, ok := c.(Utf8Const)
	if !ok {
		return "", fmt.Errorf("%w: index %d is %s, want Utf8", ErrWrongConstantKind, idx, TagName(c.Tag()))
	}
	return u.Value, nil
}

// ClassName resolves idx as a CONSTANT_Class entry and returns its binary
// name (slash-separated, as stored).
func (p *ConstPool) ClassName(idx uint16) (string, error) {
	c := p.Entry(idx)
	if c == nil {
		return "", fmt.Errorf("%w: index %d", ErrNoSuchConstant, idx)
	}
	cc, ok := c.(ClassConst)
	if !ok {
		return "", fmt.Errorf("%w: index %d is %s, want Class", ErrWrongConstantKind, idx, TagName(c.Tag()))
	}
	return p.Utf8(cc.NameIndex)
}

// NameAndType resolves idx as a CONSTANT_NameAndType entry.
func (p *ConstPool) NameAndType(idx uint16) (name, desc string, err error) {
	c := p.Entry(idx)
	if c == nil {
		return "", "", fmt.Errorf("%w: index %d", ErrNoSuchConstant, idx)
	}
	nt, ok := c.(NameAndTypeConst)
	if !ok {
		return "", "", fmt.Errorf("%w: index %d is %s, want NameAndType", ErrWrongConstantKind, idx, TagName(c.Tag()))
	}
	if name, err = p.Utf8(nt.NameIndex); err != nil {
		return "", "", err
	}
	if desc, err = p.Utf8(nt.DescriptorIndex); err != nil {
		return "", "", err
	}
	return name, desc, nil
}

// Literal renders the entry at idx as a printable literal. Only the loadable
// value kinds a ConstantValue attribute may reference are accepted
// (Integer, Float, Long, Double, String).
func (p *ConstPool) Literal(idx uint16) (string, error) {
	c := p.Entry(idx)
	if c == nil {
		return "", fmt.Errorf("%w: index %d", ErrNoSuchConstant, idx)
	}
	switch v := c.(type) {
	case IntegerConst:
		return fmt.Sprintf("%d", v.Value), nil
	case FloatConst:
		return fmt.Sprintf("%g", v.Value), nil
	case LongConst:
		return fmt.Sprintf("%d", v.Value), nil
	case DoubleConst:
		return fmt.Sprintf("%g", v.Value), nil
	case StringConst:
		s, err := p.Utf8(v.StringIndex)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%q", s), nil
	default:
		return "", fmt.Errorf("%w: index %d is %s, want a loadable value", ErrWrongConstantKind, idx, TagName(c.Tag()))
	}
}

// ConstantDesc is a resolved, human-readable view of one pool entry, used
// by the pool listing of the dump output and the JSON encoding.
type ConstantDesc struct {
	Index int
	Type  string
	Info  string
}

// Describe resolves every usable entry into a listing row. Unresolvable
// references are rendered with their raw indices rather than failing, since
// the listing is a diagnostic surface.
func (p *ConstPool) Describe() []ConstantDesc {
	var ret []ConstantDesc
	for i := 1; i < len(p.entries); i++ {
		c := p.entries[i]
		if c == nil {
			continue
		}
		ret = append(ret, ConstantDesc{
			Index: i,
			Type:  TagName(c.Tag()),
			Info:  p.describe(c),
		})
	}
	return ret
}

func (p *ConstPool) describe(c Constant) string {
	switch v := c.(type) {
	case Utf8Const:
		return v.Value
	case IntegerConst:
		return fmt.Sprintf("%d", v.Value)
	case FloatConst:
		return fmt.Sprintf("%gf", v.Value)
	case LongConst:
		return fmt.Sprintf("%dl", v.Value)
	case DoubleConst:
		return fmt.Sprintf("%gd", v.Value)
	case ClassConst:
		return p.utf8OrIndex(v.NameIndex)
	case StringConst:
		return p.utf8OrIndex(v.StringIndex)
	case FieldrefConst:
		return p.refString(v.ClassIndex, v.NameAndTypeIndex)
	case MethodrefConst:
		return p.refString(v.ClassIndex, v.NameAndTypeIndex)
	case InterfaceMethodrefConst:
		return p.refString(v.ClassIndex, v.NameAndTypeIndex)
	case NameAndTypeConst:
		return p.utf8OrIndex(v.NameIndex) + ":" + p.utf8OrIndex(v.DescriptorIndex)
	case MethodHandleConst:
		return fmt.Sprintf("kind=%d ref=#%d", v.RefKind, v.RefIndex)
	case MethodTypeConst:
		return p.utf8OrIndex(v.DescriptorIndex)
	case DynamicConst:
		return fmt.Sprintf("bootstrap=#%d name_and_type=#%d", v.BootstrapMethodAttrIndex, v.NameAndTypeIndex)
	case InvokeDynamicConst:
		return fmt.Sprintf("bootstrap=#%d name_and_type=#%d", v.BootstrapMethodAttrIndex, v.NameAndTypeIndex)
	case ModuleConst:
		return p.utf8OrIndex(v.NameIndex)
	case PackageConst:
		return p.utf8OrIndex(v.NameIndex)
	default:
		return ""
	}
}

func (p *ConstPool) utf8OrIndex(idx uint16) string {
	c := p.Entry(idx)
	if u, ok := c.(Utf8Const); ok {
		return u.Value
	}
	if cc, ok := c.(ClassConst); ok {
		return p.utf8OrIndex(cc.NameIndex)
	}
	return fmt.Sprintf("#%d", idx)
}

func (p *ConstPool) refString(classIdx, ntIdx uint16) string {
	var sb strings.Builder
	sb.WriteString(p.utf8OrIndex(classIdx))
	sb.WriteString(".")
	c := p.Entry(ntIdx)
	if nt, ok := c.(NameAndTypeConst); ok {
		sb.WriteString(p.utf8OrIndex(nt.NameIndex))
		sb.WriteString(":")
		sb.WriteString(p.utf8OrIndex(nt.DescriptorIndex))
	} else {
		sb.WriteString(fmt.Sprintf("#%d", ntIdx))
	}
	return sb.String()
}

// MarshalJSON encodes the pool as its resolved listing, which is far more
// useful to downstream consumers than raw index tuples.
func (p *ConstPool) MarshalJSON() ([]byte, error) {
	return marshalJSON(p.Describe())
}
