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

// Package parser reads the binary class file format into the classfile
// model.
package parser

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jvmkit/declass/classfile"
	"github.com/jvmkit/declass/log"
)

// MaxAttributeSize caps any single declared attribute or code length (64MB).
// The format allows up to 4GB; nothing legitimate comes close.
const MaxAttributeSize = 64 * 1024 * 1024

// ParseFile parses the class file at path.
func ParseFile(path string) (*classfile.ClassFile, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchFile, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads one class file structure from r.
func Parse(r io.Reader) (*classfile.ClassFile, error) {
	rd := newReader(r)

	magic, err := rd.u32()
	if err != nil {
		return nil, err
	}
	if magic != classfile.Magic {
		return nil, fmt.Errorf("%w: 0x%X", ErrBadMagic, magic)
	}

	cf := classfile.NewClassFile(magic)
	if cf.MinorVersion, err = rd.u16(); err != nil {
		return nil, err
	}
	if cf.MajorVersion, err = rd.u16(); err != nil {
		return nil, err
	}
	log.Debug("class version: %d.%d", cf.MajorVersion, cf.MinorVersion)

	poolCount, err := rd.u16()
	if err != nil {
		return nil, err
	}
	log.Debug("constant pool count: %d", poolCount)

	// The pool holds poolCount-1 entries at indices 1..poolCount-1, and a
	// Long or Double entry takes up two indices (JVMS 4.4.5).
	pool := classfile.NewConstPool(poolCount)
	for pool.Size() < int(poolCount) {
		c, err := readConstant(rd)
		if err != nil {
			return nil, err
		}
		pool.Add(c)
	}
	cf.ConstPool = pool
	log.Debug("read %d constant pool slots", pool.Size())

	if cf.AccessFlags, err = rd.u16(); err != nil {
		return nil, err
	}
	log.Debug("access_flags: %#x", cf.AccessFlags)

	if cf.ThisClass, err = rd.u16(); err != nil {
		return nil, err
	}
	if cf.SuperClass, err = rd.u16(); err != nil {
		return nil, err
	}
	log.Debug("this_class idx: %d, super_class idx: %d", cf.ThisClass, cf.SuperClass)

	ifaceCount, err := rd.u16()
	if err != nil {
		return nil, err
	}
	log.Debug("interfaces_count: %d", ifaceCount)
	for i := 0; i < int(ifaceCount); i++ {
		idx, err := rd.u16()
		if err != nil {
			return nil, err
		}
		cf.Interfaces = append(cf.Interfaces, idx)
	}

	fieldCount, err := rd.u16()
	if err != nil {
		return nil, err
	}
	log.Debug("fields_count: %d", fieldCount)
	for i := 0; i < int(fieldCount); i++ {
		field, err := readField(rd, pool)
		if err != nil {
			return nil, err
		}
		log.Debug("adding field %s %s", field.Descriptor, field.Name)
		cf.Fields = append(cf.Fields, field)
	}

	methodCount, err := rd.u16()
	if err != nil {
		return nil, err
	}
	log.Debug("methods_count: %d", methodCount)
	for i := 0; i < int(methodCount); i++ {
		method, err := readMethod(rd, pool)
		if err != nil {
			return nil, err
		}
		log.Debug("adding method %s%s", method.Name, method.Descriptor)
		cf.Methods = append(cf.Methods, method)
	}

	attrCount, err := rd.u16()
	if err != nil {
		return nil, err
	}
	for i := 0; i < int(attrCount); i++ {
		attr, err := readAttribute(rd, pool)
		if err != nil {
			return nil, err
		}
		cf.Attributes = append(cf.Attributes, attr)
	}

	return cf, nil
}

func readConstant(rd *reader) (classfile.Constant, error) {
	pos := rd.offset()
	tag, err := rd.u8()
	if err != nil {
		return nil, err
	}

	switch tag {
	case classfile.TagUtf8:
		n, err := rd.u16()
		if err != nil {
			return nil, err
		}
		buf, err := rd.bytes(uint32(n))
		if err != nil {
			return nil, err
		}
		return classfile.Utf8Const{Value: string(buf)}, nil

	case classfile.TagInteger:
		v, err := rd.u32()
		if err != nil {
			return nil, err
		}
		return classfile.IntegerConst{Value: int32(v)}, nil

	case classfile.TagFloat:
		v, err := rd.u32()
		if err != nil {
			return nil, err
		}
		return classfile.FloatConst{Value: math.Float32frombits(v)}, nil

	case classfile.TagLong:
		v, err := rd.u64()
		if err != nil {
			return nil, err
		}
		return classfile.LongConst{Value: int64(v)}, nil

	case classfile.TagDouble:
		v, err := rd.u64()
		if err != nil {
			return nil, err
		}
		return classfile.DoubleConst{Value: math.Float64frombits(v)}, nil

	case classfile.TagClass:
		idx, err := rd.u16()
		if err != nil {
			return nil, err
		}
		return classfile.ClassConst{NameIndex: idx}, nil

	case classfile.TagString:
		idx, err := rd.u16()
		if err != nil {
			return nil, err
		}
		return classfile.StringConst{StringIndex: idx}, nil

	case classfile.TagFieldref:
		a, b, err := readU16Pair(rd)
		if err != nil {
			return nil, err
		}
		return classfile.FieldrefConst{ClassIndex: a, NameAndTypeIndex: b}, nil

	case classfile.TagMethodref:
		a, b, err := readU16Pair(rd)
		if err != nil {
			return nil, err
		}
		return classfile.MethodrefConst{ClassIndex: a, NameAndTypeIndex: b}, nil

	case classfile.TagInterfaceMethodref:
		a, b, err := readU16Pair(rd)
		if err != nil {
			return nil, err
		}
		return classfile.InterfaceMethodrefConst{ClassIndex: a, NameAndTypeIndex: b}, nil

	case classfile.TagNameAndType:
		a, b, err := readU16Pair(rd)
		if err != nil {
			return nil, err
		}
		return classfile.NameAndTypeConst{NameIndex: a, DescriptorIndex: b}, nil

	case classfile.TagMethodHandle:
		kind, err := rd.u8()
		if err != nil {
			return nil, err
		}
		idx, err := rd.u16()
		if err != nil {
			return nil, err
		}
		return classfile.MethodHandleConst{RefKind: kind, RefIndex: idx}, nil

	case classfile.TagMethodType:
		idx, err := rd.u16()
		if err != nil {
			return nil, err
		}
		return classfile.MethodTypeConst{DescriptorIndex: idx}, nil

	case classfile.TagDynamic:
		a, b, err := readU16Pair(rd)
		if err != nil {
			return nil, err
		}
		return classfile.DynamicConst{BootstrapMethodAttrIndex: a, NameAndTypeIndex: b}, nil

	case classfile.TagInvokeDynamic:
		a, b, err := readU16Pair(rd)
		if err != nil {
			return nil, err
		}
		return classfile.InvokeDynamicConst{BootstrapMethodAttrIndex: a, NameAndTypeIndex: b}, nil

	case classfile.TagModule:
		idx, err := rd.u16()
		if err != nil {
			return nil, err
		}
		return classfile.ModuleConst{NameIndex: idx}, nil

	case classfile.TagPackage:
		idx, err := rd.u16()
		if err != nil {
			return nil, err
		}
		return classfile.PackageConst{NameIndex: idx}, nil

	default:
		return nil, fmt.Errorf("%w: %d at offset %d", ErrBadConstantTag, tag, pos)
	}
}

func readU16Pair(rd *reader) (uint16, uint16, error) {
	a, err := rd.u16()
	if err != nil {
		return 0, 0, err
	}
	b, err := rd.u16()
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func readField(rd *reader, pool *classfile.ConstPool) (classfile.FieldInfo, error) {
	var field classfile.FieldInfo

	flags, err := rd.u16()
	if err != nil {
		return field, err
	}
	nameIdx, err := rd.u16()
	if err != nil {
		return field, err
	}
	descIdx, err := rd.u16()
	if err != nil {
		return field, err
	}
	attrCount, err := rd.u16()
	if err != nil {
		return field, err
	}

	field.AccessFlags = flags
	if field.Name, err = pool.Utf8(nameIdx); err != nil {
		return field, err
	}
	if field.Descriptor, err = pool.Utf8(descIdx); err != nil {
		return field, err
	}

	for i := 0; i < int(attrCount); i++ {
		attr, err := readAttribute(rd, pool)
		if err != nil {
			return field, err
		}
		if cv, ok := attr.(*classfile.ConstantValueAttr); ok {
			if field.ConstantValue != "" {
				return field, fmt.Errorf("%w: multiple ConstantValue attributes on field %s", ErrBadAttribute, field.Name)
			}
			field.ConstantValue = cv.Value
		}
		field.Attributes = append(field.Attributes, attr)
	}

	return field, nil
}

func readMethod(rd *reader, pool *classfile.ConstPool) (classfile.MethodInfo, error) {
	var method classfile.MethodInfo

	flags, err := rd.u16()
	if err != nil {
		return method, err
	}
	nameIdx, err := rd.u16()
	if err != nil {
		return method, err
	}
	descIdx, err := rd.u16()
	if err != nil {
		return method, err
	}
	attrCount, err := rd.u16()
	if err != nil {
		return method, err
	}

	method.AccessFlags = flags
	if method.Name, err = pool.Utf8(nameIdx); err != nil {
		return method, err
	}
	if method.Descriptor, err = pool.Utf8(descIdx); err != nil {
		return method, err
	}

	for i := 0; i < int(attrCount); i++ {
		attr, err := readAttribute(rd, pool)
		if err != nil {
			return method, err
		}
		method.Attributes = append(method.Attributes, attr)
	}

	return method, nil
}

func readAttribute(rd *reader, pool *classfile.ConstPool) (classfile.Attribute, error) {
	nameIdx, err := rd.u16()
	if err != nil {
		return nil, err
	}
	length, err := rd.u32()
	if err != nil {
		return nil, err
	}
	if length > MaxAttributeSize {
		return nil, fmt.Errorf("%w: attribute length %d", ErrTooLarge, length)
	}

	name, err := pool.Utf8(nameIdx)
	if err != nil {
		return nil, err
	}
	log.Debug("attribute %s, length %d", name, length)

	switch name {
	case classfile.AttrConstantValue:
		if length != 2 {
			return nil, fmt.Errorf("%w: ConstantValue length %d, want 2", ErrBadAttribute, length)
		}
		idx, err := rd.u16()
		if err != nil {
			return nil, err
		}
		value, err := pool.Literal(idx)
		if err != nil {
			return nil, err
		}
		return &classfile.ConstantValueAttr{ValueIndex: idx, Value: value}, nil

	case classfile.AttrCode:
		return readCode(rd, pool)

	case classfile.AttrLineNumberTable:
		n, err := rd.u16()
		if err != nil {
			return nil, err
		}
		attr := &classfile.LineNumberTableAttr{Entries: make([]classfile.LineNumberEntry, 0, n)}
		for i := 0; i < int(n); i++ {
			startPC, line, err := readU16Pair(rd)
			if err != nil {
				return nil, err
			}
			attr.Entries = append(attr.Entries, classfile.LineNumberEntry{StartPC: startPC, LineNumber: line})
		}
		return attr, nil

	case classfile.AttrSourceFile:
		idx, err := rd.u16()
		if err != nil {
			return nil, err
		}
		src, err := pool.Utf8(idx)
		if err != nil {
			return nil, err
		}
		return &classfile.SourceFileAttr{SourceFile: src}, nil

	case classfile.AttrMethodParameters:
		n, err := rd.u8()
		if err != nil {
			return nil, err
		}
		attr := &classfile.MethodParametersAttr{Parameters: make([]classfile.MethodParameter, 0, n)}
		for i := 0; i < int(n); i++ {
			nameIdx, flags, err := readU16Pair(rd)
			if err != nil {
				return nil, err
			}
			var pname string
			if nameIdx != 0 {
				if pname, err = pool.Utf8(nameIdx); err != nil {
					return nil, err
				}
			}
			attr.Parameters = append(attr.Parameters, classfile.MethodParameter{Name: pname, AccessFlags: flags})
		}
		return attr, nil

	case classfile.AttrInnerClasses:
		n, err := rd.u16()
		if err != nil {
			return nil, err
		}
		attr := &classfile.InnerClassesAttr{Classes: make([]classfile.InnerClass, 0, n)}
		for i := 0; i < int(n); i++ {
			var ic classfile.InnerClass
			if ic.InnerClassInfoIndex, err = rd.u16(); err != nil {
				return nil, err
			}
			if ic.OuterClassInfoIndex, err = rd.u16(); err != nil {
				return nil, err
			}
			if ic.InnerNameIndex, err = rd.u16(); err != nil {
				return nil, err
			}
			if ic.InnerClassAccessFlag, err = rd.u16(); err != nil {
				return nil, err
			}
			attr.Classes = append(attr.Classes, ic)
		}
		return attr, nil

	case classfile.AttrExceptions:
		n, err := rd.u16()
		if err != nil {
			return nil, err
		}
		attr := &classfile.ExceptionsAttr{Exceptions: make([]string, 0, n)}
		for i := 0; i < int(n); i++ {
			idx, err := rd.u16()
			if err != nil {
				return nil, err
			}
			name, err := pool.ClassName(idx)
			if err != nil {
				return nil, err
			}
			attr.Exceptions = append(attr.Exceptions, name)
		}
		return attr, nil

	case classfile.AttrSignature:
		idx, err := rd.u16()
		if err != nil {
			return nil, err
		}
		sig, err := pool.Utf8(idx)
		if err != nil {
			return nil, err
		}
		return &classfile.SignatureAttr{Signature: sig}, nil

	case classfile.AttrDeprecated:
		return &classfile.DeprecatedAttr{}, nil

	case classfile.AttrSynthetic:
		return &classfile.SyntheticAttr{}, nil

	default:
		// Retain undecoded attributes (BootstrapMethods, StackMapTable,
		// NestMembers, ...) with their raw bytes instead of failing.
		info, err := rd.bytes(length)
		if err != nil {
			return nil, err
		}
		return &classfile.RawAttr{Name: name, Info: info}, nil
	}
}

func readCode(rd *reader, pool *classfile.ConstPool) (*classfile.CodeAttr, error) {
	attr := &classfile.CodeAttr{}

	var err error
	if attr.MaxStack, err = rd.u16(); err != nil {
		return nil, err
	}
	if attr.MaxLocals, err = rd.u16(); err != nil {
		return nil, err
	}

	codeLen, err := rd.u32()
	if err != nil {
		return nil, err
	}
	if codeLen > MaxAttributeSize {
		return nil, fmt.Errorf("%w: code length %d", ErrTooLarge, codeLen)
	}
	if attr.Code, err = rd.bytes(codeLen); err != nil {
		return nil, err
	}

	excCount, err := rd.u16()
	if err != nil {
		return nil, err
	}
	for i := 0; i < int(excCount); i++ {
		var h classfile.ExceptionHandler
		if h.StartPC, err = rd.u16(); err != nil {
			return nil, err
		}
		if h.EndPC, err = rd.u16(); err != nil {
			return nil, err
		}
		if h.HandlerPC, err = rd.u16(); err != nil {
			return nil, err
		}
		if h.CatchType, err = rd.u16(); err != nil {
			return nil, err
		}
		attr.ExceptionTable = append(attr.ExceptionTable, h)
	}

	attrCount, err := rd.u16()
	if err != nil {
		return nil, err
	}
	for i := 0; i < int(attrCount); i++ {
		nested, err := readAttribute(rd, pool)
		if err != nil {
			return nil, err
		}
		attr.Attributes = append(attr.Attributes, nested)
	}

	return attr, nil
}
