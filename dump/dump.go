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

// Package dump renders a parsed class file as a javap-flavored listing.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/jvmkit/declass/classfile"
)

// Options control the verbosity of the listing.
type Options struct {
	// Pool also prints the resolved constant pool.
	Pool bool
	// Code also prints bytecode hex rows and line number tables.
	Code bool
}

const bytesPerRow = 16

// Dump writes the listing for cf to w.
func Dump(w io.Writer, cf *classfile.ClassFile, opts Options) error {
	if src := cf.SourceFile(); src != "" {
		fmt.Fprintf(w, "// source: %s\n", src)
	}
	fmt.Fprintf(w, "// class version: %d.%d (%s)\n", cf.MajorVersion, cf.MinorVersion, cf.JavaVersion())

	decl, err := classDecl(cf)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s {\n", decl)

	for _, field := range cf.Fields {
		writeField(w, field)
	}
	if len(cf.Fields) > 0 && len(cf.Methods) > 0 {
		fmt.Fprintln(w)
	}

	className, err := cf.ClassName()
	if err != nil {
		return err
	}
	for i, method := range cf.Methods {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeMethod(w, method, simpleName(className), opts)
	}
	fmt.Fprintln(w, "}")

	if opts.Pool {
		fmt.Fprintln(w, "Constant pool:")
		for _, desc := range cf.ConstPool.Describe() {
			fmt.Fprintf(w, "  #%-4d = %-18s %s\n", desc.Index, desc.Type, desc.Info)
		}
	}

	return nil
}

func classDecl(cf *classfile.ClassFile) (string, error) {
	name, err := cf.ClassName()
	if err != nil {
		return "", err
	}

	var kw string
	switch {
	case cf.AccessFlags&classfile.AccAnnotation != 0:
		kw = "@interface"
	case cf.AccessFlags&classfile.AccInterface != 0:
		kw = "interface"
	case cf.AccessFlags&classfile.AccEnum != 0:
		kw = "enum"
	default:
		kw = "class"
	}

	var parts []string
	if cf.AccessFlags&classfile.AccPublic != 0 {
		parts = append(parts, "public")
	}
	if cf.AccessFlags&classfile.AccFinal != 0 {
		parts = append(parts, "final")
	}
	if kw == "class" && cf.AccessFlags&classfile.AccAbstract != 0 {
		parts = append(parts, "abstract")
	}
	parts = append(parts, kw, classfile.ExternalName(name))

	super, err := cf.SuperClassName()
	if err != nil {
		return "", err
	}
	if super != "" && super != "java/lang/Object" && kw != "interface" && kw != "@interface" {
		parts = append(parts, "extends", classfile.ExternalName(super))
	}

	ifaces, err := cf.InterfaceNames()
	if err != nil {
		return "", err
	}
	if len(ifaces) > 0 {
		for i := range ifaces {
			ifaces[i] = classfile.ExternalName(ifaces[i])
		}
		link := "implements"
		if kw == "interface" || kw == "@interface" {
			link = "extends"
		}
		parts = append(parts, link, strings.Join(ifaces, ", "))
	}

	return strings.Join(parts, " "), nil
}

func writeField(w io.Writer, field classfile.FieldInfo) {
	typ, err := classfile.FieldType(field.Descriptor)
	if err != nil {
		typ = field.Descriptor
	}

	var sb strings.Builder
	sb.WriteString("  ")
	for _, mod := range classfile.FieldModifiers(field.AccessFlags) {
		sb.WriteString(mod)
		sb.WriteString(" ")
	}
	sb.WriteString(typ)
	sb.WriteString(" ")
	sb.WriteString(field.Name)
	if field.ConstantValue != "" {
		sb.WriteString(" = ")
		sb.WriteString(field.ConstantValue)
	}
	sb.WriteString(";")
	fmt.Fprintln(w, sb.String())
}

func writeMethod(w io.Writer, method classfile.MethodInfo, className string, opts Options) {
	fmt.Fprintf(w, "  %s;\n", methodDecl(method, className))

	if exc := classfile.FindAttr(method.Attributes, classfile.AttrExceptions); exc != nil {
		names := exc.(*classfile.ExceptionsAttr).Exceptions
		ext := make([]string, len(names))
		for i, n := range names {
			ext[i] = classfile.ExternalName(n)
		}
		fmt.Fprintf(w, "    throws %s\n", strings.Join(ext, ", "))
	}

	code := method.Code()
	if code == nil {
		return
	}
	fmt.Fprintf(w, "    Code: stack=%d, locals=%d, bytes=%d\n", code.MaxStack, code.MaxLocals, len(code.Code))

	if !opts.Code {
		return
	}
	for row := 0; row < len(code.Code); row += bytesPerRow {
		end := row + bytesPerRow
		if end > len(code.Code) {
			end = len(code.Code)
		}
		fmt.Fprintf(w, "      %04x: % x\n", row, code.Code[row:end])
	}
	if lnt := method.LineNumbers(); lnt != nil {
		fmt.Fprintln(w, "    LineNumberTable:")
		for _, e := range lnt.Entries {
			fmt.Fprintf(w, "      line %d: %d\n", e.LineNumber, e.StartPC)
		}
	}
	for _, h := range code.ExceptionTable {
		fmt.Fprintf(w, "    handler: [%d, %d) -> %d catch #%d\n", h.StartPC, h.EndPC, h.HandlerPC, h.CatchType)
	}
}

func methodDecl(method classfile.MethodInfo, className string) string {
	var sb strings.Builder
	for _, mod := range classfile.MethodModifiers(method.AccessFlags) {
		sb.WriteString(mod)
		sb.WriteString(" ")
	}

	params, ret, err := classfile.MethodSignature(method.Descriptor)
	if err != nil {
		// keep the raw descriptor visible rather than hiding the method
		sb.WriteString(method.Name)
		sb.WriteString(method.Descriptor)
		return sb.String()
	}

	switch method.Name {
	case "<init>":
		sb.WriteString(className)
	case "<clinit>":
		return "static {}"
	default:
		sb.WriteString(ret)
		sb.WriteString(" ")
		sb.WriteString(method.Name)
	}
	sb.WriteString("(")
	sb.WriteString(strings.Join(params, ", "))
	sb.WriteString(")")
	return sb.String()
}

func simpleName(binaryName string) string {
	if i := strings.LastIndexAny(binaryName, "/$"); i >= 0 {
		return binaryName[i+1:]
	}
	return binaryName
}
