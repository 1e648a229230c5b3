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

// Package testutil assembles synthetic class file bytes for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
)

// Writer builds big-endian byte sequences the way a class file lays them
// out. All methods return the writer for chaining.
type Writer struct {
	buf bytes.Buffer
}

func (w *Writer) U8(v uint8) *Writer {
	w.buf.WriteByte(v)
	return w
}

func (w *Writer) U16(v uint16) *Writer {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
	return w
}

func (w *Writer) U32(v uint32) *Writer {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
	return w
}

func (w *Writer) U64(v uint64) *Writer {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
	return w
}

func (w *Writer) Bytes(b []byte) *Writer {
	w.buf.Write(b)
	return w
}

// Utf8 appends a CONSTANT_Utf8_info pool entry.
func (w *Writer) Utf8(s string) *Writer {
	w.U8(1).U16(uint16(len(s)))
	w.buf.WriteString(s)
	return w
}

func (w *Writer) Build() []byte {
	return w.buf.Bytes()
}

// SampleClassBytes returns a hand-assembled class file equivalent to:
//
//	public class Sample extends java.lang.Object implements Sample$MyInterface {
//	    private java.lang.String stringField;
//	    public static final long ANSWER = 42;
//	    public long doSomething(int);  // with Code + LineNumberTable
//	}
//
// compiled for Java 21 (major 65), with a SourceFile attribute.
//
// Constant pool layout (count 20; the Long at #13 also consumes slot #14):
//
//	#1  Utf8  "Sample"              #2  Class #1
//	#3  Utf8  "java/lang/Object"    #4  Class #3
//	#5  Utf8  "stringField"         #6  Utf8  "Ljava/lang/String;"
//	#7  Utf8  "doSomething"         #8  Utf8  "(I)J"
//	#9  Utf8  "Code"                #10 Utf8  "LineNumberTable"
//	#11 Utf8  "SourceFile"          #12 Utf8  "Sample.java"
//	#13 Long  42                    #15 Utf8  "ConstantValue"
//	#16 Utf8  "ANSWER"              #17 Utf8  "J"
//	#18 Utf8  "Sample$MyInterface"  #19 Class #18
func SampleClassBytes() []byte {
	w := &Writer{}

	w.U32(0xCAFEBABE)
	w.U16(0)  // minor
	w.U16(65) // major, Java 21

	w.U16(20) // constant_pool_count
	w.Utf8("Sample")
	w.U8(7).U16(1) // Class #1
	w.Utf8("java/lang/Object")
	w.U8(7).U16(3) // Class #3
	w.Utf8("stringField")
	w.Utf8("Ljava/lang/String;")
	w.Utf8("doSomething")
	w.Utf8("(I)J")
	w.Utf8("Code")
	w.Utf8("LineNumberTable")
	w.Utf8("SourceFile")
	w.Utf8("Sample.java")
	w.U8(5).U64(42) // Long 42, two slots
	w.Utf8("ConstantValue")
	w.Utf8("ANSWER")
	w.Utf8("J")
	w.Utf8("Sample$MyInterface")
	w.U8(7).U16(18) // Class #18

	w.U16(0x0021) // access_flags: public super
	w.U16(2)      // this_class
	w.U16(4)      // super_class

	w.U16(1)  // interfaces_count
	w.U16(19) // Sample$MyInterface

	w.U16(2) // fields_count

	// private java.lang.String stringField;
	w.U16(0x0002).U16(5).U16(6).U16(0)

	// public static final long ANSWER = 42;
	w.U16(0x0019).U16(16).U16(17).U16(1)
	w.U16(15).U32(2).U16(13) // ConstantValue -> Long #13

	w.U16(1) // methods_count

	// public long doSomething(int), 4 bytes of code: iload_1 i2l lreturn nop
	code := []byte{0x1b, 0x85, 0xad, 0x00}
	w.U16(0x0001).U16(7).U16(8).U16(1)
	w.U16(9)                        // Code
	w.U32(uint32(12 + len(code) + 12)) // fixed header + code + nested LineNumberTable
	w.U16(2)                        // max_stack
	w.U16(2)                        // max_locals
	w.U32(uint32(len(code)))
	w.Bytes(code)
	w.U16(0) // exception_table_length
	w.U16(1) // attributes_count
	w.U16(10).U32(6) // LineNumberTable
	w.U16(1)         // table length
	w.U16(0).U16(34) // start_pc 0 -> line 34

	w.U16(1)         // class attributes_count
	w.U16(11).U32(2) // SourceFile
	w.U16(12)        // "Sample.java"

	return w.Build()
}
