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

package dump

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvmkit/declass/classfile"
	"github.com/jvmkit/declass/internal/testutil"
	"github.com/jvmkit/declass/parser"
)

func parseSample(t *testing.T) *classfile.ClassFile {
	t.Helper()
	cf, err := parser.Parse(bytes.NewReader(testutil.SampleClassBytes()))
	require.NoError(t, err)
	return cf
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, parseSample(t), Options{}))

	want := `// source: Sample.java
// class version: 65.0 (Java 21)
public class Sample implements Sample$MyInterface {
  private java.lang.String stringField;
  public static final long ANSWER = 42;

  public long doSomething(int);
    Code: stack=2, locals=2, bytes=4
}
`
	assert.Equal(t, want, buf.String())
}

func TestDumpWithCode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, parseSample(t), Options{Code: true}))

	out := buf.String()
	assert.Contains(t, out, "0000: 1b 85 ad 00")
	assert.Contains(t, out, "LineNumberTable:")
	assert.Contains(t, out, "line 34: 0")
}

func TestDumpWithPool(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, parseSample(t), Options{Pool: true}))

	out := buf.String()
	assert.Contains(t, out, "Constant pool:")
	assert.Contains(t, out, "Utf8")
	assert.Contains(t, out, "doSomething")
	assert.Contains(t, out, "42l")
}

func TestMethodDecl(t *testing.T) {
	cases := []struct {
		name   string
		method classfile.MethodInfo
		want   string
	}{
		{
			name: "constructor",
			method: classfile.MethodInfo{
				AccessFlags: classfile.AccPublic,
				Name:        "<init>",
				Descriptor:  "()V",
			},
			want: "public Sample()",
		},
		{
			name: "static initializer",
			method: classfile.MethodInfo{
				AccessFlags: classfile.AccStatic,
				Name:        "<clinit>",
				Descriptor:  "()V",
			},
			want: "static {}",
		},
		{
			name: "main",
			method: classfile.MethodInfo{
				AccessFlags: classfile.AccPublic | classfile.AccStatic,
				Name:        "main",
				Descriptor:  "([Ljava/lang/String;)V",
			},
			want: "public static void main(java.lang.String[])",
		},
		{
			name: "undecodable descriptor keeps raw form",
			method: classfile.MethodInfo{
				Name:       "broken",
				Descriptor: "(X)V",
			},
			want: "broken(X)V",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, methodDecl(c.method, "Sample"))
		})
	}
}

func TestClassDeclInterface(t *testing.T) {
	pool := classfile.NewConstPool(8)
	pool.Add(classfile.Utf8Const{Value: "MyInterface"})      // #1
	pool.Add(classfile.ClassConst{NameIndex: 1})             // #2
	pool.Add(classfile.Utf8Const{Value: "java/lang/Object"}) // #3
	pool.Add(classfile.ClassConst{NameIndex: 3})             // #4
	pool.Add(classfile.Utf8Const{Value: "java/io/Closeable"}) // #5
	pool.Add(classfile.ClassConst{NameIndex: 5})             // #6

	cf := &classfile.ClassFile{
		ConstPool:   pool,
		AccessFlags: classfile.AccPublic | classfile.AccInterface | classfile.AccAbstract,
		ThisClass:   2,
		SuperClass:  4,
		Interfaces:  []uint16{6},
	}

	decl, err := classDecl(cf)
	require.NoError(t, err)
	assert.Equal(t, "public interface MyInterface extends java.io.Closeable", decl)
}

func TestSimpleName(t *testing.T) {
	assert.Equal(t, "Sample", simpleName("Sample"))
	assert.Equal(t, "Sample", simpleName("com/example/Sample"))
	assert.Equal(t, "Inner", simpleName("com/example/Outer$Inner"))
}
