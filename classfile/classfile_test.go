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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJavaVersion(t *testing.T) {
	cases := []struct {
		major uint16
		want  string
	}{
		{45, "Java 1.1"},
		{48, "Java 1.4"},
		{49, "Java 5"},
		{52, "Java 8"},
		{61, "Java 17"},
		{65, "Java 21"},
		{44, "unknown (major 44)"},
	}
	for _, c := range cases {
		cf := &ClassFile{MajorVersion: c.major}
		assert.Equal(t, c.want, cf.JavaVersion())
	}
}

func TestExternalName(t *testing.T) {
	assert.Equal(t, "java.lang.String", ExternalName("java/lang/String"))
	assert.Equal(t, "Sample", ExternalName("Sample"))
	assert.Equal(t, "com.example.Outer$Inner", ExternalName("com/example/Outer$Inner"))
}

func TestClassNames(t *testing.T) {
	pool := NewConstPool(8)
	pool.Add(Utf8Const{Value: "Sample"})           // #1
	pool.Add(ClassConst{NameIndex: 1})             // #2
	pool.Add(Utf8Const{Value: "java/lang/Object"}) // #3
	pool.Add(ClassConst{NameIndex: 3})             // #4
	pool.Add(Utf8Const{Value: "Sample$MyInterface"}) // #5
	pool.Add(ClassConst{NameIndex: 5})             // #6

	cf := &ClassFile{
		ConstPool:  pool,
		ThisClass:  2,
		SuperClass: 4,
		Interfaces: []uint16{6},
	}

	name, err := cf.ClassName()
	require.NoError(t, err)
	assert.Equal(t, "Sample", name)

	super, err := cf.SuperClassName()
	require.NoError(t, err)
	assert.Equal(t, "java/lang/Object", super)

	ifaces, err := cf.InterfaceNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Sample$MyInterface"}, ifaces)
}

func TestSuperClassNameOfObject(t *testing.T) {
	// java.lang.Object itself has super_class 0
	cf := &ClassFile{ConstPool: NewConstPool(1)}
	super, err := cf.SuperClassName()
	require.NoError(t, err)
	assert.Equal(t, "", super)
}

func TestSourceFile(t *testing.T) {
	cf := &ClassFile{}
	assert.Equal(t, "", cf.SourceFile())

	cf.Attributes = append(cf.Attributes, &SourceFileAttr{SourceFile: "Sample.java"})
	assert.Equal(t, "Sample.java", cf.SourceFile())
}

func TestModifiers(t *testing.T) {
	assert.Equal(t, []string{"public", "abstract"}, ClassModifiers(AccPublic|AccSuper|AccAbstract))
	assert.Equal(t, []string{"public", "static", "final"}, FieldModifiers(AccPublic|AccStatic|AccFinal))
	assert.Equal(t, []string{"private", "synchronized"}, MethodModifiers(AccPrivate|AccSynchronized))
	assert.Nil(t, ClassModifiers(0))
}

func TestFindAttr(t *testing.T) {
	attrs := []Attribute{
		&SourceFileAttr{SourceFile: "A.java"},
		&DeprecatedAttr{},
	}
	assert.Equal(t, attrs[1], FindAttr(attrs, AttrDeprecated))
	assert.Nil(t, FindAttr(attrs, AttrCode))
}
