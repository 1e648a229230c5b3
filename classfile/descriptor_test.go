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

func TestFieldType(t *testing.T) {
	cases := []struct {
		desc string
		want string
	}{
		{"I", "int"},
		{"J", "long"},
		{"Z", "boolean"},
		{"Ljava/lang/String;", "java.lang.String"},
		{"Ljava/util/Map;", "java.util.Map"},
		{"[I", "int[]"},
		{"[[B", "byte[][]"},
		{"[Ljava/lang/Object;", "java.lang.Object[]"},
	}
	for _, c := range cases {
		got, err := FieldType(c.desc)
		require.NoError(t, err, c.desc)
		assert.Equal(t, c.want, got, c.desc)
	}
}

func TestFieldTypeErrors(t *testing.T) {
	for _, desc := range []string{"", "X", "L", "Lfoo", "II", "Ljava/lang/String;I"} {
		_, err := FieldType(desc)
		assert.ErrorIs(t, err, ErrBadDescriptor, desc)
	}
}

func TestMethodSignature(t *testing.T) {
	cases := []struct {
		desc   string
		params []string
		ret    string
	}{
		{"()V", nil, "void"},
		{"(I)J", []string{"int"}, "long"},
		{"([Ljava/lang/String;)V", []string{"java.lang.String[]"}, "void"},
		{"(IJLjava/lang/Object;)Ljava/util/Map;",
			[]string{"int", "long", "java.lang.Object"}, "java.util.Map"},
	}
	for _, c := range cases {
		params, ret, err := MethodSignature(c.desc)
		require.NoError(t, err, c.desc)
		assert.Equal(t, c.params, params, c.desc)
		assert.Equal(t, c.ret, ret, c.desc)
	}
}

func TestMethodSignatureErrors(t *testing.T) {
	for _, desc := range []string{"", "I", "(I", "(I)", "(I)JX", "(X)V"} {
		_, _, err := MethodSignature(desc)
		assert.ErrorIs(t, err, ErrBadDescriptor, desc)
	}
}
