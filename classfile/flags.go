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

// Access and property flags, JVMS 4.1/4.5/4.6. Some bit values are shared
// between contexts (0x0020 is ACC_SUPER on classes but ACC_SYNCHRONIZED on
// methods), so decoding is context specific.
const (
	AccPublic       uint16 = 0x0001
	AccPrivate      uint16 = 0x0002
	AccProtected    uint16 = 0x0004
	AccStatic       uint16 = 0x0008
	AccFinal        uint16 = 0x0010
	AccSuper        uint16 = 0x0020
	AccSynchronized uint16 = 0x0020
	AccVolatile     uint16 = 0x0040
	AccBridge       uint16 = 0x0040
	AccTransient    uint16 = 0x0080
	AccVarargs      uint16 = 0x0080
	AccNative       uint16 = 0x0100
	AccInterface    uint16 = 0x0200
	AccAbstract     uint16 = 0x0400
	AccStrict       uint16 = 0x0800
	AccSynthetic    uint16 = 0x1000
	AccAnnotation   uint16 = 0x2000
	AccEnum         uint16 = 0x4000
	AccModule       uint16 = 0x8000
)

type flagName struct {
	flag uint16
	name string
}

var classFlagNames = []flagName{
	{AccPublic, "public"},
	{AccFinal, "final"},
	{AccAbstract, "abstract"},
	{AccInterface, "interface"},
	{AccAnnotation, "@interface"},
	{AccEnum, "enum"},
}

var fieldFlagNames = []flagName{
	{AccPublic, "public"},
	{AccPrivate, "private"},
	{AccProtected, "protected"},
	{AccStatic, "static"},
	{AccFinal, "final"},
	{AccVolatile, "volatile"},
	{AccTransient, "transient"},
	{AccEnum, "enum"},
}

var methodFlagNames = []flagName{
	{AccPublic, "public"},
	{AccPrivate, "private"},
	{AccProtected, "protected"},
	{AccStatic, "static"},
	{AccFinal, "final"},
	{AccSynchronized, "synchronized"},
	{AccNative, "native"},
	{AccAbstract, "abstract"},
	{AccStrict, "strictfp"},
}

func decodeFlags(flags uint16, names []flagName) []string {
	var ret []string
	for _, fn := range names {
		if flags&fn.flag != 0 {
			ret = append(ret, fn.name)
		}
	}
	return ret
}

// ClassModifiers decodes class access flags into Java modifier keywords.
// ACC_SUPER and ACC_SYNTHETIC carry no source-level keyword and are omitted.
func ClassModifiers(flags uint16) []string {
	return decodeFlags(flags, classFlagNames)
}

// FieldModifiers decodes field access flags into Java modifier keywords.
func FieldModifiers(flags uint16) []string {
	return decodeFlags(flags, fieldFlagNames)
}

// MethodModifiers decodes method access flags into Java modifier keywords.
func MethodModifiers(flags uint16) []string {
	return decodeFlags(flags, methodFlagNames)
}
