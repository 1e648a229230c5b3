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

var ErrBadDescriptor = errors.New("malformed descriptor")

// FieldType decodes a field descriptor (JVMS 4.3.2) into a Java source
// type name, e.g. "Ljava/util/Map;" => "java.util.Map", "[I" => "int[]".
func FieldType(desc string) (string, error) {
	typ, rest, err := parseType(desc)
	if err != nil {
		return "", err
	}
	if rest != "" {
		return "", fmt.Errorf("%w: trailing %q in %q", ErrBadDescriptor, rest, desc)
	}
	return typ, nil
}

// MethodSignature decodes a method descriptor (JVMS 4.3.3) into parameter
// type names and the return type name.
func MethodSignature(desc string) (params []string, ret string, err error) {
	if len(desc) == 0 || desc[0] != '(' {
		return nil, "", fmt.Errorf("%w: %q", ErrBadDescriptor, desc)
	}
	rest := desc[1:]
	for len(rest) > 0 && rest[0] != ')' {
		var typ string
		typ, rest, err = parseType(rest)
		if err != nil {
			return nil, "", err
		}
		params = append(params, typ)
	}
	if len(rest) == 0 {
		return nil, "", fmt.Errorf("%w: unterminated parameter list in %q", ErrBadDescriptor, desc)
	}
	rest = rest[1:] // ')'
	if rest == "V" {
		return params, "void", nil
	}
	ret, rest, err = parseType(rest)
	if err != nil {
		return nil, "", err
	}
	if rest != "" {
		return nil, "", fmt.Errorf("%w: trailing %q in %q", ErrBadDescriptor, rest, desc)
	}
	return params, ret, nil
}

func parseType(desc string) (typ string, rest string, err error) {
	if len(desc) == 0 {
		return "", "", fmt.Errorf("%w: empty type", ErrBadDescriptor)
	}
	switch desc[0] {
	case 'B':
		return "byte", desc[1:], nil
	case 'C':
		return "char", desc[1:], nil
	case 'D':
		return "double", desc[1:], nil
	case 'F':
		return "float", desc[1:], nil
	case 'I':
		return "int", desc[1:], nil
	case 'J':
		return "long", desc[1:], nil
	case 'S':
		return "short", desc[1:], nil
	case 'Z':
		return "boolean", desc[1:], nil
	case 'L':
		end := strings.IndexByte(desc, ';')
		if end < 0 {
			return "", "", fmt.Errorf("%w: unterminated class type %q", ErrBadDescriptor, desc)
		}
		return ExternalName(desc[1:end]), desc[end+1:], nil
	case '[':
		elem, rest, err := parseType(desc[1:])
		if err != nil {
			return "", "", err
		}
		return elem + "[]", rest, nil
	default:
		return "", "", fmt.Errorf("%w: unknown type prefix %q", ErrBadDescriptor, desc)
	}
}
