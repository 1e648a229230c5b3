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

package parser

import "errors"

var (
	// ErrNoSuchFile reports a missing input file.
	ErrNoSuchFile = errors.New("no such file")

	// ErrBadMagic reports a stream that does not start with 0xCAFEBABE.
	ErrBadMagic = errors.New("invalid magic number")

	// ErrBadConstantTag reports an unknown constant pool tag byte.
	ErrBadConstantTag = errors.New("invalid constant pool tag")

	// ErrBadAttribute reports a structurally invalid attribute, e.g. a
	// ConstantValue whose length is not 2 or a duplicated ConstantValue
	// on one field.
	ErrBadAttribute = errors.New("invalid attribute")

	// ErrTruncated reports a stream that ended inside a structure.
	ErrTruncated = errors.New("unexpected end of class file")

	// ErrTooLarge reports a declared length exceeding MaxAttributeSize,
	// which on a well-formed file can only mean corruption.
	ErrTooLarge = errors.New("declared size exceeds maximum allowed")
)
