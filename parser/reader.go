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

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/jvmkit/declass/log"
)

// DefaultBufferSize is the read buffer size over the class file stream.
const DefaultBufferSize = 64 * 1024

// reader reads big-endian primitives off a class file stream and tracks the
// byte offset for error reporting. All multi-byte values in a class file are
// big-endian (JVMS 4.1).
type reader struct {
	r   *bufio.Reader
	off int64
}

func newReader(r io.Reader) *reader {
	return &reader{r: bufio.NewReaderSize(r, DefaultBufferSize)}
}

func (r *reader) offset() int64 {
	return r.off
}

func (r *reader) fill(buf []byte) error {
	n, err := io.ReadFull(r.r, buf)
	r.off += int64(n)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return fmt.Errorf("%w: need %d bytes at offset %d", ErrTruncated, len(buf), r.off)
		}
		return fmt.Errorf("read failed at offset %d: %w", r.off, err)
	}
	return nil
}

func (r *reader) u8() (uint8, error) {
	log.Trace("u8 at %d", r.off)
	var buf [1]byte
	if err := r.fill(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (r *reader) u16() (uint16, error) {
	log.Trace("u16 at %d", r.off)
	var buf [2]byte
	if err := r.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func (r *reader) u32() (uint32, error) {
	log.Trace("u32 at %d", r.off)
	var buf [4]byte
	if err := r.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func (r *reader) u64() (uint64, error) {
	log.Trace("u64 at %d", r.off)
	var buf [8]byte
	if err := r.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

func (r *reader) bytes(n uint32) ([]byte, error) {
	log.Trace("bytes(%d) at %d", n, r.off)
	buf := make([]byte, n)
	if err := r.fill(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
