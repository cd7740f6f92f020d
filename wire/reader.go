// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2023 The Thought Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/pkg/errors"
)

// ErrUnexpectedEOF is returned by a BufferReader once any read has run past
// the end of the underlying buffer.  All subsequent reads fail with the same
// latched error.
var ErrUnexpectedEOF = errors.New("unexpected end of buffer")

// Reader provides the minimal single-pass byte stream capability the
// serialization code consumes.  Integers are read in little-endian byte
// order per the bitcoin wire protocol.
//
// Once a read fails, every later read returns the zero value and Exhausted
// reports true.  There is no seeking and implementations are not required to
// be safe for concurrent use.
type Reader interface {
	// ReadUint8 reads a single byte.
	ReadUint8() uint8

	// ReadUint16 reads a 16-bit little-endian unsigned integer.
	ReadUint16() uint16

	// ReadUint32 reads a 32-bit little-endian unsigned integer.
	ReadUint32() uint32

	// ReadBytes reads exactly n bytes.  It returns nil when fewer than n
	// bytes remain.
	ReadBytes(n uint64) []byte

	// Exhausted returns true once any previous read has failed.
	Exhausted() bool
}

// BufferReader implements Reader over a byte slice.  Reads are zero-copy:
// ReadBytes returns subslices of the underlying buffer, so callers that
// retain the result while mutating the source must copy.
type BufferReader struct {
	buf []byte
	off int
	err error
}

// NewBufferReader returns a reader positioned at the start of buf.
func NewBufferReader(buf []byte) *BufferReader {
	return &BufferReader{buf: buf}
}

// fail latches the first error with the position it occurred at.
func (r *BufferReader) fail(need uint64) {
	if r.err == nil {
		r.err = errors.Wrapf(ErrUnexpectedEOF, "%d bytes required at offset %d, "+
			"%d remaining", need, r.off, len(r.buf)-r.off)
	}
}

// ReadUint8 reads a single byte.
func (r *BufferReader) ReadUint8() uint8 {
	if r.err != nil || r.off >= len(r.buf) {
		r.fail(1)
		return 0
	}
	b := r.buf[r.off]
	r.off++
	return b
}

// ReadUint16 reads a 16-bit little-endian unsigned integer.
func (r *BufferReader) ReadUint16() uint16 {
	b := r.ReadBytes(2)
	if b == nil {
		return 0
	}
	return uint16(b[0]) | uint16(b[1])<<8
}

// ReadUint32 reads a 32-bit little-endian unsigned integer.
func (r *BufferReader) ReadUint32() uint32 {
	b := r.ReadBytes(4)
	if b == nil {
		return 0
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// ReadBytes reads exactly n bytes, returning nil once the buffer cannot
// satisfy the request.  The returned slice aliases the underlying buffer.
func (r *BufferReader) ReadBytes(n uint64) []byte {
	if r.err != nil {
		return nil
	}
	if n > uint64(len(r.buf)-r.off) {
		r.fail(n)
		return nil
	}
	b := r.buf[r.off : r.off+int(n) : r.off+int(n)]
	r.off += int(n)
	return b
}

// Exhausted returns true once any previous read has failed.
func (r *BufferReader) Exhausted() bool {
	return r.err != nil
}

// Err returns the latched read error, or nil when all reads so far have
// succeeded.
func (r *BufferReader) Err() error {
	return r.err
}

// Offset returns the number of bytes consumed so far.  After a failed read
// this is the position of the failure, which callers use to report where a
// stream went bad.
func (r *BufferReader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *BufferReader) Remaining() int {
	return len(r.buf) - r.off
}
