// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2023 The Thought Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// Writer provides the minimal single-pass byte sink capability the
// serialization code consumes.  Integers are written in little-endian byte
// order per the bitcoin wire protocol.  Writers are assumed infallible at
// this layer; a sink with real failure modes belongs behind a buffered
// implementation.
type Writer interface {
	// WriteUint8 writes a single byte.
	WriteUint8(v uint8)

	// WriteUint16 writes a 16-bit little-endian unsigned integer.
	WriteUint16(v uint16)

	// WriteUint32 writes a 32-bit little-endian unsigned integer.
	WriteUint32(v uint32)

	// WriteBytes writes b verbatim.
	WriteBytes(b []byte)
}

// BufferWriter implements Writer by accumulating into a byte slice.
type BufferWriter struct {
	buf []byte
}

// NewBufferWriter returns an empty writer.
func NewBufferWriter() *BufferWriter {
	return &BufferWriter{}
}

// NewBufferWriterSize returns an empty writer with capacity preallocated for
// callers that know the serialized size up front.
func NewBufferWriterSize(size uint64) *BufferWriter {
	return &BufferWriter{buf: make([]byte, 0, size)}
}

// WriteUint8 writes a single byte.
func (w *BufferWriter) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteUint16 writes a 16-bit little-endian unsigned integer.
func (w *BufferWriter) WriteUint16(v uint16) {
	w.buf = append(w.buf, byte(v), byte(v>>8))
}

// WriteUint32 writes a 32-bit little-endian unsigned integer.
func (w *BufferWriter) WriteUint32(v uint32) {
	w.buf = append(w.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// WriteBytes writes b verbatim.
func (w *BufferWriter) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// Bytes returns the accumulated bytes.  The slice is owned by the writer
// until the writer is discarded.
func (w *BufferWriter) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *BufferWriter) Len() int {
	return len(w.buf)
}
