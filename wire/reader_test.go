// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2023 The Thought Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBufferReaderIntegers ensures the integer reads consume little-endian
// values and advance the offset by the correct width.
func TestBufferReaderIntegers(t *testing.T) {
	r := NewBufferReader([]byte{
		0x2a,
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
	})

	assert.Equal(t, uint8(0x2a), r.ReadUint8())
	assert.Equal(t, uint16(0x1234), r.ReadUint16())
	assert.Equal(t, uint32(0x12345678), r.ReadUint32())
	assert.False(t, r.Exhausted())
	assert.NoError(t, r.Err())
	assert.Equal(t, 7, r.Offset())
	assert.Equal(t, 0, r.Remaining())
}

// TestBufferReaderBytes ensures ReadBytes returns exactly the requested
// window and fails without advancing when the buffer cannot satisfy it.
func TestBufferReaderBytes(t *testing.T) {
	buf := []byte{0xde, 0xad, 0xbe, 0xef}
	r := NewBufferReader(buf)

	got := r.ReadBytes(3)
	require.NotNil(t, got)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe}, got)
	assert.Equal(t, 3, r.Offset())

	// One byte remains, so a two byte read fails and leaves the offset at
	// the failure point.
	assert.Nil(t, r.ReadBytes(2))
	assert.True(t, r.Exhausted())
	assert.Equal(t, 3, r.Offset())
}

// TestBufferReaderZeroCopy ensures the returned slices alias the source
// buffer rather than copying it.
func TestBufferReaderZeroCopy(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03}
	r := NewBufferReader(buf)

	got := r.ReadBytes(3)
	require.Len(t, got, 3)
	buf[1] = 0xff
	assert.Equal(t, byte(0xff), got[1])
}

// TestBufferReaderLatchedFailure ensures the first failed read poisons every
// later read, that the latched error wraps ErrUnexpectedEOF, and that a zero
// length read after failure still reports nil.
func TestBufferReaderLatchedFailure(t *testing.T) {
	r := NewBufferReader([]byte{0x01})

	assert.Equal(t, uint8(0x01), r.ReadUint8())
	assert.Equal(t, uint8(0), r.ReadUint8())
	require.True(t, r.Exhausted())

	// All further reads fail regardless of remaining capacity.
	assert.Equal(t, uint16(0), r.ReadUint16())
	assert.Equal(t, uint32(0), r.ReadUint32())
	assert.Nil(t, r.ReadBytes(0))
	assert.True(t, errors.Is(r.Err(), ErrUnexpectedEOF))
}

// TestBufferReaderEmpty ensures reads from an empty buffer fail immediately.
func TestBufferReaderEmpty(t *testing.T) {
	r := NewBufferReader(nil)

	assert.Equal(t, uint8(0), r.ReadUint8())
	assert.True(t, r.Exhausted())
	assert.Equal(t, 0, r.Offset())
}

// TestBufferReaderZeroLengthRead ensures a zero length read succeeds even at
// the end of the buffer.
func TestBufferReaderZeroLengthRead(t *testing.T) {
	r := NewBufferReader(nil)

	got := r.ReadBytes(0)
	assert.Len(t, got, 0)
	assert.False(t, r.Exhausted())
}
