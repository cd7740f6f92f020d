// Copyright (c) 2013-2022 The btcsuite developers
// Copyright (c) 2023 The Thought Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/thoughtnetwork/thoughtd/wire"
)

const (
	// MaxScriptElementSize is the maximum number of bytes a single push may
	// place on the stack in a standard script.  The codec does not enforce
	// this ceiling; IsOversized reports it for the caller.
	MaxScriptElementSize = 520

	// MaxScriptSize is the maximum allowed length of a raw script.  It is
	// the default ceiling applied to 4-byte size prefixes during decoding
	// since no well-formed script can carry a larger push.
	MaxScriptSize = 10000

	// MaxOpsPerScript is the maximum number of counted (non-push)
	// operations a script may contain.
	MaxOpsPerScript = 201
)

// Operation models a single element of a script: either a bare opcode, or a
// data push together with its payload.  The zero value is the invalid
// sentinel; a usable operation is obtained from one of the constructors or
// by decoding.
//
// An operation is a plain value.  Assignment shares the payload slice with
// the source, so callers that mutate a payload after handing it off must
// copy first.  The payload is never mutated by this package.
type Operation struct {
	code  byte
	data  []byte
	valid bool
}

// NewOperation returns a valid operation carrying the passed opcode and no
// payload.
func NewOperation(op byte) Operation {
	return Operation{code: op, valid: true}
}

// NewDataPush returns an operation pushing the passed payload.
//
// With minimal set, the unique smallest encoding is chosen: the empty
// payload and the single-byte payloads 0x81 and 0x01 through 0x10 become
// numeric push opcodes with the payload cleared, and every other payload
// gets the smallest workable length prefix.  This form always succeeds.
//
// Without minimal, the opcode is chosen from the payload length alone, which
// fails only when the length cannot be expressed by a 4-byte prefix.
//
// The payload slice is retained, not copied.
func NewDataPush(data []byte, minimal bool) (Operation, error) {
	if minimal {
		code := OpcodeFromData(data)
		if IsNumericOpcode(code) {
			// The numeric meaning is carried by the opcode alone.
			data = nil
		}
		return Operation{code: code, data: data, valid: true}, nil
	}

	if uint64(len(data)) > math.MaxUint32 {
		return Operation{}, scriptError(ErrPushSizeOverflow,
			fmt.Sprintf("push of %d bytes cannot be expressed by a 4-byte "+
				"size prefix", len(data)))
	}
	return Operation{
		code:  OpcodeFromSize(uint64(len(data))),
		data:  data,
		valid: true,
	}, nil
}

// OpcodeFromSize returns the minimal push opcode for a payload of the passed
// length: the direct-length opcodes through 75 bytes, then the 1, 2, and
// 4-byte size prefixes.  Lengths above 2^32-1 return OP_INVALIDOPCODE.
func OpcodeFromSize(size uint64) byte {
	switch {
	case size <= 75:
		return byte(size)
	case size <= math.MaxUint8:
		return OP_PUSHDATA1
	case size <= math.MaxUint16:
		return OP_PUSHDATA2
	case size <= math.MaxUint32:
		return OP_PUSHDATA4
	default:
		return OP_INVALIDOPCODE
	}
}

// OpcodeFromData returns the minimal push opcode for the passed payload per
// the consensus minimal-push rule.  When a numeric opcode is returned the
// corresponding operation must carry no payload; NewDataPush handles that
// reset for callers.
func OpcodeFromData(data []byte) byte {
	if len(data) == 1 {
		switch b := data[0]; {
		case b == 0x81:
			return OP_1NEGATE
		case b >= 1 && b <= 16:
			return OpcodeFromPositive(b)
		}
	}
	return OpcodeFromSize(uint64(len(data)))
}

// Code returns the opcode.  An operation that has not been populated, or
// whose last decode failed, reports the OP_INVALIDOPCODE sentinel.
func (op *Operation) Code() byte {
	if !op.valid {
		return OP_INVALIDOPCODE
	}
	return op.code
}

// Data returns the push payload, empty for non-push opcodes and for numeric
// pushes.  The returned slice is owned by the operation.
func (op *Operation) Data() []byte {
	return op.data
}

// IsValid returns whether or not the operation was populated successfully.
func (op *Operation) IsValid() bool {
	return op.valid
}

// Equal returns whether or not the two operations carry the same opcode and
// payload.  Validity is a derived property and is not consulted beyond its
// effect on the reported opcode.
func (op *Operation) Equal(other *Operation) bool {
	return op.Code() == other.Code() && bytes.Equal(op.data, other.data)
}

// reset returns the operation to the invalid sentinel state.  Decoders must
// reset before returning a failure so stale partial fields cannot leak.
func (op *Operation) reset() {
	op.code = OP_INVALIDOPCODE
	op.data = nil
	op.valid = false
}

// fail resets the operation and hands the error back to the caller.
func (op *Operation) fail(err Error) error {
	op.reset()
	log.Debug("operation decode failed",
		zap.String("code", err.ErrorCode.String()),
		zap.String("reason", err.Description))
	return err
}

// readDataSize returns the payload length encoded by the passed opcode,
// consuming the size prefix from r for the prefixed pushes.  The
// opcode-doubles-as-length rule lives here and in opcodeArray alone.
func readDataSize(op byte, r wire.Reader) uint64 {
	switch length := opcodeArray[op].length; {
	case length == -1:
		return uint64(r.ReadUint8())
	case length == -2:
		return uint64(r.ReadUint16())
	case length == -4:
		return uint64(r.ReadUint32())
	case length > 1:
		return uint64(length - 1)
	default:
		return 0
	}
}

// FromReader decodes one operation from r using the MaxScriptSize payload
// ceiling.  See FromReaderLimit.
func (op *Operation) FromReader(r wire.Reader) error {
	return op.FromReaderLimit(r, MaxScriptSize)
}

// FromReaderLimit decodes one operation from r: the opcode byte, the size
// prefix when the opcode carries one, then the payload.  A 4-byte prefix
// declaring more than sizeLimit bytes is rejected before any payload is
// read, since the prefix can express lengths no script could hold.
//
// On failure the operation is reset to the invalid sentinel and r is left
// positioned at the point of failure, so the caller can surface where the
// stream went bad.  On success the operation reports valid.
func (op *Operation) FromReaderLimit(r wire.Reader, sizeLimit uint64) error {
	code := r.ReadUint8()
	if r.Exhausted() {
		return op.fail(scriptError(ErrTruncatedPush,
			"stream ended reading opcode"))
	}

	size := readDataSize(code, r)
	if r.Exhausted() {
		return op.fail(scriptError(ErrTruncatedPush, fmt.Sprintf(
			"stream ended reading size prefix of %s",
			OpcodeName(code, NoForks))))
	}
	if code == OP_PUSHDATA4 && size > sizeLimit {
		return op.fail(scriptError(ErrPushSizeOverflow, fmt.Sprintf(
			"push of %d bytes exceeds the %d byte script ceiling", size,
			sizeLimit)))
	}

	var data []byte
	if size > 0 {
		data = r.ReadBytes(size)
		if r.Exhausted() {
			return op.fail(scriptError(ErrTruncatedPush, fmt.Sprintf(
				"%s requires %d payload bytes",
				OpcodeName(code, NoForks), size)))
		}
	}

	op.code = code
	op.data = data
	op.valid = true
	return nil
}

// FromBytes decodes one operation from the start of the passed serialized
// bytes.  Trailing bytes are ignored.
func (op *Operation) FromBytes(encoded []byte) error {
	return op.FromReader(wire.NewBufferReader(encoded))
}

// FromString parses the textual form of a single operation: either an opcode
// mnemonic, or a push rendered as bracketed lowercase hex.  Bracketed
// payloads are re-encoded minimally, so a parsed push always round-trips to
// the canonical wire form.
func (op *Operation) FromString(mnemonic string) error {
	if len(mnemonic) >= 2 && strings.HasPrefix(mnemonic, "[") &&
		strings.HasSuffix(mnemonic, "]") {

		data, err := hex.DecodeString(mnemonic[1 : len(mnemonic)-1])
		if err != nil {
			return op.fail(scriptError(ErrMalformedHex,
				fmt.Sprintf("push token %q is not valid hex", mnemonic)))
		}
		*op, _ = NewDataPush(data, true)
		return nil
	}

	code, ok := OpcodeFromName(mnemonic)
	if !ok {
		return op.fail(scriptError(ErrUnknownMnemonic,
			fmt.Sprintf("%q does not name an opcode", mnemonic)))
	}
	*op = NewOperation(code)
	return nil
}

// ToWriter serializes the operation: the opcode byte, the little-endian
// size prefix for the prefixed pushes, then the payload verbatim.
func (op *Operation) ToWriter(w wire.Writer) {
	w.WriteUint8(op.Code())
	switch pushPrefixWidth(op.Code()) {
	case 1:
		w.WriteUint8(uint8(len(op.data)))
	case 2:
		w.WriteUint16(uint16(len(op.data)))
	case 4:
		w.WriteUint32(uint32(len(op.data)))
	}
	w.WriteBytes(op.data)
}

// Bytes returns the serialized operation.
func (op *Operation) Bytes() []byte {
	w := wire.NewBufferWriterSize(op.SerializedSize())
	op.ToWriter(w)
	return w.Bytes()
}

// SerializedSize returns the exact number of bytes ToWriter emits.
func (op *Operation) SerializedSize() uint64 {
	return 1 + uint64(pushPrefixWidth(op.Code())) + uint64(len(op.data))
}

// ToString renders the operation's mnemonic form.  Pushes with a payload
// render as the payload in bracketed lowercase hex; everything else renders
// under its opcode name, honoring fork-gated renames per activeForks.
func (op *Operation) ToString(activeForks RuleFork) string {
	if !op.valid {
		return "<invalid>"
	}
	if len(op.data) == 0 {
		return OpcodeName(op.code, activeForks)
	}
	return "[" + hex.EncodeToString(op.data) + "]"
}

// IsPush returns whether or not the operation pushes data on the stack,
// including the numeric pushes.
func (op *Operation) IsPush() bool {
	return IsPushOpcode(op.Code())
}

// IsCounted returns whether or not the operation counts against the
// per-script opcode budget.
func (op *Operation) IsCounted() bool {
	return IsCountedOpcode(op.Code())
}

// IsPositive returns whether or not the operation pushes one of the
// constants 1 through 16.
func (op *Operation) IsPositive() bool {
	return IsPositiveOpcode(op.Code())
}

// IsDisabled returns whether or not the operation's opcode is disabled.
func (op *Operation) IsDisabled() bool {
	return IsOpcodeDisabled(op.Code())
}

// IsConditional returns whether or not the operation's opcode participates
// in conditional control flow.
func (op *Operation) IsConditional() bool {
	return IsOpcodeConditional(op.Code())
}

// IsOversized returns whether or not the payload exceeds the standard
// per-push ceiling.  Oversized operations still encode and decode; policy
// layers decide what to do with them.
func (op *Operation) IsOversized() bool {
	return len(op.data) > MaxScriptElementSize
}
