// Copyright (c) 2013-2022 The btcsuite developers
// Copyright (c) 2023 The Thought Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
)

const (
	// defaultScriptAlloc is the default size used for the backing array
	// for a script being built by the ScriptBuilder.  The array will
	// dynamically grow as needed, but this figure is intended to be large
	// enough for the vast majority of scripts without needing to grow the
	// backing array multiple times.
	defaultScriptAlloc = 500
)

// ScriptBuilder provides a facility for building custom scripts.  It allows
// you to push opcodes, ints, and data while respecting canonical encoding.
// In general it does not ensure the script will execute correctly, however
// any data pushes which would exceed the maximum allowed script engine
// limits and are therefore guaranteed not to execute will not be pushed and
// will result in the Script function returning an error.
//
// For example, the following would build a 2-of-3 multisig script for usage
// in a pay-to-script-hash:
//
//	builder := txscript.NewScriptBuilder()
//	builder.AddOp(txscript.OP_2).AddData(pubKey1).AddData(pubKey2)
//	builder.AddData(pubKey3).AddOp(txscript.OP_3)
//	builder.AddOp(txscript.OP_CHECKMULTISIG)
//	script, err := builder.Script()
//	if err != nil {
//		// Handle the error.
//		return
//	}
//	fmt.Printf("Final multi-sig script: %x\n", script)
type ScriptBuilder struct {
	script []byte
	err    error
}

// AddOp pushes the passed opcode to the end of the script.  The script will
// not be modified if pushing the opcode would cause the script to exceed the
// maximum allowed script engine size.
func (b *ScriptBuilder) AddOp(opcode byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	// Pushes that would cause the script to exceed the largest allowed
	// script size would result in a non-functional script.
	if len(b.script)+1 > MaxScriptSize {
		b.err = scriptError(ErrScriptTooBig, fmt.Sprintf(
			"adding an opcode would exceed the maximum allowed script "+
				"size %d", MaxScriptSize))
		return b
	}

	b.script = append(b.script, opcode)
	return b
}

// AddOps pushes the passed opcodes to the end of the script.  The script
// will not be modified if pushing the opcodes would cause the script to
// exceed the maximum allowed script engine size.
func (b *ScriptBuilder) AddOps(opcodes []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	if len(b.script)+len(opcodes) > MaxScriptSize {
		b.err = scriptError(ErrScriptTooBig, fmt.Sprintf(
			"adding opcodes would exceed the maximum allowed script "+
				"size %d", MaxScriptSize))
		return b
	}

	b.script = append(b.script, opcodes...)
	return b
}

// addData is the internal function that actually pushes the passed data to
// the end of the script.  It automatically chooses canonical opcodes
// depending on the length of the data by routing through the minimal-push
// rule.  A zero length buffer will lead to a push of empty data onto the
// stack (OP_0).  No data limits are enforced with this function.
func (b *ScriptBuilder) addData(data []byte) *ScriptBuilder {
	push, _ := NewDataPush(data, true)
	b.script = append(b.script, push.Bytes()...)
	return b
}

// AddFullData should not typically be used by ordinary users as it does not
// include the checks which prevent data pushes larger than the maximum
// allowed sizes which leads to scripts that can't be executed.  This is
// provided for testing purposes such as regression tests where sizes are
// intentionally made larger than allowed.
//
// Use AddData instead.
func (b *ScriptBuilder) AddFullData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	return b.addData(data)
}

// AddData pushes the passed data to the end of the script.  It automatically
// chooses canonical opcodes depending on the length of the data.  A zero
// length buffer will lead to a push of empty data onto the stack (OP_0) and
// any push of data greater than MaxScriptElementSize will not modify the
// script since that is not allowed by the script engine.  Also, the script
// will not be modified if pushing the data would cause the script to exceed
// the maximum allowed script engine size.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	// Pushes that would cause the script to exceed the largest allowed
	// script size would result in a non-functional script.
	push, _ := NewDataPush(data, true)
	if len(b.script)+int(push.SerializedSize()) > MaxScriptSize {
		b.err = scriptError(ErrScriptTooBig, fmt.Sprintf(
			"adding %d bytes of data would exceed the maximum allowed "+
				"script size %d", push.SerializedSize(), MaxScriptSize))
		return b
	}

	// Pushes larger than the max script element size would result in a
	// script that is not valid.
	if len(data) > MaxScriptElementSize {
		b.err = scriptError(ErrElementTooBig, fmt.Sprintf(
			"adding a data element of %d bytes would exceed the maximum "+
				"allowed script element size %d", len(data),
			MaxScriptElementSize))
		return b
	}

	b.script = append(b.script, push.Bytes()...)
	return b
}

// AddInt64 pushes the passed integer to the end of the script.  The script
// will not be modified if pushing the data would cause the script to exceed
// the maximum allowed script engine size.
func (b *ScriptBuilder) AddInt64(val int64) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	// Fast path for small integers and OP_1NEGATE.
	if val == 0 {
		return b.AddOp(OP_0)
	}
	if val == -1 || (val >= 1 && val <= 16) {
		return b.AddOp(byte((OP_1 - 1) + val))
	}

	return b.AddData(scriptNumBytes(val))
}

// Reset resets the script so it has no content.
func (b *ScriptBuilder) Reset() *ScriptBuilder {
	b.script = b.script[0:0]
	b.err = nil
	return b
}

// Script returns the currently built script.  When any errors occurred while
// building the script, the script will be returned up the point of the first
// error along with the error.
func (b *ScriptBuilder) Script() ([]byte, error) {
	return b.script, b.err
}

// NewScriptBuilder returns a new instance of a script builder.  See
// ScriptBuilder for details.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{
		script: make([]byte, 0, defaultScriptAlloc),
	}
}

// scriptNumBytes returns the number serialized in the format the script
// engine expects: little-endian sign-magnitude with the sign carried by the
// high bit of the final byte, using as few bytes as possible.
func scriptNumBytes(n int64) []byte {
	// Zero encodes as an empty byte slice.
	if n == 0 {
		return nil
	}

	// Take the absolute value and keep track of whether it was originally
	// negative.
	isNegative := n < 0
	if isNegative {
		n = -n
	}

	// Encode to little endian.  The maximum number of encoded bytes is 9
	// (8 bytes for max int64 plus a potential byte for sign extension).
	result := make([]byte, 0, 9)
	for n > 0 {
		result = append(result, byte(n&0xff))
		n >>= 8
	}

	// When the most significant byte already has the high bit set, an
	// additional high byte is required to indicate whether the number is
	// negative or positive.  The additional byte is removed when converting
	// back to an integral and its high bit is used to denote the sign.
	//
	// Otherwise, when the most significant byte does not already have the
	// high bit set, use it to indicate the value is negative, if needed.
	if result[len(result)-1]&0x80 != 0 {
		extraByte := byte(0x00)
		if isNegative {
			extraByte = 0x80
		}
		result = append(result, extraByte)
	} else if isNegative {
		result[len(result)-1] |= 0x80
	}

	return result
}
