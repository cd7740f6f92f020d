// Copyright (c) 2019-2022 The btcsuite developers
// Copyright (c) 2023 The Thought Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
	"strings"
)

// ScriptTokenizer provides a facility for easily and efficiently tokenizing
// transaction scripts without creating allocations.  Tokenization is
// operation-at-a-time over the same wire format the Operation codec speaks,
// so the two never disagree about instruction boundaries.
//
// It must be noted that this tokenizer is not directly safe for concurrent
// use, however it could be safely used concurrently via making a copy.
type ScriptTokenizer struct {
	script []byte
	offset int32
	op     byte
	data   []byte
	err    error
}

// MakeScriptTokenizer returns a script tokenizer for the passed script.
func MakeScriptTokenizer(script []byte) ScriptTokenizer {
	return ScriptTokenizer{script: script}
}

// Done returns true when either all opcodes have been exhausted or a parse
// failure was encountered and therefore the state has an associated error.
func (t *ScriptTokenizer) Done() bool {
	return t.err != nil || t.offset >= int32(len(t.script))
}

// Next attempts to parse the next opcode and returns whether or not it was
// successful.  It will not be successful if invoked when already at the end
// of the script, a parse failure is encountered, or an associated error
// already exists due to a previous parse failure.
//
// In the case of a true return, the parsed opcode and data can be obtained
// with the associated tokenizer state.  In the case of a false return, the
// opcode and data are left as they were after the last successful parse (the
// zero opcode and nil data if nothing has parsed yet).
func (t *ScriptTokenizer) Next() bool {
	if t.Done() {
		return false
	}

	op := t.script[t.offset]
	script := t.script[t.offset:]
	switch length := opcodeArray[op].length; {
	// No additional data.  Note that some of the opcodes, notably OP_1NEGATE,
	// OP_0, and OP_[1-16] represent the data themselves.
	case length == 1:
		t.offset++
		t.op = op
		t.data = nil
		return true

	// Data pushes of specific lengths -- OP_DATA_[1-75].
	case length > 1:
		if len(script) < length {
			t.err = scriptError(ErrMalformedPush, fmt.Sprintf(
				"opcode %s requires %d bytes, but script only has %d "+
					"remaining", OpcodeName(op, NoForks), length, len(script)))
			return false
		}

		// The length includes the opcode byte.
		t.offset += int32(length)
		t.op = op
		t.data = script[1:length]
		return true

	// Data pushes with parsed lengths -- OP_PUSHDATA{1,2,4}.
	case length < 0:
		if len(script[1:]) < -length {
			t.err = scriptError(ErrMalformedPush, fmt.Sprintf(
				"opcode %s requires %d bytes, but script only has %d "+
					"remaining", OpcodeName(op, NoForks), -length,
				len(script[1:])))
			return false
		}

		// Next -length bytes are little endian length of data.
		var dataLen int32
		for i, b := range script[1 : 1-length] {
			dataLen |= int32(b) << uint8(8*i)
		}

		// Move to the beginning of the data.
		numLenBytes := int32(-length)
		if dataLen < 0 || dataLen > int32(len(script))-1-numLenBytes {
			t.err = scriptError(ErrMalformedPush, fmt.Sprintf(
				"opcode %s pushes %d bytes, but script only has %d "+
					"remaining", OpcodeName(op, NoForks), dataLen,
				int32(len(script))-1-numLenBytes))
			return false
		}

		t.offset += 1 + numLenBytes + dataLen
		t.op = op
		t.data = script[1+numLenBytes : 1+numLenBytes+dataLen]
		return true

	default:
		// Opcodes without an assigned table row carry no payload.
		t.offset++
		t.op = op
		t.data = nil
		return true
	}
}

// Script returns the full script associated with the tokenizer.
func (t *ScriptTokenizer) Script() []byte {
	return t.script
}

// ByteIndex returns the current offset into the full script that will be
// parsed next and therefore also implies everything before it has already
// been parsed.
func (t *ScriptTokenizer) ByteIndex() int32 {
	return t.offset
}

// Opcode returns the current opcode associated with the tokenizer.
func (t *ScriptTokenizer) Opcode() byte {
	return t.op
}

// Data returns the data associated with the most recently successfully
// parsed opcode.
func (t *ScriptTokenizer) Data() []byte {
	return t.data
}

// Err returns any errors currently associated with the tokenizer.  This will
// only be non-nil in the case a parsing error was encountered.
func (t *ScriptTokenizer) Err() error {
	return t.err
}

// checkScriptParses returns an error if the script does not parse.
func checkScriptParses(script []byte) error {
	tokenizer := MakeScriptTokenizer(script)
	for tokenizer.Next() {
		// Nothing to do.
	}
	return tokenizer.Err()
}

// IsPushOnlyScript returns whether or not the passed script only pushes data.
//
// NOTE: This considers OP_RESERVED to be a data push instruction, since
// execution of OP_RESERVED fails anyway and that matches the behavior
// required by consensus.
func IsPushOnlyScript(script []byte) bool {
	tokenizer := MakeScriptTokenizer(script)
	for tokenizer.Next() {
		// All opcodes up to OP_16 are data push instructions.
		if tokenizer.Opcode() > OP_16 {
			return false
		}
	}
	return tokenizer.Err() == nil
}

// DisasmString formats a disassembled script for one line printing: the
// mnemonic of each operation joined by single spaces, with pushes rendered
// as bracketed hex.  The first parse failure aborts and returns the
// tokenizer's error, which names the offending opcode.
func DisasmString(script []byte, activeForks RuleFork) (string, error) {
	var disbuf strings.Builder
	tokenizer := MakeScriptTokenizer(script)
	if tokenizer.Next() {
		op := Operation{code: tokenizer.Opcode(), data: tokenizer.Data(), valid: true}
		disbuf.WriteString(op.ToString(activeForks))
	}
	for tokenizer.Next() {
		disbuf.WriteByte(' ')
		op := Operation{code: tokenizer.Opcode(), data: tokenizer.Data(), valid: true}
		disbuf.WriteString(op.ToString(activeForks))
	}
	if err := tokenizer.Err(); err != nil {
		return "", err
	}
	return disbuf.String(), nil
}
