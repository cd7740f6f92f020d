// Copyright (c) 2013-2022 The btcsuite developers
// Copyright (c) 2023 The Thought Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScriptBuilderAddOp tests that pushing opcodes to a script via the
// ScriptBuilder API works as expected.
func TestScriptBuilderAddOp(t *testing.T) {
	builder := NewScriptBuilder()

	script, err := builder.AddOp(OP_HASH160).AddOp(OP_EQUAL).Script()
	require.NoError(t, err)
	assert.Equal(t, []byte{OP_HASH160, OP_EQUAL}, script)

	builder.Reset()
	script, err = builder.AddOps([]byte{OP_HASH160, OP_EQUAL}).Script()
	require.NoError(t, err)
	assert.Equal(t, []byte{OP_HASH160, OP_EQUAL}, script)
}

// TestScriptBuilderAddData tests that pushing data to a script via the
// ScriptBuilder API works as expected and conforms to canonical encoding.
func TestScriptBuilderAddData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		{"empty", nil, []byte{OP_0}},
		{"negative one", []byte{0x81}, []byte{OP_1NEGATE}},
		{"one", []byte{0x01}, []byte{OP_1}},
		{"sixteen", []byte{0x10}, []byte{OP_16}},
		{"not small int", []byte{0x11}, []byte{OP_DATA_1, 0x11}},
		{"two bytes", []byte{0xde, 0xad}, []byte{OP_DATA_2, 0xde, 0xad}},
		{
			"75 bytes",
			bytes.Repeat([]byte{0x49}, 75),
			append([]byte{OP_DATA_75}, bytes.Repeat([]byte{0x49}, 75)...),
		},
		{
			"76 bytes",
			bytes.Repeat([]byte{0x49}, 76),
			append([]byte{OP_PUSHDATA1, 76}, bytes.Repeat([]byte{0x49}, 76)...),
		},
		{
			"256 bytes",
			bytes.Repeat([]byte{0x49}, 256),
			append([]byte{OP_PUSHDATA2, 0x00, 0x01}, bytes.Repeat([]byte{0x49}, 256)...),
		},
	}

	builder := NewScriptBuilder()
	for _, test := range tests {
		builder.Reset().AddData(test.data)
		script, err := builder.Script()
		require.NoErrorf(t, err, "%s", test.name)
		assert.Equalf(t, test.want, script, "%s", test.name)
	}
}

// TestScriptBuilderAddInt64 tests that pushing signed integers to a script
// via the ScriptBuilder API works as expected.
func TestScriptBuilderAddInt64(t *testing.T) {
	tests := []struct {
		name string
		val  int64
		want []byte
	}{
		{"zero", 0, []byte{OP_0}},
		{"one", 1, []byte{OP_1}},
		{"negative one", -1, []byte{OP_1NEGATE}},
		{"sixteen", 16, []byte{OP_16}},
		{"seventeen", 17, []byte{OP_DATA_1, 0x11}},
		{"negative five", -5, []byte{OP_DATA_1, 0x85}},
		{"127", 127, []byte{OP_DATA_1, 0x7f}},
		{"128", 128, []byte{OP_DATA_2, 0x80, 0x00}},
		{"negative 127", -127, []byte{OP_DATA_1, 0xff}},
		{"negative 128", -128, []byte{OP_DATA_2, 0x80, 0x80}},
		{"255", 255, []byte{OP_DATA_2, 0xff, 0x00}},
		{"256", 256, []byte{OP_DATA_2, 0x00, 0x01}},
		{"32767", 32767, []byte{OP_DATA_2, 0xff, 0x7f}},
		{"32768", 32768, []byte{OP_DATA_3, 0x00, 0x80, 0x00}},
	}

	builder := NewScriptBuilder()
	for _, test := range tests {
		builder.Reset().AddInt64(test.val)
		script, err := builder.Script()
		require.NoErrorf(t, err, "%s", test.name)
		assert.Equalf(t, test.want, script, "%s", test.name)
	}
}

// TestScriptBuilderElementTooBig ensures pushing an element above the
// maximum element size fails and leaves the script unmodified.
func TestScriptBuilderElementTooBig(t *testing.T) {
	builder := NewScriptBuilder()
	builder.AddOp(OP_RETURN)

	builder.AddData(bytes.Repeat([]byte{0x01}, MaxScriptElementSize+1))
	script, err := builder.Script()
	require.Error(t, err)
	assert.True(t, IsErrorCode(err, ErrElementTooBig))
	assert.Equal(t, []byte{OP_RETURN}, script)

	// AddFullData skips the element limit for testing oversized pushes.
	builder.Reset().AddFullData(bytes.Repeat([]byte{0x01}, MaxScriptElementSize+1))
	script, err = builder.Script()
	require.NoError(t, err)
	assert.Len(t, script, MaxScriptElementSize+1+3)
}

// TestScriptBuilderScriptTooBig ensures exceeding the maximum script size
// fails and freezes the script at the first error.
func TestScriptBuilderScriptTooBig(t *testing.T) {
	builder := NewScriptBuilder()
	chunk := bytes.Repeat([]byte{0x02}, MaxScriptElementSize)
	for len(builderScript(builder))+len(chunk)+3 <= MaxScriptSize {
		builder.AddData(chunk)
	}
	script, err := builder.Script()
	require.NoError(t, err)
	before := len(script)

	builder.AddData(chunk)
	script, err = builder.Script()
	require.Error(t, err)
	assert.True(t, IsErrorCode(err, ErrScriptTooBig))
	assert.Len(t, script, before)

	// Later pushes keep failing with the original error.
	builder.AddOp(OP_DUP)
	_, err = builder.Script()
	assert.True(t, IsErrorCode(err, ErrScriptTooBig))
}

// builderScript returns the current script ignoring any error, for loop
// bookkeeping in tests.
func builderScript(b *ScriptBuilder) []byte {
	script, _ := b.Script()
	return script
}
