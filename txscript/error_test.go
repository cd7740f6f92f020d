// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2023 The Thought Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrorCodeStringer tests the stringized output for the ErrorCode type.
func TestErrorCodeStringer(t *testing.T) {
	tests := []struct {
		in   ErrorCode
		want string
	}{
		{ErrInternal, "ErrInternal"},
		{ErrTruncatedPush, "ErrTruncatedPush"},
		{ErrPushSizeOverflow, "ErrPushSizeOverflow"},
		{ErrUnknownMnemonic, "ErrUnknownMnemonic"},
		{ErrMalformedHex, "ErrMalformedHex"},
		{ErrMalformedPush, "ErrMalformedPush"},
		{ErrScriptTooBig, "ErrScriptTooBig"},
		{ErrElementTooBig, "ErrElementTooBig"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	// Detect additional error codes that don't have the stringer updated.
	assert.Equal(t, len(tests)-1, int(numErrorCodes),
		"It appears an error code was added without adding an associated "+
			"stringer test")

	for _, test := range tests {
		assert.Equal(t, test.want, test.in.String())
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{
		{Error{Description: "some error"}, "some error"},
		{Error{Description: "human-readable error"}, "human-readable error"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, test.in.Error())
	}
}

// TestIsErrorCode ensures matching works for script errors and rejects
// foreign error types.
func TestIsErrorCode(t *testing.T) {
	err := scriptError(ErrTruncatedPush, "truncated")
	assert.True(t, IsErrorCode(err, ErrTruncatedPush))
	assert.False(t, IsErrorCode(err, ErrMalformedHex))
	assert.False(t, IsErrorCode(nil, ErrTruncatedPush))
	assert.False(t, IsErrorCode(assert.AnError, ErrTruncatedPush))
}
