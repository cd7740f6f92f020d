// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2023 The Thought Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire provides the byte stream capabilities the serialization code
builds on: a single-pass Reader yielding bytes and little-endian integers
with a latched exhaustion flag, and the symmetric Writer.

Both are deliberately narrow.  Serialization code declares the interface it
consumes and callers hand in the buffer-backed implementations, which keeps
codecs testable against short and corrupt inputs without plumbing errors
through every integer read.
*/
package wire
