// Copyright (c) 2013-2022 The btcsuite developers
// Copyright (c) 2023 The Thought Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txscript implements the transaction script wire format.

The package centers on the Operation value, which models a single element of
a script: a bare opcode, or a data push together with its payload.  Binary
and mnemonic codecs, the consensus minimal-push rule, and the opcode
classification predicates used by script validation all hang off that value.
A zero-allocation ScriptTokenizer and a ScriptBuilder round out the surface
for callers working with whole scripts.

Script execution is out of scope for this package; it speaks only the
encoding.
*/
package txscript
