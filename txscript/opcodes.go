// Copyright (c) 2013-2022 The btcsuite developers
// Copyright (c) 2023 The Thought Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
)

// These constants are the values of the official opcodes used on the wiki,
// in bitcoin core, and in most if not all other references and software
// related to handling bitcoin scripts.
const (
	OP_0                   = 0x00 // 0
	OP_FALSE               = 0x00 // 0 - AKA OP_0
	OP_DATA_1              = 0x01 // 1
	OP_DATA_2              = 0x02 // 2
	OP_DATA_3              = 0x03 // 3
	OP_DATA_4              = 0x04 // 4
	OP_DATA_5              = 0x05 // 5
	OP_DATA_6              = 0x06 // 6
	OP_DATA_7              = 0x07 // 7
	OP_DATA_8              = 0x08 // 8
	OP_DATA_9              = 0x09 // 9
	OP_DATA_10             = 0x0a // 10
	OP_DATA_11             = 0x0b // 11
	OP_DATA_12             = 0x0c // 12
	OP_DATA_13             = 0x0d // 13
	OP_DATA_14             = 0x0e // 14
	OP_DATA_15             = 0x0f // 15
	OP_DATA_16             = 0x10 // 16
	OP_DATA_17             = 0x11 // 17
	OP_DATA_18             = 0x12 // 18
	OP_DATA_19             = 0x13 // 19
	OP_DATA_20             = 0x14 // 20
	OP_DATA_21             = 0x15 // 21
	OP_DATA_22             = 0x16 // 22
	OP_DATA_23             = 0x17 // 23
	OP_DATA_24             = 0x18 // 24
	OP_DATA_25             = 0x19 // 25
	OP_DATA_26             = 0x1a // 26
	OP_DATA_27             = 0x1b // 27
	OP_DATA_28             = 0x1c // 28
	OP_DATA_29             = 0x1d // 29
	OP_DATA_30             = 0x1e // 30
	OP_DATA_31             = 0x1f // 31
	OP_DATA_32             = 0x20 // 32
	OP_DATA_33             = 0x21 // 33
	OP_DATA_34             = 0x22 // 34
	OP_DATA_35             = 0x23 // 35
	OP_DATA_36             = 0x24 // 36
	OP_DATA_37             = 0x25 // 37
	OP_DATA_38             = 0x26 // 38
	OP_DATA_39             = 0x27 // 39
	OP_DATA_40             = 0x28 // 40
	OP_DATA_41             = 0x29 // 41
	OP_DATA_42             = 0x2a // 42
	OP_DATA_43             = 0x2b // 43
	OP_DATA_44             = 0x2c // 44
	OP_DATA_45             = 0x2d // 45
	OP_DATA_46             = 0x2e // 46
	OP_DATA_47             = 0x2f // 47
	OP_DATA_48             = 0x30 // 48
	OP_DATA_49             = 0x31 // 49
	OP_DATA_50             = 0x32 // 50
	OP_DATA_51             = 0x33 // 51
	OP_DATA_52             = 0x34 // 52
	OP_DATA_53             = 0x35 // 53
	OP_DATA_54             = 0x36 // 54
	OP_DATA_55             = 0x37 // 55
	OP_DATA_56             = 0x38 // 56
	OP_DATA_57             = 0x39 // 57
	OP_DATA_58             = 0x3a // 58
	OP_DATA_59             = 0x3b // 59
	OP_DATA_60             = 0x3c // 60
	OP_DATA_61             = 0x3d // 61
	OP_DATA_62             = 0x3e // 62
	OP_DATA_63             = 0x3f // 63
	OP_DATA_64             = 0x40 // 64
	OP_DATA_65             = 0x41 // 65
	OP_DATA_66             = 0x42 // 66
	OP_DATA_67             = 0x43 // 67
	OP_DATA_68             = 0x44 // 68
	OP_DATA_69             = 0x45 // 69
	OP_DATA_70             = 0x46 // 70
	OP_DATA_71             = 0x47 // 71
	OP_DATA_72             = 0x48 // 72
	OP_DATA_73             = 0x49 // 73
	OP_DATA_74             = 0x4a // 74
	OP_DATA_75             = 0x4b // 75
	OP_PUSHDATA1           = 0x4c // 76
	OP_PUSHDATA2           = 0x4d // 77
	OP_PUSHDATA4           = 0x4e // 78
	OP_1NEGATE             = 0x4f // 79
	OP_RESERVED            = 0x50 // 80
	OP_1                   = 0x51 // 81 - AKA OP_TRUE
	OP_TRUE                = 0x51 // 81
	OP_2                   = 0x52 // 82
	OP_3                   = 0x53 // 83
	OP_4                   = 0x54 // 84
	OP_5                   = 0x55 // 85
	OP_6                   = 0x56 // 86
	OP_7                   = 0x57 // 87
	OP_8                   = 0x58 // 88
	OP_9                   = 0x59 // 89
	OP_10                  = 0x5a // 90
	OP_11                  = 0x5b // 91
	OP_12                  = 0x5c // 92
	OP_13                  = 0x5d // 93
	OP_14                  = 0x5e // 94
	OP_15                  = 0x5f // 95
	OP_16                  = 0x60 // 96
	OP_NOP                 = 0x61 // 97
	OP_VER                 = 0x62 // 98
	OP_IF                  = 0x63 // 99
	OP_NOTIF               = 0x64 // 100
	OP_VERIF               = 0x65 // 101
	OP_VERNOTIF            = 0x66 // 102
	OP_ELSE                = 0x67 // 103
	OP_ENDIF               = 0x68 // 104
	OP_VERIFY              = 0x69 // 105
	OP_RETURN              = 0x6a // 106
	OP_TOALTSTACK          = 0x6b // 107
	OP_FROMALTSTACK        = 0x6c // 108
	OP_2DROP               = 0x6d // 109
	OP_2DUP                = 0x6e // 110
	OP_3DUP                = 0x6f // 111
	OP_2OVER               = 0x70 // 112
	OP_2ROT                = 0x71 // 113
	OP_2SWAP               = 0x72 // 114
	OP_IFDUP               = 0x73 // 115
	OP_DEPTH               = 0x74 // 116
	OP_DROP                = 0x75 // 117
	OP_DUP                 = 0x76 // 118
	OP_NIP                 = 0x77 // 119
	OP_OVER                = 0x78 // 120
	OP_PICK                = 0x79 // 121
	OP_ROLL                = 0x7a // 122
	OP_ROT                 = 0x7b // 123
	OP_SWAP                = 0x7c // 124
	OP_TUCK                = 0x7d // 125
	OP_CAT                 = 0x7e // 126
	OP_SUBSTR              = 0x7f // 127
	OP_LEFT                = 0x80 // 128
	OP_RIGHT               = 0x81 // 129
	OP_SIZE                = 0x82 // 130
	OP_INVERT              = 0x83 // 131
	OP_AND                 = 0x84 // 132
	OP_OR                  = 0x85 // 133
	OP_XOR                 = 0x86 // 134
	OP_EQUAL               = 0x87 // 135
	OP_EQUALVERIFY         = 0x88 // 136
	OP_RESERVED1           = 0x89 // 137
	OP_RESERVED2           = 0x8a // 138
	OP_1ADD                = 0x8b // 139
	OP_1SUB                = 0x8c // 140
	OP_2MUL                = 0x8d // 141
	OP_2DIV                = 0x8e // 142
	OP_NEGATE              = 0x8f // 143
	OP_ABS                 = 0x90 // 144
	OP_NOT                 = 0x91 // 145
	OP_0NOTEQUAL           = 0x92 // 146
	OP_ADD                 = 0x93 // 147
	OP_SUB                 = 0x94 // 148
	OP_MUL                 = 0x95 // 149
	OP_DIV                 = 0x96 // 150
	OP_MOD                 = 0x97 // 151
	OP_LSHIFT              = 0x98 // 152
	OP_RSHIFT              = 0x99 // 153
	OP_BOOLAND             = 0x9a // 154
	OP_BOOLOR              = 0x9b // 155
	OP_NUMEQUAL            = 0x9c // 156
	OP_NUMEQUALVERIFY      = 0x9d // 157
	OP_NUMNOTEQUAL         = 0x9e // 158
	OP_LESSTHAN            = 0x9f // 159
	OP_GREATERTHAN         = 0xa0 // 160
	OP_LESSTHANOREQUAL     = 0xa1 // 161
	OP_GREATERTHANOREQUAL  = 0xa2 // 162
	OP_MIN                 = 0xa3 // 163
	OP_MAX                 = 0xa4 // 164
	OP_WITHIN              = 0xa5 // 165
	OP_RIPEMD160           = 0xa6 // 166
	OP_SHA1                = 0xa7 // 167
	OP_SHA256              = 0xa8 // 168
	OP_HASH160             = 0xa9 // 169
	OP_HASH256             = 0xaa // 170
	OP_CODESEPARATOR       = 0xab // 171
	OP_CHECKSIG            = 0xac // 172
	OP_CHECKSIGVERIFY      = 0xad // 173
	OP_CHECKMULTISIG       = 0xae // 174
	OP_CHECKMULTISIGVERIFY = 0xaf // 175
	OP_NOP1                = 0xb0 // 176
	OP_NOP2                = 0xb1 // 177
	OP_CHECKLOCKTIMEVERIFY = 0xb1 // 177 - AKA OP_NOP2
	OP_NOP3                = 0xb2 // 178
	OP_CHECKSEQUENCEVERIFY = 0xb2 // 178 - AKA OP_NOP3
	OP_NOP4                = 0xb3 // 179
	OP_NOP5                = 0xb4 // 180
	OP_NOP6                = 0xb5 // 181
	OP_NOP7                = 0xb6 // 182
	OP_NOP8                = 0xb7 // 183
	OP_NOP9                = 0xb8 // 184
	OP_NOP10               = 0xb9 // 185
	OP_INVALIDOPCODE       = 0xff // 255 - sentinel for unpopulated operations
)

// RuleFork is a 32-bit bitmask describing which soft forks are active.  Only
// the bits that alter opcode names are consulted when rendering mnemonics;
// the remaining bits are carried for callers that thread a single fork mask
// through script handling.
type RuleFork uint32

const (
	// ForkBip16 defines whether pay-to-script-hash evaluation is active.
	ForkBip16 RuleFork = 1 << iota

	// ForkBip30 defines whether duplicate transactions are rejected.
	ForkBip30

	// ForkBip34 defines whether coinbase height commitment is required.
	ForkBip34

	// ForkBip66 defines whether strict DER signatures are required.
	ForkBip66

	// ForkBip65 defines whether OP_NOP2 is interpreted and rendered as
	// checklocktimeverify.
	ForkBip65

	// ForkBip68 defines whether relative lock-time sequence numbers are
	// enforced.
	ForkBip68

	// ForkBip112 defines whether OP_NOP3 is interpreted and rendered as
	// checksequenceverify.
	ForkBip112

	// ForkBip113 defines whether median-time-past lock-time is enforced.
	ForkBip113
)

const (
	// NoForks renders every opcode under its original name.
	NoForks RuleFork = 0

	// AllForks activates every defined fork bit.
	AllForks RuleFork = 0xffffffff
)

// opcode holds the wire value of an opcode, its mnemonic, and how many bytes
// an instruction using it occupies.  A length of 1 means the opcode is the
// whole instruction, a positive length n means n-1 immediate payload bytes
// follow, and lengths -1/-2/-4 mean a little-endian size prefix of that many
// bytes follows.
type opcode struct {
	value  byte
	name   string
	length int
}

// opcodeArray associates every opcode value with its mnemonic and
// instruction length.  It is the single source of truth consulted by the
// codec, the tokenizer, and the mnemonic parser, so soft forks that rename
// opcodes extend opcodeForkNames rather than edit logic.
var opcodeArray = [256]opcode{
	// Data push opcodes.
	OP_0:         {OP_0, "zero", 1},
	OP_DATA_1:    {OP_DATA_1, "push_1", 2},
	OP_DATA_2:    {OP_DATA_2, "push_2", 3},
	OP_DATA_3:    {OP_DATA_3, "push_3", 4},
	OP_DATA_4:    {OP_DATA_4, "push_4", 5},
	OP_DATA_5:    {OP_DATA_5, "push_5", 6},
	OP_DATA_6:    {OP_DATA_6, "push_6", 7},
	OP_DATA_7:    {OP_DATA_7, "push_7", 8},
	OP_DATA_8:    {OP_DATA_8, "push_8", 9},
	OP_DATA_9:    {OP_DATA_9, "push_9", 10},
	OP_DATA_10:   {OP_DATA_10, "push_10", 11},
	OP_DATA_11:   {OP_DATA_11, "push_11", 12},
	OP_DATA_12:   {OP_DATA_12, "push_12", 13},
	OP_DATA_13:   {OP_DATA_13, "push_13", 14},
	OP_DATA_14:   {OP_DATA_14, "push_14", 15},
	OP_DATA_15:   {OP_DATA_15, "push_15", 16},
	OP_DATA_16:   {OP_DATA_16, "push_16", 17},
	OP_DATA_17:   {OP_DATA_17, "push_17", 18},
	OP_DATA_18:   {OP_DATA_18, "push_18", 19},
	OP_DATA_19:   {OP_DATA_19, "push_19", 20},
	OP_DATA_20:   {OP_DATA_20, "push_20", 21},
	OP_DATA_21:   {OP_DATA_21, "push_21", 22},
	OP_DATA_22:   {OP_DATA_22, "push_22", 23},
	OP_DATA_23:   {OP_DATA_23, "push_23", 24},
	OP_DATA_24:   {OP_DATA_24, "push_24", 25},
	OP_DATA_25:   {OP_DATA_25, "push_25", 26},
	OP_DATA_26:   {OP_DATA_26, "push_26", 27},
	OP_DATA_27:   {OP_DATA_27, "push_27", 28},
	OP_DATA_28:   {OP_DATA_28, "push_28", 29},
	OP_DATA_29:   {OP_DATA_29, "push_29", 30},
	OP_DATA_30:   {OP_DATA_30, "push_30", 31},
	OP_DATA_31:   {OP_DATA_31, "push_31", 32},
	OP_DATA_32:   {OP_DATA_32, "push_32", 33},
	OP_DATA_33:   {OP_DATA_33, "push_33", 34},
	OP_DATA_34:   {OP_DATA_34, "push_34", 35},
	OP_DATA_35:   {OP_DATA_35, "push_35", 36},
	OP_DATA_36:   {OP_DATA_36, "push_36", 37},
	OP_DATA_37:   {OP_DATA_37, "push_37", 38},
	OP_DATA_38:   {OP_DATA_38, "push_38", 39},
	OP_DATA_39:   {OP_DATA_39, "push_39", 40},
	OP_DATA_40:   {OP_DATA_40, "push_40", 41},
	OP_DATA_41:   {OP_DATA_41, "push_41", 42},
	OP_DATA_42:   {OP_DATA_42, "push_42", 43},
	OP_DATA_43:   {OP_DATA_43, "push_43", 44},
	OP_DATA_44:   {OP_DATA_44, "push_44", 45},
	OP_DATA_45:   {OP_DATA_45, "push_45", 46},
	OP_DATA_46:   {OP_DATA_46, "push_46", 47},
	OP_DATA_47:   {OP_DATA_47, "push_47", 48},
	OP_DATA_48:   {OP_DATA_48, "push_48", 49},
	OP_DATA_49:   {OP_DATA_49, "push_49", 50},
	OP_DATA_50:   {OP_DATA_50, "push_50", 51},
	OP_DATA_51:   {OP_DATA_51, "push_51", 52},
	OP_DATA_52:   {OP_DATA_52, "push_52", 53},
	OP_DATA_53:   {OP_DATA_53, "push_53", 54},
	OP_DATA_54:   {OP_DATA_54, "push_54", 55},
	OP_DATA_55:   {OP_DATA_55, "push_55", 56},
	OP_DATA_56:   {OP_DATA_56, "push_56", 57},
	OP_DATA_57:   {OP_DATA_57, "push_57", 58},
	OP_DATA_58:   {OP_DATA_58, "push_58", 59},
	OP_DATA_59:   {OP_DATA_59, "push_59", 60},
	OP_DATA_60:   {OP_DATA_60, "push_60", 61},
	OP_DATA_61:   {OP_DATA_61, "push_61", 62},
	OP_DATA_62:   {OP_DATA_62, "push_62", 63},
	OP_DATA_63:   {OP_DATA_63, "push_63", 64},
	OP_DATA_64:   {OP_DATA_64, "push_64", 65},
	OP_DATA_65:   {OP_DATA_65, "push_65", 66},
	OP_DATA_66:   {OP_DATA_66, "push_66", 67},
	OP_DATA_67:   {OP_DATA_67, "push_67", 68},
	OP_DATA_68:   {OP_DATA_68, "push_68", 69},
	OP_DATA_69:   {OP_DATA_69, "push_69", 70},
	OP_DATA_70:   {OP_DATA_70, "push_70", 71},
	OP_DATA_71:   {OP_DATA_71, "push_71", 72},
	OP_DATA_72:   {OP_DATA_72, "push_72", 73},
	OP_DATA_73:   {OP_DATA_73, "push_73", 74},
	OP_DATA_74:   {OP_DATA_74, "push_74", 75},
	OP_DATA_75:   {OP_DATA_75, "push_75", 76},
	OP_PUSHDATA1: {OP_PUSHDATA1, "pushdata1", -1},
	OP_PUSHDATA2: {OP_PUSHDATA2, "pushdata2", -2},
	OP_PUSHDATA4: {OP_PUSHDATA4, "pushdata4", -4},
	OP_1NEGATE:   {OP_1NEGATE, "-1", 1},
	OP_RESERVED:  {OP_RESERVED, "reserved", 1},
	OP_1:         {OP_1, "1", 1},
	OP_2:         {OP_2, "2", 1},
	OP_3:         {OP_3, "3", 1},
	OP_4:         {OP_4, "4", 1},
	OP_5:         {OP_5, "5", 1},
	OP_6:         {OP_6, "6", 1},
	OP_7:         {OP_7, "7", 1},
	OP_8:         {OP_8, "8", 1},
	OP_9:         {OP_9, "9", 1},
	OP_10:        {OP_10, "10", 1},
	OP_11:        {OP_11, "11", 1},
	OP_12:        {OP_12, "12", 1},
	OP_13:        {OP_13, "13", 1},
	OP_14:        {OP_14, "14", 1},
	OP_15:        {OP_15, "15", 1},
	OP_16:        {OP_16, "16", 1},

	// Control opcodes.
	OP_NOP:      {OP_NOP, "nop", 1},
	OP_VER:      {OP_VER, "ver", 1},
	OP_IF:       {OP_IF, "if", 1},
	OP_NOTIF:    {OP_NOTIF, "notif", 1},
	OP_VERIF:    {OP_VERIF, "verif", 1},
	OP_VERNOTIF: {OP_VERNOTIF, "vernotif", 1},
	OP_ELSE:     {OP_ELSE, "else", 1},
	OP_ENDIF:    {OP_ENDIF, "endif", 1},
	OP_VERIFY:   {OP_VERIFY, "verify", 1},
	OP_RETURN:   {OP_RETURN, "return", 1},

	// Stack opcodes.
	OP_TOALTSTACK:   {OP_TOALTSTACK, "toaltstack", 1},
	OP_FROMALTSTACK: {OP_FROMALTSTACK, "fromaltstack", 1},
	OP_2DROP:        {OP_2DROP, "2drop", 1},
	OP_2DUP:         {OP_2DUP, "2dup", 1},
	OP_3DUP:         {OP_3DUP, "3dup", 1},
	OP_2OVER:        {OP_2OVER, "2over", 1},
	OP_2ROT:         {OP_2ROT, "2rot", 1},
	OP_2SWAP:        {OP_2SWAP, "2swap", 1},
	OP_IFDUP:        {OP_IFDUP, "ifdup", 1},
	OP_DEPTH:        {OP_DEPTH, "depth", 1},
	OP_DROP:         {OP_DROP, "drop", 1},
	OP_DUP:          {OP_DUP, "dup", 1},
	OP_NIP:          {OP_NIP, "nip", 1},
	OP_OVER:         {OP_OVER, "over", 1},
	OP_PICK:         {OP_PICK, "pick", 1},
	OP_ROLL:         {OP_ROLL, "roll", 1},
	OP_ROT:          {OP_ROT, "rot", 1},
	OP_SWAP:         {OP_SWAP, "swap", 1},
	OP_TUCK:         {OP_TUCK, "tuck", 1},

	// Splice opcodes.
	OP_CAT:    {OP_CAT, "cat", 1},
	OP_SUBSTR: {OP_SUBSTR, "substr", 1},
	OP_LEFT:   {OP_LEFT, "left", 1},
	OP_RIGHT:  {OP_RIGHT, "right", 1},
	OP_SIZE:   {OP_SIZE, "size", 1},

	// Bitwise logic opcodes.
	OP_INVERT:      {OP_INVERT, "invert", 1},
	OP_AND:         {OP_AND, "and", 1},
	OP_OR:          {OP_OR, "or", 1},
	OP_XOR:         {OP_XOR, "xor", 1},
	OP_EQUAL:       {OP_EQUAL, "equal", 1},
	OP_EQUALVERIFY: {OP_EQUALVERIFY, "equalverify", 1},
	OP_RESERVED1:   {OP_RESERVED1, "reserved1", 1},
	OP_RESERVED2:   {OP_RESERVED2, "reserved2", 1},

	// Numeric related opcodes.
	OP_1ADD:               {OP_1ADD, "1add", 1},
	OP_1SUB:               {OP_1SUB, "1sub", 1},
	OP_2MUL:               {OP_2MUL, "2mul", 1},
	OP_2DIV:               {OP_2DIV, "2div", 1},
	OP_NEGATE:             {OP_NEGATE, "negate", 1},
	OP_ABS:                {OP_ABS, "abs", 1},
	OP_NOT:                {OP_NOT, "not", 1},
	OP_0NOTEQUAL:          {OP_0NOTEQUAL, "0notequal", 1},
	OP_ADD:                {OP_ADD, "add", 1},
	OP_SUB:                {OP_SUB, "sub", 1},
	OP_MUL:                {OP_MUL, "mul", 1},
	OP_DIV:                {OP_DIV, "div", 1},
	OP_MOD:                {OP_MOD, "mod", 1},
	OP_LSHIFT:             {OP_LSHIFT, "lshift", 1},
	OP_RSHIFT:             {OP_RSHIFT, "rshift", 1},
	OP_BOOLAND:            {OP_BOOLAND, "booland", 1},
	OP_BOOLOR:             {OP_BOOLOR, "boolor", 1},
	OP_NUMEQUAL:           {OP_NUMEQUAL, "numequal", 1},
	OP_NUMEQUALVERIFY:     {OP_NUMEQUALVERIFY, "numequalverify", 1},
	OP_NUMNOTEQUAL:        {OP_NUMNOTEQUAL, "numnotequal", 1},
	OP_LESSTHAN:           {OP_LESSTHAN, "lessthan", 1},
	OP_GREATERTHAN:        {OP_GREATERTHAN, "greaterthan", 1},
	OP_LESSTHANOREQUAL:    {OP_LESSTHANOREQUAL, "lessthanorequal", 1},
	OP_GREATERTHANOREQUAL: {OP_GREATERTHANOREQUAL, "greaterthanorequal", 1},
	OP_MIN:                {OP_MIN, "min", 1},
	OP_MAX:                {OP_MAX, "max", 1},
	OP_WITHIN:             {OP_WITHIN, "within", 1},

	// Crypto opcodes.
	OP_RIPEMD160:           {OP_RIPEMD160, "ripemd160", 1},
	OP_SHA1:                {OP_SHA1, "sha1", 1},
	OP_SHA256:              {OP_SHA256, "sha256", 1},
	OP_HASH160:             {OP_HASH160, "hash160", 1},
	OP_HASH256:             {OP_HASH256, "hash256", 1},
	OP_CODESEPARATOR:       {OP_CODESEPARATOR, "codeseparator", 1},
	OP_CHECKSIG:            {OP_CHECKSIG, "checksig", 1},
	OP_CHECKSIGVERIFY:      {OP_CHECKSIGVERIFY, "checksigverify", 1},
	OP_CHECKMULTISIG:       {OP_CHECKMULTISIG, "checkmultisig", 1},
	OP_CHECKMULTISIGVERIFY: {OP_CHECKMULTISIGVERIFY, "checkmultisigverify", 1},

	// Reserved opcodes.
	OP_NOP1:  {OP_NOP1, "nop1", 1},
	OP_NOP2:  {OP_NOP2, "nop2", 1},
	OP_NOP3:  {OP_NOP3, "nop3", 1},
	OP_NOP4:  {OP_NOP4, "nop4", 1},
	OP_NOP5:  {OP_NOP5, "nop5", 1},
	OP_NOP6:  {OP_NOP6, "nop6", 1},
	OP_NOP7:  {OP_NOP7, "nop7", 1},
	OP_NOP8:  {OP_NOP8, "nop8", 1},
	OP_NOP9:  {OP_NOP9, "nop9", 1},
	OP_NOP10: {OP_NOP10, "nop10", 1},
}

// opcodeForkNames maps opcodes whose mnemonic changed under a soft fork to
// the fork bit that activates the new spelling.  New renames add rows here.
var opcodeForkNames = map[byte]struct {
	fork RuleFork
	name string
}{
	OP_NOP2: {ForkBip65, "checklocktimeverify"},
	OP_NOP3: {ForkBip112, "checksequenceverify"},
}

// opcodeAliases lists accepted alternate spellings for the mnemonic parser
// beyond the canonical and fork-gated names.
var opcodeAliases = map[string]byte{
	"0":               OP_0,
	"push_0":          OP_0,
	"false":           OP_FALSE,
	"true":            OP_TRUE,
	"push_negative_1": OP_1NEGATE,
	"1negate":         OP_1NEGATE,
}

// opcodeByName maps every accepted mnemonic spelling back to its opcode
// value.  It is derived from opcodeArray, opcodeForkNames, and
// opcodeAliases during initialization.
var opcodeByName = make(map[string]byte)

func init() {
	for value := 0; value < 256; value++ {
		opcodeByName[OpcodeName(byte(value), NoForks)] = byte(value)
	}
	for value, alt := range opcodeForkNames {
		opcodeByName[alt.name] = value
	}
	for name, value := range opcodeAliases {
		opcodeByName[name] = value
	}
}

// OpcodeName returns the mnemonic of the passed opcode.  Opcodes renamed by
// a soft fork render under the new name when the corresponding bit of
// activeForks is set.  Opcode values with no assigned mnemonic render as
// 0x-prefixed lowercase hex so every value has a stable, parseable spelling.
func OpcodeName(op byte, activeForks RuleFork) string {
	if alt, ok := opcodeForkNames[op]; ok && activeForks&alt.fork != 0 {
		return alt.name
	}
	if name := opcodeArray[op].name; name != "" {
		return name
	}
	return fmt.Sprintf("0x%02x", op)
}

// OpcodeFromName returns the opcode for the passed mnemonic, accepting
// canonical names, fork-gated alternates, and the historic aliases.  The
// second return is false for unknown mnemonics.
func OpcodeFromName(name string) (byte, bool) {
	op, ok := opcodeByName[name]
	return op, ok
}

// IsPushOpcode returns whether or not the passed opcode places data on the
// stack.  This covers direct-length pushes, size-prefixed pushes, and the
// numeric pushes, but not OP_RESERVED even though its value falls in the
// same range.
func IsPushOpcode(op byte) bool {
	return op <= OP_16 && op != OP_RESERVED
}

// IsCountedOpcode returns whether or not the passed opcode counts against
// the per-script opcode budget.  Every non-push opcode above OP_16 does.
func IsCountedOpcode(op byte) bool {
	return op > OP_16
}

// IsNumericOpcode returns whether or not the passed opcode pushes a small
// integer constant with no payload bytes.
func IsNumericOpcode(op byte) bool {
	return op == OP_1NEGATE || isSmallInt(op)
}

// IsPositiveOpcode returns whether or not the passed opcode pushes one of
// the positive constants 1 through 16.
func IsPositiveOpcode(op byte) bool {
	return op >= OP_1 && op <= OP_16
}

// IsOpcodeDisabled returns whether or not the opcode is disabled and thus is
// always bad to see in the instruction stream (even if turned off by a
// conditional).
func IsOpcodeDisabled(op byte) bool {
	switch op {
	case OP_CAT:
		return true
	case OP_SUBSTR:
		return true
	case OP_LEFT:
		return true
	case OP_RIGHT:
		return true
	case OP_INVERT:
		return true
	case OP_AND:
		return true
	case OP_OR:
		return true
	case OP_XOR:
		return true
	case OP_2MUL:
		return true
	case OP_2DIV:
		return true
	case OP_MUL:
		return true
	case OP_DIV:
		return true
	case OP_MOD:
		return true
	case OP_LSHIFT:
		return true
	case OP_RSHIFT:
		return true
	default:
		return false
	}
}

// IsOpcodeConditional returns whether or not the opcode participates in
// conditional control flow.
func IsOpcodeConditional(op byte) bool {
	switch op {
	case OP_IF:
		return true
	case OP_NOTIF:
		return true
	case OP_ELSE:
		return true
	case OP_ENDIF:
		return true
	case OP_VERIF:
		return true
	case OP_VERNOTIF:
		return true
	default:
		return false
	}
}

// OpcodeFromPositive converts a value in [1..16] to the corresponding
// numeric push opcode.  Out-of-range values return OP_INVALIDOPCODE.
func OpcodeFromPositive(value uint8) byte {
	if value < 1 || value > 16 {
		return OP_INVALIDOPCODE
	}
	return OP_1 + value - 1
}

// OpcodeToPositive converts a numeric push opcode in [OP_1..OP_16] to its
// integer value.  Other opcodes return 0.
func OpcodeToPositive(op byte) uint8 {
	if !IsPositiveOpcode(op) {
		return 0
	}
	return op - OP_1 + 1
}

// isSmallInt returns whether or not the opcode is considered a small integer,
// which is an OP_0, or OP_1 through OP_16.
func isSmallInt(op byte) bool {
	return op == OP_0 || (op >= OP_1 && op <= OP_16)
}

// asSmallInt returns the passed opcode, which must be true according to
// isSmallInt, as an integer.
func asSmallInt(op byte) int {
	if op == OP_0 {
		return 0
	}
	return int(op - (OP_1 - 1))
}

// pushPrefixWidth returns the width in bytes of the length prefix the passed
// opcode carries on the wire: 1, 2, or 4 for the size-prefixed pushes and 0
// for everything else.
func pushPrefixWidth(op byte) int {
	switch op {
	case OP_PUSHDATA1:
		return 1
	case OP_PUSHDATA2:
		return 2
	case OP_PUSHDATA4:
		return 4
	default:
		return 0
	}
}
