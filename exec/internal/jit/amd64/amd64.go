// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package amd64 holds literal x86-64 System V encoding helpers for the
// tape-machine JIT. Each function returns the exact byte sequence for one
// opcode, matching spec.md §4.4's table; this mirrors the hand-rolled
// instruction encoders in other_examples' lcox74/bfcc
// (internal/codegen/linux/x86_64.go and pkg/amd64) rather than routing
// through an assembler builder library — the spec's contract is the
// literal bytes themselves, not "whatever an assembler happens to emit".
package amd64

import "encoding/binary"

// le32 returns the little-endian 4-byte encoding of n.
func le32(n uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, n)
	return b
}

// Right encodes "add rdi, imm32".
func Right(n uint32) []byte {
	return append([]byte{0x48, 0x81, 0xC7}, le32(n)...)
}

// Left encodes "sub rdi, imm32".
func Left(n uint32) []byte {
	return append([]byte{0x48, 0x81, 0xEF}, le32(n)...)
}

// Increment encodes "add byte[rdi], imm8".
func Increment(delta uint8) []byte {
	return []byte{0x80, 0x07, delta}
}

// Decrement encodes "sub byte[rdi], imm8".
func Decrement(delta uint8) []byte {
	return []byte{0x80, 0x2F, delta}
}

// Output encodes a write(1, rsi, 1) syscall sequence, with RSI holding a
// copy of the tape cursor, that writes the current cell to stdout. RDI is
// the live tape cursor but must hold the file descriptor during the call,
// so it is saved in RSI (which is also the syscall's buffer argument) and
// restored from it afterward; the kernel clobbers RAX/RCX/R11.
func Output() []byte {
	return []byte{
		0x48, 0x89, 0xFE, // mov rsi, rdi
		0x48, 0xC7, 0xC0, 0x01, 0x00, 0x00, 0x00, // mov rax, 1 (sys_write)
		0x48, 0xC7, 0xC7, 0x01, 0x00, 0x00, 0x00, // mov rdi, 1 (stdout)
		0x48, 0xC7, 0xC2, 0x01, 0x00, 0x00, 0x00, // mov rdx, 1
		0x0F, 0x05, // syscall
		0x48, 0x89, 0xF7, // mov rdi, rsi
	}
}

// Input encodes a read(0, rsi, 1) syscall sequence that reads one byte
// from stdin into the current cell, restoring RDI the same way Output
// does.
func Input() []byte {
	return []byte{
		0x48, 0x89, 0xFE, // mov rsi, rdi
		0x48, 0xC7, 0xC0, 0x00, 0x00, 0x00, 0x00, // mov rax, 0 (sys_read)
		0x48, 0xC7, 0xC7, 0x00, 0x00, 0x00, 0x00, // mov rdi, 0 (stdin)
		0x48, 0xC7, 0xC2, 0x01, 0x00, 0x00, 0x00, // mov rdx, 1
		0x0F, 0x05, // syscall
		0x48, 0x89, 0xF7, // mov rdi, rsi
	}
}

// JumpIfZeroPlaceholder encodes "cmp byte[rdi],0 ; je rel32" with the
// rel32 zeroed; the caller patches it once the jump target is known. The
// trailing rel32 begins at RelDisplacementOffset (5) within the 9-byte
// sequence.
func JumpIfZeroPlaceholder() []byte {
	return []byte{0x80, 0x3F, 0x00, 0x0F, 0x84, 0x00, 0x00, 0x00, 0x00}
}

// JumpIfNonZeroPlaceholder encodes "cmp byte[rdi],0 ; jne rel32" with the
// rel32 zeroed.
func JumpIfNonZeroPlaceholder() []byte {
	return []byte{0x80, 0x3F, 0x00, 0x0F, 0x85, 0x00, 0x00, 0x00, 0x00}
}

// RelDisplacementOffset is the byte offset of the rel32 field within
// either placeholder sequence above.
const RelDisplacementOffset = 5

// Ret encodes a bare "ret".
func Ret() []byte {
	return []byte{0xC3}
}
