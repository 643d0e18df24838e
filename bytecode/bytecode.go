// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bytecode defines the instruction representation produced by the
// parser and consumed by both execution back ends.
package bytecode

import "errors"

// ErrUnbalancedBrackets is returned by the parser and by the JIT linker
// when a `]` has no matching `[`, or a `[` is never closed.
var ErrUnbalancedBrackets = errors.New("bytecode: unbalanced brackets")

// Op tags the variant of an Instr.
type Op uint8

const (
	// Right advances the tape cursor by Count.
	Right Op = iota
	// Left retreats the tape cursor by Count.
	Left
	// Increment adds Delta to the current cell, wrapping.
	Increment
	// Decrement subtracts Delta from the current cell, wrapping.
	Decrement
	// Output writes the current cell to stdout.
	Output
	// Input reads one byte from stdin into the current cell.
	Input
	// JumpIfZero sets IP to Target when the current cell is zero.
	JumpIfZero
	// JumpIfNonZero sets IP to Target when the current cell is nonzero.
	JumpIfNonZero
)

// String names the opcode, for debugging and test failure messages.
func (op Op) String() string {
	switch op {
	case Right:
		return "right"
	case Left:
		return "left"
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	case Output:
		return "output"
	case Input:
		return "input"
	case JumpIfZero:
		return "jz"
	case JumpIfNonZero:
		return "jnz"
	default:
		return "unknown"
	}
}

// Instr is one bytecode instruction. The fields used depend on Op:
//
//	Right, Left           -> Count (run length, > 0)
//	Increment, Decrement  -> Delta (mod-256 run length)
//	Output, Input         -> neither field used
//	JumpIfZero, JumpIfNonZero -> Target (index into the same instruction slice)
type Instr struct {
	Op     Op
	Count  uint32
	Delta  uint8
	Target int
}
