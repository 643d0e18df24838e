// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64 && linux

package jit

import (
	"testing"
	"unsafe"

	"github.com/go-interpreter/brainfuck/bytecode"
)

func TestCompileRunRelease(t *testing.T) {
	// "++" against a zeroed tape cell: two Increment instructions, each
	// with Delta 1.
	prog := []bytecode.Instr{
		{Op: bytecode.Increment, Delta: 1},
		{Op: bytecode.Increment, Delta: 1},
	}
	p, err := Compile(prog)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	cell := make([]byte, 8)
	p.Run(unsafe.Pointer(&cell[0]))

	if cell[0] != 2 {
		t.Fatalf("cell[0] = %d, want 2", cell[0])
	}
	if err := p.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
}

func TestCompileEmptyProgramIsANoOp(t *testing.T) {
	p, err := Compile(nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	cell := make([]byte, 8)
	p.Run(unsafe.Pointer(&cell[0]))
	if cell[0] != 0 {
		t.Fatalf("cell[0] = %d, want 0", cell[0])
	}
	if err := p.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
}

func TestCompileUnbalancedBracketsFails(t *testing.T) {
	prog := []bytecode.Instr{{Op: bytecode.JumpIfZero, Target: 1}}
	if _, err := Compile(prog); err != bytecode.ErrUnbalancedBrackets {
		t.Fatalf("err = %v, want ErrUnbalancedBrackets", err)
	}
}
