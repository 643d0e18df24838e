// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64 && linux

package exec

import (
	"unsafe"

	"github.com/go-interpreter/brainfuck/bytecode"
	"github.com/go-interpreter/brainfuck/exec/internal/jit"
)

// RunJIT compiles prog to native x86-64 code, installs it on an
// executable page, and invokes it against a freshly allocated tape. The
// JIT never falls back to the interpreter: any failure to allocate or
// protect the code page aborts before the generated code is invoked; any
// fault inside the generated code itself (e.g. a tape overrun that the
// interpreter would have caught as CursorOverflowError) is an uncaught
// host-level memory fault, per spec.md §4.6.
func RunJIT(prog []bytecode.Instr) error {
	program, err := jit.Compile(prog)
	if err != nil {
		return err
	}

	tape := NewTape()
	program.Run(unsafe.Pointer(tape.BasePointer()))

	return program.Release()
}
