// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64 && linux

package jit

import (
	"unsafe"

	"github.com/go-interpreter/brainfuck/bytecode"
)

// Program is a compiled, sealed, ready-to-run native tape-machine program.
type Program struct {
	page *ExecPage
}

// Compile encodes prog to x86-64 machine code and installs it on an
// executable page. The returned Program owns that page until Release is
// called.
func Compile(prog []bytecode.Instr) (*Program, error) {
	mem, err := Encode(prog)
	if err != nil {
		return nil, err
	}
	page, err := Seal(mem)
	if err != nil {
		return nil, err
	}
	return &Program{page: page}, nil
}

// Run invokes the compiled program against tape, whose first byte is
// handed to the native code as the live tape-cursor pointer in RDI.
func (p *Program) Run(tape unsafe.Pointer) {
	p.page.Invoke(tape)
}

// Release unmaps the executable page. Run must not be called again
// afterward.
func (p *Program) Release() error {
	return p.page.Release()
}
