// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(amd64 && linux)

package exec

import (
	"errors"

	"github.com/go-interpreter/brainfuck/bytecode"
)

// ErrJITUnsupported is returned by RunJIT on platforms other than
// linux/amd64. The code generator in exec/internal/jit emits raw x86-64
// System V machine code and Linux mmap/mprotect syscalls directly; there
// is no portable fallback, the same stance the teacher took in
// exec/native_compile_nogae.go for non-amd64 builds.
var ErrJITUnsupported = errors.New("exec: JIT back end is only supported on linux/amd64")

// RunJIT always fails on this platform. See ErrJITUnsupported.
func RunJIT(prog []bytecode.Instr) error {
	return ErrJITUnsupported
}
