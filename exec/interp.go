// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"
	"io"

	"github.com/go-interpreter/brainfuck/bytecode"
)

// Interp walks linked bytecode against a 30000-byte tape, one instruction
// pointer at a time. The dispatch loop mirrors the teacher's
// exec/vm.go:execCode: a for loop over an instruction index with a switch
// on the opcode tag, no recursion, no AST.
type Interp struct {
	prog   []bytecode.Instr
	tape   *Tape
	stdin  io.Reader
	stdout io.Writer
}

// NewInterp creates an interpreter for prog, reading Input bytes from stdin
// and writing Output bytes to stdout.
func NewInterp(prog []bytecode.Instr, stdin io.Reader, stdout io.Writer) *Interp {
	return &Interp{
		prog:   prog,
		tape:   NewTape(),
		stdin:  stdin,
		stdout: stdout,
	}
}

// Tape exposes the interpreter's tape, mainly for tests that want to
// inspect cell contents after a run.
func (in *Interp) Tape() *Tape {
	return in.tape
}

// Run executes the program to completion or until the first failure. IP
// runs past the last instruction on success.
func (in *Interp) Run() error {
	ip := 0
	n := len(in.prog)
	readBuf := make([]byte, 1)

	for ip < n {
		instr := in.prog[ip]
		switch instr.Op {
		case bytecode.Right:
			if err := in.tape.Right(instr.Count); err != nil {
				return err
			}
			ip++

		case bytecode.Left:
			if err := in.tape.Left(instr.Count); err != nil {
				return err
			}
			ip++

		case bytecode.Increment:
			in.tape.SetCurrent(in.tape.Current() + instr.Delta)
			ip++

		case bytecode.Decrement:
			in.tape.SetCurrent(in.tape.Current() - instr.Delta)
			ip++

		case bytecode.Output:
			// Best-effort: write errors are not surfaced, matching spec.md
			// §4.2 (stdout is assumed line-buffered by the host).
			_, _ = in.stdout.Write([]byte{in.tape.Current()})
			ip++

		case bytecode.Input:
			if _, err := io.ReadFull(in.stdin, readBuf); err != nil {
				return fmt.Errorf("%w: %v", ErrIO, err)
			}
			in.tape.SetCurrent(readBuf[0])
			ip++

		case bytecode.JumpIfZero:
			if in.tape.Current() == 0 {
				ip = instr.Target
			} else {
				ip++
			}

		case bytecode.JumpIfNonZero:
			if in.tape.Current() != 0 {
				ip = instr.Target
			} else {
				ip++
			}
		}
	}
	return nil
}

// Run is a convenience wrapper around NewInterp(prog, stdin,
// stdout).Run(), for callers that don't need the tape afterward.
func Run(prog []bytecode.Instr, stdin io.Reader, stdout io.Writer) error {
	return NewInterp(prog, stdin, stdout).Run()
}
