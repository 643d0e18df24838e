// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser turns tape-machine source bytes into linked bytecode.
//
// The approach mirrors the teacher's exec/internal/compile.Compile: a single
// forward pass over the input that emits a flat instruction stream and
// resolves control-flow targets as it goes, rather than building and
// walking an intermediate AST.
package parser

import "github.com/go-interpreter/brainfuck/bytecode"

// Parse scans source left to right and returns the run-length-encoded,
// bracket-linked bytecode. Bytes outside `> < + - . , [ ]` are comments and
// are skipped. Returns bytecode.ErrUnbalancedBrackets if brackets are not
// balanced.
func Parse(source []byte) ([]bytecode.Instr, error) {
	var prog []bytecode.Instr
	var stack []int

	n := len(source)
	for i := 0; i < n; {
		c := source[i]
		switch c {
		case '>', '<':
			j := i
			for j < n && source[j] == c {
				j++
			}
			count := uint32(j - i)
			op := bytecode.Right
			if c == '<' {
				op = bytecode.Left
			}
			prog = append(prog, bytecode.Instr{Op: op, Count: count})
			i = j

		case '+', '-':
			j := i
			for j < n && source[j] == c {
				j++
			}
			delta := uint8((j - i) % 256)
			op := bytecode.Increment
			if c == '-' {
				op = bytecode.Decrement
			}
			prog = append(prog, bytecode.Instr{Op: op, Delta: delta})
			i = j

		case '.':
			prog = append(prog, bytecode.Instr{Op: bytecode.Output})
			i++

		case ',':
			prog = append(prog, bytecode.Instr{Op: bytecode.Input})
			i++

		case '[':
			k := len(prog)
			stack = append(stack, k)
			// Placeholder; overwritten with the real target once the
			// matching `]` swaps it into place below.
			prog = append(prog, bytecode.Instr{Op: bytecode.JumpIfNonZero, Target: k + 1})
			i++

		case ']':
			if len(stack) == 0 {
				return nil, bytecode.ErrUnbalancedBrackets
			}
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			k := len(prog)

			prog = append(prog, bytecode.Instr{Op: bytecode.JumpIfZero, Target: k + 1})
			// Swap: j now holds the zero-test executed on loop entry,
			// k holds the nonzero-test executed at the bottom.
			prog[j], prog[k] = prog[k], prog[j]
			prog[j].Target = k + 1
			prog[k].Target = j + 1
			i++

		default:
			// Comment byte; ignored.
			i++
		}
	}

	if len(stack) != 0 {
		return nil, bytecode.ErrUnbalancedBrackets
	}
	return prog, nil
}
