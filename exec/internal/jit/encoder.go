// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64 && linux

package jit

import (
	"encoding/binary"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/go-interpreter/brainfuck/bytecode"
	"github.com/go-interpreter/brainfuck/exec/internal/jit/amd64"
)

func le32Signed(n int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(n))
	return b
}

// Encode emits x86-64 machine code for prog into a fresh CodeBuffer and
// returns the backing region, still writable, ready to be sealed with
// Seal. Jump pairs are linked per spec.md §4.4: a JumpIfZero pushes the
// offset just past its rel32 field; its matching JumpIfNonZero pops that
// offset and patches both displacements as signed negatives of each
// other.
func Encode(prog []bytecode.Instr) (mmap.MMap, error) {
	buf, err := NewCodeBuffer()
	if err != nil {
		return nil, err
	}

	var stack []int
	for _, instr := range prog {
		switch instr.Op {
		case bytecode.Right:
			err = buf.Extend(amd64.Right(instr.Count))
		case bytecode.Left:
			err = buf.Extend(amd64.Left(instr.Count))
		case bytecode.Increment:
			err = buf.Extend(amd64.Increment(instr.Delta))
		case bytecode.Decrement:
			err = buf.Extend(amd64.Decrement(instr.Delta))
		case bytecode.Output:
			err = buf.Extend(amd64.Output())
		case bytecode.Input:
			err = buf.Extend(amd64.Input())

		case bytecode.JumpIfZero:
			if err = buf.Extend(amd64.JumpIfZeroPlaceholder()); err != nil {
				break
			}
			stack = append(stack, buf.Len())

		case bytecode.JumpIfNonZero:
			if err = buf.Extend(amd64.JumpIfNonZeroPlaceholder()); err != nil {
				break
			}
			if len(stack) == 0 {
				return nil, bytecode.ErrUnbalancedBrackets
			}
			a := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			b := buf.Len()
			rel := int32(b - a)
			if err = buf.Patch(a-4, le32Signed(rel)); err != nil {
				break
			}
			err = buf.Patch(b-4, le32Signed(-rel))
		}
		if err != nil {
			return nil, err
		}
	}

	if err := buf.Push(amd64.Ret()[0]); err != nil {
		return nil, err
	}
	if len(stack) != 0 {
		return nil, bytecode.ErrUnbalancedBrackets
	}
	return buf.Leak(), nil
}
