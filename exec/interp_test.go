// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/go-interpreter/brainfuck/bytecode"
	"github.com/go-interpreter/brainfuck/parser"
)

func mustParse(t *testing.T, src string) []bytecode.Instr {
	t.Helper()
	prog, err := parser.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return prog
}

func TestHelloWorld(t *testing.T) {
	const src = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."
	prog := mustParse(t, src)

	var out bytes.Buffer
	if err := Run(prog, strings.NewReader(""), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := out.String(), "Hello World!\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestEchoIncrement(t *testing.T) {
	prog := mustParse(t, ",+.")

	var out bytes.Buffer
	if err := Run(prog, strings.NewReader("A"), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := out.Bytes(), []byte{'B'}; !bytes.Equal(got, want) {
		t.Errorf("stdout = %v, want %v", got, want)
	}
}

func TestCatUntilNUL(t *testing.T) {
	prog := mustParse(t, ",[.,]")

	var out bytes.Buffer
	if err := Run(prog, strings.NewReader("abc\x00"), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := out.String(), "abc"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestCursorUnderflowNoOutput(t *testing.T) {
	prog := mustParse(t, "<")

	var out bytes.Buffer
	err := Run(prog, strings.NewReader(""), &out)
	var underflow *CursorUnderflowError
	if err == nil {
		t.Fatal("Run: got nil error, want CursorUnderflowError")
	}
	if !asUnderflow(err, &underflow) {
		t.Fatalf("Run err = %v (%T), want *CursorUnderflowError", err, err)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
}

func asUnderflow(err error, target **CursorUnderflowError) bool {
	e, ok := err.(*CursorUnderflowError)
	if ok {
		*target = e
	}
	return ok
}

func TestCellArithmeticWraps(t *testing.T) {
	src := strings.Repeat("+", 256)
	prog := mustParse(t, src)

	in := NewInterp(prog, strings.NewReader(""), &bytes.Buffer{})
	if err := in.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := in.Tape().Current(); got != 0 {
		t.Errorf("cell after 256 increments = %d, want 0", got)
	}
}

func TestDecrementUnderflowsCell(t *testing.T) {
	in := NewInterp(mustParse(t, "-"), strings.NewReader(""), &bytes.Buffer{})
	if err := in.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := in.Tape().Current(); got != 255 {
		t.Errorf("cell after one decrement from 0 = %d, want 255", got)
	}
}

func TestEmptyLoopIsNoOp(t *testing.T) {
	in := NewInterp(mustParse(t, "[]"), strings.NewReader(""), &bytes.Buffer{})
	if err := in.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := in.Tape().Cursor(); got != 0 {
		t.Errorf("cursor after empty loop = %d, want 0", got)
	}
}

func TestInputEOFIsIOError(t *testing.T) {
	err := Run(mustParse(t, ","), strings.NewReader(""), &bytes.Buffer{})
	if !errors.Is(err, ErrIO) {
		t.Fatalf("Run err = %v, want IO error", err)
	}
}
