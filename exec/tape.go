// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

// TapeSize is the fixed number of cells on the data tape.
const TapeSize = 30000

// Tape is the 30000-byte data region a tape-machine program executes
// against. The zero value is an all-zero tape with the cursor at 0, which
// is what NewTape returns.
type Tape struct {
	cells  [TapeSize]byte
	cursor int
}

// NewTape returns a tape of TapeSize zero cells with the cursor at 0.
func NewTape() *Tape {
	return &Tape{}
}

// Cursor returns the current cell index.
func (t *Tape) Cursor() int {
	return t.cursor
}

// Current returns the byte at the current cursor position.
func (t *Tape) Current() byte {
	return t.cells[t.cursor]
}

// SetCurrent overwrites the byte at the current cursor position.
func (t *Tape) SetCurrent(b byte) {
	t.cells[t.cursor] = b
}

// Right advances the cursor by n, failing with CursorOverflowError if that
// would move it to or past TapeSize.
func (t *Tape) Right(n uint32) error {
	if t.cursor+int(n) >= TapeSize {
		return &CursorOverflowError{Cursor: t.cursor, Step: int(n)}
	}
	t.cursor += int(n)
	return nil
}

// Left retreats the cursor by n, failing with CursorUnderflowError if that
// would move it below 0.
func (t *Tape) Left(n uint32) error {
	if t.cursor < int(n) {
		return &CursorUnderflowError{Cursor: t.cursor, Step: int(n)}
	}
	t.cursor -= int(n)
	return nil
}

// BasePointer is used by the JIT page installer; it exposes the address of
// the first cell so native code can be handed a raw tape pointer. Defined
// here rather than in the jit package so the tape's layout stays a single
// source of truth shared by both back ends.
func (t *Tape) BasePointer() *byte {
	return &t.cells[0]
}
