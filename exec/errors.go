// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"errors"
	"fmt"
)

// ErrIO is wrapped around the underlying stdin error by Input failures,
// including EOF: EOF during Input surfaces as an IO failure rather than
// leaving the cell unchanged. Output write errors are not reported.
var ErrIO = errors.New("exec: io error")

// CursorOverflowError is returned when a Right instruction would move the
// cursor to or past TapeSize.
type CursorOverflowError struct {
	Cursor int
	Step   int
}

func (e *CursorOverflowError) Error() string {
	return fmt.Sprintf("exec: cursor overflow: %d + %d >= %d", e.Cursor, e.Step, TapeSize)
}

// CursorUnderflowError is returned when a Left instruction would move the
// cursor below 0.
type CursorUnderflowError struct {
	Cursor int
	Step   int
}

func (e *CursorUnderflowError) Error() string {
	return fmt.Sprintf("exec: cursor underflow: %d - %d < 0", e.Cursor, e.Step)
}
