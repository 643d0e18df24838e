// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64 && linux

package jit

// GenericError reports a JIT allocation or memory-protection failure,
// matching the Generic(message) error kind in spec.md §7 — the JIT's one
// open-ended error kind, since the underlying OS failure modes (mmap
// exhaustion, mprotect rejection) don't reduce to a fixed enumeration the
// way parser/interpreter failures do.
type GenericError struct {
	Message string
}

func (e *GenericError) Error() string {
	return "jit: " + e.Message
}
