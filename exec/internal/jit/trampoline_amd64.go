// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64 && linux

package jit

import "unsafe"

// jitcall bridges a Go call into the System V calling convention the JIT
// encoder targets: it loads tape into RDI and calls entry. Implemented in
// trampoline_amd64.s because Go's own internal calling convention
// (register-based since Go 1.17) does not match System V, so a bare Go
// function value cannot be pointed at raw machine code directly — this is
// the same bridge the teacher's exec/native_exec.go names jitcall for its
// own (WebAssembly) JIT.
//
//go:noescape
func jitcall(entry, tape unsafe.Pointer)
