// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64 && linux

package jit

import (
	"fmt"
	"unsafe"

	mmap "github.com/edsrzf/mmap-go"
	"golang.org/x/sys/unix"
)

// addrOf returns the address of m's first byte, or 0 for an empty/nil
// region.
func addrOf(m mmap.MMap) uintptr {
	if len(m) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&m[0]))
}

// ExecPage is a sealed, executable code page produced from a CodeBuffer.
// It is the "page installer" half of spec.md §4.5: mmap-go performs the
// initial writable mapping (inside CodeBuffer), and ExecPage flips that
// same mapping to read+execute with golang.org/x/sys/unix.Mprotect, since
// mmap-go's own API exposes no re-protect operation.
type ExecPage struct {
	mem   mmap.MMap
	entry unsafe.Pointer
}

// Seal takes ownership of mem (normally produced by CodeBuffer.Leak) and
// switches its protection from read+write to read+execute. mem must end
// in a 0xC3 (ret) byte per the JIT encoder's contract.
func Seal(mem mmap.MMap) (*ExecPage, error) {
	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		return nil, &GenericError{Message: "failed to set memory protection: " + err.Error()}
	}
	return &ExecPage{mem: mem, entry: unsafe.Pointer(&mem[0])}, nil
}

// Invoke calls the native entry point with tape as its single argument,
// which the generated code expects in RDI. Control returns only through
// the trampoline, which returns only after the generated code's trailing
// RET.
func (p *ExecPage) Invoke(tape unsafe.Pointer) {
	jitcall(p.entry, tape)
}

// Release restores write permission (some allocators require a page be
// writable before it is unmapped — spec.md §9's open question, resolved
// here by always restoring it) and unmaps the page.
func (p *ExecPage) Release() error {
	if p.mem == nil {
		return nil
	}
	if err := unix.Mprotect(p.mem, unix.PROT_READ|unix.PROT_WRITE); err != nil {
		return &GenericError{Message: "failed to restore memory protection: " + err.Error()}
	}
	err := p.mem.Unmap()
	p.mem = nil
	if err != nil {
		return fmt.Errorf("jit: failed to release code page: %w", err)
	}
	return nil
}
