// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64 && linux

// Package jit implements the x86-64 code generator, its code buffer, and
// the executable-page lifecycle described in spec.md §4.3-§4.5. It is
// internal to exec because nothing outside the execution package needs to
// see a raw machine-code buffer or an installed page.
package jit

import (
	"fmt"

	mmap "github.com/edsrzf/mmap-go"
)

const (
	pageSize    = 4096
	minCapacity = 8
)

// CodeBuffer is a growable, page-aligned byte buffer that accumulates
// JIT-emitted machine code. Growth is backed directly by anonymous mmap
// regions (never ordinary Go-heap memory) so the buffer's storage can
// later be handed, unchanged, to an ExecPage and have its protection
// flipped to read+execute — mprotect on an arbitrary slice of the Go heap
// is unsafe, since the runtime may pack unrelated objects onto the same
// page. This mirrors the teacher's own MMapAllocator
// (exec/internal/compile/allocator_test.go), reimplemented here without
// wagon's WebAssembly-specific chunk accounting.
type CodeBuffer struct {
	mem    mmap.MMap // backing allocation, length is the current physical capacity
	length int       // bytes actually written
}

// NewCodeBuffer allocates a one-page buffer with zero bytes written.
func NewCodeBuffer() (*CodeBuffer, error) {
	b := &CodeBuffer{}
	if err := b.reserve(minCapacity); err != nil {
		return nil, err
	}
	return b, nil
}

func roundUpToPage(n int) int {
	return ((n + pageSize - 1) / pageSize) * pageSize
}

// reserve ensures the buffer's physical capacity is at least want bytes,
// doubling (at least) the existing mmap region and copying its content
// across, the way CodeBuffer.push is specified to double on exhaustion.
func (b *CodeBuffer) reserve(want int) error {
	if b.mem != nil && len(b.mem) >= want {
		return nil
	}
	newCap := minCapacity
	if b.mem != nil {
		newCap = len(b.mem) * 2
	}
	for newCap < want {
		newCap *= 2
	}
	mem, err := mmap.MapRegion(nil, roundUpToPage(newCap), mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return &GenericError{Message: "failed to allocate code buffer: " + err.Error()}
	}
	if b.mem != nil {
		copy(mem, b.mem[:b.length])
		if err := b.mem.Unmap(); err != nil {
			return &GenericError{Message: "failed to release old code buffer: " + err.Error()}
		}
	}
	b.mem = mem
	return nil
}

// Len returns the number of bytes written so far.
func (b *CodeBuffer) Len() int {
	return b.length
}

// Push appends one byte, growing the buffer first if it is exhausted.
func (b *CodeBuffer) Push(x byte) error {
	if err := b.reserve(b.length + 1); err != nil {
		return err
	}
	b.mem[b.length] = x
	b.length++
	return nil
}

// Extend appends a finite byte sequence.
func (b *CodeBuffer) Extend(bs []byte) error {
	if err := b.reserve(b.length + len(bs)); err != nil {
		return err
	}
	copy(b.mem[b.length:], bs)
	b.length += len(bs)
	return nil
}

// Patch overwrites bytes at [offset, offset+len(bs)). offset+len(bs) must
// be <= Len(); it is used to fill in jump displacements after the target
// address becomes known.
func (b *CodeBuffer) Patch(offset int, bs []byte) error {
	if offset < 0 || offset+len(bs) > b.length {
		return fmt.Errorf("jit: patch out of range: offset=%d len=%d buffer_len=%d", offset, len(bs), b.length)
	}
	copy(b.mem[offset:], bs)
	return nil
}

// BaseAddr returns the address of the first byte of the backing
// allocation, always a multiple of 4096.
func (b *CodeBuffer) BaseAddr() uintptr {
	return addrOf(b.mem)
}

// Leak consumes the buffer, returning its backing mmap region truncated
// to the bytes actually written. The allocation is NOT unmapped — it is
// transferred to the caller (normally an ExecPage). Calling any other
// method on b after Leak is invalid.
func (b *CodeBuffer) Leak() mmap.MMap {
	out := b.mem[:b.length]
	b.mem = nil
	b.length = 0
	return out
}
