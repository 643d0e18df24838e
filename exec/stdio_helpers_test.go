// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64 && linux

package exec_test

import (
	"io"
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

// captureStdout redirects the process's real file descriptor 1 to a pipe
// for the duration of fn and returns what was written to it, and feeds
// stdin (over real file descriptor 0) from the given string. This is
// needed because the JIT's Output/Input encodings (spec.md §4.4) are raw
// write(1, ...)/read(0, ...) syscalls baked into the generated machine
// code — they never go through Go's os.Stdout/os.Stdin variables, so
// exercising them in a test means swapping the underlying OS descriptors
// themselves.
func captureStdout(t *testing.T, stdin string, fn func()) string {
	t.Helper()

	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe (stdout): %v", err)
	}
	savedStdout, err := unix.Dup(unix.Stdout)
	if err != nil {
		t.Fatalf("dup stdout: %v", err)
	}
	if err := unix.Dup2(int(outW.Fd()), unix.Stdout); err != nil {
		t.Fatalf("dup2 stdout: %v", err)
	}
	outW.Close()

	inR, inW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe (stdin): %v", err)
	}
	savedStdin, err := unix.Dup(unix.Stdin)
	if err != nil {
		t.Fatalf("dup stdin: %v", err)
	}
	if err := unix.Dup2(int(inR.Fd()), unix.Stdin); err != nil {
		t.Fatalf("dup2 stdin: %v", err)
	}
	inR.Close()

	go func() {
		io.WriteString(inW, stdin)
		inW.Close()
	}()

	outCh := make(chan string, 1)
	go func() {
		data, _ := io.ReadAll(outR)
		outCh <- string(data)
	}()

	fn()

	if err := unix.Dup2(savedStdout, unix.Stdout); err != nil {
		t.Fatalf("restore stdout: %v", err)
	}
	unix.Close(savedStdout)
	if err := unix.Dup2(savedStdin, unix.Stdin); err != nil {
		t.Fatalf("restore stdin: %v", err)
	}
	unix.Close(savedStdin)

	return <-outCh
}
