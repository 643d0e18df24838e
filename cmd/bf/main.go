// Copyright 2026 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bf runs tape-machine source files with either the bytecode
// interpreter or the native x86-64 JIT.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/go-interpreter/brainfuck/exec"
	"github.com/go-interpreter/brainfuck/parser"
)

// ErrNoPathProvided is the CLI-layer error for a missing source-file
// argument. Neither the parser nor either execution back end know about
// files or arguments (spec.md's Non-goals), so this sentinel lives here.
var ErrNoPathProvided = errors.New("bf: no source file path provided")

func loadProgram(c *cli.Context) ([]byte, error) {
	if c.Args().Len() < 1 {
		return nil, ErrNoPathProvided
	}
	return os.ReadFile(c.Args().First())
}

func runCmd(c *cli.Context) error {
	src, err := loadProgram(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	prog, err := parser.Parse(src)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if err := exec.Run(prog, os.Stdin, os.Stdout); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

func jitCmd(c *cli.Context) error {
	src, err := loadProgram(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	prog, err := parser.Parse(src)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if err := exec.RunJIT(prog); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "bf"
	app.Usage = "execute tape-machine programs with the interpreter or the native JIT"
	app.Action = func(c *cli.Context) error {
		cli.ShowAppHelp(c)
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:      "run",
			Usage:     "execute a program with the bytecode interpreter",
			ArgsUsage: "file",
			Action:    runCmd,
		},
		{
			Name:      "jit",
			Usage:     "compile a program to native x86-64 code and execute it",
			ArgsUsage: "file",
			Action:    jitCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(fmt.Sprintf("bf: %v", err))
	}
}
