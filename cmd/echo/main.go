// Copyright (c) 2016 Eric Lagergren
// Use of this source code is governed by the GPL v3 or later.

package main

import (
	"fmt"
	"os"

	"github.com/ericlagergren/echo"
)

func main() {
	ctx := echo.Ctx{Stdout: os.Stdout, Stderr: os.Stderr}
	if err := echo.Run(ctx, os.Args[1:]...); err != nil {
		fmt.Fprintln(ctx.Stderr, "echo:", err)
		os.Exit(1)
	}
}
