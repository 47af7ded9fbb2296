// Copyright (c) 2016 Eric Lagergren
// Use of this source code is governed by the GPL v3 or later.

// Package echo formats argument lists the way the Unix echo utility
// does: values joined by a separator, followed by a terminator.
package echo

import (
	"io"
	"strings"
)

// Defaults used by Run, matching echo(1).
const (
	DefaultSeparator  = " "
	DefaultTerminator = "\n"
)

// Format joins values with sep and appends term. No separator is
// written before the first value or after the last, so an empty list
// formats to just term.
func Format(values []string, sep, term string) string {
	return strings.Join(values, sep) + term
}

// Fprint writes the formatted values to w in a single write. The
// write error, if any, is returned as-is.
func Fprint(w io.Writer, values []string, sep, term string) error {
	_, err := io.WriteString(w, Format(values, sep, term))
	return err
}

// Ctx holds the streams a command writes to.
type Ctx struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run echoes args to ctx.Stdout separated by single spaces and
// terminated by a newline. Every element of args is positional, even
// ones that look like flags. With no args it writes only the newline.
func Run(ctx Ctx, args ...string) error {
	return Fprint(ctx.Stdout, args, DefaultSeparator, DefaultTerminator)
}
