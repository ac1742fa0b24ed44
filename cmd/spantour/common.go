package main

import (
	"fmt"
	"io"
	"os"

	"github.com/maruel/subcommands"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// Exit codes.
const (
	exitOK    = 0
	exitUsage = 1
	exitError = 2
)

// commandBase carries the flags shared by every subcommand.
type commandBase struct {
	subcommands.CommandRunBase
	in string
}

func (c *commandBase) registerBaseFlags() {
	c.Flags.StringVar(&c.in, "in", "-", `JSON5 input file, "-" for stdin`)
}

// openInput returns the configured input stream. The caller closes it.
func (c *commandBase) openInput() (io.ReadCloser, error) {
	if c.in == "" || c.in == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(c.in)
}

// decode reads all of r and unmarshals it as JSON5 into v.
func decode(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if err := json5.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	return nil
}

// encode writes v as a single line of JSON.
func encode(w io.Writer, v any) error {
	data, err := json5.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)

	return err
}

// run wires input, the subcommand body and error reporting together.
func (c *commandBase) run(a subcommands.Application, args []string, body func(io.Reader, io.Writer) error) int {
	if len(args) != 0 {
		fmt.Fprintf(a.GetErr(), "%s: unexpected arguments %q\n", a.GetName(), args)
		return exitUsage
	}
	in, err := c.openInput()
	if err != nil {
		fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), err)
		return exitError
	}
	defer in.Close()

	if err := body(in, a.GetOut()); err != nil {
		fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), err)
		return exitError
	}

	return exitOK
}
