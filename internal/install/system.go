package install

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// Command is a single subprocess invocation.
type Command struct {
	Name   string
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// System abstracts process execution needed by the installer.
// Tests substitute a recording implementation so no real installer is spawned.
type System interface {
	Run(ctx context.Context, cmd Command) error
}

// RealSystem implements System using os/exec.
type RealSystem struct{}

// Run starts cmd and blocks until it exits. The child inherits the environment
// and working directory of the current process.
func (RealSystem) Run(ctx context.Context, cmd Command) error {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Stdin = cmd.Stdin
	c.Stdout = cmd.Stdout
	c.Stderr = cmd.Stderr
	c.Env = os.Environ()
	return c.Run()
}
