// Package install runs the installer plan one step at a time and stops at the first failure.
package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/conn-castle/pyprep/internal/messages"
	"github.com/conn-castle/pyprep/internal/plan"
)

// Options controls installer behavior.
type Options struct {
	System System

	// Stdin, Stdout and Stderr are handed to every step. Nil means the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Progress receives step banners. Nil means Stderr.
	Progress io.Writer
	Quiet    bool
	Color    bool
}

type installer struct {
	sys      System
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	progress io.Writer
	quiet    bool
	banner   *color.Color
	command  *color.Color
	done     *color.Color
}

// Run executes every step of p in order, blocking on each subprocess.
// It returns a *StepError for the first step that fails; no later step is started.
func Run(ctx context.Context, p plan.Plan, opts Options) error {
	if len(p.Steps) == 0 {
		return errors.New(messages.InstallerEmptyPlan)
	}
	inst := newInstaller(opts)
	total := len(p.Steps)
	for i, step := range p.Steps {
		inst.announce(i+1, total, p.Command, step)
		err := inst.sys.Run(ctx, Command{
			Name:   p.Command,
			Args:   append([]string(nil), step.Args...),
			Stdin:  inst.stdin,
			Stdout: inst.stdout,
			Stderr: inst.stderr,
		})
		if err != nil {
			return &StepError{Index: i + 1, Total: total, Step: step, Err: err}
		}
	}
	if !inst.quiet {
		_, _ = inst.done.Fprintf(inst.progress, messages.SequenceDoneFmt, total)
	}
	return nil
}

// DryRun writes the command lines Run would execute, without executing them.
func DryRun(p plan.Plan, out io.Writer) {
	_, _ = io.WriteString(out, messages.DryRunHeader)
	for i, step := range p.Steps {
		_, _ = fmt.Fprintf(out, messages.DryRunLineFmt, i+1, step.CommandLine(p.Command))
	}
}

func newInstaller(opts Options) *installer {
	inst := &installer{
		sys:      opts.System,
		stdin:    opts.Stdin,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
		progress: opts.Progress,
		quiet:    opts.Quiet,
		banner:   color.New(color.FgCyan, color.Bold),
		command:  color.New(color.Faint),
		done:     color.New(color.FgGreen),
	}
	if inst.sys == nil {
		inst.sys = RealSystem{}
	}
	if inst.stdin == nil {
		inst.stdin = os.Stdin
	}
	if inst.stdout == nil {
		inst.stdout = os.Stdout
	}
	if inst.stderr == nil {
		inst.stderr = os.Stderr
	}
	if inst.progress == nil {
		inst.progress = inst.stderr
	}
	for _, c := range []*color.Color{inst.banner, inst.command, inst.done} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return inst
}

func (i *installer) announce(index int, total int, command string, step plan.Step) {
	if i.quiet {
		return
	}
	_, _ = i.banner.Fprintf(i.progress, messages.StepBannerFmt, index, total, step.Title)
	_, _ = i.command.Fprintf(i.progress, messages.StepCommandFmt, step.CommandLine(command))
}
