package pack

import (
	"io"
	"os"
	"os/exec"
)

// Runner abstracts external command execution so tests can substitute a
// fake that returns canned output and exit codes.
type Runner interface {
	// Output runs name with args in dir and returns its standard output.
	// Standard error passes through to the invoking process.
	Output(dir string, name string, args ...string) (string, error)
	// RunInteractive runs name with args in dir with the invoking process's
	// stdin, stdout, and stderr inherited.
	RunInteractive(dir string, name string, args ...string) error
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct {
	// Stdin, Stdout, and Stderr default to the process streams when nil.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Output runs the command and captures stdout.
func (r ExecRunner) Output(dir string, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stderr = r.stderr()
	out, err := cmd.Output()
	return string(out), err
}

// RunInteractive runs the command wired to the process streams.
func (r ExecRunner) RunInteractive(dir string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.stdin()
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	return cmd.Run()
}

func (r ExecRunner) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

func (r ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
