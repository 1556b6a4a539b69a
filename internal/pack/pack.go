// Package pack runs the packaging and global-install protocol: package the
// project, verify the archive exists, install it globally, and remove it.
// The steps are strictly sequential with no retries and no rollback.
package pack

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/castlerow/relkit/internal/messages"
)

// StepError reports which protocol step failed.
type StepError struct {
	// Step is one of the step name constants in messages.
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

// Unwrap returns the underlying step failure.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Options configures one protocol run.
type Options struct {
	// Root is the project root the manager runs in.
	Root string
	// Manager is the package manager command (npm, pnpm, ...).
	Manager string
	// Runner executes external commands.
	Runner Runner
	// System performs filesystem checks and the archive cleanup.
	System System
	// KeepArchive leaves the archive in place after a successful install.
	KeepArchive bool
	// Out receives progress lines. Defaults to io.Discard when nil.
	Out io.Writer
}

func (o *Options) validate() error {
	if strings.TrimSpace(o.Root) == "" {
		return fmt.Errorf(messages.InstallRootRequired)
	}
	if strings.TrimSpace(o.Manager) == "" {
		return fmt.Errorf(messages.InstallManagerRequired)
	}
	if o.Runner == nil {
		return fmt.Errorf(messages.InstallRunnerRequired)
	}
	if o.System == nil {
		return fmt.Errorf(messages.InstallSystemRequired)
	}
	return nil
}

func (o *Options) out() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return io.Discard
}

// Pack runs the packaging command and verifies the produced archive exists.
// It returns the absolute archive path. The archive name is the trimmed last
// non-empty stdout line of the packaging command; npm and pnpm both print it
// there after any notice lines.
func Pack(opts Options) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	_, _ = fmt.Fprintf(opts.out(), messages.PackPackingFmt, opts.Manager)
	out, err := opts.Runner.Output(opts.Root, opts.Manager, "pack")
	if err != nil {
		return "", &StepError{Step: messages.PackStepName, Err: fmt.Errorf(messages.PackRunFailedFmt, opts.Manager, err)}
	}
	name := lastLine(out)
	if name == "" {
		return "", &StepError{Step: messages.PackStepName, Err: fmt.Errorf(messages.PackEmptyOutputFmt, opts.Manager)}
	}

	archive, err := verifyArchive(opts.System, opts.Root, name)
	if err != nil {
		return "", &StepError{Step: messages.VerifyStepName, Err: err}
	}
	return archive, nil
}

// Install installs a previously packed archive globally, then removes it.
// The archive must be the absolute path returned by Pack. The archive is
// kept when the install command fails, and when KeepArchive is set.
func Install(opts Options, archive string) error {
	if err := opts.validate(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(opts.out(), messages.InstallingFmt, filepath.Base(archive), opts.Manager)
	if err := opts.Runner.RunInteractive(opts.Root, opts.Manager, "install", "-g", archive); err != nil {
		return &StepError{Step: messages.InstallStepName, Err: fmt.Errorf(messages.InstallRunFailedFmt, opts.Manager, err)}
	}

	if opts.KeepArchive {
		_, _ = fmt.Fprintf(opts.out(), messages.InstallKeptFmt, archive)
	} else {
		if err := opts.System.Remove(archive); err != nil {
			return &StepError{Step: messages.CleanupStepName, Err: fmt.Errorf(messages.InstallRemoveFmt, archive, err)}
		}
		_, _ = fmt.Fprintf(opts.out(), messages.InstallCleanedFmt, archive)
	}

	_, _ = fmt.Fprintf(opts.out(), messages.InstallDoneFmt, filepath.Base(archive))
	return nil
}

// verifyArchive resolves name against root and confirms a regular file
// exists there before anything references it further.
func verifyArchive(sys System, root string, name string) (string, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, name)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf(messages.PackResolvePathFmt, path, err)
	}
	info, err := sys.Stat(abs)
	if err != nil {
		return "", fmt.Errorf(messages.PackArchiveMissingFmt, abs, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf(messages.PackArchiveNotFileFmt, abs)
	}
	return abs, nil
}

// lastLine returns the trimmed final non-empty line of s.
func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if trimmed := strings.TrimSpace(lines[i]); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
