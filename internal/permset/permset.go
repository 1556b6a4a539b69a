// Package permset marks build artifacts executable by ORing execute bits
// into their existing permission modes. Failures are isolated per path: a
// missing artifact is recorded and the remaining paths are still processed.
package permset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/castlerow/relkit/internal/messages"
)

// ExecBits are the owner, group, and other execute permission bits.
const ExecBits os.FileMode = 0o111

// Result records the outcome for a single artifact path.
type Result struct {
	// Path is the artifact path relative to the project root.
	Path string
	// Mode is the permission mode after the run, when Err is nil.
	Mode os.FileMode
	// Changed reports whether the mode was actually rewritten.
	Changed bool
	// Err is the per-path failure, if any.
	Err error
}

// Apply sets execute bits on each path in order, resolved against root.
// Each path is handled independently: a failure is captured in its Result
// and processing continues. The returned slice has one entry per input path
// in input order.
func Apply(sys System, root string, paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		results = append(results, applyOne(sys, filepath.Join(root, p), p))
	}
	return results
}

func applyOne(sys System, full string, rel string) Result {
	info, err := sys.Stat(full)
	if err != nil {
		return Result{Path: rel, Err: fmt.Errorf(messages.PermsStatFailedFmt, rel, err)}
	}
	current := info.Mode().Perm()
	want := current | ExecBits
	if want == current {
		return Result{Path: rel, Mode: current}
	}
	if err := sys.Chmod(full, want); err != nil {
		return Result{Path: rel, Err: fmt.Errorf(messages.PermsChmodFailedFmt, rel, err)}
	}
	return Result{Path: rel, Mode: want, Changed: true}
}
