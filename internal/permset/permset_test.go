package permset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeArtifact(t *testing.T, root string, rel string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("#!/usr/bin/env node\n"), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("chmod artifact: %v", err)
	}
	return path
}

func TestApplySetsExecuteBits(t *testing.T) {
	root := t.TempDir()
	a := writeArtifact(t, root, "a.js", 0o644)
	b := writeArtifact(t, root, "b.js", 0o644)

	results := Apply(RealSystem{}, root, []string{"a.js", "b.js"})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("unexpected error for %s: %v", r.Path, r.Err)
		}
		if !r.Changed {
			t.Fatalf("expected %s to be changed", r.Path)
		}
		if r.Mode != 0o755 {
			t.Fatalf("expected mode 0755 for %s, got %04o", r.Path, r.Mode)
		}
	}
	for _, path := range []string{a, b} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != 0o755 {
			t.Fatalf("expected 0755 on disk, got %04o", info.Mode().Perm())
		}
	}
}

func TestApplyPreservesExistingBits(t *testing.T) {
	root := t.TempDir()
	writeArtifact(t, root, "cli.js", 0o600)

	results := Apply(RealSystem{}, root, []string{"cli.js"})
	if results[0].Err != nil {
		t.Fatalf("unexpected error: %v", results[0].Err)
	}
	if results[0].Mode != 0o711 {
		t.Fatalf("expected 0600|0111 = 0711, got %04o", results[0].Mode)
	}
}

func TestApplyAlreadyExecutable(t *testing.T) {
	root := t.TempDir()
	writeArtifact(t, root, "cli.js", 0o755)

	results := Apply(RealSystem{}, root, []string{"cli.js"})
	if results[0].Err != nil {
		t.Fatalf("unexpected error: %v", results[0].Err)
	}
	if results[0].Changed {
		t.Fatalf("expected no change for already-executable file")
	}
	if results[0].Mode != 0o755 {
		t.Fatalf("expected mode 0755, got %04o", results[0].Mode)
	}
}

func TestApplyMissingPathIsIsolated(t *testing.T) {
	root := t.TempDir()
	writeArtifact(t, root, "b.js", 0o644)

	results := Apply(RealSystem{}, root, []string{"missing.js", "b.js"})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Err == nil {
		t.Fatalf("expected error for missing path")
	}
	if !errors.Is(results[0].Err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", results[0].Err)
	}
	if results[1].Err != nil {
		t.Fatalf("expected second path to still be processed: %v", results[1].Err)
	}
	info, err := os.Stat(filepath.Join(root, "b.js"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Fatalf("expected 0755 after run, got %04o", info.Mode().Perm())
	}
}

type failingChmodSystem struct {
	RealSystem
	err error
}

func (s failingChmodSystem) Chmod(name string, mode os.FileMode) error {
	return s.err
}

func TestApplyChmodFailureIsIsolated(t *testing.T) {
	root := t.TempDir()
	writeArtifact(t, root, "a.js", 0o644)

	sentinel := errors.New("chmod denied")
	results := Apply(failingChmodSystem{err: sentinel}, root, []string{"a.js"})
	if results[0].Err == nil || !errors.Is(results[0].Err, sentinel) {
		t.Fatalf("expected wrapped chmod error, got %v", results[0].Err)
	}
	if results[0].Path != "a.js" {
		t.Fatalf("expected failing path in result, got %q", results[0].Path)
	}
}

func TestApplyEmptyList(t *testing.T) {
	results := Apply(RealSystem{}, t.TempDir(), nil)
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
