package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// withProjectRoot points command root resolution at a fresh project dir.
func withProjectRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	orig := getwd
	getwd = func() (string, error) { return root, nil }
	t.Cleanup(func() { getwd = orig })
	return root
}

func TestResolveProjectRoot(t *testing.T) {
	root := withProjectRoot(t)

	got, err := resolveProjectRoot()
	if err != nil {
		t.Fatalf("resolveProjectRoot error: %v", err)
	}
	if got != root {
		t.Fatalf("expected %q, got %q", root, got)
	}
}

func TestResolveProjectRootMissing(t *testing.T) {
	dir := t.TempDir()
	orig := getwd
	getwd = func() (string, error) { return dir, nil }
	t.Cleanup(func() { getwd = orig })

	_, err := resolveProjectRoot()
	if err == nil || !strings.Contains(err.Error(), "no package project") {
		t.Fatalf("expected missing project error, got %v", err)
	}
}

func TestPromptYesNo(t *testing.T) {
	cases := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
		wantErr    bool
	}{
		{"yes", "y\n", false, true, false},
		{"yes word", "yes\n", false, true, false},
		{"no", "n\n", true, false, false},
		{"no word", "NO\n", true, false, false},
		{"empty default yes", "\n", true, true, false},
		{"empty default no", "\n", false, false, false},
		{"retry then yes", "maybe\ny\n", false, true, false},
		{"eof", "", true, false, false},
		{"invalid at eof", "maybe", true, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := promptYesNo(strings.NewReader(tc.input), &out, "Proceed?", tc.defaultYes)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("promptYesNo error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			if !strings.Contains(out.String(), "Proceed?") {
				t.Fatalf("expected prompt text, got %q", out.String())
			}
		})
	}
}

func TestRootCommandListsSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"perms", "pack", "install", "doctor"} {
		if !names[want] {
			t.Fatalf("expected %s subcommand", want)
		}
	}
}
