package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/castlerow/relkit/internal/messages"
)

var homedirDir = homedir.Dir

// UserConfigPath returns the user-level config overlay path, or "" when the
// file does not exist. The overlay lives at ~/.config/relkit/config.toml.
func UserConfigPath() (string, error) {
	home, err := homedirDir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	path := filepath.Join(home, ".config", "relkit", "config.toml")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	return path, nil
}

// FindProjectRoot walks up from start to the nearest directory containing
// package.json or relkit.toml. found is false when no ancestor qualifies.
func FindProjectRoot(start string) (root string, found bool, err error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf(messages.ConfigReadFileFmt, start, err)
	}
	for {
		for _, marker := range []string{ManifestName, FileName} {
			info, err := os.Stat(filepath.Join(dir, marker))
			if err == nil && info.Mode().IsRegular() {
				return dir, true, nil
			}
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf(messages.ConfigReadFileFmt, filepath.Join(dir, marker), err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
