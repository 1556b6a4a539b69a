package permset

import "os"

// System abstracts the filesystem operations needed to adjust permission
// bits. The interface is package-local so tests can substitute a fake
// without shared global state.
type System interface {
	Stat(name string) (os.FileInfo, error)
	Chmod(name string, mode os.FileMode) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Chmod changes the mode of the named file.
func (RealSystem) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}
