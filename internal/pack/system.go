package pack

import "os"

// System abstracts the filesystem operations needed by the install
// protocol. Package-local like the permset System so tests stay isolated.
type System interface {
	Stat(name string) (os.FileInfo, error)
	Remove(name string) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Remove removes the named file.
func (RealSystem) Remove(name string) error {
	return os.Remove(name)
}
