package fdcheck

import (
	"io/fs"
	"os"
)

// FileSystem abstracts the stat calls used to compare file identity.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	SameFile(a, b fs.FileInfo) bool
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// SameFile compares device and inode (file index on Windows).
func (r *RealFileSystem) SameFile(a, b fs.FileInfo) bool {
	return os.SameFile(a, b)
}
