package platform

import (
	"os"
	"runtime"
)

const (
	ownerWrite     os.FileMode = 0o200
	ownerReadWrite os.FileMode = 0o600
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// WritableMode returns the permission bits of mode with owner read and write
// set. Files read from an embedded filesystem report 0444.
func WritableMode(mode os.FileMode) os.FileMode {
	return mode.Perm() | ownerReadWrite
}

// EnsureWritable adds the owner write bit to an existing file that lacks it.
// Missing files are not an error.
func EnsureWritable(path string) error {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Mode().Perm()&ownerWrite != 0 {
		return nil
	}
	return Chmod(path, WritableMode(info.Mode()))
}
