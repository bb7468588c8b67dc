// Package assets provides the template tree that aikit installs: skills,
// rules, commands and agents compiled into the binary, or an on-disk tree of
// the same shape used while developing templates.
package assets

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

// bundleFS holds the ai/ template tree. Files whose names start with "." or
// "_" are excluded by go:embed.
//
//go:embed ai
var bundleFS embed.FS

// EmbeddedLocation is the Source.Location reported for the bundled tree.
const EmbeddedLocation = "embedded"

// Source is a template tree together with where it came from.
type Source struct {
	FS       fs.FS
	Location string
}

// Embedded returns the bundled template tree rooted at its category folders.
func Embedded() fs.FS {
	sub, err := fs.Sub(bundleFS, "ai")
	if err != nil {
		// fs.Sub only fails on an invalid directory name.
		panic(err)
	}
	return sub
}

// Resolve returns the embedded tree when dir is empty and an os.DirFS rooted
// at dir otherwise. The directory is not checked here; callers stat the root
// before copying from it.
func Resolve(dir string) Source {
	if dir == "" {
		return Source{FS: Embedded(), Location: EmbeddedLocation}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return Source{FS: os.DirFS(dir), Location: dir}
}
