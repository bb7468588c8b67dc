package copier

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/artche/aikit/internal/platform"
)

const dirPerm os.FileMode = 0755

// ErrSourceNotFound is returned when the requested source path does not exist.
var ErrSourceNotFound = errors.New("source not found")

// Result counts the files and subdirectories a copy processed.
type Result struct {
	Files int `json:"files"`
	Dirs  int `json:"dirs"`
}

// Add accumulates other into r.
func (r *Result) Add(other Result) {
	r.Files += other.Files
	r.Dirs += other.Dirs
}

// Copier merge-copies paths from a source filesystem into a destination
// directory on disk. Existing destination files are overwritten; files that
// only exist in the destination are never touched.
type Copier struct {
	src    fs.FS
	ignore *IgnoreSet
}

// New returns a Copier reading from src and skipping entries matched by ignore.
// A nil ignore set skips nothing.
func New(src fs.FS, ignore *IgnoreSet) *Copier {
	return &Copier{src: src, ignore: ignore}
}

// CopyPath copies rel (a slash path inside the source) to the same relative
// location under dstRoot. A regular file is copied as-is, a directory is
// merged recursively. Anything else, such as a symlink, is skipped.
func (c *Copier) CopyPath(rel, dstRoot string) (Result, error) {
	info, err := fs.Lstat(c.src, rel)
	if errors.Is(err, fs.ErrNotExist) {
		return Result{}, fmt.Errorf("%w: %s", ErrSourceNotFound, rel)
	}
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", rel, err)
	}

	dst := filepath.Join(dstRoot, filepath.FromSlash(rel))

	switch {
	case info.IsDir():
		return c.copyDir(rel, dst)
	case info.Mode().IsRegular():
		if err := c.copyFile(rel, dst, info.Mode()); err != nil {
			return Result{}, err
		}
		return Result{Files: 1}, nil
	default:
		log.Debug().Str("path", rel).Msg("skipping non-regular source")
		return Result{}, nil
	}
}

// copyDir merges the source directory rel into dst.
func (c *Copier) copyDir(rel, dst string) (Result, error) {
	var res Result

	if info, err := os.Lstat(dst); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		return res, fmt.Errorf("refusing to write through symlink %s", dst)
	}
	if err := os.MkdirAll(dst, dirPerm); err != nil {
		return res, fmt.Errorf("creating directory %s: %w", dst, err)
	}

	entries, err := fs.ReadDir(c.src, rel)
	if err != nil {
		return res, fmt.Errorf("reading directory %s: %w", rel, err)
	}

	for _, entry := range entries {
		childRel := path.Join(rel, entry.Name())
		if c.ignore.Match(childRel) {
			log.Debug().Str("path", childRel).Msg("ignored")
			continue
		}

		childDst := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			sub, err := c.copyDir(childRel, childDst)
			res.Files += sub.Files
			res.Dirs += sub.Dirs
			if err != nil {
				return res, err
			}
			res.Dirs++
		case entry.Type().IsRegular():
			info, err := entry.Info()
			if err != nil {
				return res, fmt.Errorf("reading %s: %w", childRel, err)
			}
			if err := c.copyFile(childRel, childDst, info.Mode()); err != nil {
				return res, err
			}
			res.Files++
		default:
			// Symlinks and special files are not followed.
			log.Debug().Str("path", childRel).Msg("skipping non-regular entry")
		}
	}

	return res, nil
}

// copyFile writes the source file rel to dst, replacing its contents.
func (c *Copier) copyFile(rel, dst string, mode fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return fmt.Errorf("creating parent directory for %s: %w", dst, err)
	}

	if info, err := os.Lstat(dst); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		return fmt.Errorf("refusing to write through symlink %s", dst)
	}

	if err := platform.EnsureWritable(dst); err != nil {
		return fmt.Errorf("making %s writable: %w", dst, err)
	}

	in, err := c.src.Open(rel)
	if err != nil {
		return fmt.Errorf("opening %s: %w", rel, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, platform.WritableMode(mode))
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", rel, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}

	log.Debug().Str("src", rel).Str("dst", dst).Msg("copied")
	return nil
}
