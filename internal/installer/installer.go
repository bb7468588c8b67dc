package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/artche/aikit/internal/catalog"
	"github.com/artche/aikit/internal/copier"
	"github.com/artche/aikit/internal/pathspec"
	"github.com/artche/aikit/internal/target"
)

const totalSteps = 3

var (
	// ErrSourceNotFound is returned when the template tree itself is missing.
	ErrSourceNotFound = errors.New("AI source folder not found")
	// ErrNoValidPaths is returned when none of the requested items exist in
	// the source.
	ErrNoValidPaths = errors.New("no valid paths to install")
	// ErrNothingInstalled is returned when every copy failed.
	ErrNothingInstalled = errors.New("nothing was installed")
)

// Request names the target and the raw items to install. No items means
// every category.
type Request struct {
	Target target.Target
	Items  []string
}

// Item is one installed path as it exists in the destination afterwards.
type Item struct {
	Path  string `json:"path"`
	IsDir bool   `json:"is_dir"`
	// Files counts every file under the destination directory, including
	// files that were there before the install.
	Files int `json:"files,omitempty"`
}

// Failure is an item whose copy failed.
type Failure struct {
	Path string
	Err  error
}

// Result summarises an install.
type Result struct {
	Target    target.Target
	DestDir   string
	Files     int
	Dirs      int
	Installed []Item
	Skipped   []string
	Failed    []Failure
	// Commands lists "/name" for each command file in the destination. Only
	// set for targets that expose slash commands.
	Commands []string
}

type candidate struct {
	path  pathspec.Path
	isDir bool
}

// Installer copies template items from Source into a project.
type Installer struct {
	Source fs.FS
	// Location describes Source in error messages.
	Location   string
	ProjectDir string
	Rules      pathspec.Rules
	Ignore     *copier.IgnoreSet
	Reporter   Reporter
}

// ParseItems splits a comma-separated --what value into trimmed, non-empty
// items.
func ParseItems(what string) []string {
	var items []string
	for _, part := range strings.Split(what, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// Install validates req, then copies each item that exists in the source.
// Invalid items abort before anything is read or written. Items missing from
// the source, and items that are symlinks or special files, are skipped. A
// failed copy does not stop the others. With
// ErrNoValidPaths or ErrNothingInstalled the partial Result is returned too.
func (in *Installer) Install(req Request) (*Result, error) {
	rep := in.Reporter
	if rep == nil {
		rep = discard{}
	}

	items := req.Items
	if len(items) == 0 {
		items = append([]string(nil), in.Rules.Categories...)
	}

	paths, err := in.Rules.ValidateAll(items)
	if err != nil {
		return nil, err
	}
	paths = dedupe(paths)

	if _, err := fs.Stat(in.Source, "."); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, in.Location)
		}
		return nil, fmt.Errorf("reading source %s: %w", in.Location, err)
	}

	res := &Result{
		Target:  req.Target,
		DestDir: req.Target.Path(in.ProjectDir),
	}

	rep.Step(1, totalSteps, "Validating...")

	var existing []candidate
	for _, p := range paths {
		info, err := fs.Lstat(in.Source, p.String())
		if errors.Is(err, fs.ErrNotExist) {
			rep.Info("Skipping (not found): " + p.String())
			res.Skipped = append(res.Skipped, p.String())
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		if !info.IsDir() && !info.Mode().IsRegular() {
			rep.Info("Skipping (not a regular file or directory): " + p.String())
			res.Skipped = append(res.Skipped, p.String())
			continue
		}
		existing = append(existing, candidate{path: p, isDir: info.IsDir()})
	}

	if len(existing) == 0 {
		return res, ErrNoValidPaths
	}

	rep.Step(2, totalSteps, fmt.Sprintf("Copying to %s (merge mode)...", req.Target.DisplayDir()))

	if err := os.MkdirAll(res.DestDir, 0755); err != nil {
		return res, fmt.Errorf("creating %s: %w", res.DestDir, err)
	}

	cp := copier.New(in.Source, in.Ignore)
	var copied []pathspec.Path

	for _, c := range existing {
		p := c.path
		r, err := cp.CopyPath(p.String(), res.DestDir)
		if err != nil {
			rep.Error(fmt.Sprintf("Failed to copy %s: %v", p, err))
			res.Failed = append(res.Failed, Failure{Path: p.String(), Err: err})
			continue
		}

		if c.isDir {
			rep.Success(fmt.Sprintf("Copied %s/ (%d files)", p, r.Files))
		} else {
			rep.Success("Copied " + p.String())
		}

		res.Files += r.Files
		res.Dirs += r.Dirs
		copied = append(copied, p)
	}

	if len(copied) == 0 {
		return res, ErrNothingInstalled
	}

	rep.Step(3, totalSteps, "Done!")

	for _, p := range copied {
		res.Installed = append(res.Installed, describe(res.DestDir, p))
	}

	if req.Target.ListCommands {
		cmds, err := catalog.CommandNames(os.DirFS(res.DestDir))
		if err != nil {
			log.Warn().Err(err).Str("dest", res.DestDir).Msg("listing commands")
		}
		res.Commands = cmds
	}

	log.Debug().
		Str("target", string(req.Target.Name)).
		Int("files", res.Files).
		Int("dirs", res.Dirs).
		Int("failed", len(res.Failed)).
		Msg("install finished")

	return res, nil
}

// describe reports an installed path as it now exists under destDir.
func describe(destDir string, p pathspec.Path) Item {
	item := Item{Path: p.String()}
	dst := filepath.Join(destDir, p.FromSlash())

	info, err := os.Stat(dst)
	if err != nil || !info.IsDir() {
		return item
	}

	item.IsDir = true
	item.Files = countFiles(dst)
	return item
}

// countFiles counts the non-directory entries under dir. Symlinks are
// counted and not followed.
func countFiles(dir string) int {
	count := 0
	_ = filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	return count
}

// dedupe drops repeated paths, keeping the first occurrence.
func dedupe(paths []pathspec.Path) []pathspec.Path {
	seen := make(map[string]bool, len(paths))
	out := paths[:0]
	for _, p := range paths {
		if seen[p.String()] {
			continue
		}
		seen[p.String()] = true
		out = append(out, p)
	}
	return out
}
