// Package installer runs an install: it validates the requested category
// paths, drops the ones missing from the source, merge-copies the rest into
// the target directory and summarises what ended up there.
package installer
