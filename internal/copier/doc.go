// Package copier merge-copies template trees from a source filesystem (the
// embedded bundle or an on-disk override) into a project's configuration
// directory. It creates missing directories, overwrites files of the same
// name and never removes anything from the destination.
package copier
