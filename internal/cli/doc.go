// Package cli defines the Cobra command tree for the aikit CLI. The root
// command performs the install itself; each other file registers one
// subcommand (list, search, validate, config, version). Commands delegate to
// internal packages and only handle flags and output.
package cli
