// Package config manages user-level settings stored at ~/.aikit/config.yaml.
// Every key can also be set through an AIKIT_-prefixed environment variable,
// for example AIKIT_SOURCE to install from a template tree on disk.
package config
