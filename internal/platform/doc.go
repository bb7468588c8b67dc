// Package platform provides cross-platform permission handling. On Unix
// systems it uses chmod directly; on Windows permission bits are ignored.
package platform
