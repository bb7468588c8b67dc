// Package manifest parses and validates the YAML frontmatter at the top of
// template files (SKILL.md, rules, commands and agents).
package manifest
