// Package gitignore writes the fixed Python-ecosystem ignore file used by
// the repository setup flow.
package gitignore
