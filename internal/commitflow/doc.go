// Package commitflow drives the interactive select-stage-edit-commit
// sequence over a working tree.
package commitflow
