// Package pushflow pushes the current branch, setting the upstream when the
// branch is new to the remote.
package pushflow
