// Package setup orchestrates the interactive repository setup session,
// covering fresh initialization and existing-repository workflows.
package setup
