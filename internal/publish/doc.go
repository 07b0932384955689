// Package publish connects a local repository to GitHub, through the GitHub
// CLI when present or through manual remote setup otherwise.
package publish
