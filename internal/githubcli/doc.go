// Package githubcli wraps the GitHub CLI operations the setup flows rely on.
package githubcli
