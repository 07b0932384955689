// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner for
// default process execution, and defines the abstractions repoinit uses to run
// git and the GitHub CLI in a testable manner. Non-zero exit codes surface as
// CommandFailedError values carrying the exit code, standard output, and
// standard error separately so callers can branch without unwinding.
package execshell
