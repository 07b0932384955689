// Package gitrepo exposes repository-level git operations used by the
// interactive workflows: installation probing, initialization, status
// collection, staging, committing, branching, remote management, and pushes.
// Every operation delegates to an injected executor so services remain
// testable without a real git binary.
package gitrepo
