package gitrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/temirov/repoinit/internal/execshell"
)

const (
	gitVersionFlagConstant            = "--version"
	gitInitSubcommandConstant         = "init"
	gitStatusSubcommandConstant       = "status"
	gitStatusPorcelainFlagConstant    = "--porcelain"
	gitAddSubcommandConstant          = "add"
	gitAddAllPathSpecConstant         = "."
	gitCommitSubcommandConstant       = "commit"
	gitMessageFlagConstant            = "-m"
	gitBranchSubcommandConstant       = "branch"
	gitCheckoutSubcommandConstant     = "checkout"
	gitRemoteSubcommandConstant       = "remote"
	gitRemoteAddSubcommandConstant    = "add"
	gitRemoteGetURLSubcommandConstant = "get-url"
	gitLSRemoteSubcommandConstant     = "ls-remote"
	gitHeadsFlagConstant              = "--heads"
	gitPushSubcommandConstant         = "push"
	gitSetUpstreamFlagConstant        = "-u"
	gitRevParseSubcommandConstant     = "rev-parse"
	gitWorkTreeFlagConstant           = "--is-inside-work-tree"
	gitAbbrevRefFlagConstant          = "--abbrev-ref"
	gitHeadReferenceConstant          = "HEAD"
	executorNotConfiguredMessage      = "git executor not configured"
	insideWorkTreeAffirmativeConstant = "true"
)

// GitExecutor exposes the subset of shell execution used by repository operations.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
	ExecuteGitHubCLI(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// ErrExecutorNotConfigured indicates the manager was constructed without an executor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessage)

// RepositoryManager performs git operations against a specific working directory.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager around the provided executor.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// CheckGitInstalled reports whether the git binary responds to a version probe.
func (manager *RepositoryManager) CheckGitInstalled(executionContext context.Context) bool {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments: []string{gitVersionFlagConstant},
	})
	return executionError == nil
}

// IsRepository reports whether the directory lies inside a git work tree.
func (manager *RepositoryManager) IsRepository(executionContext context.Context, repositoryPath string) bool {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitWorkTreeFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return false
	}
	return strings.TrimSpace(executionResult.StandardOutput) == insideWorkTreeAffirmativeConstant
}

// InitRepository initializes a new repository in the directory.
func (manager *RepositoryManager) InitRepository(executionContext context.Context, repositoryPath string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitInitSubcommandConstant},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// CurrentBranch resolves the abbreviated reference for HEAD.
func (manager *RepositoryManager) CurrentBranch(executionContext context.Context, repositoryPath string) (string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitAbbrevRefFlagConstant, gitHeadReferenceConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// WorkingTreeStatus returns the raw porcelain status output.
func (manager *RepositoryManager) WorkingTreeStatus(executionContext context.Context, repositoryPath string) (string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitStatusSubcommandConstant, gitStatusPorcelainFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", executionError
	}
	return executionResult.StandardOutput, nil
}

// StagePath stages a single path.
func (manager *RepositoryManager) StagePath(executionContext context.Context, repositoryPath string, relativePath string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitAddSubcommandConstant, relativePath},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// StageAll stages every change beneath the directory.
func (manager *RepositoryManager) StageAll(executionContext context.Context, repositoryPath string) error {
	return manager.StagePath(executionContext, repositoryPath, gitAddAllPathSpecConstant)
}

// Commit records a commit with the provided message.
func (manager *RepositoryManager) Commit(executionContext context.Context, repositoryPath string, commitMessage string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCommitSubcommandConstant, gitMessageFlagConstant, commitMessage},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// CreateBranch creates a local branch without switching to it.
func (manager *RepositoryManager) CreateBranch(executionContext context.Context, repositoryPath string, branchName string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitBranchSubcommandConstant, branchName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// Checkout switches the work tree to the named branch.
func (manager *RepositoryManager) Checkout(executionContext context.Context, repositoryPath string, branchName string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCheckoutSubcommandConstant, branchName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// ListRemotes returns the configured remote names.
func (manager *RepositoryManager) ListRemotes(executionContext context.Context, repositoryPath string) ([]string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return nil, executionError
	}

	remoteNames := []string{}
	for _, remoteLine := range strings.Split(executionResult.StandardOutput, "\n") {
		trimmedRemote := strings.TrimSpace(remoteLine)
		if len(trimmedRemote) > 0 {
			remoteNames = append(remoteNames, trimmedRemote)
		}
	}
	return remoteNames, nil
}

// AddRemote registers a remote pointing at the provided URL.
func (manager *RepositoryManager) AddRemote(executionContext context.Context, repositoryPath string, remoteName string, remoteURL string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant, gitRemoteAddSubcommandConstant, remoteName, remoteURL},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// RemoteURL returns the URL configured for the named remote.
func (manager *RepositoryManager) RemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant, gitRemoteGetURLSubcommandConstant, remoteName},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// RemoteBranchExists reports whether the remote advertises the branch. The
// check is a substring search over `ls-remote --heads` output, matching the
// fully qualified head reference.
func (manager *RepositoryManager) RemoteBranchExists(executionContext context.Context, repositoryPath string, remoteName string, branchName string) (bool, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitLSRemoteSubcommandConstant, gitHeadsFlagConstant, remoteName},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return false, executionError
	}
	return strings.Contains(executionResult.StandardOutput, branchReferencePrefixConstant+branchName), nil
}

// Push pushes the current branch to its configured upstream.
func (manager *RepositoryManager) Push(executionContext context.Context, repositoryPath string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitPushSubcommandConstant},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// PushSettingUpstream pushes the branch and records the remote as its upstream.
func (manager *RepositoryManager) PushSettingUpstream(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitPushSubcommandConstant, gitSetUpstreamFlagConstant, remoteName, branchName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

const branchReferencePrefixConstant = "refs/heads/"
