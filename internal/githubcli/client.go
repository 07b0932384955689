package githubcli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/repoinit/internal/execshell"
)

// RepositoryVisibility selects the visibility flag passed to the GitHub CLI.
type RepositoryVisibility string

const (
	// VisibilityPublic creates a repository visible to everyone.
	VisibilityPublic RepositoryVisibility = "public"
	// VisibilityPrivate creates a repository visible only to collaborators.
	VisibilityPrivate RepositoryVisibility = "private"
)

const (
	versionFlagConstant           = "--version"
	repoSubcommandConstant        = "repo"
	createSubcommandConstant      = "create"
	sourceCurrentDirFlagConstant  = "--source=."
	visibilityFlagTemplate        = "--%s"
	pushFlagConstant              = "--push"
	operationErrorTemplate        = "github cli %s failed: %s"
	repositoryNameRequiredMessage = "repository name must not be empty"
)

// ErrExecutorNotConfigured indicates the client was constructed without an executor.
var ErrExecutorNotConfigured = errors.New("github cli executor not configured")

// ErrRepositoryNameRequired indicates CreateRepository received an empty name.
var ErrRepositoryNameRequired = errors.New(repositoryNameRequiredMessage)

// OperationError wraps a GitHub CLI failure with the operation it interrupted.
type OperationError struct {
	Operation string
	Cause     error
}

// Error describes the failed operation.
func (operationError OperationError) Error() string {
	return fmt.Sprintf(operationErrorTemplate, operationError.Operation, operationError.Cause)
}

// Unwrap exposes the underlying executor error.
func (operationError OperationError) Unwrap() error {
	return operationError.Cause
}

// GitHubExecutor runs GitHub CLI commands.
type GitHubExecutor interface {
	ExecuteGitHubCLI(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Client exposes the GitHub CLI operations used during repository setup.
type Client struct {
	executor GitHubExecutor
}

// NewClient constructs a Client around the provided executor.
func NewClient(executor GitHubExecutor) (*Client, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}

	return &Client{executor: executor}, nil
}

// IsInstalled reports whether the GitHub CLI responds to a version probe.
func (client *Client) IsInstalled(executionContext context.Context) bool {
	_, executionError := client.executor.ExecuteGitHubCLI(executionContext, execshell.CommandDetails{
		Arguments: []string{versionFlagConstant},
	})
	return executionError == nil
}

// CreateRepository creates a GitHub repository sourced from the working
// directory and pushes the current branch to it.
func (client *Client) CreateRepository(executionContext context.Context, repositoryPath string, repositoryName string, visibility RepositoryVisibility) error {
	trimmedRepositoryName := strings.TrimSpace(repositoryName)
	if len(trimmedRepositoryName) == 0 {
		return ErrRepositoryNameRequired
	}

	commandArguments := []string{
		repoSubcommandConstant,
		createSubcommandConstant,
		trimmedRepositoryName,
		sourceCurrentDirFlagConstant,
		fmt.Sprintf(visibilityFlagTemplate, visibility),
		pushFlagConstant,
	}

	_, executionError := client.executor.ExecuteGitHubCLI(executionContext, execshell.CommandDetails{
		Arguments:        commandArguments,
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return OperationError{Operation: createSubcommandConstant, Cause: executionError}
	}

	return nil
}
