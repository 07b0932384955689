package pushflow

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

const (
	originRemoteNameConstant = "origin"
	mainBranchNameConstant   = "main"
	masterBranchNameConstant = "master"

	protectedBranchWarningTemplate = "You are about to push directly to %s.\n"
	protectedBranchPromptConstant  = "Continue? (y/n): "
	pushCancelledMessageConstant   = "Push cancelled."
	noRemoteMessageConstant        = "No remote configured; nothing to push to."
	pushedMessageTemplateConstant  = "Pushed %s.\n"
	branchLookupTemplateConstant   = "determining current branch: %w"
	remoteLookupTemplateConstant   = "listing remotes: %w"
	remoteProbeTemplateConstant    = "checking remote branches: %w"
	pushFailedTemplateConstant     = "pushing %s: %w"
)

// GitService covers the git operations the push flow performs.
type GitService interface {
	CurrentBranch(executionContext context.Context, repositoryPath string) (string, error)
	ListRemotes(executionContext context.Context, repositoryPath string) ([]string, error)
	RemoteBranchExists(executionContext context.Context, repositoryPath string, remoteName string, branchName string) (bool, error)
	Push(executionContext context.Context, repositoryPath string) error
	PushSettingUpstream(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error
}

// ConfirmationPrompter asks the user a yes/no question.
type ConfirmationPrompter interface {
	Confirm(promptText string) (bool, error)
}

// ErrDependenciesNotConfigured indicates the service was built with missing collaborators.
var ErrDependenciesNotConfigured = errors.New("push flow dependencies not configured")

// Service pushes the current branch to the configured remote.
type Service struct {
	gitService GitService
	prompter   ConfirmationPrompter
	output     io.Writer
	logger     *zap.Logger
}

// NewService constructs the push flow service and validates its collaborators.
func NewService(gitService GitService, prompter ConfirmationPrompter, output io.Writer, logger *zap.Logger) (*Service, error) {
	if gitService == nil || prompter == nil || output == nil || logger == nil {
		return nil, ErrDependenciesNotConfigured
	}

	return &Service{gitService: gitService, prompter: prompter, output: output, logger: logger}, nil
}

// Run pushes the current branch. Pushing main or master requires
// confirmation; a declined confirmation or a missing remote finishes the
// flow without error.
func (service *Service) Run(executionContext context.Context, repositoryPath string) error {
	branchName, branchError := service.gitService.CurrentBranch(executionContext, repositoryPath)
	if branchError != nil {
		return fmt.Errorf(branchLookupTemplateConstant, branchError)
	}

	if branchName == mainBranchNameConstant || branchName == masterBranchNameConstant {
		fmt.Fprintf(service.output, protectedBranchWarningTemplate, branchName)
		confirmed, confirmError := service.prompter.Confirm(protectedBranchPromptConstant)
		if confirmError != nil {
			return confirmError
		}
		if !confirmed {
			fmt.Fprintln(service.output, pushCancelledMessageConstant)
			return nil
		}
	}

	remoteNames, remoteError := service.gitService.ListRemotes(executionContext, repositoryPath)
	if remoteError != nil {
		return fmt.Errorf(remoteLookupTemplateConstant, remoteError)
	}
	if len(remoteNames) == 0 {
		fmt.Fprintln(service.output, noRemoteMessageConstant)
		return nil
	}

	branchExists, probeError := service.gitService.RemoteBranchExists(executionContext, repositoryPath, originRemoteNameConstant, branchName)
	if probeError != nil {
		return fmt.Errorf(remoteProbeTemplateConstant, probeError)
	}

	if branchExists {
		if pushError := service.gitService.Push(executionContext, repositoryPath); pushError != nil {
			return fmt.Errorf(pushFailedTemplateConstant, branchName, pushError)
		}
	} else {
		if pushError := service.gitService.PushSettingUpstream(executionContext, repositoryPath, originRemoteNameConstant, branchName); pushError != nil {
			return fmt.Errorf(pushFailedTemplateConstant, branchName, pushError)
		}
	}

	service.logger.Debug("branch pushed",
		zap.String("branch", branchName),
		zap.Bool("upstream_set", !branchExists),
	)
	fmt.Fprintf(service.output, pushedMessageTemplateConstant, branchName)
	return nil
}
