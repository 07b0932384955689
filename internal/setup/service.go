package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/repoinit/internal/status"
)

const (
	initialCommitMessageConstant = "Initial commit"

	bannerLineConstant          = "============================================================"
	bannerTitleConstant         = "Git Repository Setup"
	gitMissingMessageConstant   = "Git is not installed. Please install Git and try again."
	existingRepoMessageConstant = "Existing Git repository detected."
	initializedMessageConstant  = "Initialized empty Git repository."
	gitignoreMessageConstant    = "Created .gitignore file with Python patterns"
	initialCommitDoneConstant   = "Created initial commit."
	publishPromptConstant       = "\nDo you want to publish this repository to GitHub? (y/n): "
	publishFailedConstant       = "Failed to publish to GitHub.\nYou can manually push this repository later."
	localOnlyMessageConstant    = "\nRepository initialized locally. You can push to GitHub later."
	commitPromptConstant        = "Commit changes now? (y/n): "
	branchPromptConstant        = "Create a new branch? (y/n): "
	branchNamePromptConstant    = "Enter the new branch name: "
	branchSkippedConstant       = "No branch name given; skipping."
	branchCreatedTemplate       = "Switched to new branch %s.\n"
	pushPromptConstant          = "Push the current branch? (y/n): "
	publishExistingConstant     = "Publish this repository to GitHub? (y/n): "

	tipsTextConstant = `
Setup complete!

Useful Git commands:
  git status                 - Check repository status
  git add <file>             - Stage specific files
  git add .                  - Stage all changes
  git commit -m "message"    - Commit with a message
  git push                   - Push to remote repository
  git pull                   - Pull from remote repository
`

	initFailedTemplateConstant      = "initializing repository: %w"
	gitignoreFailedTemplateConstant = "writing .gitignore: %w"
	stageFailedTemplateConstant     = "staging files: %w"
	commitFailedTemplateConstant    = "creating initial commit: %w"
	branchFailedTemplateConstant    = "creating branch %s: %w"
	checkoutFailedTemplateConstant  = "switching to branch %s: %w"
	statusFailedTemplateConstant    = "reading working tree status: %w"
)

// ErrGitNotInstalled aborts the session before any repository work happens.
var ErrGitNotInstalled = errors.New("git is not installed")

// ErrDependenciesNotConfigured indicates the service was built with missing collaborators.
var ErrDependenciesNotConfigured = errors.New("setup dependencies not configured")

// GitService covers the git operations the setup session performs directly.
type GitService interface {
	CheckGitInstalled(executionContext context.Context) bool
	IsRepository(executionContext context.Context, repositoryPath string) bool
	InitRepository(executionContext context.Context, repositoryPath string) error
	WorkingTreeStatus(executionContext context.Context, repositoryPath string) (string, error)
	StageAll(executionContext context.Context, repositoryPath string) error
	Commit(executionContext context.Context, repositoryPath string, message string) error
	CreateBranch(executionContext context.Context, repositoryPath string, branchName string) error
	Checkout(executionContext context.Context, repositoryPath string, branchName string) error
}

// IgnoreWriter places the generated ignore file into the repository.
type IgnoreWriter interface {
	Write(repositoryPath string) error
}

// FlowRunner executes one interactive sub-flow against a repository.
type FlowRunner interface {
	Run(executionContext context.Context, repositoryPath string) error
}

// Prompter collects the session's interactive answers.
type Prompter interface {
	Confirm(promptText string) (bool, error)
	AskLine(promptText string) (string, error)
}

// Service runs the end-to-end setup session.
type Service struct {
	gitService   GitService
	ignoreWriter IgnoreWriter
	commitFlow   FlowRunner
	pushFlow     FlowRunner
	publishFlow  FlowRunner
	prompter     Prompter
	output       io.Writer
	logger       *zap.Logger
}

// Dependencies wires the collaborators the setup session orchestrates.
type Dependencies struct {
	GitService   GitService
	IgnoreWriter IgnoreWriter
	CommitFlow   FlowRunner
	PushFlow     FlowRunner
	PublishFlow  FlowRunner
	Prompter     Prompter
	Output       io.Writer
	Logger       *zap.Logger
}

// NewService constructs the setup service and validates its collaborators.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.GitService == nil || dependencies.IgnoreWriter == nil ||
		dependencies.CommitFlow == nil || dependencies.PushFlow == nil ||
		dependencies.PublishFlow == nil || dependencies.Prompter == nil ||
		dependencies.Output == nil || dependencies.Logger == nil {
		return nil, ErrDependenciesNotConfigured
	}

	return &Service{
		gitService:   dependencies.GitService,
		ignoreWriter: dependencies.IgnoreWriter,
		commitFlow:   dependencies.CommitFlow,
		pushFlow:     dependencies.PushFlow,
		publishFlow:  dependencies.PublishFlow,
		prompter:     dependencies.Prompter,
		output:       dependencies.Output,
		logger:       dependencies.Logger,
	}, nil
}

// Run executes the setup session for the repository at repositoryPath. A
// missing git installation and any failure before the initial commit are
// fatal; publishing failures are reported but leave the local repository
// intact.
func (service *Service) Run(executionContext context.Context, repositoryPath string) error {
	fmt.Fprintln(service.output, bannerLineConstant)
	fmt.Fprintln(service.output, bannerTitleConstant)
	fmt.Fprintln(service.output, bannerLineConstant)

	if !service.gitService.CheckGitInstalled(executionContext) {
		fmt.Fprintln(service.output, gitMissingMessageConstant)
		return ErrGitNotInstalled
	}

	if service.gitService.IsRepository(executionContext, repositoryPath) {
		return service.runExistingRepositorySession(executionContext, repositoryPath)
	}
	return service.runFreshRepositorySession(executionContext, repositoryPath)
}

func (service *Service) runFreshRepositorySession(executionContext context.Context, repositoryPath string) error {
	if initError := service.gitService.InitRepository(executionContext, repositoryPath); initError != nil {
		return fmt.Errorf(initFailedTemplateConstant, initError)
	}
	fmt.Fprintln(service.output, initializedMessageConstant)

	if writeError := service.ignoreWriter.Write(repositoryPath); writeError != nil {
		return fmt.Errorf(gitignoreFailedTemplateConstant, writeError)
	}
	fmt.Fprintln(service.output, gitignoreMessageConstant)

	if stageError := service.gitService.StageAll(executionContext, repositoryPath); stageError != nil {
		return fmt.Errorf(stageFailedTemplateConstant, stageError)
	}
	if commitError := service.gitService.Commit(executionContext, repositoryPath, initialCommitMessageConstant); commitError != nil {
		return fmt.Errorf(commitFailedTemplateConstant, commitError)
	}
	fmt.Fprintln(service.output, initialCommitDoneConstant)
	service.logger.Debug("repository initialized", zap.String("repository", repositoryPath))

	wantsPublish, publishPromptError := service.prompter.Confirm(publishPromptConstant)
	if publishPromptError != nil {
		return publishPromptError
	}
	if wantsPublish {
		if publishError := service.publishFlow.Run(executionContext, repositoryPath); publishError != nil {
			service.logger.Warn("publish failed", zap.Error(publishError))
			fmt.Fprintln(service.output, publishFailedConstant)
		}
	} else {
		fmt.Fprintln(service.output, localOnlyMessageConstant)
	}

	fmt.Fprint(service.output, tipsTextConstant)
	return nil
}

func (service *Service) runExistingRepositorySession(executionContext context.Context, repositoryPath string) error {
	fmt.Fprintln(service.output, existingRepoMessageConstant)

	statusOutput, statusError := service.gitService.WorkingTreeStatus(executionContext, repositoryPath)
	if statusError != nil {
		return fmt.Errorf(statusFailedTemplateConstant, statusError)
	}
	status.PrintClassification(service.output, status.ParsePorcelain(statusOutput))

	wantsCommit, commitPromptError := service.prompter.Confirm(commitPromptConstant)
	if commitPromptError != nil {
		return commitPromptError
	}
	if wantsCommit {
		if commitError := service.commitFlow.Run(executionContext, repositoryPath); commitError != nil {
			return commitError
		}
	}

	wantsBranch, branchPromptError := service.prompter.Confirm(branchPromptConstant)
	if branchPromptError != nil {
		return branchPromptError
	}
	if wantsBranch {
		if branchError := service.createAndSwitchBranch(executionContext, repositoryPath); branchError != nil {
			return branchError
		}
	}

	wantsPush, pushPromptError := service.prompter.Confirm(pushPromptConstant)
	if pushPromptError != nil {
		return pushPromptError
	}
	if wantsPush {
		if pushError := service.pushFlow.Run(executionContext, repositoryPath); pushError != nil {
			return pushError
		}
	}

	wantsPublish, publishPromptError := service.prompter.Confirm(publishExistingConstant)
	if publishPromptError != nil {
		return publishPromptError
	}
	if wantsPublish {
		if publishError := service.publishFlow.Run(executionContext, repositoryPath); publishError != nil {
			service.logger.Warn("publish failed", zap.Error(publishError))
			fmt.Fprintln(service.output, publishFailedConstant)
		}
	}

	fmt.Fprint(service.output, tipsTextConstant)
	return nil
}

func (service *Service) createAndSwitchBranch(executionContext context.Context, repositoryPath string) error {
	branchName, namePromptError := service.prompter.AskLine(branchNamePromptConstant)
	if namePromptError != nil {
		return namePromptError
	}
	branchName = strings.TrimSpace(branchName)
	if len(branchName) == 0 {
		fmt.Fprintln(service.output, branchSkippedConstant)
		return nil
	}

	if branchError := service.gitService.CreateBranch(executionContext, repositoryPath, branchName); branchError != nil {
		return fmt.Errorf(branchFailedTemplateConstant, branchName, branchError)
	}
	if checkoutError := service.gitService.Checkout(executionContext, repositoryPath, branchName); checkoutError != nil {
		return fmt.Errorf(checkoutFailedTemplateConstant, branchName, checkoutError)
	}

	fmt.Fprintf(service.output, branchCreatedTemplate, branchName)
	return nil
}
