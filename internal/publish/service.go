package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/repoinit/internal/githubcli"
	"github.com/temirov/repoinit/internal/gitrepo"
)

const (
	originRemoteNameConstant = "origin"
	mainBranchNameConstant   = "main"
	masterBranchNameConstant = "master"

	repositoryNamePromptTemplate    = "Enter GitHub repository name (default: %s): "
	visibilityPromptConstant        = "Repository visibility, public or private (default: public): "
	privateVisibilityTokenConstant  = "private"
	usingCLIMessageConstant         = "Using GitHub CLI to create and push to repository..."
	cliMissingMessageConstant       = "GitHub CLI not found. Setting up GitHub manually..."
	manualInstructionsConstant      = "Please create a new repository on GitHub first:\n1. Go to https://github.com/new\n2. Name your repository: %s\n3. Do NOT initialize with README, license, or gitignore\n4. Click 'Create repository'\n"
	createdConfirmationConstant     = "\nPress Enter after you've created the repository..."
	usernamePromptConstant          = "Enter your GitHub username: "
	publishedMessageConstant        = "Repository published to GitHub."
	remoteAddFailedTemplateConstant = "setting up remote: %w"
	pushFailedTemplateConstant      = "pushing to remote: %w"
	createFailedTemplateConstant    = "creating GitHub repository: %w"
)

// GitService covers the git operations the publish flow performs.
type GitService interface {
	RemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error)
	AddRemote(executionContext context.Context, repositoryPath string, remoteName string, remoteURL string) error
	PushSettingUpstream(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error
}

// GitHubService covers the GitHub CLI operations the publish flow performs.
type GitHubService interface {
	IsInstalled(executionContext context.Context) bool
	CreateRepository(executionContext context.Context, repositoryPath string, repositoryName string, visibility githubcli.RepositoryVisibility) error
}

// Prompter collects the flow's interactive answers.
type Prompter interface {
	AskLine(promptText string) (string, error)
}

// ErrDependenciesNotConfigured indicates the service was built with missing collaborators.
var ErrDependenciesNotConfigured = errors.New("publish dependencies not configured")

// Service publishes a repository to GitHub.
type Service struct {
	gitService    GitService
	githubService GitHubService
	prompter      Prompter
	output        io.Writer
	logger        *zap.Logger
}

// NewService constructs the publish service and validates its collaborators.
func NewService(gitService GitService, githubService GitHubService, prompter Prompter, output io.Writer, logger *zap.Logger) (*Service, error) {
	if gitService == nil || githubService == nil || prompter == nil || output == nil || logger == nil {
		return nil, ErrDependenciesNotConfigured
	}

	return &Service{gitService: gitService, githubService: githubService, prompter: prompter, output: output, logger: logger}, nil
}

// Run publishes the repository at repositoryPath. The repository name
// defaults to the name recorded in the origin remote when one is configured,
// otherwise to the directory basename, and can be overridden at the prompt.
func (service *Service) Run(executionContext context.Context, repositoryPath string) error {
	repositoryName, nameError := service.resolveRepositoryName(executionContext, repositoryPath)
	if nameError != nil {
		return nameError
	}

	if service.githubService.IsInstalled(executionContext) {
		return service.publishWithCLI(executionContext, repositoryPath, repositoryName)
	}
	return service.publishManually(executionContext, repositoryPath, repositoryName)
}

func (service *Service) resolveRepositoryName(executionContext context.Context, repositoryPath string) (string, error) {
	defaultName := service.defaultRepositoryName(executionContext, repositoryPath)
	enteredName, promptError := service.prompter.AskLine(fmt.Sprintf(repositoryNamePromptTemplate, defaultName))
	if promptError != nil {
		return "", promptError
	}
	if len(enteredName) == 0 {
		return defaultName, nil
	}
	return enteredName, nil
}

func (service *Service) defaultRepositoryName(executionContext context.Context, repositoryPath string) string {
	remoteAddress, remoteError := service.gitService.RemoteURL(executionContext, repositoryPath, originRemoteNameConstant)
	if remoteError == nil {
		if parsedRemote, parseError := gitrepo.ParseRemoteURL(remoteAddress); parseError == nil {
			return parsedRemote.Repository
		}
	}
	return filepath.Base(repositoryPath)
}

func (service *Service) publishWithCLI(executionContext context.Context, repositoryPath string, repositoryName string) error {
	fmt.Fprintln(service.output, usingCLIMessageConstant)

	visibilityAnswer, promptError := service.prompter.AskLine(visibilityPromptConstant)
	if promptError != nil {
		return promptError
	}

	visibility := githubcli.VisibilityPublic
	if visibilityAnswer == privateVisibilityTokenConstant {
		visibility = githubcli.VisibilityPrivate
	}

	if createError := service.githubService.CreateRepository(executionContext, repositoryPath, repositoryName, visibility); createError != nil {
		return fmt.Errorf(createFailedTemplateConstant, createError)
	}

	service.logger.Debug("repository published via cli",
		zap.String("repository", repositoryName),
		zap.String("visibility", string(visibility)),
	)
	fmt.Fprintln(service.output, publishedMessageConstant)
	return nil
}

func (service *Service) publishManually(executionContext context.Context, repositoryPath string, repositoryName string) error {
	fmt.Fprintln(service.output, cliMissingMessageConstant)
	fmt.Fprintf(service.output, manualInstructionsConstant, repositoryName)

	if _, promptError := service.prompter.AskLine(createdConfirmationConstant); promptError != nil {
		return promptError
	}

	githubUsername, usernameError := service.prompter.AskLine(usernamePromptConstant)
	if usernameError != nil {
		return usernameError
	}

	remoteURL := gitrepo.FormatHTTPSRemoteURL(githubUsername, repositoryName)
	if remoteError := service.gitService.AddRemote(executionContext, repositoryPath, originRemoteNameConstant, remoteURL); remoteError != nil {
		return fmt.Errorf(remoteAddFailedTemplateConstant, remoteError)
	}

	// git push -u origin main || git push -u origin master
	mainPushError := service.gitService.PushSettingUpstream(executionContext, repositoryPath, originRemoteNameConstant, mainBranchNameConstant)
	if mainPushError != nil {
		if masterPushError := service.gitService.PushSettingUpstream(executionContext, repositoryPath, originRemoteNameConstant, masterBranchNameConstant); masterPushError != nil {
			return fmt.Errorf(pushFailedTemplateConstant, masterPushError)
		}
	}

	service.logger.Debug("repository published manually",
		zap.String("repository", repositoryName),
		zap.String("remote", remoteURL),
	)
	fmt.Fprintln(service.output, publishedMessageConstant)
	return nil
}
