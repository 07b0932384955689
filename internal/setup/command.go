package setup

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/repoinit/internal/commitflow"
	"github.com/temirov/repoinit/internal/commitmsg"
	"github.com/temirov/repoinit/internal/dependencies"
	"github.com/temirov/repoinit/internal/gitrepo"
	"github.com/temirov/repoinit/internal/prompt"
	"github.com/temirov/repoinit/internal/publish"
	"github.com/temirov/repoinit/internal/pushflow"
	"github.com/temirov/repoinit/internal/utils"
)

const (
	commandUseConstant   = "setup"
	commandShortConstant = "Run the interactive repository setup session"
	commandLongConstant  = "setup verifies the git installation, initializes a repository with a .gitignore and an initial commit when none exists, and walks an existing repository through commit, branch, push, and publish decisions."
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the setup cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	EditorProvider               func() string
	GitExecutor                  gitrepo.GitExecutor
	WorkingDirectory             string
}

// Build constructs the cobra command for the full setup session.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	return &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortConstant,
		Long:  commandLongConstant,
		RunE:  builder.Run,
	}, nil
}

// Run wires the session's collaborators and executes it. The root command
// delegates here so that running the binary with no subcommand starts the
// session.
func (builder *CommandBuilder) Run(command *cobra.Command, _ []string) error {
	repositoryPath, workingDirectoryError := dependencies.ResolveWorkingDirectory(builder.WorkingDirectory)
	if workingDirectoryError != nil {
		return workingDirectoryError
	}

	logger := builder.resolveLogger()
	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())
	humanReadable := builder.humanReadableLoggingEnabled()

	gitExecutor, executorError := dependencies.ResolveGitExecutor(builder.GitExecutor, logger, humanReadable, outputWriter)
	if executorError != nil {
		return executorError
	}
	repositoryManager, managerError := dependencies.ResolveRepositoryManager(nil, gitExecutor)
	if managerError != nil {
		return managerError
	}
	githubClient, clientError := dependencies.ResolveGitHubClient(nil, gitExecutor)
	if clientError != nil {
		return clientError
	}
	ignoreWriter, writerError := dependencies.ResolveIgnoreWriter(nil)
	if writerError != nil {
		return writerError
	}

	prompter := prompt.NewIOPrompter(command.InOrStdin(), outputWriter)

	composer, composerError := commitmsg.NewComposer(commitmsg.OSEditorLauncher{}, builder.resolveEditor())
	if composerError != nil {
		return composerError
	}

	commitService, commitServiceError := commitflow.NewService(repositoryManager, composer, prompter, outputWriter, logger)
	if commitServiceError != nil {
		return commitServiceError
	}
	pushService, pushServiceError := pushflow.NewService(repositoryManager, prompter, outputWriter, logger)
	if pushServiceError != nil {
		return pushServiceError
	}
	publishService, publishServiceError := publish.NewService(repositoryManager, githubClient, prompter, outputWriter, logger)
	if publishServiceError != nil {
		return publishServiceError
	}

	setupService, setupServiceError := NewService(Dependencies{
		GitService:   repositoryManager,
		IgnoreWriter: ignoreWriter,
		CommitFlow:   commitService,
		PushFlow:     pushService,
		PublishFlow:  publishService,
		Prompter:     prompter,
		Output:       outputWriter,
		Logger:       logger,
	})
	if setupServiceError != nil {
		return setupServiceError
	}

	return setupService.Run(command.Context(), repositoryPath)
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	if logger := builder.LoggerProvider(); logger != nil {
		return logger
	}
	return zap.NewNop()
}

func (builder *CommandBuilder) resolveEditor() string {
	if builder.EditorProvider == nil {
		return ""
	}
	return builder.EditorProvider()
}

func (builder *CommandBuilder) humanReadableLoggingEnabled() bool {
	return builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider()
}
