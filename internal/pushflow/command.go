package pushflow

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/repoinit/internal/dependencies"
	"github.com/temirov/repoinit/internal/gitrepo"
	"github.com/temirov/repoinit/internal/prompt"
	"github.com/temirov/repoinit/internal/utils"
)

const (
	commandUseConstant   = "push"
	commandShortConstant = "Push the current branch to its remote"
	commandLongConstant  = "push sends the current branch to origin, setting the upstream when the branch is new there, and asks for confirmation before pushing main or master."
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the push cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	GitService                   GitService
	Prompter                     ConfirmationPrompter
	WorkingDirectory             string
}

// Build constructs the cobra command for the push flow.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	return &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortConstant,
		Long:  commandLongConstant,
		RunE:  builder.run,
	}, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, _ []string) error {
	repositoryPath, workingDirectoryError := dependencies.ResolveWorkingDirectory(builder.WorkingDirectory)
	if workingDirectoryError != nil {
		return workingDirectoryError
	}

	logger := builder.resolveLogger()
	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())

	gitService := builder.GitService
	if gitService == nil {
		gitExecutor, executorError := dependencies.ResolveGitExecutor(nil, logger, builder.humanReadableLoggingEnabled(), outputWriter)
		if executorError != nil {
			return executorError
		}
		repositoryManager, managerError := gitrepo.NewRepositoryManager(gitExecutor)
		if managerError != nil {
			return managerError
		}
		gitService = repositoryManager
	}

	prompter := builder.Prompter
	if prompter == nil {
		prompter = prompt.NewIOPrompter(command.InOrStdin(), outputWriter)
	}

	service, serviceError := NewService(gitService, prompter, outputWriter, logger)
	if serviceError != nil {
		return serviceError
	}
	return service.Run(command.Context(), repositoryPath)
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

func (builder *CommandBuilder) humanReadableLoggingEnabled() bool {
	return builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider()
}
