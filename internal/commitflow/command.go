package commitflow

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/repoinit/internal/commitmsg"
	"github.com/temirov/repoinit/internal/dependencies"
	"github.com/temirov/repoinit/internal/gitrepo"
	"github.com/temirov/repoinit/internal/prompt"
	"github.com/temirov/repoinit/internal/utils"
)

const (
	commandUseConstant   = "commit"
	commandShortConstant = "Interactively select, stage, and commit changed files"
	commandLongConstant  = "commit classifies the working tree, lets you pick modified and untracked files by number, opens your editor on a commit message template, and creates the commit."
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the commit cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	EditorProvider               func() string
	GitService                   GitService
	Composer                     MessageComposer
	Prompter                     LinePrompter
	WorkingDirectory             string
}

// Build constructs the cobra command for the interactive commit flow.
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

	composer := builder.Composer
	if composer == nil {
		editorComposer, composerError := commitmsg.NewComposer(commitmsg.OSEditorLauncher{}, builder.resolveEditor())
		if composerError != nil {
			return composerError
		}
		composer = editorComposer
	}

	prompter := builder.Prompter
	if prompter == nil {
		prompter = prompt.NewIOPrompter(command.InOrStdin(), outputWriter)
	}

	service, serviceError := NewService(gitService, composer, prompter, outputWriter, logger)
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

func (builder *CommandBuilder) resolveEditor() string {
	if builder.EditorProvider == nil {
		return ""
	}
	return builder.EditorProvider()
}

func (builder *CommandBuilder) humanReadableLoggingEnabled() bool {
	return builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider()
}
