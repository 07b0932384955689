package status

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/repoinit/internal/dependencies"
	"github.com/temirov/repoinit/internal/gitrepo"
	"github.com/temirov/repoinit/internal/utils"
)

const (
	commandUseConstant   = "status"
	commandShortConstant = "Show the working tree classified into staged, modified, and untracked files"
	commandLongConstant  = "status runs a porcelain status query and groups the results the way the interactive flows present them."

	cleanTreeMessageConstant         = "Working tree is clean."
	stagedHeaderConstant             = "Staged:"
	modifiedHeaderConstant           = "Modified:"
	untrackedHeaderConstant          = "Untracked:"
	statusEntryTemplateConstant      = "  %s\n"
	statusQueryErrorTemplateConstant = "reading working tree status: %w"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the status cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	GitService                   gitrepo.GitExecutor
	WorkingDirectory             string
}

// Build constructs the cobra command for the status report.
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

	gitExecutor, executorError := dependencies.ResolveGitExecutor(builder.GitService, logger, builder.humanReadableLoggingEnabled(), outputWriter)
	if executorError != nil {
		return executorError
	}
	repositoryManager, managerError := gitrepo.NewRepositoryManager(gitExecutor)
	if managerError != nil {
		return managerError
	}

	statusOutput, statusError := repositoryManager.WorkingTreeStatus(command.Context(), repositoryPath)
	if statusError != nil {
		return fmt.Errorf(statusQueryErrorTemplateConstant, statusError)
	}

	PrintClassification(outputWriter, ParsePorcelain(statusOutput))
	return nil
}

// PrintClassification writes the grouped working tree report, one section per
// non-empty category, or the clean-tree message when nothing changed.
func PrintClassification(outputWriter io.Writer, classification Classification) {
	if !classification.HasChanges() {
		fmt.Fprintln(outputWriter, cleanTreeMessageConstant)
		return
	}

	sections := []struct {
		header string
		paths  []string
	}{
		{header: stagedHeaderConstant, paths: classification.Staged},
		{header: modifiedHeaderConstant, paths: classification.Modified},
		{header: untrackedHeaderConstant, paths: classification.Untracked},
	}
	for _, section := range sections {
		if len(section.paths) == 0 {
			continue
		}
		fmt.Fprintln(outputWriter, section.header)
		for _, path := range section.paths {
			fmt.Fprintf(outputWriter, statusEntryTemplateConstant, path)
		}
	}
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
