package commitflow

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/repoinit/internal/commitmsg"
	"github.com/temirov/repoinit/internal/status"
)

const (
	nothingToCommitMessageConstant   = "Working tree is clean; nothing to commit."
	modifiedSectionHeaderConstant    = "Modified files:"
	untrackedSectionHeaderConstant   = "Untracked files:"
	stagedSectionHeaderConstant      = "Already staged (will be committed):"
	menuEntryTemplateConstant        = "  %d. %s\n"
	stagedEntryTemplateConstant      = "  - %s\n"
	selectionPromptConstant          = "Select files to stage (e.g. 1,3), 'all', or 'cancel': "
	selectionAbortedMessageConstant  = "No files selected; commit aborted."
	emptyMessageAbortMessageConstant = "Empty commit message; commit aborted."
	commitCreatedMessageConstant     = "Commit created."
	stagingFailedTemplateConstant    = "staging %s: %w"
	statusFailedTemplateConstant     = "reading working tree status: %w"
	commitFailedTemplateConstant     = "creating commit: %w"
)

// GitService covers the git operations the commit flow performs.
type GitService interface {
	WorkingTreeStatus(executionContext context.Context, repositoryPath string) (string, error)
	StagePath(executionContext context.Context, repositoryPath string, path string) error
	Commit(executionContext context.Context, repositoryPath string, message string) error
}

// MessageComposer produces the commit message, typically via an editor.
type MessageComposer interface {
	Compose() (string, error)
}

// LinePrompter reads one answer line from the user.
type LinePrompter interface {
	AskLine(promptText string) (string, error)
}

// ErrDependenciesNotConfigured indicates the service was built with missing collaborators.
var ErrDependenciesNotConfigured = errors.New("commit flow dependencies not configured")

// Service runs the interactive commit sequence.
type Service struct {
	gitService GitService
	composer   MessageComposer
	prompter   LinePrompter
	output     io.Writer
	logger     *zap.Logger
}

// NewService constructs the commit flow service and validates its collaborators.
func NewService(gitService GitService, composer MessageComposer, prompter LinePrompter, output io.Writer, logger *zap.Logger) (*Service, error) {
	if gitService == nil || composer == nil || prompter == nil || output == nil || logger == nil {
		return nil, ErrDependenciesNotConfigured
	}

	return &Service{gitService: gitService, composer: composer, prompter: prompter, output: output, logger: logger}, nil
}

// Run walks selection, staging, message editing, and the commit itself.
// Aborts (empty selection, empty message) finish without error; git
// failures surface as errors after any already-staged paths stay staged.
func (service *Service) Run(executionContext context.Context, repositoryPath string) error {
	statusOutput, statusError := service.gitService.WorkingTreeStatus(executionContext, repositoryPath)
	if statusError != nil {
		return fmt.Errorf(statusFailedTemplateConstant, statusError)
	}

	classification := status.ParsePorcelain(statusOutput)
	if !classification.HasChanges() {
		fmt.Fprintln(service.output, nothingToCommitMessageConstant)
		return nil
	}

	service.printMenu(classification)

	selectionInput, selectionError := service.prompter.AskLine(selectionPromptConstant)
	if selectionError != nil {
		return selectionError
	}

	selectedPaths := status.ParseSelection(selectionInput, classification)
	if len(selectedPaths) == 0 {
		fmt.Fprintln(service.output, selectionAbortedMessageConstant)
		return nil
	}

	for _, selectedPath := range selectedPaths {
		if stagingError := service.gitService.StagePath(executionContext, repositoryPath, selectedPath); stagingError != nil {
			return fmt.Errorf(stagingFailedTemplateConstant, selectedPath, stagingError)
		}
	}

	commitMessage, composeError := service.composer.Compose()
	if composeError != nil {
		if errors.Is(composeError, commitmsg.ErrEmptyMessage) {
			fmt.Fprintln(service.output, emptyMessageAbortMessageConstant)
			return nil
		}
		return composeError
	}

	if commitError := service.gitService.Commit(executionContext, repositoryPath, commitMessage); commitError != nil {
		return fmt.Errorf(commitFailedTemplateConstant, commitError)
	}

	service.logger.Debug("commit created", zap.String("repository", repositoryPath))
	fmt.Fprintln(service.output, commitCreatedMessageConstant)
	return nil
}

func (service *Service) printMenu(classification status.Classification) {
	menuIndex := 1
	if len(classification.Modified) > 0 {
		fmt.Fprintln(service.output, modifiedSectionHeaderConstant)
		for _, modifiedPath := range classification.Modified {
			fmt.Fprintf(service.output, menuEntryTemplateConstant, menuIndex, modifiedPath)
			menuIndex++
		}
	}
	if len(classification.Untracked) > 0 {
		fmt.Fprintln(service.output, untrackedSectionHeaderConstant)
		for _, untrackedPath := range classification.Untracked {
			fmt.Fprintf(service.output, menuEntryTemplateConstant, menuIndex, untrackedPath)
			menuIndex++
		}
	}
	if len(classification.Staged) > 0 {
		fmt.Fprintln(service.output, stagedSectionHeaderConstant)
		for _, stagedPath := range classification.Staged {
			fmt.Fprintf(service.output, stagedEntryTemplateConstant, stagedPath)
		}
	}
}
