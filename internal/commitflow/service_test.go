package commitflow_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/repoinit/internal/commitflow"
	"github.com/temirov/repoinit/internal/commitmsg"
)

const flowRepositoryPathConstant = "/tmp/project"

type stubGitService struct {
	statusOutput string
	statusError  error
	stagedPaths  []string
	stageErrors  map[string]error
	committed    []string
	commitError  error
}

func (service *stubGitService) WorkingTreeStatus(context.Context, string) (string, error) {
	return service.statusOutput, service.statusError
}

func (service *stubGitService) StagePath(_ context.Context, _ string, path string) error {
	if stageError, found := service.stageErrors[path]; found {
		return stageError
	}
	service.stagedPaths = append(service.stagedPaths, path)
	return nil
}

func (service *stubGitService) Commit(_ context.Context, _ string, message string) error {
	if service.commitError != nil {
		return service.commitError
	}
	service.committed = append(service.committed, message)
	return nil
}

type stubComposer struct {
	message      string
	composeError error
}

func (composer *stubComposer) Compose() (string, error) {
	return composer.message, composer.composeError
}

type stubLinePrompter struct {
	response string
}

func (prompter *stubLinePrompter) AskLine(string) (string, error) {
	return prompter.response, nil
}

func newFlowService(testInstance *testing.T, gitService *stubGitService, composer *stubComposer, selection string) (*commitflow.Service, *bytes.Buffer) {
	outputBuffer := &bytes.Buffer{}
	service, creationError := commitflow.NewService(gitService, composer, &stubLinePrompter{response: selection}, outputBuffer, zap.NewNop())
	require.NoError(testInstance, creationError)
	return service, outputBuffer
}

func TestNewServiceValidatesDependencies(testInstance *testing.T) {
	_, creationError := commitflow.NewService(nil, nil, nil, nil, nil)
	require.ErrorIs(testInstance, creationError, commitflow.ErrDependenciesNotConfigured)
}

func TestRunReportsCleanWorkingTree(testInstance *testing.T) {
	gitService := &stubGitService{statusOutput: ""}
	service, outputBuffer := newFlowService(testInstance, gitService, &stubComposer{}, "all")

	require.NoError(testInstance, service.Run(context.Background(), flowRepositoryPathConstant))
	require.Contains(testInstance, outputBuffer.String(), "nothing to commit")
	require.Empty(testInstance, gitService.stagedPaths)
	require.Empty(testInstance, gitService.committed)
}

func TestRunStagesSelectionAndCommits(testInstance *testing.T) {
	gitService := &stubGitService{statusOutput: " M main.py\n?? notes.txt\n"}
	composer := &stubComposer{message: "Add notes"}
	service, outputBuffer := newFlowService(testInstance, gitService, composer, "all")

	require.NoError(testInstance, service.Run(context.Background(), flowRepositoryPathConstant))
	require.Equal(testInstance, []string{"main.py", "notes.txt"}, gitService.stagedPaths)
	require.Equal(testInstance, []string{"Add notes"}, gitService.committed)
	require.Contains(testInstance, outputBuffer.String(), "Commit created.")
}

func TestRunAbortsOnCancelWithNoSideEffects(testInstance *testing.T) {
	gitService := &stubGitService{statusOutput: " M main.py\n"}
	service, outputBuffer := newFlowService(testInstance, gitService, &stubComposer{message: "unused"}, "cancel")

	require.NoError(testInstance, service.Run(context.Background(), flowRepositoryPathConstant))
	require.Empty(testInstance, gitService.stagedPaths)
	require.Empty(testInstance, gitService.committed)
	require.Contains(testInstance, outputBuffer.String(), "commit aborted")
}

func TestRunAbortsWhenAllSelectionTokensInvalid(testInstance *testing.T) {
	gitService := &stubGitService{statusOutput: " M main.py\n"}
	service, _ := newFlowService(testInstance, gitService, &stubComposer{message: "unused"}, "9,abc")

	require.NoError(testInstance, service.Run(context.Background(), flowRepositoryPathConstant))
	require.Empty(testInstance, gitService.stagedPaths)
	require.Empty(testInstance, gitService.committed)
}

func TestRunStopsOnFirstStagingFailureWithoutRollback(testInstance *testing.T) {
	gitService := &stubGitService{
		statusOutput: " M first.py\n M second.py\n",
		stageErrors:  map[string]error{"second.py": errors.New("index locked")},
	}
	service, _ := newFlowService(testInstance, gitService, &stubComposer{message: "unused"}, "all")

	runError := service.Run(context.Background(), flowRepositoryPathConstant)
	require.Error(testInstance, runError)
	require.Equal(testInstance, []string{"first.py"}, gitService.stagedPaths)
	require.Empty(testInstance, gitService.committed)
}

func TestRunAbortsOnEmptyMessageAfterStaging(testInstance *testing.T) {
	gitService := &stubGitService{statusOutput: "?? notes.txt\n"}
	composer := &stubComposer{composeError: commitmsg.ErrEmptyMessage}
	service, outputBuffer := newFlowService(testInstance, gitService, composer, "1")

	require.NoError(testInstance, service.Run(context.Background(), flowRepositoryPathConstant))
	require.Equal(testInstance, []string{"notes.txt"}, gitService.stagedPaths)
	require.Empty(testInstance, gitService.committed)
	require.Contains(testInstance, outputBuffer.String(), "Empty commit message")
}

func TestRunSurfacesCommitFailure(testInstance *testing.T) {
	gitService := &stubGitService{
		statusOutput: "?? notes.txt\n",
		commitError:  errors.New("hook rejected"),
	}
	service, _ := newFlowService(testInstance, gitService, &stubComposer{message: "Add notes"}, "1")

	require.Error(testInstance, service.Run(context.Background(), flowRepositoryPathConstant))
}

func TestRunListsStagedPathsWithoutOfferingThem(testInstance *testing.T) {
	gitService := &stubGitService{statusOutput: "M  staged.py\n M modified.py\n"}
	service, outputBuffer := newFlowService(testInstance, gitService, &stubComposer{message: "Update"}, "1")

	require.NoError(testInstance, service.Run(context.Background(), flowRepositoryPathConstant))
	require.Equal(testInstance, []string{"modified.py"}, gitService.stagedPaths)
	require.Contains(testInstance, outputBuffer.String(), "Already staged")
}
