package gitrepo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/repoinit/internal/execshell"
	"github.com/temirov/repoinit/internal/gitrepo"
)

const testRepositoryPathConstant = "/tmp/project"

type stubGitExecutor struct {
	recorded  []execshell.CommandDetails
	responses []stubGitResponse
}

type stubGitResponse struct {
	result execshell.ExecutionResult
	err    error
}

func (executor *stubGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recorded = append(executor.recorded, details)
	if len(executor.responses) == 0 {
		return execshell.ExecutionResult{}, nil
	}

	next := executor.responses[0]
	executor.responses = executor.responses[1:]
	return next.result, next.err
}

func (executor *stubGitExecutor) ExecuteGitHubCLI(context.Context, execshell.CommandDetails) (execshell.ExecutionResult, error) {
	return execshell.ExecutionResult{}, nil
}

func TestNewRepositoryManagerRequiresExecutor(testInstance *testing.T) {
	_, creationError := gitrepo.NewRepositoryManager(nil)
	require.ErrorIs(testInstance, creationError, gitrepo.ErrExecutorNotConfigured)
}

func TestRepositoryManagerCommandConstruction(testInstance *testing.T) {
	testCases := []struct {
		name              string
		invoke            func(manager *gitrepo.RepositoryManager, executor *stubGitExecutor) error
		expectedArguments []string
	}{
		{
			name: "init",
			invoke: func(manager *gitrepo.RepositoryManager, _ *stubGitExecutor) error {
				return manager.InitRepository(context.Background(), testRepositoryPathConstant)
			},
			expectedArguments: []string{"init"},
		},
		{
			name: "stage_single_path",
			invoke: func(manager *gitrepo.RepositoryManager, _ *stubGitExecutor) error {
				return manager.StagePath(context.Background(), testRepositoryPathConstant, "main.py")
			},
			expectedArguments: []string{"add", "main.py"},
		},
		{
			name: "stage_all",
			invoke: func(manager *gitrepo.RepositoryManager, _ *stubGitExecutor) error {
				return manager.StageAll(context.Background(), testRepositoryPathConstant)
			},
			expectedArguments: []string{"add", "."},
		},
		{
			name: "commit_with_message",
			invoke: func(manager *gitrepo.RepositoryManager, _ *stubGitExecutor) error {
				return manager.Commit(context.Background(), testRepositoryPathConstant, "Initial commit")
			},
			expectedArguments: []string{"commit", "-m", "Initial commit"},
		},
		{
			name: "create_branch",
			invoke: func(manager *gitrepo.RepositoryManager, _ *stubGitExecutor) error {
				return manager.CreateBranch(context.Background(), testRepositoryPathConstant, "feature")
			},
			expectedArguments: []string{"branch", "feature"},
		},
		{
			name: "checkout_branch",
			invoke: func(manager *gitrepo.RepositoryManager, _ *stubGitExecutor) error {
				return manager.Checkout(context.Background(), testRepositoryPathConstant, "feature")
			},
			expectedArguments: []string{"checkout", "feature"},
		},
		{
			name: "add_remote",
			invoke: func(manager *gitrepo.RepositoryManager, _ *stubGitExecutor) error {
				return manager.AddRemote(context.Background(), testRepositoryPathConstant, "origin", "https://github.com/octocat/demo.git")
			},
			expectedArguments: []string{"remote", "add", "origin", "https://github.com/octocat/demo.git"},
		},
		{
			name: "remote_get_url",
			invoke: func(manager *gitrepo.RepositoryManager, _ *stubGitExecutor) error {
				_, remoteURLError := manager.RemoteURL(context.Background(), testRepositoryPathConstant, "origin")
				return remoteURLError
			},
			expectedArguments: []string{"remote", "get-url", "origin"},
		},
		{
			name: "push_plain",
			invoke: func(manager *gitrepo.RepositoryManager, _ *stubGitExecutor) error {
				return manager.Push(context.Background(), testRepositoryPathConstant)
			},
			expectedArguments: []string{"push"},
		},
		{
			name: "push_setting_upstream",
			invoke: func(manager *gitrepo.RepositoryManager, _ *stubGitExecutor) error {
				return manager.PushSettingUpstream(context.Background(), testRepositoryPathConstant, "origin", "main")
			},
			expectedArguments: []string{"push", "-u", "origin", "main"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &stubGitExecutor{}
			manager, creationError := gitrepo.NewRepositoryManager(executor)
			require.NoError(testInstance, creationError)

			require.NoError(testInstance, testCase.invoke(manager, executor))
			require.Len(testInstance, executor.recorded, 1)
			require.Equal(testInstance, testCase.expectedArguments, executor.recorded[0].Arguments)
			require.Equal(testInstance, testRepositoryPathConstant, executor.recorded[0].WorkingDirectory)
		})
	}
}

func TestCheckGitInstalled(testInstance *testing.T) {
	executor := &stubGitExecutor{}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(testInstance, creationError)
	require.True(testInstance, manager.CheckGitInstalled(context.Background()))
	require.Equal(testInstance, []string{"--version"}, executor.recorded[0].Arguments)

	failingExecutor := &stubGitExecutor{responses: []stubGitResponse{{err: errors.New("not installed")}}}
	failingManager, failingCreationError := gitrepo.NewRepositoryManager(failingExecutor)
	require.NoError(testInstance, failingCreationError)
	require.False(testInstance, failingManager.CheckGitInstalled(context.Background()))
}

func TestIsRepositoryInterpretsWorkTreeProbe(testInstance *testing.T) {
	testCases := []struct {
		name     string
		response stubGitResponse
		expected bool
	}{
		{
			name:     "inside_work_tree",
			response: stubGitResponse{result: execshell.ExecutionResult{StandardOutput: "true\n"}},
			expected: true,
		},
		{
			name:     "probe_failure",
			response: stubGitResponse{err: errors.New("not a repository")},
			expected: false,
		},
		{
			name:     "unexpected_output",
			response: stubGitResponse{result: execshell.ExecutionResult{StandardOutput: "false\n"}},
			expected: false,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &stubGitExecutor{responses: []stubGitResponse{testCase.response}}
			manager, creationError := gitrepo.NewRepositoryManager(executor)
			require.NoError(testInstance, creationError)
			require.Equal(testInstance, testCase.expected, manager.IsRepository(context.Background(), testRepositoryPathConstant))
		})
	}
}

func TestRemoteURLTrimsOutput(testInstance *testing.T) {
	executor := &stubGitExecutor{responses: []stubGitResponse{
		{result: execshell.ExecutionResult{StandardOutput: "git@github.com:octocat/demo.git\n"}},
	}}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(testInstance, creationError)

	remoteURL, remoteURLError := manager.RemoteURL(context.Background(), testRepositoryPathConstant, "origin")
	require.NoError(testInstance, remoteURLError)
	require.Equal(testInstance, "git@github.com:octocat/demo.git", remoteURL)
}

func TestCurrentBranchTrimsOutput(testInstance *testing.T) {
	executor := &stubGitExecutor{responses: []stubGitResponse{
		{result: execshell.ExecutionResult{StandardOutput: "main\n"}},
	}}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(testInstance, creationError)

	branchName, branchError := manager.CurrentBranch(context.Background(), testRepositoryPathConstant)
	require.NoError(testInstance, branchError)
	require.Equal(testInstance, "main", branchName)
	require.Equal(testInstance, []string{"rev-parse", "--abbrev-ref", "HEAD"}, executor.recorded[0].Arguments)
}

func TestListRemotesSplitsLines(testInstance *testing.T) {
	executor := &stubGitExecutor{responses: []stubGitResponse{
		{result: execshell.ExecutionResult{StandardOutput: "origin\nupstream\n"}},
	}}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(testInstance, creationError)

	remoteNames, listError := manager.ListRemotes(context.Background(), testRepositoryPathConstant)
	require.NoError(testInstance, listError)
	require.Equal(testInstance, []string{"origin", "upstream"}, remoteNames)
}

func TestRemoteBranchExistsUsesHeadReferenceSubstring(testInstance *testing.T) {
	lsRemoteOutput := "a1b2c3\trefs/heads/main\nd4e5f6\trefs/heads/feature\n"

	executor := &stubGitExecutor{responses: []stubGitResponse{
		{result: execshell.ExecutionResult{StandardOutput: lsRemoteOutput}},
	}}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(testInstance, creationError)

	branchExists, lookupError := manager.RemoteBranchExists(context.Background(), testRepositoryPathConstant, "origin", "feature")
	require.NoError(testInstance, lookupError)
	require.True(testInstance, branchExists)
	require.Equal(testInstance, []string{"ls-remote", "--heads", "origin"}, executor.recorded[0].Arguments)

	executor.responses = []stubGitResponse{{result: execshell.ExecutionResult{StandardOutput: lsRemoteOutput}}}
	branchExists, lookupError = manager.RemoteBranchExists(context.Background(), testRepositoryPathConstant, "origin", "develop")
	require.NoError(testInstance, lookupError)
	require.False(testInstance, branchExists)
}
