package publish_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/repoinit/internal/githubcli"
	"github.com/temirov/repoinit/internal/publish"
)

const publishRepositoryPathConstant = "/home/user/projects/demo"

type recordedPush struct {
	remoteName string
	branchName string
}

type stubPublishGitService struct {
	remoteURL       string
	remoteURLError  error
	addedRemotes    map[string]string
	pushes          []recordedPush
	pushErrorsByKey map[string]error
}

func newStubPublishGitService() *stubPublishGitService {
	return &stubPublishGitService{
		remoteURLError:  errors.New("no such remote 'origin'"),
		addedRemotes:    map[string]string{},
		pushErrorsByKey: map[string]error{},
	}
}

func (service *stubPublishGitService) RemoteURL(context.Context, string, string) (string, error) {
	return service.remoteURL, service.remoteURLError
}

func (service *stubPublishGitService) AddRemote(_ context.Context, _ string, remoteName string, remoteURL string) error {
	service.addedRemotes[remoteName] = remoteURL
	return nil
}

func (service *stubPublishGitService) PushSettingUpstream(_ context.Context, _ string, remoteName string, branchName string) error {
	service.pushes = append(service.pushes, recordedPush{remoteName: remoteName, branchName: branchName})
	return service.pushErrorsByKey[branchName]
}

type stubGitHubService struct {
	installed        bool
	createdName      string
	createdVisiblity githubcli.RepositoryVisibility
	createError      error
}

func (service *stubGitHubService) IsInstalled(context.Context) bool {
	return service.installed
}

func (service *stubGitHubService) CreateRepository(_ context.Context, _ string, repositoryName string, visibility githubcli.RepositoryVisibility) error {
	service.createdName = repositoryName
	service.createdVisiblity = visibility
	return service.createError
}

type scriptedPrompter struct {
	responses []string
}

func (prompter *scriptedPrompter) AskLine(string) (string, error) {
	if len(prompter.responses) == 0 {
		return "", nil
	}
	next := prompter.responses[0]
	prompter.responses = prompter.responses[1:]
	return next, nil
}

func newPublishService(testInstance *testing.T, gitService publish.GitService, githubService publish.GitHubService, responses []string) (*publish.Service, *bytes.Buffer) {
	outputBuffer := &bytes.Buffer{}
	service, creationError := publish.NewService(gitService, githubService, &scriptedPrompter{responses: responses}, outputBuffer, zap.NewNop())
	require.NoError(testInstance, creationError)
	return service, outputBuffer
}

func TestNewServiceValidatesDependencies(testInstance *testing.T) {
	_, creationError := publish.NewService(nil, nil, nil, nil, nil)
	require.ErrorIs(testInstance, creationError, publish.ErrDependenciesNotConfigured)
}

func TestRunUsesDirectoryBasenameAsDefaultName(testInstance *testing.T) {
	githubService := &stubGitHubService{installed: true}
	service, _ := newPublishService(testInstance, newStubPublishGitService(), githubService, []string{"", ""})

	require.NoError(testInstance, service.Run(context.Background(), publishRepositoryPathConstant))
	require.Equal(testInstance, "demo", githubService.createdName)
	require.Equal(testInstance, githubcli.VisibilityPublic, githubService.createdVisiblity)
}

func TestRunDefaultsNameFromExistingOriginRemote(testInstance *testing.T) {
	gitService := newStubPublishGitService()
	gitService.remoteURL = "git@github.com:octocat/widgets.git"
	gitService.remoteURLError = nil
	githubService := &stubGitHubService{installed: true}
	service, _ := newPublishService(testInstance, gitService, githubService, []string{"", ""})

	require.NoError(testInstance, service.Run(context.Background(), publishRepositoryPathConstant))
	require.Equal(testInstance, "widgets", githubService.createdName)
}

func TestRunFallsBackToBasenameOnUnparseableRemote(testInstance *testing.T) {
	gitService := newStubPublishGitService()
	gitService.remoteURL = "/srv/git/demo.git"
	gitService.remoteURLError = nil
	githubService := &stubGitHubService{installed: true}
	service, _ := newPublishService(testInstance, gitService, githubService, []string{"", ""})

	require.NoError(testInstance, service.Run(context.Background(), publishRepositoryPathConstant))
	require.Equal(testInstance, "demo", githubService.createdName)
}

func TestRunHonorsRepositoryNameOverride(testInstance *testing.T) {
	githubService := &stubGitHubService{installed: true}
	service, _ := newPublishService(testInstance, newStubPublishGitService(), githubService, []string{"renamed", "private"})

	require.NoError(testInstance, service.Run(context.Background(), publishRepositoryPathConstant))
	require.Equal(testInstance, "renamed", githubService.createdName)
	require.Equal(testInstance, githubcli.VisibilityPrivate, githubService.createdVisiblity)
}

func TestRunDefaultsVisibilityToPublicOnInvalidAnswer(testInstance *testing.T) {
	githubService := &stubGitHubService{installed: true}
	service, _ := newPublishService(testInstance, newStubPublishGitService(), githubService, []string{"", "internal"})

	require.NoError(testInstance, service.Run(context.Background(), publishRepositoryPathConstant))
	require.Equal(testInstance, githubcli.VisibilityPublic, githubService.createdVisiblity)
}

func TestRunSurfacesCreateRepositoryFailure(testInstance *testing.T) {
	githubService := &stubGitHubService{installed: true, createError: errors.New("quota exceeded")}
	service, _ := newPublishService(testInstance, newStubPublishGitService(), githubService, []string{"", ""})

	require.Error(testInstance, service.Run(context.Background(), publishRepositoryPathConstant))
}

func TestRunManualFlowAddsRemoteAndPushesMain(testInstance *testing.T) {
	gitService := newStubPublishGitService()
	service, outputBuffer := newPublishService(testInstance, gitService, &stubGitHubService{installed: false}, []string{"", "", "octocat"})

	require.NoError(testInstance, service.Run(context.Background(), publishRepositoryPathConstant))
	require.Equal(testInstance, "https://github.com/octocat/demo.git", gitService.addedRemotes["origin"])
	require.Equal(testInstance, []recordedPush{{remoteName: "origin", branchName: "main"}}, gitService.pushes)
	require.Contains(testInstance, outputBuffer.String(), "https://github.com/new")
}

func TestRunManualFlowFallsBackToMaster(testInstance *testing.T) {
	gitService := newStubPublishGitService()
	gitService.pushErrorsByKey["main"] = errors.New("main not found")
	service, _ := newPublishService(testInstance, gitService, &stubGitHubService{installed: false}, []string{"", "", "octocat"})

	require.NoError(testInstance, service.Run(context.Background(), publishRepositoryPathConstant))
	require.Equal(testInstance, []recordedPush{
		{remoteName: "origin", branchName: "main"},
		{remoteName: "origin", branchName: "master"},
	}, gitService.pushes)
}

func TestRunManualFlowFailsWhenBothPushTargetsFail(testInstance *testing.T) {
	gitService := newStubPublishGitService()
	gitService.pushErrorsByKey["main"] = errors.New("main not found")
	gitService.pushErrorsByKey["master"] = errors.New("master not found")
	service, _ := newPublishService(testInstance, gitService, &stubGitHubService{installed: false}, []string{"", "", "octocat"})

	require.Error(testInstance, service.Run(context.Background(), publishRepositoryPathConstant))
}
