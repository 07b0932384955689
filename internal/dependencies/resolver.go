package dependencies

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/temirov/repoinit/internal/execshell"
	"github.com/temirov/repoinit/internal/githubcli"
	"github.com/temirov/repoinit/internal/gitignore"
	"github.com/temirov/repoinit/internal/gitrepo"
)

// ResolveGitExecutor returns the provided executor or constructs a
// shell-backed default. Human-readable logging attaches a console observer
// that narrates command activity on the provided writer.
func ResolveGitExecutor(existing gitrepo.GitExecutor, logger *zap.Logger, humanReadableLogging bool, consoleWriter io.Writer) (gitrepo.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	if humanReadableLogging {
		return execshell.NewShellExecutorWithObserver(logger, commandRunner, execshell.NewConsoleCommandObserver(consoleWriter))
	}
	return execshell.NewShellExecutor(logger, commandRunner)
}

// ResolveRepositoryManager returns the provided manager or constructs one from the executor.
func ResolveRepositoryManager(existing *gitrepo.RepositoryManager, executor gitrepo.GitExecutor) (*gitrepo.RepositoryManager, error) {
	if existing != nil {
		return existing, nil
	}
	return gitrepo.NewRepositoryManager(executor)
}

// ResolveGitHubClient returns the provided client or creates a GitHub CLI-backed implementation.
func ResolveGitHubClient(existing *githubcli.Client, executor githubcli.GitHubExecutor) (*githubcli.Client, error) {
	if existing != nil {
		return existing, nil
	}
	return githubcli.NewClient(executor)
}

// ResolveIgnoreWriter returns the provided writer or an OS-backed default.
func ResolveIgnoreWriter(existing *gitignore.Writer) (*gitignore.Writer, error) {
	if existing != nil {
		return existing, nil
	}
	return gitignore.NewWriter(gitignore.OSFileSystem{})
}

// ResolveWorkingDirectory returns the provided directory or the process working directory.
func ResolveWorkingDirectory(existing string) (string, error) {
	if len(existing) > 0 {
		return existing, nil
	}
	return os.Getwd()
}
