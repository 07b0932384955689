package execshell

import (
	"context"
	"fmt"
	"strings"
)

const (
	gitToolNameConstant       = "git"
	githubCLIToolNameConstant = "gh"

	commandFailedTemplateConstant             = "%s exited with code %d%s"
	commandExecutionFailedTemplateConstant    = "%s could not be executed: %s"
	commandFailureDetailSuffixTemplate        = ": %s"
	commandArgumentsJoinSeparatorConstant     = " "
	unknownExecutionFailureMessageConstant    = "unknown execution failure"
	loggerNotConfiguredMessageConstant        = "logger not configured"
	commandRunnerNotConfiguredMessageConstant = "command runner not configured"
)

// CommandName identifies a supported external executable.
type CommandName string

// Supported tool enumerations.
const (
	CommandGit    CommandName = CommandName(gitToolNameConstant)
	CommandGitHub CommandName = CommandName(githubCLIToolNameConstant)
)

// CommandDetails describes a tool invocation.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
}

// ShellCommand combines a CommandName with specific invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// String renders the command the way an operator would type it.
func (command ShellCommand) String() string {
	if len(command.Details.Arguments) == 0 {
		return string(command.Name)
	}
	return string(command.Name) + commandArgumentsJoinSeparatorConstant + strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant)
}

// ExecutionResult captures the observable results of executing a command.
// Standard output and standard error are kept separate so callers never have
// to guess which stream a diagnostic came from.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner represents the ability to run shell commands.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// CommandFailedError reports a command that ran to completion with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failed command including captured standard error when present.
func (failure CommandFailedError) Error() string {
	diagnosticSuffix := ""
	trimmedStandardError := strings.TrimSpace(failure.Result.StandardError)
	if len(trimmedStandardError) > 0 {
		diagnosticSuffix = fmt.Sprintf(commandFailureDetailSuffixTemplate, trimmedStandardError)
	}
	return fmt.Sprintf(commandFailedTemplateConstant, failure.Command.String(), failure.Result.ExitCode, diagnosticSuffix)
}

// CommandExecutionError reports a command that never produced an exit code.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the execution failure.
func (failure CommandExecutionError) Error() string {
	causeDescription := unknownExecutionFailureMessageConstant
	if failure.Cause != nil {
		causeDescription = failure.Cause.Error()
	}
	return fmt.Sprintf(commandExecutionFailedTemplateConstant, failure.Command.String(), causeDescription)
}

// Unwrap exposes the underlying cause.
func (failure CommandExecutionError) Unwrap() error {
	return failure.Cause
}
