package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant          = "Running %s"
	genericFailureTemplateConstant        = "%s failed with exit code %d%s"
	genericExecutionFailureTemplate       = "%s failed: %s"
	standardErrorSuffixTemplateConstant   = ": %s"
	workingDirectoryLabelFallbackConstant = "current directory"
	fallbackUnknownValueLabelConstant     = "unknown"
	emptyStringConstant                   = ""
)

const (
	gitVersionFlagConstant             = "--version"
	gitInitSubcommandNameConstant      = "init"
	gitStatusSubcommandNameConstant    = "status"
	gitAddSubcommandNameConstant       = "add"
	gitCommitSubcommandNameConstant    = "commit"
	gitBranchSubcommandNameConstant    = "branch"
	gitCheckoutSubcommandNameConstant  = "checkout"
	gitRemoteSubcommandNameConstant    = "remote"
	gitLSRemoteSubcommandNameConstant  = "ls-remote"
	gitPushSubcommandNameConstant      = "push"
	gitRevParseSubcommandNameConstant  = "rev-parse"
	gitMessageFlagConstant             = "-m"
	githubRepoSubcommandNameConstant   = "repo"
	githubRepoCreateSubcommandConstant = "create"
)

const (
	gitVersionStartMessageConstant        = "Checking Git installation"
	gitInitStartTemplateConstant          = "Initializing Git repository in %s"
	gitStatusStartTemplateConstant        = "Reviewing working tree status in %s"
	gitAddStartTemplateConstant           = "Staging %s in %s"
	gitCommitStartTemplateConstant        = "Creating commit in %s with message %q"
	gitBranchStartTemplateConstant        = "Creating branch %s in %s"
	gitCheckoutStartTemplateConstant      = "Switching %s to branch %s"
	gitRemoteAddStartTemplateConstant     = "Adding remote %s pointing to %s"
	gitRemoteListStartTemplateConstant    = "Listing remotes configured in %s"
	gitLSRemoteStartTemplateConstant      = "Listing branches on %s"
	gitPushStartTemplateConstant          = "Pushing to %s from %s"
	gitRevParseStartTemplateConstant      = "Inspecting repository state in %s"
	githubVersionStartMessageConstant     = "Checking for GitHub CLI"
	githubRepoCreateStartTemplateConstant = "Creating and pushing to GitHub repository %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if stage == messageStageStart {
		return formatter.describeStart(command)
	}
	if stage == messageStageExecutionFailure {
		return fmt.Sprintf(genericExecutionFailureTemplate, formatter.describeStart(command), formatter.describeFailure(failure))
	}
	return fmt.Sprintf(genericFailureTemplateConstant, formatter.describeStart(command), result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
}

func (formatter CommandMessageFormatter) describeStart(command ShellCommand) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)

	switch command.Name {
	case CommandGit:
		if len(arguments) == 0 {
			return formatter.formatGenericStart(command)
		}
		switch strings.TrimSpace(arguments[0]) {
		case gitVersionFlagConstant:
			return gitVersionStartMessageConstant
		case gitInitSubcommandNameConstant:
			return fmt.Sprintf(gitInitStartTemplateConstant, workingDirectory)
		case gitStatusSubcommandNameConstant:
			return fmt.Sprintf(gitStatusStartTemplateConstant, workingDirectory)
		case gitAddSubcommandNameConstant:
			return fmt.Sprintf(gitAddStartTemplateConstant, formatter.ensureValue(formatter.firstNonFlagArgument(arguments[1:])), workingDirectory)
		case gitCommitSubcommandNameConstant:
			return fmt.Sprintf(gitCommitStartTemplateConstant, workingDirectory, formatter.extractCommitMessage(arguments))
		case gitBranchSubcommandNameConstant:
			return fmt.Sprintf(gitBranchStartTemplateConstant, formatter.ensureValue(formatter.firstNonFlagArgument(arguments[1:])), workingDirectory)
		case gitCheckoutSubcommandNameConstant:
			return fmt.Sprintf(gitCheckoutStartTemplateConstant, workingDirectory, formatter.ensureValue(formatter.firstNonFlagArgument(arguments[1:])))
		case gitRemoteSubcommandNameConstant:
			if len(arguments) > 2 {
				return fmt.Sprintf(gitRemoteAddStartTemplateConstant, formatter.ensureValue(formatter.argumentAtIndex(arguments, 2)), formatter.ensureValue(formatter.argumentAtIndex(arguments, 3)))
			}
			return fmt.Sprintf(gitRemoteListStartTemplateConstant, workingDirectory)
		case gitLSRemoteSubcommandNameConstant:
			return fmt.Sprintf(gitLSRemoteStartTemplateConstant, formatter.ensureValue(formatter.firstNonFlagArgument(arguments[1:])))
		case gitPushSubcommandNameConstant:
			return fmt.Sprintf(gitPushStartTemplateConstant, formatter.ensureValue(formatter.firstNonFlagArgument(arguments[1:])), workingDirectory)
		case gitRevParseSubcommandNameConstant:
			return fmt.Sprintf(gitRevParseStartTemplateConstant, workingDirectory)
		default:
			return formatter.formatGenericStart(command)
		}
	case CommandGitHub:
		if len(arguments) == 1 && strings.TrimSpace(arguments[0]) == gitVersionFlagConstant {
			return githubVersionStartMessageConstant
		}
		if len(arguments) >= 3 && strings.TrimSpace(arguments[0]) == githubRepoSubcommandNameConstant && strings.TrimSpace(arguments[1]) == githubRepoCreateSubcommandConstant {
			return fmt.Sprintf(githubRepoCreateStartTemplateConstant, formatter.ensureValue(arguments[2]))
		}
		return formatter.formatGenericStart(command)
	default:
		return formatter.formatGenericStart(command)
	}
}

func (formatter CommandMessageFormatter) formatGenericStart(command ShellCommand) string {
	return fmt.Sprintf(genericStartTemplateConstant, command.String())
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return workingDirectoryLabelFallbackConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return fallbackUnknownValueLabelConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) argumentAtIndex(arguments []string, index int) string {
	if index >= 0 && index < len(arguments) {
		return strings.TrimSpace(arguments[index])
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}

func (formatter CommandMessageFormatter) firstNonFlagArgument(arguments []string) string {
	for _, argument := range arguments {
		trimmed := strings.TrimSpace(argument)
		if len(trimmed) == 0 {
			continue
		}
		if strings.HasPrefix(trimmed, "-") {
			continue
		}
		return trimmed
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) extractCommitMessage(arguments []string) string {
	for index := 0; index < len(arguments); index++ {
		if strings.TrimSpace(arguments[index]) == gitMessageFlagConstant && index+1 < len(arguments) {
			return strings.TrimSpace(arguments[index+1])
		}
	}
	return fallbackUnknownValueLabelConstant
}
