package execshell

import (
	"fmt"
	"io"
	"strings"
)

// CommandEventObserver receives lifecycle notifications for shell command execution.
type CommandEventObserver interface {
	// CommandStarted notifies observers that command execution is beginning.
	CommandStarted(command ShellCommand)
	// CommandCompleted notifies observers that command execution finished and supplies the result.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed reports unexpected failures prior to receiving an execution result.
	CommandExecutionFailed(command ShellCommand, failure error)
}

// noopCommandEventObserver discards all command events.
type noopCommandEventObserver struct{}

// CommandStarted implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandStarted(ShellCommand) {}

// CommandCompleted implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandCompleted(ShellCommand, ExecutionResult) {}

// CommandExecutionFailed implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}

const (
	consoleMessageLineTemplateConstant = "%s\n"
)

// ConsoleCommandObserver renders human-readable command lifecycle messages to a
// writer. It is installed when console logging is enabled so interactive
// sessions see descriptions before execution and captured output afterwards.
type ConsoleCommandObserver struct {
	writer    io.Writer
	formatter CommandMessageFormatter
}

// NewConsoleCommandObserver constructs an observer writing to the provided writer.
func NewConsoleCommandObserver(writer io.Writer) *ConsoleCommandObserver {
	return &ConsoleCommandObserver{writer: writer, formatter: CommandMessageFormatter{}}
}

// CommandStarted prints the description of the command about to run.
func (observer *ConsoleCommandObserver) CommandStarted(command ShellCommand) {
	observer.writeLine(observer.formatter.BuildStartedMessage(command))
}

// CommandCompleted prints captured standard output on success and the failure
// description when the command exited non-zero.
func (observer *ConsoleCommandObserver) CommandCompleted(command ShellCommand, result ExecutionResult) {
	if result.ExitCode != 0 {
		observer.writeLine(observer.formatter.BuildFailureMessage(command, result))
		return
	}
	trimmedStandardOutput := strings.TrimSpace(result.StandardOutput)
	if len(trimmedStandardOutput) > 0 {
		observer.writeLine(trimmedStandardOutput)
	}
}

// CommandExecutionFailed prints the execution failure description.
func (observer *ConsoleCommandObserver) CommandExecutionFailed(command ShellCommand, failure error) {
	observer.writeLine(observer.formatter.BuildExecutionFailureMessage(command, failure))
}

func (observer *ConsoleCommandObserver) writeLine(message string) {
	if observer.writer == nil || len(message) == 0 {
		return
	}
	fmt.Fprintf(observer.writer, consoleMessageLineTemplateConstant, message)
}
