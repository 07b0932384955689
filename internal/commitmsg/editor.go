package commitmsg

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
)

const (
	editorEnvironmentVariableConstant = "EDITOR"
	unixDefaultEditorConstant         = "vi"
	windowsDefaultEditorConstant      = "notepad"
	windowsOperatingSystemConstant    = "windows"
)

// EditorLauncher opens an interactive editor on a file and blocks until it
// exits.
type EditorLauncher interface {
	Launch(editorName string, filePath string) error
}

// OSEditorLauncher runs the editor attached to the process's standard
// streams.
type OSEditorLauncher struct{}

// Launch starts the editor and waits for it to finish.
func (OSEditorLauncher) Launch(editorName string, filePath string) error {
	editorCommand := exec.Command(editorName, filePath)
	editorCommand.Stdin = os.Stdin
	editorCommand.Stdout = os.Stdout
	editorCommand.Stderr = os.Stderr
	return editorCommand.Run()
}

// ResolveEditor picks the editor to launch: an explicit configuration value
// wins, then the EDITOR environment variable, then the platform default.
func ResolveEditor(configuredEditor string) string {
	trimmedConfiguredEditor := strings.TrimSpace(configuredEditor)
	if len(trimmedConfiguredEditor) > 0 {
		return trimmedConfiguredEditor
	}

	environmentEditor := strings.TrimSpace(os.Getenv(editorEnvironmentVariableConstant))
	if len(environmentEditor) > 0 {
		return environmentEditor
	}

	if runtime.GOOS == windowsOperatingSystemConstant {
		return windowsDefaultEditorConstant
	}
	return unixDefaultEditorConstant
}
