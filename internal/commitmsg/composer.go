package commitmsg

import (
	"errors"
	"fmt"
	"os"
)

const (
	scratchFilePatternConstant   = "commit-message-*.txt"
	scratchWriteErrorTemplate    = "writing commit message scratch file: %w"
	scratchReadErrorTemplate     = "reading commit message scratch file: %w"
	editorLaunchErrorTemplate    = "launching editor %s: %w"
	scratchCreateErrorTemplate   = "creating commit message scratch file: %w"
	launcherRequiredErrorMessage = "commit message editor launcher not configured"
)

// ErrLauncherNotConfigured indicates the composer was built without a launcher.
var ErrLauncherNotConfigured = errors.New(launcherRequiredErrorMessage)

// ErrEmptyMessage indicates the edited template stripped down to nothing.
var ErrEmptyMessage = errors.New("commit message is empty")

// Composer obtains a commit message by editing a template in a scratch file.
type Composer struct {
	launcher   EditorLauncher
	editorName string
}

// NewComposer constructs a Composer. configuredEditor may be empty, in which
// case the environment and platform defaults decide.
func NewComposer(launcher EditorLauncher, configuredEditor string) (*Composer, error) {
	if launcher == nil {
		return nil, ErrLauncherNotConfigured
	}

	return &Composer{launcher: launcher, editorName: ResolveEditor(configuredEditor)}, nil
}

// Compose writes the template to a temporary file, opens the editor on it,
// and returns the stripped result. The scratch file is removed on every
// path. ErrEmptyMessage is returned when nothing survives stripping.
func (composer *Composer) Compose() (string, error) {
	scratchFile, createError := os.CreateTemp("", scratchFilePatternConstant)
	if createError != nil {
		return "", fmt.Errorf(scratchCreateErrorTemplate, createError)
	}
	scratchPath := scratchFile.Name()
	defer os.Remove(scratchPath)

	if _, writeError := scratchFile.WriteString(Template()); writeError != nil {
		scratchFile.Close()
		return "", fmt.Errorf(scratchWriteErrorTemplate, writeError)
	}
	if closeError := scratchFile.Close(); closeError != nil {
		return "", fmt.Errorf(scratchWriteErrorTemplate, closeError)
	}

	if launchError := composer.launcher.Launch(composer.editorName, scratchPath); launchError != nil {
		return "", fmt.Errorf(editorLaunchErrorTemplate, composer.editorName, launchError)
	}

	editedData, readError := os.ReadFile(scratchPath)
	if readError != nil {
		return "", fmt.Errorf(scratchReadErrorTemplate, readError)
	}

	commitMessage := StripComments(string(editedData))
	if len(commitMessage) == 0 {
		return "", ErrEmptyMessage
	}

	return commitMessage, nil
}
