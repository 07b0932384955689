package commitmsg_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/repoinit/internal/commitmsg"
)

func TestStripComments(testInstance *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "unedited_template_strips_to_empty",
			input:    commitmsg.Template(),
			expected: "",
		},
		{
			name:     "subject_survives",
			input:    "Add feature\n" + commitmsg.Template(),
			expected: "Add feature",
		},
		{
			name:     "subject_and_body_preserve_blank_line",
			input:    "Add feature\n\nLonger explanation.\n# ignored guidance\n",
			expected: "Add feature\n\nLonger explanation.",
		},
		{
			name:     "whitespace_only_strips_to_empty",
			input:    "   \n\t\n",
			expected: "",
		},
		{
			name:     "interior_hash_is_not_a_comment",
			input:    "Fix issue #42\n",
			expected: "Fix issue #42",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expected, commitmsg.StripComments(testCase.input))
		})
	}
}

func TestResolveEditor(testInstance *testing.T) {
	testInstance.Run("configured_editor_wins", func(testInstance *testing.T) {
		testInstance.Setenv("EDITOR", "nano")
		require.Equal(testInstance, "emacs", commitmsg.ResolveEditor("emacs"))
	})

	testInstance.Run("environment_fallback", func(testInstance *testing.T) {
		testInstance.Setenv("EDITOR", "nano")
		require.Equal(testInstance, "nano", commitmsg.ResolveEditor(""))
	})

	testInstance.Run("platform_default", func(testInstance *testing.T) {
		testInstance.Setenv("EDITOR", "")
		resolvedEditor := commitmsg.ResolveEditor("   ")
		require.Contains(testInstance, []string{"vi", "notepad"}, resolvedEditor)
	})
}

type scriptedEditorLauncher struct {
	launchedEditor string
	launchedPath   string
	replacement    string
	launchError    error
}

func (launcher *scriptedEditorLauncher) Launch(editorName string, filePath string) error {
	launcher.launchedEditor = editorName
	launcher.launchedPath = filePath
	if launcher.launchError != nil {
		return launcher.launchError
	}
	if launcher.replacement != "" {
		return os.WriteFile(filePath, []byte(launcher.replacement), 0o644)
	}
	return nil
}

func TestNewComposerRequiresLauncher(testInstance *testing.T) {
	_, creationError := commitmsg.NewComposer(nil, "")
	require.ErrorIs(testInstance, creationError, commitmsg.ErrLauncherNotConfigured)
}

func TestComposeReturnsEditedMessage(testInstance *testing.T) {
	launcher := &scriptedEditorLauncher{replacement: "Add feature\n\nBody text.\n# guidance\n"}
	composer, creationError := commitmsg.NewComposer(launcher, "true")
	require.NoError(testInstance, creationError)

	commitMessage, composeError := composer.Compose()
	require.NoError(testInstance, composeError)
	require.Equal(testInstance, "Add feature\n\nBody text.", commitMessage)
	require.Equal(testInstance, "true", launcher.launchedEditor)
	require.NoFileExists(testInstance, launcher.launchedPath)
}

func TestComposeAbortsOnUneditedTemplate(testInstance *testing.T) {
	launcher := &scriptedEditorLauncher{}
	composer, creationError := commitmsg.NewComposer(launcher, "true")
	require.NoError(testInstance, creationError)

	_, composeError := composer.Compose()
	require.ErrorIs(testInstance, composeError, commitmsg.ErrEmptyMessage)
	require.NoFileExists(testInstance, launcher.launchedPath)
}

func TestComposeRemovesScratchFileOnLaunchFailure(testInstance *testing.T) {
	launcher := &scriptedEditorLauncher{launchError: errors.New("editor crashed")}
	composer, creationError := commitmsg.NewComposer(launcher, "true")
	require.NoError(testInstance, creationError)

	_, composeError := composer.Compose()
	require.Error(testInstance, composeError)
	require.NoFileExists(testInstance, launcher.launchedPath)
}
