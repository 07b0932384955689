package gitignore

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	// FileName is the ignore file written at the repository root.
	FileName = ".gitignore"

	gitignoreFilePermissionsConstant = 0o644
)

// ErrFileSystemNotConfigured indicates the writer was constructed without a file system.
var ErrFileSystemNotConfigured = errors.New("gitignore file system not configured")

// FileSystem abstracts the write operation so tests can capture output.
type FileSystem interface {
	WriteFile(filePath string, fileData []byte, fileMode os.FileMode) error
}

// OSFileSystem writes through the operating system.
type OSFileSystem struct{}

// WriteFile delegates to os.WriteFile.
func (OSFileSystem) WriteFile(filePath string, fileData []byte, fileMode os.FileMode) error {
	return os.WriteFile(filePath, fileData, fileMode)
}

// Writer places the ignore file into a repository directory.
type Writer struct {
	fileSystem FileSystem
}

// NewWriter constructs a Writer around the provided file system.
func NewWriter(fileSystem FileSystem) (*Writer, error) {
	if fileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}

	return &Writer{fileSystem: fileSystem}, nil
}

// Write stores Content as <repositoryPath>/.gitignore, replacing any
// existing file.
func (writer *Writer) Write(repositoryPath string) error {
	targetPath := filepath.Join(repositoryPath, FileName)
	return writer.fileSystem.WriteFile(targetPath, []byte(Content), gitignoreFilePermissionsConstant)
}
