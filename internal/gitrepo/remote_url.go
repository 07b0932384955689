package gitrepo

import (
	"fmt"
	"strings"
)

const (
	httpsRemoteURLTemplateConstant  = "https://github.com/%s/%s.git"
	httpsProtocolPrefixConstant     = "https://"
	gitUserPrefixConstant           = "git@"
	sshPathDelimiterConstant        = ":"
	pathSeparatorConstant           = "/"
	gitSuffixConstant               = ".git"
	remoteURLParseErrorTemplate     = "%s: %s"
	invalidRemoteURLMessageConstant = "invalid remote url"
)

// RemoteURLParseError indicates a remote string could not be parsed.
type RemoteURLParseError struct {
	Input   string
	Message string
}

// Error describes the parse failure.
func (parseError RemoteURLParseError) Error() string {
	return fmt.Sprintf(remoteURLParseErrorTemplate, parseError.Input, parseError.Message)
}

// RemoteURL represents the owner and repository extracted from a git remote.
type RemoteURL struct {
	Owner      string
	Repository string
}

// FormatHTTPSRemoteURL interpolates the canonical HTTPS remote for a GitHub
// owner and repository name.
func FormatHTTPSRemoteURL(ownerName string, repositoryName string) string {
	return fmt.Sprintf(httpsRemoteURLTemplateConstant, strings.TrimSpace(ownerName), strings.TrimSpace(repositoryName))
}

// ParseRemoteURL extracts owner and repository from HTTPS or scp-style SSH remotes.
func ParseRemoteURL(remote string) (RemoteURL, error) {
	trimmedRemote := strings.TrimSpace(remote)
	if len(trimmedRemote) == 0 {
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
	}

	remotePath := ""
	switch {
	case strings.HasPrefix(trimmedRemote, httpsProtocolPrefixConstant):
		withoutProtocol := strings.TrimPrefix(trimmedRemote, httpsProtocolPrefixConstant)
		hostSplitIndex := strings.Index(withoutProtocol, pathSeparatorConstant)
		if hostSplitIndex < 0 {
			return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
		}
		remotePath = withoutProtocol[hostSplitIndex+1:]
	case strings.HasPrefix(trimmedRemote, gitUserPrefixConstant):
		pathSplitIndex := strings.Index(trimmedRemote, sshPathDelimiterConstant)
		if pathSplitIndex < 0 {
			return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
		}
		remotePath = trimmedRemote[pathSplitIndex+1:]
	default:
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
	}

	remotePath = strings.TrimSuffix(strings.Trim(remotePath, pathSeparatorConstant), gitSuffixConstant)
	pathSegments := strings.Split(remotePath, pathSeparatorConstant)
	if len(pathSegments) < 2 || len(pathSegments[0]) == 0 || len(pathSegments[1]) == 0 {
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
	}

	return RemoteURL{Owner: pathSegments[0], Repository: pathSegments[1]}, nil
}
