package commitmsg

import "strings"

const (
	// CommentMarker begins guidance lines that never reach the commit.
	CommentMarker = "#"

	templateTextConstant = `
# Write your commit message above.
# The first line is the subject; keep it short and imperative.
# Leave a blank line before any additional body text.
# Lines starting with '#' are ignored, and an empty message aborts the commit.
`
	newlineConstant = "\n"
)

// Template returns the scratch file contents presented to the editor.
func Template() string {
	return templateTextConstant
}

// StripComments removes every line whose first character is the comment
// marker and trims surrounding whitespace from the remainder.
func StripComments(editedText string) string {
	editedLines := strings.Split(editedText, newlineConstant)
	retainedLines := make([]string, 0, len(editedLines))
	for _, editedLine := range editedLines {
		if strings.HasPrefix(editedLine, CommentMarker) {
			continue
		}
		retainedLines = append(retainedLines, editedLine)
	}

	return strings.TrimSpace(strings.Join(retainedLines, newlineConstant))
}
