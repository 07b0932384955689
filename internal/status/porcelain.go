package status

import "strings"

const (
	statusCodeLengthConstant    = 2
	statusPathOffsetConstant    = 3
	untrackedStatusCodeConstant = "??"
	modifiedStatusCodeConstant  = " M"
	stagedModifiedCodeConstant  = "M "
	stagedAddedCodeConstant     = "A "
	modifiedAndStagedConstant   = "MM"
	lineSeparatorConstant       = "\n"
)

// Classification groups working tree paths by their porcelain status code.
// A path reported as modified in both the index and the working tree appears
// in Modified and Staged simultaneously.
type Classification struct {
	Modified  []string
	Untracked []string
	Staged    []string
}

// HasChanges reports whether any category contains at least one path.
func (classification Classification) HasChanges() bool {
	return len(classification.Modified) > 0 || len(classification.Untracked) > 0 || len(classification.Staged) > 0
}

// SelectablePaths returns the concatenation of modified and untracked paths in
// that order. Staged paths are never offered for re-selection.
func (classification Classification) SelectablePaths() []string {
	selectable := make([]string, 0, len(classification.Modified)+len(classification.Untracked))
	selectable = append(selectable, classification.Modified...)
	selectable = append(selectable, classification.Untracked...)
	return selectable
}

// ParsePorcelain classifies raw `git status --porcelain` output. Codes other
// than ??, " M", "M ", "A ", and "MM" (deletions, renames, copies) are not
// classified and the corresponding paths are dropped.
func ParsePorcelain(rawOutput string) Classification {
	classification := Classification{}

	for _, statusLine := range strings.Split(rawOutput, lineSeparatorConstant) {
		if len(statusLine) < statusPathOffsetConstant {
			continue
		}

		statusCode := statusLine[:statusCodeLengthConstant]
		relativePath := statusLine[statusPathOffsetConstant:]
		if len(strings.TrimSpace(relativePath)) == 0 {
			continue
		}

		switch statusCode {
		case untrackedStatusCodeConstant:
			classification.Untracked = append(classification.Untracked, relativePath)
		case modifiedStatusCodeConstant:
			classification.Modified = append(classification.Modified, relativePath)
		case stagedModifiedCodeConstant, stagedAddedCodeConstant:
			classification.Staged = append(classification.Staged, relativePath)
		case modifiedAndStagedConstant:
			classification.Modified = append(classification.Modified, relativePath)
			classification.Staged = append(classification.Staged, relativePath)
		}
	}

	return classification
}
