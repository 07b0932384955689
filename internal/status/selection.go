package status

import (
	"strconv"
	"strings"
)

const (
	selectionAllTokenConstant    = "all"
	selectionCancelTokenConstant = "cancel"
	selectionSeparatorConstant   = ","
)

// ParseSelection resolves an interactive selection against the classification.
// The literal token "all" yields every selectable path (modified then
// untracked); "cancel" or an empty response yields nil. Anything else is
// treated as a comma-separated list of 1-based indices into the selectable
// paths; tokens that are not numbers or fall out of range are silently
// dropped rather than rejected.
func ParseSelection(selectionInput string, classification Classification) []string {
	trimmedInput := strings.ToLower(strings.TrimSpace(selectionInput))
	if len(trimmedInput) == 0 || trimmedInput == selectionCancelTokenConstant {
		return nil
	}

	selectablePaths := classification.SelectablePaths()
	if trimmedInput == selectionAllTokenConstant {
		if len(selectablePaths) == 0 {
			return nil
		}
		return selectablePaths
	}

	selectedPaths := make([]string, 0, len(selectablePaths))
	for _, selectionToken := range strings.Split(trimmedInput, selectionSeparatorConstant) {
		trimmedToken := strings.TrimSpace(selectionToken)
		if len(trimmedToken) == 0 {
			continue
		}

		oneBasedIndex, conversionError := strconv.Atoi(trimmedToken)
		if conversionError != nil {
			continue
		}
		if oneBasedIndex < 1 || oneBasedIndex > len(selectablePaths) {
			continue
		}

		selectedPaths = append(selectedPaths, selectablePaths[oneBasedIndex-1])
	}

	if len(selectedPaths) == 0 {
		return nil
	}
	return selectedPaths
}
