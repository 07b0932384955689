package prompt

import (
	"bufio"
	"io"
	"strings"
)

const (
	affirmativeShortResponseConstant = "y"
	affirmativeLongResponseConstant  = "yes"
)

// Prompter collects interactive answers from the user.
type Prompter interface {
	Confirm(promptText string) (bool, error)
	AskLine(promptText string) (string, error)
}

// IOPrompter reads responses from an io.Reader and echoes prompts to an
// io.Writer.
type IOPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewIOPrompter constructs a prompter from the provided reader and writer.
func NewIOPrompter(input io.Reader, output io.Writer) *IOPrompter {
	return &IOPrompter{reader: bufio.NewReader(input), writer: output}
}

// Confirm writes the prompt and interprets affirmative responses (y/yes).
func (prompter *IOPrompter) Confirm(promptText string) (bool, error) {
	response, readError := prompter.AskLine(promptText)
	if readError != nil {
		return false, readError
	}

	switch strings.ToLower(response) {
	case affirmativeShortResponseConstant, affirmativeLongResponseConstant:
		return true, nil
	default:
		return false, nil
	}
}

// AskLine writes the prompt and returns the trimmed response line.
func (prompter *IOPrompter) AskLine(promptText string) (string, error) {
	if prompter.writer != nil {
		if _, writeError := io.WriteString(prompter.writer, promptText); writeError != nil {
			return "", writeError
		}
	}

	response, readError := prompter.reader.ReadString('\n')
	if readError != nil && readError != io.EOF {
		return "", readError
	}

	return strings.TrimSpace(response), nil
}
