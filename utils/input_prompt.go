package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/DudeAlex/project-snapshot-collector/constants/lipgloss"
)

// InputPrompt prints a styled prompt and reads one trimmed line from
// the reader.
func InputPrompt(label string, reader *bufio.Reader) (string, error) {
	fmt.Print(lipgloss.BlueSky.Render(label))

	userInput, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimSpace(userInput), nil
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}

	return strings.TrimSpace(userInput), nil
}

// ConfirmPrompt asks a yes/no question and reports whether the user
// accepted.
func ConfirmPrompt(question string, reader *bufio.Reader) (bool, error) {
	fmt.Print(lipgloss.BlueSky.Render(fmt.Sprintf("%s (y/N): ", question)))

	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("error reading input: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
