// Package prompt implements the terminal interaction layer: blocking
// yes/no confirmations and free-text questions read line-wise from stdin.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aki/shipit/internal/cli/ui"
)

// Terminal asks questions on the controlling terminal. Prompts block
// until the operator answers; there is no timeout.
type Terminal struct {
	reader *bufio.Reader
	writer io.Writer
}

// New creates a Terminal reading from stdin and writing to stdout.
func New() *Terminal {
	return &Terminal{
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stdout,
	}
}

// NewWith creates a Terminal over explicit streams, used in tests.
func NewWith(r io.Reader, w io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Confirm asks a yes/no question. An empty answer selects def; anything
// starting with 'y' or 'n' wins over the default.
func (t *Terminal) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(t.writer, "%s %s ", ui.PromptStyle.Render(question), ui.DimStyle.Render("["+hint+"]"))

	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch answer := strings.ToLower(strings.TrimSpace(line)); {
	case answer == "":
		return def, nil
	case strings.HasPrefix(answer, "y"):
		return true, nil
	default:
		return false, nil
	}
}

// Input asks for free text. An empty answer selects def; when required is
// set and there is no default, the question repeats until text arrives.
func (t *Terminal) Input(question, def string, required bool) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(t.writer, "%s %s ", ui.PromptStyle.Render(question), ui.DimStyle.Render("["+def+"]"))
		} else {
			fmt.Fprintf(t.writer, "%s ", ui.PromptStyle.Render(question))
		}

		line, err := t.reader.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}

		answer := strings.TrimSpace(line)
		if answer == "" {
			answer = def
		}
		if answer != "" || !required {
			return answer, nil
		}
	}
}
