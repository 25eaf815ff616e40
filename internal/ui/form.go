package ui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/natedelduca/file-split/internal/discover"
)

// Answers captures the user's choices from the interactive form.
type Answers struct {
	BaseName       string
	LineCount      int
	IncludeHeaders bool
}

// Interactive reports whether both stdin and stdout are terminals, which the
// forms need.
func Interactive() bool {
	in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return in && out
}

// RunOptions displays the Charmbracelet/huh form prefilled with current and
// returns the edited values.
func RunOptions(in discover.Input, current Answers) (Answers, error) {
	baseName := current.BaseName
	lineCount := strconv.Itoa(current.LineCount)
	headers := current.IncludeHeaders

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Base name for the split files").
				Description(fmt.Sprintf("Files go to %s", in.OutputDir("<base>"))).
				Value(&baseName).
				Validate(ValidateBaseName),
			huh.NewInput().
				Title("Lines per file").
				Value(&lineCount).
				Validate(ValidateLineCount),
			huh.NewConfirm().
				Title("Repeat the first line as a header in every file?").
				Value(&headers),
		),
	)
	if err := form.Run(); err != nil {
		return Answers{}, err
	}

	n, err := ParseLineCount(lineCount)
	if err != nil {
		return Answers{}, err
	}
	return Answers{
		BaseName:       strings.TrimSpace(baseName),
		LineCount:      n,
		IncludeHeaders: headers,
	}, nil
}

// ConfirmOverwrite asks before dir and everything in it is deleted.
func ConfirmOverwrite(dir string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s already exists. Delete it and everything in it?", dir)).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

// ValidateBaseName applies the command-line base name rules to form input.
func ValidateBaseName(s string) error {
	return discover.ValidateBaseName(strings.TrimSpace(s))
}

// ValidateLineCount accepts positive integers.
func ValidateLineCount(s string) error {
	_, err := ParseLineCount(s)
	return err
}

// ParseLineCount parses a positive line count.
func ParseLineCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("lines per file must be a number")
	}
	if n < 1 {
		return 0, fmt.Errorf("lines per file must be at least 1")
	}
	return n, nil
}
