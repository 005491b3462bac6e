package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

var ErrNothingEntered = errors.New("you must enter at least one value")

// PromptValues asks for a whitespace-separated list of values.
func PromptValues(label string) ([]string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validateValues,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	line, err := prompt.Run()
	if err != nil {
		return nil, err
	}

	return strings.Fields(line), nil
}

func validateValues(s string) error {
	if len(strings.Fields(s)) == 0 {
		return ErrNothingEntered
	}

	return nil
}
