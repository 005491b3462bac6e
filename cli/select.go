// Package cli holds the interactive terminal prompts used by arraysort.
package cli

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

var ErrNoChoices = errors.New("nothing to choose from")

// SelectOne shows an arrow-key menu of choices and returns the one picked.
// Typing filters the list by prefix.
func SelectOne(label string, choices ...string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	sel := &promptui.Select{
		Label:    label,
		Items:    choices,
		Searcher: prefixSearcher(choices),
	}

	_, value, err := sel.Run()
	if err != nil {
		return "", err
	}

	return value, nil
}

func prefixSearcher(names []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if len(input) == 0 || index < 0 || index >= len(names) {
			return false
		}

		return strings.HasPrefix(strings.ToLower(names[index]), strings.ToLower(input))
	}
}
