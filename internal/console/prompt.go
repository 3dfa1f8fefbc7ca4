package console

import (
	"errors"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	"currency-console/internal"
	"currency-console/internal/command"
)

// ErrCancelled is returned by a Prompter when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled")

// Prompter asks the user for input.
type Prompter interface {
	Line(label string) (string, error)
	Date(label string) (internal.Date, error)
	Select(label string, items []internal.CurrencyCode) (internal.CurrencyCode, error)
	Amount(label string) (float64, error)
}

// TerminalPrompter prompts on the process terminal.
type TerminalPrompter struct {
	// SelectSize is the number of currencies shown at once.
	SelectSize int
}

func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{SelectSize: 10}
}

var lineTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }} ",
	Valid:   "{{ . }} ",
	Invalid: "{{ . }} ",
	Success: "{{ . }} ",
}

func (p *TerminalPrompter) Line(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Templates: lineTemplates,
	}
	line, err := prompt.Run()
	return line, cancelled(err)
}

func (p *TerminalPrompter) Date(label string) (internal.Date, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   internal.NewDate(time.Now()).String(),
		AllowEdit: true,
		Validate: func(s string) error {
			_, err := internal.ParseDate(s)
			return err
		},
	}
	s, err := prompt.Run()
	if err != nil {
		return internal.Date{}, cancelled(err)
	}
	return internal.ParseDate(s)
}

func (p *TerminalPrompter) Select(label string, items []internal.CurrencyCode) (internal.CurrencyCode, error) {
	sel := promptui.Select{
		Label:             label,
		Items:             items,
		Size:              p.SelectSize,
		StartInSearchMode: true,
		Searcher: func(input string, index int) bool {
			return strings.HasPrefix(string(items[index]), strings.ToUpper(strings.TrimSpace(input)))
		},
	}
	i, _, err := sel.Run()
	if err != nil {
		return "", cancelled(err)
	}
	return items[i], nil
}

func (p *TerminalPrompter) Amount(label string) (float64, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			_, err := command.ParseAmount(s)
			return err
		},
	}
	s, err := prompt.Run()
	if err != nil {
		return 0, cancelled(err)
	}
	return command.ParseAmount(s)
}

func cancelled(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return ErrCancelled
	}
	return err
}
