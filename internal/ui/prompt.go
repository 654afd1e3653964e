package ui

import (
	"errors"
	"fmt"
	"strings"

	"pkgscout/pkg/rank"

	"github.com/manifoldco/promptui"
)

// ErrAborted reports that the user backed out of an interactive prompt
// with Ctrl-C or Ctrl-D. Callers treat it as a clean cancellation.
var ErrAborted = errors.New("aborted by user")

// Confirm prompts the user for yes/no confirmation.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	label := prompt
	def := ""
	if defaultYes {
		label += " [Y/n]"
		def = "y"
	} else {
		label += " [y/N]"
	}

	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Default:   def,
	}

	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return false, ErrAborted
		}
		// promptui reports any non-affirmative answer as ErrAbort.
		return false, nil
	}

	return true, nil
}

// SelectCandidate prompts the user to pick one ranked candidate. A single
// candidate is returned without prompting.
func SelectCandidate(candidates []rank.Candidate, prompt string) (*rank.Candidate, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidates to select from")
	}

	if len(candidates) == 1 {
		return &candidates[0], nil
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ .Record.Name | cyan }} [{{ .Record.Source | magenta }}]",
		Inactive: "  {{ .Record.Name }} [{{ .Record.Source | faint }}]",
		Selected: "✓ {{ .Record.Name | cyan }} [{{ .Record.Source | magenta }}]",
		Details: `
--------- Candidate ----------
{{ "Name:" | faint }}	{{ .Record.Name }}
{{ "Source:" | faint }}	{{ .Record.Source }}
{{ "Score:" | faint }}	{{ .Score }}
{{ "Description:" | faint }}	{{ .Record.Description }}`,
	}

	searcher := func(input string, index int) bool {
		name := strings.ToLower(candidates[index].Record.Name)
		return strings.Contains(name, strings.ToLower(input))
	}

	p := promptui.Select{
		Label:     prompt,
		Items:     candidates,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
	}

	index, _, err := p.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil, ErrAborted
		}
		return nil, err
	}

	return &candidates[index], nil
}
