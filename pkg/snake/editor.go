// Package snake walks a person through the task fields they left out on
// the command line.
package snake

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/agenda/pkg/agenda"
)

// Editor prompts on In and Out, or the process terminal when unset.
type Editor struct {
	In  io.Reader
	Out io.Writer
}

var promptTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }}: ",
	Valid:   "{{ . | green }}: ",
	Invalid: "{{ . | red }}: ",
	Success: "{{ . | bold }}: ",
}

// FillTask prompts for the title, client, deadline and priority when t
// does not carry them yet. The title must not be blank, the client is
// chosen from clients and an empty deadline keeps the task in the inbox.
func (e Editor) FillTask(t *agenda.Task, clients []agenda.Client, askDeadline bool) error {
	if strings.TrimSpace(t.Title) == "" {
		title, err := e.prompt("Title", "", ValidateTitle)
		if err != nil {
			return err
		}
		t.Title = title
	}

	if t.ClientID == "" {
		if len(clients) == 0 {
			return errors.New("snake: no clients to choose from, add one first")
		}
		i, err := e.selectClient(clients)
		if err != nil {
			return err
		}
		t.ClientID = clients[i].ID
	}

	if askDeadline && t.Deadline == "" {
		deadline, err := e.prompt("Deadline (YYYY-MM-DD, empty for inbox)", "", ValidateDeadline)
		if err != nil {
			return err
		}
		t.Deadline = strings.TrimSpace(deadline)
	}

	if !t.Priority.Valid() {
		p, err := e.selectPriority()
		if err != nil {
			return err
		}
		t.Priority = p
	}
	return nil
}

// ValidateTitle rejects blank titles.
func ValidateTitle(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("empty")
	}
	return nil
}

// ValidateDeadline accepts empty input or a YYYY-MM-DD date.
func ValidateDeadline(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	return agenda.ValidateDate(input)
}

func (e Editor) prompt(label, def string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		Templates: promptTemplates,
		Validate:  validate,
	}
	if e.In != nil {
		prompt.Stdin = io.NopCloser(e.In)
	}
	if e.Out != nil {
		prompt.Stdout = NopCloser(e.Out)
	}
	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("snake: %s: %w", strings.ToLower(label), err)
	}
	return result, nil
}
