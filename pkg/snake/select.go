package snake

import (
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/agenda/pkg/agenda"
)

func (e Editor) selectClient(clients []agenda.Client) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .ID | faint }}",
		Inactive: "   {{ .Name }} {{ .ID | faint }}",
		Selected: "Client: {{ .Name | bold }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.Replace(strings.ToLower(clients[index].Name), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(name, input)
	}

	return e.run(promptui.Select{
		HideHelp:  true,
		Label:     "Client",
		Items:     clients,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
	})
}

type priorityItem struct {
	Priority agenda.Priority
	Label    string
	Color    string
}

func (e Editor) selectPriority() (agenda.Priority, error) {
	items := make([]priorityItem, 0, 3)
	for _, p := range []agenda.Priority{agenda.Low, agenda.Medium, agenda.High} {
		d := p.Detail()
		items = append(items, priorityItem{Priority: p, Label: d.Label, Color: d.Color})
	}
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Label | bold }}",
		Inactive: "   {{ .Label }}",
		Selected: "Priority: {{ .Label | bold }}",
	}
	i, err := e.run(promptui.Select{
		HideHelp:  true,
		Label:     "Priority",
		Items:     items,
		Templates: templates,
	})
	if err != nil {
		return 0, err
	}
	return items[i].Priority, nil
}

func (e Editor) run(sel promptui.Select) (int, error) {
	if e.In != nil {
		sel.Stdin = io.NopCloser(e.In)
	}
	if e.Out != nil {
		sel.Stdout = NopCloser(e.Out)
	}
	i, _, err := sel.Run()
	if err != nil {
		return 0, fmt.Errorf("snake: %s: %w", strings.ToLower(fmt.Sprint(sel.Label)), err)
	}
	return i, nil
}

// NopCloser returns a WriteCloser with a no-op Close method wrapping
// the provided Writer w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
