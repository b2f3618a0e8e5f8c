package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change a task or a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEditTask(cmd, e)
	addEditClient(cmd, e)

	topLevel.AddCommand(cmd)
}

func addEditTask(topLevel *cobra.Command, e *env) {
	to := &options.TaskOptions{}
	var id string

	cmd := &cobra.Command{
		Use:   "task <id> [new title]",
		Short: "Change the fields of a task",
		Example: `
agenda edit task task1 --priority 3 --deadline 2024-03-04
agenda edit task task2 Edit the anniversary video
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			id = args[0]
			to.Title = strings.Join(args[1:], " ")
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return e.taskCompletions(cmd), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.session(cmd)
			if err != nil {
				return err
			}
			fields := to.Changed(cmd)
			if d, ok := fields["deadline"]; ok {
				if fields["deadline"], err = options.NormalizeDate(strings.TrimSpace(d), s.Now()); err != nil {
					return err
				}
			}
			ed := edit.Task{
				ID:     id,
				Title:  to.Title,
				Fields: fields,
				Store:  s.Store,
				Now:    s.Now(),
				Out:    cmd.OutOrStdout(),
			}
			return ed.Do(cmd.Context())
		},
	}

	options.AddTaskArgs(cmd, to)
	topLevel.AddCommand(cmd)
}

func addEditClient(topLevel *cobra.Command, e *env) {
	var id, name string

	cmd := &cobra.Command{
		Use:   "client <id> <new name>",
		Short: "Rename a client",
		Example: `
agenda edit client cli2 Gama Clinic and Spa
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a client id and a name")
			}
			id, name = args[0], strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.session(cmd)
			if err != nil {
				return err
			}
			ed := edit.Client{ID: id, Name: name, Store: s.Store, Out: cmd.OutOrStdout()}
			return ed.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addSet(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "set <id> <field> [value]",
		Short: "Change one field of a task",
		Long: `Change one field of a task. Editable fields are title, description,
deadline, client, priority, category and recurrence. An empty value
clears a deadline and moves the task to the inbox.`,
		Example: `
agenda set task1 priority high
agenda set task3 deadline
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.session(cmd)
			if err != nil {
				return err
			}
			value := strings.Join(args[2:], " ")
			if strings.EqualFold(args[1], "deadline") {
				if value, err = options.NormalizeDate(value, s.Now()); err != nil {
					return err
				}
			}
			st := edit.Set{ID: args[0], Field: args[1], Value: value, Store: s.Store, Out: cmd.OutOrStdout()}
			return st.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
