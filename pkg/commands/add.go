package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/add"
	"tableflip.dev/agenda/pkg/snake"
)

func addAdd(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task or a client",
		Example: `
agenda add task Edit institutional video --client cli2 --deadline 2024-03-01 -p 2
agenda add client Panther Blazz
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTask(cmd, e)
	addClient(cmd, e)

	topLevel.AddCommand(cmd)
}

func addTask(topLevel *cobra.Command, e *env) {
	to := &options.TaskOptions{}
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "task [title]",
		Aliases: []string{"tasks", "t"},
		Short:   "Add a task",
		Example: `
agenda add task Create ad campaign -c cli1 --deadline 2024-03-01 -p 3 --category "Ad Management"
agenda add task -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			to.Title = strings.Join(args, " ")
			if io.Interactive {
				return nil
			}
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			if to.Client == "" {
				return errors.New("requires --client")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.session(cmd)
			if err != nil {
				return err
			}
			t, err := to.Task(s.Now())
			if err != nil {
				return err
			}
			a := add.Task{
				Task:   t,
				Store:  s.Store,
				Now:    s.Now(),
				ShowID: true,
				Out:    cmd.OutOrStdout(),
			}
			if io.Interactive {
				if !cmd.Flags().Changed("priority") {
					a.Task.Priority = 0
				}
				a.Filler = snake.Editor{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
				a.AskDeadline = !cmd.Flags().Changed("deadline")
			}
			return a.Do(cmd.Context())
		},
	}

	options.AddTaskArgs(cmd, to)
	options.InteractiveArgs(cmd, io)
	_ = cmd.RegisterFlagCompletionFunc("client", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return e.clientCompletions(cmd), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}

func addClient(topLevel *cobra.Command, e *env) {
	var name string

	cmd := &cobra.Command{
		Use:     "client [name]",
		Aliases: []string{"clients", "c"},
		Short:   "Add a client",
		Example: `
agenda add client Gama Clinic
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.session(cmd)
			if err != nil {
				return err
			}
			a := add.Client{Name: name, Store: s.Store, Out: cmd.OutOrStdout()}
			return a.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addQuick(topLevel *cobra.Command, e *env) {
	var title, client string

	cmd := &cobra.Command{
		Use:     "quick [title]",
		Aliases: []string{"q", "capture"},
		Short:   "Capture a task into the inbox",
		Long: `Capture a task into the inbox with no deadline, low priority and the
default category. The task goes to the first client unless --client is set.`,
		Example: `
agenda quick Call the printer about the banner
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.session(cmd)
			if err != nil {
				return err
			}
			q := add.Quick{Title: title, ClientID: client, Store: s.Store, Now: s.Now(), Out: cmd.OutOrStdout()}
			return q.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&client, "client", "c", "", "Client id, defaults to the first client.")
	topLevel.AddCommand(cmd)
}
