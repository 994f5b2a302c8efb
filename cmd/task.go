package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTaskCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "task <project> <task>",
		Short: "Register a task under a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask(cmd, root, args[0], args[1])
		},
	}
}

func runTask(cmd *cobra.Command, root *rootOptions, project, task string) error {
	a, err := openApp(cmd, root)
	if err != nil {
		return err
	}

	_, ok, err := a.registry.Project(project)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unknown project %q, register it first with: hours for %s --price N", project, project)
	}

	if err := a.registry.RegisterTask(project, task); err != nil {
		return err
	}
	if err := a.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added task %q to project %q\n", task, project)
	return nil
}
