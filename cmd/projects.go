package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newProjectsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "Show registered projects and their tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjects(cmd, root)
		},
	}
}

func runProjects(cmd *cobra.Command, root *rootOptions) error {
	a, err := openApp(cmd, root)
	if err != nil {
		return err
	}
	projects, err := a.registry.Projects()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(projects) == 0 {
		fmt.Fprintln(out, "No projects registered.")
		return nil
	}
	for _, p := range projects {
		fmt.Fprintf(out, "%s\n", p.Name)
		fmt.Fprintf(out, "  Price: %d per %s\n", p.UnitPrice, p.Unit)
		tasks := p.Tasks.Sorted()
		if len(tasks) == 0 {
			fmt.Fprintln(out, "  Tasks: none")
			continue
		}
		fmt.Fprintf(out, "  Tasks: %s\n", strings.Join(tasks, ", "))
	}
	return nil
}
