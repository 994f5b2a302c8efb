package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hours/internal/model"
)

func newForCmd(root *rootOptions) *cobra.Command {
	var (
		price uint32
		unit  string
	)
	cmd := &cobra.Command{
		Use:   "for <project>",
		Short: "Register a project with its unit price",
		Long: `Register a project. Registering an existing project again replaces its
price and unit and clears its task list; recorded entries are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := model.ParseUnit(unit)
			if err != nil {
				return err
			}
			return runFor(cmd, root, args[0], price, u)
		},
	}
	cmd.Flags().Uint32Var(&price, "price", 0, "Price per unit")
	cmd.Flags().StringVar(&unit, "unit", string(model.Hour), "Billing unit: day or hour")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func runFor(cmd *cobra.Command, root *rootOptions, name string, price uint32, unit model.Unit) error {
	a, err := openApp(cmd, root)
	if err != nil {
		return err
	}

	existing, ok, err := a.registry.Project(name)
	if err != nil {
		return err
	}
	if ok && len(existing.Tasks) > 0 {
		a.logger.Warn("re-registering project clears its tasks",
			"project", existing.Name, "tasks", existing.Tasks.Sorted())
	}

	if err := a.registry.RegisterProject(name, price, unit); err != nil {
		return err
	}
	if err := a.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Registered project %q at %d per %s\n", name, price, unit)
	return nil
}
