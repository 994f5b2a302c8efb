package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hours/internal/model"
	"github.com/Tiliavir/hours/internal/timecalc"
)

func newListCmd(root *rootOptions) *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "list <project>",
		Short: "List a project's billable entries for one month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := monthRef(month)
			if err != nil {
				return err
			}
			return runList(cmd, root, args[0], ref)
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "Month to list (YYYY-MM or YYYY-MM-DD), defaults to the current month")
	return cmd
}

func runList(cmd *cobra.Command, root *rootOptions, name string, ref *time.Time) error {
	a, err := openApp(cmd, root)
	if err != nil {
		return err
	}

	project, ok, err := a.registry.Project(name)
	if err != nil {
		return err
	}
	unit := model.Hour
	if ok {
		unit = project.Unit
	}

	entries, err := a.ledger.MonthlyBilling(name, ref)
	if err != nil {
		return err
	}
	printList(cmd.OutOrStdout(), entries, unit)
	return nil
}

// printList groups entries by date and prints them. Entries keep the order
// they were recorded in; a day heading is printed whenever the date changes.
func printList(w io.Writer, entries []model.Billable, unit model.Unit) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}

	for i, e := range entries {
		if i == 0 || !timecalc.SameDay(e.Date, entries[i-1].Date) {
			fmt.Fprintln(w, e.Date.Format(timecalc.DateLayout))
		}
		fmt.Fprintf(w, "  %-20s%s %s\n", e.Task, formatQuantity(e.Quantity), unit.Plural(e.Quantity))
	}
}
