package cmd

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hours/internal/timecalc"
)

func newWorkedOnCmd(root *rootOptions) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "worked-on <project> <task> <quantity>",
		Short: "Record worked hours or days on a task",
		Long: `Record a billable quantity against a registered task. The entry is dated
now unless --date is given.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := parseQuantity(args[2])
			if err != nil {
				return err
			}
			var on *time.Time
			if date != "" {
				d, err := timecalc.ParseDate(date, time.Local)
				if err != nil {
					return err
				}
				on = &d
			}
			return runWorkedOn(cmd, root, args[0], args[1], quantity, on)
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date worked (YYYY-MM-DD), defaults to now")
	return cmd
}

func runWorkedOn(cmd *cobra.Command, root *rootOptions, project, task string, quantity float64, on *time.Time) error {
	a, err := openApp(cmd, root)
	if err != nil {
		return err
	}
	if err := a.ledger.RecordEntry(project, task, quantity, on); err != nil {
		return err
	}
	if err := a.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Marked %s to %s\n", formatQuantity(quantity), task)
	return nil
}

// parseQuantity accepts a positive, finite decimal number.
func parseQuantity(s string) (float64, error) {
	q, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: must be a number", s)
	}
	if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
		return 0, fmt.Errorf("invalid quantity %q: must be greater than zero", s)
	}
	return q, nil
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
