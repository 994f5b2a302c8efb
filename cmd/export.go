package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hours/internal/model"
	"github.com/Tiliavir/hours/internal/timecalc"
)

func newExportCmd(root *rootOptions) *cobra.Command {
	var (
		month  string
		format string
	)
	cmd := &cobra.Command{
		Use:   "export <project>",
		Short: "Export a project's billable entries for one month to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := monthRef(month)
			if err != nil {
				return err
			}
			return runExport(cmd, root, args[0], ref, format)
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "Month to export (YYYY-MM or YYYY-MM-DD), defaults to the current month")
	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv, json")
	return cmd
}

func runExport(cmd *cobra.Command, root *rootOptions, name string, ref *time.Time, format string) error {
	a, err := openApp(cmd, root)
	if err != nil {
		return err
	}
	entries, err := a.ledger.MonthlyBilling(name, ref)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return writeEntriesJSON(out, entries)
	case "csv":
		return writeEntriesCSV(out, entries)
	default:
		return fmt.Errorf("unknown format %q (want csv or json)", format)
	}
}

type entryJSON struct {
	Project  string  `json:"project_id"`
	Task     string  `json:"task"`
	Quantity float64 `json:"quantity"`
	Date     string  `json:"date"`
}

func writeEntriesJSON(w io.Writer, entries []model.Billable) error {
	rows := make([]entryJSON, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, entryJSON{
			Project:  e.ProjectID,
			Task:     e.Task,
			Quantity: e.Quantity,
			Date:     timecalc.FormatTimestamp(e.Date),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	return nil
}

func writeEntriesCSV(w io.Writer, entries []model.Billable) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"date", "project_id", "task", "quantity"})
	for _, e := range entries {
		_ = cw.Write([]string{
			e.Date.Format(timecalc.DateLayout),
			e.ProjectID,
			e.Task,
			formatQuantity(e.Quantity),
		})
	}
	cw.Flush()
	return cw.Error()
}
