package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hours/internal/ledger"
	"github.com/Tiliavir/hours/internal/timecalc"
)

func newInvoiceCmd(root *rootOptions) *cobra.Command {
	var (
		month  string
		format string
	)
	cmd := &cobra.Command{
		Use:   "invoice <project>",
		Short: "Summarise a project's billable entries for one month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := monthRef(month)
			if err != nil {
				return err
			}
			return runInvoice(cmd, root, args[0], ref, format)
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "Month to bill (YYYY-MM or YYYY-MM-DD), defaults to the current month")
	cmd.Flags().StringVar(&format, "format", "md", "Output format: md, csv, json")
	return cmd
}

func runInvoice(cmd *cobra.Command, root *rootOptions, name string, ref *time.Time, format string) error {
	a, err := openApp(cmd, root)
	if err != nil {
		return err
	}

	project, ok, err := a.registry.Project(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unknown project %q", name)
	}
	entries, err := a.ledger.MonthlyBilling(name, ref)
	if err != nil {
		return err
	}
	summary := ledger.Summarize(project, entries)
	label := timecalc.MonthLabel(a.ledger.BillingMonth(ref))

	out := cmd.OutOrStdout()
	switch format {
	case "csv":
		return writeInvoiceCSV(out, summary)
	case "json":
		return writeInvoiceJSON(out, summary, label)
	case "md":
		writeInvoiceMarkdown(out, summary, label)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want md, csv or json)", format)
	}
}

func writeInvoiceMarkdown(w io.Writer, s ledger.Summary, label string) {
	fmt.Fprintf(w, "Invoice %s – %s\n", s.Name, label)
	fmt.Fprintln(w, "--------------------------------")
	if s.Entries == 0 {
		fmt.Fprintln(w, "No entries found.")
	}
	for _, t := range s.Tasks {
		fmt.Fprintf(w, "%-20s%s %s\n", t.Task, t.Quantity, s.Unit.Plural(t.Quantity.InexactFloat64()))
	}
	fmt.Fprintln(w, "--------------------------------")
	fmt.Fprintf(w, "%-20s%s %s\n", "Total", s.Quantity, s.Unit.Plural(s.Quantity.InexactFloat64()))
	fmt.Fprintf(w, "%-20s%s per %s\n", "Unit price", s.UnitPrice, s.Unit)
	fmt.Fprintf(w, "%-20s%s\n", "Amount", s.Amount)
}

func writeInvoiceCSV(w io.Writer, s ledger.Summary) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"task", "quantity", "unit", "unit_price", "amount"})
	for _, t := range s.Tasks {
		_ = cw.Write([]string{
			t.Task,
			t.Quantity.String(),
			string(s.Unit),
			s.UnitPrice.String(),
			t.Quantity.Mul(s.UnitPrice).String(),
		})
	}
	cw.Flush()
	return cw.Error()
}

type invoiceTaskJSON struct {
	Task     string `json:"task"`
	Quantity string `json:"quantity"`
	Amount   string `json:"amount"`
}

type invoiceJSON struct {
	Project   string            `json:"project"`
	Month     string            `json:"month"`
	Unit      string            `json:"unit"`
	UnitPrice string            `json:"unit_price"`
	Entries   int               `json:"entries"`
	Tasks     []invoiceTaskJSON `json:"tasks"`
	Quantity  string            `json:"quantity"`
	Amount    string            `json:"amount"`
}

func writeInvoiceJSON(w io.Writer, s ledger.Summary, label string) error {
	doc := invoiceJSON{
		Project:   s.Name,
		Month:     label,
		Unit:      string(s.Unit),
		UnitPrice: s.UnitPrice.String(),
		Entries:   s.Entries,
		Tasks:     make([]invoiceTaskJSON, 0, len(s.Tasks)),
		Quantity:  s.Quantity.String(),
		Amount:    s.Amount.String(),
	}
	for _, t := range s.Tasks {
		doc.Tasks = append(doc.Tasks, invoiceTaskJSON{
			Task:     t.Task,
			Quantity: t.Quantity.String(),
			Amount:   t.Quantity.Mul(s.UnitPrice).String(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	return nil
}

// monthRef parses the --month flag; an empty value means the current month.
func monthRef(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := timecalc.ParseMonth(s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
