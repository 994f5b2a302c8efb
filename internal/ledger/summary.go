package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/Tiliavir/hours/internal/model"
)

// TaskTotal is the billed quantity for one task.
type TaskTotal struct {
	Task     string
	Quantity decimal.Decimal
}

// Summary aggregates a project's billable entries for an invoice.
type Summary struct {
	ProjectID string
	Name      string
	Unit      model.Unit
	UnitPrice decimal.Decimal
	Entries   int
	Tasks     []TaskTotal
	Quantity  decimal.Decimal
	Amount    decimal.Decimal
}

// Summarize totals the entries belonging to project. Tasks are listed in
// the order they first appear. Amount is Quantity times the unit price.
func Summarize(project model.Project, entries []model.Billable) Summary {
	s := Summary{
		ProjectID: project.ID(),
		Name:      project.Name,
		Unit:      project.Unit,
		UnitPrice: decimal.NewFromInt(int64(project.UnitPrice)),
		Quantity:  decimal.Zero,
	}

	index := map[string]int{}
	for _, e := range entries {
		if e.ProjectID != s.ProjectID {
			continue
		}
		q := decimal.NewFromFloat(e.Quantity)
		i, ok := index[e.Task]
		if !ok {
			i = len(s.Tasks)
			index[e.Task] = i
			s.Tasks = append(s.Tasks, TaskTotal{Task: e.Task, Quantity: decimal.Zero})
		}
		s.Tasks[i].Quantity = s.Tasks[i].Quantity.Add(q)
		s.Quantity = s.Quantity.Add(q)
		s.Entries++
	}
	s.Amount = s.Quantity.Mul(s.UnitPrice)
	return s
}
