package ledger_test

import (
	"testing"
	"time"

	"github.com/Tiliavir/hours/internal/ledger"
	"github.com/Tiliavir/hours/internal/model"
)

func TestSummarize(t *testing.T) {
	project := model.Project{Name: "Foo", UnitPrice: 80, Unit: model.Day, Tasks: model.NewTaskSet("development", "review")}
	when := time.Date(2020, 10, 11, 0, 0, 0, 0, time.UTC)
	entries := []model.Billable{
		{ProjectID: "foo", Task: "development", Quantity: 8, Date: when},
		{ProjectID: "foo", Task: "review", Quantity: 0.1, Date: when},
		{ProjectID: "foo", Task: "development", Quantity: 7, Date: when},
		{ProjectID: "foo", Task: "review", Quantity: 0.2, Date: when},
		{ProjectID: "bar", Task: "development", Quantity: 100, Date: when},
	}

	s := ledger.Summarize(project, entries)

	if s.ProjectID != "foo" || s.Name != "Foo" || s.Unit != model.Day {
		t.Errorf("header = %q %q %q", s.ProjectID, s.Name, s.Unit)
	}
	if s.Entries != 4 {
		t.Errorf("Entries = %d, want 4", s.Entries)
	}
	if len(s.Tasks) != 2 || s.Tasks[0].Task != "development" || s.Tasks[1].Task != "review" {
		t.Fatalf("Tasks = %#v, want development then review", s.Tasks)
	}
	if got := s.Tasks[0].Quantity.String(); got != "15" {
		t.Errorf("development = %s, want 15", got)
	}
	if got := s.Tasks[1].Quantity.String(); got != "0.3" {
		t.Errorf("review = %s, want 0.3", got)
	}
	if got := s.Quantity.String(); got != "15.3" {
		t.Errorf("Quantity = %s, want 15.3", got)
	}
	if got := s.Amount.String(); got != "1224" {
		t.Errorf("Amount = %s, want 1224", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := ledger.Summarize(model.Project{Name: "Foo", UnitPrice: 80, Unit: model.Hour}, nil)
	if s.Entries != 0 || len(s.Tasks) != 0 {
		t.Errorf("unexpected summary %#v", s)
	}
	if !s.Amount.IsZero() || !s.Quantity.IsZero() {
		t.Errorf("Amount = %s, Quantity = %s, want 0", s.Amount, s.Quantity)
	}
}
