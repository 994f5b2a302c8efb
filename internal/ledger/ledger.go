// Package ledger records billable entries and answers monthly billing
// queries over them.
//
// Entries are only accepted for tasks registered under their project.
// The monthly query compares the month number only, unless year matching
// is enabled with WithYearMatch: by default an entry from October 2019
// appears in the October 2020 bill.
package ledger

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Tiliavir/hours/internal/model"
	"github.com/Tiliavir/hours/internal/storage"
	"github.com/Tiliavir/hours/internal/timecalc"
)

// Ledger appends billable entries to a Store and queries them.
type Ledger struct {
	store  *storage.Store
	logger *slog.Logger

	now       func() time.Time
	location  *time.Location
	matchYear bool
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithClock replaces time.Now as the source of "now".
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithLocation sets the time zone in which entry months are evaluated.
// Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(l *Ledger) {
		l.location = loc
	}
}

// WithYearMatch makes MonthlyBilling require the year to match as well.
func WithYearMatch(enabled bool) Option {
	return func(l *Ledger) {
		l.matchYear = enabled
	}
}

// New returns a Ledger operating on s.
func New(s *storage.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:    s,
		logger:   slog.Default(),
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RecordEntry appends an entry for task under the project. date defaults to
// now. The task must have been registered under the project, otherwise an
// *UnexpectedTaskError is returned and nothing is written.
func (l *Ledger) RecordEntry(displayName, task string, quantity float64, date *time.Time) error {
	projectID := model.ProjectID(displayName)

	var known bool
	err := l.store.Read(func(d *model.Dataset) error {
		if p, ok := d.Projects[projectID]; ok {
			known = p.Tasks.Contains(task)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not add new billable entry %q, %q: %w", displayName, task, err)
	}
	if !known {
		return &UnexpectedTaskError{Project: displayName, Task: task}
	}

	when := l.now()
	if date != nil {
		when = *date
	}
	entry := model.BillableEntry{
		ProjectID: projectID,
		Task:      task,
		Quantity:  quantity,
		Date:      timecalc.FormatTimestamp(when),
	}
	err = l.store.Write(func(d *model.Dataset) error {
		d.Billable = append(d.Billable, entry)
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not add new billable entry %q, %q: %w", displayName, task, err)
	}
	l.logger.Debug("billable entry recorded",
		"project_id", projectID, "task", task, "quantity", quantity, "date", entry.Date)
	return nil
}

// BillingMonth returns the reference time MonthlyBilling selects a month
// from: ref, or now when ref is nil, in the ledger's location.
func (l *Ledger) BillingMonth(ref *time.Time) time.Time {
	target := l.now()
	if ref != nil {
		target = *ref
	}
	return target.In(l.location)
}

// MonthlyBilling returns the project's entries dated in the month of ref, or
// of now when ref is nil, in the order they were recorded. Entries whose
// stored date cannot be parsed are skipped. Returned dates are in the
// ledger's location.
func (l *Ledger) MonthlyBilling(displayName string, ref *time.Time) ([]model.Billable, error) {
	projectID := model.ProjectID(displayName)
	target := l.BillingMonth(ref)

	result := make([]model.Billable, 0)
	err := l.store.Read(func(d *model.Dataset) error {
		for i, e := range d.Billable {
			date, err := timecalc.ParseTimestamp(e.Date)
			if err != nil {
				l.logger.Debug("skipping billable entry", "index", i, "error", err)
				continue
			}
			if e.ProjectID != projectID {
				continue
			}
			date = date.In(l.location)
			if !timecalc.SameMonth(date, target, l.matchYear) {
				continue
			}
			result = append(result, model.Billable{
				ProjectID: e.ProjectID,
				Task:      e.Task,
				Quantity:  e.Quantity,
				Date:      date,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not read billable entries for %q: %w", displayName, err)
	}
	return result, nil
}

// Sync flushes the store. It never fails; a flush error is logged and can be
// inspected with the store's LastFlushErr.
func (l *Ledger) Sync() {
	if err := l.store.Flush(); err != nil {
		l.logger.Error("could not save data to file", "path", l.store.Path(), "error", err)
	}
}
