package model

import "time"

// BillableEntry is one recorded unit of billed work as it is persisted.
// Date holds the timestamp text written by timecalc.FormatTimestamp.
type BillableEntry struct {
	ProjectID string
	Task      string
	Quantity  float64
	Date      string
}

// Billable is a BillableEntry whose date has been parsed back into a time.
type Billable struct {
	ProjectID string
	Task      string
	Quantity  float64
	Date      time.Time
}

// Dataset is the aggregate root stored in the data file.
type Dataset struct {
	Projects map[string]Project
	Billable []BillableEntry
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{
		Projects: map[string]Project{},
		Billable: []BillableEntry{},
	}
}

// Clone returns a deep copy of d.
func (d *Dataset) Clone() *Dataset {
	c := &Dataset{
		Projects: make(map[string]Project, len(d.Projects)),
		Billable: make([]BillableEntry, len(d.Billable)),
	}
	for id, p := range d.Projects {
		c.Projects[id] = p.Clone()
	}
	copy(c.Billable, d.Billable)
	return c
}
