package model

import (
	"fmt"
	"sort"
	"strings"
)

// Unit is the billing unit of a project.
type Unit string

const (
	Day  Unit = "day"
	Hour Unit = "hour"
)

// ParseUnit accepts "day" or "hour" in any letter case.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", fmt.Errorf("unknown billing unit %q (want day or hour)", s)
	}
	return u, nil
}

// Valid reports whether u is one of the known billing units.
func (u Unit) Valid() bool {
	return u == Day || u == Hour
}

// Plural returns the unit name for a quantity, e.g. "1 day", "7.5 hours".
func (u Unit) Plural(quantity float64) string {
	if quantity == 1 {
		return string(u)
	}
	return string(u) + "s"
}

// TaskSet is a set of task names. Names are case-sensitive.
type TaskSet map[string]struct{}

// NewTaskSet returns a set holding the given names.
func NewTaskSet(names ...string) TaskSet {
	s := make(TaskSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts name; adding an existing name is a no-op.
func (s TaskSet) Add(name string) {
	s[name] = struct{}{}
}

// Contains reports whether name is a member of the set.
func (s TaskSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the task names in lexical order.
func (s TaskSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Project is a billable client engagement.
type Project struct {
	Name      string
	UnitPrice uint32
	Unit      Unit
	Tasks     TaskSet
}

// ID returns the key the project is stored under.
func (p Project) ID() string {
	return ProjectID(p.Name)
}

// Clone returns a copy of p that shares no task set with it.
func (p Project) Clone() Project {
	c := p
	c.Tasks = make(TaskSet, len(p.Tasks))
	for t := range p.Tasks {
		c.Tasks[t] = struct{}{}
	}
	return c
}

// ProjectID derives the canonical project identifier from a display name.
// Two names that differ only in letter case map to the same project.
func ProjectID(displayName string) string {
	return strings.ToLower(displayName)
}
