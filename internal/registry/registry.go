// Package registry manages projects and the tasks registered under them.
//
// Projects are keyed by the lowercase form of their display name, so
// "Acme" and "ACME" name the same project. Registering a project that
// already exists replaces it, including its task set.
package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/Tiliavir/hours/internal/model"
	"github.com/Tiliavir/hours/internal/storage"
)

// Registry registers projects and tasks in a Store.
type Registry struct {
	store  *storage.Store
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New returns a Registry operating on s.
func New(s *storage.Store, opts ...Option) *Registry {
	r := &Registry{
		store:  s,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterProject inserts the project, or overwrites an existing one with
// the same id. An overwritten project loses its registered tasks.
func (r *Registry) RegisterProject(displayName string, unitPrice uint32, unit model.Unit) error {
	id := model.ProjectID(displayName)
	var replaced bool
	err := r.store.Write(func(d *model.Dataset) error {
		_, replaced = d.Projects[id]
		d.Projects[id] = model.Project{
			Name:      displayName,
			UnitPrice: unitPrice,
			Unit:      unit,
			Tasks:     model.NewTaskSet(),
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not add project %q: %w", displayName, err)
	}
	r.logger.Debug("project registered", "project_id", id, "replaced", replaced)
	return nil
}

// RegisterTask adds taskName to the project. It does nothing, and returns
// nil, when the project is unknown.
func (r *Registry) RegisterTask(displayName, taskName string) error {
	id := model.ProjectID(displayName)
	var found bool
	err := r.store.Write(func(d *model.Dataset) error {
		p, ok := d.Projects[id]
		if !ok {
			return nil
		}
		found = true
		p.Tasks.Add(taskName)
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not add task %q to %q: %w", taskName, displayName, err)
	}
	if !found {
		r.logger.Debug("task ignored for unknown project", "project_id", id, "task", taskName)
	}
	return nil
}

// Project looks a project up by display name.
func (r *Registry) Project(displayName string) (model.Project, bool, error) {
	id := model.ProjectID(displayName)
	var (
		p  model.Project
		ok bool
	)
	err := r.store.Read(func(d *model.Dataset) error {
		p, ok = d.Projects[id]
		if ok {
			p = p.Clone()
		}
		return nil
	})
	if err != nil {
		return model.Project{}, false, fmt.Errorf("could not read project %q: %w", displayName, err)
	}
	return p, ok, nil
}

// Projects returns all projects ordered by id.
func (r *Registry) Projects() ([]model.Project, error) {
	var projects []model.Project
	err := r.store.Read(func(d *model.Dataset) error {
		ids := make([]string, 0, len(d.Projects))
		for id := range d.Projects {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			projects = append(projects, d.Projects[id].Clone())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not list projects: %w", err)
	}
	return projects, nil
}
