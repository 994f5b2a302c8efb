// Package codec converts the dataset to and from its YAML file format.
//
// The file has two top-level keys:
//
//	billable:
//	  - project_id: foo
//	    task: development
//	    quantity: 8
//	    date: 2020-10-11 22:09:24.269707 +02:00
//	projects:
//	  foo:
//	    name: Foo
//	    unit_price: 80
//	    unit: day
//	    tasks:
//	      - development
//
// Task sets are written sorted so that encoding is deterministic.
package codec

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/hours/internal/model"
)

var (
	ErrDecodeFailed = errors.New("codec: decode failed")
	ErrEncodeFailed = errors.New("codec: encode failed")
)

type fileEntry struct {
	ProjectID string  `yaml:"project_id"`
	Task      string  `yaml:"task"`
	Quantity  float64 `yaml:"quantity"`
	Date      string  `yaml:"date"`
}

type fileProject struct {
	Name      string   `yaml:"name"`
	UnitPrice uint32   `yaml:"unit_price"`
	Unit      string   `yaml:"unit"`
	Tasks     []string `yaml:"tasks"`
}

type fileData struct {
	Billable []fileEntry           `yaml:"billable"`
	Projects map[string]fileProject `yaml:"projects"`
}

// Encode renders d as YAML.
func Encode(d *model.Dataset) ([]byte, error) {
	fd := fileData{
		Billable: make([]fileEntry, 0, len(d.Billable)),
		Projects: make(map[string]fileProject, len(d.Projects)),
	}
	for _, e := range d.Billable {
		fd.Billable = append(fd.Billable, fileEntry(e))
	}
	for id, p := range d.Projects {
		if !p.Unit.Valid() {
			return nil, fmt.Errorf("%w: project %q has unknown unit %q", ErrEncodeFailed, id, p.Unit)
		}
		fd.Projects[id] = fileProject{
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			Unit:      string(p.Unit),
			Tasks:     p.Tasks.Sorted(),
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	return buf.Bytes(), nil
}

// Decode parses YAML produced by Encode. Empty input is an error: an
// existing data file is expected to hold a dataset.
func Decode(data []byte) (*model.Dataset, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecodeFailed)
	}

	var fd fileData
	if err := yaml.Unmarshal(data, &fd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	d := model.NewDataset()
	for _, e := range fd.Billable {
		d.Billable = append(d.Billable, model.BillableEntry(e))
	}
	for id, p := range fd.Projects {
		unit := model.Unit(p.Unit)
		if !unit.Valid() {
			return nil, fmt.Errorf("%w: project %q has unknown unit %q", ErrDecodeFailed, id, p.Unit)
		}
		d.Projects[id] = model.Project{
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			Unit:      unit,
			Tasks:     model.NewTaskSet(p.Tasks...),
		}
	}
	return d, nil
}
