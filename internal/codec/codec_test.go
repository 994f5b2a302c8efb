package codec_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Tiliavir/hours/internal/codec"
	"github.com/Tiliavir/hours/internal/model"
)

func sampleDataset() *model.Dataset {
	d := model.NewDataset()
	d.Projects["foo"] = model.Project{Name: "Foo", UnitPrice: 80, Unit: model.Day, Tasks: model.NewTaskSet()}
	d.Projects["bar"] = model.Project{Name: "Bar", UnitPrice: 95, Unit: model.Hour, Tasks: model.NewTaskSet("development", "meetings")}
	d.Projects["acme corp"] = model.Project{Name: "ACME Corp", UnitPrice: 0, Unit: model.Day, Tasks: model.NewTaskSet("ops")}
	d.Billable = []model.BillableEntry{
		{ProjectID: "bar", Task: "development", Quantity: 8, Date: "2020-10-11 22:09:24.269707 +02:00"},
		{ProjectID: "bar", Task: "meetings", Quantity: 0.5, Date: "2020-10-12 09:00:00 +02:00"},
		{ProjectID: "acme corp", Task: "ops", Quantity: 1, Date: "2020-09-12 22:09:24.269707 +02:00"},
		{ProjectID: "bar", Task: "development", Quantity: 8, Date: "2020-10-11 22:09:24.269707 +02:00"},
		{ProjectID: "bar", Task: "development", Quantity: 7.25, Date: "2019-10-20 18:30:00.500 -05:00"},
	}
	return d
}

func TestRoundTrip(t *testing.T) {
	want := sampleDataset()

	data, err := codec.Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v\n%s", err, data)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch\n got: %#v\nwant: %#v", got, want)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	a, err := codec.Encode(sampleDataset())
	if err != nil {
		t.Fatal(err)
	}
	b, err := codec.Encode(sampleDataset())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("encoding differs between runs:\n%s\n---\n%s", a, b)
	}
}

func TestEncodeFormat(t *testing.T) {
	data, err := codec.Encode(sampleDataset())
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{
		"billable:",
		"projects:",
		"project_id: bar",
		"unit_price: 95",
		"unit: hour",
		"unit: day",
		"2020-10-11 22:09:24.269707 +02:00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded output missing %q:\n%s", want, out)
		}
	}
	// Tasks are written in sorted order.
	if strings.Index(out, "- development") > strings.Index(out, "- meetings") {
		t.Errorf("tasks not sorted:\n%s", out)
	}
}

func TestEncodeEmptyDataset(t *testing.T) {
	data, err := codec.Encode(model.NewDataset())
	if err != nil {
		t.Fatal(err)
	}
	got, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("Decode(%q): %v", data, err)
	}
	if len(got.Projects) != 0 || len(got.Billable) != 0 {
		t.Errorf("expected empty dataset, got %#v", got)
	}
}

func TestEncodeUnknownUnit(t *testing.T) {
	d := model.NewDataset()
	d.Projects["foo"] = model.Project{Name: "Foo", Unit: "week", Tasks: model.NewTaskSet()}
	if _, err := codec.Encode(d); !errors.Is(err, codec.ErrEncodeFailed) {
		t.Errorf("Encode error = %v, want ErrEncodeFailed", err)
	}
}

func TestDecodeMissingKeys(t *testing.T) {
	got, err := codec.Decode([]byte("projects:\n  foo:\n    name: Foo\n    unit_price: 80\n    unit: day\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Billable == nil || len(got.Billable) != 0 {
		t.Errorf("Billable = %#v, want empty non-nil slice", got.Billable)
	}
	p, ok := got.Projects["foo"]
	if !ok {
		t.Fatal("project foo missing")
	}
	if p.Tasks == nil || len(p.Tasks) != 0 {
		t.Errorf("Tasks = %#v, want empty set", p.Tasks)
	}
}

func TestDecodeFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "  \n\n"},
		{"garbage", "{bad yaml"},
		{"truncated", "billable: [\n  {project_id: foo,"},
		{"scalar", "hello"},
		{"bad unit", "projects:\n  foo:\n    name: Foo\n    unit_price: 1\n    unit: week\n"},
		{"negative price", "projects:\n  foo:\n    name: Foo\n    unit_price: -1\n    unit: day\n"},
		{"bad quantity", "billable:\n  - project_id: foo\n    task: dev\n    quantity: lots\n    date: x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode([]byte(tt.input))
			if !errors.Is(err, codec.ErrDecodeFailed) {
				t.Errorf("Decode error = %v, want ErrDecodeFailed", err)
			}
		})
	}
}
