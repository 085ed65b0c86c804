package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aanand-mishra/students-board/internal/store"
	"github.com/aanand-mishra/students-board/internal/types"
)

func TestTable_RenderEmpty(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTable(&buf, nil).Render(nil); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.String() != "no students\n" {
		t.Errorf("Render() = %q, want %q", buf.String(), "no students\n")
	}
}

func TestTable_RenderOne(t *testing.T) {
	var buf bytes.Buffer

	err := NewTable(&buf, nil).Render([]types.Student{{"id": 1.0, "name": "Ana"}})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "id  name\n1   Ana\n(1 students)\n"
	if buf.String() != want {
		t.Errorf("Render() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTable_RenderMissingValues(t *testing.T) {
	var buf bytes.Buffer

	err := NewTable(&buf, nil).Render([]types.Student{
		{"id": 1.0, "name": "Ana", "house": "red"},
		{"id": 2.0, "age": 17.0},
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Render() produced %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if fields := strings.Fields(lines[0]); strings.Join(fields, ",") != "id,name,age,house" {
		t.Errorf("header = %v, want id,name,age,house", fields)
	}
	if fields := strings.Fields(lines[2]); strings.Join(fields, ",") != "2,-,17,-" {
		t.Errorf("row 2 = %v, want 2,-,17,-", fields)
	}
}

func TestTable_Attach(t *testing.T) {
	var buf bytes.Buffer
	students := store.NewStudentList()

	detach := NewTable(&buf, nil).Attach(students)

	if buf.String() != "no students\n" {
		t.Fatalf("initial render = %q", buf.String())
	}

	students.Set([]types.Student{{"name": "Ana"}})
	if !strings.Contains(buf.String(), "Ana") {
		t.Errorf("render after Set missing student: %q", buf.String())
	}

	detach()
	buf.Reset()
	students.Set([]types.Student{{"name": "Bo"}})
	if buf.Len() != 0 {
		t.Errorf("render after detach = %q, want nothing", buf.String())
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		name     string
		students []types.Student
		want     string
	}{
		{name: "empty", students: nil, want: ""},
		{name: "no leading keys", students: []types.Student{{"b": 1, "a": 2}}, want: "a,b"},
		{name: "name without id", students: []types.Student{{"email": "x", "name": "y"}}, want: "name,email"},
		{
			name:     "union across records",
			students: []types.Student{{"id": 1, "z": 1}, {"name": "n", "a": 1}},
			want:     "id,name,a,z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(Columns(tt.students), ",")
			if got != tt.want {
				t.Errorf("Columns() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{"Ana", "Ana"},
		{1.0, "1"},
		{2.5, "2.5"},
		{true, "true"},
		{[]any{"a", 1.0}, `["a",1]`},
		{map[string]any{"k": "v"}, `{"k":"v"}`},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
