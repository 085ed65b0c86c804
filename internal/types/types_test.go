package types

import "testing"

func TestStudent_Clone(t *testing.T) {
	tags := []any{"a"}
	orig := Student{"id": 1.0, "name": "Ana", "tags": tags}

	c := orig.Clone()
	c["name"] = "Bo"

	if orig["name"] != "Ana" {
		t.Errorf("changing the clone changed the original: %v", orig)
	}
	if len(c) != 3 {
		t.Errorf("clone has %d keys, want 3", len(c))
	}

	// shallow: nested values are shared
	c["tags"].([]any)[0] = "b"
	if tags[0] != "b" {
		t.Error("nested slice was copied, want it shared")
	}
}

func TestStudent_CloneNil(t *testing.T) {
	var s Student

	c := s.Clone()
	if c == nil || len(c) != 0 {
		t.Errorf("Clone() of nil = %#v, want empty non-nil record", c)
	}
}

func TestCloneAll(t *testing.T) {
	if got := CloneAll(nil); got == nil || len(got) != 0 {
		t.Errorf("CloneAll(nil) = %#v, want empty non-nil slice", got)
	}

	in := []Student{{"id": 1.0}, {"id": 2.0}}
	out := CloneAll(in)
	if len(out) != 2 || out[1]["id"] != 2.0 {
		t.Errorf("CloneAll() = %v", out)
	}
	out[0]["id"] = 9.0
	if in[0]["id"] != 1.0 {
		t.Error("CloneAll() returned the original records")
	}
}

func TestFromJSON(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Student
	}{
		{name: "object", in: map[string]any{"id": 1.0, "name": "Ana"}, want: Student{"id": 1.0, "name": "Ana"}},
		{name: "string", in: "ab", want: Student{"0": "a", "1": "b"}},
		{name: "multibyte string", in: "é!", want: Student{"0": "é", "1": "!"}},
		{name: "array", in: []any{7.0, "x"}, want: Student{"0": 7.0, "1": "x"}},
		{name: "number", in: 3.0, want: Student{}},
		{name: "bool", in: true, want: Student{}},
		{name: "null", in: nil, want: Student{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromJSON(tt.in)
			if got == nil {
				t.Fatal("FromJSON() = nil, want non-nil record")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("FromJSON() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("FromJSON()[%s] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestFromJSON_ObjectIsCopied(t *testing.T) {
	in := map[string]any{"id": 1.0}

	out := FromJSON(in)
	out["id"] = 2.0

	if in["id"] != 1.0 {
		t.Error("FromJSON() returned the input map, want a copy")
	}
}
