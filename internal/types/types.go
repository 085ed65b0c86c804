// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles: the
// store, loader, storage and view packages all import types without
// depending on each other.
package types

import "strconv"

// Student is a single student record as returned by the students endpoint.
//
// The record is deliberately untyped. Whatever keys the endpoint sends
// ("id", "name", "email", "house", ...) are carried through unchanged; the
// client never validates or reshapes them.
type Student map[string]any

// Clone returns a shallow copy of the record: a new map holding the same
// values. Nested maps and slices are shared with the original.
//
// A nil record clones to an empty, non-nil record, so a JSON null in the
// payload still becomes an (empty) object.
func (s Student) Clone() Student {
	out := make(Student, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// CloneAll maps Clone over students. The result is never nil, so an empty
// payload encodes back to [] rather than null.
func CloneAll(students []Student) []Student {
	out := make([]Student, 0, len(students))
	for _, s := range students {
		out = append(out, s.Clone())
	}
	return out
}

// FromJSON turns one decoded JSON value into a Student, copying its own
// keys the way an object spread does:
//
//	object  {"id":1}  → shallow copy        {"id":1}
//	string  "ab"      → index → character   {"0":"a","1":"b"}
//	array   [7,8]     → index → element     {"0":7,"1":8}
//	number, bool, null → empty record       {}
//
// Strings are split by rune.
func FromJSON(v any) Student {
	switch val := v.(type) {
	case map[string]any:
		return Student(val).Clone()
	case Student:
		return val.Clone()
	case string:
		out := make(Student)
		i := 0
		for _, r := range val {
			out[strconv.Itoa(i)] = string(r)
			i++
		}
		return out
	case []any:
		out := make(Student, len(val))
		for i, elem := range val {
			out[strconv.Itoa(i)] = elem
		}
		return out
	default:
		return Student{}
	}
}
