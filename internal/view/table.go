// Package view is the rendering layer: it draws the student list held by a
// store as a plain text table.
//
// WHY SUBSCRIBE INSTEAD OF CALLING Render DIRECTLY?
// ─────────────────────────────────────────────────
// The table never asks the loader for data. It attaches to the store and
// redraws whenever the store is replaced, so it draws the empty list at
// startup, then the loaded list, without knowing a loader exists. Any
// other consumer (the snapshot archive, a future web view) hooks in the
// same way.
//
// Example output:
//
//	id  name  house
//	1   Ana   red
//	2   Bo    -
//	(2 students)
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/aanand-mishra/students-board/internal/store"
	"github.com/aanand-mishra/students-board/internal/types"
)

// leading columns, in this order, when present
var leading = []string{"id", "name"}

// Table writes a student list to w every time it is rendered.
type Table struct {
	mu     sync.Mutex
	w      io.Writer
	logger *slog.Logger
}

// NewTable returns a Table writing to w. A nil logger means slog.Default.
func NewTable(w io.Writer, logger *slog.Logger) *Table {
	if logger == nil {
		logger = slog.Default()
	}
	return &Table{w: w, logger: logger}
}

// Attach subscribes the table to src. The current list is drawn right
// away and again on every replacement. The returned function detaches it.
func (t *Table) Attach(src store.Readable[[]types.Student]) (detach func()) {
	return src.Subscribe(func(students []types.Student) {
		if err := t.Render(students); err != nil {
			t.logger.Error("failed to render students",
				slog.String("error", err.Error()))
		}
	})
}

// Render draws students once.
func (t *Table) Render(students []types.Student) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(students) == 0 {
		_, err := fmt.Fprintln(t.w, "no students")
		return err
	}

	cols := Columns(students)

	// tabwriter aligns tab-separated cells into columns, padding each
	// with at least two spaces. Nothing is written to t.w until Flush.
	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
	for _, s := range students {
		cells := make([]string, len(cols))
		for i, col := range cols {
			v, ok := s[col]
			// records are untyped, so a column may be missing from a row
			if !ok {
				cells[i] = "-"
				continue
			}
			cells[i] = FormatValue(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	fmt.Fprintf(tw, "(%d students)\n", len(students))

	return tw.Flush()
}

// Columns returns the union of keys across students: "id" and "name"
// first when any record has them, every other key after in sorted order.
func Columns(students []types.Student) []string {
	seen := make(map[string]struct{})
	for _, s := range students {
		for k := range s {
			seen[k] = struct{}{}
		}
	}

	cols := make([]string, 0, len(seen))
	for _, k := range leading {
		if _, ok := seen[k]; ok {
			cols = append(cols, k)
			delete(seen, k)
		}
	}

	rest := make([]string, 0, len(seen))
	for k := range seen {
		rest = append(rest, k)
	}
	slices.Sort(rest)

	return append(cols, rest...)
}

// ─────────────────────────────────────────────────────────────────────────────
// FormatValue renders one decoded JSON value for a table cell.
//
// encoding/json decodes every number into float64, so 1 arrives as 1.0;
// FormatFloat with precision -1 prints it back as "1". Objects and arrays
// are re-encoded as compact JSON.
// ─────────────────────────────────────────────────────────────────────────────
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(raw)
	}
}
