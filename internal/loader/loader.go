// Package loader fetches the student list from the students endpoint and
// publishes it into a store.
//
// ONE-SHOT BY CONTRACT:
// ─────────────────────
// A Loader runs once. The application builds it during startup, calls
// Load, and from then on the store is the only source of student data:
//
//	students := store.NewStudentList()
//	l := loader.New(students, loader.WithLogger(log))
//	if err := l.Load(ctx); err != nil {
//	    // the store still holds its empty initial value
//	}
//
// Nothing here runs from an init() function. The side effect (one HTTP
// request, one store replacement) happens only where main calls Load.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aanand-mishra/students-board/internal/types"
)

// DefaultEndpoint is where the students API lives during local development.
const DefaultEndpoint = "http://localhost:3000/students"

// ErrAlreadyLoaded is returned by every Load call after the first.
var ErrAlreadyLoaded = errors.New("loader: students already loaded")

// Setter is the write side of a store. *store.StudentList satisfies it.
// Depending on this one-method interface (not the concrete store) lets
// tests pass a recorder instead of a real store.
type Setter interface {
	Set([]types.Student)
}

// Option configures a Loader.
type Option func(*Loader)

// WithEndpoint overrides DefaultEndpoint.
func WithEndpoint(url string) Option {
	return func(l *Loader) {
		if url != "" {
			l.endpoint = url
		}
	}
}

// WithHTTPClient overrides the HTTP client used for the request.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.httpClient = c
		}
	}
}

// WithLogger sets the logger that receives the raw payload dump.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader issues a single GET against the students endpoint and replaces
// the store's value with the result.
type Loader struct {
	target     Setter
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger

	// once guards the single run; err keeps its outcome.
	once sync.Once
	err  error
}

// New returns a Loader that will publish into target.
//
// The default HTTP client has no timeout; the context passed to Load is
// the only way to bound the request.
func New(target Setter, opts ...Option) *Loader {
	l := &Loader{
		target:     target,
		endpoint:   DefaultEndpoint,
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Endpoint returns the URL the loader fetches from.
func (l *Loader) Endpoint() string {
	return l.endpoint
}

// Load fetches the students and calls Set on the store exactly once.
//
// Load is not re-triggerable: the first call does the work and every later
// call returns ErrAlreadyLoaded without touching the network, whether the
// first call succeeded or not. On any failure the store is left alone.
func (l *Loader) Load(ctx context.Context) error {
	ran := false
	l.once.Do(func() {
		ran = true
		l.err = l.load(ctx)
	})
	if !ran {
		return ErrAlreadyLoaded
	}
	return l.err
}

// ─────────────────────────────────────────────────────────────────────────────
// load does the actual work. Only two things can fail:
//
//   - the request itself (connection refused, DNS, cancelled context)
//   - the body is not a JSON array
//
// The status code is NOT a failure on its own. A 500 whose body is a JSON
// array still publishes that array; a 500 with an HTML error page fails
// at the decode step like any other non-JSON body.
// ─────────────────────────────────────────────────────────────────────────────
func (l *Loader) load(ctx context.Context) error {
	// ── 1. Request ────────────────────────────────────────────────────────
	// Plain GET: no headers, no query, no retry.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return fmt.Errorf("loader.Load: new request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("loader.Load: get %s: %w", l.endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("loader.Load: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		l.logger.Warn("students endpoint returned non-2xx status",
			slog.String("endpoint", l.endpoint),
			slog.Int("status", resp.StatusCode))
	}

	// ── 2. Decode ─────────────────────────────────────────────────────────
	// Decode into []any rather than []types.Student: elements do not have
	// to be objects, and each one is converted below.
	var data []any
	if err := json.Unmarshal(body, &data); err != nil {
		return fmt.Errorf("loader.Load: decode body: %w", err)
	}
	// a bare JSON null decodes without error but is not a list
	if data == nil {
		return fmt.Errorf("loader.Load: decode body: expected a JSON array, got %q", body)
	}

	// ── 3. Diagnostic dump ────────────────────────────────────────────────
	// The raw payload, before any transformation. Logged at Info so it is
	// kept in every environment, prod included.
	l.logger.Info("students fetched",
		slog.String("endpoint", l.endpoint),
		slog.String("payload", string(body)))

	// ── 4. Transform and publish ──────────────────────────────────────────
	// Every element becomes its own shallow copy (see types.FromJSON).
	// Set is called once with the whole list: one replacement event.
	students := make([]types.Student, 0, len(data))
	for _, elem := range data {
		students = append(students, types.FromJSON(elem))
	}

	l.target.Set(students)
	return nil
}
