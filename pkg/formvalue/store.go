package formvalue

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formfield/pkg/model"
)

// ErrUnknownPath is returned when a path has not been registered.
var ErrUnknownPath = errors.New("formvalue: path is not registered")

// Validator computes error messages for a value after it changes. Stores do
// not evaluate schema rules themselves.
type Validator func(path string, schema *model.Schema, value any) []string

// Listener is notified after a value at path changes.
type Listener func(path string, value any)

// Option configures a Store.
type Option func(*Store)

// WithValues seeds the store with prefilled values keyed by dotted path or
// nested maps.
func WithValues(values map[string]any) Option {
	return func(s *Store) {
		s.values = seedValues(values)
	}
}

// WithErrors seeds field errors keyed by dotted path.
func WithErrors(errs map[string][]string) Option {
	return func(s *Store) {
		s.errors = cloneErrors(errs)
	}
}

// WithValidator installs the validator run after each update.
func WithValidator(fn Validator) Option {
	return func(s *Store) {
		s.validator = fn
	}
}

// Store holds the values and errors for a set of fields and hands out
// FormValue snapshots bound to them.
type Store struct {
	mu         sync.RWMutex
	values     map[string]any
	errors     map[string][]string
	formErrors []string
	schemas    map[string]*model.Schema
	forced     bool
	validator  Validator
	listeners  []Listener
}

// New creates an empty store.
func New(options ...Option) *Store {
	s := &Store{
		values:  make(map[string]any),
		errors:  make(map[string][]string),
		schemas: make(map[string]*model.Schema),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Register associates a schema with a dotted path. Registering a path
// twice replaces its schema.
func (s *Store) Register(path string, schema *model.Schema) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("formvalue: path is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schemas[path] = schema
	if _, ok := getPath(s.values, path); !ok && schema != nil && schema.Default != nil {
		if err := setPath(s.values, path, schema.Default); err != nil {
			return fmt.Errorf("formvalue: seed default for %q: %w", path, err)
		}
	}
	return nil
}

// Paths returns the registered paths in sorted order.
func (s *Store) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, len(s.schemas))
	for path := range s.schemas {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// FormValue returns a snapshot bound to path. The snapshot never changes;
// call FormValue again after an update to observe the new state.
func (s *Store) FormValue(path string) (*model.FormValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schema, ok := s.schemas[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	value, _ := getPath(s.values, path)
	return &model.FormValue{
		Value:  deepCopy(value),
		Schema: schema,
		Params: model.Params{ForceShowErrors: s.forced},
		Errors: append([]string(nil), s.errors[path]...),
		Update: func(next any) {
			s.update(path, next)
		},
	}, nil
}

// Value resolves the current value at path.
func (s *Store) Value(path string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := getPath(s.values, path)
	return deepCopy(value), ok
}

// Values returns a deep copy of all values.
func (s *Store) Values() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneValues(s.values)
}

// Errors returns a copy of the field errors keyed by path.
func (s *Store) Errors() map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneErrors(s.errors)
}

// FormErrors returns errors that could not be attached to a field.
func (s *Store) FormErrors() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.formErrors...)
}

// ForceShowErrors sets Params.ForceShowErrors on every snapshot handed out
// afterwards, typically after a submit attempt.
func (s *Store) ForceShowErrors(force bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forced = force
}

// Subscribe registers a listener for value changes.
func (s *Store) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Valid reports whether no field or form errors are recorded.
func (s *Store) Valid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.formErrors) > 0 {
		return false
	}
	for _, messages := range s.errors {
		if len(messages) > 0 {
			return false
		}
	}
	return true
}

func (s *Store) update(path string, value any) {
	s.mu.Lock()
	if err := setPath(s.values, path, value); err != nil {
		s.errors[path] = []string{err.Error()}
		s.mu.Unlock()
		s.notify(path, value)
		return
	}
	validator, schema := s.validator, s.schemas[path]
	s.mu.Unlock()

	// Validators may read the store, so they run without the lock held.
	if validator != nil {
		messages := normalizeMessages(validator(path, schema, value))
		s.mu.Lock()
		if len(messages) > 0 {
			s.errors[path] = messages
		} else {
			delete(s.errors, path)
		}
		s.mu.Unlock()
	}
	s.notify(path, value)
}

func (s *Store) notify(path string, value any) {
	s.mu.RLock()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(path, value)
	}
}
