package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/savings"
	"github.com/rs/zerolog"
)

// GoalStore persists the goal collection in the GoalsKey slot of a Backend.
//
// It never fails: a slot that cannot be read back as a valid collection loads
// as an empty one, and write failures are logged and dropped.
type GoalStore struct {
	backend Backend
	log     zerolog.Logger
}

// NewGoalStore returns a store on top of 'backend'.
func NewGoalStore(backend Backend, log zerolog.Logger) *GoalStore {
	return &GoalStore{backend: backend, log: log}
}

// required lists the fields every stored goal must carry, with the json kind
// of their value.
var required = []struct {
	path, kind string
}{
	{"$.id", "string"},
	{"$.title", "string"},
	{"$.icon", "string"},
	{"$.currency", "string"},
	{"$.targetAmount", "number"},
	{"$.savedAmount", "number"},
	{"$.createdAt", "string"},
	{"$.updatedAt", "string"},
}

func kindOf(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "bool"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", v)
}

// elementError is a fault located in a single element of a stored collection.
type elementError struct {
	index int
	err   error
}

func (e *elementError) Error() string { return fmt.Sprintf("goal #%d: %v", e.index, e.err) }

func (e *elementError) Unwrap() error { return e.err }

// checkSchema verifies the shape of a stored collection.
func checkSchema(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	list, ok := doc.([]any)
	if !ok {
		return fmt.Errorf("collection is a %s, not an array", kindOf(doc))
	}
	for i, item := range list {
		if _, ok := item.(map[string]any); !ok {
			return &elementError{i, fmt.Errorf("a %s, not an object", kindOf(item))}
		}
		for _, field := range required {
			v, err := jsonpath.Get(field.path, item)
			if err != nil {
				return &elementError{i, fmt.Errorf("missing %s", field.path)}
			}
			if k := kindOf(v); k != field.kind {
				return &elementError{i, fmt.Errorf("%s is a %s, not a %s", field.path, k, field.kind)}
			}
		}
	}
	return nil
}

// ParseGoals validates and decodes a stored collection.
func ParseGoals(data []byte) ([]savings.Goal, error) {
	if err := checkSchema(data); err != nil {
		return nil, fmt.Errorf("invalid goal collection: %w", err)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("invalid goal collection: %w", err)
	}
	goals := make([]savings.Goal, len(items))
	for i, item := range items {
		if err := json.Unmarshal(item, &goals[i]); err != nil {
			return nil, fmt.Errorf("invalid goal collection: %w", &elementError{i, err})
		}
	}
	return goals, nil
}

// Load returns the stored collection or an empty one.
func (s *GoalStore) Load() []savings.Goal {
	data, err := s.backend.Get(GoalsKey)
	if errors.Is(err, fs.ErrNotExist) {
		return []savings.Goal{}
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("cannot read goals, starting empty")
		return []savings.Goal{}
	}
	goals, err := ParseGoals(data)
	if err != nil {
		ev := s.log.Warn().Err(err)
		var element *elementError
		if errors.As(err, &element) {
			ev = ev.Int("element", element.index)
		}
		ev.Msg("ignoring stored goals, fix or remove the faulty element to recover them")
		return []savings.Goal{}
	}
	return goals
}

// Save replaces the stored collection.
func (s *GoalStore) Save(goals []savings.Goal) {
	var buf bytes.Buffer
	if err := savings.EncodeGoals(&buf, goals); err != nil {
		s.log.Warn().Err(err).Msg("cannot encode goals")
		return
	}
	if err := s.backend.Put(GoalsKey, buf.Bytes()); err != nil {
		s.log.Warn().Err(err).Int("goals", len(goals)).Msg("cannot save goals")
	}
}
