package storage

import (
	"errors"
	"maps"
	"slices"
)

// ErrUnavailable is returned by a failing Memory backend.
var ErrUnavailable = errors.New("storage unavailable")

// Memory is an in-process Backend, mostly for tests.
//
// Setting Fail makes every Put fail with ErrUnavailable without changing the
// stored value.
type Memory struct {
	slots map[string][]byte
	Fail  bool
}

// NewMemory returns an empty Memory backend.
func NewMemory() *Memory { return &Memory{slots: make(map[string][]byte)} }

func (m *Memory) Get(key string) ([]byte, error) {
	v, ok := m.slots[key]
	if !ok {
		return nil, notExist(key)
	}
	return slices.Clone(v), nil
}

func (m *Memory) Put(key string, value []byte) error {
	if m.Fail {
		return ErrUnavailable
	}
	if m.slots == nil {
		m.slots = make(map[string][]byte)
	}
	m.slots[key] = slices.Clone(value)
	return nil
}

// Keys returns the keys of the slots, sorted.
func (m *Memory) Keys() []string { return slices.Sorted(maps.Keys(m.slots)) }
