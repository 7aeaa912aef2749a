// Package storage persists goals and preferences in durable key-value slots
// on the local machine.
//
// A slot is written whole: a Put either replaces the previous value or leaves
// it intact.
package storage

import (
	"fmt"
	"io/fs"
)

// Keys of the slots used by the tracker.
const (
	GoalsKey = "saving_goals_v1"
	ThemeKey = "saving_goals_theme"
)

// Backend is a durable key-value slot store.
type Backend interface {
	// Get returns the value stored under key, or an error wrapping
	// fs.ErrNotExist if there is none.
	Get(key string) ([]byte, error)
	// Put replaces the value stored under key.
	Put(key string, value []byte) error
}

func notExist(key string) error {
	return fmt.Errorf("slot %q: %w", key, fs.ErrNotExist)
}
