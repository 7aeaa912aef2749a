package cmd

import (
	"fmt"
	"strings"

	"github.com/etnz/savings"
)

// resolveID returns the id of the only goal whose id starts with 'prefix'.
func resolveID(goals []savings.Goal, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("a goal id is required")
	}
	var matches []string
	for _, g := range goals {
		if g.ID == prefix {
			return g.ID, nil
		}
		if strings.HasPrefix(g.ID, prefix) {
			matches = append(matches, g.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q", savings.ErrNotFound, prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous goal id %q matches %s", prefix, strings.Join(matches, ", "))
	}
}

// resolve finds the goal designated by the single argument of the command.
func (e *env) resolve(args []string) (savings.Goal, error) {
	if len(args) != 1 {
		return savings.Goal{}, fmt.Errorf("expected exactly one goal id, got %d arguments", len(args))
	}
	id, err := resolveID(e.session.Goals(), args[0])
	if err != nil {
		return savings.Goal{}, err
	}
	g, _ := e.session.Get(id)
	return g, nil
}
