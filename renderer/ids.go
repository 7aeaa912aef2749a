package renderer

import (
	"strings"

	"github.com/etnz/savings"
)

// Abbreviations maps each goal id to its shortest prefix of at least 'minLen'
// characters that no other goal id starts with. With minLen <= 0 ids are kept
// whole.
func Abbreviations(goals []savings.Goal, minLen int) map[string]string {
	res := make(map[string]string, len(goals))
	for _, g := range goals {
		if minLen <= 0 || minLen >= len(g.ID) {
			res[g.ID] = g.ID
			continue
		}
		n := minLen
		for n < len(g.ID) && !unique(goals, g.ID, g.ID[:n]) {
			n++
		}
		res[g.ID] = g.ID[:n]
	}
	return res
}

func unique(goals []savings.Goal, id, prefix string) bool {
	for _, o := range goals {
		if o.ID != id && strings.HasPrefix(o.ID, prefix) {
			return false
		}
	}
	return true
}
