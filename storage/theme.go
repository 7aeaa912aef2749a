package storage

import (
	"strings"

	"github.com/rs/zerolog"
)

// Theme is the display theme preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme returns the theme named s, or Light.
func ParseTheme(s string) Theme {
	if Theme(strings.TrimSpace(s)) == Dark {
		return Dark
	}
	return Light
}

// ThemeStore persists the theme in the ThemeKey slot.
type ThemeStore struct {
	backend Backend
	log     zerolog.Logger
}

// NewThemeStore returns a theme store on top of 'backend'.
func NewThemeStore(backend Backend, log zerolog.Logger) *ThemeStore {
	return &ThemeStore{backend: backend, log: log}
}

// Load returns the stored theme, Light if none.
func (s *ThemeStore) Load() Theme {
	data, err := s.backend.Get(ThemeKey)
	if err != nil {
		return Light
	}
	return ParseTheme(string(data))
}

// Save stores the theme.
func (s *ThemeStore) Save(t Theme) {
	if err := s.backend.Put(ThemeKey, []byte(ParseTheme(string(t)))); err != nil {
		s.log.Warn().Err(err).Str("theme", string(t)).Msg("cannot save theme")
	}
}
