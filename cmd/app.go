// Package cmd implements the sgs command line application to track savings goals.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/savings"
	"github.com/etnz/savings/config"
	"github.com/etnz/savings/storage"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&newCmd{}, "goals")
	c.Register(&editCmd{}, "goals")
	c.Register(&rmCmd{}, "goals")
	c.Register(&listCmd{}, "goals")
	c.Register(&showCmd{}, "goals")

	c.Register(&savingCmd{t: savings.Debit}, "savings")
	c.Register(&savingCmd{t: savings.Credit}, "savings")

	c.Register(&moveCmd{up: true}, "order")
	c.Register(&moveCmd{}, "order")
	c.Register(&reorderCmd{}, "order")

	c.Register(&themeCmd{}, "settings")
	c.Register(&exportCmd{}, "settings")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file. Defaults to sgs.yaml in the current directory, if any.")
var verbose = flag.Bool("v", false, "Log debug information on stderr.")
var raw = flag.Bool("raw", false, "Print plain markdown instead of rendering it for the terminal.")

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Environment variables making the tool deterministic, for documentation tests.
const (
	EnvTestingNow = "SGS_TESTING_NOW" // fixed current time, "2006-01-02 15:04:05"
	EnvTestingIDs = "SGS_TESTING_IDS" // if set, ids are this prefix followed by a counter
)

// newBackend opens the configured storage backend. The closer may be nil.
var newBackend = func(cfg *config.Config) (storage.Backend, io.Closer, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		path := cfg.Storage.Path
		if filepath.Ext(path) == "" {
			path = filepath.Join(path, "savings.db")
		}
		db, err := storage.OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	case "memory":
		return storage.NewMemory(), nil, nil
	default:
		return storage.Dir(cfg.Storage.Path), nil, nil
	}
}

// env is everything a command needs to run.
type env struct {
	cfg     *config.Config
	log     zerolog.Logger
	backend storage.Backend
	closer  io.Closer
	goals   *storage.GoalStore
	themes  *storage.ThemeStore
	session *savings.Session
}

// newLogger returns a console logger on stderr.
func newLogger(cfg *config.Config) zerolog.Logger {
	level := cfg.LogLevel()
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()
}

// clock returns the current time, or the one set in EnvTestingNow.
func clock() savings.Clock {
	if s := os.Getenv(EnvTestingNow); s != "" {
		if t, err := time.ParseInLocation(time.DateTime, s, time.Local); err == nil {
			return savings.ClockFunc(func() time.Time { return t })
		}
	}
	return savings.ClockFunc(time.Now)
}

// open loads the configuration and opens the goal session, with extra ledger options.
func open(extra ...savings.Option) (*env, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	log := newLogger(cfg)
	backend, closer, err := newBackend(cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s storage: %w", cfg.Storage.Backend, err)
	}
	e := &env{
		cfg:     cfg,
		log:     log,
		backend: backend,
		closer:  closer,
		goals:   storage.NewGoalStore(backend, log),
		themes:  storage.NewThemeStore(backend, log),
	}
	opts := []savings.Option{savings.WithLogger(log), savings.WithClock(clock())}
	if prefix := os.Getenv(EnvTestingIDs); prefix != "" {
		opts = append(opts, savings.WithIDs(&savings.Sequence{Prefix: prefix}))
	}
	e.session = savings.NewSession(e.goals, append(opts, extra...)...)
	log.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("path", cfg.Storage.Path).
		Int("goals", len(e.session.Goals())).
		Msg("storage opened")
	return e, nil
}

// Close releases the storage.
func (e *env) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

// now returns the current time, as seen by the session.
func now() time.Time { return clock().Now() }

// openOrFail opens the environment or reports the error.
func openOrFail(extra ...savings.Option) (*env, subcommands.ExitStatus) {
	e, err := open(extra...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return e, subcommands.ExitSuccess
}
