package explorer

import (
	"github.com/mwantia/explorer/log"
	"github.com/mwantia/explorer/prefs"
)

type Options struct {
	LogLevel      log.LogLevel
	LogFile       string
	NoTerminalLog bool

	Store     prefs.Store
	Resolver  Resolver
	Matcher   Matcher
	SizeUnits []string

	// NoParentEntry suppresses the synthetic ".." entry for
	// non-root listings.
	NoParentEntry bool
}

type Option func(*Options) error

func newDefaultOptions() *Options {
	return &Options{
		LogLevel:  log.Info,
		SizeUnits: DefaultSizeUnits,
	}
}

func WithLogLevel(logLevel log.LogLevel) Option {
	return func(opts *Options) error {
		opts.LogLevel = logLevel
		return nil
	}
}

func WithLogFile(logFile string) Option {
	return func(opts *Options) error {
		opts.LogFile = logFile
		return nil
	}
}

func WithoutTerminalLog() Option {
	return func(opts *Options) error {
		opts.NoTerminalLog = true
		return nil
	}
}

// WithStore attaches the preference store consulted per listing.
func WithStore(store prefs.Store) Option {
	return func(opts *Options) error {
		opts.Store = store
		return nil
	}
}

// WithResolver attaches the symlink resolution command.
func WithResolver(resolver Resolver) Option {
	return func(opts *Options) error {
		opts.Resolver = resolver
		return nil
	}
}

// WithMatcher attaches the mime-type matcher used in restricted mode.
func WithMatcher(matcher Matcher) Option {
	return func(opts *Options) error {
		opts.Matcher = matcher
		return nil
	}
}

// WithSizeUnits sets localized size unit labels (smallest first).
func WithSizeUnits(units []string) Option {
	return func(opts *Options) error {
		opts.SizeUnits = units
		return nil
	}
}

// WithoutParentEntry disables the synthetic ".." entry.
func WithoutParentEntry() Option {
	return func(opts *Options) error {
		opts.NoParentEntry = true
		return nil
	}
}
