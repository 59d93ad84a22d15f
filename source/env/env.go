package env

import (
	"os"
	"strings"

	conf "github.com/0xalexb/kalla-conf"
)

// Kind is the selector tag for environment configs.
const Kind = "env"

// Options holds construction settings for an environment config.
type Options struct {
	// Prefix restricts the snapshot to variables with this prefix; the
	// prefix is stripped from the keys.
	Prefix string
	// Name sets the config instance name.
	Name string
}

// Option defines a function type for configuring an environment config.
type Option func(*Options)

// WithPrefix restricts the config to variables starting with prefix and
// strips it from the keys.
func WithPrefix(prefix string) Option {
	return func(opts *Options) {
		opts.Prefix = prefix
	}
}

// WithName sets the instance name used for selector narrowing.
func WithName(name string) Option {
	return func(opts *Options) {
		opts.Name = name
	}
}

// New creates a Config backed by the process environment. The
// environment is snapshotted on the config's first lookup.
func New(opts ...Option) *conf.Config {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return conf.New(Kind, &Source{prefix: options.Prefix}, conf.WithName(options.Name))
}

// Source implements conf.Source over os.Environ.
type Source struct {
	prefix string
}

// Load snapshots the environment into a flat mapping. A variable set to
// the empty string is present; only unset variables are absent.
func (s *Source) Load() (any, error) {
	snapshot := map[string]any{}

	for _, pair := range os.Environ() {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}

		if s.prefix != "" {
			if !strings.HasPrefix(key, s.prefix) {
				continue
			}

			key = strings.TrimPrefix(key, s.prefix)
		}

		snapshot[key] = value
	}

	return snapshot, nil
}
