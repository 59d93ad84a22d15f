package args

import (
	conf "github.com/0xalexb/kalla-conf"
)

// Kind is the selector tag for CLI argument configs.
const Kind = "cli"

// Options holds construction settings for an argument config.
type Options struct {
	// Name sets the config instance name.
	Name string
	// KeepUnset keeps nil, false, and empty-slice entries instead of
	// treating them as not-given.
	KeepUnset bool
}

// Option defines a function type for configuring an argument config.
type Option func(*Options)

// WithName sets the instance name used for selector narrowing.
func WithName(name string) Option {
	return func(opts *Options) {
		opts.Name = name
	}
}

// KeepUnset disables the docopt-style filtering of not-given entries.
func KeepUnset() Option {
	return func(opts *Options) {
		opts.KeepUnset = true
	}
}

// New creates a Config over a pre-parsed argument map.
func New(values map[string]any, opts ...Option) *conf.Config {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return conf.New(Kind, &Source{values: values, keepUnset: options.KeepUnset}, conf.WithName(options.Name))
}

// Source implements conf.Source over an argument map.
type Source struct {
	values    map[string]any
	keepUnset bool
}

// Load returns the argument mapping, minus the entries an argument
// parser emits for options that were not given on the command line.
func (s *Source) Load() (any, error) {
	specified := make(map[string]any, len(s.values))

	for key, value := range s.values {
		if !s.keepUnset && isUnset(value) {
			continue
		}

		specified[key] = value
	}

	return specified, nil
}

// isUnset mirrors the docopt convention: options with arguments default
// to nil, flags to false, and repeated positionals to an empty list.
func isUnset(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
