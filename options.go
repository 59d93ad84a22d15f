package conf

import "log/slog"

// Options holds settings for a single load call.
type Options struct {
	// Configs, when non-nil, overrides the target's own ConfigProvider.
	Configs []ConfigSet
	// Logger receives resolution traces at debug level.
	Logger *slog.Logger
}

// Option defines a function type for configuring a load call.
type Option func(*Options)

// WithConfigs supplies the config list explicitly instead of discovering
// it from the target's ConfigProvider. Calling it with no arguments
// forces an empty config list.
func WithConfigs(sets ...ConfigSet) Option {
	return func(opts *Options) {
		if opts.Configs == nil {
			opts.Configs = []ConfigSet{}
		}

		opts.Configs = append(opts.Configs, sets...)
	}
}

// WithLogger sets the logger used to trace resolution. Without it, load
// calls are silent.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
