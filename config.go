package conf

import "fmt"

// Source materializes the structured backing value of a Config. Load is
// called at most once per Config instance; the result (or failure) is
// memoized. The returned value is a nested mapping/sequence structure,
// typically map[string]any with []any and scalar leaves.
type Source interface {
	Load() (any, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() (any, error)

// Load calls f.
func (f SourceFunc) Load() (any, error) {
	return f()
}

// Static returns a Source serving an already materialized value. It is
// useful for tests and for configs whose data is assembled in code.
func Static(value any) Source {
	return SourceFunc(func() (any, error) {
		return value, nil
	})
}

// Config is a named, ordered, lazily materialized view over a backing
// Source. Its kind tags it for selector matching; the optional instance
// name narrows matching further when several configs share a kind.
//
// A Config memoizes its backing data after the first access and is safe
// to read repeatedly within a load call. It is not safe for concurrent
// use; threads must use independent instances.
type Config struct {
	kind   string
	name   string
	source Source

	loaded  bool
	data    any
	loadErr error
}

// ConfigOption configures a Config at construction time.
type ConfigOption func(*Config)

// WithName sets the instance name used to discriminate between configs
// of the same kind.
func WithName(name string) ConfigOption {
	return func(c *Config) {
		c.name = name
	}
}

// New creates a Config of the given kind backed by source. The source is
// not touched until the first existence check or lookup.
func New(kind string, source Source, opts ...ConfigOption) *Config {
	config := &Config{
		kind:   kind,
		source: source,
	}

	for _, apply := range opts {
		apply(config)
	}

	return config
}

// Kind returns the selector tag of the config.
func (c *Config) Kind() string {
	return c.kind
}

// Name returns the instance name, or "" if none was set.
func (c *Config) Name() string {
	return c.name
}

func (c *Config) describe() string {
	if c.name != "" {
		return fmt.Sprintf("%s config %q", c.kind, c.name)
	}

	return fmt.Sprintf("%s config", c.kind)
}

// materialize loads the backing data exactly once. A failed load is
// memoized as well, so repeated lookups do not retry the source.
func (c *Config) materialize() (any, error) {
	if !c.loaded {
		c.loaded = true

		if c.source == nil {
			c.loadErr = fmt.Errorf("%w: %s has no source", ErrUsage, c.describe())
		} else {
			c.data, c.loadErr = c.source.Load()
			if c.loadErr != nil {
				c.loadErr = fmt.Errorf("%s: %w: %w", c.describe(), ErrConfigLoad, c.loadErr)
			}
		}
	}

	return c.data, c.loadErr
}

// Exists reports whether path resolves to a present value. A present
// false, empty, or nil value exists; missing intermediate containers
// count as absent. The error is non-nil only when the backing source
// failed to materialize.
func (c *Config) Exists(path Path) (bool, error) {
	data, err := c.materialize()
	if err != nil {
		return false, err
	}

	_, ok := lookupPath(data, path)

	return ok, nil
}

// Get returns the raw value at path. It returns an error wrapping
// ErrKeyNotFound when Exists would report false, and the memoized load
// error when the backing source failed.
func (c *Config) Get(path Path) (any, error) {
	data, err := c.materialize()
	if err != nil {
		return nil, err
	}

	value, ok := lookupPath(data, path)
	if !ok {
		return nil, fmt.Errorf("%s: key %q: %w", c.describe(), path.String(), ErrKeyNotFound)
	}

	return value, nil
}

// Matches reports whether the config satisfies the selector. It is a
// pure comparison and never materializes the config.
func (c *Config) Matches(selector Selector) bool {
	if selector.Kind != c.kind {
		return false
	}

	return selector.Name == "" || selector.Name == c.name
}

// Selector matches configs by kind and, when Name is non-empty, by
// instance name.
type Selector struct {
	Kind string
	Name string
}

// ByKind returns a selector matching every config of the given kind.
func ByKind(kind string) Selector {
	return Selector{Kind: kind}
}

// Named narrows the selector to a single instance name.
func (s Selector) Named(name string) Selector {
	s.Name = name

	return s
}

// ConfigSet is one entry in a provider's config list: either a single
// *Config or an ordered Group of further sets. Providers return sets so
// that nested aggregates flatten explicitly, in encounter order, without
// relying on an implicit iteration protocol.
type ConfigSet interface {
	appendConfigs(dst []*Config) []*Config
}

func (c *Config) appendConfigs(dst []*Config) []*Config {
	return append(dst, c)
}

// Group is an ordered collection of config sets that flattens in place.
type Group []ConfigSet

func (g Group) appendConfigs(dst []*Config) []*Config {
	for _, set := range g {
		if set != nil {
			dst = set.appendConfigs(dst)
		}
	}

	return dst
}

// Flatten expands nested config sets into a flat ordered list. Order is
// preserved exactly as declared; duplicates are kept.
func Flatten(sets []ConfigSet) []*Config {
	return Group(sets).appendConfigs(nil)
}
