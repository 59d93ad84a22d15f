package conf

import "fmt"

// Meta records where a candidate value came from, for diagnostics. For
// values found in a config, Kind/Name identify the config and Path the
// key within it. Literal and computed getters use the reserved kinds
// "value" and "func" with a nil path.
type Meta struct {
	Kind string
	Name string
	Path Path
}

const (
	metaValueKind = "value"
	metaFuncKind  = "func"
)

func (m Meta) String() string {
	switch m.Kind {
	case metaValueKind:
		return "literal value"
	case metaFuncKind:
		return "computed value"
	}

	if m.Name != "" {
		return fmt.Sprintf("%s config %q, key %q", m.Kind, m.Name, m.Path.String())
	}

	return fmt.Sprintf("%s config, key %q", m.Kind, m.Path.String())
}

// Candidate is one raw value located by a Getter, before the parameter's
// apply function runs. Apply, when non-nil, overrides the parameter-level
// apply for this candidate.
type Candidate struct {
	Value any
	Meta  Meta
	Apply Apply
}

// Stream is a pull-based sequence of candidates. Each call returns the
// next candidate; ok is false once the stream is exhausted. A non-nil
// error aborts the stream.
type Stream func() (candidate Candidate, ok bool, err error)

// Getter declaratively locates candidate values for a parameter. A
// getter is stateless and performs no I/O itself: Find returns a fresh,
// finite, restartable stream over the given configs, and re-invoking it
// reproduces the same sequence.
type Getter interface {
	Find(configs []*Config) Stream
}

type keyGetter struct {
	selector Selector
	path     Path
	pathErr  error
	apply    Apply
}

// KeyOption configures a Key getter.
type KeyOption func(*keyGetter)

// KeyApply sets a per-getter apply function, overriding the parameter's
// apply for values this getter finds.
func KeyApply(apply Apply) KeyOption {
	return func(g *keyGetter) {
		g.apply = apply
	}
}

// Key returns a getter that looks up keyPath in every config matching
// selector, in config order. A config that does not match or does not
// contain the key is skipped silently; only materialization failures of
// an actually selected config propagate.
func Key(selector Selector, keyPath string, opts ...KeyOption) Getter {
	getter := &keyGetter{selector: selector}
	getter.path, getter.pathErr = ParsePath(keyPath)

	for _, apply := range opts {
		apply(getter)
	}

	return getter
}

func (g *keyGetter) Find(configs []*Config) Stream {
	next := 0

	return func() (Candidate, bool, error) {
		if g.pathErr != nil {
			return Candidate{}, false, g.pathErr
		}

		for next < len(configs) {
			config := configs[next]
			next++

			if !config.Matches(g.selector) {
				continue
			}

			found, err := config.Exists(g.path)
			if err != nil {
				return Candidate{}, false, err
			}

			if !found {
				continue
			}

			value, err := config.Get(g.path)
			if err != nil {
				return Candidate{}, false, err
			}

			return Candidate{
				Value: value,
				Meta:  Meta{Kind: config.Kind(), Name: config.Name(), Path: g.path},
				Apply: g.apply,
			}, true, nil
		}

		return Candidate{}, false, nil
	}
}

type valueGetter struct {
	value any
}

// Value returns a getter that always yields the given literal once,
// regardless of the configs. It is the default-value marker: appended
// last, it guarantees a parameter resolves.
func Value(value any) Getter {
	return valueGetter{value: value}
}

func (g valueGetter) Find([]*Config) Stream {
	yielded := false

	return func() (Candidate, bool, error) {
		if yielded {
			return Candidate{}, false, nil
		}

		yielded = true

		return Candidate{Value: g.value, Meta: Meta{Kind: metaValueKind}}, true, nil
	}
}

type funcGetter struct {
	fn func() (any, error)
}

// Func returns a getter that yields one computed value. The function
// runs each time the stream is consumed, so resolution stays lazy.
func Func(fn func() (any, error)) Getter {
	return funcGetter{fn: fn}
}

func (g funcGetter) Find([]*Config) Stream {
	yielded := false

	return func() (Candidate, bool, error) {
		if yielded {
			return Candidate{}, false, nil
		}

		yielded = true

		value, err := g.fn()
		if err != nil {
			return Candidate{}, false, err
		}

		return Candidate{Value: value, Meta: Meta{Kind: metaFuncKind}}, true, nil
	}
}
