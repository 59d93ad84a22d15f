package conf

import (
	"errors"
	"fmt"
)

// Param declares how one named field resolves: an ordered sequence of
// getters, a pick function reducing the found values, an optional apply
// transform, and an optional default. The name must match an assignable
// struct field on the owning object.
type Param struct {
	name    string
	getters []Getter
	pick    Pick
	apply   Apply

	defaultValue any
	hasDefault   bool
}

// ParamOption configures a Param at declaration time.
type ParamOption func(*Param)

// WithGetters appends getters in priority order; the first getter is
// checked first.
func WithGetters(getters ...Getter) ParamOption {
	return func(p *Param) {
		p.getters = append(p.getters, getters...)
	}
}

// WithDefault sets a fallback used when every getter comes up empty. The
// default behaves like a trailing Value getter that always exists, and it
// passes through the apply function like any found value.
func WithDefault(value any) ParamOption {
	return func(p *Param) {
		p.defaultValue = value
		p.hasDefault = true
	}
}

// WithPick sets the pick function. The default is First.
func WithPick(pick Pick) ParamOption {
	return func(p *Param) {
		p.pick = pick
	}
}

// WithApply sets the parameter-level apply function, used for every found
// value unless a getter carries its own override.
func WithApply(apply Apply) ParamOption {
	return func(p *Param) {
		p.apply = apply
	}
}

// NewParam declares a parameter for the struct field of the given name.
func NewParam(name string, opts ...ParamOption) *Param {
	param := &Param{
		name: name,
		pick: First,
	}

	for _, apply := range opts {
		apply(param)
	}

	return param
}

// Name returns the field name the parameter resolves.
func (p *Param) Name() string {
	return p.name
}

// resolve runs the full resolution pipeline against the materialized
// config list: concatenate the getters' candidate streams in declaration
// order (default last), transform each candidate, and hand the still-lazy
// sequence to the pick function. Every failure except a config load error
// is attributed to the parameter's name.
func (p *Param) resolve(configs []*Config) (any, error) {
	getters := p.getters
	if p.hasDefault {
		getters = append(getters[:len(getters):len(getters)], Value(p.defaultValue))
	}

	values := &Values{
		param: p.name,
		next:  p.transform(concatStreams(getters, configs)),
	}

	value, err := p.pick(values)
	if err != nil {
		if errors.Is(err, ErrConfigLoad) {
			return nil, err
		}

		return nil, fmt.Errorf("parameter %q: %w", p.name, err)
	}

	return value, nil
}

// concatStreams chains the getters' streams into one lazy sequence. A
// getter's stream is only created once the previous getter is exhausted.
func concatStreams(getters []Getter, configs []*Config) Stream {
	var current Stream

	next := 0

	return func() (Candidate, bool, error) {
		for {
			if current == nil {
				if next >= len(getters) {
					return Candidate{}, false, nil
				}

				current = getters[next].Find(configs)
				next++
			}

			candidate, ok, err := current()
			if err != nil {
				return Candidate{}, false, err
			}

			if ok {
				return candidate, true, nil
			}

			current = nil
		}
	}
}

// transform wraps stream so every candidate passes through the apply
// function before the pick sees it. A getter-level apply takes precedence
// over the parameter-level one.
func (p *Param) transform(stream Stream) Stream {
	return func() (Candidate, bool, error) {
		candidate, ok, err := stream()
		if err != nil || !ok {
			return candidate, ok, err
		}

		apply := candidate.Apply
		if apply == nil {
			apply = p.apply
		}

		if apply == nil {
			return candidate, true, nil
		}

		value, err := apply(candidate.Value)
		if err != nil {
			return Candidate{}, false, fmt.Errorf("%w for %s: %w", ErrApply, candidate.Meta, err)
		}

		candidate.Value = value

		return candidate, true, nil
	}
}
