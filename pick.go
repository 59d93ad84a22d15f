package conf

import "fmt"

// Values is the lazy cursor a pick function consumes. It yields the
// parameter's found-and-transformed candidates in declared getter order,
// then config-priority order within each getter. Values pulled from the
// cursor are the only ones ever looked up, so a pick that stops early
// never touches lower-priority configs.
type Values struct {
	param string
	next  Stream
	last  Meta
}

// Next returns the next transformed value. ok is false once every getter
// is exhausted. A non-nil error (materialization or apply failure) aborts
// resolution for the parameter.
func (v *Values) Next() (value any, ok bool, err error) {
	candidate, ok, err := v.next()
	if err != nil || !ok {
		return nil, ok, err
	}

	v.last = candidate.Meta

	return candidate.Value, true, nil
}

// Meta reports the origin of the value most recently returned by Next.
func (v *Values) Meta() Meta {
	return v.last
}

// Param reports the name of the parameter being resolved, for
// diagnostics in pick errors.
func (v *Values) Param() string {
	return v.param
}

// Pick reduces the lazy sequence of found values to one final value. A
// pick decides how much of the sequence it consumes: First stops at one
// element, MergeMaps exhausts everything.
type Pick func(values *Values) (any, error)

// First returns the earliest found value and never consumes further
// candidates. It fails with ErrNoValueFound on an empty sequence.
func First(values *Values) (any, error) {
	value, ok, err := values.Next()
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, ErrNoValueFound
	}

	return value, nil
}

// All materializes every found value into a []any, in order. An empty
// sequence yields an empty list, not a failure.
func All(values *Values) (any, error) {
	all := []any{}

	for {
		value, ok, err := values.Next()
		if err != nil {
			return nil, err
		}

		if !ok {
			return all, nil
		}

		all = append(all, value)
	}
}

// MergeMaps requires every found value to be a map[string]any and merges
// them key-wise: the first occurrence of a key wins, so lower-priority
// maps only fill in keys absent from higher-priority ones. An empty
// sequence fails with ErrNoValueFound.
func MergeMaps(values *Values) (any, error) {
	var merged map[string]any

	for {
		value, ok, err := values.Next()
		if err != nil {
			return nil, err
		}

		if !ok {
			if merged == nil {
				return nil, ErrNoValueFound
			}

			return merged, nil
		}

		mapping, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: merge expects mappings, got %T from %s", ErrUsage, value, values.Meta())
		}

		if merged == nil {
			merged = map[string]any{}
		}

		for key, entry := range mapping {
			if _, seen := merged[key]; !seen {
				merged[key] = entry
			}
		}
	}
}
