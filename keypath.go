package conf

import (
	"fmt"
	"strconv"
	"strings"
)

// Path addresses one point in a nested mapping/sequence value. Elements
// are mapping keys (string) or sequence indices (int).
type Path []any

// ParsePath parses a dot/bracket key path such as "api.permissions[0]".
// A bare key without dots or brackets (e.g. "-g" or "<name>") is a
// single-element path. Returns an error wrapping ErrUsage for malformed
// syntax.
func ParsePath(keyPath string) (Path, error) {
	if keyPath == "" {
		return nil, fmt.Errorf("%w: empty key path", ErrUsage)
	}

	var path Path

	rest := keyPath

	for rest != "" {
		switch rest[0] {
		case '.':
			if len(path) == 0 {
				return nil, fmt.Errorf("%w: key path %q starts with a separator", ErrUsage, keyPath)
			}

			rest = rest[1:]

			if rest == "" || rest[0] == '.' || rest[0] == '[' {
				return nil, fmt.Errorf("%w: key path %q has an empty segment", ErrUsage, keyPath)
			}
		case '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: key path %q has an unterminated index", ErrUsage, keyPath)
			}

			index, err := strconv.Atoi(rest[1:end])
			if err != nil {
				return nil, fmt.Errorf("%w: key path %q has a non-integer index %q", ErrUsage, keyPath, rest[1:end])
			}

			path = append(path, index)
			rest = rest[end+1:]
		default:
			end := strings.IndexAny(rest, ".[")
			if end < 0 {
				end = len(rest)
			}

			path = append(path, rest[:end])
			rest = rest[end:]
		}
	}

	return path, nil
}

// String renders the path back in dot/bracket form.
func (p Path) String() string {
	var builder strings.Builder

	for _, segment := range p {
		switch seg := segment.(type) {
		case int:
			fmt.Fprintf(&builder, "[%d]", seg)
		default:
			if builder.Len() > 0 {
				builder.WriteByte('.')
			}

			fmt.Fprintf(&builder, "%v", seg)
		}
	}

	return builder.String()
}

// lookupPath descends the materialized value along path. The second
// return value distinguishes "absent" from "present with a falsy value":
// a nil or false value at the path is found.
// Missing intermediate containers and type mismatches report absent.
func lookupPath(data any, path Path) (any, bool) {
	current := data

	for _, segment := range path {
		switch seg := segment.(type) {
		case string:
			switch mapping := current.(type) {
			case map[string]any:
				value, ok := mapping[seg]
				if !ok {
					return nil, false
				}

				current = value
			case map[any]any:
				value, ok := mapping[seg]
				if !ok {
					return nil, false
				}

				current = value
			case map[string]string:
				value, ok := mapping[seg]
				if !ok {
					return nil, false
				}

				current = value
			default:
				return nil, false
			}
		case int:
			sequence, ok := current.([]any)
			if !ok || seg < 0 || seg >= len(sequence) {
				return nil, false
			}

			current = sequence[seg]
		default:
			return nil, false
		}
	}

	return current, true
}
