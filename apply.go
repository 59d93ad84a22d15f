package conf

import (
	"fmt"
	"strconv"
	"time"
)

// Apply transforms or validates one found raw value before the pick
// function sees it. A failed apply aborts the parameter's resolution with
// the originating config and key path attached; a malformed value is
// never treated as absent.
type Apply func(value any) (any, error)

// String coerces a found value to string. Raw []byte and fmt.Stringer
// values convert; anything else is an error.
func String(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return nil, fmt.Errorf("cannot interpret %T as string", value)
	}
}

// Int coerces a found value to int. Strings parse in base 10; floats
// convert only when whole.
func Int(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return nil, fmt.Errorf("%v is not a whole number", v)
		}

		return int(v), nil
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as int", v)
		}

		return parsed, nil
	default:
		return nil, fmt.Errorf("cannot interpret %T as int", value)
	}
}

// Float coerces a found value to float64.
func Float(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as float", v)
		}

		return parsed, nil
	default:
		return nil, fmt.Errorf("cannot interpret %T as float", value)
	}
}

// Bool coerces a found value to bool. Strings parse with the strconv
// rules ("1", "t", "true", ...).
func Bool(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as bool", v)
		}

		return parsed, nil
	default:
		return nil, fmt.Errorf("cannot interpret %T as bool", value)
	}
}

// Duration coerces a found value to time.Duration. Strings parse with
// time.ParseDuration ("1h30m", "250ms", ...).
func Duration(value any) (any, error) {
	switch v := value.(type) {
	case time.Duration:
		return v, nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as duration", v)
		}

		return parsed, nil
	default:
		return nil, fmt.Errorf("cannot interpret %T as duration", value)
	}
}
