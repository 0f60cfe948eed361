package sim

import "fmt"

// Params holds the free-form parameter table of one configured component.
// Values arrive as whatever the config decoder produced, so the numeric
// getters accept both integer and float encodings.
type Params map[string]any

// Float returns the named parameter as a float64. Integer-typed values
// are converted; anything else is ErrBadParam.
func (p Params) Float(key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingParam, key)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%w: %q: want number, got %T", ErrBadParam, key, v)
	}
	return f, nil
}

// FloatOr returns the named parameter as a float64, or def when absent.
func (p Params) FloatOr(key string, def float64) (float64, error) {
	if _, ok := p[key]; !ok {
		return def, nil
	}
	return p.Float(key)
}

// Int returns the named parameter as an int. Float values are accepted
// only when they carry no fractional part.
func (p Params) Int(key string) (int, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingParam, key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%w: %q: want integer, got %v", ErrBadParam, key, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %q: want integer, got %T", ErrBadParam, key, v)
	}
}

// String returns the named parameter as a string.
func (p Params) String(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingParam, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q: want string, got %T", ErrBadParam, key, v)
	}
	return s, nil
}

// StringOr returns the named parameter as a string, or def when absent.
func (p Params) StringOr(key, def string) (string, error) {
	if _, ok := p[key]; !ok {
		return def, nil
	}
	return p.String(key)
}

// Has reports whether the named parameter is present.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
