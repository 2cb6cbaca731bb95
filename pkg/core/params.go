package core

import (
	"fmt"
	"maps"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Params holds the key-value request fields for one API call. Values are
// scalars or, at most one level deep, nested Params. A set is built fresh
// per call and never shared.
type Params map[string]any

// Set stores a value under key and returns the set for chaining.
func (p Params) Set(key string, value any) Params {
	p[key] = value
	return p
}

// Merge copies all entries from other into the set and returns it.
func (p Params) Merge(other Params) Params {
	maps.Copy(p, other)
	return p
}

// Clone returns a shallow copy of the set.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	maps.Copy(out, p)
	return out
}

// FormatValue renders a scalar parameter value in its canonical wire form.
// The same coercion feeds both the signature input and the query string, so
// the server recomputes the signature over exactly the bytes it received.
func FormatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case apd.Decimal:
		return val.Text('f')
	case *apd.Decimal:
		return val.Text('f')
	default:
		return fmt.Sprintf("%v", val)
	}
}

// StringMap renders every top-level value with FormatValue. Nested Params
// values are not representable in a flat query string and are skipped;
// only private POST bodies carry nesting.
func (p Params) StringMap() map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		switch v.(type) {
		case Params, map[string]any:
			continue
		}
		out[k] = FormatValue(v)
	}
	return out
}
