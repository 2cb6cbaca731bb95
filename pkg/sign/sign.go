// Package sign derives the x-auth-sign signature for private API calls.
//
// The exchange verifies a request by recomputing a SHA-256 digest over a
// canonical serialization of its parameters plus the account secret. The
// serialization sorts top-level keys, flattens exactly one level of nested
// objects by sorted nested key (keeping only the nested values), and
// concatenates the value strings with no separators. Any change to the
// algorithm breaks interoperability with the server-side verifier.
package sign

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"dextrade/pkg/core"
)

// Sign computes the signature for params under secret.
//
// The result is a deterministic function of the key-value pairs: two sets
// with the same entries produce the same signature regardless of insertion
// order. Returns core.ErrMissingSecret before any other work when secret
// is empty, and an error for maps nested more than one level deep, whose
// serialization the protocol leaves undefined.
func Sign(params core.Params, secret string) (string, error) {
	if secret == "" {
		return "", core.ErrMissingSecret
	}

	payload, err := canonical(params)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256([]byte(payload + secret))
	return hex.EncodeToString(sum[:]), nil
}

// canonical builds the pre-secret signing input from params.
func canonical(params core.Params) (string, error) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		switch val := params[key].(type) {
		case core.Params:
			if err := appendNested(&b, key, val); err != nil {
				return "", err
			}
		case map[string]any:
			if err := appendNested(&b, key, val); err != nil {
				return "", err
			}
		default:
			b.WriteString(core.FormatValue(val))
		}
	}
	return b.String(), nil
}

// appendNested writes the values of one nested mapping in sorted-key
// order. The nested keys themselves never enter the signing input.
func appendNested(b *strings.Builder, key string, nested map[string]any) error {
	nestedKeys := make([]string, 0, len(nested))
	for k := range nested {
		nestedKeys = append(nestedKeys, k)
	}
	sort.Strings(nestedKeys)

	for _, nk := range nestedKeys {
		switch nested[nk].(type) {
		case core.Params, map[string]any:
			return fmt.Errorf("sign: parameter %q.%q: nesting deeper than one level is not supported", key, nk)
		}
		b.WriteString(core.FormatValue(nested[nk]))
	}
	return nil
}
