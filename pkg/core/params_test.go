package core

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "BTCUSDT", "BTCUSDT"},
		{"int", 42, "42"},
		{"int64", int64(1700000000000000), "1700000000000000"},
		{"float_plain", 0.001, "0.001"},
		{"float_no_exponent", 50000.0, "50000"},
		{"bool_true", true, "true"},
		{"bool_false", false, "false"},
		{"decimal", apd.New(1001, -3), "1.001"},
		{"decimal_value", *apd.New(5, 0), "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value))
		})
	}
}

func TestParams_SetAndMerge(t *testing.T) {
	params := make(Params).
		Set("pair", "BTCUSDT").
		Merge(Params{"volume": "0.001", "type": 0})

	assert.Equal(t, "BTCUSDT", params["pair"])
	assert.Equal(t, "0.001", params["volume"])
	assert.Equal(t, 0, params["type"])
}

func TestParams_Clone(t *testing.T) {
	original := Params{"a": "1"}
	clone := original.Clone()
	clone.Set("a", "2").Set("b", "3")

	assert.Equal(t, "1", original["a"])
	assert.NotContains(t, original, "b")
}

func TestParams_StringMap(t *testing.T) {
	params := Params{
		"pair":   "BTCUSDT",
		"limit":  50,
		"nested": Params{"k": "v"},
	}

	m := params.StringMap()

	assert.Equal(t, map[string]string{
		"pair":  "BTCUSDT",
		"limit": "50",
	}, m)
}
