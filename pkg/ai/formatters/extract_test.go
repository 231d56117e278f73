package formatters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	cases := map[string]string{
		`{"a":1}`:                           `{"a":1}`,
		"```json\n{\"a\":1}\n```":           `{"a":1}`,
		"```\n{\"a\":1}```":                 `{"a":1}`,
		`Here you go: {"a":{"b":2}} thanks`: `{"a":{"b":2}}`,
		"  \n{\"a\":1}\n  ":                 `{"a":1}`,
	}
	for in, want := range cases {
		got, err := ExtractJSONObject(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "no json", "} backwards {", "{"} {
		_, err := ExtractJSONObject(in)
		assert.ErrorIs(t, err, ErrNoJSONObject, in)
	}
}

func TestDecodeObject(t *testing.T) {
	var out map[string]interface{}
	require.NoError(t, DecodeObject("prefix {\"x\": \"y\"} suffix", &out))
	assert.Equal(t, "y", out["x"])

	err := DecodeObject("{not json}", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid json")
}

func TestSanitizeResume(t *testing.T) {
	m := map[string]interface{}{
		"header":  map[string]interface{}{"contact": "a@b.c"},
		"summary": []interface{}{"One.", "Two."},
	}
	sanitizeResume(m)
	assert.Equal(t, map[string]interface{}{"email": "a@b.c"}, m["header"].(map[string]interface{})["contact"])
	assert.Equal(t, "One. Two.", m["summary"])
}

func TestGetDefaultLabels(t *testing.T) {
	labels := GetDefaultLabels()
	assert.Equal(t, "Professional Summary", labels["professional_summary"])
	assert.Len(t, labels, 10)
}
