package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading prose", `Here is the result: {"a":1}`, `{"a":1}`},
		{"trailing prose with braces", `{"a":1} and then } some { noise`, `{"a":1}`},
		{"nested objects", `{"a":{"b":2}}`, `{"a":{"b":2}}`},
		{"braces inside strings", `{"a":"{not a block}"}`, `{"a":"{not a block}"}`},
		{"escaped quotes", `{"a":"say \"hi\" {"}`, `{"a":"say \"hi\" {"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSON(tt.in))
		})
	}
}

func TestFirstJSONBlock(t *testing.T) {
	t.Run("unterminated object yields empty", func(t *testing.T) {
		assert.Empty(t, firstJSONBlock(`{"a": 1`))
	})

	t.Run("no object yields empty", func(t *testing.T) {
		assert.Empty(t, firstJSONBlock("no json here"))
	})

	t.Run("first of several objects", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, firstJSONBlock(`{"a":1} {"b":2}`))
	})
}

func TestDecodeObject(t *testing.T) {
	t.Run("well-formed", func(t *testing.T) {
		raw, err := decodeObject(`{"revenue": 1000}`)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, raw["revenue"])
	})

	t.Run("repairable defects", func(t *testing.T) {
		raw, err := decodeObject(`{"revenue": 1000,}`)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, raw["revenue"])
	})

	t.Run("no json at all", func(t *testing.T) {
		_, err := decodeObject("I could not find any data in this document.")
		assert.Error(t, err)
	})
}
