package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacademy/internal/config"
)

func TestStripCodeFences(t *testing.T) {
	cases := map[string]string{
		"[1,2]":               "[1,2]",
		"```json\n[1,2]\n```": "[1,2]",
		"```\n{\"a\":1}\n```": `{"a":1}`,
		"  ```[1]```  ":       "[1]",
		"```json [1,2]```":    "[1,2]",
		"```JSON{\"a\":1}```": `{"a":1}`,
		"no fences here":      "no fences here",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripCodeFences(in), "input %q", in)
	}
}

func TestWhole(t *testing.T) {
	ex := Whole("```json\n{\"questions\":[]}\n```")
	require.True(t, ex.OK())

	var v struct {
		Questions []int `json:"questions"`
	}
	require.NoError(t, ex.Decode(&v))
	assert.NotNil(t, v.Questions)

	inline := Whole("```json [{\"a\":1}]```")
	require.True(t, inline.OK(), inline.JSON)
	assert.Equal(t, `[{"a":1}]`, inline.JSON)

	bad := Whole("Here are your questions!")
	assert.False(t, bad.OK())
	assert.ErrorIs(t, bad.Err, ErrNoJSON)
}

func TestFirstArray(t *testing.T) {
	ex := FirstArray(`Sure! [{"drugs":["a","b"]}] Hope this helps.`)
	require.True(t, ex.OK())
	assert.Equal(t, `[{"drugs":["a","b"]}]`, ex.JSON)

	t.Run("Missing", func(t *testing.T) {
		ex := FirstArray("no interactions found")
		assert.ErrorIs(t, ex.Err, ErrNoJSON)
		assert.Equal(t, "no interactions found", ex.Raw)
	})

	t.Run("Malformed", func(t *testing.T) {
		ex := FirstArray(`[{"drugs": ["a",]`)
		assert.False(t, ex.OK())
		var out []any
		assert.Error(t, ex.Decode(&out))
	})
}

func TestFirstObject(t *testing.T) {
	ex := FirstObject("```json\n{\"keyFindings\":\"x\"}\n```")
	require.True(t, ex.OK())

	var v map[string]string
	require.NoError(t, ex.Decode(&v))
	assert.Equal(t, "x", v["keyFindings"])

	assert.False(t, FirstObject("} backwards {").OK())
}

func TestNewWithoutKeyIsDisabled(t *testing.T) {
	c, err := New(context.Background(), &config.AIConfig{Provider: config.ProviderGroq})
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), []Message{User("hi")}, Params{})
	assert.ErrorIs(t, err, ErrDisabled)
}
