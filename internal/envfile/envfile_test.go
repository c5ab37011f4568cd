package envfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	env, err := Parse("GEMINI_API_KEY=abc123\n\n# comment\nexport HTTP_PROXY=http://proxy:3128\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"GEMINI_API_KEY": "abc123",
		"HTTP_PROXY":     "http://proxy:3128",
	}, env)
}

func TestParseQuotedValues(t *testing.T) {
	env, err := Parse("A=\"spaced value\" # trailing comment\nB='single # not a comment'\nC=\"line\\nbreak\"\n")
	require.NoError(t, err)
	assert.Equal(t, "spaced value", env["A"])
	assert.Equal(t, "single # not a comment", env["B"])
	assert.Equal(t, "line\nbreak", env["C"])
}

func TestParseEmptyContent(t *testing.T) {
	env, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, env)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing equals", "JUSTAKEY\n"},
		{"empty key", "=value\n"},
		{"unterminated double quote", "A=\"oops\n"},
		{"unterminated single quote", "A='oops\n"},
		{"garbage after quote", "A=\"ok\" trailing\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.content)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}
