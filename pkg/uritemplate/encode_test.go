package uritemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		mode     EncodingMode
		expected string
	}{
		{name: "none keeps everything", input: "a b/c?d", mode: EncodeNone, expected: "a b/c?d"},
		{name: "unreserved passthrough", input: "Az09-._~", mode: EncodeUnreserved, expected: "Az09-._~"},
		{name: "unreserved space", input: "Hello World!", mode: EncodeUnreserved, expected: "Hello%20World%21"},
		{name: "unreserved slash", input: "/foo/bar", mode: EncodeUnreserved, expected: "%2Ffoo%2Fbar"},
		{name: "unreserved percent", input: "50%", mode: EncodeUnreserved, expected: "50%25"},
		{name: "unreserved utf8", input: "ü", mode: EncodeUnreserved, expected: "%C3%BC"},
		{name: "reserved keeps delimiters", input: "/foo/bar?x=1&y", mode: EncodeReserved, expected: "/foo/bar?x=1&y"},
		{name: "reserved encodes space", input: "Hello World!", mode: EncodeReserved, expected: "Hello%20World!"},
		{name: "reserved keeps triplets", input: "a%2Fb", mode: EncodeReserved, expected: "a%2Fb"},
		{name: "reserved encodes bad triplet", input: "a%zz", mode: EncodeReserved, expected: "a%25zz"},
		{name: "reserved encodes truncated triplet", input: "a%2", mode: EncodeReserved, expected: "a%252"},
		{name: "empty", input: "", mode: EncodeUnreserved, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Encode(tt.input, tt.mode))
		})
	}
}

func TestEncode_AppliesToValuesNotLiterals(t *testing.T) {
	exp := NewExpander(WithEncoding(EncodeUnreserved))
	out, err := exp.Expand(MustParse("search/a b/{q}"), Bindings{"q": "x y"})
	require.NoError(t, err)
	assert.Equal(t, "search/a b/x%20y", out)
}

func TestParseEncodingMode(t *testing.T) {
	for _, mode := range []EncodingMode{EncodeNone, EncodeUnreserved, EncodeReserved} {
		got, err := ParseEncodingMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	got, err := ParseEncodingMode(" Unreserved ")
	require.NoError(t, err)
	assert.Equal(t, EncodeUnreserved, got)

	got, err = ParseEncodingMode("")
	require.NoError(t, err)
	assert.Equal(t, EncodeNone, got)

	_, err = ParseEncodingMode("base64")
	assert.Error(t, err)

	assert.Equal(t, "EncodingMode(9)", EncodingMode(9).String())
}

func TestParseMissingAction(t *testing.T) {
	for _, action := range []MissingAction{MissingKeep, MissingEmpty, MissingError} {
		got, err := ParseMissingAction(action.String())
		require.NoError(t, err)
		assert.Equal(t, action, got)
	}

	got, err := ParseMissingAction("")
	require.NoError(t, err)
	assert.Equal(t, MissingKeep, got)

	_, err = ParseMissingAction("skip")
	assert.Error(t, err)

	assert.Equal(t, "MissingAction(7)", MissingAction(7).String())
}
