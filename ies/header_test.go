package ies

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHeader_Versions(t *testing.T) {
	tests := []struct {
		token   string
		version Version
	}{
		{"IESNA91", Version1991},
		{"IESNA:LM-63-1995", Version1995},
	}

	for _, tt := range tests {
		c := NewCursor(strings.NewReader(tt.token + "\nTILT=NONE\n1 1000"))
		h, first, err := ReadHeader(c)
		require.NoError(t, err, tt.token)
		assert.Equal(t, tt.version, h.Version)
		assert.Equal(t, tt.token, h.Version.String())
		assert.Equal(t, "1", first)
	}
}

func TestReadHeader_UnknownVersion(t *testing.T) {
	inputs := map[string]string{
		"FOOBAR":           "FOOBAR\n1 2 3",
		"iesna91":          "iesna91\n1 2 3",
		"IESNA:LM-63-2002": "IESNA:LM-63-2002\n1 2 3",
		"":                 "",
	}
	for token, input := range inputs {
		c := NewCursor(strings.NewReader(input))
		_, _, err := ReadHeader(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownVersion), "token %q: %v", token, err)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, token, perr.Token)
	}
}

func TestReadHeader_MalformedHeader(t *testing.T) {
	c := NewCursor(strings.NewReader("IESNA91\n[TEST] nothing numeric here\nTILT=NONE\n"))
	_, _, err := ReadHeader(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedHeader)
}

func TestReadHeader_SkipsDigitsInsideKeywordLines(t *testing.T) {
	input := "IESNA:LM-63-1995\n[TEST] 12345\n[LAMP] 1 x 50W\nTILT=NONE\n7 1000\n"
	c := NewCursor(strings.NewReader(input))

	h, first, err := ReadHeader(c)
	require.NoError(t, err)
	assert.Equal(t, "7", first)
	assert.Equal(t, "12345", h.Keywords["TEST"])
	assert.Equal(t, "1 x 50W", h.Keywords["LAMP"])
	assert.Equal(t, "NONE", h.Tilt)
}

func TestReadHeader_RepeatedKeywords(t *testing.T) {
	input := "IESNA91\n[MORE] one\n[MORE] two\r\nfree text line\n1"
	c := NewCursor(strings.NewReader(input))

	h, first, err := ReadHeader(c)
	require.NoError(t, err)
	assert.Equal(t, "1", first)
	assert.Equal(t, "one\ntwo", h.Keywords["MORE"])
	assert.Len(t, h.Keywords, 1)
}
