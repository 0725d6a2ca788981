package ies

import (
	"strings"
)

type Version uint8

const (
	VersionUnknown Version = iota
	Version1991
	Version1995
)

var versionTokens = map[string]Version{
	"IESNA91":          Version1991,
	"IESNA:LM-63-1995": Version1995,
}

func (v Version) String() string {
	switch v {
	case Version1991:
		return "IESNA91"
	case Version1995:
		return "IESNA:LM-63-1995"
	}
	return "unknown"
}

// ParseVersion resolves the first token of a file to a format version.
func ParseVersion(token string) (Version, bool) {
	v, ok := versionTokens[token]
	return v, ok
}

// Header is everything before the numeric data block.
type Header struct {
	Version Version
	// Keywords maps bracketed keyword names (without brackets) to their
	// line text. Repeated keywords are joined with a newline.
	Keywords map[string]string
	// Tilt is the value of the TILT= line, if present.
	Tilt string
}

// ReadHeader consumes the version token and the free-form header lines.
// It returns the first token of the data block, which has already been
// consumed from the cursor.
func ReadHeader(c *Cursor) (Header, string, error) {
	token, err := NextToken(c)
	if err != nil {
		return Header{}, "", err
	}

	version, ok := ParseVersion(token)
	if !ok {
		return Header{}, "", &ParseError{Field: "version", Token: token, Line: c.TokenLine(), Err: ErrUnknownVersion}
	}

	h := Header{
		Version:  version,
		Keywords: make(map[string]string),
	}

	for {
		token, err := NextToken(c)
		if err != nil {
			return Header{}, "", err
		}
		if token == "" {
			return Header{}, "", &ParseError{Field: "header", Line: c.Line(), Err: ErrMalformedHeader}
		}
		if isDigit(token[0]) {
			return h, token, nil
		}

		rest, err := restOfLine(c)
		if err != nil {
			return Header{}, "", err
		}
		h.record(token, rest)
	}
}

func (h *Header) record(token, rest string) {
	if value, ok := strings.CutPrefix(token, "TILT="); ok {
		h.Tilt = value
		return
	}

	if !strings.HasPrefix(token, "[") {
		return
	}
	end := strings.IndexByte(token, ']')
	if end < 0 {
		return
	}

	key := token[1:end]
	value := strings.TrimSpace(token[end+1:] + " " + rest)
	if prev, ok := h.Keywords[key]; ok {
		value = prev + "\n" + value
	}
	h.Keywords[key] = value
}
