package ies

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Cursor is the read position within an IES stream. Every reader in this
// package takes the cursor explicitly; it holds position bookkeeping only.
type Cursor struct {
	r         *bufio.Reader
	line      int
	tokenLine int
	// afterNewline is true when the last consumed byte ended a line.
	afterNewline bool
}

func NewCursor(r io.Reader) *Cursor {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Cursor{r: br, line: 1, tokenLine: 1, afterNewline: true}
}

// Line is the 1-based line the cursor is currently on.
func (c *Cursor) Line() int { return c.line }

// TokenLine is the line on which the most recent token started.
func (c *Cursor) TokenLine() int { return c.tokenLine }

func (c *Cursor) readByte() (byte, error) {
	b, err := c.r.ReadByte()
	if err != nil {
		return 0, err
	}
	c.afterNewline = b == '\n'
	if b == '\n' {
		c.line++
	}
	return b, nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// NextToken skips leading whitespace and returns the following run of
// non-whitespace bytes. The delimiter that ends the token is consumed.
// At end of stream it returns an empty token and a nil error; only read
// failures are reported as errors.
func NextToken(c *Cursor) (string, error) {
	var sb strings.Builder
	for {
		b, err := c.readByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return sb.String(), nil
			}
			return "", err
		}

		if isSpace(b) {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			continue
		}

		if sb.Len() == 0 {
			c.tokenLine = c.line
		}
		sb.WriteByte(b)
	}
}

// restOfLine discards everything up to and including the next newline and
// returns the discarded text without its line terminator. When the previous
// token was itself terminated by a newline there is nothing left to discard.
func restOfLine(c *Cursor) (string, error) {
	if c.afterNewline {
		return "", nil
	}

	var sb strings.Builder
	for {
		b, err := c.readByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
		if b == '\n' {
			break
		}
		sb.WriteByte(b)
	}
	return strings.TrimRight(sb.String(), "\r"), nil
}
