package ies

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// MaxGridCells bounds the intensity grid so a corrupt count cannot force a
// huge allocation.
const MaxGridCells = 1 << 22

const metresUnitCode = 2

// Parse reads a complete IES document. Either the whole document is
// returned or an error; there is no partial result.
func Parse(r io.Reader) (*Document, error) {
	c := NewCursor(r)

	header, first, err := ReadHeader(c)
	if err != nil {
		return nil, err
	}
	return ReadData(c, first, header)
}

func LoadFile(filename string) (*Document, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	doc, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return doc, nil
}

// ReadData parses the positional data block. first is the digit-leading
// token that ReadHeader already consumed.
func ReadData(c *Cursor, first string, header Header) (*Document, error) {
	doc := &Document{
		Version:  header.Version,
		Keywords: header.Keywords,
		Tilt:     header.Tilt,
	}

	var err error
	if doc.LampCount, err = parseInt("lamp count", first, c.TokenLine()); err != nil {
		return nil, err
	}
	if doc.RatedLumens, err = readFloat(c, "rated lumens"); err != nil {
		return nil, err
	}
	if doc.CandelaMultiplier, err = readFloat(c, "candela multiplier"); err != nil {
		return nil, err
	}
	if doc.VerticalAngleCount, err = readCount(c, "vertical angle count"); err != nil {
		return nil, err
	}
	if doc.HorizontalAngleCount, err = readCount(c, "horizontal angle count"); err != nil {
		return nil, err
	}
	if doc.HorizontalAngleCount > MaxGridCells/doc.VerticalAngleCount {
		return nil, &ParseError{
			Field: "angle counts",
			Token: fmt.Sprintf("%dx%d", doc.HorizontalAngleCount, doc.VerticalAngleCount),
			Line:  c.TokenLine(),
			Err:   ErrInvalidValue,
		}
	}

	// Photometric type. Recorded, never interpreted.
	if doc.PhotometricType, err = readInt(c, "photometric type"); err != nil {
		return nil, err
	}

	units, err := readInt(c, "units type")
	if err != nil {
		return nil, err
	}
	doc.UsingMetres = units == metresUnitCode

	if doc.LuminousOpeningWidth, err = readFloat(c, "luminous opening width"); err != nil {
		return nil, err
	}
	if doc.LuminousOpeningLength, err = readFloat(c, "luminous opening length"); err != nil {
		return nil, err
	}
	if doc.LuminousOpeningHeight, err = readFloat(c, "luminous opening height"); err != nil {
		return nil, err
	}
	if doc.BallastFactor, err = readFloat(c, "ballast factor"); err != nil {
		return nil, err
	}
	if doc.FutureUse, err = readFloat(c, "future use"); err != nil {
		return nil, err
	}
	if doc.LightWatts, err = readFloat(c, "input watts"); err != nil {
		return nil, err
	}

	verticalAngles := make([]float64, doc.VerticalAngleCount)
	for v := range verticalAngles {
		if verticalAngles[v], err = readFloat(c, "vertical angle"); err != nil {
			return nil, err
		}
	}

	grid := newGrid(doc.HorizontalAngleCount, doc.VerticalAngleCount)
	for h := 0; h < doc.HorizontalAngleCount; h++ {
		hAngle, err := readFloat(c, "horizontal angle")
		if err != nil {
			return nil, err
		}
		for v, vAngle := range verticalAngles {
			grid.setAngles(h, v, hAngle, vAngle)
		}
	}

	for h := 0; h < doc.HorizontalAngleCount; h++ {
		for v := 0; v < doc.VerticalAngleCount; v++ {
			raw, err := readFloat(c, "candela value")
			if err != nil {
				return nil, err
			}
			intensity := raw * doc.CandelaMultiplier
			if intensity < 0 {
				return nil, &ParseError{
					Field: "candela value",
					Token: strconv.FormatFloat(raw, 'g', -1, 64),
					Line:  c.TokenLine(),
					Err:   ErrInvalidValue,
				}
			}
			grid.setIntensity(h, v, intensity)
			if intensity > doc.MaxIntensity {
				doc.MaxIntensity = intensity
			}
		}
	}

	doc.Samples = grid
	return doc, nil
}

func requireToken(c *Cursor, field string) (string, error) {
	token, err := NextToken(c)
	if err != nil {
		return "", fmt.Errorf("ies: reading %s: %w", field, err)
	}
	if token == "" {
		return "", &ParseError{Field: field, Line: c.Line(), Err: ErrUnexpectedEndOfStream}
	}
	return token, nil
}

func readFloat(c *Cursor, field string) (float64, error) {
	token, err := requireToken(c, field)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &ParseError{Field: field, Token: token, Line: c.TokenLine(), Err: ErrNumericFormat}
	}
	return value, nil
}

func readInt(c *Cursor, field string) (int, error) {
	token, err := requireToken(c, field)
	if err != nil {
		return 0, err
	}
	return parseInt(field, token, c.TokenLine())
}

func parseInt(field, token string, line int) (int, error) {
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, &ParseError{Field: field, Token: token, Line: line, Err: ErrNumericFormat}
	}
	return value, nil
}

func readCount(c *Cursor, field string) (int, error) {
	value, err := readInt(c, field)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, &ParseError{Field: field, Token: strconv.Itoa(value), Line: c.TokenLine(), Err: ErrInvalidValue}
	}
	return value, nil
}
