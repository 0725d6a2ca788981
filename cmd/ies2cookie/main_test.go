package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/iescookie"
)

func TestExplicitOverrides_OnlyVisitedFlags(t *testing.T) {
	fs := flag.NewFlagSet("ies2cookie", flag.ContinueOnError)
	fs.String("type", "point", "")
	fs.Int("size", 512, "")
	fs.String("filter", "bilinear", "")
	fs.Bool("debug-data", false, "")
	fs.Bool("plot", false, "")
	require.NoError(t, fs.Parse([]string{"-type", "spot", "-size", "64"}))

	flagged := iescookie.ImportSettings{CookieType: iescookie.CookieTypeSpot, TextureSize: 64, Filter: "bilinear"}
	resolved := iescookie.ImportSettings{CookieType: iescookie.CookieTypePoint, TextureSize: 512, Filter: "nearest", WritePlot: true}

	explicitOverrides(fs, flagged)(&resolved)

	assert.Equal(t, iescookie.ImportSettings{
		CookieType:  iescookie.CookieTypeSpot,
		TextureSize: 64,
		Filter:      "nearest",
		WritePlot:   true,
	}, resolved)
}

func TestExplicitOverrides_NoFlags(t *testing.T) {
	fs := flag.NewFlagSet("ies2cookie", flag.ContinueOnError)
	fs.String("type", "point", "")
	require.NoError(t, fs.Parse(nil))

	resolved := iescookie.ImportSettings{CookieType: iescookie.CookieTypeSpot, TextureSize: 32}
	explicitOverrides(fs, iescookie.DefaultImportSettings())(&resolved)
	assert.Equal(t, iescookie.CookieTypeSpot, resolved.CookieType)
	assert.Equal(t, 32, resolved.TextureSize)
}
