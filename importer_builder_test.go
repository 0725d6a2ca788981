package iescookie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/iescookie/cookie"
)

func TestImporterBuilder_Defaults(t *testing.T) {
	importer, err := NewImporterBuilder().Build()
	require.NoError(t, err)

	if importer.settings.CookieType != CookieTypePoint {
		t.Errorf("Expected default cookie type point, got %v", importer.settings.CookieType)
	}
	if importer.settings.TextureSize != 512 {
		t.Errorf("Expected default texture size 512, got %v", importer.settings.TextureSize)
	}
	if importer.useSidecars || importer.writeOutputs {
		t.Errorf("Expected sidecars and output writing to be off by default")
	}
	assert.NotNil(t, importer.Assets())
	assert.False(t, importer.logger.DebugEnabled())
}

func TestImporterBuilder_Options(t *testing.T) {
	server := NewAssetServer()
	settings := ImportSettings{CookieType: CookieTypeSpot, TextureSize: 64, Filter: "nearest"}

	importer, err := NewImporterBuilder().
		UseSettings(settings).
		UseAssetServer(server).
		UseLogger(nil).
		UseSidecars(true).
		WriteOutputs("out").
		Build()
	require.NoError(t, err)

	assert.Equal(t, settings, importer.Settings())
	assert.Same(t, server, importer.Assets())
	assert.NotNil(t, importer.logger)
	assert.True(t, importer.useSidecars)
	assert.True(t, importer.writeOutputs)
	assert.Equal(t, "out", importer.outputDir)
}

func TestImporterBuilder_RejectsInvalidSettings(t *testing.T) {
	_, err := NewImporterBuilder().
		UseSettings(ImportSettings{CookieType: CookieTypeSpot, TextureSize: 100}).
		Build()
	assert.ErrorIs(t, err, cookie.ErrInvalidTextureSize)

	_, err = NewImporterBuilder().
		UseSettings(ImportSettings{CookieType: "area", TextureSize: 64}).
		Build()
	assert.Error(t, err)
}
