package iescookie

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gekko3d/iescookie/cookie"
)

// ImportSettings are the per-file options of an import. On disk they live
// in a YAML sidecar next to the IES file.
type ImportSettings struct {
	CookieType     CookieType `yaml:"cookie_type"`
	TextureSize    int        `yaml:"texture_size"`
	Filter         string     `yaml:"filter"`
	WriteDebugData bool       `yaml:"write_debug_data"`
	WritePlot      bool       `yaml:"write_plot"`
}

func DefaultImportSettings() ImportSettings {
	return ImportSettings{
		CookieType:  CookieTypePoint,
		TextureSize: cookie.DefaultTextureSize,
		Filter:      cookie.FilterBilinear.String(),
	}
}

func (s ImportSettings) Validate() error {
	if _, err := ParseCookieType(string(s.CookieType)); err != nil {
		return err
	}
	if err := cookie.ValidateTextureSize(s.TextureSize); err != nil {
		return err
	}
	_, err := cookie.ParseFilter(s.Filter)
	return err
}

func (s ImportSettings) filter() cookie.Filter {
	f, err := cookie.ParseFilter(s.Filter)
	if err != nil {
		return cookie.FilterBilinear
	}
	return f
}

// SidecarPath is where the settings for an IES file are kept: the full
// file name plus ".yaml", so lamp.ies reads lamp.ies.yaml.
func SidecarPath(iesPath string) string {
	return iesPath + ".yaml"
}

// LoadImportSettings reads a settings file on top of the defaults.
func LoadImportSettings(path string) (ImportSettings, error) {
	return loadSettingsOver(path, DefaultImportSettings())
}

// loadSettingsOver unmarshals the file onto base, so keys missing from the
// file keep the values of base.
func loadSettingsOver(path string, base ImportSettings) (ImportSettings, error) {
	settings := base

	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read import settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return base, fmt.Errorf("parse import settings %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return base, fmt.Errorf("import settings %s: %w", path, err)
	}
	return settings, nil
}

// LoadSidecarSettings layers the sidecar of an IES file over fallback. It
// returns fallback unchanged when the file has no sidecar.
func LoadSidecarSettings(iesPath string, fallback ImportSettings) (ImportSettings, bool, error) {
	settings, err := loadSettingsOver(SidecarPath(iesPath), fallback)
	if errors.Is(err, fs.ErrNotExist) {
		return fallback, false, nil
	}
	if err != nil {
		return fallback, false, err
	}
	return settings, true, nil
}

func SaveImportSettings(path string, settings ImportSettings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode import settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write import settings: %w", err)
	}
	return nil
}
