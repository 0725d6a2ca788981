package iescookie

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gekko3d/iescookie/cookie"
	"github.com/gekko3d/iescookie/ies"
	"github.com/gekko3d/iescookie/report"
)

// Importer turns IES files into light cookies and registers them with an
// asset server. Build one with NewImporterBuilder.
type Importer struct {
	settings     ImportSettings
	logger       Logger
	assets       *AssetServer
	useSidecars  bool
	override     func(*ImportSettings)
	writeOutputs bool
	outputDir    string
}

func (imp *Importer) Settings() ImportSettings { return imp.settings }

func (imp *Importer) Assets() *AssetServer { return imp.assets }

// ImportFile imports one IES file. Settings resolve in three layers: the
// importer settings, then the sidecar keys when sidecars are enabled, then
// the override function. The asset is registered only once every output
// has been written.
func (imp *Importer) ImportFile(path string) (CookieAsset, error) {
	settings := imp.settings
	if imp.useSidecars {
		s, found, err := LoadSidecarSettings(path, settings)
		if err != nil {
			return CookieAsset{}, err
		}
		if found {
			imp.logger.Debugf("Using import settings from %s", SidecarPath(path))
			settings = s
		}
	}
	if imp.override != nil {
		imp.override(&settings)
	}

	doc, err := ies.LoadFile(path)
	if err != nil {
		return CookieAsset{}, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	asset, err := imp.build(name, doc, settings)
	if err != nil {
		return CookieAsset{}, fmt.Errorf("%s: %w", path, err)
	}

	if imp.writeOutputs {
		dir := imp.outputDir
		if dir == "" {
			dir = filepath.Dir(path)
		}
		if err := imp.write(dir, asset, doc, settings); err != nil {
			return CookieAsset{}, err
		}
	}
	return imp.register(asset, doc), nil
}

// Import parses an IES stream and converts it with the given settings.
func (imp *Importer) Import(name string, r io.Reader, settings ImportSettings) (CookieAsset, error) {
	doc, err := ies.Parse(r)
	if err != nil {
		return CookieAsset{}, err
	}
	return imp.Convert(name, doc, settings)
}

// Convert builds the sample buffer and projects the cookie for an already
// parsed document, then registers the result.
func (imp *Importer) Convert(name string, doc *ies.Document, settings ImportSettings) (CookieAsset, error) {
	asset, err := imp.build(name, doc, settings)
	if err != nil {
		return CookieAsset{}, err
	}
	return imp.register(asset, doc), nil
}

func (imp *Importer) build(name string, doc *ies.Document, settings ImportSettings) (CookieAsset, error) {
	if err := settings.Validate(); err != nil {
		return CookieAsset{}, err
	}
	if doc == nil || doc.Samples == nil {
		return CookieAsset{}, cookie.ErrEmptyDocument
	}
	if err := ies.CheckMonotonic(doc); err != nil {
		imp.logger.Warnf("%s: %v", name, err)
	}
	if imp.logger.DebugEnabled() {
		keys := make([]string, 0, len(doc.Keywords))
		for k := range doc.Keywords {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			imp.logger.Debugf("%s: [%s] %s", name, k, doc.Keywords[k])
		}
	}

	buf, err := cookie.NewSampleBuffer(doc)
	if err != nil {
		return CookieAsset{}, err
	}

	asset := CookieAsset{
		Name:         name,
		Type:         settings.CookieType,
		Size:         settings.TextureSize,
		Range:        buf.Range(),
		MaxIntensity: doc.MaxIntensity,
		Data:         buf,
		Document:     doc,
	}

	start := time.Now()
	switch settings.CookieType {
	case CookieTypeSpot:
		asset.Spot, err = cookie.SpotProjector{Size: settings.TextureSize, Filter: settings.filter()}.Project(buf)
	default:
		asset.Cube, err = cookie.CubeProjector{Size: settings.TextureSize, Filter: settings.filter()}.Project(buf)
	}
	if err != nil {
		return CookieAsset{}, err
	}
	imp.logger.Debugf("%s: projected %s cookie %dx%d in %v", name, settings.CookieType, settings.TextureSize, settings.TextureSize, time.Since(start))
	return asset, nil
}

func (imp *Importer) register(asset CookieAsset, doc *ies.Document) CookieAsset {
	asset = imp.assets.StoreCookie(asset)
	imp.logger.Infof("Imported %s (%s): %dx%d angle grid, %s cookie %dpx, peak %.1f cd, id %s v%d",
		asset.Name, doc.Version, doc.HorizontalAngleCount, doc.VerticalAngleCount,
		asset.Type, asset.Size, asset.MaxIntensity, asset.Id, asset.Version)
	return asset
}

func (imp *Importer) write(dir string, asset CookieAsset, doc *ies.Document, settings ImportSettings) error {
	cookiePath := filepath.Join(dir, asset.Name+".tiff")
	if err := writeFile(cookiePath, func(w io.Writer) error { return EncodeCookieTIFF(w, asset) }); err != nil {
		return err
	}
	imp.logger.Infof("Wrote %s", cookiePath)

	if settings.WriteDebugData {
		dataPath := filepath.Join(dir, asset.Name+"_IESData.tiff")
		if err := writeFile(dataPath, func(w io.Writer) error { return EncodeDataTIFF(w, asset.Data) }); err != nil {
			return err
		}
		imp.logger.Infof("Wrote %s", dataPath)
	}

	if settings.WritePlot {
		plotPath := filepath.Join(dir, asset.Name+"_candela.png")
		if err := report.SaveCandelaPlot(doc, asset.Name, plotPath); err != nil {
			return err
		}
		imp.logger.Infof("Wrote %s", plotPath)
	}
	return nil
}
