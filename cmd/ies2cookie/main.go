package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gekko3d/iescookie"
	"github.com/gekko3d/iescookie/report"
)

// explicitOverrides returns a function that copies the settings of flags
// given on the command line over the resolved settings of each file, so
// explicit flags win over sidecars while unset flags do not.
func explicitOverrides(fs *flag.FlagSet, flagged iescookie.ImportSettings) func(*iescookie.ImportSettings) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	return func(s *iescookie.ImportSettings) {
		if set["type"] {
			s.CookieType = flagged.CookieType
		}
		if set["size"] {
			s.TextureSize = flagged.TextureSize
		}
		if set["filter"] {
			s.Filter = flagged.Filter
		}
		if set["debug-data"] {
			s.WriteDebugData = flagged.WriteDebugData
		}
		if set["plot"] {
			s.WritePlot = flagged.WritePlot
		}
	}
}

func main() {
	defaults := iescookie.DefaultImportSettings()

	cookieType := flag.String("type", string(defaults.CookieType), "cookie type: point or spot")
	size := flag.Int("size", defaults.TextureSize, "texture size (power of two, 16-8192)")
	filter := flag.String("filter", defaults.Filter, "resampling filter: bilinear or nearest")
	debugData := flag.Bool("debug-data", false, "also write the packed sample data as <name>_IESData.tiff")
	plot := flag.Bool("plot", false, "also write a candela plot as <name>_candela.png")
	outDir := flag.String("out", "", "output directory (default: next to each input)")
	noSidecars := flag.Bool("no-sidecars", false, "ignore sidecar import settings (lamp.ies reads lamp.ies.yaml)")
	verbose := flag.Bool("v", os.Getenv("DEBUG") != "", "debug logging")
	quiet := flag.Bool("quiet", false, "only log warnings and errors")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file.ies...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := iescookie.NewDefaultLogger("ies2cookie", *verbose)
	if *quiet {
		logger.SetLevel(iescookie.LevelWarn)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ct, err := iescookie.ParseCookieType(*cookieType)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(2)
	}

	settings := iescookie.ImportSettings{
		CookieType:     ct,
		TextureSize:    *size,
		Filter:         *filter,
		WriteDebugData: *debugData,
		WritePlot:      *plot,
	}

	importer, err := iescookie.NewImporterBuilder().
		UseSettings(settings).
		UseLogger(logger).
		UseSidecars(!*noSidecars).
		OverrideSettings(explicitOverrides(flag.CommandLine, settings)).
		WriteOutputs(*outDir).
		Build()
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(2)
	}

	for _, path := range flag.Args() {
		asset, err := importer.ImportFile(path)
		if err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}

		summary, err := report.Summarize(asset.Document)
		if err != nil {
			logger.Warnf("%s: no photometric summary: %v", path, err)
			continue
		}
		light := iescookie.NewCookieLight(asset)
		logger.Infof("%s: peak %.1f cd at V%g H%g, beam %.1f°, field %.1f°, light type %d cone %.1f°",
			asset.Name, summary.PeakIntensity, summary.PeakVertical, summary.PeakHorizontal,
			summary.BeamAngle, summary.FieldAngle, light.Type, light.ConeAngle)
	}
}
