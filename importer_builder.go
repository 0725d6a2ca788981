package iescookie

type ImporterBuilder struct {
	importer *Importer
}

func NewImporterBuilder() *ImporterBuilder {
	return &ImporterBuilder{importer: &Importer{
		settings: DefaultImportSettings(),
		logger:   NewNopLogger(),
		assets:   NewAssetServer(),
	}}
}

func (b *ImporterBuilder) UseSettings(settings ImportSettings) *ImporterBuilder {
	b.importer.settings = settings

	return b
}

func (b *ImporterBuilder) UseLogger(logger Logger) *ImporterBuilder {
	if logger == nil {
		logger = NewNopLogger()
	}
	b.importer.logger = logger

	return b
}

func (b *ImporterBuilder) UseAssetServer(server *AssetServer) *ImporterBuilder {
	b.importer.assets = server

	return b
}

// UseSidecars makes ImportFile layer the keys of lamp.ies.yaml (see
// SidecarPath) over the importer settings when the sidecar exists.
func (b *ImporterBuilder) UseSidecars(enabled bool) *ImporterBuilder {
	b.importer.useSidecars = enabled

	return b
}

// OverrideSettings registers a function applied to the resolved settings
// of every ImportFile call, after any sidecar. The CLI uses it for flags
// given explicitly on the command line.
func (b *ImporterBuilder) OverrideSettings(fn func(*ImportSettings)) *ImporterBuilder {
	b.importer.override = fn

	return b
}

// WriteOutputs makes ImportFile write the cookie (and optional debug data
// and plot) to dir. An empty dir writes next to the source file.
func (b *ImporterBuilder) WriteOutputs(dir string) *ImporterBuilder {
	b.importer.writeOutputs = true
	b.importer.outputDir = dir

	return b
}

func (b *ImporterBuilder) Build() (*Importer, error) {
	if err := b.importer.settings.Validate(); err != nil {
		return nil, err
	}
	if b.importer.assets == nil {
		b.importer.assets = NewAssetServer()
	}
	return b.importer, nil
}
