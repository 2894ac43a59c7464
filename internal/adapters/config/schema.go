package config

// Sheetfile represents the structure of the sheet.yaml configuration file.
type Sheetfile struct {
	Version        string         `yaml:"version"`
	Root           string         `yaml:"root"`
	EntryPoints    []string       `yaml:"entryPoints"`
	Outdir         string         `yaml:"outdir"`
	Mode           string         `yaml:"mode"`
	Minify         *bool          `yaml:"minify"`
	Transformers   []string       `yaml:"transformers"`
	AdditionalCode []string       `yaml:"additionalCode"`
	AutoImport     *AutoImportDTO `yaml:"autoImport"`
}

// AutoImportDTO represents the autoImport section of the configuration.
type AutoImportDTO struct {
	Identifier []BindingDTO `yaml:"identifier"`
}

// BindingDTO represents one auto import binding.
type BindingDTO struct {
	ClassName string `yaml:"className"`
	StyleName string `yaml:"styleName"`
	Position  string `yaml:"position"`
}
