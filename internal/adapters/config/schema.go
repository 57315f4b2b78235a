package config

// File represents the structure of assetpack.yaml (or its JSONC equivalent).
// Pointer fields distinguish an explicit false from an omitted key.
type File struct {
	Source       string   `yaml:"source"`
	Output       string   `yaml:"output"`
	MarkupExt    string   `yaml:"markup_ext"`
	Stylesheet   string   `yaml:"stylesheet"`
	Scripts      []string `yaml:"scripts"`
	Includes     []string `yaml:"includes"`
	Attribute    *string  `yaml:"attribute"`
	MinifyMarkup *bool    `yaml:"minify_markup"`
	CacheBust    *bool    `yaml:"cache_bust"`
	Minifiers    []string `yaml:"minifiers"`
}
