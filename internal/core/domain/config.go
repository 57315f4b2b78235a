package domain

import (
	"fmt"
	"strings"
)

// Config holds the resolved pipeline settings.
type Config struct {
	// Source is the web source root.
	Source string
	// Output is the generated header path.
	Output string
	// MarkupExt selects markup files in the source root.
	MarkupExt string
	// Stylesheet is the well-known stylesheet filename.
	Stylesheet string
	// Scripts lists script paths relative to Source in load order.
	Scripts []string
	// Includes are emitted as #include lines.
	Includes []string
	// Attribute is placed after every byte array declarator.
	Attribute string
	// MinifyMarkup enables markup minification on top of comment stripping.
	MinifyMarkup bool
	// CacheBust appends ?v=<version> to asset references in markup.
	CacheBust bool
	// Minifiers lists minifier strategy names in preference order.
	Minifiers []string
}

// DefaultConfig returns the settings used when no configuration file is present.
func DefaultConfig() *Config {
	return &Config{
		Source:     DefaultSourceDir,
		Output:     DefaultOutputPath,
		MarkupExt:  DefaultMarkupExt,
		Stylesheet: DefaultStylesheet,
		Scripts:    DefaultScripts(),
		Includes:   DefaultIncludes(),
		Attribute:  DefaultAttribute,
		CacheBust:  true,
		Minifiers:  DefaultMinifiers(),
	}
}

// Salt renders the settings that influence the artifact bytes, including the source
// directory named in the disclaimer, for the build fingerprint.
// chain is the resolved minifier chain name.
func (c *Config) Salt(chain string) string {
	return fmt.Sprintf("src=%s\x00ext=%s\x00css=%s\x00js=%s\x00inc=%s\x00attr=%s\x00mm=%t\x00cb=%t\x00min=%s",
		c.Source,
		c.MarkupExt,
		c.Stylesheet,
		strings.Join(c.Scripts, "\x01"),
		strings.Join(c.Includes, "\x01"),
		c.Attribute,
		c.MinifyMarkup,
		c.CacheBust,
		chain,
	)
}
