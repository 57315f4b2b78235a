package domain

import (
	"path/filepath"
	"strings"
)

const (
	// ConfigFileName is the name of the YAML configuration file.
	ConfigFileName = "assetpack.yaml"

	// ConfigFileNameJSONC is the name of the JSON-with-comments configuration file.
	ConfigFileNameJSONC = "assetpack.jsonc"

	// ConfigFileNameJSON is the name of the plain JSON configuration file.
	ConfigFileNameJSON = "assetpack.json"

	// DefaultSourceDir is the directory holding the web sources.
	DefaultSourceDir = "src/webui_src"

	// DefaultOutputPath is the generated header path.
	DefaultOutputPath = "src/webui_gen/web_content.h"

	// DefaultMarkupExt is the extension that identifies markup files.
	DefaultMarkupExt = ".html"

	// DefaultStylesheet is the well-known stylesheet filename.
	DefaultStylesheet = "style.css"

	// DefaultAttribute is the storage attribute placed on every byte array.
	DefaultAttribute = "PROGMEM"

	// CompressedSuffix marks a constant as holding a gzip payload.
	CompressedSuffix = "_GZ"

	// LenSuffix marks the paired length constant.
	LenSuffix = "_LEN"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultScripts returns the script load order used when no configuration is present.
func DefaultScripts() []string {
	return []string{
		"main.js",
		"crash-log.js",
		"utils.js",
		"device-config.js",
		"form-utils.js",
		"status-updates.js",
	}
}

// DefaultIncludes returns the headers included by the generated artifact.
func DefaultIncludes() []string {
	return []string{"Arduino.h"}
}

// DefaultMinifiers returns the minifier strategies in preference order.
func DefaultMinifiers() []string {
	return []string{"esbuild", "tdewolff"}
}

// CacheRecordPath returns the path of the cache record stored beside the artifact.
// For src/webui_gen/web_content.h it is src/webui_gen/.web_content.h.cache.json.
func CacheRecordPath(artifactPath string) string {
	dir, name := filepath.Split(artifactPath)
	return filepath.Join(dir, "."+name+".cache.json")
}

// GuardName derives the include guard from the artifact filename.
func GuardName(artifactPath string) string {
	return Sanitize(filepath.Base(artifactPath))
}

// Sanitize uppercases s and replaces every character outside [A-Z0-9] with an underscore.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}
