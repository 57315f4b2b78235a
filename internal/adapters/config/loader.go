// Package config provides the configuration loader for assetpack.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"go.trai.ch/assetpack/internal/core/domain"
	"go.trai.ch/assetpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// discoveryOrder lists the config filenames probed in the working directory.
var discoveryOrder = []string{
	domain.ConfigFileName,
	domain.ConfigFileNameJSONC,
	domain.ConfigFileNameJSON,
}

// Loader implements ports.ConfigLoader using a YAML or JSONC file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at configPath, or discovers one in the working directory
// when configPath is empty. Without any config file the firmware defaults apply.
func (l *Loader) Load(configPath string) (*domain.Config, error) {
	if configPath == "" {
		found, ok := l.discover()
		if !ok {
			return domain.DefaultConfig(), nil
		}
		configPath = found
	}

	var file File
	if err := readAndUnmarshal(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	cfg := apply(domain.DefaultConfig(), &file, filepath.Dir(configPath))
	if err := validate(cfg); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func (l *Loader) discover() (string, bool) {
	var found []string
	for _, name := range discoveryOrder {
		info, err := os.Stat(name)
		if err == nil && !info.IsDir() {
			found = append(found, name)
		}
	}
	if len(found) == 0 {
		return "", false
	}
	if len(found) > 1 {
		l.Logger.Warn(fmt.Sprintf("multiple config files found (%s), using %s", strings.Join(found, ", "), found[0]))
	}
	return found[0], true
}

// readAndUnmarshal reads a config file and unmarshals it into target.
// JSON files may carry comments and trailing commas; they are normalized to strict JSON,
// which the YAML decoder accepts as-is.
func readAndUnmarshal(configPath string, target *File) error {
	// #nosec G304 -- configPath is provided by the operator
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

// apply overlays the file values on the defaults. Relative paths resolve against base.
func apply(cfg *domain.Config, file *File, base string) *domain.Config {
	if file.Source != "" {
		cfg.Source = file.Source
	}
	if file.Output != "" {
		cfg.Output = file.Output
	}
	cfg.Source = resolvePath(base, cfg.Source)
	cfg.Output = resolvePath(base, cfg.Output)

	if file.MarkupExt != "" {
		cfg.MarkupExt = file.MarkupExt
	}
	if !strings.HasPrefix(cfg.MarkupExt, ".") {
		cfg.MarkupExt = "." + cfg.MarkupExt
	}
	if file.Stylesheet != "" {
		cfg.Stylesheet = file.Stylesheet
	}
	if file.Scripts != nil {
		cfg.Scripts = file.Scripts
	}
	if file.Includes != nil {
		cfg.Includes = file.Includes
	}
	if file.Attribute != nil {
		cfg.Attribute = *file.Attribute
	}
	if file.MinifyMarkup != nil {
		cfg.MinifyMarkup = *file.MinifyMarkup
	}
	if file.CacheBust != nil {
		cfg.CacheBust = *file.CacheBust
	}
	if file.Minifiers != nil {
		cfg.Minifiers = file.Minifiers
	}
	return cfg
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

func validate(cfg *domain.Config) error {
	if strings.TrimSpace(cfg.Stylesheet) == "" {
		return invalid("stylesheet", zerr.New("stylesheet must not be empty"))
	}
	if filepath.Base(cfg.Output) == "." || strings.HasSuffix(cfg.Output, string(filepath.Separator)) {
		return invalid("output", zerr.With(zerr.New("output must name a file"), "output", cfg.Output))
	}

	seen := make(map[string]bool, len(cfg.Scripts))
	for _, script := range cfg.Scripts {
		if strings.TrimSpace(script) == "" {
			return invalid("scripts", zerr.New("script entries must not be empty"))
		}
		clean := filepath.ToSlash(filepath.Clean(script))
		if seen[clean] {
			return invalid("scripts", zerr.With(zerr.New("script listed twice"), "script", script))
		}
		seen[clean] = true
	}

	for i, name := range cfg.Minifiers {
		if strings.TrimSpace(name) == "" {
			return invalid(fmt.Sprintf("minifiers[%d]", i), zerr.New("minifier names must not be empty"))
		}
	}
	return nil
}

// invalid tags cause with ErrConfigInvalid so callers can branch on it with errors.Is.
func invalid(field string, cause error) error {
	return errors.Join(domain.ErrConfigInvalid, zerr.With(cause, "field", field))
}
