package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/hueblocks/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, validates it, and
// returns the result. Keys absent from the file keep their defaults.
func ParseConfig(path string) (*Config, error) {
	cfg, err := Decode(path)
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Decode reads path over the defaults without validating the result, so
// callers can apply overrides first and validate the merged config once.
func Decode(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(path, data, cfg)
	case ".toml":
		err = decodeTOML(path, data, cfg)
	default:
		err = apperrors.NewValidationError("config", fmt.Sprintf("unsupported configuration file extension %q", ext), nil)
	}
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOptional decodes path when it exists and otherwise returns defaults.
// Like Decode, it does not validate.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Decode(path)
}

func decodeYAML(path string, data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func decodeTOML(path string, data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		line := 0
		var perr toml.ParseError
		if errors.As(err, &perr) {
			line = perr.Position.Line
		}
		return apperrors.NewParseError(path, line, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return apperrors.NewValidationError(undecoded[0].String(), "unknown configuration key", nil)
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
