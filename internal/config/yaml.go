package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLThemeParser parses YAML theme files. Keys are the same as in Lua theme
// files; unknown keys are rejected.
type YAMLThemeParser struct{}

// NewYAMLThemeParser creates a YAMLThemeParser.
func NewYAMLThemeParser() *YAMLThemeParser {
	return &YAMLThemeParser{}
}

// Parse decodes YAML content and builds a Config.
func (p *YAMLThemeParser) Parse(content []byte) (*Config, error) {
	var tf themeFile
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&tf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML theme: %w", err)
	}
	return tf.build()
}
