package config

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
)

// Theme file format names for ParseReader.
const (
	FormatLua  = "lua"
	FormatYAML = "yaml"
)

// Parser provides a unified interface for parsing theme files.
// It detects whether a file is Lua or YAML from its content.
type Parser struct {
	yamlParser *YAMLThemeParser
	luaParser  *LuaThemeParser
}

// NewParser creates a Parser that handles both Lua and YAML themes.
func NewParser() *Parser {
	return &Parser{
		yamlParser: NewYAMLThemeParser(),
		luaParser:  NewLuaThemeParser(),
	}
}

// ParseFile reads and parses a theme file, auto-detecting the format.
func (p *Parser) ParseFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}
	cfg, err := p.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseFromFS reads and parses a theme file from a filesystem, such as an
// embedded one.
func (p *Parser) ParseFromFS(fsys fs.FS, path string) (*Config, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme from FS %s: %w", path, err)
	}
	return p.Parse(content)
}

// Parse parses theme content, auto-detecting the format.
func (p *Parser) Parse(content []byte) (*Config, error) {
	if isLuaTheme(content) {
		return p.luaParser.Parse(content)
	}
	return p.yamlParser.Parse(content)
}

// ParseReader parses a theme from r in the named format ("lua" or "yaml").
func (p *Parser) ParseReader(r io.Reader, format string) (*Config, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}

	switch format {
	case FormatLua:
		return p.luaParser.Parse(content)
	case FormatYAML:
		return p.yamlParser.Parse(content)
	default:
		return nil, fmt.Errorf("unknown format: %s (expected 'lua' or 'yaml')", format)
	}
}

// luaThemePattern matches a line starting with glasspane.config, either as a
// whole-table assignment or a field assignment. Either marks a Lua theme.
var luaThemePattern = regexp.MustCompile(`(?m)^\s*glasspane\.config\b`)

func isLuaTheme(content []byte) bool {
	return luaThemePattern.Match(content)
}

// Close releases resources associated with the parser.
func (p *Parser) Close() error {
	if p.luaParser != nil {
		return p.luaParser.Close()
	}
	return nil
}
