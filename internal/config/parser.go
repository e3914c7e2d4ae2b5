package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	themeerrors "github.com/alexisbeaulieu97/themecore/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a theme configuration document from disk.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes a theme configuration document. JSON input is accepted as YAML.
// The top level must be a mapping of component identifier to component slice.
func Parse(data []byte, path string) (*Config, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, themeerrors.NewParseError(path, extractLine(err), err)
	}

	cfg := &Config{Path: path}
	if root.Kind == 0 || len(root.Content) == 0 {
		return cfg, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, themeerrors.NewParseError(path, doc.Line, fmt.Errorf("top level must map component identifiers to their configuration"))
	}

	seen := make(map[string]int, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i]
		value := doc.Content[i+1]

		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, themeerrors.NewParseError(path, key.Line, fmt.Errorf("component identifier must be a non-empty string"))
		}
		if first, dup := seen[key.Value]; dup {
			return nil, themeerrors.NewParseError(path, key.Line, fmt.Errorf("component %q already configured on line %d", key.Value, first))
		}
		seen[key.Value] = key.Line

		if value.Kind != yaml.MappingNode && !(value.Kind == yaml.ScalarNode && value.Tag == "!!null") {
			return nil, themeerrors.NewParseError(path, value.Line, fmt.Errorf("configuration for %q must be a mapping", key.Value))
		}

		cfg.Components = append(cfg.Components, Entry{
			ID:    key.Value,
			Line:  key.Line,
			Slice: NewSlice(value),
		})
	}

	return cfg, nil
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
