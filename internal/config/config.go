package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Layr-Labs/vector-transformer/pkg/types"
)

// ShapeFile is the on-disk form of a shape table:
//
//	default: nested
//	fields:
//	  private_keys: passthrough
//	  G1_signatures: flat
type ShapeFile struct {
	Default string            `yaml:"default"`
	Fields  map[string]string `yaml:"fields"`
}

// LoadShapeTable reads a shape file and merges it over the default table.
func LoadShapeTable(path string) (*types.ShapeTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shape file: %w", err)
	}

	var sf ShapeFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse shape file: %w", err)
	}
	return sf.Apply(types.DefaultShapeTable())
}

// Apply returns a copy of base with the file's entries applied.
func (sf *ShapeFile) Apply(base *types.ShapeTable) (*types.ShapeTable, error) {
	table := base.Clone()
	if d := strings.TrimSpace(sf.Default); d != "" {
		shape, err := types.ParseShape(d)
		if err != nil {
			return nil, fmt.Errorf("default: %w", err)
		}
		if shape == types.ShapePassThrough {
			return nil, fmt.Errorf("default shape cannot be %q", shape)
		}
		table.Default = shape
	}
	for name, raw := range sf.Fields {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("empty field name in shape file")
		}
		shape, err := types.ParseShape(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		table.Set(shape, name)
	}
	return table, nil
}

// Overrides are the per-field shape assignments given on the command line.
type Overrides struct {
	DefaultShape      string
	FlatFields        []string
	PassThroughFields []string
}

// BuildShapeTable resolves the shape table: defaults, then the optional shape
// file, then command-line overrides.
func BuildShapeTable(shapesFile string, o Overrides) (*types.ShapeTable, error) {
	table := types.DefaultShapeTable()
	if shapesFile != "" {
		t, err := LoadShapeTable(shapesFile)
		if err != nil {
			return nil, err
		}
		table = t
	}

	overrides := &ShapeFile{Default: o.DefaultShape, Fields: make(map[string]string)}
	for _, f := range cleanList(o.FlatFields) {
		overrides.Fields[f] = string(types.ShapeFlat)
	}
	for _, f := range cleanList(o.PassThroughFields) {
		overrides.Fields[f] = string(types.ShapePassThrough)
	}
	return overrides.Apply(table)
}

func cleanList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, p := range strings.Split(s, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
