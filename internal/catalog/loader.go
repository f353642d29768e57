package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk catalog shape: four lists matching the serialized
// records the configuration UI produces.
type File struct {
	Ingresos       []Item `yaml:"ingresos"`
	CostosVariable []Item `yaml:"costosVariables"`
	GastosFijos    []Item `yaml:"gastosFijos"`
	Impuestos      []Item `yaml:"impuestos"`
}

// Load reads a YAML catalog file and builds a validated snapshot from it.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalogo: leyendo %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalogo: interpretando %s: %w", path, err)
	}
	items := make([]Item, 0, len(f.Ingresos)+len(f.CostosVariable)+len(f.GastosFijos)+len(f.Impuestos))
	items = append(items, f.Ingresos...)
	items = append(items, f.CostosVariable...)
	items = append(items, f.GastosFijos...)
	items = append(items, f.Impuestos...)
	snap, err := NewSnapshot(items)
	if err != nil {
		return nil, fmt.Errorf("catalogo: %s: %w", path, err)
	}
	return snap, nil
}
