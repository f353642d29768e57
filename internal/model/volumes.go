package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MonthlyVolumes is either a flat quantity applied to every month or an
// explicit month(1-12) -> quantity map. Quantities are non-negative integers.
type MonthlyVolumes struct {
	Flat    int64
	PorMes  map[int]int64
	Explicit bool
}

// For returns the quantity for a month; absent months are zero.
func (v MonthlyVolumes) For(month int) int64 {
	if v.Explicit {
		return v.PorMes[month]
	}
	return v.Flat
}

// UnmarshalYAML accepts both shapes: `SRV-EST: 100` and
// `SRV-EST: {1: 80, 2: 90}`.
func (v *MonthlyVolumes) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var flat int64
		if err := node.Decode(&flat); err != nil {
			return err
		}
		if flat < 0 {
			return fmt.Errorf("modelo: volumen negativo %d", flat)
		}
		*v = MonthlyVolumes{Flat: flat}
		return nil
	case yaml.MappingNode:
		porMes := make(map[int]int64)
		if err := node.Decode(&porMes); err != nil {
			return err
		}
		for mes, qty := range porMes {
			if mes < 1 || mes > 12 {
				return fmt.Errorf("modelo: mes fuera de rango %d", mes)
			}
			if qty < 0 {
				return fmt.Errorf("modelo: volumen negativo %d en mes %d", qty, mes)
			}
		}
		*v = MonthlyVolumes{PorMes: porMes, Explicit: true}
		return nil
	default:
		return fmt.Errorf("modelo: volumen con forma inesperada")
	}
}

// MarshalYAML emits the compact scalar form when possible.
func (v MonthlyVolumes) MarshalYAML() (interface{}, error) {
	if v.Explicit {
		return v.PorMes, nil
	}
	return v.Flat, nil
}

// VolumeMap maps an item code to its volumes for one year. Codes absent from
// the map contribute zero volume; codes unknown to the catalog are ignored by
// the engine rather than rejected.
type VolumeMap map[string]MonthlyVolumes

// For returns the volume of a code for a month, zero when absent.
func (m VolumeMap) For(code string, month int) int64 {
	v, ok := m[code]
	if !ok {
		return 0
	}
	return v.For(month)
}

// Flat builds a VolumeMap where each code applies the same quantity to every
// month. Convenience for tests and generated scenarios.
func Flat(quantities map[string]int64) VolumeMap {
	out := make(VolumeMap, len(quantities))
	for code, qty := range quantities {
		out[code] = MonthlyVolumes{Flat: qty}
	}
	return out
}

// LoadVolumes reads a YAML volume file: a mapping from item code to either a
// quantity or a month map.
func LoadVolumes(path string) (VolumeMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("modelo: leyendo volumenes %s: %w", path, err)
	}
	var m VolumeMap
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("modelo: interpretando volumenes %s: %w", path, err)
	}
	return m, nil
}
