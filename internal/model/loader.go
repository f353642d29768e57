package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfiguration reads a scenario configuration from a YAML file. Fields
// not present keep the default scenario values, so partial files work.
func LoadConfiguration(path string) (Configuration, error) {
	cfg := DefaultConfiguration()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("leer configuracion %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsear configuracion %s: %w", path, err)
	}
	return cfg, nil
}
