// CLAUDE:SUMMARY Configuration struct and YAML loader for the builder service.
package builder

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all builder configuration.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string `yaml:"db_path"`

	// MaxElementsPerPage caps how many elements a single import may produce.
	MaxElementsPerPage int `yaml:"max_elements_per_page"`

	// AuditLimit is the default page size for audit listings.
	AuditLimit int `yaml:"audit_limit"`
}

func (c *Config) defaults() {
	if c.DBPath == "" {
		c.DBPath = "atelier.db"
	}
	if c.MaxElementsPerPage <= 0 {
		c.MaxElementsPerPage = 2000
	}
	if c.AuditLimit <= 0 {
		c.AuditLimit = 100
	}
}

// LoadConfig reads a YAML config file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.defaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("builder: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("builder: parse config: %w", err)
	}
	cfg.defaults()
	return cfg, nil
}
