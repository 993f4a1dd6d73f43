package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level YAML configuration.
type Config struct {
	APIKey        string `yaml:"apiKey"`
	Endpoint      string `yaml:"endpoint"`
	Output        string `yaml:"output"`
	Format        string `yaml:"format"`
	Package       string `yaml:"package"`
	RecordSchemas bool   `yaml:"recordSchemas"`
	Bases         []Base `yaml:"bases"`
}

// Base scopes generation for one remote base.
type Base struct {
	BaseName string   `yaml:"baseName"`
	BaseID   string   `yaml:"baseId"`
	TableIDs []string `yaml:"tableIds"`
	ViewIDs  []string `yaml:"viewIds"`
	// RequiredFields maps a table id or name to field ids, names or identifiers.
	RequiredFields map[string][]string `yaml:"requiredFields"`
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse parses YAML data into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyEnv fills in empty fields from environment variables.
// YAML values take precedence; env vars are used only as fallback.
func (c *Config) applyEnv() {
	if c.APIKey == "" {
		c.APIKey = envOr("AIRTABLE_API_KEY", "AIRTABLE_TOKEN")
	}
	if c.Endpoint == "" {
		c.Endpoint = envOr("AIRTABLE_ENDPOINT")
	}
}

// envOr returns the first non-empty value from the given env var names.
func envOr(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// validate checks the bases and fills in defaults. A missing API key is
// not a config error; the generator reports it when a fetch is needed.
func (c *Config) validate() error {
	if len(c.Bases) == 0 {
		return fmt.Errorf("at least one base must be specified in config")
	}
	for i, b := range c.Bases {
		if b.BaseName == "" {
			return fmt.Errorf("bases[%d].baseName is required", i)
		}
		if b.BaseID == "" {
			return fmt.Errorf("bases[%d].baseId is required", i)
		}
		if b.TableIDs != nil && len(b.TableIDs) == 0 {
			return fmt.Errorf("bases[%d].tableIds must not be empty", i)
		}
		if b.ViewIDs != nil && len(b.ViewIDs) == 0 {
			return fmt.Errorf("bases[%d].viewIds must not be empty", i)
		}
		if err := nonEmpty(fmt.Sprintf("bases[%d].tableIds", i), b.TableIDs); err != nil {
			return err
		}
		if err := nonEmpty(fmt.Sprintf("bases[%d].viewIds", i), b.ViewIDs); err != nil {
			return err
		}
		for table, fields := range b.RequiredFields {
			if table == "" {
				return fmt.Errorf("bases[%d].requiredFields has an empty table key", i)
			}
			if len(fields) == 0 {
				return fmt.Errorf("bases[%d].requiredFields[%s] must not be empty", i, table)
			}
			if err := nonEmpty(fmt.Sprintf("bases[%d].requiredFields[%s]", i, table), fields); err != nil {
				return err
			}
		}
	}
	if c.Format == "" {
		c.Format = "typescript"
	}
	return nil
}

func nonEmpty(path string, values []string) error {
	for j, v := range values {
		if v == "" {
			return fmt.Errorf("%s[%d] must not be empty", path, j)
		}
	}
	return nil
}
