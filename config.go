package filedrive

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Driver names accepted in disk configuration.
const (
	DriverLocal  = "local"
	DriverMemory = "memory"
)

// Config is the named-disk configuration surface.
//
//	default: local
//	disks:
//	  local:
//	    driver: local
//	    root: $(DATA_DIR)/files
//	  scratch:
//	    driver: memory
type Config struct {
	Default string                `yaml:"default"`
	Disks   map[string]DiskConfig `yaml:"disks"`
}

// DiskConfig configures a single disk.
type DiskConfig struct {
	Driver string `yaml:"driver"`
	Root   string `yaml:"root"` // required for the local driver
}

// matches $(VAR_NAME)
var envPattern = regexp.MustCompile(`\$\(([A-Za-z0-9_]+)\)`)

// expandEnvVars replaces $(VAR) with os.Getenv(VAR).
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(m string) string {
		return os.Getenv(envPattern.FindStringSubmatch(m)[1])
	})
}

// LoadConfig reads a YAML disk configuration, expanding $(ENV_VAR)
// placeholders before unmarshalling, and validates it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for structural mistakes so they
// fail at load time, not on first use.
func (c *Config) Validate() error {
	if len(c.Disks) == 0 {
		return fmt.Errorf("no disks configured")
	}
	if c.Default != "" {
		if _, ok := c.Disks[c.Default]; !ok {
			return fmt.Errorf("default disk %q is not configured", c.Default)
		}
	}
	for name, disk := range c.Disks {
		switch disk.Driver {
		case DriverLocal:
			if disk.Root == "" {
				return fmt.Errorf("disk %q: local driver requires a root", name)
			}
		case DriverMemory:
		default:
			return fmt.Errorf("disk %q: unknown driver %q", name, disk.Driver)
		}
	}
	return nil
}
