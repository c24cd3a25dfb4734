package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"nsboot/internal/capability"
	"nsboot/internal/container"
	"nsboot/internal/idmap"
)

// Config holds the complete application configuration
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" json:"logging"`
	Launcher  LauncherConfig  `yaml:"launcher" json:"launcher"`
	Container ContainerConfig `yaml:"container" json:"container"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	Output string `yaml:"output" json:"output"`
}

// LauncherConfig holds host-side launch settings
type LauncherConfig struct {
	// InitPath is the binary re-executed as the container entrypoint.
	// Empty means the running executable.
	InitPath string `yaml:"initPath" json:"initPath"`
}

// ContainerConfig holds the defaults applied to `run` when flags leave a
// setting out.
type ContainerConfig struct {
	Namespaces   container.Namespaces `yaml:"namespaces" json:"namespaces"`
	Capabilities capability.AllowList `yaml:"capabilities" json:"capabilities"`
	Mapping      idmap.Mapping        `yaml:"mapping" json:"mapping"`
}

// DefaultConfig Default configuration values
var DefaultConfig = Config{
	Logging: LoggingConfig{
		Level:  "INFO",
		Format: "text",
		Output: "stderr",
	},
	Launcher: LauncherConfig{
		InitPath: "",
	},
	Container: ContainerConfig{
		Namespaces: container.NewNamespaces(
			container.NamespaceUser,
			container.NamespaceMount,
			container.NamespacePID,
			container.NamespaceUTS,
			container.NamespaceIPC,
		),
	},
}

// LoadConfig loads configuration from multiple sources in order of precedence:
// 1. Environment variables (highest precedence)
// 2. Configuration file
// 3. Default values (lowest precedence)
func LoadConfig() (*Config, string, error) {
	config := DefaultConfig

	path, err := loadFromFile(&config)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config file: %w", err)
	}

	if e := loadFromEnv(&config); e != nil {
		return nil, "", fmt.Errorf("failed to load environment variables: %w", e)
	}

	if e := config.Validate(); e != nil {
		return nil, "", fmt.Errorf("configuration validation failed: %w", e)
	}

	return &config, path, nil
}

// loadFromFile loads configuration from the first YAML file found
func loadFromFile(config *Config) (string, error) {
	configPaths := []string{
		os.Getenv("NSBOOT_CONFIG_PATH"), // Custom path from environment
		"./nsboot.yaml",                 // Current directory
		"/etc/nsboot/config.yaml",       // System-wide
	}

	for _, path := range configPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return "", fmt.Errorf("failed to parse config file %s: %w", path, err)
		}

		return path, nil
	}

	return "built-in defaults (no config file found)", nil
}

// loadFromEnv loads configuration from environment variables. An unknown
// namespace or capability name is an error.
func loadFromEnv(config *Config) error {
	if val := os.Getenv("NSBOOT_LOG_LEVEL"); val != "" {
		config.Logging.Level = val
	}
	if val := os.Getenv("NSBOOT_LOG_FORMAT"); val != "" {
		config.Logging.Format = val
	}
	if val := os.Getenv("NSBOOT_LOG_OUTPUT"); val != "" {
		config.Logging.Output = val
	}

	if val := os.Getenv("NSBOOT_INIT_PATH"); val != "" {
		config.Launcher.InitPath = val
	}

	if val := os.Getenv("NSBOOT_NAMESPACES"); val != "" {
		namespaces, err := container.ParseNamespaces([]string{val})
		if err != nil {
			return fmt.Errorf("NSBOOT_NAMESPACES: %w", err)
		}
		config.Container.Namespaces = namespaces
	}
	if val, ok := os.LookupEnv("NSBOOT_CAPABILITIES"); ok {
		caps, err := capability.ParseAllowList(strings.Split(val, ","))
		if err != nil {
			return fmt.Errorf("NSBOOT_CAPABILITIES: %w", err)
		}
		config.Container.Capabilities = caps
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true,
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if c.Launcher.InitPath != "" && !filepath.IsAbs(c.Launcher.InitPath) {
		return fmt.Errorf("init path must be absolute path: %s", c.Launcher.InitPath)
	}

	if !c.Container.Mapping.IsEmpty() {
		if !c.Container.Namespaces.Has(container.NamespaceUser) {
			return fmt.Errorf("default mapping given but the user namespace is not a default")
		}
		if err := c.Container.Mapping.Validate(); err != nil {
			return fmt.Errorf("invalid default mapping: %w", err)
		}
	}

	return nil
}

func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) SaveToFile(path string) error {
	data, err := c.ToYAML()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFromFile loads a specific configuration file
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}
