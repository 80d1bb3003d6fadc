// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is read when no config file is given
	DefaultConfigPath = "/etc/x-linux-isp-tool/config.yaml"

	// ConfigEnv overrides DefaultConfigPath
	ConfigEnv = "ISPTOOL_CONFIG"

	DefaultStatusPath      = "/var/lib/dpkg/status"
	DefaultCatalogPattern  = ".*_ISP_.*_main_.*"
	DefaultSelfPackage     = "x-linux-isp-tool"
	DefaultSentinelPackage = "libcamera"
	DefaultKernelModule    = "stm32_dcmipp"
	DefaultSessionService  = "weston-graphical-session"
	DefaultWikiURL         = "https://wiki.st.com/stm32mpu/wiki/How_to_install_X-LINUX-ISP"
)

// DefaultCatalogDirs are searched in order: the official apt lists
// directory, then the one populated by the CI tooling.
var DefaultCatalogDirs = []string{
	"/var/lib/apt/lists/",
	"/var/lib/apt/lists/auxfiles/",
}

// Config holds tool configuration
type Config struct {
	StatusPath      string   `yaml:"status_path"`
	CatalogDirs     []string `yaml:"catalog_dirs"`
	CatalogPattern  string   `yaml:"catalog_pattern"`
	SelfPackage     string   `yaml:"self_package"`
	SentinelPackage string   `yaml:"sentinel_package"`
	KernelModule    string   `yaml:"kernel_module"`
	SessionService  string   `yaml:"session_service"`
	WikiURL         string   `yaml:"wiki_url"`
	Debug           bool     `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		StatusPath:      DefaultStatusPath,
		CatalogDirs:     append([]string(nil), DefaultCatalogDirs...),
		CatalogPattern:  DefaultCatalogPattern,
		SelfPackage:     DefaultSelfPackage,
		SentinelPackage: DefaultSentinelPackage,
		KernelModule:    DefaultKernelModule,
		SessionService:  DefaultSessionService,
		WikiURL:         DefaultWikiURL,
	}
}

// LoadConfig loads configuration from file. An empty path means
// $ISPTOOL_CONFIG, then DefaultConfigPath. A missing file yields defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks fields that cannot be defaulted
func (c *Config) Validate() error {
	if _, err := regexp.Compile(c.CatalogPattern); err != nil {
		return fmt.Errorf("catalog_pattern: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.StatusPath == "" {
		c.StatusPath = d.StatusPath
	}
	if len(c.CatalogDirs) == 0 {
		c.CatalogDirs = d.CatalogDirs
	}
	if c.CatalogPattern == "" {
		c.CatalogPattern = d.CatalogPattern
	}
	if c.SelfPackage == "" {
		c.SelfPackage = d.SelfPackage
	}
	if c.SentinelPackage == "" {
		c.SentinelPackage = d.SentinelPackage
	}
	if c.KernelModule == "" {
		c.KernelModule = d.KernelModule
	}
	if c.SessionService == "" {
		c.SessionService = d.SessionService
	}
	if c.WikiURL == "" {
		c.WikiURL = d.WikiURL
	}
}
